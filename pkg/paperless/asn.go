package paperless

import "strconv"

// ASN is an archive serial number: the unique number written on a physical
// document that links it to its scanned counterpart.
type ASN int64

// String renders the serial number as its decimal form.
func (a ASN) String() string {
	return strconv.FormatInt(int64(a), 10)
}
