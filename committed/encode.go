package committed

import (
	"encoding/binary"
)

// EncodeDisclose builds a 181-byte disclose segment from a mask, a field
// block and up to DiscloseReservedLength reserved bytes (zero-padded).
// Positions masked out in mask are zeroed in the encoded field block, the
// same normalization the circuit applies.
func EncodeDisclose(mask, data [FieldBlockLength]byte, reserved []byte) ([]byte, error) {
	if len(reserved) > DiscloseReservedLength {
		return nil, structuralf("reserved data is %d bytes, limit is %d", len(reserved), DiscloseReservedLength)
	}
	seg := make([]byte, DiscloseSegmentLength)
	seg[0] = byte(ProofTypeDisclose)
	copy(seg[TagLength:], mask[:])
	for i := 0; i < FieldBlockLength; i++ {
		if mask[i] != 0 {
			seg[TagLength+FieldBlockLength+i] = data[i]
		}
	}
	copy(seg[TagLength+2*FieldBlockLength:], reserved)
	return seg, nil
}

// EncodeAge builds an 11-byte age segment.
func EncodeAge(currentDate int64, minAge, maxAge uint8) []byte {
	seg := make([]byte, AgeSegmentLength)
	seg[0] = byte(ProofTypeAge)
	binary.BigEndian.PutUint64(seg[1:9], uint64(currentDate))
	seg[9] = minAge
	seg[10] = maxAge
	return seg
}

// EncodeDate builds a 25-byte birthdate or expiry date segment.
func EncodeDate(t ProofType, currentDate, minDate, maxDate int64) ([]byte, error) {
	if !t.IsDate() {
		return nil, structuralf("%s is not a date proof type", t)
	}
	seg := make([]byte, DateSegmentLength)
	seg[0] = byte(t)
	binary.BigEndian.PutUint64(seg[1:9], uint64(currentDate))
	binary.BigEndian.PutUint64(seg[9:17], uint64(minDate))
	binary.BigEndian.PutUint64(seg[17:25], uint64(maxDate))
	return seg, nil
}

// EncodeCountryList builds a 601-byte country list segment. Codes are packed
// left to right in the given order; the remainder stays zero.
func EncodeCountryList(t ProofType, codes []string) ([]byte, error) {
	if !t.IsCountry() {
		return nil, structuralf("%s is not a country proof type", t)
	}
	if len(codes) > MaxCountriesPerList {
		return nil, structuralf("%d country codes exceed the list capacity of %d", len(codes), MaxCountriesPerList)
	}
	seg := make([]byte, CountrySegmentLength)
	seg[0] = byte(t)
	for i, code := range codes {
		if len(code) != CountryCodeLength {
			return nil, structuralf("country code %q must be %d characters", code, CountryCodeLength)
		}
		for _, b := range []byte(code) {
			if b < 'A' || b > 'Z' {
				return nil, structuralf("country code %q holds byte outside A-Z", code)
			}
		}
		copy(seg[TagLength+i*CountryCodeLength:], code)
	}
	return seg, nil
}

// EncodeBind builds a bind segment around the given opaque payload.
func EncodeBind(data []byte) []byte {
	seg := make([]byte, TagLength+len(data))
	seg[0] = byte(ProofTypeBind)
	copy(seg[TagLength:], data)
	return seg
}
