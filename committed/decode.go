package committed

import (
	"encoding/binary"
)

// DiscloseSegment is the decoded form of a disclose segment: the per-byte
// disclosure mask, the masked MRZ field block and the reserved tail.
type DiscloseSegment struct {
	// Mask holds one byte per field block position; a non-zero byte means
	// the corresponding Data byte was disclosed.
	Mask [FieldBlockLength]byte
	// Data is the fixed-order MRZ field block. Masked-out positions are
	// zero on the wire.
	Data [FieldBlockLength]byte
	// Reserved carries binding and auxiliary data. Opaque pass-through;
	// its layout is defined by a companion specification.
	Reserved [DiscloseReservedLength]byte
}

// AgeSegment is the decoded form of an age bound segment.
type AgeSegment struct {
	// CurrentDate is the prover's current date, Unix seconds truncated to a
	// day boundary.
	CurrentDate int64
	MinAge      uint8
	// MaxAge of 0 means no upper bound.
	MaxAge uint8
}

// DateSegment is the decoded form of a birthdate or expiry date segment.
type DateSegment struct {
	Type        ProofType
	CurrentDate int64
	// MinDate of 0 means no lower bound.
	MinDate int64
	// MaxDate of 0 means no upper bound.
	MaxDate int64
}

// CountrySegment is the decoded form of a country list segment. List keeps
// the encoded order, which matches the circuit's construction order.
type CountrySegment struct {
	Type ProofType
	List []string
}

// BindSegment is the decoded form of a bind segment. The payload is opaque
// user-bound data; this layer does not interpret it.
type BindSegment struct {
	Data []byte
}

func checkSegment(seg []byte, want ProofType, wantLen int) error {
	if len(seg) != wantLen {
		return structuralf("%s segment must be %d bytes, got %d", want, wantLen, len(seg))
	}
	if got := ProofType(seg[0]); got != want {
		return structuralf("expected %s tag, found %s (0x%02x)", want, got, seg[0])
	}
	return nil
}

// DecodeDisclose decodes a 181-byte disclose segment.
func DecodeDisclose(seg []byte) (*DiscloseSegment, error) {
	if err := checkSegment(seg, ProofTypeDisclose, DiscloseSegmentLength); err != nil {
		return nil, err
	}
	var out DiscloseSegment
	copy(out.Mask[:], seg[TagLength:TagLength+FieldBlockLength])
	copy(out.Data[:], seg[TagLength+FieldBlockLength:TagLength+2*FieldBlockLength])
	copy(out.Reserved[:], seg[TagLength+2*FieldBlockLength:])
	return &out, nil
}

// DecodeAge decodes an 11-byte age segment.
func DecodeAge(seg []byte) (*AgeSegment, error) {
	if err := checkSegment(seg, ProofTypeAge, AgeSegmentLength); err != nil {
		return nil, err
	}
	return &AgeSegment{
		CurrentDate: int64(binary.BigEndian.Uint64(seg[1:9])),
		MinAge:      seg[9],
		MaxAge:      seg[10],
	}, nil
}

// DecodeDate decodes a 25-byte birthdate or expiry date segment. The wanted
// type selects which of the two tags is accepted.
func DecodeDate(seg []byte, want ProofType) (*DateSegment, error) {
	if !want.IsDate() {
		return nil, structuralf("%s is not a date proof type", want)
	}
	if err := checkSegment(seg, want, DateSegmentLength); err != nil {
		return nil, err
	}
	return &DateSegment{
		Type:        want,
		CurrentDate: int64(binary.BigEndian.Uint64(seg[1:9])),
		MinDate:     int64(binary.BigEndian.Uint64(seg[9:17])),
		MaxDate:     int64(binary.BigEndian.Uint64(seg[17:25])),
	}, nil
}

// DecodeCountryList decodes a 601-byte country list segment. The list is
// left-packed: reading stops at the first all-zero triple or at the payload
// boundary, whichever comes first.
func DecodeCountryList(seg []byte, want ProofType) (*CountrySegment, error) {
	if !want.IsCountry() {
		return nil, structuralf("%s is not a country proof type", want)
	}
	if err := checkSegment(seg, want, CountrySegmentLength); err != nil {
		return nil, err
	}

	payload := seg[TagLength:]
	out := &CountrySegment{Type: want}
	for i := 0; i+CountryCodeLength <= len(payload); i += CountryCodeLength {
		code := payload[i : i+CountryCodeLength]
		if code[0] == 0 && code[1] == 0 && code[2] == 0 {
			break
		}
		for _, b := range code {
			if b < 'A' || b > 'Z' {
				return nil, structuralf("country code at entry %d holds byte 0x%02x outside A-Z", i/CountryCodeLength, b)
			}
		}
		out.List = append(out.List, string(code))
	}
	return out, nil
}

// DecodeBind decodes a bind segment. The payload stays opaque; only the tag
// and the minimum length are checked.
func DecodeBind(seg []byte) (*BindSegment, error) {
	if len(seg) < TagLength {
		return nil, structuralf("bind segment must carry at least the tag byte")
	}
	if got := ProofType(seg[0]); got != ProofTypeBind {
		return nil, structuralf("expected %s tag, found %s (0x%02x)", ProofTypeBind, got, seg[0])
	}
	out := &BindSegment{Data: make([]byte, len(seg)-TagLength)}
	copy(out.Data, seg[TagLength:])
	return out, nil
}
