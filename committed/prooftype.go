package committed

// ProofType is the tag byte carried in the first byte of every committed
// input segment. It identifies which sub-proof produced the segment and how
// the remaining bytes are laid out.
type ProofType byte

// Supported proof types. The numeric values are part of the wire format
// shared with the circuits and must never be renumbered.
const (
	ProofTypeDisclose                ProofType = 0
	ProofTypeAge                     ProofType = 1
	ProofTypeBirthdate               ProofType = 2
	ProofTypeExpiryDate              ProofType = 3
	ProofTypeNationalityInclusion    ProofType = 4
	ProofTypeNationalityExclusion    ProofType = 5
	ProofTypeIssuingCountryInclusion ProofType = 6
	ProofTypeIssuingCountryExclusion ProofType = 7
	ProofTypeBind                    ProofType = 8
)

// Segment lengths per proof type, tag byte included. Fixed by the circuit
// construction.
const (
	// TagLength is the size of the leading proof type tag of every segment.
	TagLength = 1

	// DiscloseSegmentLength is a tag, a 69-byte disclosure mask, the
	// 69-byte disclosed field block and a reserved tail.
	DiscloseSegmentLength = 181

	// AgeSegmentLength is a tag, an 8-byte current date and two age bounds.
	AgeSegmentLength = 11

	// DateSegmentLength is a tag, an 8-byte current date and two 8-byte
	// date bounds. Used by both birthdate and expiry date segments.
	DateSegmentLength = 25

	// CountrySegmentLength is a tag followed by a zero-padded list of
	// 3-byte country codes. Used by all four country claim types.
	CountrySegmentLength = 601

	// FieldBlockLength is the size of the fixed-order MRZ field block (and
	// of the disclosure mask covering it) inside a disclose segment.
	FieldBlockLength = 69

	// DiscloseReservedLength is the opaque tail of a disclose segment kept
	// for binding and auxiliary data. Passed through, never interpreted.
	DiscloseReservedLength = DiscloseSegmentLength - TagLength - 2*FieldBlockLength

	// CountryCodeLength is the byte size of one ISO 3166-1 alpha-3 code.
	CountryCodeLength = 3

	// MaxCountriesPerList is the capacity of one country segment.
	MaxCountriesPerList = (CountrySegmentLength - TagLength) / CountryCodeLength
)

var proofTypeNames = map[ProofType]string{
	ProofTypeDisclose:                "disclose",
	ProofTypeAge:                     "age",
	ProofTypeBirthdate:               "birthdate",
	ProofTypeExpiryDate:              "expiry_date",
	ProofTypeNationalityInclusion:    "nationality_inclusion",
	ProofTypeNationalityExclusion:    "nationality_exclusion",
	ProofTypeIssuingCountryInclusion: "issuing_country_inclusion",
	ProofTypeIssuingCountryExclusion: "issuing_country_exclusion",
	ProofTypeBind:                    "bind",
}

func (p ProofType) String() string {
	if s, ok := proofTypeNames[p]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether p is a member of the closed proof type enumeration.
func (p ProofType) Valid() bool {
	_, ok := proofTypeNames[p]
	return ok
}

// IsCountry reports whether p is one of the four country list claim types.
func (p ProofType) IsCountry() bool {
	switch p {
	case ProofTypeNationalityInclusion, ProofTypeNationalityExclusion,
		ProofTypeIssuingCountryInclusion, ProofTypeIssuingCountryExclusion:
		return true
	}
	return false
}

// IsDate reports whether p is one of the two date range claim types.
func (p ProofType) IsDate() bool {
	return p == ProofTypeBirthdate || p == ProofTypeExpiryDate
}

// SegmentLength returns the fixed segment length for p, tag included, or 0
// for variable-length types (bind).
func (p ProofType) SegmentLength() int {
	switch p {
	case ProofTypeDisclose:
		return DiscloseSegmentLength
	case ProofTypeAge:
		return AgeSegmentLength
	case ProofTypeBirthdate, ProofTypeExpiryDate:
		return DateSegmentLength
	case ProofTypeNationalityInclusion, ProofTypeNationalityExclusion,
		ProofTypeIssuingCountryInclusion, ProofTypeIssuingCountryExclusion:
		return CountrySegmentLength
	}
	return 0
}
