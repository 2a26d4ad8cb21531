package claims

import (
	"github.com/zkpassport/go-zkpassport/committed"
)

// DateClaim is a decoded date range claim over the document's birthdate or
// expiry date.
type DateClaim struct {
	Type committed.ProofType
	// CurrentDate is the prover's current date, Unix seconds truncated to a
	// day boundary.
	CurrentDate int64
	// MinDate of 0 means no lower bound.
	MinDate int64
	// MaxDate of 0 means no upper bound.
	MaxDate int64
}

// GetDateClaim locates and decodes a birthdate or expiry date segment.
// proofType selects which of the two claims to extract; any other proof type
// is a structural error. found is false when the proof folded no such
// sub-proof.
func GetDateClaim(blob []byte, segmentLengths []int, proofType committed.ProofType) (*DateClaim, bool, error) {
	if !proofType.IsDate() {
		_, err := committed.DecodeDate(nil, proofType)
		return nil, false, err
	}
	seg, found, err := committed.Slice(blob, segmentLengths, proofType)
	if err != nil || !found {
		return nil, found, err
	}
	date, err := committed.DecodeDate(seg, proofType)
	if err != nil {
		return nil, true, err
	}
	return &DateClaim{
		Type:        date.Type,
		CurrentDate: date.CurrentDate,
		MinDate:     date.MinDate,
		MaxDate:     date.MaxDate,
	}, true, nil
}

// GetBirthdateClaim extracts the birthdate range claim.
func GetBirthdateClaim(blob []byte, segmentLengths []int) (*DateClaim, bool, error) {
	return GetDateClaim(blob, segmentLengths, committed.ProofTypeBirthdate)
}

// GetExpiryDateClaim extracts the expiry date range claim.
func GetExpiryDateClaim(blob []byte, segmentLengths []int) (*DateClaim, bool, error) {
	return GetDateClaim(blob, segmentLengths, committed.ProofTypeExpiryDate)
}
