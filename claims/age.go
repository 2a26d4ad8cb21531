package claims

import (
	"github.com/zkpassport/go-zkpassport/committed"
)

// AgeClaim is the decoded age bound claim: the holder proved their age is
// within [MinAge, MaxAge] as of CurrentDate.
type AgeClaim struct {
	// CurrentDate is the prover's current date, Unix seconds truncated to a
	// day boundary.
	CurrentDate int64
	MinAge      uint8
	// MaxAge of 0 means the claim carries no upper bound.
	MaxAge uint8
}

// GetAgeClaim locates and decodes the age segment. found is false when the
// proof folded no age sub-proof.
func GetAgeClaim(blob []byte, segmentLengths []int) (*AgeClaim, bool, error) {
	seg, found, err := committed.Slice(blob, segmentLengths, committed.ProofTypeAge)
	if err != nil || !found {
		return nil, found, err
	}
	age, err := committed.DecodeAge(seg)
	if err != nil {
		return nil, true, err
	}
	return &AgeClaim{CurrentDate: age.CurrentDate, MinAge: age.MinAge, MaxAge: age.MaxAge}, true, nil
}
