package claims

import (
	"github.com/zkpassport/go-zkpassport/committed"
)

// CountryClaim is a decoded country membership claim. For inclusion types
// the document's country is one of List; for exclusion types it is none of
// them. List keeps the encoded order.
type CountryClaim struct {
	Type committed.ProofType
	List []string
}

// GetCountryClaim locates and decodes one of the four country list segments.
// Any non-country proof type is a structural error. found is false when the
// proof folded no such sub-proof.
func GetCountryClaim(blob []byte, segmentLengths []int, proofType committed.ProofType) (*CountryClaim, bool, error) {
	if !proofType.IsCountry() {
		_, err := committed.DecodeCountryList(nil, proofType)
		return nil, false, err
	}
	seg, found, err := committed.Slice(blob, segmentLengths, proofType)
	if err != nil || !found {
		return nil, found, err
	}
	list, err := committed.DecodeCountryList(seg, proofType)
	if err != nil {
		return nil, true, err
	}
	return &CountryClaim{Type: list.Type, List: list.List}, true, nil
}
