package claims

import (
	"github.com/zkpassport/go-zkpassport/committed"
)

// GetBoundData locates the bind segment and returns its opaque payload
// (typically data the holder bound to the proof, such as a wallet address).
// The layout of the payload is defined by a companion specification; it is
// passed through untouched. found is false when the proof folded no bind
// sub-proof.
func GetBoundData(blob []byte, segmentLengths []int) ([]byte, bool, error) {
	seg, found, err := committed.Slice(blob, segmentLengths, committed.ProofTypeBind)
	if err != nil || !found {
		return nil, found, err
	}
	bind, err := committed.DecodeBind(seg)
	if err != nil {
		return nil, true, err
	}
	return bind.Data, true, nil
}
