// Package committed implements the committed-input codec: locating and
// decoding the self-describing binary segments that the recursive proof
// commits to, one segment per folded sub-proof.
//
// The blob is the concatenation of N segments whose lengths are supplied
// out-of-band by the caller. Each segment starts with a ProofType tag byte;
// the tag only selects the interpretation of bytes the caller-asserted
// lengths have already delimited.
package committed

import (
	"github.com/pkg/errors"
)

// ErrStructural is the class of all caller-fixable structural failures:
// segment length mismatches, out-of-bounds ranges, unknown tags and
// malformed payloads. A structural error never indicates a forged proof.
var ErrStructural = errors.New("structural error")

func structuralf(format string, args ...interface{}) error {
	return errors.WithMessagef(ErrStructural, format, args...)
}

// Segment is the located byte range of one committed input segment.
type Segment struct {
	Offset int
	Length int
}

// Locate scans the segments delimited by segmentLengths in order and returns
// the range of the first segment tagged with the wanted proof type.
//
// A missing tag is a legitimate outcome, reported as found=false with a nil
// error: a proof may fold only a subset of claim types. Errors are reserved
// for structural violations of the blob itself.
func Locate(blob []byte, segmentLengths []int, want ProofType) (Segment, bool, error) {
	if err := ValidateLayout(blob, segmentLengths); err != nil {
		return Segment{}, false, err
	}

	offset := 0
	for _, length := range segmentLengths {
		if ProofType(blob[offset]) == want {
			return Segment{Offset: offset, Length: length}, true, nil
		}
		offset += length
	}
	return Segment{}, false, nil
}

// Slice locates the wanted proof type and returns the segment bytes, tag
// included. The returned slice aliases blob.
func Slice(blob []byte, segmentLengths []int, want ProofType) ([]byte, bool, error) {
	seg, found, err := Locate(blob, segmentLengths, want)
	if err != nil || !found {
		return nil, found, err
	}
	return blob[seg.Offset : seg.Offset+seg.Length], true, nil
}

// ValidateLayout enforces the structural invariant
// sum(segmentLengths) == len(blob) with every segment long enough to carry
// its tag byte.
func ValidateLayout(blob []byte, segmentLengths []int) error {
	sum := 0
	for i, length := range segmentLengths {
		if length < TagLength {
			return structuralf("segment %d has length %d, below the %d-byte tag", i, length, TagLength)
		}
		sum += length
		if sum > len(blob) {
			return structuralf("segments exceed committed inputs: %d+ bytes described, %d present", sum, len(blob))
		}
	}
	if sum != len(blob) {
		return structuralf("segment lengths sum to %d, committed inputs hold %d bytes", sum, len(blob))
	}
	return nil
}
