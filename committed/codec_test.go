package committed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEncodeCountries(t *testing.T, pt ProofType, codes ...string) []byte {
	t.Helper()
	seg, err := EncodeCountryList(pt, codes)
	require.NoError(t, err)
	return seg
}

// buildFixtureBlob assembles the eight-segment blob used across the codec
// tests: disclose, four country lists, age, birthdate and expiry date.
func buildFixtureBlob(t *testing.T) ([]byte, []int) {
	t.Helper()

	var mask, data [FieldBlockLength]byte
	for i := range mask {
		mask[i] = 1
		data[i] = 'A'
	}
	disclose, err := EncodeDisclose(mask, data, nil)
	require.NoError(t, err)

	birthdate, err := EncodeDate(ProofTypeBirthdate, 1744848000, 0, 1136073600)
	require.NoError(t, err)
	expiry, err := EncodeDate(ProofTypeExpiryDate, 1744848000, 1744848000, 0)
	require.NoError(t, err)

	segments := [][]byte{
		disclose,
		mustEncodeCountries(t, ProofTypeNationalityInclusion, "AUS", "FRA", "USA", "GBR"),
		mustEncodeCountries(t, ProofTypeNationalityExclusion, "PRK"),
		mustEncodeCountries(t, ProofTypeIssuingCountryInclusion, "AUS"),
		mustEncodeCountries(t, ProofTypeIssuingCountryExclusion, "ESP", "ITA", "PRT"),
		EncodeAge(1744848000, 18, 0),
		birthdate,
		expiry,
	}

	var blob []byte
	var lengths []int
	for _, seg := range segments {
		blob = append(blob, seg...)
		lengths = append(lengths, len(seg))
	}
	return blob, lengths
}

func TestLocateEverySegmentOnce(t *testing.T) {
	blob, lengths := buildFixtureBlob(t)
	require.Equal(t, []int{181, 601, 601, 601, 601, 11, 25, 25}, lengths)

	wantOffsets := map[ProofType]Segment{
		ProofTypeDisclose:                {Offset: 0, Length: 181},
		ProofTypeNationalityInclusion:    {Offset: 181, Length: 601},
		ProofTypeNationalityExclusion:    {Offset: 782, Length: 601},
		ProofTypeIssuingCountryInclusion: {Offset: 1383, Length: 601},
		ProofTypeIssuingCountryExclusion: {Offset: 1984, Length: 601},
		ProofTypeAge:                     {Offset: 2585, Length: 11},
		ProofTypeBirthdate:               {Offset: 2596, Length: 25},
		ProofTypeExpiryDate:              {Offset: 2621, Length: 25},
	}

	seen := map[int]bool{}
	for pt, want := range wantOffsets {
		seg, found, err := Locate(blob, lengths, pt)
		require.NoError(t, err, pt.String())
		require.True(t, found, pt.String())
		assert.Equal(t, want, seg, pt.String())
		assert.False(t, seen[seg.Offset], "segments must not overlap")
		seen[seg.Offset] = true
		assert.LessOrEqual(t, seg.Offset+seg.Length, len(blob))
	}
}

func TestLocateAbsentTagIsNotAnError(t *testing.T) {
	blob, lengths := buildFixtureBlob(t)

	seg, found, err := Locate(blob, lengths, ProofTypeBind)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, Segment{}, seg)
}

func TestLocateLengthMismatch(t *testing.T) {
	blob, lengths := buildFixtureBlob(t)

	// described shorter than the blob
	short := append([]int{}, lengths[:len(lengths)-1]...)
	_, _, err := Locate(blob, short, ProofTypeAge)
	require.ErrorIs(t, err, ErrStructural)

	// described longer than the blob
	long := append(append([]int{}, lengths...), 25)
	_, _, err = Locate(blob, long, ProofTypeAge)
	require.ErrorIs(t, err, ErrStructural)

	// zero-length segment cannot carry a tag
	zero := append(append([]int{}, lengths...), 0)
	_, _, err = Locate(blob, zero, ProofTypeAge)
	require.ErrorIs(t, err, ErrStructural)
}

func TestSliceAliasesBlob(t *testing.T) {
	blob, lengths := buildFixtureBlob(t)

	seg, found, err := Slice(blob, lengths, ProofTypeAge)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, seg, AgeSegmentLength)
	assert.Equal(t, byte(ProofTypeAge), seg[0])
}

func TestDecodeIsPure(t *testing.T) {
	blob, lengths := buildFixtureBlob(t)

	seg, found, err := Slice(blob, lengths, ProofTypeNationalityInclusion)
	require.NoError(t, err)
	require.True(t, found)

	first, err := DecodeCountryList(seg, ProofTypeNationalityInclusion)
	require.NoError(t, err)
	second, err := DecodeCountryList(seg, ProofTypeNationalityInclusion)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProofTypeClassification(t *testing.T) {
	assert.True(t, ProofTypeNationalityInclusion.IsCountry())
	assert.True(t, ProofTypeIssuingCountryExclusion.IsCountry())
	assert.False(t, ProofTypeAge.IsCountry())
	assert.True(t, ProofTypeBirthdate.IsDate())
	assert.True(t, ProofTypeExpiryDate.IsDate())
	assert.False(t, ProofTypeDisclose.IsDate())
	assert.True(t, ProofTypeBind.Valid())
	assert.False(t, ProofType(42).Valid())
	assert.Equal(t, "unknown", ProofType(42).String())
	assert.Equal(t, 0, ProofTypeBind.SegmentLength())
	assert.Equal(t, DiscloseSegmentLength, ProofTypeDisclose.SegmentLength())
}
