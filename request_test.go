package zkpassport_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	zkpassport "github.com/zkpassport/go-zkpassport"
	"github.com/zkpassport/go-zkpassport/claims"
	"github.com/zkpassport/go-zkpassport/committed"
)

func TestNewProofRequest(t *testing.T) {
	r := zkpassport.NewProofRequest("app.example.com", "https://app.example.com/callback").
		WithSubscope("checkout").
		WithValidityWindow(7)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "app.example.com", r.Scope)
	assert.Equal(t, "checkout", r.Subscope)
	assert.Equal(t, uint32(7), r.ValidityWindowDays)
	assert.Empty(t, r.Queries)

	// ids are unique per request
	other := zkpassport.NewProofRequest("app.example.com", "https://app.example.com/callback")
	assert.NotEqual(t, r.ID, other.ID)
}

func TestAddQueries(t *testing.T) {
	r := zkpassport.NewProofRequest("app.example.com", "https://app.example.com/callback")

	require.NoError(t, r.AddDiscloseQuery(claims.FieldNationality, claims.FieldDateOfBirth))
	require.NoError(t, r.AddAgeQuery(18, 0))
	require.NoError(t, r.AddBirthdateQuery(0, 1136073600))
	require.NoError(t, r.AddExpiryDateQuery(1744848000, 0))
	require.NoError(t, r.AddCountryQuery(committed.ProofTypeNationalityInclusion, "AUS", "FRA"))
	r.AddBindQuery()

	require.Len(t, r.Queries, 6)
	assert.Equal(t, committed.ProofTypeDisclose, r.Queries[0].Type)
	assert.Equal(t, []string{claims.FieldNationality, claims.FieldDateOfBirth}, r.Queries[0].Fields)
	assert.Equal(t, uint8(18), r.Queries[1].MinAge)
	assert.Equal(t, int64(1136073600), r.Queries[2].MaxDate)
	assert.Equal(t, committed.ProofTypeBind, r.Queries[5].Type)
}

func TestAddQueryValidation(t *testing.T) {
	r := zkpassport.NewProofRequest("app.example.com", "https://app.example.com/callback")

	require.Error(t, r.AddDiscloseQuery())
	require.Error(t, r.AddDiscloseQuery("shoe_size"))
	require.Error(t, r.AddAgeQuery(21, 18))
	require.Error(t, r.AddBirthdateQuery(1136073600, 100))
	require.Error(t, r.AddCountryQuery(committed.ProofTypeAge, "AUS"))
	require.Error(t, r.AddCountryQuery(committed.ProofTypeNationalityInclusion))
	require.Error(t, r.AddCountryQuery(committed.ProofTypeNationalityInclusion, "AUSTRALIA"))

	tooMany := make([]string, committed.MaxCountriesPerList+1)
	for i := range tooMany {
		tooMany[i] = "AUS"
	}
	require.Error(t, r.AddCountryQuery(committed.ProofTypeNationalityExclusion, tooMany...))

	assert.Empty(t, r.Queries)
}

func TestProofRequestJSONShape(t *testing.T) {
	r := zkpassport.NewProofRequest("app.example.com", "https://app.example.com/callback")
	require.NoError(t, r.AddAgeQuery(18, 0))

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `"scope":"app.example.com"`))
	// empty subscope is omitted from the wire form
	assert.False(t, strings.Contains(string(raw), "subscope"))

	var decoded zkpassport.ProofRequest
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, r.ID, decoded.ID)
	require.Len(t, decoded.Queries, 1)
	assert.Equal(t, committed.ProofTypeAge, decoded.Queries[0].Type)
}
