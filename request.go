package zkpassport

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/zkpassport/go-zkpassport/claims"
	"github.com/zkpassport/go-zkpassport/committed"
)

// ProofRequest is the message a relying party sends to a holder's wallet to
// ask for a passport proof over a set of claims.
type ProofRequest struct {
	ID string `json:"id"`
	// Scope is the relying party's domain; it determines the nullifier
	// space of the returned proof.
	Scope string `json:"scope"`
	// Subscope optionally separates nullifier spaces within one domain.
	Subscope    string `json:"subscope,omitempty"`
	CallbackURL string `json:"callbackUrl"`
	// ValidityWindowDays is the freshness window the relying party will
	// apply at verification time.
	ValidityWindowDays uint32  `json:"validityWindowDays"`
	Queries            []Query `json:"queries"`
}

// Query describes one requested claim. Type selects which of the optional
// parameter groups applies.
type Query struct {
	Type committed.ProofType `json:"type"`
	// Fields to disclose, for disclose queries.
	Fields []string `json:"fields,omitempty"`
	// Age bounds, for age queries. MaxAge 0 means unbounded.
	MinAge uint8 `json:"minAge,omitempty"`
	MaxAge uint8 `json:"maxAge,omitempty"`
	// Date bounds as Unix timestamps, for birthdate and expiry queries.
	// Zero means unbounded.
	MinDate int64 `json:"minDate,omitempty"`
	MaxDate int64 `json:"maxDate,omitempty"`
	// Countries, for inclusion and exclusion queries.
	Countries []string `json:"countries,omitempty"`
}

// NewProofRequest creates a proof request for the relying party's domain.
func NewProofRequest(domain, callbackURL string) *ProofRequest {
	return &ProofRequest{
		ID:          uuid.NewString(),
		Scope:       domain,
		CallbackURL: callbackURL,
		Queries:     []Query{},
	}
}

// WithSubscope narrows the nullifier space within the domain.
func (r *ProofRequest) WithSubscope(subscope string) *ProofRequest {
	r.Subscope = subscope
	return r
}

// WithValidityWindow sets the freshness window the relying party will apply.
func (r *ProofRequest) WithValidityWindow(days uint32) *ProofRequest {
	r.ValidityWindowDays = days
	return r
}

// AddDiscloseQuery asks the holder to disclose the named MRZ fields.
func (r *ProofRequest) AddDiscloseQuery(fields ...string) error {
	if len(fields) == 0 {
		return errors.New("disclose query needs at least one field")
	}
	for _, f := range fields {
		if !claims.ValidFieldName(f) {
			return errors.Errorf("unknown disclosable field %q", f)
		}
	}
	r.Queries = append(r.Queries, Query{Type: committed.ProofTypeDisclose, Fields: fields})
	return nil
}

// AddAgeQuery asks for proof of minAge <= age <= maxAge (maxAge 0 means no
// upper bound).
func (r *ProofRequest) AddAgeQuery(minAge, maxAge uint8) error {
	if maxAge != 0 && maxAge < minAge {
		return errors.Errorf("age bounds [%d, %d] are inverted", minAge, maxAge)
	}
	r.Queries = append(r.Queries, Query{Type: committed.ProofTypeAge, MinAge: minAge, MaxAge: maxAge})
	return nil
}

// AddBirthdateQuery asks for proof that the birthdate lies in
// [minDate, maxDate]; a zero bound is open.
func (r *ProofRequest) AddBirthdateQuery(minDate, maxDate int64) error {
	return r.addDateQuery(committed.ProofTypeBirthdate, minDate, maxDate)
}

// AddExpiryDateQuery asks for proof that the expiry date lies in
// [minDate, maxDate]; a zero bound is open.
func (r *ProofRequest) AddExpiryDateQuery(minDate, maxDate int64) error {
	return r.addDateQuery(committed.ProofTypeExpiryDate, minDate, maxDate)
}

func (r *ProofRequest) addDateQuery(t committed.ProofType, minDate, maxDate int64) error {
	if minDate != 0 && maxDate != 0 && maxDate < minDate {
		return errors.Errorf("date bounds [%d, %d] are inverted", minDate, maxDate)
	}
	r.Queries = append(r.Queries, Query{Type: t, MinDate: minDate, MaxDate: maxDate})
	return nil
}

// AddCountryQuery asks for a country membership proof of the given type.
func (r *ProofRequest) AddCountryQuery(t committed.ProofType, countries ...string) error {
	if !t.IsCountry() {
		return errors.Errorf("%s is not a country proof type", t)
	}
	if len(countries) == 0 {
		return errors.New("country query needs at least one country code")
	}
	if len(countries) > committed.MaxCountriesPerList {
		return errors.Errorf("%d country codes exceed the list capacity of %d",
			len(countries), committed.MaxCountriesPerList)
	}
	for _, c := range countries {
		if len(c) != committed.CountryCodeLength {
			return errors.Errorf("country code %q must be %d characters", c, committed.CountryCodeLength)
		}
	}
	r.Queries = append(r.Queries, Query{Type: t, Countries: countries})
	return nil
}

// AddBindQuery asks the holder to bind opaque data (such as a wallet
// address) into the proof.
func (r *ProofRequest) AddBindQuery() {
	r.Queries = append(r.Queries, Query{Type: committed.ProofTypeBind})
}
