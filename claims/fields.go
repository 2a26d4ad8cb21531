package claims

import (
	"github.com/pkg/errors"

	"github.com/zkpassport/go-zkpassport/committed"
)

// Disclosable MRZ field names, as used in proof requests and disclosure
// masks.
const (
	FieldIssuingCountry = "issuing_country"
	FieldNationality    = "nationality"
	FieldDocumentType   = "document_type"
	FieldDocumentNumber = "document_number"
	FieldDateOfExpiry   = "date_of_expiry"
	FieldDateOfBirth    = "date_of_birth"
	FieldName           = "name"
	FieldGender         = "gender"
)

type fieldRange struct {
	start, end int
}

var fieldRanges = map[string]fieldRange{
	FieldIssuingCountry: {issuingCountryStart, issuingCountryEnd},
	FieldNationality:    {nationalityStart, nationalityEnd},
	FieldDocumentType:   {documentTypeStart, documentTypeEnd},
	FieldDocumentNumber: {documentNumberStart, documentNumberEnd},
	FieldDateOfExpiry:   {dateOfExpiryStart, dateOfExpiryEnd},
	FieldDateOfBirth:    {dateOfBirthStart, dateOfBirthEnd},
	FieldName:           {nameStart, nameEnd},
	FieldGender:         {genderStart, genderEnd},
}

// ValidFieldName reports whether name is a disclosable MRZ field.
func ValidFieldName(name string) bool {
	_, ok := fieldRanges[name]
	return ok
}

// MaskForFields builds a disclosure mask covering the named fields.
func MaskForFields(fields ...string) ([committed.FieldBlockLength]byte, error) {
	var mask [committed.FieldBlockLength]byte
	for _, name := range fields {
		r, ok := fieldRanges[name]
		if !ok {
			return mask, errors.Errorf("unknown disclosable field %q", name)
		}
		for i := r.start; i < r.end; i++ {
			mask[i] = 1
		}
	}
	return mask, nil
}
