// Package claims provides the read-only claim extractors built on top of
// the committed-input codec.
//
// Extractors perform no cryptographic checks. They trust the caller to have
// verified a proof over the same (committedInputs, segmentLengths) pair
// before relying on anything extracted here.
package claims

import (
	"github.com/zkpassport/go-zkpassport/committed"
)

// MRZ field boundaries inside the 69-byte disclosed field block. Shared
// with the circuit side; must not drift independently.
const (
	issuingCountryStart = 0
	issuingCountryEnd   = 3
	nationalityStart    = 3
	nationalityEnd      = 6
	documentTypeStart   = 6
	documentTypeEnd     = 8
	documentNumberStart = 8
	documentNumberEnd   = 17
	dateOfExpiryStart   = 17
	dateOfExpiryEnd     = 23
	dateOfBirthStart    = 23
	dateOfBirthEnd      = 29
	nameStart           = 29
	nameEnd             = 68
	genderStart         = 68
	genderEnd           = 69
)

// MaskedPlaceholder substitutes undisclosed bytes, following the ICAO
// padding convention.
const MaskedPlaceholder = '<'

// DisclosedData is the structured view of the disclosed MRZ field block.
// Undisclosed bytes appear as MaskedPlaceholder; a field the holder withheld
// entirely is empty unless placeholders were requested.
type DisclosedData struct {
	IssuingCountry string `json:"issuingCountry"`
	Nationality    string `json:"nationality"`
	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber"`
	DateOfExpiry   string `json:"dateOfExpiry"`
	DateOfBirth    string `json:"dateOfBirth"`
	Name           string `json:"name"`
	Gender         string `json:"gender"`
}

// GetDisclosedData locates the disclose segment and decodes the masked MRZ
// field block. found is false when the proof folded no disclose sub-proof.
//
// With includeMaskedPlaceholders set, every field keeps its full width and
// undisclosed positions read as '<'. Without it, fields the holder withheld
// entirely come back empty; partially disclosed fields keep placeholders so
// character positions stay meaningful.
func GetDisclosedData(blob []byte, segmentLengths []int, includeMaskedPlaceholders bool) (*DisclosedData, bool, error) {
	seg, found, err := committed.Slice(blob, segmentLengths, committed.ProofTypeDisclose)
	if err != nil || !found {
		return nil, found, err
	}
	dis, err := committed.DecodeDisclose(seg)
	if err != nil {
		return nil, true, err
	}

	merged := make([]byte, committed.FieldBlockLength)
	for i := 0; i < committed.FieldBlockLength; i++ {
		if dis.Mask[i] != 0 {
			merged[i] = dis.Data[i]
		} else {
			merged[i] = MaskedPlaceholder
		}
	}

	field := func(start, end int) string {
		if !includeMaskedPlaceholders && fullyMasked(dis.Mask[start:end]) {
			return ""
		}
		return string(merged[start:end])
	}

	return &DisclosedData{
		IssuingCountry: field(issuingCountryStart, issuingCountryEnd),
		Nationality:    field(nationalityStart, nationalityEnd),
		DocumentType:   field(documentTypeStart, documentTypeEnd),
		DocumentNumber: field(documentNumberStart, documentNumberEnd),
		DateOfExpiry:   field(dateOfExpiryStart, dateOfExpiryEnd),
		DateOfBirth:    field(dateOfBirthStart, dateOfBirthEnd),
		Name:           field(nameStart, nameEnd),
		Gender:         field(genderStart, genderEnd),
	}, true, nil
}

func fullyMasked(mask []byte) bool {
	for _, b := range mask {
		if b != 0 {
			return false
		}
	}
	return true
}
