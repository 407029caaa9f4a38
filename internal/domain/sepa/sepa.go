// Package sepa validates the identifiers used by SEPA direct debits: IBANs
// (ISO 13616), BICs (ISO 9362) and SEPA creditor identifiers.
package sepa

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrIBANLength         = errors.New("sepa: iban has invalid length")
	ErrIBANFormat         = errors.New("sepa: iban has invalid characters")
	ErrIBANChecksum       = errors.New("sepa: iban checksum mismatch")
	ErrBICFormat          = errors.New("sepa: bic has invalid format")
	ErrCreditorIDFormat   = errors.New("sepa: creditor identifier has invalid format")
	ErrCreditorIDChecksum = errors.New("sepa: creditor identifier checksum mismatch")
)

// ibanLengths holds the fixed IBAN length of SEPA scheme countries.
var ibanLengths = map[string]int{
	"AD": 24, "AT": 20, "BE": 16, "BG": 22, "CH": 21, "CY": 28, "CZ": 24, "DE": 22,
	"DK": 18, "EE": 20, "ES": 24, "FI": 18, "FR": 27, "GB": 22, "GI": 23, "GR": 27,
	"HR": 21, "HU": 28, "IE": 22, "IS": 26, "IT": 27, "LI": 21, "LT": 20, "LU": 20,
	"LV": 21, "MC": 27, "MT": 31, "NL": 18, "NO": 15, "PL": 28, "PT": 25, "RO": 24,
	"SE": 24, "SI": 19, "SK": 24, "SM": 27, "VA": 22,
}

var (
	ibanPattern       = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{11,30}$`)
	bicPattern        = regexp.MustCompile(`^[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	creditorIDPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{3}[A-Z0-9]{1,28}$`)
)

// NormalizeIBAN strips spaces and upper-cases an IBAN.
func NormalizeIBAN(iban string) string {
	return strings.ToUpper(strings.Join(strings.Fields(iban), ""))
}

// ValidateIBAN checks format, country length and the ISO 7064 mod 97-10 checksum
// of a normalised IBAN.
func ValidateIBAN(iban string) error {
	iban = NormalizeIBAN(iban)
	if len(iban) < 15 || len(iban) > 34 {
		return ErrIBANLength
	}
	if !ibanPattern.MatchString(iban) {
		return ErrIBANFormat
	}
	if want, ok := ibanLengths[iban[:2]]; ok && len(iban) != want {
		return ErrIBANLength
	}
	if mod97(iban[4:]+iban[:4]) != 1 {
		return ErrIBANChecksum
	}
	return nil
}

// ValidateBIC checks the ISO 9362 shape of a BIC (8 or 11 characters).
func ValidateBIC(bic string) error {
	if !bicPattern.MatchString(strings.ToUpper(strings.TrimSpace(bic))) {
		return ErrBICFormat
	}
	return nil
}

// ValidateCreditorID checks a SEPA creditor identifier: country code, two check
// digits, a three character business code that is excluded from the checksum,
// and the national identifier.
func ValidateCreditorID(id string) error {
	id = NormalizeIBAN(id)
	if !creditorIDPattern.MatchString(id) {
		return ErrCreditorIDFormat
	}
	if mod97(id[7:]+id[:4]) != 1 {
		return ErrCreditorIDChecksum
	}
	return nil
}

// CreditorIDCheckDigits computes the check digits for a creditor identifier made
// of country, business code and national id.
func CreditorIDCheckDigits(country, nationalID string) string {
	d := 98 - mod97(strings.ToUpper(nationalID+country)+"00")
	return string([]byte{byte('0' + d/10), byte('0' + d%10)})
}

// IBANCheckDigits computes the check digits for a country and BBAN.
func IBANCheckDigits(country, bban string) string {
	d := 98 - mod97(strings.ToUpper(bban+country)+"00")
	return string([]byte{byte('0' + d/10), byte('0' + d%10)})
}

// mod97 computes the remainder of the alphanumeric string s (letters mapped to
// 10..35) divided by 97, digit by digit.
func mod97(s string) int {
	r := 0
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
			r = (r*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			r = (r*100 + v) % 97
		default:
			return -1
		}
	}
	return r
}
