package models

import (
	"strings"
	"unicode"
)

// normalizeIBAN removes the spaces of the print format and uppercases the IBAN.
func normalizeIBAN(iban string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, iban))
}

// validateIBAN checks the format and the ISO 13616 check digits of a
// normalized IBAN.
func validateIBAN(iban string) error {
	if err := validate.Var(iban, "required,alphanum,min=15,max=34"); err != nil {
		return ErrIBANInvalid
	}

	for i, r := range iban {
		if i < 2 && (r < 'A' || r > 'Z') {
			return ErrIBANInvalid
		}

		if i >= 2 && i < 4 && (r < '0' || r > '9') {
			return ErrIBANInvalid
		}
	}

	// The country code and check digits are moved to the end, letters
	// count as 10 to 35. The remainder modulo 97 must be 1.
	remainder := 0
	for _, r := range iban[4:] + iban[:4] {
		switch {
		case r >= '0' && r <= '9':
			remainder = (remainder*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			remainder = (remainder*100 + int(r-'A') + 10) % 97
		default:
			return ErrIBANInvalid
		}
	}

	if remainder != 1 {
		return ErrIBANInvalid
	}

	return nil
}
