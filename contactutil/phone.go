package contactutil

import (
	"errors"
	"strings"
)

// DefaultCountryCode prefixes 10-digit domestic numbers.
const DefaultCountryCode = "38"

const (
	domesticDigits      = 10
	internationalDigits = 12
)

var (
	ErrPhoneFormat = errors.New("phone contains non-digit characters")
	ErrPhoneLength = errors.New("phone must have 10 or 12 digits")
)

var phoneSeparators = strings.NewReplacer("(", "", ")", "", "-", "", " ", "")

// NormalizePhone converts a raw phone into "+" followed by 12 digits.
//
// One leading '+' is dropped, then parentheses, dashes and spaces are removed
// anywhere. What is left must be ASCII digits: 12 digits are kept as is,
// 10 digits get DefaultCountryCode in front.
//
//	"+38 (050) 123-45-67" -> "+380501234567"
//	"050-123-45-67"       -> "+380501234567"
//	"123"                 -> ErrPhoneLength
//	"050-12a-45-67"       -> ErrPhoneFormat
func NormalizePhone(raw string) (string, error) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "+")
	s = phoneSeparators.Replace(s)

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", ErrPhoneFormat
		}
	}

	switch len(s) {
	case internationalDigits:
		return "+" + s, nil
	case domesticDigits:
		return "+" + DefaultCountryCode + s, nil
	default:
		return "", ErrPhoneLength
	}
}
