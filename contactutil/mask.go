package contactutil

import (
	"strings"
	"unicode"
)

const (
	shortDigitCountThreshold = 4
	keepShortDigits          = 1
	keepLongDigits           = 4
)

// MaskPhone hides all but the last digits of a phone for logs, keeping
// formatting symbols in place:
//
//	"+380501234567" -> "+********4567"
//	"1234"          -> "***4"
//	"abc"           -> "**c"
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	runes := []rune(phone)
	total := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			total++
		}
	}
	if total == 0 {
		return maskAllButLast(runes)
	}

	keep := keepLongDigits
	if total <= shortDigitCountThreshold {
		keep = keepShortDigits
	}

	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsDigit(runes[i]) {
			seen++
			if seen > keep {
				runes[i] = '*'
			}
		}
	}
	return string(runes)
}

func maskAllButLast(runes []rune) string {
	for i := 0; i < len(runes)-1; i++ {
		if unicode.IsLetter(runes[i]) {
			runes[i] = '*'
		}
	}
	return string(runes)
}
