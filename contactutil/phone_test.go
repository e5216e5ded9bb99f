package contactutil

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "domestic", in: "0501234567", want: "+380501234567"},
		{name: "domestic formatted", in: "(050) 123-45-67", want: "+380501234567"},
		{name: "international", in: "380501234567", want: "+380501234567"},
		{name: "international with plus", in: "+38 (050) 123-45-67", want: "+380501234567"},
		{name: "foreign 12 digits", in: "+44 7911 123456", want: "+447911123456"},
		{name: "surrounding spaces", in: "  0501234567  ", want: "+380501234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.in)
			if err != nil {
				t.Fatalf("NormalizePhone(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone_Rejects(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "too short", in: "123", want: ErrPhoneLength},
		{name: "eleven digits", in: "05012345678", want: ErrPhoneLength},
		{name: "thirteen digits", in: "3805012345678", want: ErrPhoneLength},
		{name: "empty", in: "", want: ErrPhoneLength},
		{name: "letters", in: "050-12a-45-67", want: ErrPhoneFormat},
		{name: "dots", in: "050.123.45.67", want: ErrPhoneFormat},
		{name: "double plus", in: "++380501234567", want: ErrPhoneFormat},
		{name: "inner plus", in: "38+0501234567", want: ErrPhoneFormat},
		{name: "non ascii digits", in: "٠٥٠١٢٣٤٥٦٧", want: ErrPhoneFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizePhone(tt.in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("NormalizePhone(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestNormalizePhone_CanonicalShape(t *testing.T) {
	inputs := []string{"0501234567", "+380501234567", "(067) 000-00-00", "123456789012", "+1 (234) 567-890-12"}
	for _, in := range inputs {
		got, err := NormalizePhone(in)
		if err != nil {
			t.Fatalf("NormalizePhone(%q) unexpected error: %v", in, err)
		}
		if !strings.HasPrefix(got, "+") || len(got) != 13 {
			t.Fatalf("NormalizePhone(%q) = %q, want '+' and 12 digits", in, got)
		}
		again, err := NormalizePhone(got)
		if err != nil || again != got {
			t.Fatalf("NormalizePhone is not idempotent for %q: %q, %v", got, again, err)
		}
	}
}
