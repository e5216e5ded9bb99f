package textutil

import "testing"

func TestNormalizeName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "padded", input: " john ", want: "John"},
		{name: "upper", input: "JOHN", want: "John"},
		{name: "lower", input: "john", want: "John"},
		{name: "underscore", input: "john_smith", want: "John_Smith"},
		{name: "two words", input: "  mary   ANN ", want: "Mary Ann"},
		{name: "apostrophe", input: "o'neil", want: "O'Neil"},
		{name: "digit prefix", input: "2pac", want: "2Pac"},
		{name: "cyrillic", input: "\u041e\u041b\u0415\u041d\u0410", want: "\u041e\u043b\u0435\u043d\u0430"},
		{name: "empty", input: "   ", want: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeName(tt.input); got != tt.want {
				t.Fatalf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeName_Idempotent(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"john_smith", "Mary Ann", "o'NEIL"} {
		once := NormalizeName(in)
		if twice := NormalizeName(once); twice != once {
			t.Fatalf("not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestNormalizeName_NFC(t *testing.T) {
	t.Parallel()

	decomposed := "jose\u0301"
	composed := "jos\u00e9"
	if NormalizeName(decomposed) != NormalizeName(composed) {
		t.Fatalf("expected equal keys for %q and %q", decomposed, composed)
	}
}
