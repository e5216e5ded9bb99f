package contactutil

import "testing"

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "canonical", in: "+380501234567", want: "+********4567"},
		{name: "formatted", in: "(050) 123-45-67", want: "(***) ***-45-67"},
		{name: "short", in: "1234", want: "***4"},
		{name: "single", in: "1", want: "1"},
		{name: "no digits", in: "abc", want: "**c"},
		{name: "empty", in: "  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskPhone(tt.in); got != tt.want {
				t.Fatalf("MaskPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
