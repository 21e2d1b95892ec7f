package security

import (
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		length   int
		alphabet string
		wantErr  bool
	}{
		{name: "negative length", length: -1, alphabet: "abc", wantErr: true},
		{name: "empty alphabet", length: 1, alphabet: "", wantErr: true},
		{name: "zero length", length: 0, alphabet: ""},
		{name: "token alphabet", length: 24, alphabet: TokenAlphabet},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := RandomString(test.length, test.alphabet)
			if test.wantErr {
				if err == nil {
					t.Fatalf("RandomString(%d, %q) expected error, got nil", test.length, test.alphabet)
				}
				return
			}
			if err != nil {
				t.Fatalf("RandomString(%d, %q) returned error: %v", test.length, test.alphabet, err)
			}
			if len(got) != test.length {
				t.Fatalf("RandomString(%d, %q) len = %d, want %d", test.length, test.alphabet, len(got), test.length)
			}
			for _, char := range got {
				if !strings.ContainsRune(test.alphabet, char) {
					t.Fatalf("RandomString produced char %q outside alphabet", char)
				}
			}
		})
	}
}

func TestRandomStringDiffersBetweenCalls(t *testing.T) {
	first, err := RandomString(24, TokenAlphabet)
	if err != nil {
		t.Fatalf("RandomString returned error: %v", err)
	}
	second, err := RandomString(24, TokenAlphabet)
	if err != nil {
		t.Fatalf("RandomString returned error: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct token ids, got %q twice", first)
	}
}
