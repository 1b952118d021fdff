package hash

import "testing"

func TestSHA256Hex(t *testing.T) {
	// Known SHA256 of "hello"
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got := SHA256Hex("hello"); got != want {
		t.Errorf("SHA256Hex(\"hello\") = %s, want %s", got, want)
	}
}

func TestSHA256Hex_Empty(t *testing.T) {
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got := SHA256Hex(""); got != want {
		t.Errorf("SHA256Hex(\"\") = %s, want %s", got, want)
	}
}

func TestShortHash(t *testing.T) {
	full := SHA256Hex("192.168.1.1")

	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{"12 chars", "192.168.1.1", 12, full[:12]},
		{"4 chars", "192.168.1.1", 4, full[:4]},
		{"n beyond hash length", "192.168.1.1", 100, full},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortHash(tt.input, tt.n); got != tt.want {
				t.Errorf("ShortHash(%q, %d) = %s, want %s", tt.input, tt.n, got, tt.want)
			}
		})
	}
}

func TestShortHash_Deterministic(t *testing.T) {
	if ShortHash("10.0.0.1", 12) != ShortHash("10.0.0.1", 12) {
		t.Error("ShortHash should be deterministic")
	}
	if ShortHash("10.0.0.1", 12) == ShortHash("10.0.0.2", 12) {
		t.Error("different inputs should produce different hashes")
	}
}
