package db

import (
	"strings"
	"testing"
)

func TestNewStudentIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewStudentID()
		if seen[id] {
			t.Fatalf("duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestIDGeneratorOverride(t *testing.T) {
	orig := idGenerator
	defer func() { idGenerator = orig }()

	idGenerator = func() string { return "fixed" }
	if got := NewStudentID(); got != "fixed" {
		t.Errorf("NewStudentID() = %q, want fixed", got)
	}
}

func TestNormalizeStudentID(t *testing.T) {
	upper := strings.ToUpper("0b8f6a52-8c1e-4d59-9d1f-6a3e1f2b9c10")
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"  abc123 ", "abc123"},
		{"ABC123", "ABC123"},
		{upper, strings.ToLower(upper)},
	}
	for _, tt := range tests {
		if got := NormalizeStudentID(tt.in); got != tt.want {
			t.Errorf("NormalizeStudentID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
