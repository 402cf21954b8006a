package cmd

import (
	"slices"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func addFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("add", pflag.ContinueOnError)
	fs.Int("building", 0, "")
	fs.Bool("manager", false, "")
	fs.String("id", "", "")
	fs.String("unavailable", "", "")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return fs
}

func TestStudentFromFlags(t *testing.T) {
	fs := addFlags(t, "--building", "4", "--manager", "--id", " s-1 ", "--unavailable", "1-3,8")

	s, err := studentFromFlags(fs, " Ada ", testPeriod(t))
	if err != nil {
		t.Fatalf("studentFromFlags: %v", err)
	}
	if s.ID != "s-1" || s.Name != "Ada" || s.Building != 4 || !s.IsManager {
		t.Errorf("student = %+v", s)
	}
	if !slices.Equal(s.Unavailables, []int{1, 2, 3, 8}) {
		t.Errorf("Unavailables = %v", s.Unavailables)
	}
}

func TestStudentFromFlagsAppliesFieldRules(t *testing.T) {
	tests := []struct {
		name    string
		student string
		args    []string
		wantErr string
	}{
		{"missing building", "Ada", nil, "Missing building"},
		{"building out of range", "Ada", []string{"--building", "21"}, "Building must be a number from 1 to 20"},
		{"zero building", "Ada", []string{"--building", "0"}, "Building must be a number from 1 to 20"},
		{"name too long", strings.Repeat("a", 81), []string{"--building", "1"}, "Name is too long"},
		{"id too long", "Ada", []string{"--building", "1", "--id", strings.Repeat("x", 65)}, "ID must be at most 64 printable characters"},
		{"id not printable", "Ada", []string{"--building", "1", "--id", "a\tb"}, "ID must be at most 64 printable characters"},
		{"day outside period", "Ada", []string{"--building", "1", "--unavailable", "40"}, "outside the period"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := studentFromFlags(addFlags(t, tt.args...), tt.student, testPeriod(t))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("got %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
