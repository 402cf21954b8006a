package studentform

import (
	"strings"
	"testing"
)

func TestValidateField(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		wantErr string
	}{
		{FieldName, "Ada", ""},
		{FieldName, "", "Missing name"},
		{FieldName, "  ", "Missing name"},
		{FieldName, strings.Repeat("a", 81), "Name is too long"},
		{FieldBuilding, "1", ""},
		{FieldBuilding, " 20 ", ""},
		{FieldBuilding, "", "Missing building"},
		{FieldBuilding, "0", "Building must be a number from 1 to 20"},
		{FieldBuilding, "21", "Building must be a number from 1 to 20"},
		{FieldBuilding, "x", "Building must be a number from 1 to 20"},
		{FieldID, "", ""},
		{FieldID, "abc123", ""},
		{FieldID, strings.Repeat("a", 65), "ID must be at most 64 printable characters"},
		{FieldManager, "anything", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key+"/"+tt.value, func(t *testing.T) {
			err := ValidateField(tt.key, tt.value)
			switch {
			case tt.wantErr == "" && err != nil:
				t.Errorf("unexpected error: %v", err)
			case tt.wantErr != "" && (err == nil || err.Error() != tt.wantErr):
				t.Errorf("got %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestErrorListOrder(t *testing.T) {
	fs := NewFormState()
	fs.Errors = fs.Validate()

	got := fs.ErrorList()
	if len(got) != 2 || got[0] != "Missing name" || got[1] != "Missing building" {
		t.Errorf("ErrorList() = %v", got)
	}
}

func TestValidateStudent(t *testing.T) {
	if err := ValidateStudent("Ada", "3", ""); err != nil {
		t.Errorf("valid record: %v", err)
	}

	err := ValidateStudent("", "42", strings.Repeat("a", 65))
	if err == nil {
		t.Fatal("expected errors")
	}
	want := "Missing name\nBuilding must be a number from 1 to 20\nID must be at most 64 printable characters"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
