package studentform

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/marcus/duty/internal/models"
)

// Field keys, shared by the huh fields and the rule table
const (
	FieldName     = "name"
	FieldManager  = "isManager"
	FieldBuilding = "building"
	FieldID       = "id"
)

// fieldRule declares how one text field is validated. StringTag applies to
// the trimmed text; IntTag, when set, requires the text to parse as an int
// that satisfies it.
type fieldRule struct {
	Label      string
	Required   bool
	Message    string // shown when a required value is missing
	StringTag  string
	IntTag     string
	TagMessage string // shown when a tag check fails
}

var fieldRules = map[string]fieldRule{
	FieldName: {
		Label:      "Name",
		Required:   true,
		Message:    "Missing name",
		StringTag:  "max=80",
		TagMessage: "Name is too long",
	},
	FieldBuilding: {
		Label:      "Living Building Number",
		Required:   true,
		Message:    "Missing building",
		IntTag:     "min=" + strconv.Itoa(models.MinBuilding) + ",max=" + strconv.Itoa(models.MaxBuilding),
		TagMessage: "Building must be a number from 1 to 20",
	},
	FieldID: {
		Label:      "Student ID",
		StringTag:  "max=64,printascii",
		TagMessage: "ID must be at most 64 printable characters",
	},
}

// ruleOrder is the order errors are reported in
var ruleOrder = []string{FieldName, FieldBuilding, FieldID}

var validate = validator.New()

// ValidateField checks raw against the rule for key (FieldName,
// FieldBuilding, FieldID). Unknown keys pass.
func ValidateField(key, raw string) error {
	rule, ok := fieldRules[key]
	if !ok {
		return nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		if rule.Required {
			return errors.New(rule.Message)
		}
		return nil
	}

	if rule.StringTag != "" {
		if err := validate.Var(value, rule.StringTag); err != nil {
			return errors.New(rule.TagMessage)
		}
	}

	if rule.IntTag != "" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.New(rule.TagMessage)
		}
		if err := validate.Var(n, rule.IntTag); err != nil {
			return errors.New(rule.TagMessage)
		}
	}
	return nil
}

// ValidateStudent runs the field rules over the raw text of a record and
// joins the failures in field order
func ValidateStudent(name, building, id string) error {
	values := map[string]string{
		FieldName:     name,
		FieldBuilding: building,
		FieldID:       id,
	}
	var errs []error
	for _, key := range ruleOrder {
		if err := ValidateField(key, values[key]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// fieldValidator adapts ValidateField to huh's Validate hook
func fieldValidator(key string) func(string) error {
	return func(s string) error {
		return ValidateField(key, s)
	}
}
