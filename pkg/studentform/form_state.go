package studentform

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/marcus/duty/internal/models"
)

// FormMode distinguishes adding from editing
type FormMode int

const (
	FormModeCreate FormMode = iota
	FormModeEdit
)

// FormState holds the text fields of the student form and the huh form
// bound to them
type FormState struct {
	Mode FormMode

	Name      string
	IsManager bool
	Building  string
	ID        string

	// Errors holds the messages of the last failed submit, by field key
	Errors map[string]string

	Form  *huh.Form
	Width int
}

// NewFormState creates a form state for adding a student
func NewFormState() *FormState {
	fs := &FormState{Mode: FormModeCreate}
	fs.buildForm()
	return fs
}

// NewFormStateForEdit creates a form state pre-populated from s
func NewFormStateForEdit(s *models.Student) *FormState {
	fs := &FormState{
		Mode:      FormModeEdit,
		Name:      s.Name,
		IsManager: s.IsManager,
		ID:        s.ID,
	}
	if s.Building != 0 {
		fs.Building = strconv.Itoa(s.Building)
	}
	fs.buildForm()
	return fs
}

// buildForm (re)creates the huh form bound to the state's fields
func (fs *FormState) buildForm() {
	fs.Form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key(FieldName).
				Title(fieldRules[FieldName].Label).
				Placeholder("Name of the student").
				Value(&fs.Name).
				Validate(fieldValidator(FieldName)),
			huh.NewConfirm().
				Key(FieldManager).
				Title("Is She or He a Manager?").
				Affirmative("Yes").
				Negative("No").
				Value(&fs.IsManager),
			huh.NewInput().
				Key(FieldBuilding).
				Title(fieldRules[FieldBuilding].Label).
				Placeholder("1-20").
				Value(&fs.Building).
				Validate(fieldValidator(FieldBuilding)),
			huh.NewInput().
				Key(FieldID).
				Title(fieldRules[FieldID].Label).
				Placeholder("Student ID").
				Value(&fs.ID).
				Validate(fieldValidator(FieldID)),
		),
	).WithShowHelp(false).WithShowErrors(true)

	if fs.Width > 0 {
		fs.Form.WithWidth(fs.Width)
	}
}

// SetWidth sets the form width for text wrapping
func (fs *FormState) SetWidth(w int) {
	fs.Width = w
	fs.Form.WithWidth(w)
}

// values returns the text fields keyed like the rule table
func (fs *FormState) values() map[string]string {
	return map[string]string{
		FieldName:     fs.Name,
		FieldBuilding: fs.Building,
		FieldID:       fs.ID,
	}
}

// Validate runs every rule and returns the failures by field key
func (fs *FormState) Validate() map[string]string {
	errs := make(map[string]string)
	values := fs.values()
	for _, key := range ruleOrder {
		if err := ValidateField(key, values[key]); err != nil {
			errs[key] = err.Error()
		}
	}
	return errs
}

// ErrorList returns the current errors in field order
func (fs *FormState) ErrorList() []string {
	var out []string
	for _, key := range ruleOrder {
		if msg, ok := fs.Errors[key]; ok {
			out = append(out, msg)
		}
	}
	return out
}

// ToStudent builds a record from the fields. Call after Validate succeeds;
// an unparsable building yields 0.
func (fs *FormState) ToStudent() models.Student {
	building, _ := strconv.Atoi(strings.TrimSpace(fs.Building))
	return models.Student{
		ID:        strings.TrimSpace(fs.ID),
		Name:      strings.TrimSpace(fs.Name),
		IsManager: fs.IsManager,
		Building:  building,
	}
}

// reset clears the fields to their defaults and rebuilds the huh form
func (fs *FormState) reset() {
	fs.Name = ""
	fs.IsManager = false
	fs.Building = ""
	fs.ID = ""
	fs.Errors = nil
	fs.buildForm()
}

// focusedFieldKey returns the key of the focused huh field
func (fs *FormState) focusedFieldKey() string {
	if fs.Form == nil {
		return ""
	}
	if f := fs.Form.GetFocusedField(); f != nil {
		return f.GetKey()
	}
	return ""
}
