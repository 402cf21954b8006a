// Package studentform is the add/edit student form: text fields for the
// student record plus a day grid for marking unavailable days. It owns only
// transient UI state and hands finished records to caller-supplied handlers.
package studentform

import (
	"github.com/google/uuid"
	"github.com/marcus/duty/internal/daygrid"
	"github.com/marcus/duty/internal/models"
)

// AddHandler receives a record to be added to the roster. It runs
// synchronously on the UI loop and its outcome is not reported back.
type AddHandler func(models.Student)

// SaveHandler receives a record that replaces the edited one. Same contract
// as AddHandler.
type SaveHandler func(models.Student)

// Options configures a Form
type Options struct {
	OnAdd  AddHandler
	OnSave SaveHandler

	// IsEdit pre-populates the form from Student and enables SubmitEdit.
	IsEdit  bool
	Student *models.Student

	// Days is the universe of selectable day indices.
	Days []int

	// NewID generates identifiers. Defaults to a random UUID.
	NewID func() string
}

// Form is the non-visual core of the student form: field state, day
// selection and hover state, and the submit operations.
type Form struct {
	opts     Options
	original *models.Student

	State *FormState
	Days  *daygrid.Selection
	Hover daygrid.Hover
}

// NewForm creates a form. Build a new one whenever the edited record changes.
func NewForm(opts Options) *Form {
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}

	f := &Form{opts: opts}
	if opts.IsEdit && opts.Student != nil {
		orig := opts.Student.Clone()
		f.original = &orig
		f.State = NewFormStateForEdit(&orig)
		f.Days = daygrid.New(opts.Days, orig.Unavailables)
	} else {
		f.State = NewFormState()
		f.Days = daygrid.New(opts.Days, nil)
	}
	return f
}

// IsEdit reports whether the form edits an existing record
func (f *Form) IsEdit() bool {
	return f.original != nil
}

// Original returns the record being edited, or nil
func (f *Form) Original() *models.Student {
	return f.original
}

// SubmitAsNew validates and hands a new record to OnAdd, then resets.
// When editing, an unchanged ID is replaced so the copy does not collide
// with the original. Returns false, changing nothing, when validation fails.
func (f *Form) SubmitAsNew() bool {
	s, ok := f.build()
	if !ok {
		return false
	}

	if f.original != nil && s.ID == f.original.ID {
		s.ID = f.opts.NewID()
	}
	if s.ID == "" {
		s.ID = f.opts.NewID()
	}

	if f.opts.OnAdd != nil {
		f.opts.OnAdd(s)
	}
	f.Reset()
	return true
}

// SubmitEdit validates and hands the record to OnSave with its ID as typed,
// then resets. A blank ID keeps the ID of the last saved version. Only
// available when editing.
func (f *Form) SubmitEdit() bool {
	if f.original == nil {
		return false
	}

	s, ok := f.build()
	if !ok {
		return false
	}
	if s.ID == "" {
		s.ID = f.original.ID
	}
	// The saved record now lives under s.ID
	f.original.ID = s.ID

	if f.opts.OnSave != nil {
		f.opts.OnSave(s)
	}
	f.Reset()
	return true
}

// Reset clears every field to its default and deselects all days
func (f *Form) Reset() {
	f.State.reset()
	f.Days.Clear()
}

// build validates the fields and assembles the record. On failure the
// errors are recorded for display and nothing else changes.
func (f *Form) build() (models.Student, bool) {
	errs := f.State.Validate()
	if len(errs) > 0 {
		f.State.Errors = errs
		return models.Student{}, false
	}
	f.State.Errors = nil

	s := f.State.ToStudent()
	s.Unavailables = f.Days.Selected()
	return s, true
}
