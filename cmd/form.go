package cmd

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/duty/internal/calendar"
	"github.com/marcus/duty/internal/db"
	"github.com/marcus/duty/internal/models"
	"github.com/marcus/duty/pkg/studentform"
)

// rosterHandlers persists form submissions. The form does not wait on its
// handlers, so failures are collected and reported after the program exits.
type rosterHandlers struct {
	db *db.DB
	// originalID is the ID of the student being edited, if any
	originalID string

	added []string
	saved []string
	errs  []error
}

func (h *rosterHandlers) add(s models.Student) {
	if err := h.db.CreateStudent(&s); err != nil {
		slog.Error("add student", "id", s.ID, "err", err)
		h.errs = append(h.errs, fmt.Errorf("add %s: %w", s.Name, err))
		return
	}
	slog.Info("student added", "id", s.ID, "building", s.Building, "unavailable", len(s.Unavailables))
	h.added = append(h.added, s.ID)
}

// save overwrites the edited student. A changed ID renames the record.
func (h *rosterHandlers) save(s models.Student) {
	if err := h.saveOrRename(s); err != nil {
		slog.Error("save student", "id", s.ID, "err", err)
		h.errs = append(h.errs, fmt.Errorf("save %s: %w", s.Name, err))
		return
	}
	slog.Info("student saved", "id", s.ID, "building", s.Building, "unavailable", len(s.Unavailables))
	h.saved = append(h.saved, s.ID)
}

func (h *rosterHandlers) saveOrRename(s models.Student) error {
	if h.originalID == "" {
		return h.db.SaveStudent(&s)
	}
	if err := h.db.RenameStudent(h.originalID, &s); err != nil {
		return err
	}
	h.originalID = s.ID
	return nil
}

// runForm opens the student form until the user quits. student is nil when
// adding.
func runForm(database *db.DB, period calendar.Period, student *models.Student) (*rosterHandlers, error) {
	h := &rosterHandlers{db: database}
	if student != nil {
		h.originalID = student.ID
	}

	m := studentform.New(studentform.Options{
		OnAdd:   h.add,
		OnSave:  h.save,
		IsEdit:  student != nil,
		Student: student,
		Days:    period.Days(),
		NewID:   db.NewStudentID,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return h, fmt.Errorf("run form: %w", err)
	}
	return h, nil
}
