package studentform

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/duty/internal/daygrid"
	"github.com/marcus/duty/pkg/studentform/mouse"
)

// FocusArea is the part of the form receiving keys
type FocusArea int

const (
	FocusFields FocusArea = iota
	FocusGrid
	FocusButtons
)

const (
	marginLeft    = 2
	minFormWidth  = 40
	maxFormWidth  = 60
	statusTimeout = 2 * time.Second
)

// Button actions
const (
	actionSave  = "save"
	actionAdd   = "add"
	actionReset = "reset"
)

// ClearStatusMsg clears the status line
type ClearStatusMsg struct{}

// Model is the bubbletea wrapper around Form
type Model struct {
	Form *Form

	Focus       FocusArea
	Cursor      int // position in the day universe
	ButtonFocus int

	StatusMessage string
	StatusIsError bool

	Width  int
	Height int

	keys  keyMap
	help  help.Model
	mouse *mouse.Handler
}

// New creates the form model
func New(opts Options) Model {
	f := NewForm(opts)
	return Model{
		Form:  f,
		keys:  newKeyMap(f.IsEdit()),
		help:  help.New(),
		mouse: mouse.NewHandler(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.Form.State.Form.Init()
}

// buttons returns the actions shown in the button row
func (m Model) buttons() []string {
	if m.Form.IsEdit() {
		return []string{actionSave, actionAdd, actionReset}
	}
	return []string{actionAdd, actionReset}
}

func (m Model) buttonLabel(action string) string {
	switch action {
	case actionSave:
		return "Save Changes"
	case actionAdd:
		if m.Form.IsEdit() {
			return "Duplicate Student"
		}
		return "Add Student"
	default:
		return "Reset Form"
	}
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.Form.State.SetWidth(m.formWidth())
		return m, nil

	case ClearStatusMsg:
		m.StatusMessage = ""
		m.StatusIsError = false
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.Focus == FocusFields {
		return m.updateFields(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		return m.submitAsNew()
	case key.Matches(msg, m.keys.Save):
		return m.submitEdit()
	case key.Matches(msg, m.keys.Reset):
		return m.reset()
	case key.Matches(msg, m.keys.NextArea):
		return m.setFocus((m.Focus + 1) % 3)
	}

	switch m.Focus {
	case FocusGrid:
		return m.handleGridKey(msg)
	case FocusButtons:
		return m.handleButtonKey(msg)
	default:
		return m.updateFields(msg)
	}
}

// updateFields forwards msg to the huh form. A completed form moves focus
// to the grid; the fields keep their values.
func (m Model) updateFields(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.Form.State.Form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.Form.State.Form = f
	}

	switch m.Form.State.Form.State {
	case huh.StateCompleted, huh.StateAborted:
		m.Form.State.buildForm()
		m.Form.State.SetWidth(m.formWidth())
		m.Focus = FocusGrid
		return m, m.Form.State.Form.Init()
	}
	return m, cmd
}

func (m Model) setFocus(area FocusArea) (tea.Model, tea.Cmd) {
	m.Focus = area
	if area == FocusFields {
		return m, m.Form.State.Form.Init()
	}
	return m, nil
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	full := m.Form.Days.Full()
	if len(full) == 0 {
		if key.Matches(msg, m.keys.PrevArea) {
			return m.setFocus(FocusFields)
		}
		return m, nil
	}
	if m.Cursor >= len(full) {
		m.Cursor = len(full) - 1
	}

	switch {
	case msg.String() == "tab":
		return m.setFocus(FocusButtons)
	case key.Matches(msg, m.keys.PrevArea):
		return m.setFocus(FocusFields)
	case key.Matches(msg, m.keys.Left):
		m.Cursor = max(0, m.Cursor-1)
	case key.Matches(msg, m.keys.Right):
		m.Cursor = min(len(full)-1, m.Cursor+1)
	case key.Matches(msg, m.keys.Up):
		if m.Cursor-daygrid.DaysPerWeek >= 0 {
			m.Cursor -= daygrid.DaysPerWeek
		}
	case key.Matches(msg, m.keys.Down):
		if m.Cursor+daygrid.DaysPerWeek < len(full) {
			m.Cursor += daygrid.DaysPerWeek
		}
	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Press):
		m.Form.Days.ToggleDay(full[m.Cursor])
	case key.Matches(msg, m.keys.Weekday):
		m.Form.Days.ToggleWeekday(full[m.Cursor] % daygrid.DaysPerWeek)
	case key.Matches(msg, m.keys.WeekRow):
		m.Form.Days.ToggleWeekRow(m.Cursor / daygrid.DaysPerWeek)
	case key.Matches(msg, m.keys.ToggleAll):
		m.Form.Days.ToggleAll()
	}
	return m, nil
}

func (m Model) handleButtonKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buttons := m.buttons()
	switch {
	case msg.String() == "tab":
		return m.setFocus(FocusFields)
	case key.Matches(msg, m.keys.PrevArea):
		return m.setFocus(FocusGrid)
	case key.Matches(msg, m.keys.Left):
		m.ButtonFocus = max(0, m.ButtonFocus-1)
	case key.Matches(msg, m.keys.Right):
		m.ButtonFocus = min(len(buttons)-1, m.ButtonFocus+1)
	case key.Matches(msg, m.keys.Press), key.Matches(msg, m.keys.Toggle):
		if m.ButtonFocus < len(buttons) {
			return m.press(buttons[m.ButtonFocus])
		}
	}
	return m, nil
}

func (m Model) press(action string) (tea.Model, tea.Cmd) {
	switch action {
	case actionSave:
		return m.submitEdit()
	case actionAdd:
		return m.submitAsNew()
	case actionReset:
		return m.reset()
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	action := m.mouse.HandleMouse(msg)

	// Leave before enter so moving between two headers ends highlighted
	if action.Left != nil {
		if t, ok := action.Left.Data.(target); ok {
			switch t.kind {
			case targetWeekday:
				m.Form.Hover.ClearWeekday()
			case targetWeekRow:
				m.Form.Hover.ClearInterval()
			}
		}
	}
	if action.Entered != nil {
		if t, ok := action.Entered.Data.(target); ok {
			switch t.kind {
			case targetWeekday:
				m.Form.Hover.SetWeekday(t.value)
			case targetWeekRow:
				m.Form.Hover.SetWeekRow(t.value)
			}
		}
	}

	if action.Type != mouse.ActionClick || action.Region == nil {
		return m, nil
	}
	t, ok := action.Region.Data.(target)
	if !ok {
		return m, nil
	}

	switch t.kind {
	case targetAll:
		m.Form.Days.ToggleAll()
	case targetWeekday:
		m.Form.Days.ToggleWeekday(t.value)
	case targetWeekRow:
		m.Form.Days.ToggleWeekRow(t.value)
	case targetDay:
		m.Form.Days.ToggleDay(t.value)
		if i := slices.Index(m.Form.Days.Full(), t.value); i >= 0 {
			m.Cursor = i
		}
		m.Focus = FocusGrid
	case targetButton:
		return m.press(t.name)
	}
	return m, nil
}

func (m Model) submitAsNew() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(m.Form.State.Name)
	if !m.Form.SubmitAsNew() {
		return m.validationFailed()
	}
	verb := "Added"
	if m.Form.IsEdit() {
		verb = "Duplicated"
	}
	return m.afterSubmit(fmt.Sprintf("%s %s", verb, name))
}

func (m Model) submitEdit() (tea.Model, tea.Cmd) {
	if !m.Form.IsEdit() {
		return m, nil
	}
	name := strings.TrimSpace(m.Form.State.Name)
	if !m.Form.SubmitEdit() {
		return m.validationFailed()
	}
	return m.afterSubmit(fmt.Sprintf("Saved %s", name))
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	m.Form.Reset()
	m.Form.State.SetWidth(m.formWidth())
	m.Focus = FocusFields
	m.Cursor = 0
	m.StatusMessage = "Form reset"
	m.StatusIsError = false
	return m, tea.Batch(m.Form.State.Form.Init(), clearStatusAfter(statusTimeout))
}

func (m Model) afterSubmit(status string) (tea.Model, tea.Cmd) {
	m.Form.State.SetWidth(m.formWidth())
	m.Focus = FocusFields
	m.Cursor = 0
	m.StatusMessage = status
	m.StatusIsError = false
	return m, tea.Batch(m.Form.State.Form.Init(), clearStatusAfter(statusTimeout))
}

func (m Model) validationFailed() (tea.Model, tea.Cmd) {
	m.StatusMessage = strings.Join(m.Form.State.ErrorList(), " · ")
	m.StatusIsError = true
	return m, clearStatusAfter(statusTimeout)
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// formWidth returns the width used for the huh fields
func (m Model) formWidth() int {
	w := m.Width - 2*marginLeft
	if w > maxFormWidth {
		w = maxFormWidth
	}
	if w < minFormWidth {
		w = minFormWidth
	}
	return w
}

// View implements tea.Model. Rendering also refreshes the mouse hit map.
func (m Model) View() string {
	m.mouse.Clear()

	title := "Add Student"
	if m.Form.IsEdit() {
		title = "Edit Student"
	}

	var sections []string
	y := 0
	add := func(s string) {
		sections = append(sections, s)
		y += lipgloss.Height(s)
	}

	add(titleStyle.Render(title))
	add("")
	add(m.Form.State.Form.View())
	add("")

	label := "Unavailable Date"
	if n := m.Form.Days.Len(); n > 0 {
		label += mutedStyle.Render(fmt.Sprintf("  (%d selected)", n))
	}
	add(labelStyle.Render(label))

	grid := gridView{
		days:    m.Form.Days,
		hover:   m.Form.Hover,
		cursor:  m.Cursor,
		focused: m.Focus == FocusGrid,
	}
	add(grid.render(marginLeft, y, m.mouse.HitMap))
	add("")
	add(m.renderButtons(marginLeft, y))
	add("")

	status := ""
	if m.StatusMessage != "" {
		if m.StatusIsError {
			status = errorStyle.Render(m.StatusMessage)
		} else {
			status = successStyle.Render(m.StatusMessage)
		}
	}
	add(status)
	add(m.help.View(m.keys))

	return lipgloss.NewStyle().MarginLeft(marginLeft).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderButtons(originX, originY int) string {
	var hoveredID string
	if r := m.mouse.Hovered(); r != nil {
		hoveredID = r.ID
	}

	var parts []string
	x := originX
	for i, action := range m.buttons() {
		id := "button:" + action
		style := buttonStyle
		switch {
		case m.Focus == FocusButtons && m.ButtonFocus == i:
			style = buttonFocusedStyle
		case hoveredID == id:
			style = buttonHoverStyle
		}
		btn := style.Render(m.buttonLabel(action))
		w := lipgloss.Width(btn)
		m.mouse.HitMap.AddRect(id, x, originY, w, 1, target{kind: targetButton, name: action})
		parts = append(parts, btn)
		x += w + 2
	}
	return strings.Join(parts, "  ")
}
