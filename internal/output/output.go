package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/duty/internal/calendar"
	"github.com/marcus/duty/internal/models"
	"golang.org/x/term"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	managerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
)

const defaultWidth = 80

// Error prints an error message to stderr
func Error(format string, args ...any) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("ERROR:")+" "+fmt.Sprintf(format, args...))
}

// Warning prints a warning message to stderr
func Warning(format string, args ...any) {
	fmt.Fprintln(os.Stderr, warningStyle.Render("WARNING:")+" "+fmt.Sprintf(format, args...))
}

// Success prints a success message
func Success(format string, args ...any) {
	fmt.Println(successStyle.Render(fmt.Sprintf(format, args...)))
}

// JSON writes v as indented JSON to stdout
func JSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// JSONError writes a machine-readable error object to stdout
func JSONError(code, message string) {
	_ = JSON(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

// TerminalWidth returns the width of stdout, or a default when stdout is not
// a terminal
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// FormatStudentShort renders a one-line summary, truncated to width columns
// (0 = no limit)
func FormatStudentShort(s *models.Student, width int) string {
	name := s.Name
	if s.IsManager {
		name = managerStyle.Render(name + " ★")
	}
	line := fmt.Sprintf("%s  %s  %s  %s",
		s.ID,
		name,
		mutedStyle.Render(fmt.Sprintf("bldg %d", s.Building)),
		mutedStyle.Render(fmt.Sprintf("%d unavailable", len(s.Unavailables))),
	)
	if width > 0 && ansi.StringWidth(line) > width {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}

// FormatDays renders day indices as a compact list, merging consecutive
// runs: 1-3, 8, 15
func FormatDays(days []int) string {
	if len(days) == 0 {
		return "none"
	}
	var parts []string
	start, prev := days[0], days[0]
	flush := func() {
		if start == prev {
			parts = append(parts, fmt.Sprintf("%d", start))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", start, prev))
		}
	}
	for _, d := range days[1:] {
		if d == prev+1 {
			prev = d
			continue
		}
		flush()
		start, prev = d, d
	}
	flush()
	return strings.Join(parts, ", ")
}

// StudentMarkdown renders a student card as markdown. Unavailable days are
// listed with their dates when p is non-zero.
func StudentMarkdown(s *models.Student, p calendar.Period) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", s.Name)
	fmt.Fprintf(&sb, "- **ID:** `%s`\n", s.ID)
	fmt.Fprintf(&sb, "- **Building:** %d\n", s.Building)
	manager := "no"
	if s.IsManager {
		manager = "yes"
	}
	fmt.Fprintf(&sb, "- **Manager:** %s\n", manager)
	if !s.UpdatedAt.IsZero() {
		fmt.Fprintf(&sb, "- **Updated:** %s\n", s.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Fprintf(&sb, "\n## Unavailable days\n\n")
	if len(s.Unavailables) == 0 {
		sb.WriteString("_None_\n")
		return sb.String()
	}
	fmt.Fprintf(&sb, "%s\n\n", FormatDays(s.Unavailables))
	if p.Length == 0 {
		return sb.String()
	}

	sb.WriteString("| Day | Date |\n|---:|---|\n")
	for _, d := range s.Unavailables {
		if !p.Contains(d) {
			continue
		}
		fmt.Fprintf(&sb, "| %d | %s |\n", d, p.Date(d).Format("Mon 2006-01-02"))
	}
	return sb.String()
}
