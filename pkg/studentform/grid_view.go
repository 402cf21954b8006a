package studentform

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/marcus/duty/internal/calendar"
	"github.com/marcus/duty/internal/daygrid"
	"github.com/marcus/duty/pkg/studentform/mouse"
)

const (
	gutterWidth = 5 // row toggle column, including spacing
	cellWidth   = 6 // "[x]12 "
	toggleWidth = 3 // "[▦]" / "[✓]"
)

// targetKind identifies what a grid hit region acts on
type targetKind int

const (
	targetAll targetKind = iota
	targetWeekday
	targetWeekRow
	targetDay
	targetButton
)

// target is attached to hit regions as their data
type target struct {
	kind  targetKind
	value int    // weekday, row index, or day index
	name  string // button action
}

// gridView renders the day grid. Hit regions are registered relative to
// (originX, originY) when hm is non-nil.
type gridView struct {
	days    *daygrid.Selection
	hover   daygrid.Hover
	cursor  int // position in the universe, -1 for none
	focused bool
}

func (g gridView) render(originX, originY int, hm *mouse.HitMap) string {
	full := g.days.Full()
	cursorDay := -1
	if g.focused && g.cursor >= 0 && g.cursor < len(full) {
		cursorDay = full[g.cursor]
	}

	var lines []string

	// Header: select-all toggle and weekday columns
	var header strings.Builder
	allMark := "[▦]"
	if g.days.AllSelected() {
		allMark = "[■]"
	}
	header.WriteString(toggleStyle.Render(allMark) + strings.Repeat(" ", gutterWidth-toggleWidth))
	if hm != nil {
		hm.AddRect("all", originX, originY, toggleWidth, 1, target{kind: targetAll})
	}
	hoverWeekday, hasHoverWeekday := g.hover.Weekday()
	for col, label := range calendar.WeekdayLabels {
		weekday := calendar.ColumnWeekday(col)
		style := headerStyle
		if hasHoverWeekday && weekday == hoverWeekday {
			style = style.Background(hoverBg)
		}
		header.WriteString(style.Render(padRight(label, cellWidth)))
		if hm != nil {
			hm.AddRect(fmt.Sprintf("weekday:%d", weekday), originX+gutterWidth+col*cellWidth, originY, cellWidth, 1,
				target{kind: targetWeekday, value: weekday})
		}
	}
	lines = append(lines, header.String())

	// Week rows
	for row, week := range g.days.Weeks() {
		y := originY + 1 + row
		var line strings.Builder

		rowMark := "[ ]"
		if rowDays := g.days.WeekRowDays(row); len(rowDays) > 0 && allSelected(g.days, rowDays) {
			rowMark = "[✓]"
		}
		line.WriteString(toggleStyle.Render(rowMark) + strings.Repeat(" ", gutterWidth-toggleWidth))
		if hm != nil {
			hm.AddRect(fmt.Sprintf("row:%d", row), originX, y, toggleWidth, 1, target{kind: targetWeekRow, value: row})
		}

		for col, day := range week {
			line.WriteString(g.renderCell(day, day == cursorDay))
			if hm != nil {
				hm.AddRect(fmt.Sprintf("day:%d", day), originX+gutterWidth+col*cellWidth, y, cellWidth, 1,
					target{kind: targetDay, value: day})
			}
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

// renderCell draws one day checkbox. Hover and cursor only change styling.
func (g gridView) renderCell(day int, isCursor bool) string {
	mark := "[ ]"
	style := cellStyle
	if g.days.IsSelected(day) {
		mark = "[x]"
		style = cellSelectedStyle
	}
	if g.hover.Highlighted(day) {
		style = style.Inherit(cellHoverStyle)
	}
	text := fmt.Sprintf("%s%2d", mark, day)
	if isCursor {
		return cellCursorStyle.Inherit(style).Render(text) + " "
	}
	return style.Render(text) + " "
}

func allSelected(s *daygrid.Selection, days []int) bool {
	for _, d := range days {
		if !s.IsSelected(d) {
			return false
		}
	}
	return true
}

func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
