package daygrid

// Hover is the transient pointer state of the grid. It only affects how
// cells are drawn and is never stored with a student.
type Hover struct {
	weekday    int
	hasWeekday bool

	start, end  int
	hasInterval bool
}

// SetWeekday highlights a weekday column.
func (h *Hover) SetWeekday(weekday int) {
	h.weekday = weekday
	h.hasWeekday = true
}

// ClearWeekday removes the weekday highlight.
func (h *Hover) ClearWeekday() {
	h.weekday = 0
	h.hasWeekday = false
}

// Weekday returns the hovered weekday, if any.
func (h Hover) Weekday() (int, bool) {
	return h.weekday, h.hasWeekday
}

// SetInterval highlights the inclusive day range [start, end].
func (h *Hover) SetInterval(start, end int) {
	h.start, h.end = start, end
	h.hasInterval = true
}

// SetWeekRow highlights row*7+1 .. row*7+7.
func (h *Hover) SetWeekRow(row int) {
	h.SetInterval(row*DaysPerWeek+1, row*DaysPerWeek+DaysPerWeek)
}

// ClearInterval removes the week highlight.
func (h *Hover) ClearInterval() {
	h.start, h.end = 0, 0
	h.hasInterval = false
}

// Interval returns the hovered range, if any.
func (h Hover) Interval() (start, end int, ok bool) {
	return h.start, h.end, h.hasInterval
}

// Reset clears both highlights.
func (h *Hover) Reset() {
	h.ClearWeekday()
	h.ClearInterval()
}

// Highlighted reports whether day falls in the hovered column or week.
func (h Hover) Highlighted(day int) bool {
	if h.hasWeekday && day%DaysPerWeek == h.weekday {
		return true
	}
	return h.hasInterval && h.start <= day && day <= h.end
}
