// Package daygrid holds the selection state behind the unavailable-day grid:
// which day indices are selected, and the bulk toggles (all, weekday column,
// week row) the grid offers. It has no UI dependency.
package daygrid

import (
	"maps"
	"slices"
)

// DaysPerWeek is the number of cells in one week row.
const DaysPerWeek = 7

// Selection is the set of selected day indices over a fixed universe.
// The universe is canonicalised once at construction; every mutation keeps
// the selected set a subset of it.
type Selection struct {
	full     []int
	universe map[int]struct{}
	selected map[int]struct{}
}

// New creates a selection over full, pre-selecting the members of initial
// that belong to full.
func New(full []int, initial []int) *Selection {
	canon := slices.Clone(full)
	slices.Sort(canon)
	canon = slices.Compact(canon)

	s := &Selection{
		full:     canon,
		universe: make(map[int]struct{}, len(canon)),
		selected: make(map[int]struct{}),
	}
	for _, d := range canon {
		s.universe[d] = struct{}{}
	}
	s.SetSelected(initial)
	return s
}

// Full returns the canonical (sorted, deduplicated) universe.
func (s *Selection) Full() []int {
	return slices.Clone(s.full)
}

// Selected returns the selected days in ascending order.
func (s *Selection) Selected() []int {
	return slices.Sorted(maps.Keys(s.selected))
}

// Len returns the number of selected days.
func (s *Selection) Len() int {
	return len(s.selected)
}

// IsSelected reports whether day is selected.
func (s *Selection) IsSelected(day int) bool {
	_, ok := s.selected[day]
	return ok
}

// Contains reports whether day belongs to the universe.
func (s *Selection) Contains(day int) bool {
	_, ok := s.universe[day]
	return ok
}

// AllSelected reports whether the selection equals the universe.
func (s *Selection) AllSelected() bool {
	return len(s.full) > 0 && len(s.selected) == len(s.full)
}

// SetSelected replaces the selection with days, as reported by the checkbox
// group. Days outside the universe are dropped.
func (s *Selection) SetSelected(days []int) {
	clear(s.selected)
	for _, d := range days {
		if s.Contains(d) {
			s.selected[d] = struct{}{}
		}
	}
}

// ToggleDay flips a single day and reports the resulting set through
// SetSelected, the same path a checkbox change takes.
func (s *Selection) ToggleDay(day int) {
	checked := s.Selected()
	if s.IsSelected(day) {
		checked = slices.DeleteFunc(checked, func(d int) bool { return d == day })
	} else {
		checked = append(checked, day)
	}
	s.SetSelected(checked)
}

// Clear deselects every day.
func (s *Selection) Clear() {
	clear(s.selected)
}

// ToggleAll clears the selection when every day is selected, otherwise
// selects every day.
func (s *Selection) ToggleAll() {
	if s.AllSelected() {
		s.Clear()
		return
	}
	for _, d := range s.full {
		s.selected[d] = struct{}{}
	}
}

// WeekdayDays returns the days of the universe with day%7 == weekday.
func (s *Selection) WeekdayDays(weekday int) []int {
	var days []int
	for _, d := range s.full {
		if d%DaysPerWeek == weekday {
			days = append(days, d)
		}
	}
	return days
}

// WeekRowDays returns the days row*7+1 .. row*7+7 that belong to the universe.
func (s *Selection) WeekRowDays(row int) []int {
	var days []int
	for i := 1; i <= DaysPerWeek; i++ {
		if d := row*DaysPerWeek + i; s.Contains(d) {
			days = append(days, d)
		}
	}
	return days
}

// ToggleWeekday removes the whole weekday column when all of it is selected,
// otherwise adds it.
func (s *Selection) ToggleWeekday(weekday int) {
	s.toggleGroup(s.WeekdayDays(weekday))
}

// ToggleWeekRow removes the whole week row when all of it is selected,
// otherwise adds it.
func (s *Selection) ToggleWeekRow(row int) {
	s.toggleGroup(s.WeekRowDays(row))
}

func (s *Selection) toggleGroup(days []int) {
	if len(days) == 0 {
		return
	}
	if s.allIn(days) {
		for _, d := range days {
			delete(s.selected, d)
		}
		return
	}
	for _, d := range days {
		s.selected[d] = struct{}{}
	}
}

func (s *Selection) allIn(days []int) bool {
	for _, d := range days {
		if !s.IsSelected(d) {
			return false
		}
	}
	return true
}

// Weeks splits the universe into rows of seven, in order.
func (s *Selection) Weeks() [][]int {
	var weeks [][]int
	for chunk := range slices.Chunk(s.full, DaysPerWeek) {
		weeks = append(weeks, chunk)
	}
	return weeks
}
