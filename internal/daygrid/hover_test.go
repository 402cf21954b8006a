package daygrid

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestHoverHighlighted(t *testing.T) {
	var h Hover

	if h.Highlighted(1) {
		t.Error("zero Hover should highlight nothing")
	}

	h.SetWeekday(2)
	for _, d := range []int{2, 9, 16} {
		if !h.Highlighted(d) {
			t.Errorf("day %d should be highlighted by weekday 2", d)
		}
	}
	if h.Highlighted(3) {
		t.Error("day 3 should not be highlighted")
	}

	h.SetWeekRow(1)
	if !h.Highlighted(8) || !h.Highlighted(14) || h.Highlighted(15) {
		t.Error("week row 1 should highlight 8..14 inclusive")
	}

	h.ClearWeekday()
	if h.Highlighted(2) {
		t.Error("weekday highlight should be cleared")
	}
	if _, _, ok := h.Interval(); !ok {
		t.Error("clearing the weekday must not clear the interval")
	}

	h.ClearInterval()
	if h.Highlighted(10) {
		t.Error("interval highlight should be cleared")
	}
}

func TestHoverSundayColumn(t *testing.T) {
	var h Hover
	h.SetWeekday(0)
	if !h.Highlighted(7) || h.Highlighted(1) {
		t.Error("weekday 0 should highlight multiples of 7 only")
	}
}

func TestHoverClearIsUnconditional(t *testing.T) {
	var h Hover
	h.ClearWeekday()
	h.ClearInterval()
	if _, ok := h.Weekday(); ok {
		t.Error("weekday should be absent")
	}

	h.SetWeekday(4)
	h.SetInterval(1, 7)
	h.Reset()
	if _, ok := h.Weekday(); ok {
		t.Error("weekday should be absent after Reset")
	}
	if _, _, ok := h.Interval(); ok {
		t.Error("interval should be absent after Reset")
	}
}

// TestHoverNeverTouchesSelection interleaves hover and selection operations
// and checks the selection matches a replay without the hover calls.
func TestHoverNeverTouchesSelection(t *testing.T) {
	full := seq(1, 35)
	r := rand.New(rand.NewPCG(42, 42))

	withHover := New(full, nil)
	without := New(full, nil)
	var h Hover

	for i := 0; i < 500; i++ {
		switch r.IntN(6) {
		case 0:
			h.SetWeekday(r.IntN(DaysPerWeek))
		case 1:
			h.ClearWeekday()
		case 2:
			h.SetWeekRow(r.IntN(5))
		case 3:
			h.ClearInterval()
		case 4:
			w := r.IntN(DaysPerWeek)
			withHover.ToggleWeekday(w)
			without.ToggleWeekday(w)
		case 5:
			row := r.IntN(5)
			withHover.ToggleWeekRow(row)
			without.ToggleWeekRow(row)
		}
		if !slices.Equal(withHover.Selected(), without.Selected()) {
			t.Fatalf("step %d: hover changed the selection", i)
		}
	}
}
