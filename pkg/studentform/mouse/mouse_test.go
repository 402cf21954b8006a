package mouse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{29, 10, true},  // Top-right edge (exclusive width)
		{10, 19, true},  // Bottom-left edge (exclusive height)
		{29, 19, true},  // Bottom-right corner
		{15, 15, true},  // Center
		{9, 10, false},  // Just left
		{30, 10, false}, // Just right (exclusive)
		{10, 9, false},  // Just above
		{10, 20, false}, // Just below (exclusive)
	}

	for _, tc := range cases {
		got := r.Contains(tc.x, tc.y)
		if got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestHitMapBasic(t *testing.T) {
	hm := NewHitMap()

	hm.AddRect("region1", 0, 0, 50, 50, "data1")
	hm.AddRect("region2", 60, 0, 50, 50, "data2")

	r := hm.Test(25, 25)
	if r == nil || r.ID != "region1" {
		t.Errorf("expected hit on region1, got %v", r)
	}
	if r != nil && r.Data != "data1" {
		t.Errorf("expected data1, got %v", r.Data)
	}

	r = hm.Test(85, 25)
	if r == nil || r.ID != "region2" {
		t.Errorf("expected hit on region2, got %v", r)
	}

	r = hm.Test(55, 25)
	if r != nil {
		t.Errorf("expected no hit, got %v", r)
	}
}

func TestHitMapPriority(t *testing.T) {
	hm := NewHitMap()

	// Later regions have higher priority
	hm.AddRect("grid", 0, 0, 100, 100, nil)
	hm.AddRect("row", 10, 10, 80, 1, nil)
	hm.AddRect("cell", 40, 10, 7, 1, nil)

	if r := hm.Test(42, 10); r == nil || r.ID != "cell" {
		t.Errorf("expected hit on cell, got %v", r)
	}
	if r := hm.Test(15, 10); r == nil || r.ID != "row" {
		t.Errorf("expected hit on row, got %v", r)
	}
	if r := hm.Test(5, 5); r == nil || r.ID != "grid" {
		t.Errorf("expected hit on grid, got %v", r)
	}
}

func TestHitMapClear(t *testing.T) {
	hm := NewHitMap()

	hm.AddRect("region1", 0, 0, 50, 50, nil)
	hm.AddRect("region2", 60, 0, 50, 50, nil)

	if len(hm.Regions()) != 2 {
		t.Errorf("expected 2 regions, got %d", len(hm.Regions()))
	}

	hm.Clear()

	if len(hm.Regions()) != 0 {
		t.Errorf("expected 0 regions after clear, got %d", len(hm.Regions()))
	}
}

func TestHandleMouseClick(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	action := h.HandleMouse(tea.MouseMsg{X: 20, Y: 15, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if action.Type != ActionClick {
		t.Errorf("expected ActionClick, got %v", action.Type)
	}
	if action.Region == nil || action.Region.ID != "button" {
		t.Errorf("expected region 'button', got %v", action.Region)
	}

	action = h.HandleMouse(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if action.Region != nil {
		t.Errorf("expected no region on miss, got %v", action.Region)
	}

	action = h.HandleMouse(tea.MouseMsg{X: 20, Y: 15, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if action.Type != ActionNone {
		t.Errorf("right click should be ActionNone, got %v", action.Type)
	}
}

func TestHandleMouseEnterLeave(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("mon", 0, 0, 5, 1, 1)
	h.HitMap.AddRect("tue", 5, 0, 5, 1, 2)

	motion := func(x, y int) Action {
		return h.HandleMouse(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion})
	}

	a := motion(1, 0)
	if a.Type != ActionHover || a.Entered == nil || a.Entered.ID != "mon" || a.Left != nil {
		t.Fatalf("entering mon: %+v", a)
	}

	a = motion(2, 0)
	if a.Entered != nil || a.Left != nil {
		t.Errorf("moving inside mon should not transition: %+v", a)
	}

	a = motion(6, 0)
	if a.Entered == nil || a.Entered.ID != "tue" || a.Left == nil || a.Left.ID != "mon" {
		t.Errorf("mon -> tue: %+v", a)
	}

	a = motion(20, 5)
	if a.Entered != nil || a.Left == nil || a.Left.ID != "tue" {
		t.Errorf("leaving tue: %+v", a)
	}
	if h.Hovered() != nil {
		t.Errorf("expected nothing hovered, got %v", h.Hovered())
	}
}

func TestHandlerLeave(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("row", 0, 0, 10, 1, nil)
	h.HandleMouse(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionMotion})

	left := h.Leave()
	if left == nil || left.ID != "row" {
		t.Errorf("Leave: got %v", left)
	}
	if h.Leave() != nil {
		t.Error("second Leave should return nil")
	}
}

func TestHandlerClear(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	h.Clear()

	if len(h.HitMap.Regions()) != 0 {
		t.Errorf("expected 0 regions after Clear, got %d", len(h.HitMap.Regions()))
	}
}
