// Package mouse maps terminal mouse events onto rectangular hit regions
// registered while rendering, and tracks which region the pointer is over so
// callers get explicit enter and leave transitions.
package mouse

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Rect is a screen rectangle. X/Y are inclusive, W/H exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region is a named hit area carrying arbitrary data.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds regions in registration order. Later regions win on overlap.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect registers a region.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.regions = append(hm.regions, Region{ID: id, Rect: Rect{X: x, Y: y, W: w, H: h}, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			r := hm.regions[i]
			return &r
		}
	}
	return nil
}

// Clear removes all regions.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// Regions returns the registered regions.
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// ActionType classifies a mouse event after hit testing.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionHover
)

// Action is the result of handling one mouse event. Entered and Left are set
// when the pointer crossed a region boundary; both may be set at once.
type Action struct {
	Type    ActionType
	Region  *Region
	Entered *Region
	Left    *Region
	X, Y    int
}

// Handler hit-tests mouse events against its HitMap.
type Handler struct {
	HitMap  *HitMap
	hovered *Region
}

// NewHandler creates a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// Clear drops all regions. The hovered region is kept so the next motion
// event can still report leaving it.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}

// Hovered returns the region the pointer is currently over, or nil.
func (h *Handler) Hovered() *Region {
	return h.hovered
}

// HandleMouse classifies msg. Motion updates the hovered region; a left
// press is a click.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	region := h.HitMap.Test(msg.X, msg.Y)
	action := Action{Region: region, X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionMotion:
		action.Type = ActionHover
		action.Entered, action.Left = h.moveTo(region)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			action.Type = ActionClick
			action.Entered, action.Left = h.moveTo(region)
		}
	}
	return action
}

// Leave forgets the hovered region, reporting it as left.
func (h *Handler) Leave() *Region {
	left := h.hovered
	h.hovered = nil
	return left
}

func (h *Handler) moveTo(region *Region) (entered, left *Region) {
	prevID, nextID := "", ""
	if h.hovered != nil {
		prevID = h.hovered.ID
	}
	if region != nil {
		nextID = region.ID
	}
	if prevID == nextID {
		h.hovered = region
		return nil, nil
	}
	left = h.hovered
	h.hovered = region
	return region, left
}
