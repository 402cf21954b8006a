package models

import (
	"slices"
	"time"
)

// Building numbers accepted for a student's residence
const (
	MinBuilding = 1
	MaxBuilding = 20
)

// Student is a roster entry. Unavailables holds day indices of the
// scheduling period on which the student cannot be put on duty.
type Student struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	IsManager    bool      `json:"is_manager"`
	Building     int       `json:"building"`
	Unavailables []int     `json:"unavailables"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// IsValidBuilding reports whether n is an accepted building number
func IsValidBuilding(n int) bool {
	return n >= MinBuilding && n <= MaxBuilding
}

// IsUnavailable reports whether the student marked day as unavailable
func (s *Student) IsUnavailable(day int) bool {
	return slices.Contains(s.Unavailables, day)
}

// Clone returns a copy that shares no slices with s
func (s Student) Clone() Student {
	s.Unavailables = slices.Clone(s.Unavailables)
	return s
}

// Config is the project configuration stored under .duty/config.json
type Config struct {
	// PeriodStart is the first day (a Monday) of the scheduling period, YYYY-MM-DD.
	PeriodStart string `json:"period_start,omitempty"`
	// PeriodDays is the number of days in the scheduling period.
	PeriodDays int `json:"period_days,omitempty"`
}
