package calendar

import (
	"testing"
	"time"
)

func TestNewPeriodAlignsToMonday(t *testing.T) {
	// 2026-10-01 is a Thursday
	p, err := NewPeriod(time.Date(2026, 10, 1, 15, 30, 0, 0, time.UTC), 28)
	if err != nil {
		t.Fatalf("NewPeriod failed: %v", err)
	}
	if p.Start.Weekday() != time.Monday {
		t.Errorf("Start weekday: got %v, want Monday", p.Start.Weekday())
	}
	if got := p.StartString(); got != "2026-09-28" {
		t.Errorf("Start: got %s, want 2026-09-28", got)
	}
}

func TestNewPeriodRejectsBadLength(t *testing.T) {
	for _, n := range []int{0, -1, MaxPeriodDays + 1} {
		if _, err := NewPeriod(time.Now(), n); err == nil {
			t.Errorf("NewPeriod(length=%d) should fail", n)
		}
	}
}

func TestPeriodDays(t *testing.T) {
	p := Period{Start: time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC), Length: 7}
	days := p.Days()
	if len(days) != 7 {
		t.Fatalf("Expected 7 days, got %d", len(days))
	}
	for i, d := range days {
		if d != i+1 {
			t.Errorf("days[%d] = %d, want %d", i, d, i+1)
		}
	}
}

func TestDayRemainderMatchesWeekday(t *testing.T) {
	p, _ := NewPeriod(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), 35)
	for _, day := range p.Days() {
		wd := int(p.Date(day).Weekday()) // Sunday = 0
		if day%DaysPerWeek != wd {
			t.Fatalf("day %d: remainder %d, weekday %d", day, day%DaysPerWeek, wd)
		}
	}
}

func TestColumnWeekday(t *testing.T) {
	want := []int{1, 2, 3, 4, 5, 6, 0}
	for col, w := range want {
		if got := ColumnWeekday(col); got != w {
			t.Errorf("ColumnWeekday(%d) = %d, want %d", col, got, w)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	t.Run("defaults", func(t *testing.T) {
		p, err := ParsePeriod("", 0, now)
		if err != nil {
			t.Fatalf("ParsePeriod failed: %v", err)
		}
		if p.Length != DefaultPeriodDays {
			t.Errorf("Length: got %d, want %d", p.Length, DefaultPeriodDays)
		}
		if p.StartString() != "2026-09-28" {
			t.Errorf("Start: got %s", p.StartString())
		}
	})

	t.Run("explicit", func(t *testing.T) {
		p, err := ParsePeriod("2026-11-04", 14, now)
		if err != nil {
			t.Fatalf("ParsePeriod failed: %v", err)
		}
		if p.StartString() != "2026-11-02" {
			t.Errorf("Start: got %s, want 2026-11-02", p.StartString())
		}
		if p.Contains(15) || !p.Contains(14) {
			t.Errorf("Contains boundary wrong for length %d", p.Length)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		if _, err := ParsePeriod("11/04/2026", 14, now); err == nil {
			t.Error("Expected error for malformed date")
		}
	})
}
