package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/marcus/duty/internal/calendar"
)

// parseDays parses a comma-separated list of days and inclusive ranges
// ("1-3,8") into sorted day indices of the period
func parseDays(spec string, period calendar.Period) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	var days []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(part, "-")
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", part)
		}
		end := start
		if isRange {
			end, err = strconv.Atoi(strings.TrimSpace(hi))
			if err != nil || end < start {
				return nil, fmt.Errorf("invalid day range %q", part)
			}
		}

		for d := start; d <= end; d++ {
			if !period.Contains(d) {
				return nil, fmt.Errorf("day %d is outside the period (1-%d)", d, period.Length)
			}
			days = append(days, d)
		}
	}

	slices.Sort(days)
	return slices.Compact(days), nil
}
