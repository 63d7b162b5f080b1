package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// hoursPattern matches weekly-dedication strings such as "30-40h" or
// "30-40h/week"; only the leading range is significant.
var hoursPattern = regexp.MustCompile(`(\d+)-(\d+)h`)

// defaultWeeklyHours is assumed when a dedication string cannot be parsed.
const defaultWeeklyHours = 40

// HourRange is a weekly-hours interval.
type HourRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Width returns the size of the interval in hours.
func (r HourRange) Width() int {
	return r.Max - r.Min
}

// ParseHourRange extracts the (min,max) hours from a dedication string.
func ParseHourRange(s string) (HourRange, error) {
	m := hoursPattern.FindStringSubmatch(s)
	if m == nil {
		return HourRange{}, fmt.Errorf("unparseable dedication range: %q", s)
	}
	lo, _ := strconv.Atoi(m[1])
	hi, _ := strconv.Atoi(m[2])
	return HourRange{Min: lo, Max: hi}, nil
}

func parseHoursOrDefault(s string) HourRange {
	r, err := ParseHourRange(s)
	if err != nil {
		return HourRange{Min: defaultWeeklyHours, Max: defaultWeeklyHours}
	}
	return r
}
