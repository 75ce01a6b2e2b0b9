package account

import (
	"strings"
	"time"
)

// dateLayouts are tried in order. The DD/MM layout comes before MM/DD on
// purpose: an ambiguous string like "03/04/2023" is read as 3 April 2023.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
}

// Date is a parsed calendar date that may be absent. A missing field and an
// unparsable field both yield the zero Date; aggregation never has to
// distinguish the two.
type Date struct {
	Time  time.Time
	Valid bool
}

// ParseDate tries the known layouts in order and returns the first match.
// Empty or unrecognized input yields an absent Date, never an error.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Time: t, Valid: true}
		}
	}
	return Date{}
}

// Days returns the number of days elapsed from then to now.
func Days(then, now time.Time) float64 {
	return now.Sub(then).Hours() / 24
}

// Years returns the number of years elapsed from then to now, using the
// 365.25-day year the age brackets are defined against.
func Years(then, now time.Time) float64 {
	return Days(then, now) / 365.25
}
