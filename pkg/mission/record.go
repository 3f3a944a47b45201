// Package mission models historical transport records and the sources they
// are loaded from.
package mission

import (
	"strings"
	"time"

	"github.com/nudataviz/project-fall25-lifeflight/pkg/catalog"
)

// Record is one historical transport event. Clock fields hold the raw
// time-of-day text as recorded; Date holds the raw service date.
type Record struct {
	PickupCity string `json:"pickup_city" db:"pu_city"`
	Date       string `json:"tdate" db:"tdate"`
	Dispatch   string `json:"disptime" db:"disptime"`
	EnRoute    string `json:"enrtime" db:"enrtime"`
	AtScene    string `json:"atstime" db:"atstime"`
	Vehicle    string `json:"veh" db:"veh"`
	Asset      string `json:"asset" db:"asset"`
	Diagnosis  string `json:"diagnosis,omitempty" db:"diagnosis"`
}

// City returns the normalized pickup city.
func (r Record) City() string {
	return catalog.Normalize(r.PickupCity)
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"1/2/2006",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"01/02/2006",
	"2006/01/02",
}

// ParseDate parses a service date, discarding any time-of-day part.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// ParseClock parses an HH:MM time of day from the first five characters of
// s, so "14:05:33" reads as 14:05.
func ParseClock(s string) (time.Duration, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 5 {
		s = s[:5]
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, true
}

// Timestamp combines the service date with a clock field.
func (r Record) Timestamp(clock string) (time.Time, bool) {
	day, ok := ParseDate(r.Date)
	if !ok {
		return time.Time{}, false
	}
	c, ok := ParseClock(clock)
	if !ok {
		return time.Time{}, false
	}
	return day.Add(c), true
}

// Year returns the calendar year of the service date.
func (r Record) Year() (int, bool) {
	day, ok := ParseDate(r.Date)
	if !ok {
		return 0, false
	}
	return day.Year(), true
}

// ResponseMinutes is the dispatch to en-route interval. When en-route reads
// earlier than dispatch the mission crossed midnight and a day is added.
func (r Record) ResponseMinutes() (float64, bool) {
	return ResponseMinutes(r, r.Dispatch, r.EnRoute)
}

// ResponseMinutes returns the minutes from clock field from to clock field to
// on the record's date, rolling over midnight when to precedes from.
func ResponseMinutes(r Record, from, to string) (float64, bool) {
	start, ok := r.Timestamp(from)
	if !ok {
		return 0, false
	}
	end, ok := r.Timestamp(to)
	if !ok {
		return 0, false
	}
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}
	return end.Sub(start).Minutes(), true
}

// TransitMinutes is the en-route to at-scene interval without midnight
// rollover; negative values are returned as-is for callers to filter.
func (r Record) TransitMinutes() (float64, bool) {
	enr, ok := ParseClock(r.EnRoute)
	if !ok {
		return 0, false
	}
	ats, ok := ParseClock(r.AtScene)
	if !ok {
		return 0, false
	}
	return (ats - enr).Minutes(), true
}

// Summary is the mission volume used for demand estimation.
type Summary struct {
	Total         int `json:"historical_annual"`
	LastYear      int `json:"last_year"`
	LastYearCount int `json:"last_year_missions"`
}

// Summarize counts all records and those in the most recent calendar year
// present. Records with unparseable dates count toward Total only.
func Summarize(records []Record) Summary {
	s := Summary{Total: len(records)}
	counts := make(map[int]int)
	for _, r := range records {
		if y, ok := r.Year(); ok {
			counts[y]++
			if y > s.LastYear {
				s.LastYear = y
			}
		}
	}
	s.LastYearCount = counts[s.LastYear]
	return s
}
