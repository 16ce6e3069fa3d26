// Package value provides the fixed-format measurement values found in
// METAR and TAF groups: distances, speeds, temperatures, pressures,
// directions, precipitation amounts, runway designators and times.
//
// Every value is parsed from an exact substring and reports false on any
// format mismatch. A field that is present but filled with '/' characters
// parses successfully and reports IsReported() == false.
package value

import (
	"fmt"
	"time"
)

// Time is a report time with an optional day-of-month.
type Time struct {
	Day    int // 1-31, or 0 when the day is not given
	Hour   int
	Minute int
}

// TimeFromDDHHMM parses a six-digit day/hour/minute string (e.g. "121050").
func TimeFromDDHHMM(s string) (Time, bool) {
	if len(s) != 6 {
		return Time{}, false
	}
	day, ok1 := atoi(s[0:2])
	hour, ok2 := atoi(s[2:4])
	minute, ok3 := atoi(s[4:6])
	if !ok1 || !ok2 || !ok3 {
		return Time{}, false
	}
	return Time{Day: day, Hour: hour, Minute: minute}, true
}

// TimeFromHHMM parses a four-digit hour/minute string (e.g. "1246").
func TimeFromHHMM(s string) (Time, bool) {
	if len(s) != 4 {
		return Time{}, false
	}
	hour, ok1 := atoi(s[0:2])
	minute, ok2 := atoi(s[2:4])
	if !ok1 || !ok2 {
		return Time{}, false
	}
	return Time{Hour: hour, Minute: minute}, true
}

// TimeFromDDHH parses a four-digit day/hour string as used in TAF time
// spans (e.g. "1318").
func TimeFromDDHH(s string) (Time, bool) {
	if len(s) != 4 {
		return Time{}, false
	}
	day, ok1 := atoi(s[0:2])
	hour, ok2 := atoi(s[2:4])
	if !ok1 || !ok2 {
		return Time{}, false
	}
	return Time{Day: day, Hour: hour}, true
}

// TimeFromMinuteString parses a remark time that is either "hhmm" or just
// "mm"; in the latter case the hour is taken from the report time when known.
func TimeFromMinuteString(s string, reportTime *Time) (Time, bool) {
	switch len(s) {
	case 4:
		return TimeFromHHMM(s)
	case 2:
		minute, ok := atoi(s)
		if !ok {
			return Time{}, false
		}
		t := Time{Minute: minute}
		if reportTime != nil {
			t.Hour = reportTime.Hour
		}
		return t, true
	default:
		return Time{}, false
	}
}

// HasDay reports whether the day-of-month is present.
func (t Time) HasDay() bool {
	return t.Day != 0
}

// IsValid checks field ranges. Hour 24 is allowed (end of day in TAF spans).
func (t Time) IsValid() bool {
	if t.Day < 0 || t.Day > 31 {
		return false
	}
	if t.Hour < 0 || t.Hour > 24 {
		return false
	}
	if t.Minute < 0 || t.Minute > 59 {
		return false
	}
	return t.Hour < 24 || t.Minute == 0
}

// Resolve expands t into an absolute UTC time close to ref. When the day
// (or, without a day, the time of day) would fall more than a day after
// ref, the previous month (or day) is assumed. Months too short for the
// day are skipped.
func (t Time) Resolve(ref time.Time) time.Time {
	ref = ref.UTC()
	if !t.HasDay() {
		candidate := time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour, t.Minute, 0, 0, time.UTC)
		if candidate.After(ref.Add(time.Hour)) {
			candidate = candidate.AddDate(0, 0, -1)
		}
		return candidate
	}
	offset := time.Duration(t.Hour)*time.Hour + time.Duration(t.Minute)*time.Minute
	for back := range 12 {
		day := time.Date(ref.Year(), ref.Month()-time.Month(back), t.Day, 0, 0, 0, 0, time.UTC)
		if day.Day() != t.Day {
			// The month is too short for t.Day.
			continue
		}
		if candidate := day.Add(offset); !candidate.After(ref.Add(24 * time.Hour)) {
			return candidate
		}
	}
	return time.Date(ref.Year(), ref.Month(), t.Day, t.Hour, t.Minute, 0, 0, time.UTC)
}

func (t Time) String() string {
	if t.HasDay() {
		return fmt.Sprintf("day %d %02d:%02d", t.Day, t.Hour, t.Minute)
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// atoi converts an all-digit string; anything else (including signs and
// the empty string) fails.
func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// isSlashes reports whether s is a non-empty run of '/'.
func isSlashes(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '/' {
			return false
		}
	}
	return true
}
