package report

import (
	"fmt"
	"regexp"

	"github.com/gometar/gometar/value"
)

// MinMaxType is the kind of minimum/maximum temperature group.
type MinMaxType int

const (
	MinMaxForecast MinMaxType = iota // TAF "TX05/1214Z TNM02/1306Z"
	MinMax6Hourly                    // remark "10142 20012"
	MinMax24Hourly                   // remark "401420012"
)

func (t MinMaxType) String() string {
	switch t {
	case MinMaxForecast:
		return "forecast"
	case MinMax6Hourly:
		return "6-hourly"
	case MinMax24Hourly:
		return "24-hourly"
	default:
		return fmt.Sprintf("MinMaxType(%d)", t)
	}
}

// MinMaxTemperatureGroup is a minimum and/or maximum temperature. The TAF
// and 6-hourly remark forms are assembled from a maximum token followed by
// an optional minimum token.
type MinMaxTemperatureGroup struct {
	Type    MinMaxType
	Max     *value.Temperature
	MaxTime *value.Time
	Min     *value.Temperature
	MinTime *value.Time

	open bool // a minimum may still follow
}

func (MinMaxTemperatureGroup) isGroup()   {}
func (MinMaxTemperatureGroup) Kind() Kind { return KindMinMaxTemperature }

var (
	forecastMinMaxRe = regexp.MustCompile(`^T([XN])(M?\d{2})/(\d{4})Z$`)
	sixHourMinMaxRe  = regexp.MustCompile(`^([12])([01]\d{3})$`)
	dailyMinMaxRe    = regexp.MustCompile(`^4([01]\d{3})([01]\d{3})$`)
)

func parseMinMaxTemperatureGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	switch part {
	case PartTaf:
		m := match(forecastMinMaxRe, token)
		if m == nil {
			return nil, false
		}
		t, tm, ok := parseForecastTemperature(m)
		if !ok {
			return nil, false
		}
		if m[1] == "X" {
			return MinMaxTemperatureGroup{Type: MinMaxForecast, Max: &t, MaxTime: &tm, open: true}, true
		}
		return MinMaxTemperatureGroup{Type: MinMaxForecast, Min: &t, MinTime: &tm}, true
	case PartRemark:
		if m := match(sixHourMinMaxRe, token); m != nil {
			t, ok := value.TemperatureFromRemarkString(m[2])
			if !ok {
				return nil, false
			}
			if m[1] == "1" {
				return MinMaxTemperatureGroup{Type: MinMax6Hourly, Max: &t, open: true}, true
			}
			return MinMaxTemperatureGroup{Type: MinMax6Hourly, Min: &t}, true
		}
		if m := match(dailyMinMaxRe, token); m != nil {
			hi, ok1 := value.TemperatureFromRemarkString(m[1])
			lo, ok2 := value.TemperatureFromRemarkString(m[2])
			if !ok1 || !ok2 {
				return nil, false
			}
			return MinMaxTemperatureGroup{Type: MinMax24Hourly, Max: &hi, Min: &lo}, true
		}
	}
	return nil, false
}

func parseForecastTemperature(m []string) (value.Temperature, value.Time, bool) {
	t, ok := value.TemperatureFromString(m[2])
	if !ok || !t.IsReported() {
		return value.Temperature{}, value.Time{}, false
	}
	tm, ok := value.TimeFromDDHH(m[3])
	if !ok || !tm.IsValid() {
		return value.Temperature{}, value.Time{}, false
	}
	return t, tm, true
}

func (g MinMaxTemperatureGroup) Append(token string, part ReportPart, _ *ReportMetadata) (Group, AppendResult) {
	if !g.open {
		return g, NotAppended
	}
	switch g.Type {
	case MinMaxForecast:
		m := match(forecastMinMaxRe, token)
		if m == nil || m[1] != "N" {
			return g, NotAppended
		}
		t, tm, ok := parseForecastTemperature(m)
		if !ok {
			return g, NotAppended
		}
		g.Min, g.MinTime, g.open = &t, &tm, false
		return g, Appended
	case MinMax6Hourly:
		m := match(sixHourMinMaxRe, token)
		if m == nil || m[1] != "2" {
			return g, NotAppended
		}
		t, ok := value.TemperatureFromRemarkString(m[2])
		if !ok {
			return g, NotAppended
		}
		g.Min, g.open = &t, false
		return g, Appended
	}
	return g, NotAppended
}
