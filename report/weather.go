package report

import (
	"fmt"

	"github.com/gometar/gometar/value"
)

// WeatherGroupType is the kind of weather group.
type WeatherGroupType int

const (
	WeatherCurrent WeatherGroupType = iota
	WeatherRecent
	WeatherNSW
	WeatherEvents
)

func (t WeatherGroupType) String() string {
	switch t {
	case WeatherCurrent:
		return "current weather"
	case WeatherRecent:
		return "recent weather"
	case WeatherNSW:
		return "no significant weather"
	case WeatherEvents:
		return "weather events"
	default:
		return fmt.Sprintf("WeatherGroupType(%d)", t)
	}
}

// WeatherGroup is present or recent weather, NSW, or a remark chain of
// weather beginning and ending times.
type WeatherGroup struct {
	Type      WeatherGroupType
	Phenomena []value.WeatherPhenomena
}

func (WeatherGroup) isGroup()   {}
func (WeatherGroup) Kind() Kind { return KindWeather }

func (g WeatherGroup) Append(string, ReportPart, *ReportMetadata) (Group, AppendResult) {
	return g, NotAppended
}

func parseWeatherGroup(token string, part ReportPart, md *ReportMetadata) (Group, bool) {
	switch part {
	case PartMetar, PartTaf:
		if token == "NSW" {
			return WeatherGroup{Type: WeatherNSW}, true
		}
		w, ok := value.WeatherPhenomenaFromString(token, part == PartMetar)
		if !ok {
			return nil, false
		}
		typ := WeatherCurrent
		if w.Qualifier == value.QualifierRecent {
			typ = WeatherRecent
		}
		return WeatherGroup{Type: typ, Phenomena: []value.WeatherPhenomena{w}}, true
	case PartRemark:
		events, ok := value.WeatherEventsFromRemarkString(token, md.ReportTime)
		if !ok {
			return nil, false
		}
		return WeatherGroup{Type: WeatherEvents, Phenomena: events}, true
	}
	return nil, false
}
