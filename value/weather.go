package value

import (
	"fmt"
	"strings"
)

// WeatherQualifier is the intensity or proximity prefix.
type WeatherQualifier int

const (
	QualifierNone WeatherQualifier = iota
	QualifierRecent
	QualifierVicinity
	QualifierLight
	QualifierModerate
	QualifierHeavy
)

func (q WeatherQualifier) String() string {
	switch q {
	case QualifierNone:
		return ""
	case QualifierRecent:
		return "recent"
	case QualifierVicinity:
		return "in vicinity"
	case QualifierLight:
		return "light"
	case QualifierModerate:
		return "moderate"
	case QualifierHeavy:
		return "heavy"
	default:
		return fmt.Sprintf("WeatherQualifier(%d)", q)
	}
}

// WeatherDescriptor is the two-letter descriptor preceding phenomena.
type WeatherDescriptor int

const (
	DescriptorNone WeatherDescriptor = iota
	DescriptorShallow
	DescriptorPartial
	DescriptorPatches
	DescriptorLowDrifting
	DescriptorBlowing
	DescriptorShowers
	DescriptorThunderstorm
	DescriptorFreezing
)

var descriptorCodes = [...]string{"", "MI", "PR", "BC", "DR", "BL", "SH", "TS", "FZ"}

var descriptorNames = [...]string{
	"", "shallow", "partial", "patches", "low drifting", "blowing",
	"showers", "thunderstorm", "freezing",
}

func (d WeatherDescriptor) String() string {
	if d < 0 || int(d) >= len(descriptorNames) {
		return fmt.Sprintf("WeatherDescriptor(%d)", d)
	}
	return descriptorNames[d]
}

// Weather is one phenomenon code.
type Weather int

const (
	WeatherNotReported Weather = iota
	WeatherDrizzle
	WeatherRain
	WeatherSnow
	WeatherSnowGrains
	WeatherIceCrystals
	WeatherIcePellets
	WeatherHail
	WeatherSmallHail
	WeatherUndetermined
	WeatherMist
	WeatherFog
	WeatherSmoke
	WeatherVolcanicAsh
	WeatherDust
	WeatherSand
	WeatherHaze
	WeatherSpray
	WeatherDustWhirls
	WeatherSqualls
	WeatherFunnelCloud
	WeatherSandstorm
	WeatherDuststorm
)

var weatherCodes = [...]string{
	"//", "DZ", "RA", "SN", "SG", "IC", "PL", "GR", "GS", "UP", "BR", "FG",
	"FU", "VA", "DU", "SA", "HZ", "PY", "PO", "SQ", "FC", "SS", "DS",
}

var weatherNames = [...]string{
	"not reported", "drizzle", "rain", "snow", "snow grains", "ice crystals",
	"ice pellets", "hail", "small hail", "undetermined precipitation", "mist",
	"fog", "smoke", "volcanic ash", "dust", "sand", "haze", "spray",
	"dust whirls", "squalls", "funnel cloud", "sandstorm", "duststorm",
}

func (w Weather) String() string {
	if w < 0 || int(w) >= len(weatherNames) {
		return fmt.Sprintf("Weather(%d)", w)
	}
	return weatherNames[w]
}

// IsPrecipitation reports whether w is a precipitation type.
func (w Weather) IsPrecipitation() bool {
	switch w {
	case WeatherDrizzle, WeatherRain, WeatherSnow, WeatherSnowGrains, WeatherIceCrystals,
		WeatherIcePellets, WeatherHail, WeatherSmallHail, WeatherUndetermined:
		return true
	default:
		return false
	}
}

// WeatherEvent marks the beginning or ending of a phenomenon in remarks.
type WeatherEvent int

const (
	EventNone WeatherEvent = iota
	EventBeginning
	EventEnding
)

func (e WeatherEvent) String() string {
	switch e {
	case EventBeginning:
		return "began"
	case EventEnding:
		return "ended"
	default:
		return ""
	}
}

// WeatherPhenomena is one decoded weather code such as "+TSRA" or "VCSH".
type WeatherPhenomena struct {
	Qualifier  WeatherQualifier
	Descriptor WeatherDescriptor
	Weather    []Weather
	Event      WeatherEvent
	EventTime  *Time
}

// WeatherPhenomenaFromString parses a present weather code. Recent weather
// ("RE" prefix) is only accepted when allowRecent is set.
func WeatherPhenomenaFromString(s string, allowRecent bool) (WeatherPhenomena, bool) {
	if s == "//" {
		return WeatherPhenomena{Weather: []Weather{WeatherNotReported}}, true
	}
	var w WeatherPhenomena
	switch {
	case strings.HasPrefix(s, "RE"):
		if !allowRecent {
			return WeatherPhenomena{}, false
		}
		w.Qualifier = QualifierRecent
		s = s[2:]
	case strings.HasPrefix(s, "VC"):
		w.Qualifier = QualifierVicinity
		s = s[2:]
	case strings.HasPrefix(s, "+"):
		w.Qualifier = QualifierHeavy
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		w.Qualifier = QualifierLight
		s = s[1:]
	}
	w.Descriptor, s = cutDescriptor(s)
	if len(s)%2 != 0 {
		return WeatherPhenomena{}, false
	}
	for i := 0; i < len(s); i += 2 {
		code, ok := weatherFromCode(s[i : i+2])
		if !ok || code == WeatherNotReported {
			return WeatherPhenomena{}, false
		}
		w.Weather = append(w.Weather, code)
	}
	if w.Descriptor == DescriptorNone && len(w.Weather) == 0 {
		return WeatherPhenomena{}, false
	}
	if (w.Qualifier == QualifierHeavy || w.Qualifier == QualifierLight) && !w.hasPrecipitation() &&
		w.Descriptor != DescriptorThunderstorm && !w.has(WeatherSandstorm) && !w.has(WeatherDuststorm) &&
		!w.has(WeatherFunnelCloud) {
		return WeatherPhenomena{}, false
	}
	if !w.isValid() {
		return WeatherPhenomena{}, false
	}
	if w.Qualifier == QualifierNone && w.hasPrecipitation() {
		w.Qualifier = QualifierModerate
	}
	return w, true
}

// WeatherEventsFromRemarkString parses a remark chain of beginning and
// ending times such as "RAB15E30SNB30" or "TSB0159E30". Minute-only times
// take their hour from reportTime when known.
func WeatherEventsFromRemarkString(s string, reportTime *Time) ([]WeatherPhenomena, bool) {
	var events []WeatherPhenomena
	var current WeatherPhenomena
	haveCurrent := false
	for s != "" {
		if (s[0] == 'B' || s[0] == 'E') && countDigits(s[1:]) > 0 {
			if !haveCurrent {
				return nil, false
			}
			event := EventBeginning
			if s[0] == 'E' {
				event = EventEnding
			}
			s = s[1:]
			n := countDigits(s)
			if n != 2 && n != 4 {
				return nil, false
			}
			t, ok := TimeFromMinuteString(s[:n], reportTime)
			if !ok || !t.IsValid() {
				return nil, false
			}
			s = s[n:]
			e := current
			e.Weather = append([]Weather(nil), current.Weather...)
			e.Event = event
			e.EventTime = &t
			events = append(events, e)
			continue
		}
		end := phenomenonEnd(s)
		if end <= 0 {
			return nil, false
		}
		w, ok := WeatherPhenomenaFromString(s[:end], false)
		if !ok {
			return nil, false
		}
		current = w
		haveCurrent = true
		s = s[end:]
	}
	if len(events) == 0 {
		return nil, false
	}
	return events, true
}

// phenomenonEnd returns the length of the leading phenomenon code in a
// remark event chain, stopping before the B/E event marker.
func phenomenonEnd(s string) int {
	i := 0
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		i = 1
	}
	for i+1 < len(s) {
		pair := s[i : i+2]
		if _, ok := weatherFromCode(pair); ok && pair != "//" {
			i += 2
			continue
		}
		if d, _ := cutDescriptor(pair); d != DescriptorNone {
			i += 2
			continue
		}
		break
	}
	if i < len(s) && (s[i] == 'B' || s[i] == 'E') && countDigits(s[i+1:]) > 0 {
		return i
	}
	return -1
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func cutDescriptor(s string) (WeatherDescriptor, string) {
	if len(s) < 2 {
		return DescriptorNone, s
	}
	for i := 1; i < len(descriptorCodes); i++ {
		if s[:2] == descriptorCodes[i] {
			return WeatherDescriptor(i), s[2:]
		}
	}
	return DescriptorNone, s
}

func weatherFromCode(code string) (Weather, bool) {
	for i, c := range weatherCodes {
		if c == code {
			return Weather(i), true
		}
	}
	return 0, false
}

func (w WeatherPhenomena) has(code Weather) bool {
	for _, c := range w.Weather {
		if c == code {
			return true
		}
	}
	return false
}

func (w WeatherPhenomena) hasPrecipitation() bool {
	for _, c := range w.Weather {
		if c.IsPrecipitation() {
			return true
		}
	}
	return false
}

// isValid applies the descriptor/phenomenon combination rules.
func (w WeatherPhenomena) isValid() bool {
	onlyPrecipitation := true
	for _, c := range w.Weather {
		if !c.IsPrecipitation() {
			onlyPrecipitation = false
		}
	}
	if len(w.Weather) > 1 && !onlyPrecipitation {
		return false
	}
	switch w.Descriptor {
	case DescriptorShallow, DescriptorPartial, DescriptorPatches:
		return len(w.Weather) == 1 && w.Weather[0] == WeatherFog
	case DescriptorLowDrifting, DescriptorBlowing:
		if len(w.Weather) != 1 {
			return false
		}
		switch w.Weather[0] {
		case WeatherSnow, WeatherDust, WeatherSand, WeatherSpray:
			return true
		}
		return false
	case DescriptorFreezing:
		if len(w.Weather) == 0 {
			return false
		}
		for _, c := range w.Weather {
			if c != WeatherFog && c != WeatherDrizzle && c != WeatherRain && c != WeatherUndetermined {
				return false
			}
		}
		return true
	case DescriptorShowers:
		return len(w.Weather) == 0 || onlyPrecipitation
	case DescriptorThunderstorm:
		return len(w.Weather) == 0 || onlyPrecipitation
	}
	return true
}

func (w WeatherPhenomena) String() string {
	var parts []string
	if w.Qualifier != QualifierNone && w.Qualifier != QualifierModerate {
		parts = append(parts, w.Qualifier.String())
	}
	if w.Descriptor != DescriptorNone {
		parts = append(parts, w.Descriptor.String())
	}
	for _, c := range w.Weather {
		parts = append(parts, c.String())
	}
	if w.Event != EventNone && w.EventTime != nil {
		parts = append(parts, w.Event.String(), "at", w.EventTime.String())
	}
	return strings.Join(parts, " ")
}
