package value

import (
	"fmt"
	"math"
)

// TemperatureUnit selects Celsius or Fahrenheit.
type TemperatureUnit int

const (
	Celsius TemperatureUnit = iota
	Fahrenheit
)

func (u TemperatureUnit) String() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// Temperature is an air, dew point or sea surface temperature in tenths of
// a degree Celsius. Main-body values are whole degrees; remark values are
// precise to a tenth.
type Temperature struct {
	tenths   int
	precise  bool
	freezing bool // "M00": below zero, rounded to zero
	reported bool
}

// TemperatureFromString parses a whole-degree temperature: "18", "M05", "//".
func TemperatureFromString(s string) (Temperature, bool) {
	if s == "//" {
		return Temperature{}, true
	}
	negative := false
	if len(s) == 3 && s[0] == 'M' {
		negative = true
		s = s[1:]
	}
	if len(s) != 2 {
		return Temperature{}, false
	}
	v, ok := atoi(s)
	if !ok {
		return Temperature{}, false
	}
	t := Temperature{tenths: v * 10, reported: true}
	if negative {
		t.tenths = -t.tenths
		t.freezing = true
	}
	return t, true
}

// TemperatureFromRemarkString parses the precise remark form: a sign digit
// (0 positive, 1 negative) followed by three digits in tenths ("1183" = -18.3).
func TemperatureFromRemarkString(s string) (Temperature, bool) {
	if len(s) != 4 || (s[0] != '0' && s[0] != '1') {
		return Temperature{}, false
	}
	v, ok := atoi(s[1:])
	if !ok {
		return Temperature{}, false
	}
	t := Temperature{tenths: v, precise: true, reported: true}
	if s[0] == '1' {
		t.tenths = -v
		t.freezing = true
	}
	return t, true
}

// IsReported is false for "//".
func (t Temperature) IsReported() bool { return t.reported }

// IsPrecise reports whether the value carries tenths of a degree.
func (t Temperature) IsPrecise() bool { return t.precise }

// IsFreezing reports whether the value is below zero Celsius (including "M00").
func (t Temperature) IsFreezing() bool { return t.reported && (t.freezing || t.tenths < 0) }

// Celsius returns the temperature in degrees Celsius.
func (t Temperature) Celsius() (float64, bool) {
	return float64(t.tenths) / 10, t.reported
}

// ToUnit converts the temperature.
func (t Temperature) ToUnit(unit TemperatureUnit) (float64, bool) {
	c, ok := t.Celsius()
	if !ok {
		return 0, false
	}
	if unit == Fahrenheit {
		return math.Round((c*1.8+32)*10) / 10, true
	}
	return c, true
}

func (t Temperature) String() string {
	if !t.reported {
		return "not reported"
	}
	c, _ := t.Celsius()
	if t.precise {
		return fmt.Sprintf("%.1f°C", c)
	}
	if t.freezing && t.tenths == 0 {
		return "-0°C"
	}
	return fmt.Sprintf("%.0f°C", c)
}
