package value

import (
	"fmt"
	"math"
	"strings"
)

// PressureUnit is the unit a pressure was reported in.
type PressureUnit int

const (
	Hectopascal PressureUnit = iota
	InchesHg
	MillimetersHg
)

func (u PressureUnit) String() string {
	switch u {
	case Hectopascal:
		return "hPa"
	case InchesHg:
		return "inHg"
	case MillimetersHg:
		return "mmHg"
	default:
		return fmt.Sprintf("PressureUnit(%d)", u)
	}
}

// Pressure is an altimeter setting, sea level pressure or pressure change.
type Pressure struct {
	value    float64
	unit     PressureUnit
	reported bool
}

// NewPressure returns a reported pressure.
func NewPressure(v float64, unit PressureUnit) Pressure {
	return Pressure{value: v, unit: unit, reported: true}
}

// PressureFromString parses "Q1013" (hPa), "A2992" (inHg) or their
// '/'-filled forms.
func PressureFromString(s string) (Pressure, bool) {
	if len(s) != 5 {
		return Pressure{}, false
	}
	var unit PressureUnit
	switch s[0] {
	case 'Q':
		unit = Hectopascal
	case 'A':
		unit = InchesHg
	default:
		return Pressure{}, false
	}
	body := s[1:]
	if body == "////" {
		return Pressure{unit: unit}, true
	}
	v, ok := atoi(body)
	if !ok {
		return Pressure{}, false
	}
	if unit == InchesHg {
		return NewPressure(float64(v)/100, unit), true
	}
	return NewPressure(float64(v), unit), true
}

// PressureFromForecastString parses the TAF lowest forecast QNH form
// "QNH2992INS".
func PressureFromForecastString(s string) (Pressure, bool) {
	body, ok := strings.CutPrefix(s, "QNH")
	if !ok {
		return Pressure{}, false
	}
	body, ok = strings.CutSuffix(body, "INS")
	if !ok || len(body) != 4 {
		return Pressure{}, false
	}
	v, ok := atoi(body)
	if !ok {
		return Pressure{}, false
	}
	return NewPressure(float64(v)/100, InchesHg), true
}

// PressureFromSlpString parses the three digits of a remark sea level
// pressure ("982" -> 998.2 hPa, "132" -> 1013.2 hPa).
func PressureFromSlpString(s string) (Pressure, bool) {
	if s == "///" {
		return Pressure{unit: Hectopascal}, true
	}
	if len(s) != 3 {
		return Pressure{}, false
	}
	v, ok := atoi(s)
	if !ok {
		return Pressure{}, false
	}
	base := 1000.0
	if v >= 500 {
		base = 900.0
	}
	return NewPressure(base+float64(v)/10, Hectopascal), true
}

// PressureFromQfeString parses a remark QFE value in mmHg ("750") or hPa
// when four digits are given ("1000").
func PressureFromQfeString(s string) (Pressure, bool) {
	v, ok := atoi(s)
	if !ok {
		return Pressure{}, false
	}
	switch len(s) {
	case 3:
		return NewPressure(float64(v), MillimetersHg), true
	case 4:
		return NewPressure(float64(v), Hectopascal), true
	default:
		return Pressure{}, false
	}
}

// PressureFromTendencyString parses a three-digit pressure change in tenths
// of hPa ("032" -> 3.2 hPa).
func PressureFromTendencyString(s string) (Pressure, bool) {
	if s == "///" {
		return Pressure{unit: Hectopascal}, true
	}
	if len(s) != 3 {
		return Pressure{}, false
	}
	v, ok := atoi(s)
	if !ok {
		return Pressure{}, false
	}
	return NewPressure(float64(v)/10, Hectopascal), true
}

// IsReported is false for '/'-filled values.
func (p Pressure) IsReported() bool { return p.reported }

// Unit returns the reported unit.
func (p Pressure) Unit() PressureUnit { return p.unit }

// Value returns the pressure in its reported unit.
func (p Pressure) Value() (float64, bool) { return p.value, p.reported }

// ToUnit converts the pressure.
func (p Pressure) ToUnit(unit PressureUnit) (float64, bool) {
	if !p.reported {
		return 0, false
	}
	hpa := p.value
	switch p.unit {
	case InchesHg:
		hpa = p.value * 33.8639
	case MillimetersHg:
		hpa = p.value * 1.333224
	}
	var v float64
	switch unit {
	case InchesHg:
		v = hpa / 33.8639
	case MillimetersHg:
		v = hpa / 1.333224
	default:
		v = hpa
	}
	return math.Round(v*100) / 100, true
}

func (p Pressure) String() string {
	if !p.reported {
		return "not reported"
	}
	if p.unit == InchesHg {
		return fmt.Sprintf("%.2f %s", p.value, p.unit)
	}
	return fmt.Sprintf("%.1f %s", p.value, p.unit)
}
