package value

import "fmt"

// SpeedUnit is the unit a speed was reported in.
type SpeedUnit int

const (
	Knots SpeedUnit = iota
	MetersPerSecond
	KilometersPerHour
	MilesPerHour
)

func (u SpeedUnit) String() string {
	switch u {
	case Knots:
		return "KT"
	case MetersPerSecond:
		return "MPS"
	case KilometersPerHour:
		return "KMH"
	case MilesPerHour:
		return "MPH"
	default:
		return fmt.Sprintf("SpeedUnit(%d)", u)
	}
}

// SpeedUnitFromString parses a speed unit suffix.
func SpeedUnitFromString(s string) (SpeedUnit, bool) {
	switch s {
	case "KT":
		return Knots, true
	case "MPS":
		return MetersPerSecond, true
	case "KMH":
		return KilometersPerHour, true
	default:
		return 0, false
	}
}

// Speed is a wind speed.
type Speed struct {
	value    int
	unit     SpeedUnit
	reported bool
}

// NewSpeed returns a reported speed.
func NewSpeed(v int, unit SpeedUnit) Speed {
	return Speed{value: v, unit: unit, reported: true}
}

// SpeedFromString parses a two- or three-digit speed or "//".
func SpeedFromString(s string, unit SpeedUnit) (Speed, bool) {
	if s == "//" || s == "///" {
		return Speed{unit: unit}, true
	}
	if len(s) != 2 && len(s) != 3 {
		return Speed{}, false
	}
	v, ok := atoi(s)
	if !ok {
		return Speed{}, false
	}
	return NewSpeed(v, unit), true
}

// IsReported is false for the "//" form.
func (s Speed) IsReported() bool { return s.reported }

// Value returns the speed in its reported unit.
func (s Speed) Value() (int, bool) { return s.value, s.reported }

// Unit returns the reported unit.
func (s Speed) Unit() SpeedUnit { return s.unit }

// ToUnit converts the speed to another unit.
func (s Speed) ToUnit(unit SpeedUnit) (float64, bool) {
	if !s.reported {
		return 0, false
	}
	return metersPerSecondTo(toMetersPerSecond(float64(s.value), s.unit), unit), true
}

func toMetersPerSecond(v float64, unit SpeedUnit) float64 {
	switch unit {
	case Knots:
		return v * 0.514444
	case KilometersPerHour:
		return v / 3.6
	case MilesPerHour:
		return v * 0.44704
	default:
		return v
	}
}

func metersPerSecondTo(v float64, unit SpeedUnit) float64 {
	switch unit {
	case Knots:
		return v / 0.514444
	case KilometersPerHour:
		return v * 3.6
	case MilesPerHour:
		return v / 0.44704
	default:
		return v
	}
}

func (s Speed) String() string {
	if !s.reported {
		return "not reported"
	}
	return fmt.Sprintf("%d %s", s.value, s.unit)
}
