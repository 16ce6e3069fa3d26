package value

import (
	"fmt"
	"strings"
)

// DistanceUnit is the unit a distance or height was reported in.
type DistanceUnit int

const (
	Meters DistanceUnit = iota
	StatuteMiles
	Feet
)

func (u DistanceUnit) String() string {
	switch u {
	case Meters:
		return "m"
	case StatuteMiles:
		return "SM"
	case Feet:
		return "ft"
	default:
		return fmt.Sprintf("DistanceUnit(%d)", u)
	}
}

// DistanceModifier qualifies a distance value.
type DistanceModifier int

const (
	ModifierNone     DistanceModifier = iota
	ModifierLessThan                  // "M" prefix
	ModifierMoreThan                  // "P" prefix, or 9999 meters
)

func (m DistanceModifier) String() string {
	switch m {
	case ModifierNone:
		return ""
	case ModifierLessThan:
		return "less than"
	case ModifierMoreThan:
		return "more than"
	default:
		return fmt.Sprintf("DistanceModifier(%d)", m)
	}
}

// Distance is a visibility, range or height. Statute mile values may carry
// an integer and a fractional part ("1 1/2SM").
type Distance struct {
	modifier    DistanceModifier
	integer     int
	hasInteger  bool
	numerator   int
	denominator int
	unit        DistanceUnit
	reported    bool
}

// NewDistance returns a reported whole-number distance.
func NewDistance(v int, unit DistanceUnit) Distance {
	return Distance{integer: v, hasInteger: true, unit: unit, reported: true}
}

// DistanceFromMeterString parses a four-digit visibility in meters.
// 9999 means 10 km or more; 0000 means less than 50 m.
func DistanceFromMeterString(s string) (Distance, bool) {
	if s == "////" {
		return Distance{unit: Meters}, true
	}
	if len(s) != 4 {
		return Distance{}, false
	}
	v, ok := atoi(s)
	if !ok {
		return Distance{}, false
	}
	d := NewDistance(v, Meters)
	switch v {
	case 9999:
		d.integer = 10000
		d.modifier = ModifierMoreThan
	case 0:
		d.integer = 50
		d.modifier = ModifierLessThan
	}
	return d, true
}

// DistanceFromMileString parses a statute mile visibility with the "SM"
// suffix: "10SM", "1/2SM", "M1/4SM", "P6SM", "////SM".
func DistanceFromMileString(s string) (Distance, bool) {
	body, ok := strings.CutSuffix(s, "SM")
	if !ok || body == "" {
		return Distance{}, false
	}
	if isSlashes(body) {
		return Distance{unit: StatuteMiles}, true
	}
	modifier := ModifierNone
	switch body[0] {
	case 'M':
		modifier = ModifierLessThan
		body = body[1:]
	case 'P':
		modifier = ModifierMoreThan
		body = body[1:]
	}
	var d Distance
	if strings.Contains(body, "/") {
		d, ok = DistanceFromFractionString(body)
	} else {
		d, ok = DistanceFromIntegerString(body)
	}
	if !ok {
		return Distance{}, false
	}
	d.modifier = modifier
	return d, true
}

// DistanceFromIntegerString parses a bare whole number of statute miles
// (one or two digits), as in the first token of "1 1/2SM".
func DistanceFromIntegerString(s string) (Distance, bool) {
	if len(s) < 1 || len(s) > 2 {
		return Distance{}, false
	}
	v, ok := atoi(s)
	if !ok {
		return Distance{}, false
	}
	return NewDistance(v, StatuteMiles), true
}

// DistanceFromFractionString parses a bare fraction of statute miles ("3/4").
func DistanceFromFractionString(s string) (Distance, bool) {
	num, den, ok := strings.Cut(s, "/")
	if !ok || len(num) != 1 || len(den) < 1 || len(den) > 2 {
		return Distance{}, false
	}
	n, ok1 := atoi(num)
	d, ok2 := atoi(den)
	if !ok1 || !ok2 || n == 0 || d == 0 || n >= d {
		return Distance{}, false
	}
	return Distance{numerator: n, denominator: d, unit: StatuteMiles, reported: true}, true
}

// DistanceFromHeightString parses a three-digit height in hundreds of feet
// ("020" = 2000 ft) or "///".
func DistanceFromHeightString(s string) (Distance, bool) {
	if s == "///" {
		return Distance{unit: Feet}, true
	}
	if len(s) != 3 {
		return Distance{}, false
	}
	v, ok := atoi(s)
	if !ok {
		return Distance{}, false
	}
	return NewDistance(v*100, Feet), true
}

// DistanceFromRvrString parses a runway visual range value with optional
// P/M prefix ("P2000", "M0050", "1200") or "////".
func DistanceFromRvrString(s string, unit DistanceUnit) (Distance, bool) {
	if s == "////" {
		return Distance{unit: unit}, true
	}
	modifier := ModifierNone
	if s != "" {
		switch s[0] {
		case 'M':
			modifier = ModifierLessThan
			s = s[1:]
		case 'P':
			modifier = ModifierMoreThan
			s = s[1:]
		}
	}
	if len(s) != 4 {
		return Distance{}, false
	}
	v, ok := atoi(s)
	if !ok {
		return Distance{}, false
	}
	d := NewDistance(v, unit)
	d.modifier = modifier
	return d, true
}

// AddFraction combines a whole-number statute mile distance with a
// following fraction ("1" + "1/2SM" -> 1 1/2 SM).
func (d Distance) AddFraction(f Distance) (Distance, bool) {
	if !d.reported || !f.reported || !d.hasInteger || d.denominator != 0 {
		return Distance{}, false
	}
	if f.unit != StatuteMiles || d.unit != StatuteMiles || f.denominator == 0 || f.hasInteger {
		return Distance{}, false
	}
	if f.modifier != ModifierNone {
		return Distance{}, false
	}
	d.numerator = f.numerator
	d.denominator = f.denominator
	return d, true
}

// IsReported is false for the '/'-filled form.
func (d Distance) IsReported() bool { return d.reported }

// Modifier returns the less-than / more-than qualifier.
func (d Distance) Modifier() DistanceModifier { return d.modifier }

// Unit returns the reported unit.
func (d Distance) Unit() DistanceUnit { return d.unit }

// Integer returns the whole-number part, if present.
func (d Distance) Integer() (int, bool) { return d.integer, d.reported && d.hasInteger }

// Fraction returns the fractional part, if present.
func (d Distance) Fraction() (num, den int, ok bool) {
	return d.numerator, d.denominator, d.reported && d.denominator != 0
}

// Value returns the distance as a decimal in its reported unit.
func (d Distance) Value() (float64, bool) {
	if !d.reported {
		return 0, false
	}
	v := float64(d.integer)
	if d.denominator != 0 {
		v += float64(d.numerator) / float64(d.denominator)
	}
	return v, true
}

// ToUnit converts the distance to another unit.
func (d Distance) ToUnit(unit DistanceUnit) (float64, bool) {
	v, ok := d.Value()
	if !ok {
		return 0, false
	}
	return metersTo(toMeters(v, d.unit), unit), true
}

const (
	metersPerMile = 1609.347
	metersPerFoot = 0.3048
)

func toMeters(v float64, unit DistanceUnit) float64 {
	switch unit {
	case StatuteMiles:
		return v * metersPerMile
	case Feet:
		return v * metersPerFoot
	default:
		return v
	}
}

func metersTo(v float64, unit DistanceUnit) float64 {
	switch unit {
	case StatuteMiles:
		return v / metersPerMile
	case Feet:
		return v / metersPerFoot
	default:
		return v
	}
}

func (d Distance) String() string {
	if !d.reported {
		return "not reported"
	}
	var b strings.Builder
	if d.modifier != ModifierNone {
		b.WriteString(d.modifier.String())
		b.WriteByte(' ')
	}
	switch {
	case d.hasInteger && d.denominator != 0:
		fmt.Fprintf(&b, "%d %d/%d", d.integer, d.numerator, d.denominator)
	case d.denominator != 0:
		fmt.Fprintf(&b, "%d/%d", d.numerator, d.denominator)
	default:
		fmt.Fprintf(&b, "%d", d.integer)
	}
	b.WriteByte(' ')
	b.WriteString(d.unit.String())
	return b.String()
}
