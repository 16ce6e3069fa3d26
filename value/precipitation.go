package value

import (
	"fmt"
	"math"
)

// PrecipitationUnit is millimeters or inches.
type PrecipitationUnit int

const (
	Millimeters PrecipitationUnit = iota
	Inches
)

func (u PrecipitationUnit) String() string {
	if u == Inches {
		return "in"
	}
	return "mm"
}

// Precipitation is an amount of precipitation, a snow depth or a runway
// deposit depth.
type Precipitation struct {
	amount   float64
	unit     PrecipitationUnit
	moreThan bool
	reported bool
}

// NewPrecipitation returns a reported amount.
func NewPrecipitation(amount float64, unit PrecipitationUnit) Precipitation {
	return Precipitation{amount: amount, unit: unit, reported: true}
}

// PrecipitationFromRemarkString parses an all-digit remark amount in inches
// scaled by factor ("0009" with 0.01 -> 0.09 in). A '/'-filled string
// is not reported.
func PrecipitationFromRemarkString(s string, factor float64) (Precipitation, bool) {
	if isSlashes(s) {
		return Precipitation{unit: Inches}, true
	}
	v, ok := atoi(s)
	if !ok {
		return Precipitation{}, false
	}
	return NewPrecipitation(math.Round(float64(v)*factor*1000)/1000, Inches), true
}

// PrecipitationFromRunwayDeposits parses the two-digit deposit depth of a
// runway state group. 00-90 are millimeters, 92-97 encode 10-35 cm, 98
// means 40 cm or more. 91 is reserved and 99 (runway not operational) has
// no depth; both fail here and must be handled by the caller.
func PrecipitationFromRunwayDeposits(s string) (Precipitation, bool) {
	if s == "//" {
		return Precipitation{unit: Millimeters}, true
	}
	if len(s) != 2 {
		return Precipitation{}, false
	}
	v, ok := atoi(s)
	if !ok {
		return Precipitation{}, false
	}
	switch {
	case v <= 90:
		return NewPrecipitation(float64(v), Millimeters), true
	case v >= 92 && v <= 97:
		return NewPrecipitation(float64((v-90)*50), Millimeters), true
	case v == 98:
		p := NewPrecipitation(400, Millimeters)
		p.moreThan = true
		return p, true
	default:
		return Precipitation{}, false
	}
}

// IsReported is false for '/'-filled values.
func (p Precipitation) IsReported() bool { return p.reported }

// IsMoreThan reports the "or more" qualifier.
func (p Precipitation) IsMoreThan() bool { return p.moreThan }

// Amount returns the amount in its reported unit.
func (p Precipitation) Amount() (float64, bool) { return p.amount, p.reported }

// Unit returns the reported unit.
func (p Precipitation) Unit() PrecipitationUnit { return p.unit }

// ToUnit converts the amount.
func (p Precipitation) ToUnit(unit PrecipitationUnit) (float64, bool) {
	if !p.reported {
		return 0, false
	}
	if p.unit == unit {
		return p.amount, true
	}
	if unit == Inches {
		return p.amount / 25.4, true
	}
	return p.amount * 25.4, true
}

func (p Precipitation) String() string {
	if !p.reported {
		return "not reported"
	}
	s := fmt.Sprintf("%g %s", p.amount, p.unit)
	if p.moreThan {
		s += " or more"
	}
	return s
}
