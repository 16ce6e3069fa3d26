package report

import (
	"fmt"
	"regexp"

	"github.com/gometar/gometar/value"
)

// PressureType is the kind of pressure group.
type PressureType int

const (
	PressureObservedQNH PressureType = iota
	PressureForecastLowestQNH
	PressureObservedQFE
	PressureSeaLevel
)

func (t PressureType) String() string {
	switch t {
	case PressureObservedQNH:
		return "observed QNH"
	case PressureForecastLowestQNH:
		return "forecast lowest QNH"
	case PressureObservedQFE:
		return "observed QFE"
	case PressureSeaLevel:
		return "sea level pressure"
	default:
		return fmt.Sprintf("PressureType(%d)", t)
	}
}

// PressureGroup is QNH (body), forecast lowest QNH (TAF), or the remark sea
// level pressure or QFE.
type PressureGroup struct {
	Type     PressureType
	Pressure value.Pressure
	// Secondary is the hectopascal value of "QFE750/1000".
	Secondary *value.Pressure
}

func (PressureGroup) isGroup()   {}
func (PressureGroup) Kind() Kind { return KindPressure }

func (g PressureGroup) Append(string, ReportPart, *ReportMetadata) (Group, AppendResult) {
	return g, NotAppended
}

var (
	slpRe = regexp.MustCompile(`^SLP(\d{3}|///)$`)
	qfeRe = regexp.MustCompile(`^QFE(\d{3,4})(?:/(\d{4}))?$`)
)

func parsePressureGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	switch part {
	case PartMetar:
		if p, ok := value.PressureFromString(token); ok {
			return PressureGroup{Type: PressureObservedQNH, Pressure: p}, true
		}
	case PartTaf:
		if p, ok := value.PressureFromForecastString(token); ok {
			return PressureGroup{Type: PressureForecastLowestQNH, Pressure: p}, true
		}
	case PartRemark:
		if m := match(slpRe, token); m != nil {
			p, ok := value.PressureFromSlpString(m[1])
			if !ok {
				return nil, false
			}
			return PressureGroup{Type: PressureSeaLevel, Pressure: p}, true
		}
		if m := match(qfeRe, token); m != nil {
			p, ok := value.PressureFromQfeString(m[1])
			if !ok {
				return nil, false
			}
			g := PressureGroup{Type: PressureObservedQFE, Pressure: p}
			if m[2] != "" {
				s, ok := value.PressureFromQfeString(m[2])
				if !ok {
					return nil, false
				}
				g.Secondary = &s
			}
			return g, true
		}
	}
	return nil, false
}
