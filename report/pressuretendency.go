package report

import (
	"fmt"
	"regexp"

	"github.com/gometar/gometar/value"
)

// PressureTendencyType is the 3-hour pressure characteristic.
type PressureTendencyType int

const (
	TendencyNotReported PressureTendencyType = iota - 1
	TendencyIncreasingThenDecreasing
	TendencyIncreasingMoreSlowly
	TendencyIncreasing
	TendencyIncreasingMoreRapidly
	TendencySteady
	TendencyDecreasingThenIncreasing
	TendencyDecreasingMoreSlowly
	TendencyDecreasing
	TendencyDecreasingMoreRapidly
	TendencyRisingRapidly
	TendencyFallingRapidly
)

var tendencyNames = [...]string{
	"increasing, then decreasing", "increasing, then steady or increasing more slowly",
	"increasing steadily or unsteadily", "decreasing or steady, then increasing",
	"steady", "decreasing, then increasing",
	"decreasing, then steady or decreasing more slowly",
	"decreasing steadily or unsteadily", "steady or increasing, then decreasing",
	"rising rapidly", "falling rapidly",
}

func (t PressureTendencyType) String() string {
	if t == TendencyNotReported {
		return "not reported"
	}
	if t < 0 || int(t) >= len(tendencyNames) {
		return fmt.Sprintf("PressureTendencyType(%d)", t)
	}
	return tendencyNames[t]
}

// PressureTendencyGroup is the remark "5appp" group or PRESRR / PRESFR.
type PressureTendencyGroup struct {
	Type   PressureTendencyType
	Change value.Pressure
}

func (PressureTendencyGroup) isGroup()   {}
func (PressureTendencyGroup) Kind() Kind { return KindPressureTendency }

func (g PressureTendencyGroup) Append(string, ReportPart, *ReportMetadata) (Group, AppendResult) {
	return g, NotAppended
}

var pressureTendencyRe = regexp.MustCompile(`^5([0-8/])(\d{3}|///)$`)

func parsePressureTendencyGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	if part != PartRemark {
		return nil, false
	}
	switch token {
	case "PRESRR":
		return PressureTendencyGroup{Type: TendencyRisingRapidly}, true
	case "PRESFR":
		return PressureTendencyGroup{Type: TendencyFallingRapidly}, true
	}
	m := match(pressureTendencyRe, token)
	if m == nil {
		return nil, false
	}
	typ := TendencyNotReported
	if m[1] != "/" {
		typ = PressureTendencyType(m[1][0] - '0')
	}
	change, ok := value.PressureFromTendencyString(m[2])
	if !ok {
		return nil, false
	}
	return PressureTendencyGroup{Type: typ, Change: change}, true
}
