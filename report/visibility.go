package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gometar/gometar/value"
)

// VisibilityType is the kind of visibility group.
type VisibilityType int

const (
	VisibilityPrevailing VisibilityType = iota
	VisibilityPrevailingNDV
	VisibilityDirectional
	VisibilityRunwayVisualRange
	VisibilitySurface
	VisibilityTower
	VisibilitySector
	VisibilityVariablePrevailing
)

var visibilityTypeNames = [...]string{
	"prevailing", "prevailing (no directional variation)", "directional",
	"runway visual range", "surface", "tower", "sector", "variable prevailing",
}

func (t VisibilityType) String() string {
	if t < 0 || int(t) >= len(visibilityTypeNames) {
		return fmt.Sprintf("VisibilityType(%d)", t)
	}
	return visibilityTypeNames[t]
}

// RvrTrend is the tendency suffix of a runway visual range group.
type RvrTrend int

const (
	RvrTrendNone RvrTrend = iota
	RvrTrendUpward
	RvrTrendDownward
	RvrTrendNeutral
)

func (t RvrTrend) String() string {
	switch t {
	case RvrTrendNone:
		return ""
	case RvrTrendUpward:
		return "upward"
	case RvrTrendDownward:
		return "downward"
	case RvrTrendNeutral:
		return "no change"
	default:
		return fmt.Sprintf("RvrTrend(%d)", t)
	}
}

type visibilityNext int

const (
	visComplete      visibilityNext = iota
	visExpectFrac                   // "1": "1/2SM" must follow
	visExpectVis                    // "SFC", "TWR": "VIS" must follow
	visExpectValue                  // "VIS": direction or value must follow
	visExpectDirValue               // "VIS NE": value must follow
	visMaybeFraction                // "VIS 1": a fraction may follow
)

// VisibilityGroup is prevailing or directional visibility, runway visual
// range, or a remark visibility (surface, tower, sector, variable).
type VisibilityGroup struct {
	Type       VisibilityType
	Visibility value.Distance
	// MaxVisibility is the upper bound of variable visibility or of a
	// variable runway visual range.
	MaxVisibility *value.Distance
	Direction     *value.Direction
	Runway        *value.Runway
	Trend         RvrTrend

	next visibilityNext
}

func (VisibilityGroup) isGroup()   {}
func (VisibilityGroup) Kind() Kind { return KindVisibility }

// IsIncomplete reports a group still waiting for a required token.
func (g VisibilityGroup) IsIncomplete() bool {
	return g.next != visComplete && g.next != visMaybeFraction
}

var (
	meterVisRe    = regexp.MustCompile(`^(\d{4}|////)(NDV|N|NE|E|SE|S|SW|W|NW)?$`)
	rvrRe         = regexp.MustCompile(`^R(\d\d[LCR]?)/(////|[PM]?\d{4})(?:V([PM]?\d{4}))?(FT)?(?:/?([UDN]))?$`)
	integerVisRe  = regexp.MustCompile(`^\d$`)
	remarkVisRe   = regexp.MustCompile(`^(\d{1,2}|\d/\d{1,2})(?:V(\d{1,2}|\d/\d{1,2}))?$`)
	remarkFracRe  = regexp.MustCompile(`^(\d/\d{1,2})(?:V(\d{1,2}|\d/\d{1,2}))?$`)
	cardinalVisRe = regexp.MustCompile(`^(N|NE|E|SE|S|SW|W|NW)$`)
)

func parseVisibilityGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	switch part {
	case PartMetar, PartTaf:
		if m := match(meterVisRe, token); m != nil {
			return parseMeterVisibility(m)
		}
		if d, ok := value.DistanceFromMileString(token); ok {
			return VisibilityGroup{Type: VisibilityPrevailing, Visibility: d}, true
		}
		if integerVisRe.MatchString(token) {
			d, ok := value.DistanceFromIntegerString(token)
			if !ok {
				return nil, false
			}
			return VisibilityGroup{Type: VisibilityPrevailing, Visibility: d, next: visExpectFrac}, true
		}
		if m := match(rvrRe, token); m != nil && part == PartMetar {
			return parseRvr(m)
		}
	case PartRemark:
		switch token {
		case "VIS":
			return VisibilityGroup{Type: VisibilityVariablePrevailing, next: visExpectValue}, true
		case "SFC":
			return VisibilityGroup{Type: VisibilitySurface, next: visExpectVis}, true
		case "TWR":
			return VisibilityGroup{Type: VisibilityTower, next: visExpectVis}, true
		}
	}
	return nil, false
}

func parseMeterVisibility(m []string) (Group, bool) {
	d, ok := value.DistanceFromMeterString(m[1])
	if !ok {
		return nil, false
	}
	g := VisibilityGroup{Type: VisibilityPrevailing, Visibility: d}
	switch m[2] {
	case "":
	case "NDV":
		g.Type = VisibilityPrevailingNDV
	default:
		dir, ok := value.DirectionFromCardinalString(m[2])
		if !ok {
			return nil, false
		}
		g.Type, g.Direction = VisibilityDirectional, &dir
	}
	return g, true
}

func parseRvr(m []string) (Group, bool) {
	rwy, ok := value.RunwayFromString("R" + m[1])
	if !ok {
		return nil, false
	}
	unit := value.Meters
	if m[4] == "FT" {
		unit = value.Feet
	}
	d, ok := value.DistanceFromRvrString(m[2], unit)
	if !ok {
		return nil, false
	}
	g := VisibilityGroup{Type: VisibilityRunwayVisualRange, Visibility: d, Runway: &rwy}
	if m[3] != "" {
		maxd, ok := value.DistanceFromRvrString(m[3], unit)
		if !ok {
			return nil, false
		}
		g.MaxVisibility = &maxd
	}
	switch m[5] {
	case "U":
		g.Trend = RvrTrendUpward
	case "D":
		g.Trend = RvrTrendDownward
	case "N":
		g.Trend = RvrTrendNeutral
	}
	return g, true
}

func (g VisibilityGroup) Append(token string, _ ReportPart, _ *ReportMetadata) (Group, AppendResult) {
	switch g.next {
	case visExpectFrac:
		f, ok := value.DistanceFromMileString(token)
		if !ok {
			return g, GroupInvalidated
		}
		d, ok := g.Visibility.AddFraction(f)
		if !ok {
			return g, GroupInvalidated
		}
		g.Visibility, g.next = d, visComplete
		return g, Appended
	case visExpectVis:
		if token != "VIS" {
			return g, GroupInvalidated
		}
		g.next = visExpectDirValue
		return g, Appended
	case visExpectValue, visExpectDirValue:
		if g.next == visExpectValue && cardinalVisRe.MatchString(token) {
			dir, ok := value.DirectionFromCardinalString(token)
			if !ok {
				return g, GroupInvalidated
			}
			g.Type, g.Direction, g.next = VisibilitySector, &dir, visExpectDirValue
			return g, Appended
		}
		return g.appendRemarkValue(token)
	case visMaybeFraction:
		m := match(remarkFracRe, token)
		if m == nil {
			return g, NotAppended
		}
		f, ok := value.DistanceFromFractionString(m[1])
		if !ok {
			return g, NotAppended
		}
		d, ok := g.Visibility.AddFraction(f)
		if !ok {
			return g, NotAppended
		}
		if m[2] != "" {
			maxd, ok := remarkDistance(m[2])
			if !ok {
				return g, NotAppended
			}
			g.MaxVisibility = &maxd
			if g.Type == VisibilityPrevailing {
				g.Type = VisibilityVariablePrevailing
			}
		}
		g.Visibility, g.next = d, visComplete
		return g, Appended
	}
	return g, NotAppended
}

func (g VisibilityGroup) appendRemarkValue(token string) (Group, AppendResult) {
	m := match(remarkVisRe, token)
	if m == nil {
		return g, GroupInvalidated
	}
	d, ok := remarkDistance(m[1])
	if !ok {
		return g, GroupInvalidated
	}
	g.Visibility, g.next = d, visComplete
	if m[2] != "" {
		maxd, ok := remarkDistance(m[2])
		if !ok {
			return g, GroupInvalidated
		}
		g.MaxVisibility = &maxd
	} else if _, isInt := d.Integer(); isInt {
		g.next = visMaybeFraction
	}
	if g.Type == VisibilityVariablePrevailing && g.MaxVisibility == nil {
		g.Type = VisibilityPrevailing
	}
	return g, Appended
}

func remarkDistance(s string) (value.Distance, bool) {
	if strings.Contains(s, "/") {
		return value.DistanceFromFractionString(s)
	}
	return value.DistanceFromIntegerString(s)
}
