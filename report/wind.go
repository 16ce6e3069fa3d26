package report

import (
	"fmt"
	"regexp"

	"github.com/gometar/gometar/value"
)

// WindType is the kind of wind group.
type WindType int

const (
	WindSurface WindType = iota
	WindSurfaceWithVariableSector
	WindVariableSector
	WindShear
	WindShearLowerLayers
	WindPeak
	WindShift
	WindShiftFropa
)

var windTypeNames = [...]string{
	"surface wind", "surface wind with variable sector", "variable wind sector",
	"wind shear", "wind shear in lower layers", "peak wind", "wind shift",
	"wind shift (frontal passage)",
}

func (t WindType) String() string {
	if t < 0 || int(t) >= len(windTypeNames) {
		return fmt.Sprintf("WindType(%d)", t)
	}
	return windTypeNames[t]
}

type windNext int

const (
	windComplete       windNext = iota
	windSurfaceSector           // surface wind: a variable sector may follow
	windExpectWnd               // "PK": "WND" must follow
	windExpectPeak              // "PK WND": the peak wind value must follow
	windExpectShiftTime         // "WSHFT": the time must follow
	windShiftFropa              // "WSHFT hhmm": FROPA may follow
	windExpectShearRunway       // "WS": "ALL" or a runway must follow
	windExpectShearRwy          // "WS ALL": "RWY" must follow
)

// WindGroup is surface wind, a variable wind sector, wind shear, or one of
// the remark wind groups (peak wind, wind shift).
type WindGroup struct {
	Type        WindType
	Direction   value.Direction
	Speed       value.Speed
	Gust        *value.Speed
	SectorBegin *value.Direction
	SectorEnd   *value.Direction
	ShearHeight *value.Distance
	Runway      *value.Runway // wind shear on one runway; nil means all runways
	EventTime   *value.Time   // peak wind time or wind shift time

	next windNext
}

func (WindGroup) isGroup()   {}
func (WindGroup) Kind() Kind { return KindWind }

// IsCalm reports a surface wind of 00000KT.
func (g WindGroup) IsCalm() bool {
	v, ok := g.Speed.Value()
	return g.Type == WindSurface && ok && v == 0 &&
		g.Direction.Type == value.DirectionDegrees && g.Direction.Degrees == 0 && g.Gust == nil
}

var (
	surfaceWindRe   = regexp.MustCompile(`^(\d{3}|VRB|///)(\d{2,3}|//)(?:G(\d{2,3}))?(KT|MPS|KMH)$`)
	variableSectRe  = regexp.MustCompile(`^(\d{3})V(\d{3})$`)
	windShearRe     = regexp.MustCompile(`^WS(\d{3})/(\d{3}|VRB)(\d{2,3})(KT|MPS|KMH)$`)
	peakWindRe      = regexp.MustCompile(`^(\d{3})(\d{2,3})/(\d{2})?(\d{2})$`)
	windShiftTimeRe = regexp.MustCompile(`^(\d{2})?(\d{2})$`)
)

func parseWindGroup(token string, part ReportPart, md *ReportMetadata) (Group, bool) {
	if part == PartRemark {
		switch token {
		case "PK":
			return WindGroup{Type: WindPeak, next: windExpectWnd}, true
		case "WSHFT":
			return WindGroup{Type: WindShift, next: windExpectShiftTime}, true
		}
		return nil, false
	}
	if part != PartMetar && part != PartTaf {
		return nil, false
	}
	if m := match(surfaceWindRe, token); m != nil {
		return parseSurfaceWind(m)
	}
	if m := match(variableSectRe, token); m != nil {
		begin, end, ok := parseSector(m)
		if !ok {
			return nil, false
		}
		return WindGroup{Type: WindVariableSector, SectorBegin: &begin, SectorEnd: &end}, true
	}
	if m := match(windShearRe, token); m != nil && part == PartTaf {
		return parseWindShear(m)
	}
	if token == "WS" && part == PartMetar {
		return WindGroup{Type: WindShearLowerLayers, next: windExpectShearRunway}, true
	}
	return nil, false
}

func parseSurfaceWind(m []string) (Group, bool) {
	unit, ok := value.SpeedUnitFromString(m[4])
	if !ok {
		return nil, false
	}
	dir, ok := value.DirectionFromDegreesString(m[1])
	if !ok {
		return nil, false
	}
	speed, ok := value.SpeedFromString(m[2], unit)
	if !ok {
		return nil, false
	}
	g := WindGroup{Type: WindSurface, Direction: dir, Speed: speed, next: windSurfaceSector}
	if m[3] != "" {
		gust, ok := value.SpeedFromString(m[3], unit)
		if !ok {
			return nil, false
		}
		g.Gust = &gust
	}
	return g, true
}

func parseSector(m []string) (begin, end value.Direction, ok bool) {
	begin, ok1 := value.DirectionFromDegreesString(m[1])
	end, ok2 := value.DirectionFromDegreesString(m[2])
	if !ok1 || !ok2 {
		return value.Direction{}, value.Direction{}, false
	}
	return begin, end, true
}

func parseWindShear(m []string) (Group, bool) {
	height, ok := value.DistanceFromHeightString(m[1])
	if !ok {
		return nil, false
	}
	unit, ok := value.SpeedUnitFromString(m[4])
	if !ok {
		return nil, false
	}
	dir, ok := value.DirectionFromDegreesString(m[2])
	if !ok {
		return nil, false
	}
	speed, ok := value.SpeedFromString(m[3], unit)
	if !ok {
		return nil, false
	}
	return WindGroup{Type: WindShear, Direction: dir, Speed: speed, ShearHeight: &height}, true
}

func (g WindGroup) Append(token string, part ReportPart, md *ReportMetadata) (Group, AppendResult) {
	switch g.next {
	case windSurfaceSector:
		m := match(variableSectRe, token)
		if m == nil {
			return g, NotAppended
		}
		begin, end, ok := parseSector(m)
		if !ok {
			return g, NotAppended
		}
		g.Type, g.SectorBegin, g.SectorEnd, g.next = WindSurfaceWithVariableSector, &begin, &end, windComplete
		return g, Appended
	case windExpectWnd:
		if token != "WND" {
			return g, GroupInvalidated
		}
		g.next = windExpectPeak
		return g, Appended
	case windExpectPeak:
		return g.appendPeakWind(token, md)
	case windExpectShiftTime:
		m := match(windShiftTimeRe, token)
		if m == nil {
			return g, GroupInvalidated
		}
		t, ok := value.TimeFromMinuteString(m[1]+m[2], md.ReportTime)
		if !ok || !t.IsValid() {
			return g, GroupInvalidated
		}
		g.EventTime, g.next = &t, windShiftFropa
		return g, Appended
	case windShiftFropa:
		if token != "FROPA" {
			return g, NotAppended
		}
		g.Type, g.next = WindShiftFropa, windComplete
		return g, Appended
	case windExpectShearRunway:
		if token == "ALL" {
			g.next = windExpectShearRwy
			return g, Appended
		}
		rwy, ok := value.RunwayFromString(token)
		if !ok {
			return g, GroupInvalidated
		}
		g.Runway, g.next = &rwy, windComplete
		return g, Appended
	case windExpectShearRwy:
		if token != "RWY" {
			return g, GroupInvalidated
		}
		g.next = windComplete
		return g, Appended
	}
	return g, NotAppended
}

func (g WindGroup) appendPeakWind(token string, md *ReportMetadata) (Group, AppendResult) {
	m := match(peakWindRe, token)
	if m == nil {
		return g, GroupInvalidated
	}
	dir, ok := value.DirectionFromDegreesString(m[1])
	if !ok {
		return g, GroupInvalidated
	}
	speed, ok := value.SpeedFromString(m[2], value.Knots)
	if !ok {
		return g, GroupInvalidated
	}
	t, ok := value.TimeFromMinuteString(m[3]+m[4], md.ReportTime)
	if !ok || !t.IsValid() {
		return g, GroupInvalidated
	}
	g.Direction, g.Speed, g.EventTime, g.next = dir, speed, &t, windComplete
	return g, Appended
}
