package report

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gometar/gometar/value"
)

// DirectionSector is one direction ("NE") or a sector ("NE-SE"); for a
// single direction Begin and End are equal.
type DirectionSector struct {
	Begin value.Direction
	End   value.Direction
}

func (s DirectionSector) String() string {
	if s.Begin == s.End {
		return s.Begin.String()
	}
	return s.Begin.String() + " to " + s.End.String()
}

// locationTokens holds the location modifiers shared by the lightning and
// vicinity remark groups.
type locationTokens struct {
	Distant  bool
	Vicinity bool
	Sectors  []DirectionSector
}

// appendLocation absorbs DSNT, VC, OHD, ALQDS, a direction or a sector.
func (l locationTokens) appendLocation(token string) (locationTokens, bool) {
	switch token {
	case "DSNT":
		l.Distant = true
		return l, true
	case "VC":
		l.Vicinity = true
		return l, true
	case "AND":
		return l, len(l.Sectors) > 0
	}
	if from, to, ok := value.DirectionSectorFromString(token); ok {
		l.Sectors = append(l.Sectors[:len(l.Sectors):len(l.Sectors)], DirectionSector{Begin: from, End: to})
		return l, true
	}
	if d, ok := value.DirectionFromCardinalString(token); ok && d.Type != value.DirectionUnknown {
		l.Sectors = append(l.Sectors[:len(l.Sectors):len(l.Sectors)], DirectionSector{Begin: d, End: d})
		return l, true
	}
	return l, false
}

func (l locationTokens) isEmpty() bool {
	return !l.Distant && !l.Vicinity && len(l.Sectors) == 0
}

// LightningFrequency is the FRQ / OCNL / CONS prefix.
type LightningFrequency int

const (
	FrequencyNone LightningFrequency = iota
	FrequencyOccasional
	FrequencyFrequent
	FrequencyConstant
)

func (f LightningFrequency) String() string {
	switch f {
	case FrequencyNone:
		return ""
	case FrequencyOccasional:
		return "occasional"
	case FrequencyFrequent:
		return "frequent"
	case FrequencyConstant:
		return "constant"
	default:
		return fmt.Sprintf("LightningFrequency(%d)", f)
	}
}

// LightningType is a lightning discharge type.
type LightningType int

const (
	LightningInCloud LightningType = iota
	LightningCloudToCloud
	LightningCloudToGround
	LightningCloudToAir
)

var lightningTypeCodes = [...]string{"IC", "CC", "CG", "CA"}

var lightningTypeNames = [...]string{"in-cloud", "cloud-to-cloud", "cloud-to-ground", "cloud-to-air"}

func (t LightningType) String() string {
	if t < 0 || int(t) >= len(lightningTypeNames) {
		return fmt.Sprintf("LightningType(%d)", t)
	}
	return lightningTypeNames[t]
}

// LightningGroup is a remark lightning observation such as
// "FRQ LTGICCG DSNT NE-SE".
type LightningGroup struct {
	Frequency LightningFrequency
	Types     []LightningType
	locationTokens

	expectLtg bool
}

func (LightningGroup) isGroup()   {}
func (LightningGroup) Kind() Kind { return KindLightning }

var lightningRe = regexp.MustCompile(`^LTG((?:IC|CC|CG|CA)*)$`)

func parseLightningGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	if part != PartRemark {
		return nil, false
	}
	switch token {
	case "OCNL":
		return LightningGroup{Frequency: FrequencyOccasional, expectLtg: true}, true
	case "FRQ":
		return LightningGroup{Frequency: FrequencyFrequent, expectLtg: true}, true
	case "CONS":
		return LightningGroup{Frequency: FrequencyConstant, expectLtg: true}, true
	}
	types, ok := lightningTypes(token)
	if !ok {
		return nil, false
	}
	return LightningGroup{Types: types}, true
}

func lightningTypes(token string) ([]LightningType, bool) {
	m := match(lightningRe, token)
	if m == nil {
		return nil, false
	}
	var types []LightningType
	for s := m[1]; s != ""; s = s[2:] {
		for i, code := range lightningTypeCodes {
			if strings.HasPrefix(s, code) {
				types = append(types, LightningType(i))
				break
			}
		}
	}
	return types, true
}

func (g LightningGroup) Append(token string, _ ReportPart, _ *ReportMetadata) (Group, AppendResult) {
	if g.expectLtg {
		types, ok := lightningTypes(token)
		if !ok {
			return g, GroupInvalidated
		}
		g.Types, g.expectLtg = types, false
		return g, Appended
	}
	loc, ok := g.locationTokens.appendLocation(token)
	if !ok {
		return g, NotAppended
	}
	g.locationTokens = loc
	return g, Appended
}
