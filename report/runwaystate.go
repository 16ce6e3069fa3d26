package report

import (
	"fmt"
	"regexp"

	"github.com/gometar/gometar/value"
)

// RunwayStateType is the kind of runway state group.
type RunwayStateType int

const (
	RunwayStateNormal RunwayStateType = iota
	RunwayStateCleared
	RunwayStateSnowClosed
	RunwayStateAerodromeSnowClosed
)

func (t RunwayStateType) String() string {
	switch t {
	case RunwayStateNormal:
		return "runway state"
	case RunwayStateCleared:
		return "contamination cleared"
	case RunwayStateSnowClosed:
		return "closed due to snow"
	case RunwayStateAerodromeSnowClosed:
		return "aerodrome closed due to snow"
	default:
		return fmt.Sprintf("RunwayStateType(%d)", t)
	}
}

// RunwayDeposits is the deposit type digit.
type RunwayDeposits int

const (
	DepositsNotReported RunwayDeposits = iota - 1
	DepositsClearAndDry
	DepositsDamp
	DepositsWetOrWaterPatches
	DepositsRimeOrFrost
	DepositsDrySnow
	DepositsWetSnow
	DepositsSlush
	DepositsIce
	DepositsCompactedSnow
	DepositsFrozenRuts
)

var depositNames = [...]string{
	"clear and dry", "damp", "wet or water patches", "rime or frost covered",
	"dry snow", "wet snow", "slush", "ice", "compacted or rolled snow",
	"frozen ruts or ridges",
}

func (d RunwayDeposits) String() string {
	if d == DepositsNotReported {
		return "deposits not reported"
	}
	if d < 0 || int(d) >= len(depositNames) {
		return fmt.Sprintf("RunwayDeposits(%d)", d)
	}
	return depositNames[d]
}

// RunwayExtent is the contaminated share of the runway.
type RunwayExtent int

const (
	ExtentNotReported RunwayExtent = iota
	ExtentLessThan10Percent
	Extent11To25Percent
	Extent26To50Percent
	ExtentMoreThan51Percent
)

func (e RunwayExtent) String() string {
	switch e {
	case ExtentNotReported:
		return "extent not reported"
	case ExtentLessThan10Percent:
		return "10% or less"
	case Extent11To25Percent:
		return "11% to 25%"
	case Extent26To50Percent:
		return "26% to 50%"
	case ExtentMoreThan51Percent:
		return "51% to 100%"
	default:
		return fmt.Sprintf("RunwayExtent(%d)", e)
	}
}

// RunwayStateGroup is the state of a runway ("R27/190055") or the snow
// closure of a runway or the whole aerodrome. An aerodrome closure carries
// the all-runways designator.
type RunwayStateGroup struct {
	Type     RunwayStateType
	Runway   value.Runway
	Deposits RunwayDeposits
	Extent   RunwayExtent
	Depth    value.Precipitation
	// NotOperational is set when the depth is coded 99.
	NotOperational bool
	Friction       value.SurfaceFriction
}

func (RunwayStateGroup) isGroup()   {}
func (RunwayStateGroup) Kind() Kind { return KindRunwayState }

func (g RunwayStateGroup) Append(string, ReportPart, *ReportMetadata) (Group, AppendResult) {
	return g, NotAppended
}

var (
	runwayStateRe    = regexp.MustCompile(`^(R\d\d[LCR]?)/([0-9/])([0-9/])(\d\d|//)(\d\d|//)$`)
	runwayClearedRe  = regexp.MustCompile(`^(R\d\d[LCR]?)/CLRD(\d\d|//)$`)
	runwaySnocloRe   = regexp.MustCompile(`^(R\d\d[LCR]?)/SNOCLO$`)
	legacyRunwayRe   = regexp.MustCompile(`^(\d\d)([0-9/])([0-9/])(\d\d|//)(\d\d|//)$`)
	legacyClearedRe  = regexp.MustCompile(`^(\d\d)CLRD(\d\d|//)$`)
	extentFromDigits = map[byte]RunwayExtent{
		'/': ExtentNotReported, '1': ExtentLessThan10Percent, '2': Extent11To25Percent,
		'5': Extent26To50Percent, '9': ExtentMoreThan51Percent,
	}
)

func parseRunwayStateGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	if part != PartMetar {
		return nil, false
	}
	if token == "SNOCLO" || token == "R/SNOCLO" {
		return RunwayStateGroup{Type: RunwayStateAerodromeSnowClosed, Runway: value.Runway{Number: 88}}, true
	}
	if m := match(runwaySnocloRe, token); m != nil {
		rwy, ok := value.RunwayFromString(m[1])
		if !ok {
			return nil, false
		}
		return RunwayStateGroup{Type: RunwayStateSnowClosed, Runway: rwy}, true
	}
	if m := match(runwayClearedRe, token); m != nil {
		return parseRunwayCleared(m[1], m[2])
	}
	if m := match(legacyClearedRe, token); m != nil {
		return parseRunwayCleared("R"+m[1], m[2])
	}
	if m := match(runwayStateRe, token); m != nil {
		return parseRunwayState(m[1], m[2:])
	}
	if m := match(legacyRunwayRe, token); m != nil {
		return parseRunwayState("R"+m[1], m[2:])
	}
	return nil, false
}

func parseRunwayCleared(runway, friction string) (Group, bool) {
	rwy, ok := value.RunwayFromString(runway)
	if !ok {
		return nil, false
	}
	f, ok := value.SurfaceFrictionFromString(friction)
	if !ok {
		return nil, false
	}
	return RunwayStateGroup{Type: RunwayStateCleared, Runway: rwy, Friction: f}, true
}

// parseRunwayState decodes deposits, extent, depth and friction fields.
func parseRunwayState(runway string, fields []string) (Group, bool) {
	rwy, ok := value.RunwayFromString(runway)
	if !ok {
		return nil, false
	}
	g := RunwayStateGroup{Type: RunwayStateNormal, Runway: rwy, Deposits: DepositsNotReported}
	if fields[0] != "/" {
		g.Deposits = RunwayDeposits(fields[0][0] - '0')
	}
	if g.Extent, ok = extentFromDigits[fields[1][0]]; !ok {
		return nil, false
	}
	if fields[2] == "99" {
		g.NotOperational = true
	} else if g.Depth, ok = value.PrecipitationFromRunwayDeposits(fields[2]); !ok {
		return nil, false
	}
	if g.Friction, ok = value.SurfaceFrictionFromString(fields[3]); !ok {
		return nil, false
	}
	return g, true
}
