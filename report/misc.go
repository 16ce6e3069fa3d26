package report

import (
	"fmt"
	"regexp"
	"strconv"
)

// MiscType is the kind of miscellaneous group.
type MiscType int

const (
	MiscSunshineDuration MiscType = iota // minutes
	MiscColourCode
	MiscHailstoneSize    // inches
	MiscDensityAltitude  // feet
	MiscIssuerIdentifier // "FIRST", "LAST"
)

func (t MiscType) String() string {
	switch t {
	case MiscSunshineDuration:
		return "sunshine duration"
	case MiscColourCode:
		return "colour code"
	case MiscHailstoneSize:
		return "largest hailstone size"
	case MiscDensityAltitude:
		return "density altitude"
	case MiscIssuerIdentifier:
		return "observation sequence marker"
	default:
		return fmt.Sprintf("MiscType(%d)", t)
	}
}

// ColourCode is the military aerodrome colour state.
type ColourCode int

const (
	ColourNone ColourCode = iota
	ColourBlue
	ColourWhite
	ColourGreen
	ColourYellow1
	ColourYellow2
	ColourAmber
	ColourRed
)

var colourCodes = [...]string{"", "BLU", "WHT", "GRN", "YLO1", "YLO2", "AMB", "RED"}

func (c ColourCode) String() string {
	if c < 0 || int(c) >= len(colourCodes) {
		return fmt.Sprintf("ColourCode(%d)", c)
	}
	return colourCodes[c]
}

type miscNext int

const (
	miscComplete       miscNext = iota
	miscExpectHail              // "GR": size must follow
	miscMaybeHailFrac           // "GR 1": fraction may follow
	miscExpectAlt               // "DENSITY": "ALT" must follow
	miscExpectAltValue          // "DENSITY ALT": value must follow
)

// MiscGroup holds the groups that do not fit elsewhere: sunshine duration,
// colour codes, hailstone size and density altitude.
type MiscGroup struct {
	Type  MiscType
	Value float64
	// Colour and Black are set for MiscColourCode; Black means the
	// aerodrome is closed for reasons other than weather.
	Colour ColourCode
	Black  bool
	Text   string

	next miscNext
}

func (MiscGroup) isGroup()   {}
func (MiscGroup) Kind() Kind { return KindMisc }

var (
	sunshineRe        = regexp.MustCompile(`^98(\d{3})$`)
	colourRe          = regexp.MustCompile(`^(BLACK)?(BLU|WHT|GRN|YLO1|YLO2|AMB|RED)$`)
	hailIntegerRe     = regexp.MustCompile(`^\d$`)
	hailFractionRe    = regexp.MustCompile(`^(\d)/(\d)$`)
	densityAltitudeRe = regexp.MustCompile(`^(\d{1,5})FT$`)
)

func parseMiscGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	switch part {
	case PartMetar:
		if m := match(colourRe, token); m != nil {
			for i, code := range colourCodes {
				if code == m[2] {
					return MiscGroup{Type: MiscColourCode, Colour: ColourCode(i), Black: m[1] != ""}, true
				}
			}
		}
	case PartRemark:
		switch token {
		case "GR":
			return MiscGroup{Type: MiscHailstoneSize, next: miscExpectHail}, true
		case "DENSITY":
			return MiscGroup{Type: MiscDensityAltitude, next: miscExpectAlt}, true
		case "FIRST", "LAST":
			return MiscGroup{Type: MiscIssuerIdentifier, Text: token}, true
		}
		if m := match(sunshineRe, token); m != nil {
			minutes, _ := strconv.Atoi(m[1])
			return MiscGroup{Type: MiscSunshineDuration, Value: float64(minutes)}, true
		}
	}
	return nil, false
}

func (g MiscGroup) Append(token string, _ ReportPart, _ *ReportMetadata) (Group, AppendResult) {
	switch g.next {
	case miscExpectHail:
		if hailIntegerRe.MatchString(token) {
			g.Value, g.next = float64(token[0]-'0'), miscMaybeHailFrac
			return g, Appended
		}
		if f, ok := hailFraction(token); ok {
			g.Value, g.next = f, miscComplete
			return g, Appended
		}
		return g, GroupInvalidated
	case miscMaybeHailFrac:
		f, ok := hailFraction(token)
		if !ok {
			return g, NotAppended
		}
		g.Value, g.next = g.Value+f, miscComplete
		return g, Appended
	case miscExpectAlt:
		if token != "ALT" {
			return g, GroupInvalidated
		}
		g.next = miscExpectAltValue
		return g, Appended
	case miscExpectAltValue:
		m := match(densityAltitudeRe, token)
		if m == nil {
			return g, GroupInvalidated
		}
		feet, _ := strconv.Atoi(m[1])
		g.Value, g.next = float64(feet), miscComplete
		return g, Appended
	}
	return g, NotAppended
}

func hailFraction(token string) (float64, bool) {
	m := match(hailFractionRe, token)
	if m == nil {
		return 0, false
	}
	num, den := float64(m[1][0]-'0'), float64(m[2][0]-'0')
	if den == 0 || num >= den {
		return 0, false
	}
	return num / den, true
}
