package report

import (
	"fmt"

	"github.com/gometar/gometar/value"
)

// VicinityPhenomenon is a phenomenon reported with its location in remarks.
type VicinityPhenomenon int

const (
	VicinityThunderstorm VicinityPhenomenon = iota
	VicinityCumulonimbus
	VicinityCumulonimbusMammatus
	VicinityToweringCumulus
	VicinityAltocumulusCastellanus
	VicinityStratocumulusStandingLenticular
	VicinityAltocumulusStandingLenticular
	VicinityCirrocumulusStandingLenticular
	VicinityRotorCloud
	VicinityVirga
	VicinityPrecipitation
	VicinityFog
	VicinityShowers
)

var vicinityCodes = [...]string{
	"TS", "CB", "CBMAM", "TCU", "ACC", "SCSL", "ACSL", "CCSL", "ROTOR CLD",
	"VIRGA", "VCPCPN", "FG", "VCSH",
}

var vicinityNames = [...]string{
	"thunderstorm", "cumulonimbus", "cumulonimbus mammatus", "towering cumulus",
	"altocumulus castellanus", "stratocumulus standing lenticular",
	"altocumulus standing lenticular", "cirrocumulus standing lenticular",
	"rotor cloud", "virga", "precipitation in vicinity", "fog", "showers in vicinity",
}

func (p VicinityPhenomenon) String() string {
	if p < 0 || int(p) >= len(vicinityNames) {
		return fmt.Sprintf("VicinityPhenomenon(%d)", p)
	}
	return vicinityNames[p]
}

type vicinityNext int

const (
	vicExpectLocation vicinityNext = iota // at least one location token must follow
	vicLocation                           // more location tokens or MOV may follow
	vicExpectMoving                       // "MOV": a direction must follow
	vicComplete
)

// VicinityGroup is a remark phenomenon with location and movement, such as
// "CB DSNT NE-SE MOV E" or "VIRGA OHD".
type VicinityGroup struct {
	Phenomenon VicinityPhenomenon
	locationTokens
	Moving *value.Direction

	next vicinityNext
}

func (VicinityGroup) isGroup()   {}
func (VicinityGroup) Kind() Kind { return KindVicinity }

func parseVicinityGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	if part != PartRemark {
		return nil, false
	}
	for i, code := range vicinityCodes {
		if code == token {
			return VicinityGroup{Phenomenon: VicinityPhenomenon(i)}, true
		}
	}
	if token == "ROTOR" {
		return VicinityGroup{Phenomenon: VicinityRotorCloud, next: vicExpectLocation}, true
	}
	return nil, false
}

func (g VicinityGroup) Append(token string, _ ReportPart, _ *ReportMetadata) (Group, AppendResult) {
	switch g.next {
	case vicExpectLocation, vicLocation:
		if g.Phenomenon == VicinityRotorCloud && g.isEmpty() && token == "CLD" {
			return g, Appended
		}
		if token == "MOV" && g.next == vicLocation {
			g.next = vicExpectMoving
			return g, Appended
		}
		loc, ok := g.locationTokens.appendLocation(token)
		if !ok {
			if g.next == vicExpectLocation {
				return g, GroupInvalidated
			}
			return g, NotAppended
		}
		g.locationTokens, g.next = loc, vicLocation
		return g, Appended
	case vicExpectMoving:
		d, ok := value.DirectionFromCardinalString(token)
		if !ok || d.Type != value.DirectionCardinal {
			return g, GroupInvalidated
		}
		g.Moving, g.next = &d, vicComplete
		return g, Appended
	}
	return g, NotAppended
}
