package value

import (
	"fmt"
	"strings"
)

// DirectionType says how a direction was encoded.
type DirectionType int

const (
	DirectionNotReported   DirectionType = iota // "///"
	DirectionVariable                           // "VRB"
	DirectionDegrees                            // "270"
	DirectionCardinal                           // "NE"
	DirectionOverhead                           // "OHD"
	DirectionAllQuadrants                       // "ALQDS"
	DirectionUnknown                            // "UNKNOWN"
)

func (t DirectionType) String() string {
	switch t {
	case DirectionNotReported:
		return "not reported"
	case DirectionVariable:
		return "variable"
	case DirectionDegrees:
		return "degrees"
	case DirectionCardinal:
		return "cardinal"
	case DirectionOverhead:
		return "overhead"
	case DirectionAllQuadrants:
		return "all quadrants"
	case DirectionUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("DirectionType(%d)", t)
	}
}

// Cardinal is one of the eight compass points.
type Cardinal int

const (
	CardinalNone Cardinal = iota
	CardinalN
	CardinalNE
	CardinalE
	CardinalSE
	CardinalS
	CardinalSW
	CardinalW
	CardinalNW
)

var cardinalNames = [...]string{"", "N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (c Cardinal) String() string {
	if c < 0 || int(c) >= len(cardinalNames) {
		return fmt.Sprintf("Cardinal(%d)", c)
	}
	return cardinalNames[c]
}

// Direction is a wind or phenomenon direction.
type Direction struct {
	Type    DirectionType
	Degrees int // valid for DirectionDegrees and DirectionCardinal
}

// DirectionFromDegreesString parses a three-digit degree value, "VRB" or "///".
func DirectionFromDegreesString(s string) (Direction, bool) {
	switch s {
	case "///":
		return Direction{Type: DirectionNotReported}, true
	case "VRB":
		return Direction{Type: DirectionVariable}, true
	}
	if len(s) != 3 {
		return Direction{}, false
	}
	deg, ok := atoi(s)
	if !ok || deg > 360 {
		return Direction{}, false
	}
	return Direction{Type: DirectionDegrees, Degrees: deg}, true
}

// DirectionFromCardinalString parses a compass point or one of the
// special remark directions (OHD, ALQDS, UNKNOWN).
func DirectionFromCardinalString(s string) (Direction, bool) {
	switch s {
	case "OHD":
		return Direction{Type: DirectionOverhead}, true
	case "ALQDS", "ALQS":
		return Direction{Type: DirectionAllQuadrants}, true
	case "UNKNOWN":
		return Direction{Type: DirectionUnknown}, true
	}
	for i := 1; i < len(cardinalNames); i++ {
		if cardinalNames[i] == s {
			deg := (i - 1) * 45
			if deg == 0 {
				deg = 360
			}
			return Direction{Type: DirectionCardinal, Degrees: deg}, true
		}
	}
	return Direction{}, false
}

// DirectionSectorFromString parses a single cardinal direction ("NW") or a
// sector between two of them ("NE-SE"). For a single direction both ends
// are the same.
func DirectionSectorFromString(s string) (from, to Direction, ok bool) {
	first, second, found := strings.Cut(s, "-")
	from, ok = DirectionFromCardinalString(first)
	if !ok || from.Type != DirectionCardinal {
		return Direction{}, Direction{}, false
	}
	if !found {
		return from, from, true
	}
	to, ok = DirectionFromCardinalString(second)
	if !ok || to.Type != DirectionCardinal {
		return Direction{}, Direction{}, false
	}
	return from, to, true
}

// IsReported is false only for the "///" form.
func (d Direction) IsReported() bool {
	return d.Type != DirectionNotReported
}

// Cardinal returns the compass point nearest to a degree value.
func (d Direction) Cardinal() Cardinal {
	if d.Type != DirectionDegrees && d.Type != DirectionCardinal {
		return CardinalNone
	}
	if d.Type == DirectionDegrees && d.Degrees == 0 {
		// 000 with calm wind
		return CardinalNone
	}
	sector := ((d.Degrees + 22) / 45) % 8
	return Cardinal(sector + 1)
}

func (d Direction) String() string {
	switch d.Type {
	case DirectionDegrees:
		return fmt.Sprintf("%d°", d.Degrees)
	case DirectionCardinal:
		return d.Cardinal().String()
	default:
		return d.Type.String()
	}
}
