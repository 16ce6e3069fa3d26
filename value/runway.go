package value

import (
	"fmt"
	"strings"
)

// RunwayDesignator is the parallel runway suffix.
type RunwayDesignator int

const (
	DesignatorNone RunwayDesignator = iota
	DesignatorLeft
	DesignatorCenter
	DesignatorRight
)

func (d RunwayDesignator) String() string {
	switch d {
	case DesignatorLeft:
		return "L"
	case DesignatorCenter:
		return "C"
	case DesignatorRight:
		return "R"
	default:
		return ""
	}
}

// Runway identifies a runway. Number 88 means all runways and 99 means the
// previous runway state message is repeated.
type Runway struct {
	Number     int
	Designator RunwayDesignator
}

// RunwayFromString parses "R27", "R27L" or, in remarks, "RWY27L".
func RunwayFromString(s string) (Runway, bool) {
	body, ok := strings.CutPrefix(s, "RWY")
	if !ok {
		body, ok = strings.CutPrefix(s, "R")
		if !ok {
			return Runway{}, false
		}
	}
	if len(body) != 2 && len(body) != 3 {
		return Runway{}, false
	}
	n, ok := atoi(body[:2])
	if !ok || n > 99 || (n > 36 && n != 88 && n != 99) {
		return Runway{}, false
	}
	r := Runway{Number: n}
	if len(body) == 3 {
		switch body[2] {
		case 'L':
			r.Designator = DesignatorLeft
		case 'C':
			r.Designator = DesignatorCenter
		case 'R':
			r.Designator = DesignatorRight
		default:
			return Runway{}, false
		}
		if r.IsAllRunways() || r.IsMessageRepetition() {
			return Runway{}, false
		}
	}
	return r, true
}

// IsAllRunways reports the R88 form.
func (r Runway) IsAllRunways() bool { return r.Number == 88 }

// IsMessageRepetition reports the R99 form.
func (r Runway) IsMessageRepetition() bool { return r.Number == 99 }

func (r Runway) String() string {
	switch {
	case r.IsAllRunways():
		return "all runways"
	case r.IsMessageRepetition():
		return "repeated runway message"
	default:
		return fmt.Sprintf("runway %02d%s", r.Number, r.Designator)
	}
}
