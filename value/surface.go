package value

import "fmt"

// FrictionType says how a runway surface friction was reported.
type FrictionType int

const (
	FrictionNotReported FrictionType = iota
	FrictionCoefficient
	FrictionBrakingAction
	FrictionUnreliable
)

// BrakingAction is the descriptive braking action (codes 91-95).
type BrakingAction int

const (
	BrakingNone BrakingAction = iota
	BrakingPoor
	BrakingMediumPoor
	BrakingMedium
	BrakingMediumGood
	BrakingGood
)

func (b BrakingAction) String() string {
	switch b {
	case BrakingNone:
		return "none"
	case BrakingPoor:
		return "poor"
	case BrakingMediumPoor:
		return "medium/poor"
	case BrakingMedium:
		return "medium"
	case BrakingMediumGood:
		return "medium/good"
	case BrakingGood:
		return "good"
	default:
		return fmt.Sprintf("BrakingAction(%d)", b)
	}
}

// SurfaceFriction is the last two digits of a runway state group.
type SurfaceFriction struct {
	Type        FrictionType
	Coefficient int // hundredths, for FrictionCoefficient
	Braking     BrakingAction
}

// SurfaceFrictionFromString parses "//", "01"-"90", "91"-"95" or "99".
func SurfaceFrictionFromString(s string) (SurfaceFriction, bool) {
	if s == "//" {
		return SurfaceFriction{Type: FrictionNotReported}, true
	}
	if len(s) != 2 {
		return SurfaceFriction{}, false
	}
	v, ok := atoi(s)
	if !ok {
		return SurfaceFriction{}, false
	}
	switch {
	case v <= 90:
		return SurfaceFriction{Type: FrictionCoefficient, Coefficient: v}, true
	case v >= 91 && v <= 95:
		return SurfaceFriction{Type: FrictionBrakingAction, Braking: BrakingAction(v - 90)}, true
	case v == 99:
		return SurfaceFriction{Type: FrictionUnreliable}, true
	default:
		return SurfaceFriction{}, false
	}
}

// IsReported is false for "//".
func (f SurfaceFriction) IsReported() bool { return f.Type != FrictionNotReported }

// BrakingActionOf maps a coefficient to its braking action class.
func (f SurfaceFriction) BrakingActionOf() BrakingAction {
	switch f.Type {
	case FrictionBrakingAction:
		return f.Braking
	case FrictionCoefficient:
		switch {
		case f.Coefficient < 26:
			return BrakingPoor
		case f.Coefficient < 30:
			return BrakingMediumPoor
		case f.Coefficient < 36:
			return BrakingMedium
		case f.Coefficient < 40:
			return BrakingMediumGood
		default:
			return BrakingGood
		}
	default:
		return BrakingNone
	}
}

func (f SurfaceFriction) String() string {
	switch f.Type {
	case FrictionCoefficient:
		return fmt.Sprintf("friction coefficient 0.%02d", f.Coefficient)
	case FrictionBrakingAction:
		return "braking action " + f.Braking.String()
	case FrictionUnreliable:
		return "friction unreliable"
	default:
		return "friction not reported"
	}
}

// StateOfSurface is the WMO sea state code 0-9.
type StateOfSurface int

const (
	SurfaceNotReported StateOfSurface = iota - 1
	SurfaceCalmGlassy
	SurfaceCalmRippled
	SurfaceSmooth
	SurfaceSlight
	SurfaceModerate
	SurfaceRough
	SurfaceVeryRough
	SurfaceHigh
	SurfaceVeryHigh
	SurfacePhenomenal
)

var stateOfSurfaceNames = [...]string{
	"calm (glassy)", "calm (rippled)", "smooth", "slight", "moderate",
	"rough", "very rough", "high", "very high", "phenomenal",
}

// maxWaveHeightDm is the upper wave height bound for each sea state, in decimeters.
var maxWaveHeightDm = [...]int{0, 1, 5, 12, 25, 40, 60, 90, 140, 0}

func (s StateOfSurface) String() string {
	if s == SurfaceNotReported {
		return "not reported"
	}
	if s < 0 || int(s) >= len(stateOfSurfaceNames) {
		return fmt.Sprintf("StateOfSurface(%d)", s)
	}
	return stateOfSurfaceNames[s]
}

// WaveHeight is a sea state code ("S4") or a wave height in decimeters ("H12").
type WaveHeight struct {
	State    StateOfSurface // SurfaceNotReported when given as a height
	Height   int            // decimeters
	reported bool
}

// WaveHeightFromString parses "S4", "S/", "H12", "H///".
func WaveHeightFromString(s string) (WaveHeight, bool) {
	if len(s) < 2 {
		return WaveHeight{}, false
	}
	body := s[1:]
	switch s[0] {
	case 'S':
		if body == "/" {
			return WaveHeight{State: SurfaceNotReported}, true
		}
		if len(body) != 1 {
			return WaveHeight{}, false
		}
		v, ok := atoi(body)
		if !ok {
			return WaveHeight{}, false
		}
		return WaveHeight{State: StateOfSurface(v), Height: maxWaveHeightDm[v], reported: true}, true
	case 'H':
		if isSlashes(body) && len(body) <= 3 {
			return WaveHeight{State: SurfaceNotReported}, true
		}
		if len(body) < 1 || len(body) > 3 {
			return WaveHeight{}, false
		}
		v, ok := atoi(body)
		if !ok {
			return WaveHeight{}, false
		}
		return WaveHeight{State: SurfaceNotReported, Height: v, reported: true}, true
	default:
		return WaveHeight{}, false
	}
}

// IsReported is false for '/'-filled values.
func (w WaveHeight) IsReported() bool { return w.reported }

// IsStateOfSurface reports whether the value came from a descriptive code.
func (w WaveHeight) IsStateOfSurface() bool { return w.State != SurfaceNotReported }

// Meters returns the wave height (or the sea state's upper bound) in meters.
func (w WaveHeight) Meters() (float64, bool) {
	if !w.reported || w.State == SurfacePhenomenal {
		return 0, false
	}
	return float64(w.Height) / 10, true
}

func (w WaveHeight) String() string {
	if !w.reported {
		return "not reported"
	}
	if w.IsStateOfSurface() {
		return "sea " + w.State.String()
	}
	return fmt.Sprintf("waves %.1f m", float64(w.Height)/10)
}
