package value_test

import (
	"testing"

	"github.com/gometar/gometar/internal/testutil"
	"github.com/gometar/gometar/value"
)

func TestSurfaceFrictionFromString(t *testing.T) {
	tests := []struct {
		input   string
		ok      bool
		typ     value.FrictionType
		braking value.BrakingAction
		str     string
	}{
		{"62", true, value.FrictionCoefficient, value.BrakingGood, "friction coefficient 0.62"},
		{"25", true, value.FrictionCoefficient, value.BrakingPoor, "friction coefficient 0.25"},
		{"29", true, value.FrictionCoefficient, value.BrakingMediumPoor, "friction coefficient 0.29"},
		{"35", true, value.FrictionCoefficient, value.BrakingMedium, "friction coefficient 0.35"},
		{"39", true, value.FrictionCoefficient, value.BrakingMediumGood, "friction coefficient 0.39"},
		{"93", true, value.FrictionBrakingAction, value.BrakingMedium, "braking action medium"},
		{"95", true, value.FrictionBrakingAction, value.BrakingGood, "braking action good"},
		{"99", true, value.FrictionUnreliable, value.BrakingNone, "friction unreliable"},
		{"//", true, value.FrictionNotReported, value.BrakingNone, "friction not reported"},
		{input: "96"},
		{input: "9"},
		{input: "9A"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, ok := value.SurfaceFrictionFromString(tt.input)
			testutil.Equal(t, tt.ok, ok, "ok")
			if !ok {
				return
			}
			testutil.Equal(t, tt.typ, f.Type, "type")
			testutil.Equal(t, tt.braking, f.BrakingActionOf(), "braking action")
			testutil.Equal(t, tt.str, f.String(), "string")
		})
	}
}

func TestWaveHeightFromString(t *testing.T) {
	tests := []struct {
		input    string
		ok       bool
		reported bool
		str      string
	}{
		{"S4", true, true, "sea moderate"},
		{"S0", true, true, "sea calm (glassy)"},
		{"S/", true, false, "not reported"},
		{"H12", true, true, "waves 1.2 m"},
		{"H///", true, false, "not reported"},
		{"H/", true, false, "not reported"},
		{input: "H1234"},
		{input: "S10"},
		{input: "X5"},
		{input: "S"},
		{input: "H"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, ok := value.WaveHeightFromString(tt.input)
			testutil.Equal(t, tt.ok, ok, "ok")
			if !ok {
				return
			}
			testutil.Equal(t, tt.reported, w.IsReported(), "reported")
			testutil.Equal(t, tt.str, w.String(), "string")
		})
	}
}

func TestWaveHeightMeters(t *testing.T) {
	w, _ := value.WaveHeightFromString("S4")
	testutil.True(t, w.IsStateOfSurface())
	m, ok := w.Meters()
	testutil.True(t, ok)
	testutil.InDelta(t, 2.5, m, 1e-9, "upper bound of moderate sea")

	w, _ = value.WaveHeightFromString("H12")
	testutil.False(t, w.IsStateOfSurface())
	m, _ = w.Meters()
	testutil.InDelta(t, 1.2, m, 1e-9)

	w, _ = value.WaveHeightFromString("S9")
	_, ok = w.Meters()
	testutil.False(t, ok, "phenomenal sea has no upper bound")
}
