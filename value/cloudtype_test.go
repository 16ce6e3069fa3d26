package value_test

import (
	"testing"

	"github.com/gometar/gometar/internal/testutil"
	"github.com/gometar/gometar/value"
)

func TestCloudTypeFromString(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
		want  value.CloudType
		n     int
	}{
		{"SC1", true, value.CloudType{Genus: value.GenusStratocumulus, Okta: 1}, 3},
		{"SC1AC2", true, value.CloudType{Genus: value.GenusStratocumulus, Okta: 1}, 3},
		{"TCU5", true, value.CloudType{Genus: value.GenusToweringCumulus, Okta: 5}, 4},
		{"ACC3", true, value.CloudType{Genus: value.GenusAltocumulusCastellanus, Okta: 3}, 4},
		{"AC2", true, value.CloudType{Genus: value.GenusAltocumulus, Okta: 2}, 3},
		{"CB8", true, value.CloudType{Genus: value.GenusCumulonimbus, Okta: 8}, 3},
		{input: "SC0"},
		{input: "SC9"},
		{input: "SC"},
		{input: "XX1"},
		{input: ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			c, n, ok := value.CloudTypeFromString(tt.input)
			testutil.Equal(t, tt.ok, ok, "ok")
			if !ok {
				return
			}
			testutil.Equal(t, tt.want, c, "cloud type")
			testutil.Equal(t, tt.n, n, "bytes consumed")
		})
	}
}

func TestCloudTypeString(t *testing.T) {
	testutil.Equal(t, "1/8 stratocumulus", value.CloudType{Genus: value.GenusStratocumulus, Okta: 1}.String())
	testutil.Equal(t, "CloudGenus(99)", value.CloudGenus(99).String())
}
