package value

import "fmt"

// CloudGenus is a cloud type as used in okta remarks.
type CloudGenus int

const (
	GenusCumulonimbus CloudGenus = iota
	GenusToweringCumulus
	GenusCumulus
	GenusCumulusFractus
	GenusStratocumulus
	GenusNimbostratus
	GenusStratus
	GenusStratusFractus
	GenusAltostratus
	GenusAltocumulus
	GenusAltocumulusCastellanus
	GenusCirrus
	GenusCirrostratus
	GenusCirrocumulus
)

// genusCodes is ordered so that longer codes are tried before their prefixes.
var genusCodes = []struct {
	code  string
	genus CloudGenus
}{
	{"TCU", GenusToweringCumulus},
	{"ACC", GenusAltocumulusCastellanus},
	{"CB", GenusCumulonimbus},
	{"CU", GenusCumulus},
	{"CF", GenusCumulusFractus},
	{"SC", GenusStratocumulus},
	{"NS", GenusNimbostratus},
	{"ST", GenusStratus},
	{"SF", GenusStratusFractus},
	{"AS", GenusAltostratus},
	{"AC", GenusAltocumulus},
	{"CI", GenusCirrus},
	{"CS", GenusCirrostratus},
	{"CC", GenusCirrocumulus},
}

var genusNames = [...]string{
	"cumulonimbus", "towering cumulus", "cumulus", "cumulus fractus",
	"stratocumulus", "nimbostratus", "stratus", "stratus fractus",
	"altostratus", "altocumulus", "altocumulus castellanus", "cirrus",
	"cirrostratus", "cirrocumulus",
}

func (g CloudGenus) String() string {
	if g < 0 || int(g) >= len(genusNames) {
		return fmt.Sprintf("CloudGenus(%d)", g)
	}
	return genusNames[g]
}

// CloudType is a cloud genus with its sky coverage in oktas.
type CloudType struct {
	Genus CloudGenus
	Okta  int
}

// CloudTypeFromString parses one "SC1"-style element and returns the
// number of bytes consumed, so that chained forms ("SC1AC2") can be split.
func CloudTypeFromString(s string) (CloudType, int, bool) {
	for _, g := range genusCodes {
		if len(s) < len(g.code)+1 || s[:len(g.code)] != g.code {
			continue
		}
		okta, ok := atoi(s[len(g.code) : len(g.code)+1])
		if !ok || okta < 1 || okta > 8 {
			return CloudType{}, 0, false
		}
		return CloudType{Genus: g.genus, Okta: okta}, len(g.code) + 1, true
	}
	return CloudType{}, 0, false
}

func (c CloudType) String() string {
	return fmt.Sprintf("%d/8 %s", c.Okta, c.Genus)
}
