package report

import (
	"fmt"
	"regexp"

	"github.com/gometar/gometar/value"
)

// LayerPhenomenon is the forecast icing or turbulence condition.
type LayerPhenomenon int

const (
	IcingNone LayerPhenomenon = iota
	IcingLight
	IcingLightInCloud
	IcingLightInPrecipitation
	IcingModerateMixed
	IcingModerateRimeInCloud
	IcingModerateClearInPrecipitation
	IcingSevereMixed
	IcingSevereRimeInCloud
	IcingSevereClearInPrecipitation
	TurbulenceNone
	TurbulenceLight
	TurbulenceModerateClearAirOccasional
	TurbulenceModerateClearAirFrequent
	TurbulenceModerateInCloudOccasional
	TurbulenceModerateInCloudFrequent
	TurbulenceSevereClearAirOccasional
	TurbulenceSevereClearAirFrequent
	TurbulenceSevereInCloudOccasional
	TurbulenceSevereInCloudFrequent
	TurbulenceExtreme
)

var layerPhenomenonNames = [...]string{
	"no icing", "light icing", "light icing in cloud", "light icing in precipitation",
	"moderate mixed icing", "moderate rime icing in cloud",
	"moderate clear icing in precipitation", "severe mixed icing",
	"severe rime icing in cloud", "severe clear icing in precipitation",
	"no turbulence", "light turbulence",
	"occasional moderate turbulence in clear air", "frequent moderate turbulence in clear air",
	"occasional moderate turbulence in cloud", "frequent moderate turbulence in cloud",
	"occasional severe turbulence in clear air", "frequent severe turbulence in clear air",
	"occasional severe turbulence in cloud", "frequent severe turbulence in cloud",
	"extreme turbulence",
}

func (p LayerPhenomenon) String() string {
	if p < 0 || int(p) >= len(layerPhenomenonNames) {
		return fmt.Sprintf("LayerPhenomenon(%d)", p)
	}
	return layerPhenomenonNames[p]
}

// IsIcing reports whether p is an icing condition.
func (p LayerPhenomenon) IsIcing() bool { return p <= IcingSevereClearInPrecipitation }

// LayerForecastGroup is a TAF icing ("620304") or turbulence ("520610")
// layer with its base and top heights.
type LayerForecastGroup struct {
	Phenomenon LayerPhenomenon
	Base       value.Distance
	Top        value.Distance
}

func (LayerForecastGroup) isGroup()   {}
func (LayerForecastGroup) Kind() Kind { return KindLayerForecast }

func (g LayerForecastGroup) Append(string, ReportPart, *ReportMetadata) (Group, AppendResult) {
	return g, NotAppended
}

var layerForecastRe = regexp.MustCompile(`^([56])([0-9X])(\d{3})(\d)$`)

func parseLayerForecastGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	if part != PartTaf {
		return nil, false
	}
	m := match(layerForecastRe, token)
	if m == nil {
		return nil, false
	}
	var p LayerPhenomenon
	switch {
	case m[2] == "X":
		if m[1] != "5" {
			return nil, false
		}
		p = TurbulenceExtreme
	case m[1] == "6":
		p = IcingNone + LayerPhenomenon(m[2][0]-'0')
	default:
		p = TurbulenceNone + LayerPhenomenon(m[2][0]-'0')
	}
	base, ok := value.DistanceFromHeightString(m[3])
	if !ok {
		return nil, false
	}
	baseFt, _ := base.Integer()
	thickness := int(m[4][0]-'0') * 1000
	return LayerForecastGroup{
		Phenomenon: p,
		Base:       base,
		Top:        value.NewDistance(baseFt+thickness, value.Feet),
	}, true
}
