package report

import (
	"fmt"
	"regexp"
)

// Kind identifies a group variant.
type Kind int

// Kinds are listed in recognition priority order.
const (
	KindKeyword Kind = iota
	KindLocation
	KindReportTime
	KindTrend
	KindWind
	KindVisibility
	KindCloud
	KindWeather
	KindTemperature
	KindPressure
	KindRunwayState
	KindSeaSurface
	KindMinMaxTemperature
	KindPrecipitation
	KindLayerForecast
	KindPressureTendency
	KindCloudTypes
	KindLowMidHighCloud
	KindLightning
	KindVicinity
	KindMisc
	KindUnknown
)

var kindNames = [...]string{
	"keyword", "location", "report-time", "trend", "wind", "visibility",
	"cloud", "weather", "temperature", "pressure", "runway-state",
	"sea-surface", "min-max-temperature", "precipitation", "layer-forecast",
	"pressure-tendency", "cloud-types", "low-mid-high-cloud", "lightning",
	"vicinity", "misc", "unknown",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindNames[k]
}

// Group is one decoded group. The set of implementations is closed: it is
// exactly the group types of this package.
//
// Groups are values. Append never mutates the receiver; on Appended the
// returned group replaces it, otherwise the returned group is the receiver.
type Group interface {
	Kind() Kind

	// Append offers the next token to this group. The empty token is sent
	// at end of report: groups still waiting for a required continuation
	// answer GroupInvalidated.
	Append(token string, part ReportPart, md *ReportMetadata) (Group, AppendResult)

	isGroup()
}

type parseFunc func(token string, part ReportPart, md *ReportMetadata) (Group, bool)

// catalog is the recognition order. The first entry whose parser accepts
// the token wins; entries are mutually exclusive by format within a part.
var catalog = [...]struct {
	kind  Kind
	parse parseFunc
}{
	{KindKeyword, parseKeywordGroup},
	{KindLocation, parseLocationGroup},
	{KindReportTime, parseReportTimeGroup},
	{KindTrend, parseTrendGroup},
	{KindWind, parseWindGroup},
	{KindVisibility, parseVisibilityGroup},
	{KindCloud, parseCloudGroup},
	{KindWeather, parseWeatherGroup},
	{KindTemperature, parseTemperatureGroup},
	{KindPressure, parsePressureGroup},
	{KindRunwayState, parseRunwayStateGroup},
	{KindSeaSurface, parseSeaSurfaceGroup},
	{KindMinMaxTemperature, parseMinMaxTemperatureGroup},
	{KindPrecipitation, parsePrecipitationGroup},
	{KindLayerForecast, parseLayerForecastGroup},
	{KindPressureTendency, parsePressureTendencyGroup},
	{KindCloudTypes, parseCloudTypesGroup},
	{KindLowMidHighCloud, parseLowMidHighCloudGroup},
	{KindLightning, parseLightningGroup},
	{KindVicinity, parseVicinityGroup},
	{KindMisc, parseMiscGroup},
}

// Catalog returns the group kinds in recognition order, fallback excluded.
func Catalog() []Kind {
	kinds := make([]Kind, len(catalog))
	for i, e := range catalog {
		kinds[i] = e.kind
	}
	return kinds
}

// ParseGroup classifies a single token. It never fails: a token no catalog
// entry accepts becomes an UnknownGroup holding the token verbatim.
func ParseGroup(token string, part ReportPart, md *ReportMetadata) Group {
	return parseExcluding(token, part, md, KindUnknown)
}

// ReparseGroup is ParseGroup with one kind skipped. It is used to
// reclassify the raw text of a group that has just been invalidated, so
// that the same kind is not selected again.
func ReparseGroup(raw string, part ReportPart, md *ReportMetadata, exclude Kind) Group {
	return parseExcluding(raw, part, md, exclude)
}

func parseExcluding(token string, part ReportPart, md *ReportMetadata, exclude Kind) Group {
	if md == nil {
		md = &ReportMetadata{}
	}
	for _, e := range catalog {
		if e.kind == exclude {
			continue
		}
		if g, ok := e.parse(token, part, md); ok {
			return g
		}
	}
	return UnknownGroup{Text: token}
}

func inParts(part ReportPart, parts ...ReportPart) bool {
	for _, p := range parts {
		if p == part {
			return true
		}
	}
	return false
}

// match runs re against s and returns the submatches, or nil when the
// whole token does not match.
func match(re *regexp.Regexp, s string) []string {
	return re.FindStringSubmatch(s)
}
