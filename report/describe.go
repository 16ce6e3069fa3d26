package report

import (
	"fmt"
	"strings"

	"github.com/gometar/gometar/value"
)

// Describe returns a one-line English description of a decoded group.
func Describe(gi GroupInfo) string {
	d := &describer{}
	Visit(d, gi)
	return d.b.String()
}

type describer struct {
	b strings.Builder
}

func (d *describer) printf(format string, args ...any) {
	fmt.Fprintf(&d.b, format, args...)
}

func (d *describer) Keyword(_ GroupInfo, g KeywordGroup) {
	switch g.Type {
	case KeywordMetar:
		d.printf("routine weather observation (METAR)")
	case KeywordSpeci:
		d.printf("special weather observation (SPECI)")
	case KeywordTaf:
		d.printf("terminal aerodrome forecast (TAF)")
	case KeywordAmd:
		d.printf("amended report")
	case KeywordNil:
		d.printf("missing report")
	case KeywordCnl:
		d.printf("cancelled report")
	case KeywordCor:
		if g.CorrectionNumber > 0 {
			d.printf("correction number %d", g.CorrectionNumber)
		} else {
			d.printf("corrected report")
		}
	case KeywordAuto:
		d.printf("fully automated observation")
	case KeywordCavok:
		d.printf("ceiling and visibility OK")
	case KeywordRmk:
		d.printf("remarks follow")
	case KeywordMaintenanceIndicator:
		d.printf("station requires maintenance")
	case KeywordAO1:
		d.printf("automated station without precipitation discriminator")
	case KeywordAO2:
		d.printf("automated station with precipitation discriminator")
	case KeywordAO1A:
		d.printf("automated station without precipitation discriminator, augmented by observer")
	case KeywordAO2A:
		d.printf("automated station with precipitation discriminator, augmented by observer")
	case KeywordNospeci:
		d.printf("no SPECI reports are issued by this station")
	case KeywordRvrno:
		d.printf("runway visual range should be reported but is missing")
	case KeywordPwino:
		d.printf("present weather identifier not available")
	case KeywordPno:
		d.printf("precipitation amount not available")
	case KeywordFzrano:
		d.printf("freezing rain sensor not available")
	case KeywordTsno:
		d.printf("lightning detection not available")
	case KeywordSlpno:
		d.printf("sea level pressure not available")
	case KeywordFroin:
		d.printf("frost on the indicator")
	default:
		d.printf("keyword %s", g.Type)
	}
}

func (d *describer) Location(_ GroupInfo, g LocationGroup) {
	d.printf("location %s", g.ICAO)
}

func (d *describer) ReportTime(_ GroupInfo, g ReportTimeGroup) {
	d.printf("issued %s UTC", g.Time)
}

func (d *describer) Trend(_ GroupInfo, g TrendGroup) {
	var parts []string
	if g.Probability != ProbabilityNone {
		parts = append(parts, fmt.Sprintf("probability %d%%", g.Probability))
	}
	switch g.Type {
	case TrendNosig:
		parts = append(parts, "no significant changes expected")
	case TrendBecmg:
		parts = append(parts, "weather becoming")
	case TrendTempo:
		parts = append(parts, "temporary weather")
	case TrendInter:
		parts = append(parts, "intermittent weather")
	case TrendTimeSpan:
		if g.Probability == ProbabilityNone {
			parts = append(parts, "valid")
		}
	}
	if g.Type == TrendTimeSpan || g.From != nil && g.Until != nil {
		parts = append(parts, fmt.Sprintf("from %s until %s", g.From, g.Until))
	} else {
		if g.From != nil {
			parts = append(parts, fmt.Sprintf("from %s", g.From))
		}
		if g.Until != nil {
			parts = append(parts, fmt.Sprintf("until %s", g.Until))
		}
	}
	if g.At != nil {
		parts = append(parts, fmt.Sprintf("at %s", g.At))
	}
	d.printf("%s", strings.Join(parts, " "))
}

func (d *describer) Wind(_ GroupInfo, g WindGroup) {
	switch g.Type {
	case WindVariableSector:
		d.printf("wind direction varying from %s to %s", g.SectorBegin, g.SectorEnd)
	case WindShearLowerLayers:
		if g.Runway != nil {
			d.printf("wind shear in the lower layers at %s", g.Runway)
		} else {
			d.printf("wind shear in the lower layers at all runways")
		}
	case WindShift, WindShiftFropa:
		d.printf("wind shift at %s", g.EventTime)
		if g.Type == WindShiftFropa {
			d.printf(" (frontal passage)")
		}
	case WindPeak:
		d.printf("peak wind %s at %s at %s", g.Direction, g.Speed, g.EventTime)
	case WindShear:
		d.printf("wind shear at %s: wind %s at %s", g.ShearHeight, g.Direction, g.Speed)
	default:
		if g.IsCalm() {
			d.printf("calm")
			return
		}
		d.printf("wind %s at %s", g.Direction, g.Speed)
		if g.Gust != nil {
			d.printf(", gusts %s", g.Gust)
		}
		if g.Type == WindSurfaceWithVariableSector {
			d.printf(", varying from %s to %s", g.SectorBegin, g.SectorEnd)
		}
	}
}

func (d *describer) Visibility(_ GroupInfo, g VisibilityGroup) {
	switch g.Type {
	case VisibilityRunwayVisualRange:
		d.printf("runway visual range %s: %s", g.Runway, g.Visibility)
		if g.MaxVisibility != nil {
			d.printf(" varying to %s", g.MaxVisibility)
		}
		if g.Trend != RvrTrendNone {
			d.printf(", %s", g.Trend)
		}
		return
	case VisibilityDirectional, VisibilitySector:
		d.printf("visibility towards %s %s", g.Direction, g.Visibility)
	default:
		d.printf("%s visibility %s", g.Type, g.Visibility)
	}
	if g.MaxVisibility != nil {
		d.printf(" varying to %s", g.MaxVisibility)
	}
}

func (d *describer) Cloud(_ GroupInfo, g CloudGroup) {
	switch g.Type {
	case CloudNoClouds:
		d.printf("%s", g.Amount)
	case CloudVerticalVisibility:
		d.printf("sky obscured, vertical visibility %s", g.Height)
	case CloudCeiling:
		d.printf("ceiling %s", g.Height)
		if g.MaxHeight != nil {
			d.printf(" varying to %s", g.MaxHeight)
		}
	case CloudVariableCover:
		d.printf("cloud cover varying between %s and %s", g.Amount, describeAmount(g.VariableAmount))
		if g.Height.IsReported() {
			d.printf(" at %s", g.Height)
		}
	default:
		d.printf("%s clouds at %s", g.Amount, g.Height)
		if g.Convective != ConvectiveNone {
			d.printf(", %s", g.Convective)
		}
	}
}

func describeAmount(a *CloudAmount) string {
	if a == nil {
		return AmountNotReported.String()
	}
	return a.String()
}

func (d *describer) Weather(_ GroupInfo, g WeatherGroup) {
	if g.Type == WeatherNSW {
		d.printf("%s", g.Type)
		return
	}
	phenomena := make([]string, len(g.Phenomena))
	for i, p := range g.Phenomena {
		phenomena[i] = p.String()
	}
	d.printf("%s: %s", g.Type, strings.Join(phenomena, ", "))
}

func (d *describer) Temperature(_ GroupInfo, g TemperatureGroup) {
	d.printf("temperature %s, dew point %s", g.Air, g.DewPoint)
	if rh, ok := g.RelativeHumidity(); ok {
		d.printf(", relative humidity %.0f%%", rh)
	}
}

func (d *describer) Pressure(_ GroupInfo, g PressureGroup) {
	d.printf("%s %s", g.Type, g.Pressure)
	if g.Secondary != nil {
		d.printf(" (%s)", g.Secondary)
	}
}

func (d *describer) RunwayState(_ GroupInfo, g RunwayStateGroup) {
	switch g.Type {
	case RunwayStateAerodromeSnowClosed:
		d.printf("%s", g.Type)
	case RunwayStateSnowClosed:
		d.printf("%s %s", g.Runway, g.Type)
	case RunwayStateCleared:
		d.printf("%s: %s, %s", g.Runway, g.Type, g.Friction)
	default:
		depth := g.Depth.String()
		if g.NotOperational {
			depth = "runway not operational"
		}
		d.printf("%s: %s, %s, depth %s, %s", g.Runway, g.Deposits, g.Extent, depth, g.Friction)
	}
}

func (d *describer) SeaSurface(_ GroupInfo, g SeaSurfaceGroup) {
	d.printf("sea surface temperature %s, %s", g.Temperature, g.Waves)
}

func (d *describer) MinMaxTemperature(_ GroupInfo, g MinMaxTemperatureGroup) {
	var parts []string
	if g.Max != nil {
		parts = append(parts, "maximum "+describeTemperatureAt(*g.Max, g.MaxTime))
	}
	if g.Min != nil {
		parts = append(parts, "minimum "+describeTemperatureAt(*g.Min, g.MinTime))
	}
	d.printf("%s %s", g.Type, strings.Join(parts, ", "))
}

func describeTemperatureAt(t value.Temperature, at *value.Time) string {
	if at == nil {
		return t.String()
	}
	return fmt.Sprintf("%s at %s", t, at)
}

func (d *describer) Precipitation(_ GroupInfo, g PrecipitationGroup) {
	d.printf("%s %s", g.Type, g.Amount)
	if g.Total != nil {
		d.printf(", %s on ground", g.Total)
	}
}

func (d *describer) LayerForecast(_ GroupInfo, g LayerForecastGroup) {
	d.printf("%s from %s to %s", g.Phenomenon, g.Base, g.Top)
}

func (d *describer) PressureTendency(_ GroupInfo, g PressureTendencyGroup) {
	d.printf("pressure tendency: %s", g.Type)
	if g.Change.IsReported() {
		d.printf(", change %s", g.Change)
	}
}

func (d *describer) CloudTypes(_ GroupInfo, g CloudTypesGroup) {
	types := make([]string, len(g.Types))
	for i, t := range g.Types {
		types[i] = t.String()
	}
	d.printf("cloud layers: %s", strings.Join(types, ", "))
}

func (d *describer) LowMidHighCloud(_ GroupInfo, g LowMidHighCloudGroup) {
	d.printf("low: %s; middle: %s; high: %s", g.LowDescription(), g.MiddleDescription(), g.HighDescription())
}

func (d *describer) Lightning(_ GroupInfo, g LightningGroup) {
	var parts []string
	if g.Frequency != FrequencyNone {
		parts = append(parts, g.Frequency.String())
	}
	parts = append(parts, "lightning")
	if len(g.Types) > 0 {
		types := make([]string, len(g.Types))
		for i, t := range g.Types {
			types[i] = t.String()
		}
		parts = append(parts, "("+strings.Join(types, ", ")+")")
	}
	d.printf("%s%s", strings.Join(parts, " "), describeLocation(g.locationTokens))
}

func (d *describer) Vicinity(_ GroupInfo, g VicinityGroup) {
	d.printf("%s%s", g.Phenomenon, describeLocation(g.locationTokens))
	if g.Moving != nil {
		d.printf(", moving %s", g.Moving)
	}
}

func describeLocation(l locationTokens) string {
	var parts []string
	if l.Distant {
		parts = append(parts, "distant")
	}
	if l.Vicinity {
		parts = append(parts, "in vicinity")
	}
	for _, s := range l.Sectors {
		parts = append(parts, s.String())
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

func (d *describer) Misc(_ GroupInfo, g MiscGroup) {
	switch g.Type {
	case MiscSunshineDuration:
		d.printf("sunshine duration %.0f minutes", g.Value)
	case MiscColourCode:
		d.printf("colour code %s", g.Colour)
		if g.Black {
			d.printf(", aerodrome closed")
		}
	case MiscHailstoneSize:
		d.printf("largest hailstone %g in", g.Value)
	case MiscDensityAltitude:
		d.printf("density altitude %.0f ft", g.Value)
	default:
		d.printf("%s %s", g.Type, g.Text)
	}
}

func (d *describer) Unknown(_ GroupInfo, g UnknownGroup) {
	d.printf("not recognized: %s", g.Text)
}
