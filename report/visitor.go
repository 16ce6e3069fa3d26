package report

// Visitor has one method per group kind. Visit calls the method that
// matches the concrete group of a GroupInfo.
type Visitor interface {
	Keyword(gi GroupInfo, g KeywordGroup)
	Location(gi GroupInfo, g LocationGroup)
	ReportTime(gi GroupInfo, g ReportTimeGroup)
	Trend(gi GroupInfo, g TrendGroup)
	Wind(gi GroupInfo, g WindGroup)
	Visibility(gi GroupInfo, g VisibilityGroup)
	Cloud(gi GroupInfo, g CloudGroup)
	Weather(gi GroupInfo, g WeatherGroup)
	Temperature(gi GroupInfo, g TemperatureGroup)
	Pressure(gi GroupInfo, g PressureGroup)
	RunwayState(gi GroupInfo, g RunwayStateGroup)
	SeaSurface(gi GroupInfo, g SeaSurfaceGroup)
	MinMaxTemperature(gi GroupInfo, g MinMaxTemperatureGroup)
	Precipitation(gi GroupInfo, g PrecipitationGroup)
	LayerForecast(gi GroupInfo, g LayerForecastGroup)
	PressureTendency(gi GroupInfo, g PressureTendencyGroup)
	CloudTypes(gi GroupInfo, g CloudTypesGroup)
	LowMidHighCloud(gi GroupInfo, g LowMidHighCloudGroup)
	Lightning(gi GroupInfo, g LightningGroup)
	Vicinity(gi GroupInfo, g VicinityGroup)
	Misc(gi GroupInfo, g MiscGroup)
	Unknown(gi GroupInfo, g UnknownGroup)
}

// BaseVisitor implements every Visitor method as a no-op. Embed it to
// handle only some kinds.
type BaseVisitor struct{}

func (BaseVisitor) Keyword(GroupInfo, KeywordGroup)                     {}
func (BaseVisitor) Location(GroupInfo, LocationGroup)                   {}
func (BaseVisitor) ReportTime(GroupInfo, ReportTimeGroup)               {}
func (BaseVisitor) Trend(GroupInfo, TrendGroup)                         {}
func (BaseVisitor) Wind(GroupInfo, WindGroup)                           {}
func (BaseVisitor) Visibility(GroupInfo, VisibilityGroup)               {}
func (BaseVisitor) Cloud(GroupInfo, CloudGroup)                         {}
func (BaseVisitor) Weather(GroupInfo, WeatherGroup)                     {}
func (BaseVisitor) Temperature(GroupInfo, TemperatureGroup)             {}
func (BaseVisitor) Pressure(GroupInfo, PressureGroup)                   {}
func (BaseVisitor) RunwayState(GroupInfo, RunwayStateGroup)             {}
func (BaseVisitor) SeaSurface(GroupInfo, SeaSurfaceGroup)               {}
func (BaseVisitor) MinMaxTemperature(GroupInfo, MinMaxTemperatureGroup) {}
func (BaseVisitor) Precipitation(GroupInfo, PrecipitationGroup)         {}
func (BaseVisitor) LayerForecast(GroupInfo, LayerForecastGroup)         {}
func (BaseVisitor) PressureTendency(GroupInfo, PressureTendencyGroup)   {}
func (BaseVisitor) CloudTypes(GroupInfo, CloudTypesGroup)               {}
func (BaseVisitor) LowMidHighCloud(GroupInfo, LowMidHighCloudGroup)     {}
func (BaseVisitor) Lightning(GroupInfo, LightningGroup)                 {}
func (BaseVisitor) Vicinity(GroupInfo, VicinityGroup)                   {}
func (BaseVisitor) Misc(GroupInfo, MiscGroup)                           {}
func (BaseVisitor) Unknown(GroupInfo, UnknownGroup)                     {}

// Visit dispatches gi to the matching Visitor method. A GroupInfo with a
// nil group is visited as an empty unknown group.
func Visit(v Visitor, gi GroupInfo) {
	switch g := gi.Group.(type) {
	case KeywordGroup:
		v.Keyword(gi, g)
	case LocationGroup:
		v.Location(gi, g)
	case ReportTimeGroup:
		v.ReportTime(gi, g)
	case TrendGroup:
		v.Trend(gi, g)
	case WindGroup:
		v.Wind(gi, g)
	case VisibilityGroup:
		v.Visibility(gi, g)
	case CloudGroup:
		v.Cloud(gi, g)
	case WeatherGroup:
		v.Weather(gi, g)
	case TemperatureGroup:
		v.Temperature(gi, g)
	case PressureGroup:
		v.Pressure(gi, g)
	case RunwayStateGroup:
		v.RunwayState(gi, g)
	case SeaSurfaceGroup:
		v.SeaSurface(gi, g)
	case MinMaxTemperatureGroup:
		v.MinMaxTemperature(gi, g)
	case PrecipitationGroup:
		v.Precipitation(gi, g)
	case LayerForecastGroup:
		v.LayerForecast(gi, g)
	case PressureTendencyGroup:
		v.PressureTendency(gi, g)
	case CloudTypesGroup:
		v.CloudTypes(gi, g)
	case LowMidHighCloudGroup:
		v.LowMidHighCloud(gi, g)
	case LightningGroup:
		v.Lightning(gi, g)
	case VicinityGroup:
		v.Vicinity(gi, g)
	case MiscGroup:
		v.Misc(gi, g)
	case UnknownGroup:
		v.Unknown(gi, g)
	default:
		v.Unknown(gi, UnknownGroup{Text: gi.Raw})
	}
}

// VisitAll visits every group of r in order.
func VisitAll(v Visitor, r Result) {
	for _, gi := range r.Groups {
		Visit(v, gi)
	}
}
