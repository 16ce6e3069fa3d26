package report

import (
	"regexp"

	"github.com/gometar/gometar/value"
)

// SeaSurfaceGroup is sea surface temperature with sea state or wave height
// ("W15/S4", "W15/H12").
type SeaSurfaceGroup struct {
	Temperature value.Temperature
	Waves       value.WaveHeight
}

func (SeaSurfaceGroup) isGroup()   {}
func (SeaSurfaceGroup) Kind() Kind { return KindSeaSurface }

func (g SeaSurfaceGroup) Append(string, ReportPart, *ReportMetadata) (Group, AppendResult) {
	return g, NotAppended
}

var seaSurfaceRe = regexp.MustCompile(`^W(M?\d{2}|//)/([SH][0-9/]{1,3})$`)

func parseSeaSurfaceGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	if part != PartMetar {
		return nil, false
	}
	m := match(seaSurfaceRe, token)
	if m == nil {
		return nil, false
	}
	t, ok := value.TemperatureFromString(m[1])
	if !ok {
		return nil, false
	}
	w, ok := value.WaveHeightFromString(m[2])
	if !ok {
		return nil, false
	}
	return SeaSurfaceGroup{Temperature: t, Waves: w}, true
}
