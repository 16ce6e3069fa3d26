package report

import (
	"math"
	"regexp"

	"github.com/gometar/gometar/value"
)

// TemperatureGroup is air temperature and dew point, either whole degrees
// from the report body ("18/12") or tenths from the remark "T01830156".
type TemperatureGroup struct {
	Air      value.Temperature
	DewPoint value.Temperature
}

func (TemperatureGroup) isGroup()   {}
func (TemperatureGroup) Kind() Kind { return KindTemperature }

func (g TemperatureGroup) Append(string, ReportPart, *ReportMetadata) (Group, AppendResult) {
	return g, NotAppended
}

// RelativeHumidity returns the relative humidity in percent computed from
// air temperature and dew point.
func (g TemperatureGroup) RelativeHumidity() (float64, bool) {
	t, ok1 := g.Air.Celsius()
	d, ok2 := g.DewPoint.Celsius()
	if !ok1 || !ok2 {
		return 0, false
	}
	rh := 100 * saturationVapourPressure(d) / saturationVapourPressure(t)
	return math.Min(100, math.Round(rh*10)/10), true
}

func saturationVapourPressure(c float64) float64 {
	return 6.112 * math.Exp(17.67*c/(c+243.5))
}

var (
	temperatureRe       = regexp.MustCompile(`^(M?\d{2}|//)/(M?\d{2}|//)?$`)
	remarkTemperatureRe = regexp.MustCompile(`^T([01]\d{3})([01]\d{3})?$`)
)

func parseTemperatureGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	switch part {
	case PartMetar:
		m := match(temperatureRe, token)
		if m == nil {
			return nil, false
		}
		air, ok := value.TemperatureFromString(m[1])
		if !ok {
			return nil, false
		}
		var dew value.Temperature
		if m[2] != "" {
			if dew, ok = value.TemperatureFromString(m[2]); !ok {
				return nil, false
			}
		}
		return TemperatureGroup{Air: air, DewPoint: dew}, true
	case PartRemark:
		m := match(remarkTemperatureRe, token)
		if m == nil {
			return nil, false
		}
		air, ok := value.TemperatureFromRemarkString(m[1])
		if !ok {
			return nil, false
		}
		var dew value.Temperature
		if m[2] != "" {
			if dew, ok = value.TemperatureFromRemarkString(m[2]); !ok {
				return nil, false
			}
		}
		return TemperatureGroup{Air: air, DewPoint: dew}, true
	}
	return nil, false
}
