package report

import (
	"fmt"
	"regexp"

	"github.com/gometar/gometar/value"
)

// PrecipitationType is the kind of remark precipitation group.
type PrecipitationType int

const (
	PrecipitationHourly PrecipitationType = iota
	Precipitation3Or6Hourly
	Precipitation3Hourly
	Precipitation6Hourly
	Precipitation24Hourly
	PrecipitationSnowDepth
	PrecipitationSnowfall6Hourly
	PrecipitationWaterEquivalentOfSnow
	PrecipitationIceAccretion1Hour
	PrecipitationIceAccretion3Hours
	PrecipitationIceAccretion6Hours
	PrecipitationSnowIncreasing
)

var precipitationTypeNames = [...]string{
	"hourly precipitation", "3- or 6-hourly precipitation", "3-hourly precipitation",
	"6-hourly precipitation", "24-hour precipitation", "snow depth",
	"6-hourly snowfall", "water equivalent of snow", "ice accretion (1 hour)",
	"ice accretion (3 hours)", "ice accretion (6 hours)", "snow increasing rapidly",
}

func (t PrecipitationType) String() string {
	if t < 0 || int(t) >= len(precipitationTypeNames) {
		return fmt.Sprintf("PrecipitationType(%d)", t)
	}
	return precipitationTypeNames[t]
}

// PrecipitationGroup is a remark precipitation, snow or ice accretion
// amount. SNINCR is a two-token group: "SNINCR 2/10".
type PrecipitationGroup struct {
	Type   PrecipitationType
	Amount value.Precipitation
	// Total is the snow on the ground of SNINCR.
	Total *value.Precipitation

	expectIncrease bool
}

func (PrecipitationGroup) isGroup()   {}
func (PrecipitationGroup) Kind() Kind { return KindPrecipitation }

var (
	hourlyPrecipRe = regexp.MustCompile(`^P(\d{4}|////)$`)
	periodPrecipRe = regexp.MustCompile(`^([67])(\d{4}|////)$`)
	snowDepthRe    = regexp.MustCompile(`^4/(\d{3})$`)
	snowfallRe     = regexp.MustCompile(`^93([13])(\d{3}|///)$`)
	iceAccretionRe = regexp.MustCompile(`^I([136])(\d{3}|///)$`)
	snincrRe       = regexp.MustCompile(`^(\d{1,2})/(\d{1,3})$`)
)

func parsePrecipitationGroup(token string, part ReportPart, md *ReportMetadata) (Group, bool) {
	if part != PartRemark {
		return nil, false
	}
	if token == "SNINCR" {
		return PrecipitationGroup{Type: PrecipitationSnowIncreasing, expectIncrease: true}, true
	}
	if m := match(hourlyPrecipRe, token); m != nil {
		return precipitationOf(PrecipitationHourly, m[1], 0.01)
	}
	if m := match(periodPrecipRe, token); m != nil {
		if m[1] == "7" {
			return precipitationOf(Precipitation24Hourly, m[2], 0.01)
		}
		return precipitationOf(periodForReportTime(md.ReportTime), m[2], 0.01)
	}
	if m := match(snowDepthRe, token); m != nil {
		return precipitationOf(PrecipitationSnowDepth, m[1], 1)
	}
	if m := match(snowfallRe, token); m != nil {
		if m[1] == "1" {
			return precipitationOf(PrecipitationSnowfall6Hourly, m[2], 0.1)
		}
		return precipitationOf(PrecipitationWaterEquivalentOfSnow, m[2], 0.1)
	}
	if m := match(iceAccretionRe, token); m != nil {
		typ := PrecipitationIceAccretion1Hour
		switch m[1] {
		case "3":
			typ = PrecipitationIceAccretion3Hours
		case "6":
			typ = PrecipitationIceAccretion6Hours
		}
		return precipitationOf(typ, m[2], 0.01)
	}
	return nil, false
}

func precipitationOf(typ PrecipitationType, digits string, factor float64) (Group, bool) {
	p, ok := value.PrecipitationFromRemarkString(digits, factor)
	if !ok {
		return nil, false
	}
	return PrecipitationGroup{Type: typ, Amount: p}, true
}

// periodForReportTime decides whether a "6xxxx" group covers 3 or 6 hours.
// Reports issued within the hour before 00, 06, 12 or 18 UTC carry the
// 6-hour amount; those before 03, 09, 15 or 21 UTC the 3-hour amount.
func periodForReportTime(t *value.Time) PrecipitationType {
	if t == nil {
		return Precipitation3Or6Hourly
	}
	hour := t.Hour
	if t.Minute > 0 {
		hour = (hour + 1) % 24
	}
	switch {
	case hour%6 == 0:
		return Precipitation6Hourly
	case hour%3 == 0:
		return Precipitation3Hourly
	}
	return Precipitation3Or6Hourly
}

func (g PrecipitationGroup) Append(token string, _ ReportPart, _ *ReportMetadata) (Group, AppendResult) {
	if !g.expectIncrease {
		return g, NotAppended
	}
	m := match(snincrRe, token)
	if m == nil {
		return g, GroupInvalidated
	}
	inc, ok1 := value.PrecipitationFromRemarkString(m[1], 1)
	total, ok2 := value.PrecipitationFromRemarkString(m[2], 1)
	if !ok1 || !ok2 {
		return g, GroupInvalidated
	}
	g.Amount, g.Total, g.expectIncrease = inc, &total, false
	return g, Appended
}
