package report

import (
	"regexp"

	"github.com/gometar/gometar/value"
)

// LocationGroup is the ICAO location indicator.
type LocationGroup struct {
	ICAO string
}

func (LocationGroup) isGroup()   {}
func (LocationGroup) Kind() Kind { return KindLocation }

func (g LocationGroup) Append(string, ReportPart, *ReportMetadata) (Group, AppendResult) {
	return g, NotAppended
}

var locationRe = regexp.MustCompile(`^[A-Z][A-Z0-9]{3}$`)

func parseLocationGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	if part != PartHeader || !locationRe.MatchString(token) {
		return nil, false
	}
	return LocationGroup{ICAO: token}, true
}

// ReportTimeGroup is the issue or observation time, "DDHHMMZ".
type ReportTimeGroup struct {
	Time value.Time
}

func (ReportTimeGroup) isGroup()   {}
func (ReportTimeGroup) Kind() Kind { return KindReportTime }

func (g ReportTimeGroup) Append(string, ReportPart, *ReportMetadata) (Group, AppendResult) {
	return g, NotAppended
}

func parseReportTimeGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	if part != PartHeader || len(token) != 7 || token[6] != 'Z' {
		return nil, false
	}
	t, ok := value.TimeFromDDHHMM(token[:6])
	if !ok || !t.HasDay() || !t.IsValid() || t.Hour > 23 {
		return nil, false
	}
	return ReportTimeGroup{Time: t}, true
}
