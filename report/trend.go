package report

import (
	"fmt"
	"regexp"

	"github.com/gometar/gometar/value"
)

// TrendType is the kind of trend or forecast change group.
type TrendType int

const (
	TrendNone TrendType = iota // probability only, not yet completed
	TrendNosig
	TrendBecmg
	TrendTempo
	TrendInter
	TrendFrom
	TrendUntil
	TrendAt
	TrendTimeSpan
)

var trendTypeNames = [...]string{
	"none", "NOSIG", "BECMG", "TEMPO", "INTER", "FM", "TL", "AT", "time span",
}

func (t TrendType) String() string {
	if t < 0 || int(t) >= len(trendTypeNames) {
		return fmt.Sprintf("TrendType(%d)", t)
	}
	return trendTypeNames[t]
}

// Probability is the PROB30/PROB40 prefix.
type Probability int

const (
	ProbabilityNone Probability = 0
	Probability30   Probability = 30
	Probability40   Probability = 40
)

type trendNext int

const (
	trendComplete      trendNext = iota
	trendExpectProbEnd           // PROBxx: TEMPO, INTER or a time span must follow
	trendExpectSpan              // TAF BECMG/TEMPO/INTER: a time span must follow
	trendMetarTimes              // METAR trend: FM/TL/AT may follow
)

// TrendGroup is a trend (METAR) or change group (TAF), possibly assembled
// from several tokens ("PROB30 TEMPO 1212/1214", "BECMG FM1100 TL1200").
type TrendGroup struct {
	Type        TrendType
	Probability Probability
	From        *value.Time
	Until       *value.Time
	At          *value.Time

	next trendNext
}

func (TrendGroup) isGroup()   {}
func (TrendGroup) Kind() Kind { return KindTrend }

// IsTimeSpanGroup reports a bare "DDHH/DDHH" time span, as used for the
// TAF validity period.
func (g TrendGroup) IsTimeSpanGroup() bool {
	return g.Type == TrendTimeSpan && g.Probability == ProbabilityNone &&
		g.From != nil && g.Until != nil
}

var (
	timeSpanRe    = regexp.MustCompile(`^(\d{4})/(\d{4})$`)
	tafFromRe     = regexp.MustCompile(`^FM(\d{6})$`)
	metarTimeRe   = regexp.MustCompile(`^(FM|TL|AT)(\d{4})$`)
	probabilityRe = regexp.MustCompile(`^PROB([34]0)$`)
)

func parseTimeSpan(token string) (from, until value.Time, ok bool) {
	m := match(timeSpanRe, token)
	if m == nil {
		return value.Time{}, value.Time{}, false
	}
	from, ok1 := value.TimeFromDDHH(m[1])
	until, ok2 := value.TimeFromDDHH(m[2])
	if !ok1 || !ok2 || !from.IsValid() || !until.IsValid() || !from.HasDay() || !until.HasDay() {
		return value.Time{}, value.Time{}, false
	}
	return from, until, true
}

func parseTrendGroup(token string, part ReportPart, _ *ReportMetadata) (Group, bool) {
	switch part {
	case PartHeader:
		if from, until, ok := parseTimeSpan(token); ok {
			return TrendGroup{Type: TrendTimeSpan, From: &from, Until: &until}, true
		}
	case PartMetar:
		switch token {
		case "NOSIG":
			return TrendGroup{Type: TrendNosig}, true
		case "BECMG":
			return TrendGroup{Type: TrendBecmg, next: trendMetarTimes}, true
		case "TEMPO":
			return TrendGroup{Type: TrendTempo, next: trendMetarTimes}, true
		}
		if m := match(metarTimeRe, token); m != nil {
			t, ok := value.TimeFromHHMM(m[2])
			if !ok || !t.IsValid() {
				return nil, false
			}
			g := TrendGroup{next: trendMetarTimes}
			switch m[1] {
			case "FM":
				g.Type, g.From = TrendFrom, &t
			case "TL":
				g.Type, g.Until = TrendUntil, &t
			case "AT":
				g.Type, g.At = TrendAt, &t
			}
			return g, true
		}
	case PartTaf:
		switch token {
		case "BECMG":
			return TrendGroup{Type: TrendBecmg, next: trendExpectSpan}, true
		case "TEMPO":
			return TrendGroup{Type: TrendTempo, next: trendExpectSpan}, true
		case "INTER":
			return TrendGroup{Type: TrendInter, next: trendExpectSpan}, true
		}
		if m := match(probabilityRe, token); m != nil {
			p := Probability30
			if m[1] == "40" {
				p = Probability40
			}
			return TrendGroup{Type: TrendNone, Probability: p, next: trendExpectProbEnd}, true
		}
		if m := match(tafFromRe, token); m != nil {
			t, ok := value.TimeFromDDHHMM(m[1])
			if !ok || !t.IsValid() {
				return nil, false
			}
			return TrendGroup{Type: TrendFrom, From: &t}, true
		}
		if from, until, ok := parseTimeSpan(token); ok {
			return TrendGroup{Type: TrendTimeSpan, From: &from, Until: &until}, true
		}
	}
	return nil, false
}

func (g TrendGroup) Append(token string, _ ReportPart, _ *ReportMetadata) (Group, AppendResult) {
	switch g.next {
	case trendExpectProbEnd:
		switch token {
		case "TEMPO":
			g.Type, g.next = TrendTempo, trendExpectSpan
			return g, Appended
		case "INTER":
			g.Type, g.next = TrendInter, trendExpectSpan
			return g, Appended
		}
		if from, until, ok := parseTimeSpan(token); ok {
			g.Type, g.From, g.Until, g.next = TrendTimeSpan, &from, &until, trendComplete
			return g, Appended
		}
		return g, GroupInvalidated
	case trendExpectSpan:
		if from, until, ok := parseTimeSpan(token); ok {
			g.From, g.Until, g.next = &from, &until, trendComplete
			return g, Appended
		}
		return g, GroupInvalidated
	case trendMetarTimes:
		return g.appendMetarTime(token)
	}
	return g, NotAppended
}

func (g TrendGroup) appendMetarTime(token string) (Group, AppendResult) {
	m := match(metarTimeRe, token)
	if m == nil {
		return g, NotAppended
	}
	t, ok := value.TimeFromHHMM(m[2])
	if !ok || !t.IsValid() {
		return g, NotAppended
	}
	switch m[1] {
	case "FM":
		if g.From != nil || g.Until != nil || g.At != nil {
			return g, NotAppended
		}
		g.From = &t
	case "TL":
		if g.Until != nil || g.At != nil {
			return g, NotAppended
		}
		g.Until = &t
	case "AT":
		if g.From != nil || g.Until != nil || g.At != nil {
			return g, NotAppended
		}
		g.At = &t
	}
	return g, Appended
}
