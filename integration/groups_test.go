package integration

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gometar/gometar"
	"github.com/gometar/gometar/report"
)

func kinds(r gometar.Result) []gometar.Kind {
	out := make([]gometar.Kind, len(r.Groups))
	for i, gi := range r.Groups {
		out[i] = gi.Kind()
	}
	return out
}

func raws(r gometar.Result) []string {
	out := make([]string, len(r.Groups))
	for i, gi := range r.Groups {
		out[i] = gi.Raw
	}
	return out
}

func TestMetarGroupKinds(t *testing.T) {
	r := gometar.Parse("METAR EGLL 121050Z 27005KT 9999 BKN020 18/12 Q1013")

	require.True(t, r.OK())
	assert.Equal(t, []gometar.Kind{
		gometar.KindKeyword, gometar.KindLocation, gometar.KindReportTime, gometar.KindWind,
		gometar.KindVisibility, gometar.KindCloud, gometar.KindTemperature, gometar.KindPressure,
	}, kinds(r))
	assert.Equal(t, []gometar.ReportPart{
		gometar.PartHeader, gometar.PartHeader, gometar.PartHeader, gometar.PartMetar,
		gometar.PartMetar, gometar.PartMetar, gometar.PartMetar, gometar.PartMetar,
	}, []gometar.ReportPart{
		r.Groups[0].Part, r.Groups[1].Part, r.Groups[2].Part, r.Groups[3].Part,
		r.Groups[4].Part, r.Groups[5].Part, r.Groups[6].Part, r.Groups[7].Part,
	})
}

func TestRemarkContinuation(t *testing.T) {
	r := gometar.Parse("METAR KJFK 121051Z 27015G25KT 10SM CLR 18/12 A2992 RMK AO2 PK WND 24029/1246")

	require.True(t, r.OK())
	last := r.Groups[len(r.Groups)-1]
	assert.Equal(t, "PK WND 24029/1246", last.Raw)
	assert.Equal(t, gometar.PartRemark, last.Part)

	wind, ok := last.Group.(report.WindGroup)
	require.True(t, ok, "peak wind group")
	assert.Equal(t, report.WindPeak, wind.Type)
	assert.Contains(t, gometar.Describe(last), "peak wind")
}

func TestIncompleteGroupFallsBack(t *testing.T) {
	r := gometar.Parse("TAF EGLL 121100Z 1212/1318 28010KT BECMG")

	require.True(t, r.OK())
	last := r.Groups[len(r.Groups)-1]
	assert.Equal(t, gometar.KindUnknown, last.Kind())
	assert.Equal(t, "BECMG", last.Raw)
}

func TestUnknownGroupsMerge(t *testing.T) {
	r := gometar.Parse("METAR EGLL 121050Z 27005KT XXX YYY 9999 ZZZ RMK PK QQQ")

	assert.Equal(t, []string{
		"METAR", "EGLL", "121050Z", "27005KT", "XXX YYY", "9999", "ZZZ", "RMK", "PK QQQ",
	}, raws(r))
	assert.Equal(t, "not recognized: XXX YYY", gometar.Describe(r.Groups[4]))
}

type kindCounter struct {
	gometar.BaseVisitor
	winds, clouds, unknown int
}

func (c *kindCounter) Wind(gometar.GroupInfo, report.WindGroup)       { c.winds++ }
func (c *kindCounter) Cloud(gometar.GroupInfo, report.CloudGroup)     { c.clouds++ }
func (c *kindCounter) Unknown(gometar.GroupInfo, report.UnknownGroup) { c.unknown++ }

func TestVisitor(t *testing.T) {
	r := gometar.Parse("METAR EGLL 121050Z 27005KT XXX 9999 BKN020 18/12 Q1013")

	c := &kindCounter{}
	gometar.VisitAll(c, r)

	assert.Equal(t, 1, c.winds)
	assert.Equal(t, 1, c.clouds)
	assert.Equal(t, 1, c.unknown)
}

func TestTraceLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: gometar.LevelTrace}))

	r := gometar.Parse("METAR EGLL 121050Z 27005KT", gometar.WithLogger(logger))

	require.True(t, r.OK())
	out := buf.String()
	assert.Contains(t, out, "component=parser")
	assert.Contains(t, out, "token=EGLL")
	assert.Contains(t, out, `msg="report decoded"`)
}

func TestNoLoggerIsSilent(t *testing.T) {
	r := gometar.Parse("METAR EGLL 121050Z 27005KT", gometar.WithLogger(nil))
	assert.True(t, r.OK())
}
