package gometar

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gometar/gometar/internal/testutil"
)

func TestParse(t *testing.T) {
	r := Parse("METAR EGLL 121050Z 27005KT 9999 BKN020 18/12 Q1013=")
	testutil.True(t, r.OK(), "report decodes without error")
	testutil.Equal(t, TypeMetar, r.Metadata.Type, "type")
	testutil.Len(t, r.Groups, 8, "groups")
}

func TestParseWithGroupLimit(t *testing.T) {
	text := "METAR EGLL 121050Z 27005KT 9999 BKN020 18/12 Q1013"

	r := Parse(text, WithGroupLimit(4))
	testutil.Equal(t, ErrorReportTooLarge, r.Metadata.Error, "error")
	testutil.Len(t, r.Groups, 4, "groups before the limit")

	r = Parse(text, WithGroupLimit(0))
	testutil.Equal(t, ErrorNone, r.Metadata.Error, "zero selects the default")
}

func TestParseWithEndMarker(t *testing.T) {
	r := Parse("METAR EGLL 121050Z 27005KT 9999;BKN020", WithEndMarker(';'))
	testutil.Equal(t, "9999", r.Groups[len(r.Groups)-1].Raw, "text after marker ignored")

	r = Parse("METAR EGLL 121050Z 27005KT 9999=BKN020", WithEndMarker(';'))
	testutil.Equal(t, "9999=BKN020", r.Groups[len(r.Groups)-1].Raw, "default marker disabled")
}

func TestParseWithDelimiters(t *testing.T) {
	r := Parse("METAR,EGLL,121050Z,27005KT", WithDelimiters(","))
	testutil.True(t, r.OK(), "report decodes without error")
	testutil.Equal(t, "EGLL", r.Metadata.Location, "location")
}

func TestParseWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	Parse("METAR EGLL 121050Z 27005KT", WithLogger(logger))
	testutil.Contains(t, buf.String(), "component=parser", "parser component")
	testutil.Contains(t, buf.String(), "token=27005KT", "per-token trace")
}

func TestDescribe(t *testing.T) {
	r := Parse("METAR EGLL 121050Z 00000KT CAVOK 18/12 Q1013")
	var lines []string
	for _, gi := range r.Groups {
		lines = append(lines, Describe(gi))
	}
	out := strings.Join(lines, "\n")
	testutil.Contains(t, out, "location EGLL", "location")
	testutil.Contains(t, out, "calm", "calm wind")
	testutil.Contains(t, out, "ceiling and visibility OK", "cavok")
}
