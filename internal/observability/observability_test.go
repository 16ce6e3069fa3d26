package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gometar/gometar/internal/types"
	"github.com/gometar/gometar/report"
)

func TestObserveResult(t *testing.T) {
	m := NewMetricsForTesting()

	ok := report.Result{
		Metadata: report.ReportMetadata{Type: report.TypeMetar},
		Groups: []report.GroupInfo{
			{Group: report.KeywordGroup{Type: report.KeywordMetar}, Raw: "METAR"},
			{Group: report.LocationGroup{ICAO: "EGLL"}, Raw: "EGLL"},
			{Group: report.UnknownGroup{Text: "XXX"}, Raw: "XXX"},
		},
	}
	failed := report.Result{
		Metadata: report.ReportMetadata{Error: report.ErrorEmptyReport},
	}

	m.ObserveResult(ok, time.Millisecond)
	m.ObserveResult(failed, time.Millisecond)

	assert.InDelta(t, 1, testutil.ToFloat64(m.ReportsDecoded.WithLabelValues("METAR")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ReportsDecoded.WithLabelValues("unknown")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.ReportErrors.WithLabelValues(report.ErrorEmptyReport.String())), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Groups.WithLabelValues(report.KindLocation.String())), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Groups.WithLabelValues(report.KindUnknown.String())), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.DecodeDuration))
}

func TestNewMetricsForTestingIsolated(t *testing.T) {
	a := NewMetricsForTesting()
	b := NewMetricsForTesting()
	a.ArchiveWrites.WithLabelValues("success").Inc()
	assert.InDelta(t, 0, testutil.ToFloat64(b.ArchiveWrites.WithLabelValues("success")), 0)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", types.LevelTrace},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "trace", "json")
	require.NoError(t, err)

	logger.Log(t.Context(), types.LevelTrace, "token", "text", "EGLL")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "TRACE", entry["level"])
	assert.Equal(t, "token", entry["msg"])
	assert.Equal(t, "EGLL", entry["text"])
}

func TestNewLoggerText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "info", "text")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewLoggerUnknownFormat(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "info", "xml")
	assert.Error(t, err)
}
