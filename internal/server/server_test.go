package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gometar/gometar/internal/archive"
	"github.com/gometar/gometar/internal/observability"
	"github.com/gometar/gometar/internal/server"
)

var now = time.Date(2026, 10, 12, 11, 0, 0, 0, time.UTC)

type mockArchive struct {
	saved   []*archive.Record
	saveErr error
	pingErr error
}

func (m *mockArchive) Save(_ context.Context, recs ...*archive.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, recs...)
	return nil
}

func (m *mockArchive) Latest(_ context.Context, location string, limit int) ([]archive.Record, error) {
	var out []archive.Record
	for i := len(m.saved) - 1; i >= 0 && len(out) < limit; i-- {
		if m.saved[i].Location == location {
			out = append(out, *m.saved[i])
		}
	}
	return out, nil
}

func (m *mockArchive) PingContext(context.Context) error { return m.pingErr }

func newTestServer(arch server.Archive) (*server.Server, *observability.Metrics) {
	metrics := observability.NewMetricsForTesting()
	srv := server.NewServer(server.Options{
		Addr:         ":0",
		MaxBodyBytes: 1024,
		Clock:        clockwork.NewFakeClockAt(now),
		Metrics:      metrics,
		Archive:      arch,
	})
	return srv, metrics
}

func decode(t *testing.T, srv *server.Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(body))
	srv.ServeHTTP(rec, req)
	return rec
}

func TestDecodeReturnsReports(t *testing.T) {
	srv, metrics := newTestServer(nil)

	rec := decode(t, srv, "METAR EGLL 121050Z 27005KT 9999 FEW030 15/10 Q1013=\nTAF EGLL 121100Z 1212/1318 27010KT 9999 SCT030=")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body server.DecodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, now, body.ReceivedAt)
	require.Len(t, body.Reports, 2)

	metar := body.Reports[0]
	assert.Equal(t, "METAR", metar.Type)
	assert.Equal(t, "EGLL", metar.Location)
	assert.Empty(t, metar.Error)
	require.NotNil(t, metar.ReportTime)
	assert.Equal(t, time.Date(2026, 10, 12, 10, 50, 0, 0, time.UTC), *metar.ReportTime)
	require.NotEmpty(t, metar.Groups)
	assert.Equal(t, "keyword", metar.Groups[0].Kind)
	assert.Equal(t, "METAR", metar.Groups[0].Raw)
	assert.Equal(t, "location EGLL", metar.Groups[1].Description)

	taf := body.Reports[1]
	assert.Equal(t, "TAF", taf.Type)
	require.NotNil(t, taf.ValidFrom)
	require.NotNil(t, taf.ValidUntil)
	assert.Equal(t, time.Date(2026, 10, 12, 12, 0, 0, 0, time.UTC), *taf.ValidFrom)
	assert.Equal(t, time.Date(2026, 10, 13, 18, 0, 0, 0, time.UTC), *taf.ValidUntil)

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ReportsDecoded.WithLabelValues("METAR")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ReportsDecoded.WithLabelValues("TAF")), 0)
}

func TestDecodeReportsErrors(t *testing.T) {
	srv, metrics := newTestServer(nil)

	rec := decode(t, srv, "METAR 121050Z")

	require.Equal(t, http.StatusOK, rec.Code)
	var body server.DecodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Reports, 1)
	assert.Equal(t, "expected-location", body.Reports[0].Error)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ReportErrors.WithLabelValues("expected-location")), 0)
}

func TestDecodeEmptyBody(t *testing.T) {
	srv, _ := newTestServer(nil)

	rec := decode(t, srv, "\n# comment only\n")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "no reports in request body", body["error"])
}

func TestDecodeBodyTooLarge(t *testing.T) {
	srv, _ := newTestServer(nil)

	rec := decode(t, srv, strings.Repeat("METAR EGLL 121050Z\n", 200))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestDecodeMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/decode", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDecodeArchivesReports(t *testing.T) {
	arch := &mockArchive{}
	srv, metrics := newTestServer(arch)

	rec := decode(t, srv, "METAR EGLL 121050Z 27005KT=\nMETAR LFPG 121030Z 18004KT=")
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, arch.saved, 2)
	assert.Equal(t, "EGLL", arch.saved[0].Location)
	assert.Equal(t, "METAR EGLL 121050Z 27005KT", arch.saved[0].Raw)
	assert.Equal(t, now, arch.saved[0].ReceivedAt)
	assert.InDelta(t, 2, testutil.ToFloat64(metrics.ArchiveWrites.WithLabelValues("success")), 0)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/LFPG", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var latest []server.ArchivedReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &latest))
	require.Len(t, latest, 1)
	assert.Equal(t, "LFPG", latest[0].Location)
	assert.Equal(t, "METAR", latest[0].Type)
}

func TestDecodeArchiveFailureStillDecodes(t *testing.T) {
	arch := &mockArchive{saveErr: errors.New("disk full")}
	srv, metrics := newTestServer(arch)

	rec := decode(t, srv, "METAR EGLL 121050Z 27005KT")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.ArchiveWrites.WithLabelValues("error")), 0)
}

func TestLatestInvalidLimit(t *testing.T) {
	srv, _ := newTestServer(&mockArchive{})

	for _, limit := range []string{"0", "-1", "abc", "101"} {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/EGLL?limit="+limit, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
}

func TestLatestWithoutArchive(t *testing.T) {
	srv, _ := newTestServer(nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/EGLL", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthzReturns200(t *testing.T) {
	srv, _ := newTestServer(nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestReadyzReturns503WhenArchiveDown(t *testing.T) {
	srv, _ := newTestServer(&mockArchive{pingErr: errors.New("database is locked")})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not ready", body["status"])
	assert.Equal(t, "database is locked", body["error"])
}

func TestReadyzReturns200WithoutArchive(t *testing.T) {
	srv, _ := newTestServer(nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
