package archive

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gometar/gometar/report"
	"github.com/gometar/gometar/value"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func decoded(location string, day, hour, minute int) report.Result {
	return report.Result{
		Metadata: report.ReportMetadata{
			Type:       report.TypeMetar,
			Location:   location,
			ReportTime: &value.Time{Day: day, Hour: hour, Minute: minute},
		},
		Groups: []report.GroupInfo{
			{Group: report.LocationGroup{ICAO: location}, Raw: location},
		},
	}
}

func TestNewRecord(t *testing.T) {
	received := time.Date(2026, 10, 12, 11, 0, 0, 0, time.UTC)
	rec := NewRecord("METAR EGLL 121050Z", decoded("EGLL", 12, 10, 50), received)

	assert.Equal(t, "EGLL", rec.Location)
	assert.Equal(t, "METAR", rec.Type)
	assert.Empty(t, rec.Error)
	assert.Equal(t, 1, rec.Groups)
	require.NotNil(t, rec.ReportTime)
	assert.Equal(t, time.Date(2026, 10, 12, 10, 50, 0, 0, time.UTC), *rec.ReportTime)
}

func TestNewRecordPreviousMonth(t *testing.T) {
	received := time.Date(2026, 11, 1, 0, 5, 0, 0, time.UTC)
	rec := NewRecord("METAR EGLL 312350Z", decoded("EGLL", 31, 23, 50), received)

	require.NotNil(t, rec.ReportTime)
	assert.Equal(t, time.Date(2026, 10, 31, 23, 50, 0, 0, time.UTC), *rec.ReportTime)
}

func TestNewRecordWithError(t *testing.T) {
	r := report.Result{Metadata: report.ReportMetadata{Error: report.ErrorEmptyReport}}
	rec := NewRecord("", r, time.Now())

	assert.Equal(t, report.ErrorEmptyReport.String(), rec.Error)
	assert.Nil(t, rec.ReportTime)
}

func TestSaveAndLatest(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 12, 11, 0, 0, 0, time.UTC)

	var recs []*Record
	for i := range 3 {
		rec := NewRecord("METAR EGLL", decoded("EGLL", 12, 10+i, 50), base.Add(time.Duration(i)*time.Hour))
		recs = append(recs, &rec)
	}
	other := NewRecord("METAR LFPG", decoded("LFPG", 12, 10, 30), base)
	recs = append(recs, &other)

	require.NoError(t, db.Save(ctx, recs...))
	for _, rec := range recs {
		assert.Positive(t, rec.ID)
	}

	n, err := db.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	latest, err := db.Latest(ctx, "EGLL", 2)
	require.NoError(t, err)
	require.Len(t, latest, 2)
	assert.Equal(t, base.Add(2*time.Hour), latest[0].ReceivedAt)
	assert.Equal(t, base.Add(time.Hour), latest[1].ReceivedAt)
	require.NotNil(t, latest[0].ReportTime)
	assert.Equal(t, time.Date(2026, 10, 12, 12, 50, 0, 0, time.UTC), *latest[0].ReportTime)

	none, err := db.Latest(ctx, "KJFK", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSaveWithoutReportTime(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	rec := Record{Location: "EGLL", Type: "unknown", Raw: "EGLL", ReceivedAt: time.Now().UTC()}
	require.NoError(t, db.Save(ctx, &rec))

	got, err := db.Latest(ctx, "EGLL", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Nil(t, got[0].ReportTime)
}

func TestSaveNothing(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, db.Save(context.Background()))
}

func TestLatestInvalidLimit(t *testing.T) {
	db := setupTestDB(t)
	_, err := db.Latest(context.Background(), "EGLL", 0)
	assert.ErrorIs(t, err, ErrInvalidLimit)
}
