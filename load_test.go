package gometar

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gometar/gometar/internal/testutil"
)

func TestParseAllPreservesOrder(t *testing.T) {
	var reports []string
	for i := range 50 {
		reports = append(reports, fmt.Sprintf("METAR EGLL 12%02d50Z 27005KT 9999", i%24))
	}
	results, err := ParseAll(context.Background(), reports)
	testutil.NoError(t, err, "ParseAll")
	testutil.Len(t, results, len(reports), "one result per report")
	for i, r := range results {
		testutil.Equal(t, i%24, r.Metadata.ReportTime.Hour, "result %d in input order", i)
	}
}

func TestParseAllEmpty(t *testing.T) {
	results, err := ParseAll(context.Background(), nil)
	testutil.NoError(t, err, "ParseAll")
	testutil.Len(t, results, 0, "no results")
}

func TestParseAllContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ParseAll(ctx, []string{"METAR EGLL 121050Z 27005KT"})
	testutil.Error(t, err, "ParseAll with cancelled context should return error")
	testutil.True(t, errors.Is(err, context.Canceled), "error should be context.Canceled")
}

func TestParseSource(t *testing.T) {
	memFS := fstest.MapFS{
		"EGLL.txt":  &fstest.MapFile{Data: []byte("METAR EGLL 121050Z 27005KT 9999=\nMETAR EGLL 121120Z 28006KT 9999=\n")},
		"EGKK.txt":  &fstest.MapFile{Data: []byte("# empty file\n")},
		"LFPG.taf":  &fstest.MapFile{Data: []byte("TAF LFPG 121100Z 1212/1318 18004KT CAVOK=")},
		"notes.csv": &fstest.MapFile{Data: []byte("METAR")},
	}
	decoded, err := ParseSource(context.Background(), FS("mem", memFS))
	testutil.NoError(t, err, "ParseSource")
	testutil.Len(t, decoded, 3, "reports")

	testutil.Equal(t, "mem:EGLL.txt", decoded[0].Path, "path")
	testutil.Equal(t, 0, decoded[0].Index, "index")
	testutil.Equal(t, 1, decoded[1].Index, "second report index")
	testutil.Equal(t, "METAR EGLL 121120Z 28006KT 9999", decoded[1].Text, "text")
	testutil.Equal(t, TypeTaf, decoded[2].Result.Metadata.Type, "taf decoded")
	for _, d := range decoded {
		testutil.True(t, d.Result.OK(), "%s decodes", d.Text)
	}
}

func TestParseSourceNil(t *testing.T) {
	_, err := ParseSource(context.Background(), nil)
	testutil.True(t, errors.Is(err, ErrNoSources), "ErrNoSources")
}

func TestParseSourceContextCancellation(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "EGLL.txt"), "METAR EGLL 121050Z 27005KT=")
	src, err := Dir(dir)
	testutil.NoError(t, err, "Dir")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ParseSource(ctx, src)
	testutil.True(t, errors.Is(err, context.Canceled), "error should be context.Canceled")
}
