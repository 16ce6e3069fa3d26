package view

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/gometar/gometar/internal/testutil"
	"github.com/gometar/gometar/report"
	"github.com/gometar/gometar/value"
)

func sample() report.Result {
	return report.Result{
		Metadata: report.ReportMetadata{
			Type:        report.TypeMetar,
			Location:    "EGLL",
			ReportTime:  &value.Time{Day: 12, Hour: 10, Minute: 50},
			IsAutomated: true,
			IsSpeci:     true,
		},
		Groups: []report.GroupInfo{
			{Group: report.KeywordGroup{Type: report.KeywordSpeci}, Part: report.PartHeader, Raw: "SPECI"},
			{Group: report.LocationGroup{ICAO: "EGLL"}, Part: report.PartHeader, Raw: "EGLL"},
			{Group: report.UnknownGroup{Text: "XXX"}, Part: report.PartMetar, Raw: "XXX"},
		},
	}
}

func TestFromResult(t *testing.T) {
	ref := time.Date(2026, 10, 12, 11, 0, 0, 0, time.UTC)
	got := FromResult("SPECI EGLL XXX", sample(), ref)

	reportTime := time.Date(2026, 10, 12, 10, 50, 0, 0, time.UTC)
	want := Report{
		Raw:        "SPECI EGLL XXX",
		Type:       "METAR",
		Location:   "EGLL",
		ReportTime: &reportTime,
		Flags:      []string{"speci", "auto"},
		Groups: []Group{
			{Kind: "keyword", Part: "header", Raw: "SPECI", Description: "special weather observation (SPECI)"},
			{Kind: "location", Part: "header", Raw: "EGLL", Description: "location EGLL"},
			{Kind: "unknown", Part: "metar", Raw: "XXX", Description: "not recognized: XXX"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("FromResult (-want +got):\n%s", diff)
	}
}

func TestFromResultWithoutReference(t *testing.T) {
	got := FromResult("SPECI EGLL XXX", sample(), time.Time{})
	testutil.True(t, got.ReportTime == nil, "report time needs a reference")
}

func TestFromResultError(t *testing.T) {
	r := report.Result{Metadata: report.ReportMetadata{Error: report.ErrorEmptyReport}}
	got := FromResult("", r, time.Time{})
	testutil.Equal(t, report.ErrorEmptyReport.String(), got.Error)
	testutil.Len(t, got.Groups, 0)
	testutil.True(t, got.Groups != nil, "groups serialize as an empty list")
}

func TestFlags(t *testing.T) {
	testutil.Len(t, Flags(report.ReportMetadata{}), 0)
	md := report.ReportMetadata{IsNil: true, IsCancelled: true, IsAmended: true, IsCorrectional: true, MaintenanceIndicator: true}
	testutil.SliceEqual(t, []string{"nil", "cancelled", "amended", "correction", "maintenance"}, Flags(md))
}

func TestSerialization(t *testing.T) {
	v := FromResult("SPECI EGLL XXX", sample(), time.Time{})

	js, err := json.Marshal(v)
	testutil.NoError(t, err)
	testutil.Contains(t, string(js), `"location":"EGLL"`)
	testutil.Contains(t, string(js), `"description":"location EGLL"`)
	testutil.True(t, json.Valid(js), "valid json")

	ys, err := yaml.Marshal(v)
	testutil.NoError(t, err)
	testutil.Contains(t, string(ys), "location: EGLL")
	testutil.Contains(t, string(ys), "kind: keyword")
}

func TestFromResultValidity(t *testing.T) {
	r := report.Result{Metadata: report.ReportMetadata{
		Type:          report.TypeTaf,
		TimeSpanFrom:  &value.Time{Day: 31, Hour: 12},
		TimeSpanUntil: &value.Time{Day: 1, Hour: 18},
	}}
	got := FromResult("", r, time.Date(2026, 10, 31, 11, 0, 0, 0, time.UTC))

	testutil.NotNil(t, got.ValidFrom)
	testutil.NotNil(t, got.ValidUntil)
	testutil.Equal(t, time.Date(2026, 10, 31, 12, 0, 0, 0, time.UTC), *got.ValidFrom)
	testutil.Equal(t, time.Date(2026, 11, 1, 18, 0, 0, 0, time.UTC), *got.ValidUntil)
}
