package value_test

import (
	"testing"
	"time"

	"github.com/gometar/gometar/internal/testutil"
	"github.com/gometar/gometar/value"
)

func TestTimeParsing(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) (value.Time, bool)
		input string
		want  value.Time
		ok    bool
	}{
		{"ddhhmm", value.TimeFromDDHHMM, "121050", value.Time{Day: 12, Hour: 10, Minute: 50}, true},
		{"ddhhmm short", value.TimeFromDDHHMM, "12105", value.Time{}, false},
		{"ddhhmm letters", value.TimeFromDDHHMM, "12105Z", value.Time{}, false},
		{"hhmm", value.TimeFromHHMM, "1246", value.Time{Hour: 12, Minute: 46}, true},
		{"hhmm long", value.TimeFromHHMM, "12460", value.Time{}, false},
		{"ddhh", value.TimeFromDDHH, "1318", value.Time{Day: 13, Hour: 18}, true},
		{"ddhh end of day", value.TimeFromDDHH, "1324", value.Time{Day: 13, Hour: 24}, true},
		{"ddhh slashes", value.TimeFromDDHH, "////", value.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.parse(tt.input)
			testutil.Equal(t, tt.ok, ok, "ok")
			testutil.Equal(t, tt.want, got, "time")
		})
	}
}

func TestTimeFromMinuteString(t *testing.T) {
	report := value.Time{Day: 12, Hour: 10, Minute: 50}

	got, ok := value.TimeFromMinuteString("45", &report)
	testutil.True(t, ok, "minutes only")
	testutil.Equal(t, value.Time{Hour: 10, Minute: 45}, got)

	got, ok = value.TimeFromMinuteString("45", nil)
	testutil.True(t, ok, "minutes without report time")
	testutil.Equal(t, value.Time{Minute: 45}, got)

	got, ok = value.TimeFromMinuteString("0932", &report)
	testutil.True(t, ok, "hour and minutes")
	testutil.Equal(t, value.Time{Hour: 9, Minute: 32}, got)

	_, ok = value.TimeFromMinuteString("5", &report)
	testutil.False(t, ok, "single digit")
}

func TestTimeIsValid(t *testing.T) {
	tests := []struct {
		t    value.Time
		want bool
	}{
		{value.Time{Day: 12, Hour: 10, Minute: 50}, true},
		{value.Time{Hour: 24}, true},
		{value.Time{Hour: 24, Minute: 30}, false},
		{value.Time{Hour: 25}, false},
		{value.Time{Day: 32}, false},
		{value.Time{Minute: 60}, false},
	}
	for _, tt := range tests {
		testutil.Equal(t, tt.want, tt.t.IsValid(), "IsValid(%v)", tt.t)
	}
}

func TestTimeResolve(t *testing.T) {
	tests := []struct {
		name string
		t    value.Time
		ref  time.Time
		want time.Time
	}{
		{
			name: "same day",
			t:    value.Time{Day: 12, Hour: 10, Minute: 50},
			ref:  time.Date(2026, 10, 12, 11, 0, 0, 0, time.UTC),
			want: time.Date(2026, 10, 12, 10, 50, 0, 0, time.UTC),
		},
		{
			name: "next day forecast",
			t:    value.Time{Day: 13, Hour: 6},
			ref:  time.Date(2026, 10, 12, 11, 0, 0, 0, time.UTC),
			want: time.Date(2026, 10, 13, 6, 0, 0, 0, time.UTC),
		},
		{
			name: "previous month",
			t:    value.Time{Day: 31, Hour: 23},
			ref:  time.Date(2026, 11, 1, 0, 30, 0, 0, time.UTC),
			want: time.Date(2026, 10, 31, 23, 0, 0, 0, time.UTC),
		},
		{
			name: "day missing from reference month",
			t:    value.Time{Day: 31, Hour: 10},
			ref:  time.Date(2026, 4, 30, 12, 0, 0, 0, time.UTC),
			want: time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "day missing from previous month",
			t:    value.Time{Day: 30, Hour: 18},
			ref:  time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 30, 18, 0, 0, 0, time.UTC),
		},
		{
			name: "end of day",
			t:    value.Time{Day: 12, Hour: 24},
			ref:  time.Date(2026, 10, 12, 11, 0, 0, 0, time.UTC),
			want: time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "no day uses previous day",
			t:    value.Time{Hour: 23, Minute: 50},
			ref:  time.Date(2026, 10, 12, 0, 10, 0, 0, time.UTC),
			want: time.Date(2026, 10, 11, 23, 50, 0, 0, time.UTC),
		},
		{
			name: "no day same day",
			t:    value.Time{Hour: 9, Minute: 15},
			ref:  time.Date(2026, 10, 12, 11, 0, 0, 0, time.UTC),
			want: time.Date(2026, 10, 12, 9, 15, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.Equal(t, tt.want, tt.t.Resolve(tt.ref))
		})
	}
}

func TestTimeString(t *testing.T) {
	testutil.Equal(t, "day 12 10:50", value.Time{Day: 12, Hour: 10, Minute: 50}.String())
	testutil.Equal(t, "09:05", value.Time{Hour: 9, Minute: 5}.String())
}
