package value_test

import (
	"testing"

	"github.com/gometar/gometar/internal/testutil"
	"github.com/gometar/gometar/value"
)

func TestWeatherPhenomenaFromString(t *testing.T) {
	tests := []struct {
		input      string
		recent     bool
		ok         bool
		qualifier  value.WeatherQualifier
		descriptor value.WeatherDescriptor
		weather    []value.Weather
		str        string
	}{
		{"-RA", false, true, value.QualifierLight, value.DescriptorNone, []value.Weather{value.WeatherRain}, "light rain"},
		{"RA", false, true, value.QualifierModerate, value.DescriptorNone, []value.Weather{value.WeatherRain}, "rain"},
		{"+TSRA", false, true, value.QualifierHeavy, value.DescriptorThunderstorm, []value.Weather{value.WeatherRain}, "heavy thunderstorm rain"},
		{"VCSH", false, true, value.QualifierVicinity, value.DescriptorShowers, nil, "in vicinity showers"},
		{"FZFG", false, true, value.QualifierNone, value.DescriptorFreezing, []value.Weather{value.WeatherFog}, "freezing fog"},
		{"BR", false, true, value.QualifierNone, value.DescriptorNone, []value.Weather{value.WeatherMist}, "mist"},
		{"RASN", false, true, value.QualifierModerate, value.DescriptorNone, []value.Weather{value.WeatherRain, value.WeatherSnow}, "rain snow"},
		{"BLSN", false, true, value.QualifierModerate, value.DescriptorBlowing, []value.Weather{value.WeatherSnow}, "blowing snow"},
		{"SHGR", false, true, value.QualifierModerate, value.DescriptorShowers, []value.Weather{value.WeatherHail}, "showers hail"},
		{"+FC", false, true, value.QualifierHeavy, value.DescriptorNone, []value.Weather{value.WeatherFunnelCloud}, "heavy funnel cloud"},
		{"TS", false, true, value.QualifierNone, value.DescriptorThunderstorm, nil, "thunderstorm"},
		{"RERA", true, true, value.QualifierRecent, value.DescriptorNone, []value.Weather{value.WeatherRain}, "recent rain"},
		{"//", false, true, value.QualifierNone, value.DescriptorNone, []value.Weather{value.WeatherNotReported}, "not reported"},

		{input: "RERA"},
		{input: "-BR"},
		{input: "MIRA"},
		{input: "DRRA"},
		{input: "RABR"},
		{input: "FZSN"},
		{input: "XX"},
		{input: "RAS"},
		{input: ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, ok := value.WeatherPhenomenaFromString(tt.input, tt.recent)
			testutil.Equal(t, tt.ok, ok, "ok")
			if !tt.ok {
				return
			}
			testutil.Equal(t, tt.qualifier, w.Qualifier, "qualifier")
			testutil.Equal(t, tt.descriptor, w.Descriptor, "descriptor")
			testutil.SliceEqual(t, tt.weather, w.Weather, "weather")
			testutil.Equal(t, tt.str, w.String(), "string")
		})
	}
}

func TestWeatherIsPrecipitation(t *testing.T) {
	testutil.True(t, value.WeatherDrizzle.IsPrecipitation())
	testutil.True(t, value.WeatherUndetermined.IsPrecipitation())
	testutil.False(t, value.WeatherFog.IsPrecipitation())
	testutil.False(t, value.WeatherSqualls.IsPrecipitation())
}

func TestWeatherEventsFromRemarkString(t *testing.T) {
	reportTime := &value.Time{Day: 12, Hour: 10, Minute: 50}
	events, ok := value.WeatherEventsFromRemarkString("RAB15E30SNB30", reportTime)
	testutil.True(t, ok, "chain decodes")
	testutil.Len(t, events, 3)

	want := []struct {
		weather value.Weather
		event   value.WeatherEvent
		at      value.Time
	}{
		{value.WeatherRain, value.EventBeginning, value.Time{Hour: 10, Minute: 15}},
		{value.WeatherRain, value.EventEnding, value.Time{Hour: 10, Minute: 30}},
		{value.WeatherSnow, value.EventBeginning, value.Time{Hour: 10, Minute: 30}},
	}
	for i, w := range want {
		testutil.SliceEqual(t, []value.Weather{w.weather}, events[i].Weather, "weather %d", i)
		testutil.Equal(t, w.event, events[i].Event, "event %d", i)
		testutil.NotNil(t, events[i].EventTime, "time %d", i)
		testutil.Equal(t, w.at, *events[i].EventTime, "time %d", i)
	}
	testutil.Equal(t, "rain began at 10:15", events[0].String())
	testutil.Equal(t, "snow began at 10:30", events[2].String())
}

func TestWeatherEventsHourAndMinute(t *testing.T) {
	events, ok := value.WeatherEventsFromRemarkString("TSB0159E30", nil)
	testutil.True(t, ok)
	testutil.Len(t, events, 2)
	testutil.Equal(t, value.DescriptorThunderstorm, events[0].Descriptor)
	testutil.Equal(t, value.Time{Hour: 1, Minute: 59}, *events[0].EventTime)
	testutil.Equal(t, value.Time{Minute: 30}, *events[1].EventTime, "no report time, minute only")
}

func TestWeatherEventsRejected(t *testing.T) {
	for _, s := range []string{"RA", "B15", "RAB1", "RAB15E", "XXB15", "RAB15E123", ""} {
		_, ok := value.WeatherEventsFromRemarkString(s, nil)
		testutil.False(t, ok, "%q", s)
	}
}
