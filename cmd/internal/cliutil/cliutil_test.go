package cliutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gometar/gometar/internal/testutil"
)

type sample struct {
	Location string `json:"location" yaml:"location"`
	Groups   int    `json:"groups" yaml:"groups"`
}

func TestEncodeJSON(t *testing.T) {
	var buf bytes.Buffer
	testutil.NoError(t, Encode(&buf, FormatJSON, false, sample{"EGLL", 3}))
	testutil.Equal(t, "{\n  \"location\": \"EGLL\",\n  \"groups\": 3\n}\n", buf.String())

	buf.Reset()
	testutil.NoError(t, Encode(&buf, FormatJSON, true, sample{"EGLL", 3}))
	testutil.Equal(t, "{\"location\":\"EGLL\",\"groups\":3}\n", buf.String())
}

func TestEncodeYAML(t *testing.T) {
	var buf bytes.Buffer
	testutil.NoError(t, Encode(&buf, FormatYAML, false, []sample{{"EGLL", 3}}))
	testutil.Equal(t, "- location: EGLL\n  groups: 3\n", buf.String())
}

func TestEncodeUnsupported(t *testing.T) {
	testutil.Error(t, Encode(&bytes.Buffer{}, FormatText, false, sample{}))
}

func TestValidFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		testutil.True(t, ValidFormat(f), f)
	}
	testutil.False(t, ValidFormat("xml"))
}

func TestGetOutput(t *testing.T) {
	f, closeFn, err := GetOutput("")
	testutil.NoError(t, err)
	testutil.True(t, f == os.Stdout, "empty name selects stdout")
	closeFn()

	path := filepath.Join(t.TempDir(), "out.json")
	f, closeFn, err = GetOutput(path)
	testutil.NoError(t, err)
	_, err = f.WriteString("{}")
	testutil.NoError(t, err)
	closeFn()

	data, err := os.ReadFile(path)
	testutil.NoError(t, err)
	testutil.True(t, strings.TrimSpace(string(data)) == "{}")
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	PrintError(&buf, "cannot read %s", "reports.txt")
	testutil.Equal(t, "error: cannot read reports.txt\n", buf.String())
}
