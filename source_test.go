package gometar

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gometar/gometar/internal/testutil"
)

func TestReadReports(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "terminated",
			input: "METAR EGLL 121050Z 27005KT= METAR EGKK 121050Z 24008KT=",
			want:  []string{"METAR EGLL 121050Z 27005KT", "METAR EGKK 121050Z 24008KT"},
		},
		{
			name:  "blank line separated",
			input: "METAR EGLL 121050Z 27005KT\n\nMETAR EGKK 121050Z 24008KT\n",
			want:  []string{"METAR EGLL 121050Z 27005KT", "METAR EGKK 121050Z 24008KT"},
		},
		{
			name:  "continuation lines",
			input: "TAF EGLL 121100Z 1212/1318 28010KT\n  BECMG 1215/1217 9999=\n",
			want:  []string{"TAF EGLL 121100Z 1212/1318 28010KT BECMG 1215/1217 9999"},
		},
		{
			name:  "comments",
			input: "# hourly reports\nMETAR EGLL 121050Z 27005KT\n",
			want:  []string{"METAR EGLL 121050Z 27005KT"},
		},
		{
			name:  "whitespace normalized",
			input: "METAR\tEGLL   121050Z\r\n",
			want:  []string{"METAR EGLL 121050Z"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadReports(strings.NewReader(tt.input))
			testutil.NoError(t, err, "ReadReports")
			testutil.SliceEqual(t, tt.want, got, "reports")
		})
	}
}

func TestReadReportsEmpty(t *testing.T) {
	for _, in := range []string{"", "\n\n", "=  =", "# only a comment\n"} {
		_, err := ReadReports(strings.NewReader(in))
		testutil.True(t, errors.Is(err, ErrEmptyInput), "ErrEmptyInput for %q", in)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	testutil.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "mkdir")
	testutil.NoError(t, os.WriteFile(path, []byte(content), 0o644), "write %s", path)
}

func TestDirNonExistentPath(t *testing.T) {
	_, err := Dir("/this/path/does/not/exist/at/all")
	testutil.Error(t, err, "Dir with non-existent path should fail")
}

func TestDirNotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "EGLL.txt")
	writeFile(t, path, "METAR EGLL 121050Z 27005KT=")
	_, err := Dir(path)
	testutil.Error(t, err, "Dir with a file path should fail")
	_, err = DirTree(path)
	testutil.Error(t, err, "DirTree with a file path should fail")
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "EGLL.txt")
	writeFile(t, path, "METAR EGLL 121050Z 27005KT=")

	src, err := File(path)
	testutil.NoError(t, err, "File")
	files, err := src.ListFiles()
	testutil.NoError(t, err, "ListFiles")
	testutil.SliceEqual(t, []string{path}, files, "files")

	_, err = File(filepath.Dir(path))
	testutil.Error(t, err, "File with a directory should fail")

	_, err = src.Open("other.txt")
	testutil.True(t, errors.Is(err, fs.ErrNotExist), "unknown path")
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "EGLL.txt"), "METAR EGLL 121050Z 27005KT=")
	writeFile(t, filepath.Join(dir, "EGKK.metar"), "METAR EGKK 121050Z 24008KT=")
	writeFile(t, filepath.Join(dir, "notes.md"), "not a report")
	writeFile(t, filepath.Join(dir, "sub", "LFPG.txt"), "METAR LFPG 121030Z 18004KT=")

	src, err := Dir(dir)
	testutil.NoError(t, err, "Dir")
	files, err := src.ListFiles()
	testutil.NoError(t, err, "ListFiles")
	testutil.Len(t, files, 2, "no recursion, extension filter")

	f, err := src.Open(files[0])
	testutil.NoError(t, err, "Open")
	data, err := io.ReadAll(f)
	_ = f.Close()
	testutil.NoError(t, err, "ReadAll")
	testutil.Contains(t, string(data), "METAR", "content")
}

func TestDirTreeSource(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "EGLL.txt"), "METAR EGLL 121050Z 27005KT=")
	writeFile(t, filepath.Join(dir, "fr", "LFPG.txt"), "METAR LFPG 121030Z 18004KT=")
	writeFile(t, filepath.Join(dir, "fr", "LFPO.taf"), "TAF LFPO 121100Z 1212/1318 18004KT=")

	src, err := DirTree(dir)
	testutil.NoError(t, err, "DirTree")
	files, err := src.ListFiles()
	testutil.NoError(t, err, "ListFiles")
	testutil.Len(t, files, 3, "recursive listing")

	_, err = src.Open(filepath.Join(dir, "missing.txt"))
	testutil.True(t, errors.Is(err, fs.ErrNotExist), "unknown path")
}

func TestWithExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "EGLL.txt"), "METAR EGLL 121050Z 27005KT=")
	writeFile(t, filepath.Join(dir, "EGLL.wx"), "METAR EGLL 121050Z 27005KT=")

	src, err := Dir(dir, WithExtensions(".wx"))
	testutil.NoError(t, err, "Dir")
	files, err := src.ListFiles()
	testutil.NoError(t, err, "ListFiles")
	testutil.SliceEqual(t, []string{filepath.Join(dir, "EGLL.wx")}, files, "custom extension")
}

func TestFSSource(t *testing.T) {
	memFS := fstest.MapFS{
		"reports/EGLL.txt": &fstest.MapFile{Data: []byte("METAR EGLL 121050Z 27005KT=")},
		"reports/README":   &fstest.MapFile{Data: []byte("# no reports")},
		"reports/logo.png": &fstest.MapFile{Data: []byte{0x89}},
	}
	src := FS("mem", memFS)

	files, err := src.ListFiles()
	testutil.NoError(t, err, "ListFiles")
	testutil.SliceEqual(t, []string{"mem:reports/EGLL.txt", "mem:reports/README"}, files, "files")

	f, err := src.Open("mem:reports/EGLL.txt")
	testutil.NoError(t, err, "Open")
	_ = f.Close()

	_, err = src.Open("reports/EGLL.txt")
	testutil.True(t, errors.Is(err, fs.ErrNotExist), "path without prefix")
}

func TestMultiSource(t *testing.T) {
	a := FS("a", fstest.MapFS{"EGLL.txt": &fstest.MapFile{Data: []byte("METAR EGLL 121050Z 27005KT=")}})
	b := FS("b", fstest.MapFS{"EGKK.txt": &fstest.MapFile{Data: []byte("METAR EGKK 121050Z 24008KT=")}})
	src := Multi(a, b)

	files, err := src.ListFiles()
	testutil.NoError(t, err, "ListFiles")
	testutil.SliceEqual(t, []string{"a:EGLL.txt", "b:EGKK.txt"}, files, "source order")

	f, err := src.Open("b:EGKK.txt")
	testutil.NoError(t, err, "Open from second source")
	_ = f.Close()

	_, err = src.Open("c:LFPG.txt")
	testutil.True(t, errors.Is(err, fs.ErrNotExist), "unknown path")
}

func TestDefaultExtensions(t *testing.T) {
	set := makeExtensionSet(DefaultExtensions)
	testutil.True(t, hasValidExtension("EGLL", set), "no extension")
	testutil.True(t, hasValidExtension("EGLL.TXT", set), "case-insensitive")
	testutil.True(t, hasValidExtension("EGLL.taf", set), "taf")
	testutil.False(t, hasValidExtension("EGLL.json", set), "json")
}
