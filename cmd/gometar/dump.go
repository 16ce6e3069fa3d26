package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/gometar/gometar"
	"github.com/gometar/gometar/cmd/internal/cliutil"
	"github.com/gometar/gometar/internal/archive"
	"github.com/gometar/gometar/internal/view"
)

const dumpUsage = `gometar dump - Decode report files and directories

Usage:
  gometar dump [options] -f FILE | -d DIR ...

Options:
  -f FILE          Decode a report file (repeatable)
  -d DIR           Decode the report files in DIR (repeatable)
  -r               Recurse into subdirectories of -d
  -format FORMAT   Output format: text, json or yaml (default json)
  --compact        Minified JSON (no indentation)
  --limit N        Maximum tokens decoded per report (default 100)
  --now TIME       Reference time (RFC 3339) for absolute report times
  --archive DB     Also store decoded reports in the SQLite database DB
  -o FILE          Write output to FILE
  -h, --help       Show help

Examples:
  gometar dump -f reports.txt
  gometar dump -r -d archive/2026 -format yaml
  gometar dump -d incoming --archive reports.db -o /dev/null
`

type stringList []string

func (l *stringList) String() string     { return strings.Join(*l, ",") }
func (l *stringList) Set(v string) error { *l = append(*l, v); return nil }

// dumpEntry is one decoded report with its origin.
type dumpEntry struct {
	Path        string `json:"path" yaml:"path"`
	Index       int    `json:"index" yaml:"index"`
	view.Report `yaml:",inline"`
}

func (c *cli) cmdDump(args []string) int {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() { fmt.Fprint(c.stderr, dumpUsage) }

	var files, dirs stringList
	fs.Var(&files, "f", "report file")
	fs.Var(&dirs, "d", "report directory")
	recursive := fs.Bool("r", false, "recurse into directories")
	format := fs.String("format", cliutil.FormatJSON, "output format")
	compact := fs.Bool("compact", false, "minified JSON")
	limit := fs.Int("limit", gometar.DefaultGroupLimit, "maximum tokens per report")
	now := fs.String("now", "", "reference time")
	archivePath := fs.String("archive", "", "SQLite archive")
	output := fs.String("o", "", "output file")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(c.stdout, dumpUsage)
		return exitOK
	}

	if !cliutil.ValidFormat(*format) {
		c.printError("unknown format %q", *format)
		return exitError
	}
	ref, err := referenceTime(*now)
	if err != nil {
		c.printError("invalid --now: %v", err)
		return exitError
	}

	src, err := buildSource(files, dirs, *recursive)
	if err != nil {
		c.printError("%v", err)
		_, _ = fmt.Fprint(c.stderr, dumpUsage)
		return exitError
	}

	ctx := context.Background()
	decoded, err := gometar.ParseSource(ctx, src, c.parseOptions(*limit)...)
	if err != nil {
		c.printError("failed to decode: %v", err)
		return exitError
	}

	entries := make([]dumpEntry, len(decoded))
	recs := make([]*archive.Record, len(decoded))
	failed := 0
	for i, d := range decoded {
		if !d.Result.OK() {
			failed++
		}
		entries[i] = dumpEntry{Path: d.Path, Index: d.Index, Report: view.FromResult(d.Text, d.Result, ref)}
		rec := archive.NewRecord(d.Text, d.Result, ref)
		recs[i] = &rec
	}

	if *archivePath != "" {
		if err := storeRecords(ctx, *archivePath, recs); err != nil {
			c.printError("%v", err)
			return exitError
		}
	}

	w, closeOut, err := c.output(*output)
	if err != nil {
		c.printError("%v", err)
		return exitError
	}
	defer closeOut()

	if err := writeEntries(w, *format, *compact, entries); err != nil {
		c.printError("failed to write output: %v", err)
		return exitError
	}

	if c.verbose > 0 || failed > 0 {
		_, _ = fmt.Fprintf(c.stderr, "%d reports decoded, %d with errors\n", len(entries), failed)
	}
	if failed > 0 {
		return exitReportError
	}
	return exitOK
}

func buildSource(files, dirs []string, recursive bool) (gometar.Source, error) {
	var sources []gometar.Source
	for _, f := range files {
		src, err := gometar.File(f)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	for _, d := range dirs {
		var (
			src gometar.Source
			err error
		)
		if recursive {
			src, err = gometar.DirTree(d)
		} else {
			src, err = gometar.Dir(d)
		}
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	switch len(sources) {
	case 0:
		return nil, gometar.ErrNoSources
	case 1:
		return sources[0], nil
	default:
		return gometar.Multi(sources...), nil
	}
}

func storeRecords(ctx context.Context, path string, recs []*archive.Record) error {
	db, err := archive.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Save(ctx, recs...)
}

func writeEntries(w io.Writer, format string, compact bool, entries []dumpEntry) error {
	if format != cliutil.FormatText {
		return cliutil.Encode(w, format, compact, entries)
	}
	for i, e := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s #%d\n", e.Path, e.Index+1); err != nil {
			return err
		}
		if err := writeText(w, e.Report); err != nil {
			return err
		}
	}
	return nil
}
