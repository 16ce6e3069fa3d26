package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gometar/gometar"
	"github.com/gometar/gometar/cmd/internal/cliutil"
	"github.com/gometar/gometar/internal/view"
)

const decodeUsage = `gometar decode - Decode reports given as arguments or on stdin

Usage:
  gometar decode [options] [REPORT...]

Reports are separated by '=' or blank lines. Without arguments reports are
read from stdin.

Options:
  -format FORMAT   Output format: text, json or yaml (default text)
  --compact        Minified JSON (no indentation)
  --limit N        Maximum tokens decoded per report (default 100)
  --now TIME       Reference time (RFC 3339) for absolute report times
  -o FILE          Write output to FILE
  -h, --help       Show help

Examples:
  gometar decode "METAR EGLL 121050Z 27005KT 9999 FEW030 15/10 Q1013"
  gometar decode -format json < reports.txt
  gometar decode --now 2026-10-12T11:00:00Z "TAF EGLL 121100Z 1212/1318 27010KT"
`

func (c *cli) cmdDecode(args []string) int {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() { fmt.Fprint(c.stderr, decodeUsage) }

	format := fs.String("format", cliutil.FormatText, "output format")
	compact := fs.Bool("compact", false, "minified JSON")
	limit := fs.Int("limit", gometar.DefaultGroupLimit, "maximum tokens per report")
	now := fs.String("now", "", "reference time")
	output := fs.String("o", "", "output file")
	help := fs.Bool("h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")

	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if *help || c.helpFlag {
		_, _ = fmt.Fprint(c.stdout, decodeUsage)
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

	var input io.Reader = c.stdin
	if fs.NArg() > 0 {
		input = strings.NewReader(strings.Join(fs.Args(), "\n"))
	}
	texts, err := gometar.ReadReports(input)
	if err != nil {
		c.printError("%v", err)
		return exitError
	}

	opts := c.parseOptions(*limit)
	reports := make([]view.Report, len(texts))
	failed := false
	for i, text := range texts {
		result := gometar.Parse(text, opts...)
		failed = failed || !result.OK()
		reports[i] = view.FromResult(text, result, ref)
	}

	w, closeOut, err := c.output(*output)
	if err != nil {
		c.printError("%v", err)
		return exitError
	}
	defer closeOut()

	if err := writeReports(w, *format, *compact, reports); err != nil {
		c.printError("failed to write output: %v", err)
		return exitError
	}
	if failed {
		return exitReportError
	}
	return exitOK
}

func referenceTime(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	return time.Parse(time.RFC3339, s)
}

func (c *cli) output(path string) (io.Writer, func(), error) {
	if path == "" {
		return c.stdout, func() {}, nil
	}
	f, closeFn, err := cliutil.GetOutput(path)
	if err != nil {
		return nil, nil, err
	}
	return f, closeFn, nil
}

func writeReports(w io.Writer, format string, compact bool, reports []view.Report) error {
	if format != cliutil.FormatText {
		return cliutil.Encode(w, format, compact, reports)
	}
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeText(w, r); err != nil {
			return err
		}
	}
	return nil
}

func writeText(w io.Writer, r view.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Raw)

	header := []string{r.Type}
	if r.Location != "" {
		header = append(header, r.Location)
	}
	if r.ReportTime != nil {
		header = append(header, "issued "+r.ReportTime.Format("2006-01-02 15:04Z"))
	}
	if r.ValidFrom != nil && r.ValidUntil != nil {
		header = append(header, fmt.Sprintf("valid %s to %s",
			r.ValidFrom.Format("2006-01-02 15:04Z"), r.ValidUntil.Format("2006-01-02 15:04Z")))
	}
	if len(r.Flags) > 0 {
		header = append(header, strings.Join(r.Flags, " "))
	}
	fmt.Fprintf(&b, "  %s\n", strings.Join(header, ", "))

	width := 0
	for _, g := range r.Groups {
		width = max(width, len(g.Raw))
	}
	for _, g := range r.Groups {
		fmt.Fprintf(&b, "  %-*s  %-8s %s\n", width, g.Raw, g.Part, g.Description)
	}
	if r.Error != "" {
		fmt.Fprintf(&b, "  error: %s\n", r.Error)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
