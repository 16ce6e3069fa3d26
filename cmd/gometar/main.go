// Command gometar decodes METAR and TAF reports.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/gometar/gometar"
	"github.com/gometar/gometar/cmd/internal/cliutil"
)

// Exit codes.
const (
	exitOK          = 0 // success
	exitError       = 1 // user error or processing failure
	exitReportError = 2 // at least one report failed to decode
)

const usage = `gometar - METAR and TAF decoder

Usage:
  gometar <command> [options] [arguments]

Commands:
  decode  Decode reports given as arguments or on stdin
  dump    Decode report files and directories
  serve   Run the HTTP decode service
  version Show version

Common options:
  -v, --verbose     Enable debug logging
  -vv               Enable trace logging (implies -v)
  -h, --help        Show help

Examples:
  gometar decode "METAR EGLL 121050Z 27005KT 9999 FEW030 15/10 Q1013"
  echo "TAF EGLL 121100Z 1212/1318 27010KT 9999 SCT030" | gometar decode -format yaml
  gometar dump -d testdata/reports
  gometar -vv decode "SPECI KJFK 121051Z AUTO 18010KT"
`

type cli struct {
	verbose  int
	helpFlag bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func main() {
	c := &cli{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(c.run(os.Args[1:]))
}

func (c *cli) run(args []string) int {
	var cmdArgs []string
	var cmd string

	for _, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			c.helpFlag = true
		case arg == "-v" || arg == "--verbose":
			if c.verbose < 1 {
				c.verbose = 1
			}
		case arg == "-vv":
			c.verbose = 2
		case len(arg) > 0 && arg[0] == '-':
			cmdArgs = append(cmdArgs, arg)
		default:
			if cmd == "" {
				cmd = arg
			} else {
				cmdArgs = append(cmdArgs, arg)
			}
		}
	}

	if c.helpFlag && cmd == "" {
		_, _ = fmt.Fprint(c.stdout, usage)
		return exitOK
	}

	if cmd == "" {
		_, _ = fmt.Fprint(c.stderr, usage)
		return exitError
	}

	switch cmd {
	case "decode":
		return c.cmdDecode(cmdArgs)
	case "dump":
		return c.cmdDump(cmdArgs)
	case "serve":
		return c.cmdServe(cmdArgs)
	case "version":
		c.printVersion()
		return exitOK
	case "help":
		_, _ = fmt.Fprint(c.stdout, usage)
		return exitOK
	default:
		_, _ = fmt.Fprintf(c.stderr, "unknown command: %s\n\n", cmd)
		_, _ = fmt.Fprint(c.stderr, usage)
		return exitError
	}
}

func (c *cli) setupLogger() *slog.Logger {
	if c.verbose == 0 {
		return nil
	}
	level := slog.LevelDebug
	if c.verbose >= 2 {
		level = gometar.LevelTrace
	}
	return slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func (c *cli) parseOptions(limit int) []gometar.ParseOption {
	opts := []gometar.ParseOption{gometar.WithGroupLimit(limit)}
	if logger := c.setupLogger(); logger != nil {
		opts = append(opts, gometar.WithLogger(logger))
	}
	return opts
}

func (c *cli) printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	_, _ = fmt.Fprintf(c.stdout, "gometar %s\n", version)
}

func (c *cli) printError(format string, args ...any) {
	cliutil.PrintError(c.stderr, format, args...)
}
