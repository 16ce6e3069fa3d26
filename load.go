package gometar

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
)

// ParseAll decodes reports in parallel. Results are returned in input
// order. If ctx is cancelled before every report is decoded, ctx.Err() is
// returned.
func ParseAll(ctx context.Context, reports []string, opts ...ParseOption) ([]Result, error) {
	cfg := newParseConfig(opts)
	return parseAll(ctx, reports, cfg)
}

func parseAll(ctx context.Context, reports []string, cfg parseConfig) ([]Result, error) {
	logger := cfg.logger
	if logEnabled(logger, slog.LevelInfo) {
		logger.LogAttrs(ctx, slog.LevelInfo, "parallel decoding",
			slog.Int("reports", len(reports)))
	}

	results := make([]Result, len(reports))

	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())

	for i, text := range reports {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			case sem <- struct{}{}:
			}
			defer func() { <-sem }()

			if ctx.Err() != nil {
				return
			}
			results[i] = parse(text, cfg)
		}(i, text)
	}
	wg.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if logEnabled(logger, slog.LevelInfo) {
		failed := 0
		for _, r := range results {
			if !r.OK() {
				failed++
			}
		}
		logger.LogAttrs(ctx, slog.LevelInfo, "parallel decoding complete",
			slog.Int("reports", len(results)),
			slog.Int("errors", failed))
	}
	return results, nil
}

// Decoded is a report read from a Source together with its decode.
type Decoded struct {
	Path   string // file the report was read from
	Index  int    // position of the report within the file
	Text   string
	Result Result
}

// ParseSource reads every report file of src and decodes the reports.
// Files that hold no report are skipped.
//
// Example:
//
//	src, err := gometar.Dir("./reports")
//	if err != nil { ... }
//	decoded, err := gometar.ParseSource(ctx, src, gometar.WithLogger(slog.Default()))
func ParseSource(ctx context.Context, src Source, opts ...ParseOption) ([]Decoded, error) {
	if src == nil {
		return nil, ErrNoSources
	}
	cfg := newParseConfig(opts)

	files, err := src.ListFiles()
	if err != nil {
		return nil, err
	}

	var (
		decoded []Decoded
		texts   []string
	)
	for _, path := range files {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		reports, err := readSourceFile(src, path)
		if errors.Is(err, ErrEmptyInput) {
			if logEnabled(cfg.logger, slog.LevelDebug) {
				cfg.logger.LogAttrs(ctx, slog.LevelDebug, "no reports in file",
					slog.String("path", path))
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		for i, text := range reports {
			decoded = append(decoded, Decoded{Path: path, Index: i, Text: text})
			texts = append(texts, text)
		}
	}

	results, err := parseAll(ctx, texts, cfg)
	if err != nil {
		return nil, err
	}
	for i := range decoded {
		decoded[i].Result = results[i]
	}
	return decoded, nil
}

func readSourceFile(src Source, path string) ([]string, error) {
	f, err := src.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadReports(f)
}

// logEnabled returns true if logging is enabled at the given level.
func logEnabled(logger *slog.Logger, level slog.Level) bool {
	return logger != nil && logger.Enabled(context.Background(), level)
}
