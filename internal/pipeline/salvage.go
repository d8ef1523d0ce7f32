// Package pipeline runs the batch drivers: the ordered concurrent record
// salvage run and the per-file transcode run.
package pipeline

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alecKarfonta/zelda-sub001/internal/record"
)

// SalvageStats summarizes one salvage run.
type SalvageStats struct {
	Total    int
	Strict   int
	Salvaged int
	// MissingFields counts, per field name, the lines where the fallback
	// extractor found nothing for that field.
	MissingFields map[string]int
	// WithNotes counts lines carrying the optional advisory field.
	WithNotes int
}

// SalvageRunner parses a newline-delimited record file and writes normalized
// JSONL. Lines are parsed concurrently; output preserves input order.
type SalvageRunner struct {
	Workers int
	Log     *zap.Logger
}

// Run reads inputPath, parses every line, and writes one normalized record
// per line to w. Only an unreadable input aborts the run; malformed lines
// degrade to salvaged records and are counted, never skipped.
func (r *SalvageRunner) Run(ctx context.Context, inputPath string, w io.Writer) (*SalvageStats, error) {
	lines, err := readLines(inputPath)
	if err != nil {
		return nil, err
	}

	results := make([]record.Result, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())
	for i := range lines {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = record.ParseLine(lines[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &SalvageStats{
		Total:         len(results),
		MissingFields: make(map[string]int),
	}

	bw := bufio.NewWriter(w)
	for i, res := range results {
		switch res.Tier {
		case record.TierStrict:
			stats.Strict++
		case record.TierSalvaged:
			stats.Salvaged++
			r.Log.Debug("salvaged line",
				zap.Int("line", i+1),
				zap.Strings("missing", res.Missing))
		}
		for _, f := range res.Missing {
			stats.MissingFields[f]++
		}
		if res.Notes != "" {
			stats.WithNotes++
		}

		data, err := json.Marshal(res.Record)
		if err != nil {
			return nil, fmt.Errorf("serializing line %d: %w", i+1, err)
		}
		bw.Write(data)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}

	return stats, nil
}

func (r *SalvageRunner) workers() int {
	if r.Workers <= 0 {
		return 1
	}
	return r.Workers
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		if len(strings.TrimSpace(sc.Text())) == 0 {
			continue
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
