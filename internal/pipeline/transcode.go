package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alecKarfonta/zelda-sub001/internal/hexinc"
	"github.com/alecKarfonta/zelda-sub001/internal/util"
)

// TranscodeStats summarizes one transcode run.
type TranscodeStats struct {
	Processed      int
	SkippedEmpty   int
	SkippedBadName int
}

// TranscodeRunner rewrites hex include files in place. Units are independent:
// each file is fully transformed in memory and atomically replaced, so a
// crash never corrupts more than the unit being written.
type TranscodeRunner struct {
	Transcoder *hexinc.Transcoder
	Workers    int
	Log        *zap.Logger
}

// Run transcodes every file. An unreadable file aborts the run; a file with
// no literals or a filename the naming mode cannot parse is skipped with a
// warning and the batch continues.
func (r *TranscodeRunner) Run(ctx context.Context, files []string) (*TranscodeStats, error) {
	stats := &TranscodeStats{}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())

	for _, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			out, err := r.Transcoder.TranscodeUnit(string(data), path)
			if err != nil {
				mu.Lock()
				defer mu.Unlock()
				switch {
				case errors.Is(err, hexinc.ErrEmptyInput):
					stats.SkippedEmpty++
				case errors.Is(err, hexinc.ErrInvalidFilename):
					stats.SkippedBadName++
				default:
					return fmt.Errorf("transcoding %s: %w", path, err)
				}
				r.Log.Warn("unit skipped", zap.String("file", path), zap.Error(err))
				return nil
			}

			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("stat %s: %w", path, err)
			}
			if err := util.WriteFileAtomic(path, []byte(out), info.Mode().Perm()); err != nil {
				return err
			}

			mu.Lock()
			stats.Processed++
			mu.Unlock()
			r.Log.Debug("unit transcoded", zap.String("file", path), zap.Int("bytes", len(out)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *TranscodeRunner) workers() int {
	if r.Workers <= 0 {
		return 1
	}
	return r.Workers
}
