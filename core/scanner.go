package core

import (
	"context"
	"errors"
	"os"
	"runtime"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ScanDirectory enumerates the immediate children of dirpath and resolves
// them concurrently, one worker per available CPU at most.
//
// A stale symlink is logged and dropped, any other resolution failure
// aborts the whole scan. The returned order is whatever the workers
// produced: callers must sort before the result leaves the process.
func ScanDirectory(ctx context.Context, dirpath string) (EntryList, error) {
	dents, err := os.ReadDir(dirpath)
	if err != nil {
		return nil, err
	}

	entries := make(EntryList, 0, len(dents))

	var mu sync.Mutex

	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for _, dent := range dents {
		dent := dent
		group.Go(func() error {
			e, err := ResolveEntry(dirpath, dent)

			switch {
			case errors.Is(err, ErrStaleSymlink):
				log.Warnf("Skipping entry: %s", err)
				return nil
			case err != nil:
				return err
			}

			mu.Lock()
			entries = append(entries, *e)
			mu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}
