package core

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

// QueryDirectory answers one listing request.
//
// relpath is the decoded request path relative to the configured root
// (leading slash already stripped by the HTTP boundary). The two
// client-error outcomes come back inside the QueryResult, anything else
// that goes wrong is an internal error and must not reach the client
// verbatim.
func (s *Server) QueryDirectory(ctx context.Context, relpath string) (*QueryResult, error) {
	dirpath := s.resolvePath(relpath)

	info, err := os.Stat(dirpath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warnf("Path not found! %s", dirpath)
		return &QueryResult{Status: QueryPathNotFound}, nil
	case err != nil:
		return nil, fmt.Errorf("stat %s: %w", dirpath, err)
	case !info.IsDir():
		log.Warnf("Not a directory! %s", dirpath)
		return &QueryResult{Status: QueryNotDirectory}, nil
	}

	// Scanning is syscall-heavy work: keep at most GOMAXPROCS scans in
	// flight so it never starves the accept path.
	if err := s.scans.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer s.scans.Release(1)

	started := time.Now()

	entries, err := ScanDirectory(ctx, dirpath)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dirpath, err)
	}

	entries.Sort()

	body, err := entries.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode listing of %s: %w", dirpath, err)
	}

	log.WithFields(log.Fields{
		"path":    dirpath,
		"entries": len(entries),
		"size":    humanize.Bytes(uint64(len(body))),
	}).Debugf("Response assembled in %s", time.Since(started).Round(time.Microsecond))

	return &QueryResult{Status: QuerySuccess, Body: body}, nil
}

// resolvePath joins relpath onto the root. Rooting the path before
// cleaning strips every ".." that would climb above the root, so the
// result is always the root itself or something under it.
func (s *Server) resolvePath(relpath string) string {
	return filepath.Join(s.rootdir, filepath.FromSlash(path.Clean("/"+relpath)))
}
