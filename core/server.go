package core

import (
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// Server answers listing queries for paths under a single root directory.
// The root is read-only configuration: requests share nothing else and
// may run concurrently without coordination.
type Server struct {
	SessionID string

	rootdir string
	scans   *semaphore.Weighted
}

func NewServer(rootdir string) *Server {
	return &Server{
		SessionID: uuid.New().String(),
		rootdir:   rootdir,
		scans:     semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
	}
}

func (s *Server) RootDir() string {
	return s.rootdir
}
