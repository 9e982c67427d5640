package main

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fxdm/gindex/core"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Address string
	Port    int
	RootDir string
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	listener, err := net.Listen("tcp", net.JoinHostPort(s.Address, strconv.Itoa(s.Port)))
	if err != nil {
		return err
	}

	handler := core.NewServer(s.RootDir)

	httpSrv := &http.Server{
		Handler:           newRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, ctx := errgroup.WithContext(ctx)

	// Graceful shutdown
	group.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		return httpSrv.Shutdown(shutdownCtx)
	})

	group.Go(func() error {
		log.WithFields(log.Fields{
			"session": handler.SessionID,
			"rootdir": s.RootDir,
		}).Infof("Server started at %s", listener.Addr())

		if err := httpSrv.Serve(listener); err != http.ErrServerClosed {
			return err
		}

		return nil
	})

	return group.Wait()
}
