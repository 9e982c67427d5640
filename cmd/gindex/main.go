package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/fxdm/gindex/core"
	"github.com/fxdm/gindex/internal/logging"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
}

func main() {
	app := new(cli.Command)

	app.Usage = "A fast directory indexer compatible with nginx's autoindex module"
	app.HideHelpCommand = true
	app.EnableShellCompletion = true

	// If no arguments provided
	app.Action = runServer

	app.Flags = []cli.Flag{
		&cli.StringFlag{Name: "directory", Aliases: []string{"d"}, Required: true, Usage: "base directory of the indexer"},
		&cli.StringFlag{Name: "address", Aliases: []string{"a"}, Value: "127.0.0.1", Usage: "ip address for listening"},
		&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 3500, Usage: "port for listening"},
		&cli.StringFlag{Name: "logdir", Aliases: []string{"f"}, Sources: cli.EnvVars("GINDEX_LOGDIR"), Usage: "directory of log files, empty for disable"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable debug/verbose mode"},
	}

	app.Commands = []*cli.Command{
		// VERSION
		&cli.Command{
			Name:  "version",
			Usage: "print the version information",
			Action: func(ctx context.Context, c *cli.Command) error {
				fmt.Printf("v%s, (built %s)\n", core.Version, runtime.Version())
				return nil
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatalln(err)
	}
}

func runServer(ctx context.Context, c *cli.Command) error {
	if err := logging.Setup(c.String("logdir"), c.Bool("verbose")); err != nil {
		return err
	}

	rootdir, err := filepath.Abs(c.String("directory"))
	if err != nil {
		return err
	}

	if info, err := os.Stat(rootdir); err != nil {
		return err
	} else if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", rootdir)
	}

	srv := Server{
		Address: c.String("address"),
		Port:    int(c.Int("port")),
		RootDir: rootdir,
	}

	// This global cancel context is used by the graceful shutdown function
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Register signal handler
	go func() {
		sigc := make(chan os.Signal, 1)

		signal.Notify(sigc, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(sigc)

		sig := <-sigc

		log.WithField("signal", sig).Info("Graceful shutdown initiated ...")

		cancel()
	}()

	return srv.ListenAndServe(ctx)
}
