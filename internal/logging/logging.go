// Package logging configures the process-wide logger once, at startup.
// The core itself never touches logger configuration.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

// Setup sets the log level and, when logdir is non-empty, duplicates all
// output into a timestamped per-run file there. A latest.log symlink
// always points at the current run's file.
func Setup(logdir string, verbose bool) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	if len(logdir) == 0 {
		return nil
	}

	if info, err := os.Stat(logdir); err != nil || !info.IsDir() {
		return fmt.Errorf("invalid log directory: %s", logdir)
	}

	logfile := filepath.Join(logdir, fmt.Sprintf("gindex-%s.log", time.Now().Format("20060102-150405")))

	f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	symlink := filepath.Join(logdir, "latest.log")

	if _, err := os.Lstat(symlink); err == nil {
		if err := os.Remove(symlink); err != nil {
			f.Close()
			return err
		}
	}

	if err := os.Symlink(filepath.Base(logfile), symlink); err != nil {
		f.Close()
		return err
	}

	log.SetOutput(io.MultiWriter(os.Stderr, f))

	return nil
}
