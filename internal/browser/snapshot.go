package browser

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// ForcedCopier copies a file through an OS-level mechanism that can read
// past certain lock types a plain open cannot. Implementations are
// best-effort; failure is expected when the source is truly unreadable.
type ForcedCopier interface {
	Copy(src, dst string) error
}

// Snapshotter produces temporary point-in-time copies of live, possibly
// locked browser database files. It never takes a lock on the source.
type Snapshotter struct {
	forced ForcedCopier
	logger *log.Logger
}

// NewSnapshotter creates a Snapshotter with the platform forced-copy
// fallback. A nil logger falls back to the stdlib default.
func NewSnapshotter(logger *log.Logger) *Snapshotter {
	if logger == nil {
		logger = log.Default()
	}
	return &Snapshotter{forced: newForcedCopier(), logger: logger}
}

// Snapshot copies src into a temporary file adjacent to it and returns the
// temp path. The caller owns the copy and must remove it on every exit
// path. If the plain copy fails (e.g. a sharing violation while the browser
// is open), the forced copier is tried; when both fail the error wraps
// ErrSnapshotUnavailable.
func (s *Snapshotter) Snapshot(src string) (string, error) {
	if _, err := os.Stat(src); err != nil {
		return "", fmt.Errorf("%w: %v", ErrSnapshotUnavailable, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(src), filepath.Base(src)+".*.tmp")
	if err != nil {
		// Source dir may be read-only for us; fall back to the system
		// temp dir for the copy destination.
		tmp, err = os.CreateTemp("", filepath.Base(src)+".*.tmp")
		if err != nil {
			return "", fmt.Errorf("%w: create temp: %v", ErrSnapshotUnavailable, err)
		}
	}
	dst := tmp.Name()

	copyErr := copyInto(src, tmp)
	if closeErr := tmp.Close(); copyErr == nil {
		copyErr = closeErr
	}
	if copyErr == nil {
		return dst, nil
	}

	s.logger.Printf("plain copy of %s failed (%v), trying forced copy", src, copyErr)
	if err := s.forced.Copy(src, dst); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("%w: forced copy: %v", ErrSnapshotUnavailable, err)
	}

	return dst, nil
}

// copyInto streams the contents of src into an already-open destination.
func copyInto(src string, dst *os.File) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source file: %w", err)
	}
	defer srcFile.Close()

	if _, err := io.Copy(dst, srcFile); err != nil {
		return fmt.Errorf("copying file: %w", err)
	}

	return nil
}
