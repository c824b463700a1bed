// Package storage keeps per-request workbook artifacts on local disk.
// Files exist only for the lifetime of the request that created them; the
// handler removes them once the response is sent.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"bizclean/pkg/logger"
)

type Store struct {
	uploadDir  string
	cleanedDir string
	log        *logger.Logger
}

// New creates the upload and cleaned directories if they do not exist.
func New(uploadDir, cleanedDir string, log *logger.Logger) (*Store, error) {
	for _, dir := range []string{uploadDir, cleanedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating storage directory %s: %w", dir, err)
		}
	}

	return &Store{
		uploadDir:  uploadDir,
		cleanedDir: cleanedDir,
		log:        log,
	}, nil
}

// SaveUpload streams an uploaded workbook to the upload directory and
// returns its path. Stored names are prefixed with a UUID so concurrent
// uploads of the same filename never collide.
func (s *Store) SaveUpload(filename string, r io.Reader) (string, error) {
	path := filepath.Join(s.uploadDir, uuid.NewString()+"_"+filepath.Base(filename))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		s.Remove(path)
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	return path, nil
}

// CleanedPath returns a fresh output path for the cleaned counterpart of
// the given upload filename.
func (s *Store) CleanedPath(filename string) string {
	return filepath.Join(s.cleanedDir, uuid.NewString()+"_cleaned_"+filepath.Base(filename))
}

// Remove deletes a stored artifact. Removal is best effort: a leftover file
// is logged, not surfaced to the caller.
func (s *Store) Remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.Warn("Could not remove stored file", "path", path, "error", err)
	}
}

// Writable probes both storage directories. Used by the readiness check.
func (s *Store) Writable() error {
	for _, dir := range []string{s.uploadDir, s.cleanedDir} {
		probe := filepath.Join(dir, ".probe_"+uuid.NewString())
		f, err := os.Create(probe)
		if err != nil {
			return fmt.Errorf("storage directory %s not writable: %w", dir, err)
		}
		f.Close()
		if err := os.Remove(probe); err != nil {
			return fmt.Errorf("cleaning probe file in %s: %w", dir, err)
		}
	}
	return nil
}
