// Package staging manages the directory where uploaded import files wait to be processed.
package staging

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const defaultUploadName = "upload.csv"

var (
	ErrOutsideStagingDir = errors.New("path resolves outside the staging directory")
	ErrFileNotFound      = errors.New("staged file not found")
	ErrEmptyPath         = errors.New("staged file path is required")
)

// Store resolves relative file names against a fixed staging directory
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Resolve returns the path of rel inside the staging directory. Absolute paths,
// paths climbing out of the directory and symlinks pointing out of it are rejected.
func (s *Store) Resolve(rel string) (string, error) {
	if strings.TrimSpace(rel) == "" {
		return "", ErrEmptyPath
	}
	if filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %s", ErrOutsideStagingDir, rel)
	}

	full := filepath.Join(s.dir, rel)
	if !within(s.dir, full) {
		return "", fmt.Errorf("%w: %s", ErrOutsideStagingDir, rel)
	}

	target, err := filepath.EvalSymlinks(full)
	if errors.Is(err, fs.ErrNotExist) {
		// nothing to follow yet, Open and Remove report the missing file
		return full, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve staged file: %w", err)
	}

	root, err := filepath.EvalSymlinks(s.dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve staging directory: %w", err)
	}
	if !within(root, target) {
		return "", fmt.Errorf("%w: %s", ErrOutsideStagingDir, rel)
	}

	return full, nil
}

// within reports whether path lies strictly below dir
func within(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// Open opens a staged file for reading
func (s *Store) Open(rel string) (io.ReadCloser, error) {
	path, err := s.Resolve(rel)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, rel)
		}
		return nil, fmt.Errorf("failed to open staged file: %w", err)
	}

	return file, nil
}

// Remove deletes a staged file
func (s *Store) Remove(rel string) error {
	path, err := s.Resolve(rel)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, rel)
		}
		return fmt.Errorf("failed to remove staged file: %w", err)
	}

	return nil
}

// Save writes r into the staging directory under a unique name derived from name
// and returns the relative name to pass to Open.
func (s *Store) Save(name string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}

	rel := uuid.New().String() + "-" + sanitizeName(name)
	path := filepath.Join(s.dir, rel)

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("failed to create staged file: %w", err)
	}

	if _, err := io.Copy(file, r); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write staged file: %w", err)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write staged file: %w", err)
	}

	return rel, nil
}

// sanitizeName keeps only the base name of a client supplied file name
func sanitizeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	switch base {
	case "", ".", "..", "/":
		return defaultUploadName
	}
	return base
}
