package store

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"
)

const (
	slotExt        = ".json"
	checksumSuffix = ".checksum"
	lockFileName   = ".lock"
)

// FileSlots implements Slots with one file per key under a directory.
// Each write lands atomically through a temp file and is paired with a
// SHA-256 checksum sidecar that is verified on read. On the OS filesystem a
// file lock serializes access between processes.
type FileSlots struct {
	fs  afero.Fs
	dir string
	flk *flock.Flock
}

// NewFileSlots creates a FileSlots rooted at dir on the given filesystem,
// creating the directory if needed.
func NewFileSlots(fsys afero.Fs, dir string) (*FileSlots, error) {
	if dir == "" {
		dir = "."
	}
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	s := &FileSlots{fs: fsys, dir: dir}
	// flock needs a real file descriptor, so in-memory filesystems go unlocked.
	if _, ok := fsys.(*afero.OsFs); ok {
		s.flk = flock.New(filepath.Join(dir, lockFileName))
	}
	return s, nil
}

// Path returns the data file backing key.
func (s *FileSlots) Path(key string) string {
	return filepath.Join(s.dir, key+slotExt)
}

// Get reads the slot and verifies its checksum when a sidecar exists.
func (s *FileSlots) Get(key string) ([]byte, error) {
	if !validKey(key) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if s.flk != nil {
		if err := s.flk.RLock(); err != nil {
			return nil, fmt.Errorf("could not lock %s for read: %w", s.dir, err)
		}
		defer func() { _ = s.flk.Unlock() }()
	}

	path := s.Path(key)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to read slot file %s: %w", path, err)
	}

	expected, err := afero.ReadFile(s.fs, path+checksumSuffix)
	switch {
	case err == nil:
		if actual := calculateChecksum(data); strings.TrimSpace(string(expected)) != actual {
			return nil, fmt.Errorf("%w: checksum mismatch for %s", ErrCorruptSlot, path)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Written by something other than this store; accept it and let the next Set add a checksum.
	default:
		return nil, fmt.Errorf("failed to read checksum file for %s: %w", path, err)
	}

	return data, nil
}

// Set writes value to the slot through a temp file and rename, then updates
// the checksum. A nil error means Get returns value.
func (s *FileSlots) Set(key string, value []byte) error {
	if !validKey(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if s.flk != nil {
		if err := s.flk.Lock(); err != nil {
			return fmt.Errorf("could not lock %s for write: %w", s.dir, err)
		}
		defer func() { _ = s.flk.Unlock() }()
	}

	path := s.Path(key)
	tempPath := path + ".tmp"
	checksumPath := path + checksumSuffix
	tempChecksumPath := checksumPath + ".tmp"

	defer func() { _ = s.fs.Remove(tempPath) }()
	defer func() { _ = s.fs.Remove(tempChecksumPath) }()

	if err := afero.WriteFile(s.fs, tempPath, value, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary slot file %s: %w", tempPath, err)
	}
	if err := afero.WriteFile(s.fs, tempChecksumPath, []byte(calculateChecksum(value)), 0o644); err != nil {
		return fmt.Errorf("failed to write temporary checksum file %s: %w", tempChecksumPath, err)
	}
	// Drop the old sidecar first so the data file never sits next to a
	// checksum of different bytes. Get accepts a slot without one.
	if err := s.fs.Remove(checksumPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove checksum file %s: %w", checksumPath, err)
	}
	if err := s.fs.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", tempPath, path, err)
	}
	// The new value is in place from here on; a missing sidecar only costs
	// the integrity check until the next write.
	if err := s.fs.Rename(tempChecksumPath, checksumPath); err != nil {
		slog.Warn("slot written without checksum", "path", path, "error", err)
	}
	return nil
}

// Close releases the file lock handle.
func (s *FileSlots) Close() error {
	if s.flk == nil {
		return nil
	}
	return s.flk.Close()
}

// calculateChecksum computes the SHA256 checksum of the given data.
func calculateChecksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
