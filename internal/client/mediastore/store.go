// Package mediastore manages the sandboxed directory holding local avatar
// image files. It is the only package that mutates that directory.
//
// Layout is a single flat directory, <dataDir>/avatars, with files named
// avatar_<unixMilli>_<random>.<ext>. There is no manifest: presence in the
// directory is the only persisted record, and it does not imply the file
// was ever uploaded.
package mediastore

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/CarlosParra69/Citas-sub001/internal/common"
	"github.com/CarlosParra69/Citas-sub001/internal/filex"
	"github.com/CarlosParra69/Citas-sub001/internal/logging"
)

const avatarsDirName = "avatars"

// AvatarFile is a named, sandboxed copy of a user's avatar image.
type AvatarFile struct {
	// Path is resolvable by the runtime and unique within the store.
	Path      string
	OwnerID   string
	CreatedAt time.Time
}

// Store owns the avatar sandbox below a base data directory.
type Store struct {
	dir string
	log logging.Logger
}

func New(dataDir string, log logging.Logger) *Store {
	return &Store{dir: filepath.Join(dataDir, avatarsDirName), log: log}
}

// EnsureDirectory creates the avatars directory if absent and returns its
// path. Creation failure is logged, not returned: the path is still handed
// back and the next Save retries the mkdir. Directory absence at
// construction time is not fatal.
func (s *Store) EnsureDirectory() string {
	if err := os.MkdirAll(s.dir, 0o770); err != nil {
		s.log.Warn(context.Background(), "avatar directory not created", "dir", s.dir, "error", err)
	}
	return s.dir
}

// Save copies the file at sourcePath into the sandbox under a fresh name
// and returns the stored AvatarFile. The name combines a millisecond
// timestamp with a random suffix, so two saves in the same millisecond
// still get distinct names and concurrent saves never contend for a path.
//
// Copy failures wrap common.ErrStorage: the caller must not believe it has
// a usable local file when it does not.
func (s *Store) Save(ctx context.Context, sourcePath, ownerID string) (AvatarFile, error) {
	s.EnsureDirectory()

	name := s.fileName(sourcePath, ownerID)
	dst := filepath.Join(s.dir, name)

	if err := filex.CopyFile(sourcePath, dst); err != nil {
		return AvatarFile{}, fmt.Errorf("%w: save avatar for %s: %v", common.ErrStorage, ownerID, err)
	}

	abs, err := filepath.Abs(dst)
	if err != nil {
		abs = dst
	}

	s.log.Debug(ctx, "avatar saved", "path", abs, "owner", ownerID)
	return AvatarFile{Path: abs, OwnerID: ownerID, CreatedAt: time.Now()}, nil
}

// fileName derives the stored name from the synthetic per-user name
// user_<ownerID>_avatar<ext>, keeping only its extension.
func (s *Store) fileName(sourcePath, ownerID string) string {
	synthetic := fmt.Sprintf("user_%s_avatar%s", ownerID, filepath.Ext(sourcePath))
	ext := filepath.Ext(synthetic)
	return fmt.Sprintf("avatar_%d_%d%s", time.Now().UnixMilli(), rand.Intn(10000), ext)
}

// Remove deletes the file at path, best effort. A missing file is success;
// any other failure is logged and swallowed so avatar deletion never blocks
// the surrounding user flow.
func (s *Store) Remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.log.Warn(context.Background(), "avatar file not removed", "path", path, "error", err)
	}
}

// Exists reports whether path names an existing file. It never fails:
// any I/O error reads as false.
func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// List enumerates the stored avatar files. Used for cleanup and debugging,
// not on the capture path.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list avatars: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, filepath.Join(s.dir, e.Name()))
	}
	return paths, nil
}

// Sweep removes stored files older than maxAge and returns how many were
// deleted. Nothing triggers it automatically; it backs an explicit cleanup
// command.
func (s *Store) Sweep(maxAge time.Duration) (int, error) {
	paths, err := s.List()
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			s.Remove(p)
			removed++
		}
	}
	return removed, nil
}
