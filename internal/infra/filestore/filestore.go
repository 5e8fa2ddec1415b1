// Package filestore keeps uploaded image content on an afero file system.
//
// Stored references look like "media/<uuid><ext>": the prefix mirrors the
// public URL path, the rest is the file name under the store root. Paths
// handed to the afero file system are always absolute.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

var ErrInvalidReference = errors.New("invalid file reference")

type Store struct {
	fs     afero.Fs
	prefix string
}

// New returns a store writing into fs. fs is expected to be rooted at the
// media directory.
func New(fs afero.Fs, prefix string) *Store {
	return &Store{fs: fs, prefix: strings.Trim(prefix, "/")}
}

// NewOS returns a store rooted at dir on the local disk.
func NewOS(dir, prefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return New(afero.NewBasePathFs(afero.NewOsFs(), dir), prefix), nil
}

// Save copies r into a new file named after a random id, keeping the
// extension of filename, and returns its reference.
func (s *Store) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	f, err := s.fs.Create("/" + name)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = s.fs.Remove("/" + name)
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		_ = s.fs.Remove("/" + name)
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	return path.Join(s.prefix, name), nil
}

// Remove deletes the content behind ref. A reference whose file is already
// gone is not an error.
func (s *Store) Remove(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, err := s.name(ref)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(name); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

func (s *Store) Exists(ref string) (bool, error) {
	name, err := s.name(ref)
	if err != nil {
		return false, err
	}
	return afero.Exists(s.fs, name)
}

// FileSystem exposes the stored files for static serving.
func (s *Store) FileSystem() http.FileSystem {
	return afero.NewHttpFs(s.fs).Dir("/")
}

func (s *Store) name(ref string) (string, error) {
	name := strings.TrimPrefix(path.Clean("/"+ref), "/")
	if s.prefix != "" {
		if !strings.HasPrefix(name, s.prefix+"/") {
			return "", fmt.Errorf("%w: %q", ErrInvalidReference, ref)
		}
		name = strings.TrimPrefix(name, s.prefix+"/")
	}
	if name == "" || name == "." {
		return "", fmt.Errorf("%w: %q", ErrInvalidReference, ref)
	}
	return "/" + name, nil
}
