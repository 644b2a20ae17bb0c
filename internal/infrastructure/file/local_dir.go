package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	domain "github.com/mohammadpnp/jobboard-seed/internal/domain/seed"
)

// LocalDir reads and writes files under a base directory. It serves as the
// CSV source and sink and as the media root for path checks.
type LocalDir struct {
	BaseDir string
}

func NewLocalDir(baseDir string) *LocalDir {
	if baseDir == "" {
		baseDir = "."
	}
	return &LocalDir{BaseDir: baseDir}
}

func (d *LocalDir) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(d.BaseDir, filepath.FromSlash(name))
}

func (d *LocalDir) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	_ = ctx

	path := d.resolve(name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("open file %s: %w", path, err)
	}
	return f, nil
}

// Create truncates name, creating parent directories as needed.
func (d *LocalDir) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	_ = ctx

	path := d.resolve(name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create file %s: %w", path, err)
	}
	return f, nil
}

func (d *LocalDir) Exists(ctx context.Context, relPath string) (bool, error) {
	_ = ctx

	info, err := os.Stat(d.resolve(relPath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", relPath, err)
	}
	return !info.IsDir(), nil
}

// Path returns where name lives on disk.
func (d *LocalDir) Path(name string) string {
	return d.resolve(name)
}
