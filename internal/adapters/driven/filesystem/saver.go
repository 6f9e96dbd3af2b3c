// Package filesystem saves exported documents to local directories.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/bucketlist/internal/core/ports/driven"
	"github.com/custodia-labs/bucketlist/internal/logger"
)

// Ensure Saver implements the interface.
var _ driven.FileSaver = (*Saver)(nil)

// maxCollisions bounds the " (n)" suffixes tried for a taken name.
const maxCollisions = 1000

// ErrNameExhausted is returned when every numbered variant of a name is taken.
var ErrNameExhausted = errors.New("no free file name")

// Saver writes files atomically: data goes to a temporary file in the
// target directory, which is linked into place once fully written.
// A failed save leaves nothing behind.
type Saver struct {
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// NewSaver creates a new filesystem saver.
func NewSaver() *Saver {
	return &Saver{
		dirPerm:  0755,
		filePerm: 0644,
	}
}

// Save writes data to dir/name and returns the absolute path written.
// An empty dir means the working directory. Existing files are never
// overwritten; "list.txt" becomes "list (1).txt" and so on.
func (s *Saver) Save(ctx context.Context, dir, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, s.dirPerm); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}

	tmpPath, err := s.writeTemp(dir, data)
	if err != nil {
		return "", err
	}

	target, err := s.place(ctx, tmpPath, dir, name)
	if err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}

	abs, err := filepath.Abs(target)
	if err != nil {
		return target, nil
	}

	logger.Debug("file saved", "path", abs, "bytes", len(data))
	return abs, nil
}

func (s *Saver) writeTemp(dir string, data []byte) (string, error) {
	tmp, err := os.CreateTemp(dir, ".bucketlist-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	fail := func(step string, err error) (string, error) {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("%s: %w", step, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail("write temp file", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync temp file", err)
	}
	if err := tmp.Chmod(s.filePerm); err != nil {
		return fail("chmod temp file", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("close temp file: %w", err)
	}

	return tmpPath, nil
}

// place links the temp file to the first free variant of name and then
// drops the temp name. Linking fails when the target exists, so a file
// that appears between attempts is never replaced.
func (s *Saver) place(ctx context.Context, tmpPath, dir, name string) (string, error) {
	for n := 0; n < maxCollisions; n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		target := filepath.Join(dir, Numbered(name, n))
		if err := os.Link(tmpPath, target); err != nil {
			if errors.Is(err, fs.ErrExist) {
				continue
			}
			return "", fmt.Errorf("link into place: %w", err)
		}

		if err := os.Remove(tmpPath); err != nil {
			logger.Warn("temp file not removed", "path", tmpPath, "error", err)
		}
		return target, nil
	}

	return "", fmt.Errorf("%w: %s", ErrNameExhausted, name)
}

// Numbered returns name with " (n)" inserted before the extension.
// n of zero returns name unchanged.
func Numbered(name string, n int) string {
	if n == 0 {
		return name
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s (%d)%s", stem, n, ext)
}
