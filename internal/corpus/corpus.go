// SPDX-License-Identifier: MPL-2.0

package corpus

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
)

var (
	// ErrNotFound is returned when a corpus directory does not exist or
	// cannot be opened.
	ErrNotFound = errors.New("corpus directory not found")
	// ErrRead is returned when a listed file cannot be opened or read.
	ErrRead = errors.New("corpus file unreadable")
)

type (
	// File is a source file of a corpus.
	File struct {
		// Path is the file path as joined from the corpus directory.
		Path string
		// Size is the file size in bytes at listing time.
		Size int64
	}

	// Text is the content of a source file.
	Text struct {
		Path string
		Body string
	}

	// NotFoundError reports the directory that could not be listed.
	// It wraps ErrNotFound and the underlying filesystem error.
	NotFoundError struct {
		Dir string
		Err error
	}

	// Reader lists and reads corpus files.
	Reader struct {
		logger *log.Logger
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound, e.Err)
}

// Unwrap returns both the sentinel and the filesystem cause.
func (e *NotFoundError) Unwrap() []error {
	return []error{ErrNotFound, e.Err}
}

// NewReader creates a Reader. A nil logger discards output.
func NewReader(logger *log.Logger) *Reader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Reader{logger: logger}
}

// List returns the regular files in dir sorted by name.
// Sub-directories are skipped; symlinks are followed only to regular files.
func (r *Reader) List(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &NotFoundError{Dir: dir, Err: err}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	files := make([]File, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		p := filepath.Join(dir, e.Name())

		var info fs.FileInfo
		if e.Type()&fs.ModeSymlink != 0 {
			info, err = os.Stat(p)
		} else {
			info, err = e.Info()
		}
		if err != nil {
			// Entry vanished or dangling symlink between ReadDir and Stat.
			r.logger.Debug("skipping corpus entry", "path", p, "err", err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}
		files = append(files, File{Path: p, Size: info.Size()})
	}

	r.logger.Debug("listed corpus directory", "dir", dir, "files", len(files))
	return files, nil
}

// ListAll lists every directory in order and concatenates the results.
func (r *Reader) ListAll(dirs ...string) ([]File, error) {
	var all []File
	for _, dir := range dirs {
		files, err := r.List(dir)
		if err != nil {
			return nil, err
		}
		all = append(all, files...)
	}
	return all, nil
}

// Read returns the content of path.
func (r *Reader) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	return string(data), nil
}

// ReadAll reads every regular file in dirs, in listing order.
func (r *Reader) ReadAll(dirs ...string) ([]Text, error) {
	files, err := r.ListAll(dirs...)
	if err != nil {
		return nil, err
	}

	texts := make([]Text, 0, len(files))
	for _, f := range files {
		body, err := r.Read(f.Path)
		if err != nil {
			return nil, err
		}
		texts = append(texts, Text{Path: f.Path, Body: body})
	}
	return texts, nil
}
