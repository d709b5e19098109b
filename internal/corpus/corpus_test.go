// SPDX-License-Identifier: MPL-2.0

package corpus

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/fortune-kind/fortune-kind/internal/testutil"
)

func TestList(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteCorpus(t, map[string]string{
		"b.txt": "Content of file2\n",
		"a.txt": "Content of file1",
	})
	testutil.MustMkdirAll(t, filepath.Join(dir, "nested"), 0o755)

	files, err := NewReader(nil).List(dir)
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}

	want := []File{
		{Path: filepath.Join(dir, "a.txt"), Size: 16},
		{Path: filepath.Join(dir, "b.txt"), Size: 17},
	}
	if diff := cmp.Diff(want, files); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
}

func TestList_EmptyDirectory(t *testing.T) {
	t.Parallel()

	files, err := NewReader(nil).List(t.TempDir())
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}

func TestList_MissingDirectory(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "invalid_directory")
	_, err := NewReader(nil).List(missing)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error should wrap ErrNotFound, got: %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got: %v", err)
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("error should be *NotFoundError, got: %T", err)
	}
	if nf.Dir != missing {
		t.Errorf("NotFoundError.Dir = %q, want %q", nf.Dir, missing)
	}
}

func TestList_FollowsSymlinkToRegularFile(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on Windows")
	}

	target := testutil.WriteCorpus(t, map[string]string{"real": "A\n%\nB"})
	dir := t.TempDir()
	if err := os.Symlink(filepath.Join(target, "real"), filepath.Join(dir, "link")); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}
	if err := os.Symlink(target, filepath.Join(dir, "dirlink")); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	files, err := NewReader(nil).List(dir)
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(files) != 1 || files[0].Path != filepath.Join(dir, "link") || files[0].Size != 5 {
		t.Errorf("expected only the file symlink to be listed, got %v", files)
	}
}

func TestListAll(t *testing.T) {
	t.Parallel()

	kind := testutil.WriteCorpus(t, map[string]string{"kind": "nice"})
	off := testutil.WriteCorpus(t, map[string]string{"off": "rude"})

	r := NewReader(nil)
	files, err := r.ListAll(kind, off)
	if err != nil {
		t.Fatalf("ListAll() returned error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Path != filepath.Join(kind, "kind") || files[1].Path != filepath.Join(off, "off") {
		t.Errorf("unexpected listing order: %v", files)
	}

	if _, err := r.ListAll(kind, filepath.Join(off, "missing")); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound when one directory is missing, got: %v", err)
	}
}

func TestRead(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteCorpus(t, map[string]string{"file1.txt": "Content of file1\n"})
	r := NewReader(nil)

	got, err := r.Read(filepath.Join(dir, "file1.txt"))
	if err != nil {
		t.Fatalf("Read() returned error: %v", err)
	}
	if got != "Content of file1\n" {
		t.Errorf("Read() = %q, want %q", got, "Content of file1\n")
	}

	_, err = r.Read(filepath.Join(dir, "vanished.txt"))
	if !errors.Is(err, ErrRead) {
		t.Errorf("expected ErrRead for missing file, got: %v", err)
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteCorpus(t, map[string]string{
		"file1.txt": "Content of file1\n",
		"file2.txt": "Content of file2\n",
	})

	texts, err := NewReader(nil).ReadAll(dir)
	if err != nil {
		t.Fatalf("ReadAll() returned error: %v", err)
	}

	want := []Text{
		{Path: filepath.Join(dir, "file1.txt"), Body: "Content of file1\n"},
		{Path: filepath.Join(dir, "file2.txt"), Body: "Content of file2\n"},
	}
	if diff := cmp.Diff(want, texts); diff != "" {
		t.Errorf("ReadAll() mismatch (-want +got):\n%s", diff)
	}
}

func TestReadAll_MissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := NewReader(nil).ReadAll("invalid_directory")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}
