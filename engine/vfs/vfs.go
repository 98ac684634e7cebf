// Package vfs is a read-only search path over directories and .pak
// archives. Later mounts shadow earlier ones, so a patch archive mounted
// last overrides the base assets.
package vfs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
)

// ErrNotFound is wrapped when no mount holds the requested file
var ErrNotFound = errors.New("file not found")

// Source is one mounted tree. Names are slash separated and relative.
type Source interface {
	ReadFile(name string) ([]byte, error)
	Exists(name string) bool
	// List returns the names of the files directly inside dir ("." is the root)
	List(dir string) []string
}

type mount struct {
	name string
	src  Source
}

// FS searches its mounts newest first
type FS struct {
	mounts []mount
}

func New() *FS { return &FS{} }

// Mount adds src to the search path under a descriptive name
func (f *FS) Mount(name string, src Source) {
	f.mounts = append(f.mounts, mount{name: name, src: src})
}

// MountDir adds a directory on disk
func (f *FS) MountDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("mount %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("mount %s: not a directory", dir)
	}
	f.Mount(dir, DirSource(os.DirFS(dir)))
	return nil
}

// MountArchive opens a .pak file and adds it. The archive stays open until
// Close.
func (f *FS) MountArchive(file string) error {
	a, err := OpenArchive(file)
	if err != nil {
		return fmt.Errorf("mount %s: %w", file, err)
	}
	f.Mount(file, a)
	return nil
}

// Mounts returns the mount names, oldest first
func (f *FS) Mounts() []string {
	names := make([]string, len(f.mounts))
	for i, m := range f.mounts {
		names[i] = m.name
	}
	return names
}

// ReadFile returns the contents of name from the newest mount that has it
func (f *FS) ReadFile(name string) ([]byte, error) {
	clean, ok := cleanName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	for i := len(f.mounts) - 1; i >= 0; i-- {
		src := f.mounts[i].src
		if !src.Exists(clean) {
			continue
		}
		data, err := src.ReadFile(clean)
		if err != nil {
			return nil, fmt.Errorf("read %s from %s: %w", clean, f.mounts[i].name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (f *FS) Exists(name string) bool {
	clean, ok := cleanName(name)
	if !ok {
		return false
	}
	for _, m := range f.mounts {
		if m.src.Exists(clean) {
			return true
		}
	}
	return false
}

// ListDir returns the sorted union of the files directly inside dir
func (f *FS) ListDir(dir string) []string {
	clean, ok := cleanName(dir)
	if !ok {
		return nil
	}
	var out []string
	for _, m := range f.mounts {
		out = append(out, m.src.List(clean)...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Close closes every mounted archive
func (f *FS) Close() error {
	var errs []error
	for _, m := range f.mounts {
		if c, ok := m.src.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	f.mounts = nil
	return errors.Join(errs...)
}

// Stem returns the base name of p without its extension
func Stem(p string) string {
	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	if ext := path.Ext(base); ext != "" && ext != base {
		return strings.TrimSuffix(base, ext)
	}
	return base
}

func cleanName(name string) (string, bool) {
	name = path.Clean("/" + strings.ReplaceAll(name, "\\", "/"))
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		name = "."
	}
	return name, fs.ValidPath(name)
}

// ---- directory source ----

type dirSource struct {
	fsys fs.FS
}

// DirSource adapts an fs.FS, such as os.DirFS or an embed.FS, to a Source
func DirSource(fsys fs.FS) Source { return dirSource{fsys: fsys} }

func (d dirSource) ReadFile(name string) ([]byte, error) { return fs.ReadFile(d.fsys, name) }

func (d dirSource) Exists(name string) bool {
	info, err := fs.Stat(d.fsys, name)
	return err == nil && !info.IsDir()
}

func (d dirSource) List(dir string) []string {
	entries, err := fs.ReadDir(d.fsys, dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}
