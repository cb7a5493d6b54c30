// Package appfs gives access to the application data locations managed by
// the host: per-device data, data that follows the user across machines and
// scratch space.
package appfs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
)

// Location selects an application data folder.
type Location int

const (
	// Local holds data tied to this device.
	Local Location = iota
	// Roaming holds data synchronized across the user's devices.
	Roaming
	// Temp holds scratch files.
	Temp
)

func (l Location) String() string {
	switch l {
	case Local:
		return "local"
	case Roaming:
		return "roaming"
	case Temp:
		return "temp"
	default:
		return fmt.Sprintf("location(%d)", int(l))
	}
}

// ErrUnknownLocation is returned for Location values outside the enum.
var ErrUnknownLocation = errors.New("appfs: unknown location")

// FS resolves paths relative to an application's data folders. All paths
// are slash-separated and may not escape their location.
type FS struct {
	roots map[Location]string
}

// New returns the host folders for app.
func New(app string) (*FS, error) {
	roaming, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("appfs: roaming location: %w", err)
	}
	local, err := localDir()
	if err != nil {
		return nil, fmt.Errorf("appfs: local location: %w", err)
	}
	return NewAt(map[Location]string{
		Local:   filepath.Join(local, app),
		Roaming: filepath.Join(roaming, app),
		Temp:    filepath.Join(os.TempDir(), app),
	}), nil
}

// NewAt uses the given folders. Missing locations are unknown.
func NewAt(roots map[Location]string) *FS {
	m := make(map[Location]string, len(roots))
	for loc, dir := range roots {
		m[loc] = dir
	}
	return &FS{roots: m}
}

func localDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return dir, nil
		}
		return os.UserCacheDir()
	case "darwin", "ios":
		return os.UserConfigDir()
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
			return dir, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

// Path returns the absolute folder of loc.
func (f *FS) Path(loc Location) (string, error) {
	dir, ok := f.roots[loc]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownLocation, loc)
	}
	return dir, nil
}

// root opens loc, creating its folder on first use.
func (f *FS) root(loc Location) (*os.Root, error) {
	dir, err := f.Path(loc)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("appfs: create %s: %w", loc, err)
	}
	return os.OpenRoot(dir)
}

// OpenFile opens name in loc with the given flags.
func (f *FS) OpenFile(loc Location, name string, flag int) (*os.File, error) {
	r, err := f.root(loc)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.OpenFile(filepath.FromSlash(name), flag, 0o644)
}

// CreateFile creates an empty name in loc, with any missing parent folders.
// An existing file is truncated.
func (f *FS) CreateFile(loc Location, name string) error {
	r, err := f.root(loc)
	if err != nil {
		return err
	}
	defer r.Close()

	name = filepath.FromSlash(name)
	if dir := filepath.Dir(name); dir != "." {
		if err := r.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	file, err := r.Create(name)
	if err != nil {
		return err
	}
	return file.Close()
}

// ExistsFile reports whether name exists in loc.
func (f *FS) ExistsFile(loc Location, name string) bool {
	r, err := f.root(loc)
	if err != nil {
		return false
	}
	defer r.Close()
	_, err = r.Stat(filepath.FromSlash(name))
	return err == nil
}

// RemoveFile deletes name from loc.
func (f *FS) RemoveFile(loc Location, name string) error {
	r, err := f.root(loc)
	if err != nil {
		return err
	}
	defer r.Close()
	return r.Remove(filepath.FromSlash(name))
}

// ListDirectory returns the entries of dir in loc sorted by name.
func (f *FS) ListDirectory(loc Location, dir string) ([]fs.DirEntry, error) {
	base, err := f.Path(loc)
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(os.DirFS(base), pathOrDot(dir))
}

// DirFS returns loc as an fs.FS.
func (f *FS) DirFS(loc Location) (fs.FS, error) {
	dir, err := f.Path(loc)
	if err != nil {
		return nil, err
	}
	return os.DirFS(dir), nil
}

func pathOrDot(p string) string {
	if p == "" || p == "/" {
		return "."
	}
	return p
}
