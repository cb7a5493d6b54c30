package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agiangrant/nucleus/internal/appfs"
	"github.com/agiangrant/nucleus/internal/config"
)

const appName = "nucleus"

// appFiles returns the per-user app locations, or nil when the platform has
// no user folders.
func appFiles() *appfs.FS {
	files, err := appfs.New(appName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return nil
	}
	return files
}

// loadProject reads the configuration from dir, then from the roaming app
// location. Without a file the defaults apply and relative paths resolve
// against dir.
func loadProject(dir string, files *appfs.FS) (config.Config, string, error) {
	dirs := []string{dir}
	if files != nil {
		if roaming, err := files.Path(appfs.Roaming); err == nil {
			dirs = append(dirs, roaming)
		}
	}
	cfg, path, err := config.Load(dirs...)
	if err != nil {
		return cfg, "", fmt.Errorf("failed to load config: %w", err)
	}
	if path == "" {
		path = filepath.Join(dir, config.FileTOML)
	}
	return cfg, path, nil
}
