package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/agiangrant/nucleus/internal/config"
)

const themeFile = "theme.toml"

const defaultTheme = `# Tailwind-style theme overrides.

[breakpoints]
sm = 640.0
md = 768.0
lg = 1024.0
xl = 1280.0
"2xl" = 1536.0

[spacing]
# "18" = "72px"

[colors]
brand = "#2563eb"

[utilities]
card = ["p-4", "bg-gray-800"]
`

// Init implements the 'nucleus init' command
func Init(args []string) error {
	return initProject(os.Stdout, args)
}

func initProject(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	dir := fs.String("dir", ".", "Project folder")
	force := fs.Bool("force", false, "Overwrite an existing nucleus.toml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path := filepath.Join(*dir, config.FileTOML)
	if _, err := os.Stat(path); err == nil && !*force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	fmt.Fprintf(w, "Initializing nucleus project in %s\n", *dir)

	cfg := config.Default()
	cfg.UI.Theme = themeFile
	for _, sub := range []string{"images", "fonts"} {
		if err := os.MkdirAll(filepath.Join(*dir, cfg.Resources.Dir, sub), 0o755); err != nil {
			return fmt.Errorf("failed to create resource folder: %w", err)
		}
	}
	fmt.Fprintf(w, "  ✓ Created %s/\n", cfg.Resources.Dir)

	if err := config.Save(cfg, path); err != nil {
		return err
	}
	fmt.Fprintf(w, "  ✓ Created %s\n", config.FileTOML)

	theme := filepath.Join(*dir, themeFile)
	if _, err := os.Stat(theme); os.IsNotExist(err) {
		if err := os.WriteFile(theme, []byte(defaultTheme), 0o644); err != nil {
			return fmt.Errorf("failed to create %s: %w", themeFile, err)
		}
		fmt.Fprintf(w, "  ✓ Created %s\n", themeFile)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintf(w, "  Add %s and %s\n",
		filepath.Join(cfg.Resources.Dir, cfg.Resources.Images["logo"]),
		filepath.Join(cfg.Resources.Dir, cfg.Resources.Fonts["regular"]))
	fmt.Fprintln(w, "  nucleus run")
	return nil
}
