package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/agiangrant/nucleus"
	"github.com/agiangrant/nucleus/internal/appfs"
)

// Run implements the 'nucleus run' command
func Run(args []string) error {
	return run(os.Stdout, appFiles(), args)
}

func run(w io.Writer, files *appfs.FS, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	dir := fs.String("dir", ".", "Folder holding nucleus.toml")
	frames := fs.Int("frames", 0, "Tick this many frames without waiting, 0 runs in real time")
	boot := fs.String("boot", "", "Executable to boot after the logo (default: from nucleus.toml)")
	debug := fs.Bool("debug", false, "Log screen transitions")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *frames < 0 {
		return fmt.Errorf("--frames must not be negative, got %d", *frames)
	}

	cfg, path, err := loadProject(*dir, files)
	if err != nil {
		return err
	}
	if *boot != "" {
		cfg.Boot.Path = *boot
	}
	cfg.UI.Debug = cfg.UI.Debug || *debug

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := nucleus.NewApp(ctx, cfg, nucleus.Options{ConfigPath: path, Files: files})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Running nucleus (%gx%g @ %g dpi, %d fps)\n",
		cfg.Surface.Width, cfg.Surface.Height, cfg.Surface.DPI, cfg.UI.TargetFPS)

	if *frames > 0 {
		n := app.RunFrames(*frames)
		fmt.Fprintf(w, "  ✓ Ran %d frames\n", n)
	} else {
		if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		fmt.Fprintf(w, "  ✓ Stopped after %d frames\n", app.Manager().Frames())
	}

	for _, s := range app.Manager().Screens() {
		fmt.Fprintf(w, "  Screen %s\n", s.Base().ID())
	}
	return nil
}
