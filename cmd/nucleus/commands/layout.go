package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agiangrant/nucleus"
	"github.com/agiangrant/nucleus/internal/appfs"
	"github.com/agiangrant/nucleus/retained"
	"github.com/agiangrant/nucleus/screens"
)

// Layout implements the 'nucleus layout' command
func Layout(args []string) error {
	return layout(os.Stdout, appFiles(), args)
}

func layout(w io.Writer, files *appfs.FS, args []string) error {
	fs := flag.NewFlagSet("layout", flag.ContinueOnError)
	dir := fs.String("dir", ".", "Folder holding nucleus.toml")
	screen := fs.String("screen", "logo", "Screen to lay out: logo or main")
	width := fs.Float64("width", 0, "Surface width in pixels (default: from nucleus.toml)")
	height := fs.Float64("height", 0, "Surface height in pixels (default: from nucleus.toml)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, path, err := loadProject(*dir, files)
	if err != nil {
		return err
	}
	if *width > 0 {
		cfg.Surface.Width = float32(*width)
	}
	if *height > 0 {
		cfg.Surface.Height = float32(*height)
	}

	app, err := nucleus.NewApp(context.Background(), cfg, nucleus.Options{ConfigPath: path, Files: files})
	if err != nil {
		return err
	}
	m := app.Manager()
	switch *screen {
	case "logo":
		app.Start()
	case "main":
		m.PushScreen(screens.NewMain(m.Context(), app.Menu()))
	default:
		return fmt.Errorf("unknown screen %q (want logo or main)", *screen)
	}

	var list retained.DrawList
	m.Render(&list)

	s := m.Surface()
	fmt.Fprintf(w, "%s on %gx%g @ %g dpi: %d commands\n", *screen, s.Width, s.Height, s.DPI, list.Len())
	for _, cmd := range list.Commands {
		fmt.Fprintln(w, formatCommand(cmd))
	}
	return nil
}

func formatCommand(cmd retained.Command) string {
	r := cmd.Rect
	line := fmt.Sprintf("%-9s %-12s %7.1f %7.1f %7.1f %7.1f", cmd.Kind, cmd.ID, r.X, r.Y, r.Width, r.Height)
	switch cmd.Kind {
	case retained.CommandRect:
		line += fmt.Sprintf("  #%08x", cmd.Color.RGBA())
	case retained.CommandImage:
		if cmd.Image != nil {
			line += "  " + cmd.Image.Name()
		}
	case retained.CommandText:
		line += fmt.Sprintf("  %q %gpx", cmd.Text, cmd.FontSize)
	}
	return line
}
