package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/agiangrant/nucleus/internal/config"
	"github.com/agiangrant/nucleus/retained"
)

// Resolve implements the 'nucleus resolve' command
func Resolve(args []string) error {
	return resolve(os.Stdout, args)
}

func resolve(w io.Writer, args []string) error {
	def := config.Default().Surface
	fs := flag.NewFlagSet("resolve", flag.ContinueOnError)
	axis := fs.String("axis", "x", "Axis to resolve against: x or y")
	width := fs.Float64("width", float64(def.Width), "Surface width in pixels")
	height := fs.Float64("height", float64(def.Height), "Surface height in pixels")
	dpi := fs.Float64("dpi", float64(def.DPI), "Surface density in dots per inch")
	if err := fs.Parse(args); err != nil {
		return err
	}
	// Flags may follow the length as well as precede it.
	if fs.NArg() == 0 {
		return errors.New("usage: nucleus resolve <length> [--axis x|y]")
	}
	literal := fs.Arg(0)
	if err := fs.Parse(fs.Args()[1:]); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	l, err := retained.ParseLength(literal)
	if err != nil {
		return err
	}
	s := retained.Surface{Width: float32(*width), Height: float32(*height), DPI: float32(*dpi)}
	if !s.Valid() {
		return fmt.Errorf("invalid surface %gx%g @ %g dpi", s.Width, s.Height, s.DPI)
	}

	var frac, px, extent float32
	switch *axis {
	case "x":
		frac, extent = s.ResolveX(l), s.Width
		px = s.PixelsX(frac)
	case "y":
		frac, extent = s.ResolveY(l), s.Height
		px = s.PixelsY(frac)
	default:
		return fmt.Errorf("unknown axis %q (want x or y)", *axis)
	}
	fmt.Fprintf(w, "%s along %s: %g of %gpx = %gpx\n", l, *axis, frac, extent, px)
	return nil
}
