// Package screens holds the application screens: the boot logo, the main
// menu and the emulator placeholder.
package screens

import (
	"time"

	"github.com/agiangrant/nucleus/retained"
)

// Resource names the screens look up in the ResourceProvider.
const (
	LogoImage   = "logo"
	RegularFont = "regular"
)

const (
	DefaultLogoDuration = 3000 * time.Millisecond
	DefaultFadeStart    = 2000 * time.Millisecond
)

// LogoOptions configures the boot logo.
type LogoOptions struct {
	// Duration the logo stays up. Defaults to DefaultLogoDuration.
	Duration time.Duration
	// FadeStart is when the fade-out begins, clamped to Duration. Zero means
	// DefaultFadeStart; a negative value fades from the first frame.
	FadeStart time.Duration

	// BootPath selects the Emulator screen as successor when set.
	BootPath string
	// Menu is shown by the Main screen when BootPath is empty.
	Menu []Entry
}

// Logo shows the centred logo, fades it out and hands over to the next
// screen.
type Logo struct {
	retained.ScreenBase

	ctx  *retained.Context
	opts LogoOptions
	body *retained.WidgetContainer
	logo *retained.WidgetImage
	fade retained.Tween
}

// NewLogo builds the logo screen. ctx must outlive the screen.
func NewLogo(ctx *retained.Context, opts LogoOptions) *Logo {
	if opts.Duration <= 0 {
		opts.Duration = DefaultLogoDuration
	}
	switch {
	case opts.FadeStart == 0:
		opts.FadeStart = DefaultFadeStart
	case opts.FadeStart < 0:
		opts.FadeStart = 0
	}
	opts.FadeStart = min(opts.FadeStart, opts.Duration)

	s := &Logo{ctx: ctx, opts: opts}
	s.Init(s, "logo-screen")

	s.body = newBody(s)
	s.body.Style.AlignH = retained.AlignCenter
	s.body.Style.AlignV = retained.AlignMiddle

	var img retained.ImageHandle
	if res := ctx.Resources(); res != nil {
		if h, ok := res.Image(LogoImage); ok {
			img = h
		}
	}
	s.logo, _ = retained.NewImageIn(s.body, "logo", img)
	s.logo.Style.Width = retained.Pct(50)
	s.logo.Style.Background = retained.Color{R: 1, G: 0, B: 1, A: 1}
	if img == nil {
		ctx.Logger().Printf("[ui] image %q not loaded, showing placeholder", LogoImage)
		s.logo.Style.Height = retained.Pct(25)
	}

	s.fade = retained.Tween{
		Delay:    opts.FadeStart,
		Duration: opts.Duration - opts.FadeStart,
		From:     1,
		To:       0,
		Easing:   retained.EaseOutQuad,
	}
	return s
}

// Image returns the logo widget.
func (s *Logo) Image() *retained.WidgetImage { return s.logo }

// Update fades the logo and, once the duration is reached, pushes the
// successor and finishes.
func (s *Logo) Update(ctx *retained.Context) {
	s.logo.Style.SetOpacity(s.fade.At(s.Elapsed()))
	if s.Elapsed() < s.opts.Duration || s.Finished() {
		return
	}
	if s.opts.BootPath != "" {
		ctx.PushScreen(NewEmulator(ctx, s.opts.BootPath))
	} else {
		ctx.PushScreen(NewMain(ctx, s.opts.Menu))
	}
	s.Finish()
}

// newBody adds the full-size body container every screen lays out into.
func newBody(s retained.Element) *retained.WidgetContainer {
	body, _ := retained.NewContainerIn(s, "body")
	body.Style.Width = retained.Pct(100)
	body.Style.Height = retained.Pct(100)
	return body
}
