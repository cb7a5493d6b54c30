package screens

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/agiangrant/nucleus/retained"
)

// Emulator is shown when a boot target is configured. Escape leaves it.
type Emulator struct {
	retained.ScreenBase

	path   string
	status *retained.WidgetText
	shown  time.Duration
}

// NewEmulator builds the screen for the executable at path.
func NewEmulator(ctx *retained.Context, path string) *Emulator {
	s := &Emulator{path: path, shown: -1}
	s.Init(s, "emulator-screen")

	body := newBody(s)
	body.SetClasses("w-full h-full justify-center items-center bg-black")

	font := regularFont(ctx)
	title := retained.Label("title", "text-white text-2xl mb-4", font, "Booting "+filepath.Base(path))
	s.status = retained.Label("status", "text-gray-500 text-sm", font, "")
	body.AddElement(title)
	body.AddElement(s.status)

	s.OnKeyDown(func(e *retained.KeyEvent) {
		if e.Key == retained.KeyEscape {
			s.Finish()
		}
	})
	ctx.Logger().Printf("[ui] boot %s", path)
	return s
}

// Path returns the boot target.
func (s *Emulator) Path() string { return s.path }

// Update refreshes the uptime line once per second.
func (s *Emulator) Update(*retained.Context) {
	up := s.Elapsed().Truncate(time.Second)
	if up == s.shown {
		return
	}
	s.shown = up
	s.status.SetText(fmt.Sprintf("%s running for %v", s.path, up))
}
