package retained

import (
	"context"
	"log"
	"time"

	"github.com/agiangrant/nucleus/tw"
)

// ManagerConfig configures a Manager.
type ManagerConfig struct {
	Surface   Surface
	Resources ResourceProvider

	// Logger receives screen transitions. Defaults to log.Default().
	Logger *log.Logger
	Debug  bool

	TargetFPS   int
	Breakpoints tw.BreakpointConfig
}

// DefaultManagerConfig returns a 1280x720 surface at 96 DPI and 60 FPS.
func DefaultManagerConfig() ManagerConfig {
	return ManagerConfig{
		Surface:     Surface{Width: 1280, Height: 720, DPI: 96},
		TargetFPS:   60,
		Breakpoints: tw.GetBreakpoints(),
	}
}

// Manager owns the screen stack, the surface and the shared resources.
// Tick, Dispatch and Render must be called from one goroutine; Post may be
// called from any goroutine while Run is active.
type Manager struct {
	surface     Surface
	resources   ResourceProvider
	logger      *log.Logger
	debug       bool
	fps         int
	breakpoints tw.BreakpointConfig

	stack  []Screen
	focus  Element
	ctx    Context
	frames uint64
	events chan Event
}

// Context is the handle screens receive in Update. It stays valid for the
// lifetime of the Manager that issued it.
type Context struct {
	m *Manager
}

// Surface returns the current rendering surface.
func (c *Context) Surface() Surface { return c.m.surface }

// Resources returns the shared resource provider, possibly nil.
func (c *Context) Resources() ResourceProvider { return c.m.resources }

// PushScreen puts s on top of the stack. It does not finish the caller.
func (c *Context) PushScreen(s Screen) { c.m.PushScreen(s) }

// Top returns the active screen, or nil.
func (c *Context) Top() Screen { return c.m.Top() }

// Logger returns the manager's logger.
func (c *Context) Logger() *log.Logger { return c.m.logger }

// NewManager creates a Manager with an empty screen stack.
func NewManager(cfg ManagerConfig) *Manager {
	def := DefaultManagerConfig()
	if !cfg.Surface.Valid() {
		cfg.Surface = def.Surface
	}
	if cfg.TargetFPS <= 0 {
		cfg.TargetFPS = def.TargetFPS
	}
	if cfg.Breakpoints == (tw.BreakpointConfig{}) {
		cfg.Breakpoints = def.Breakpoints
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	m := &Manager{
		surface:     cfg.Surface,
		resources:   cfg.Resources,
		logger:      cfg.Logger,
		debug:       cfg.Debug,
		fps:         cfg.TargetFPS,
		breakpoints: cfg.Breakpoints,
		events:      make(chan Event, 64),
	}
	m.ctx.m = m
	return m
}

// Surface returns the current rendering surface.
func (m *Manager) Surface() Surface { return m.surface }

// SetSurface changes the rendering surface and lays out the top screen again.
func (m *Manager) SetSurface(s Surface) {
	if !s.Valid() {
		return
	}
	m.surface = s
	m.Layout()
}

// Resources returns the shared resource provider, possibly nil.
func (m *Manager) Resources() ResourceProvider { return m.resources }

// Context returns the handle passed to screens.
func (m *Manager) Context() *Context { return &m.ctx }

// Frames returns the number of ticks run so far.
func (m *Manager) Frames() uint64 { return m.frames }

// PushScreen puts s on top of the stack, clears the focus and lays s out.
// A screen that skipped Init is bound to itself with id "screen"; its style
// is kept.
func (m *Manager) PushScreen(s Screen) {
	base := s.screen()
	if base.self == nil {
		base.self = s
		if base.id == "" {
			base.id = "screen"
		}
	}
	m.focus = nil
	m.stack = append(m.stack, s)
	m.debugf("push %s (depth %d)", base.id, len(m.stack))
	layout(s, m.surface, m.breakpoints)
}

// Top returns the active screen, or nil when the stack is empty.
func (m *Manager) Top() Screen {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// Screens returns the stack, bottom first. The slice is shared.
func (m *Manager) Screens() []Screen { return m.stack }

// Tick advances the top screen by delta, runs its Update, drops finished
// screens and lays out the new top. It reports whether any screen remains.
func (m *Manager) Tick(delta time.Duration) bool {
	top := m.Top()
	if top == nil {
		return false
	}
	m.frames++

	base := top.screen()
	base.advance(delta)
	if !base.finished {
		top.Update(&m.ctx)
	}

	m.dropFinished()
	m.Layout()
	return len(m.stack) > 0
}

// dropFinished removes every finished screen, keeping the order of the rest.
func (m *Manager) dropFinished() {
	kept := m.stack[:0]
	for _, s := range m.stack {
		base := s.screen()
		if !base.finished {
			kept = append(kept, s)
			continue
		}
		m.debugf("pop %s after %v", base.id, base.elapsed)
		if m.focus != nil && belongsTo(m.focus, s) {
			m.focus = nil
		}
	}
	clear(m.stack[len(kept):])
	m.stack = kept
}

// Layout lays out the top screen for the current surface.
func (m *Manager) Layout() {
	if top := m.Top(); top != nil {
		layout(top, m.surface, m.breakpoints)
	}
}

// Render submits the draw commands of the top screen.
func (m *Manager) Render(buf CommandBuffer) {
	if top := m.Top(); top != nil {
		Render(top, m.surface, buf)
	}
}

// Post queues ev for the running frame loop. It drops the event and returns
// false when the queue is full.
func (m *Manager) Post(ev Event) bool {
	select {
	case m.events <- ev:
		return true
	default:
		return false
	}
}

// Run drives the frame loop at the target FPS until the stack is empty or
// ctx is done. Posted events are dispatched before each tick.
func (m *Manager) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(m.fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-m.events:
			if _, err := m.Dispatch(ev); err != nil {
				return nil
			}
		case now := <-ticker.C:
			delta := now.Sub(last)
			last = now
			if !m.Tick(delta) {
				return nil
			}
		}
	}
}

func (m *Manager) debugf(format string, args ...any) {
	if m.debug {
		m.logger.Printf("[ui] "+format, args...)
	}
}

// belongsTo reports whether el is root or one of its descendants.
func belongsTo(el, root Element) bool {
	target := root.Base()
	for w := el.Base(); w != nil; {
		if w == target {
			return true
		}
		if w.parent == nil {
			return false
		}
		w = &w.parent.Widget
	}
	return false
}
