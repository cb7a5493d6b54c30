package retained

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"
)

// timedScreen finishes once its elapsed time reaches after.
type timedScreen struct {
	ScreenBase
	after    time.Duration
	next     func() Screen
	finishes int
	updates  int
}

func newTimedScreen(id string, after time.Duration) *timedScreen {
	s := &timedScreen{after: after}
	s.Init(s, id)
	return s
}

func (s *timedScreen) Update(ctx *Context) {
	s.updates++
	if s.Finished() || s.Elapsed() < s.after {
		return
	}
	if s.next != nil {
		ctx.PushScreen(s.next())
	}
	s.Finish()
	s.finishes++
}

func quietManager() *Manager {
	cfg := DefaultManagerConfig()
	cfg.Logger = log.New(io.Discard, "", 0)
	cfg.Debug = true
	return NewManager(cfg)
}

func TestScreenFinishesAtThreshold(t *testing.T) {
	m := quietManager()
	s := newTimedScreen("splash", 3000*time.Millisecond)
	m.PushScreen(s)

	steps := []struct {
		delta    time.Duration
		elapsed  time.Duration
		finished bool
	}{
		{0, 0, false},
		{1000 * time.Millisecond, 1000 * time.Millisecond, false},
		{1999 * time.Millisecond, 2999 * time.Millisecond, false},
		{1 * time.Millisecond, 3000 * time.Millisecond, true},
	}
	for _, step := range steps {
		m.Tick(step.delta)
		if s.Elapsed() != step.elapsed {
			t.Fatalf("Elapsed = %v, want %v", s.Elapsed(), step.elapsed)
		}
		if s.Finished() != step.finished {
			t.Errorf("at %v: Finished = %v, want %v", s.Elapsed(), s.Finished(), step.finished)
		}
	}
	if s.finishes != 1 {
		t.Errorf("finished %d times, want 1", s.finishes)
	}
	if m.Top() != nil {
		t.Errorf("Top = %v after finish, want nil", m.Top())
	}
	if m.Tick(time.Second) {
		t.Error("Tick on an empty stack reported remaining screens")
	}
	if s.updates != 4 {
		t.Errorf("Update ran %d times, want 4", s.updates)
	}
}

func TestScreenPushesSuccessor(t *testing.T) {
	m := quietManager()
	next := newTimedScreen("main", time.Hour)
	first := newTimedScreen("logo", 10*time.Millisecond)
	first.next = func() Screen { return next }
	m.PushScreen(first)

	if !m.Tick(10 * time.Millisecond) {
		t.Fatal("Tick reported an empty stack")
	}
	if got := m.Screens(); len(got) != 1 || got[0] != Screen(next) {
		t.Fatalf("Screens = %v, want [main]", got)
	}
	if next.Elapsed() != 0 {
		t.Errorf("successor elapsed = %v, want 0 before its first tick", next.Elapsed())
	}

	m.Tick(5 * time.Millisecond)
	if next.Elapsed() != 5*time.Millisecond {
		t.Errorf("successor elapsed = %v, want 5ms", next.Elapsed())
	}
}

func TestPushDoesNotFinishPusher(t *testing.T) {
	m := quietManager()
	under := newTimedScreen("under", time.Hour)
	m.PushScreen(under)
	m.Context().PushScreen(newTimedScreen("over", time.Hour))

	if under.Finished() {
		t.Error("pushing a screen finished the one below")
	}
	if len(m.Screens()) != 2 || m.Top().Base().ID() != "over" {
		t.Errorf("stack = %v, want [under over]", m.Screens())
	}
}

func TestTickIgnoresNegativeDelta(t *testing.T) {
	m := quietManager()
	s := newTimedScreen("s", time.Hour)
	m.PushScreen(s)

	m.Tick(time.Second)
	m.Tick(-500 * time.Millisecond)
	if s.Elapsed() != time.Second {
		t.Errorf("Elapsed = %v, want 1s", s.Elapsed())
	}
}

func TestDispatchWithoutScreen(t *testing.T) {
	m := quietManager()
	if _, err := m.Dispatch(NewKeyDown(KeyEnter, 13, 0, false)); !errors.Is(err, ErrNoScreen) {
		t.Errorf("Dispatch error = %v, want ErrNoScreen", err)
	}
}

func TestNewManagerDefaults(t *testing.T) {
	m := NewManager(ManagerConfig{})
	if m.Surface() != DefaultManagerConfig().Surface {
		t.Errorf("Surface = %+v, want default", m.Surface())
	}

	m.SetSurface(Surface{Width: 0, Height: 10, DPI: 96})
	if m.Surface() != DefaultManagerConfig().Surface {
		t.Errorf("invalid surface was accepted: %+v", m.Surface())
	}
}

func TestRunUntilStackEmpty(t *testing.T) {
	cfg := DefaultManagerConfig()
	cfg.Logger = log.New(io.Discard, "", 0)
	cfg.TargetFPS = 200
	m := NewManager(cfg)
	m.PushScreen(newTimedScreen("short", 20*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.Run(ctx); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if m.Frames() == 0 {
		t.Error("Run returned without ticking")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	m := quietManager()
	m.PushScreen(newTimedScreen("forever", time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	if err := m.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run error = %v, want DeadlineExceeded", err)
	}
}

func TestRunDispatchesPostedEvents(t *testing.T) {
	m := quietManager()
	s := newTimedScreen("s", time.Hour)
	m.PushScreen(s)

	s.OnKeyDown(func(e *KeyEvent) {
		if e.Key == KeyEscape {
			s.Finish()
		}
	})
	if !m.Post(NewKeyDown(KeyEscape, 27, 0, false)) {
		t.Fatal("Post rejected the event")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := m.Run(ctx); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !s.Finished() {
		t.Error("posted Escape did not reach the screen")
	}
}

func TestPushUninitializedScreenKeepsStyle(t *testing.T) {
	m := quietManager()
	s := &timedScreen{after: time.Hour}
	blue := Color{B: 1, A: 1}
	s.Style.Background = blue
	m.PushScreen(s)

	if got := s.Base().ID(); got != "screen" {
		t.Errorf("id = %q, want screen", got)
	}
	if s.Style.Background != blue {
		t.Errorf("background = %+v, want %+v", s.Style.Background, blue)
	}
	if got := m.Top().Find("screen"); got != Element(s) {
		t.Errorf("Find(screen) = %T, want the pushed screen", got)
	}
}
