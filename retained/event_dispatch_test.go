package retained

import (
	"testing"
	"time"
)

// menuScreen lays out two 100px rows and a scrolling list below them.
type menuScreen struct {
	ScreenBase
	rowA, rowB *Widget
	list       *WidgetContainer
}

func newMenuScreen() *menuScreen {
	s := &menuScreen{}
	s.Init(s, "menu")
	s.rowA, _ = NewWidgetIn(s, "row-a")
	s.rowA.Style.Height = Px(100)
	s.rowB, _ = NewWidgetIn(s, "row-b")
	s.rowB.Style.Height = Px(100)
	s.list, _ = NewContainerIn(s, "list")
	s.list.SetScroll(false, true)
	s.list.Style.Height = Px(100)
	for range 4 {
		item, _ := NewWidgetIn(s.list, "item")
		item.Style.Height = Px(50)
	}
	return s
}

func (s *menuScreen) Update(*Context) {}

func newMenuManager(t *testing.T) (*Manager, *menuScreen) {
	t.Helper()
	m := quietManager()
	m.SetSurface(small)
	s := newMenuScreen()
	m.PushScreen(s)
	return m, s
}

func TestHitTest(t *testing.T) {
	_, s := newMenuManager(t)

	tests := []struct {
		name   string
		x, y   float32
		wantID string
		depth  int
	}{
		{"first row", 10, 10, "row-a", 2},
		{"second row", 500, 150, "row-b", 2},
		{"list item", 10, 260, "item", 3},
		{"empty screen area", 10, 450, "menu", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := HitTest(s, small, tt.x, tt.y)
			if len(chain) != tt.depth {
				t.Fatalf("chain length = %d, want %d", len(chain), tt.depth)
			}
			if got := chain[len(chain)-1].Base().ID(); got != tt.wantID {
				t.Errorf("target = %s, want %s", got, tt.wantID)
			}
		})
	}

	if chain := HitTest(s, small, 2000, 10); chain != nil {
		t.Errorf("outside the surface hit %v", chain)
	}
}

func TestDispatchClickBubbles(t *testing.T) {
	m, s := newMenuManager(t)

	var screenClicks, rowClicks int
	s.OnMouseClick(func(*MouseEvent) { screenClicks++ })

	handled, err := m.Dispatch(NewMouseClick(10, 10, MouseButtonLeft, 0))
	if err != nil || !handled {
		t.Fatalf("Dispatch = %v, %v", handled, err)
	}
	if screenClicks != 1 {
		t.Errorf("screen got %d clicks, want 1 via bubbling", screenClicks)
	}

	s.rowA.OnMouseClick(func(*MouseEvent) { rowClicks++ })
	m.Dispatch(NewMouseClick(10, 10, MouseButtonLeft, 0))
	if rowClicks != 1 || screenClicks != 1 {
		t.Errorf("row clicks = %d, screen clicks = %d, want 1 and 1", rowClicks, screenClicks)
	}
}

func TestDispatchWheelScrollsList(t *testing.T) {
	m, s := newMenuManager(t)

	handled, _ := m.Dispatch(NewMouseWheel(10, 220, 0, 50))
	if !handled {
		t.Fatal("wheel over the list was not handled")
	}
	// 50px of a 100px scroll range.
	if _, v := s.list.ScrollOffset(); !approx(v, 0.5) {
		t.Errorf("list offset = %v, want 0.5", v)
	}

	var wheels int
	s.list.OnMouseWheel(func(*MouseWheelEvent) { wheels++ })
	m.Dispatch(NewMouseWheel(10, 220, 0, 50))
	if wheels != 1 {
		t.Errorf("wheel handler ran %d times, want 1", wheels)
	}
	if _, v := s.list.ScrollOffset(); !approx(v, 0.5) {
		t.Errorf("handled wheel still scrolled: offset = %v", v)
	}

	if handled, _ := m.Dispatch(NewMouseWheel(10, 10, 0, 50)); handled {
		t.Error("wheel over a row without scrolling ancestors reported handled")
	}
}

func TestDispatchKeysToFocus(t *testing.T) {
	m, s := newMenuManager(t)

	var screenKeys, rowKeys int
	s.OnKeyDown(func(*KeyEvent) { screenKeys++ })
	s.rowB.OnKeyDown(func(*KeyEvent) { rowKeys++ })

	m.Dispatch(NewKeyDown(KeyArrowDown, 40, 0, false))
	if screenKeys != 1 || rowKeys != 0 {
		t.Fatalf("unfocused: screen %d row %d, want 1 0", screenKeys, rowKeys)
	}

	if !m.SetFocus("row-b") {
		t.Fatal("SetFocus(row-b) = false")
	}
	m.Dispatch(NewKeyDown(KeyArrowDown, 40, 0, false))
	if rowKeys != 1 || screenKeys != 1 {
		t.Errorf("focused: screen %d row %d, want 1 1", screenKeys, rowKeys)
	}

	// Key up has no handler on the row and bubbles to the screen's table.
	if handled, _ := m.Dispatch(NewKeyUp(KeyArrowDown, 40, 0)); handled {
		t.Error("key up reported handled without handlers")
	}

	if m.SetFocus("nope") {
		t.Error("SetFocus on a missing id = true")
	}
	m.SetFocus("")
	if m.Focus() != nil {
		t.Error("SetFocus(\"\") kept the focus")
	}
}

func TestFocusClearedWithScreen(t *testing.T) {
	m, s := newMenuManager(t)
	m.SetFocus("row-a")
	s.Finish()
	m.Tick(time.Millisecond)

	if m.Focus() != nil {
		t.Error("focus survived its screen")
	}
}

func TestFocusClearedOnPush(t *testing.T) {
	m, s := newMenuManager(t)
	var rowKeys, nextKeys int
	s.rowA.OnKeyDown(func(*KeyEvent) { rowKeys++ })
	if !m.SetFocus("row-a") {
		t.Fatal("SetFocus(row-a) = false")
	}

	next := newTimedScreen("next", time.Hour)
	next.OnKeyDown(func(*KeyEvent) { nextKeys++ })
	m.PushScreen(next)

	handled, err := m.Dispatch(NewKeyDown(KeyEnter, 13, 0, false))
	if err != nil || !handled {
		t.Fatalf("Dispatch = %v, %v", handled, err)
	}
	if rowKeys != 0 || nextKeys != 1 {
		t.Errorf("covered row got %d keys, top screen got %d; want 0 and 1", rowKeys, nextKeys)
	}
	if m.Focus() != nil {
		t.Errorf("Focus = %v after push, want nil", m.Focus())
	}
}

func TestFocusOnDetachedWidget(t *testing.T) {
	m, s := newMenuManager(t)
	var rowKeys, screenKeys int
	s.rowB.OnKeyDown(func(*KeyEvent) { rowKeys++ })
	s.OnKeyDown(func(*KeyEvent) { screenKeys++ })
	m.SetFocus("row-b")

	if !s.RemoveElement(s.rowB) {
		t.Fatal("RemoveElement(row-b) = false")
	}
	if m.Focus() != nil {
		t.Error("Focus still reports the detached row")
	}
	m.Dispatch(NewKeyDown(KeyArrowDown, 40, 0, false))
	if rowKeys != 0 || screenKeys != 1 {
		t.Errorf("detached row got %d keys, screen got %d; want 0 and 1", rowKeys, screenKeys)
	}
}
