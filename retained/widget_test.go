package retained

import (
	"errors"
	"testing"
)

func TestBoxModelWithoutStyle(t *testing.T) {
	w := NewWidget("plain")
	w.SetContentSize(0.3, 0.2)

	if got := w.PaddingWidth(hd); got != w.ContentWidth() {
		t.Errorf("PaddingWidth = %v, want %v", got, w.ContentWidth())
	}
	if got := w.BorderWidth(hd); got != w.ContentWidth() {
		t.Errorf("BorderWidth = %v, want %v", got, w.ContentWidth())
	}
	if got := w.MarginWidth(hd); got != w.ContentWidth() {
		t.Errorf("MarginWidth = %v, want %v", got, w.ContentWidth())
	}
	if got := w.MarginHeight(hd); got != w.ContentHeight() {
		t.Errorf("MarginHeight = %v, want %v", got, w.ContentHeight())
	}
}

func TestBoxModelAdditivity(t *testing.T) {
	tests := []struct {
		name                    string
		padding, border, margin Edges
	}{
		{
			name:    "padding only",
			padding: Uniform(Px(20)),
		},
		{
			name:    "mixed units",
			padding: Symmetric(Px(8), Pct(5)),
			border:  Uniform(Px(2)),
			margin:  Edges{Top: In(0.5), Right: Cm(1), Bottom: Mm(4), Left: Pct(10)},
		},
		{
			name:   "margin without padding",
			margin: Symmetric(Pct(2), Px(30)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWidget("w")
			w.Style.Padding = tt.padding
			w.Style.Border = tt.border
			w.Style.Margin = tt.margin
			w.SetContentSize(0.4, 0.25)

			checks := []struct {
				name      string
				got, want float32
			}{
				{"padding x", w.PaddingWidth(hd) - w.ContentWidth(), hd.ResolveX(tt.padding.Left) + hd.ResolveX(tt.padding.Right)},
				{"border x", w.BorderWidth(hd) - w.ContentWidth(), hd.ResolveX(tt.border.Left) + hd.ResolveX(tt.border.Right)},
				{"margin x", w.MarginWidth(hd) - w.ContentWidth(), hd.ResolveX(tt.margin.Left) + hd.ResolveX(tt.margin.Right)},
				{"padding y", w.PaddingHeight(hd) - w.ContentHeight(), hd.ResolveY(tt.padding.Top) + hd.ResolveY(tt.padding.Bottom)},
				{"border y", w.BorderHeight(hd) - w.ContentHeight(), hd.ResolveY(tt.border.Top) + hd.ResolveY(tt.border.Bottom)},
				{"margin y", w.MarginHeight(hd) - w.ContentHeight(), hd.ResolveY(tt.margin.Top) + hd.ResolveY(tt.margin.Bottom)},
			}
			for _, c := range checks {
				if !approx(c.got, c.want) {
					t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
				}
			}
		})
	}
}

func TestOffsetWithoutParent(t *testing.T) {
	w := NewWidget("w")
	w.SetOffsetTop(0.25)
	w.SetOffsetLeft(0.125)

	if got := w.OffsetTop(); got != 0.25 {
		t.Errorf("OffsetTop = %v, want 0.25", got)
	}
	if got := w.OffsetLeft(); got != 0.125 {
		t.Errorf("OffsetLeft = %v, want 0.125", got)
	}
}

func TestHandlerReplacement(t *testing.T) {
	w := NewWidget("button")
	var a, b int
	w.OnMouseClick(func(*MouseEvent) { a++ })
	w.OnMouseClick(func(*MouseEvent) { b++ })

	if !w.Handle(NewMouseClick(1, 1, MouseButtonLeft, 0)) {
		t.Fatal("Handle returned false with a registered handler")
	}
	if a != 0 {
		t.Errorf("first handler ran %d times, want 0", a)
	}
	if b != 1 {
		t.Errorf("second handler ran %d times, want 1", b)
	}
}

func TestHandleMissingHandler(t *testing.T) {
	w := NewWidget("w")
	var keys int
	w.OnKeyDown(func(*KeyEvent) { keys++ })

	events := []Event{
		NewMouseMove(0, 0),
		NewMouseClick(0, 0, MouseButtonLeft, 0),
		NewMouseWheel(0, 0, 0, 10),
		NewKeyUp(KeyEnter, 0, 0),
	}
	for _, ev := range events {
		if w.Handle(ev) {
			t.Errorf("Handle(%s) = true, want false", ev.Type())
		}
	}
	if keys != 0 {
		t.Errorf("key-down handler ran %d times, want 0", keys)
	}
}

func TestHandlerReceivesPayload(t *testing.T) {
	w := NewWidget("w")
	var got *KeyEvent
	w.OnKeyDown(func(e *KeyEvent) { got = e })

	ev := NewKeyDown(KeyArrowDown, 40, ModShift, true)
	w.Handle(ev)

	if got != ev {
		t.Fatalf("handler got %v, want %v", got, ev)
	}
	if !got.Modifiers.Shift() || !got.Repeat {
		t.Errorf("payload = %+v, want shift and repeat", got)
	}
}

func TestFindDepthFirst(t *testing.T) {
	t.Run("outer match wins", func(t *testing.T) {
		root := NewContainer("root")
		outer, _ := NewContainerIn(root, "a")
		inner, _ := NewWidgetIn(outer, "a")
		b, _ := NewWidgetIn(outer, "b")

		if got := root.Find("a"); got != Element(outer) {
			t.Errorf("Find(a) = %p, want outer %p (inner %p)", got, outer, inner)
		}
		if got := root.Find("b"); got != Element(b) {
			t.Errorf("Find(b) = %v, want %v", got, b)
		}
		if got := root.Find("missing"); got != nil {
			t.Errorf("Find(missing) = %v, want nil", got)
		}
	})

	t.Run("earlier subtree before later sibling", func(t *testing.T) {
		root := NewContainer("root")
		x, _ := NewContainerIn(root, "x")
		deep, _ := NewWidgetIn(x, "a")
		NewWidgetIn(root, "a")

		if got := root.Find("a"); got != Element(deep) {
			t.Errorf("Find(a) = %v, want the child of x", got)
		}
	})

	t.Run("returns concrete type", func(t *testing.T) {
		root := NewContainer("root")
		NewImageIn(root, "logo", nil)

		if _, ok := root.Find("logo").(*WidgetImage); !ok {
			t.Errorf("Find(logo) = %T, want *WidgetImage", root.Find("logo"))
		}
		if _, ok := root.Find("root").(*WidgetContainer); !ok {
			t.Errorf("Find(root) = %T, want *WidgetContainer", root.Find("root"))
		}
	})
}

func TestAttachRequiresContainer(t *testing.T) {
	parents := []Element{
		NewWidget("leaf"),
		NewText("label", nil, "hi"),
		NewImage("img", nil),
	}
	for _, p := range parents {
		if _, err := NewWidgetIn(p, "child"); !errors.Is(err, ErrInvalidParent) {
			t.Errorf("NewWidgetIn(%T) error = %v, want ErrInvalidParent", p, err)
		}
	}
}

func TestAttachTwice(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	w, err := NewWidgetIn(a, "w")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddElement(w); !errors.Is(err, ErrAlreadyAttached) {
		t.Errorf("AddElement error = %v, want ErrAlreadyAttached", err)
	}
	if w.Parent() != a {
		t.Errorf("Parent = %v, want a", w.Parent())
	}
}

func TestAttachCycle(t *testing.T) {
	root := NewContainer("root")
	child, _ := NewContainerIn(root, "child")

	if err := child.AddElement(root); !errors.Is(err, ErrInvalidParent) {
		t.Errorf("AddElement(ancestor) error = %v, want ErrInvalidParent", err)
	}
	if err := root.AddElement(root); !errors.Is(err, ErrInvalidParent) {
		t.Errorf("AddElement(self) error = %v, want ErrInvalidParent", err)
	}
}

func TestRemoveElement(t *testing.T) {
	root := NewContainer("root")
	a, _ := NewWidgetIn(root, "a")
	b, _ := NewWidgetIn(root, "b")

	if !root.RemoveElement(a) {
		t.Fatal("RemoveElement(a) = false")
	}
	if a.Parent() != nil {
		t.Error("removed widget kept its parent")
	}
	if root.Len() != 1 || root.Elements()[0] != Element(b) {
		t.Errorf("Elements = %v, want [b]", root.Elements())
	}
	if root.RemoveElement(a) {
		t.Error("RemoveElement of a detached widget = true")
	}
	if err := root.AddElement(a); err != nil {
		t.Errorf("re-adding removed widget: %v", err)
	}
}
