package retained

import "testing"

var small = Surface{Width: 1000, Height: 500, DPI: 96}

type fakeImage struct {
	name string
	w, h int
}

func (f fakeImage) Name() string     { return f.name }
func (f fakeImage) Size() (int, int) { return f.w, f.h }

func TestLayoutBlockFlow(t *testing.T) {
	root := NewContainer("root")
	a, _ := NewWidgetIn(root, "a")
	a.Style.Height = Px(100)
	b, _ := NewWidgetIn(root, "b")
	b.Style.Height = Pct(50)
	b.Style.Margin.Top = Px(10)

	Layout(root, small)

	tests := []struct {
		name      string
		got, want float32
	}{
		{"root width", root.ContentWidth(), 1},
		{"a top", a.OffsetTop(), 0},
		{"a height", a.ContentHeight(), 0.2},
		{"a width fills parent", a.ContentWidth(), 1},
		{"b top", b.OffsetTop(), 0.22},
		{"b height", b.ContentHeight(), 0.5},
		{"children extent", root.ComputedHeight(), 0.72},
	}
	for _, tt := range tests {
		if !approx(tt.got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLayoutAlignment(t *testing.T) {
	root := NewContainer("root")
	root.Style.AlignH = AlignCenter
	root.Style.AlignV = AlignMiddle
	child, _ := NewWidgetIn(root, "child")
	child.Style.Width = Px(200)
	child.Style.Height = Px(100)

	Layout(root, small)

	if got := child.OffsetLeft(); !approx(got, 0.4) {
		t.Errorf("left = %v, want 0.4", got)
	}
	if got := child.OffsetTop(); !approx(got, 0.4) {
		t.Errorf("top = %v, want 0.4", got)
	}

	root.Style.AlignH = AlignRight
	root.Style.AlignV = AlignBottom
	Layout(root, small)
	if got := child.OffsetLeft(); !approx(got, 0.8) {
		t.Errorf("right aligned left = %v, want 0.8", got)
	}
	if got := child.OffsetTop(); !approx(got, 0.8) {
		t.Errorf("bottom aligned top = %v, want 0.8", got)
	}
}

func TestLayoutImageAspect(t *testing.T) {
	tests := []struct {
		name          string
		width, height Length
		wantW, wantH  float32
	}{
		{"intrinsic", Length{}, Length{}, 0.2, 0.2},
		{"width only", Pct(50), Length{}, 0.5, 0.5},
		{"height only", Length{}, Px(50), 0.1, 0.1},
		{"both", Px(100), Px(100), 0.1, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewContainer("root")
			img, _ := NewImageIn(root, "logo", fakeImage{"logo", 200, 100})
			img.Style.Width = tt.width
			img.Style.Height = tt.height

			Layout(root, small)

			if got := img.ContentWidth(); !approx(got, tt.wantW) {
				t.Errorf("width = %v, want %v", got, tt.wantW)
			}
			if got := img.ContentHeight(); !approx(got, tt.wantH) {
				t.Errorf("height = %v, want %v", got, tt.wantH)
			}
		})
	}
}

func TestLayoutAutoHeight(t *testing.T) {
	root := NewContainer("root")
	inner, _ := NewContainerIn(root, "inner")
	for _, id := range []string{"x", "y"} {
		w, _ := NewWidgetIn(inner, id)
		w.Style.Height = Px(50)
	}
	text, _ := NewTextIn(root, "text", nil, "one\ntwo")

	Layout(root, small)

	if got := inner.ContentHeight(); !approx(got, 0.2) {
		t.Errorf("inner height = %v, want 0.2", got)
	}
	if got := text.OffsetTop(); !approx(got, 0.2) {
		t.Errorf("text top = %v, want 0.2", got)
	}
	// Two lines of 16px at 1.25 line height.
	if got, want := text.ContentHeight(), float32(2*16*1.25)/500; !approx(got, want) {
		t.Errorf("text height = %v, want %v", got, want)
	}
}

func TestLayoutClasses(t *testing.T) {
	root := NewContainer("root")
	box := Box("box", "p-4 w-1/2 bg-blue-500")
	list := ScrollView("list", "overflow-y-hidden")
	mustAttach(root, box)
	mustAttach(root, list)

	Layout(root, small)

	if box.Style.Padding.Left != Px(16) {
		t.Errorf("padding-left = %v, want 16px", box.Style.Padding.Left)
	}
	if !approx(box.ContentWidth(), 0.5) {
		t.Errorf("width = %v, want 0.5", box.ContentWidth())
	}
	if box.Style.Background.IsTransparent() {
		t.Error("background not applied")
	}
	if _, v := list.Scrollable(); v {
		t.Error("overflow-y-hidden left vertical scrolling on")
	}
}

func TestLayoutBreakpoint(t *testing.T) {
	root := NewContainer("root")
	box := Box("box", "p-2 md:p-8")
	mustAttach(root, box)

	Layout(root, Surface{Width: 600, Height: 400, DPI: 96})
	if box.Style.Padding.Top != Px(8) {
		t.Errorf("narrow padding = %v, want 8px", box.Style.Padding.Top)
	}

	Layout(root, Surface{Width: 1200, Height: 400, DPI: 96})
	if box.Style.Padding.Top != Px(32) {
		t.Errorf("wide padding = %v, want 32px", box.Style.Padding.Top)
	}
}

func TestLayoutInvalidSurface(t *testing.T) {
	root := NewContainer("root")
	root.SetContentSize(0.5, 0.5)
	Layout(root, Surface{})
	if root.ContentWidth() != 0.5 {
		t.Error("layout ran against an invalid surface")
	}
}
