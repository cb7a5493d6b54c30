package retained

// CommandKind identifies a render command.
type CommandKind uint8

const (
	CommandRect CommandKind = iota + 1
	CommandImage
	CommandText
	CommandClipPush
	CommandClipPop
)

func (k CommandKind) String() string {
	switch k {
	case CommandRect:
		return "rect"
	case CommandImage:
		return "image"
	case CommandText:
		return "text"
	case CommandClipPush:
		return "clip-push"
	case CommandClipPop:
		return "clip-pop"
	default:
		return "unknown"
	}
}

// Rect is an axis-aligned rectangle in surface pixels.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.Width && y >= r.Y && y <= r.Y+r.Height
}

// Command is one draw call. Fields beyond Kind and Rect depend on Kind.
type Command struct {
	Kind CommandKind
	ID   string
	Rect Rect

	// Color has the accumulated opacity folded into its alpha.
	Color Color

	Image    ImageHandle
	Font     FontHandle
	Text     string
	FontSize float32 // pixels
}

// CommandBuffer receives the commands of one frame in paint order.
type CommandBuffer interface {
	Submit(cmd Command)
}

// DrawList is an in-memory CommandBuffer.
type DrawList struct {
	Commands []Command
}

// Submit appends cmd.
func (d *DrawList) Submit(cmd Command) {
	d.Commands = append(d.Commands, cmd)
}

// Reset drops the recorded commands, keeping capacity.
func (d *DrawList) Reset() {
	d.Commands = d.Commands[:0]
}

// Len returns the number of recorded commands.
func (d *DrawList) Len() int { return len(d.Commands) }

// Render walks root in paint order and submits its draw commands in pixel
// coordinates. Offsets include the scroll bias of scrolling parents, and
// scrolling containers clip their children to the content box.
func Render(root Element, s Surface, buf CommandBuffer) {
	if root == nil || !s.Valid() {
		return
	}
	render(root, s, 0, 0, 1, buf)
}

// render draws el whose parent content box starts at (ox, oy) in fractions.
func render(el Element, s Surface, ox, oy, opacity float32, buf CommandBuffer) {
	b := el.Base()
	opacity *= b.Style.Opacity()
	if opacity <= 0 {
		return
	}
	x := ox + b.OffsetLeft()
	y := oy + b.OffsetTop()
	st := &b.Style

	if !st.Background.IsTransparent() {
		buf.Submit(Command{
			Kind:  CommandRect,
			ID:    b.id,
			Rect:  paddingRect(b, s, x, y),
			Color: fade(st.Background, opacity),
		})
	}
	if !st.BorderColor.IsTransparent() {
		renderBorder(b, s, x, y, fade(st.BorderColor, opacity), buf)
	}

	content := s.pixelRect(x, y, b.vertWidth, b.vertHeight)
	switch w := el.(type) {
	case *WidgetImage:
		if w.image != nil {
			buf.Submit(Command{
				Kind:  CommandImage,
				ID:    b.id,
				Rect:  content,
				Color: Color{R: 1, G: 1, B: 1, A: opacity},
				Image: w.image,
			})
		}
	case *WidgetText:
		if w.text != "" {
			buf.Submit(Command{
				Kind:     CommandText,
				ID:       b.id,
				Rect:     content,
				Color:    fade(st.Foreground, opacity),
				Font:     w.font,
				Text:     w.text,
				FontSize: s.PixelsY(w.fontSize(s)),
			})
		}
	}

	o, ok := el.(owner)
	if !ok {
		return
	}
	c := o.container()
	clip := c.scrollH || c.scrollV
	if clip {
		buf.Submit(Command{Kind: CommandClipPush, ID: b.id, Rect: content})
	}
	for _, child := range c.children {
		render(child, s, x, y, opacity, buf)
	}
	if clip {
		buf.Submit(Command{Kind: CommandClipPop, ID: b.id})
	}
}

// renderBorder draws each non-empty border edge outside the padding box.
func renderBorder(b *Widget, s Surface, x, y float32, color Color, buf CommandBuffer) {
	pad := paddingRect(b, s, x, y)
	bd := b.Style.Border
	top := s.PixelsY(s.ResolveY(bd.Top))
	right := s.PixelsX(s.ResolveX(bd.Right))
	bottom := s.PixelsY(s.ResolveY(bd.Bottom))
	left := s.PixelsX(s.ResolveX(bd.Left))

	edges := [4]Rect{
		{X: pad.X - left, Y: pad.Y - top, Width: pad.Width + left + right, Height: top},
		{X: pad.X + pad.Width, Y: pad.Y, Width: right, Height: pad.Height},
		{X: pad.X - left, Y: pad.Y + pad.Height, Width: pad.Width + left + right, Height: bottom},
		{X: pad.X - left, Y: pad.Y, Width: left, Height: pad.Height},
	}
	for _, r := range edges {
		if r.Width > 0 && r.Height > 0 {
			buf.Submit(Command{Kind: CommandRect, ID: b.id, Rect: r, Color: color})
		}
	}
}

// paddingRect returns the padding box in pixels for a content box whose
// origin is (x, y) in fractions.
func paddingRect(b *Widget, s Surface, x, y float32) Rect {
	left := s.ResolveX(b.Style.Padding.Left)
	top := s.ResolveY(b.Style.Padding.Top)
	return s.pixelRect(x-left, y-top, b.PaddingWidth(s), b.PaddingHeight(s))
}

func (s Surface) pixelRect(x, y, w, h float32) Rect {
	return Rect{X: s.PixelsX(x), Y: s.PixelsY(y), Width: s.PixelsX(w), Height: s.PixelsY(h)}
}

func fade(c Color, opacity float32) Color {
	c.A *= opacity
	return c
}
