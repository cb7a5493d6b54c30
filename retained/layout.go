package retained

import "github.com/agiangrant/nucleus/tw"

// Layout runs the block-flow pass over root for surface s. It writes every
// widget's content box and offsets and every container's children extent.
//
// Containers stack children top to bottom. A child's size comes from
// Style.Width and Style.Height: percentages are taken of the parent content
// box, other units resolve against the surface axis. Auto width fills the
// parent; auto height is the children extent for containers, the line box for
// text, the intrinsic or aspect-kept size for images and zero otherwise.
// Children are then aligned per the container's AlignH and AlignV.
//
// Placement nests the boxes: the space taken outside a content box is its
// margin, border and padding summed. The box-model getters keep reporting
// each extent added to the content box on its own.
func Layout(root Element, s Surface) {
	layout(root, s, tw.GetBreakpoints())
}

func layout(root Element, s Surface, bp tw.BreakpointConfig) {
	if root == nil || !s.Valid() {
		return
	}
	b := root.Base()
	styleFromClasses(root, s, bp)

	l, r := b.outsetX(s)
	t, bt := b.outsetY(s)
	b.vertLeft, b.vertTop = l, t

	w, hasW := resolveSize(b.Style.Width, s, 1, true)
	if !hasW {
		w = nonNegative(1 - l - r)
	}
	h, hasH := resolveSize(b.Style.Height, s, 1, false)
	if !hasH {
		h = nonNegative(1 - t - bt)
	}
	b.vertWidth, b.vertHeight = w, h

	if o, ok := root.(owner); ok {
		layoutContainer(o.container(), s, bp, false)
	}
}

// styleFromClasses refreshes the element's style for the surface width.
func styleFromClasses(el Element, s Surface, bp tw.BreakpointConfig) {
	props, ok := el.Base().applyClasses(s.Width, bp)
	if !ok {
		return
	}
	o, isOwner := el.(owner)
	if !isOwner {
		return
	}
	c := o.container()
	if props.OverflowX != nil {
		c.scrollH = *props.OverflowX == "scroll"
	}
	if props.OverflowY != nil {
		c.scrollV = *props.OverflowY == "scroll"
	}
}

func layoutContainer(c *WidgetContainer, s Surface, bp tw.BreakpointConfig, autoHeight bool) {
	flow(c, s, bp)
	if autoHeight {
		c.vertHeight = c.compHeight
	}
	align(c, s)
}

// flow sizes each child and stacks it below the previous one.
func flow(c *WidgetContainer, s Surface, bp tw.BreakpointConfig) {
	pw, ph := c.vertWidth, c.vertHeight
	var y, right float32

	for _, child := range c.children {
		b := child.Base()
		styleFromClasses(child, s, bp)

		l, r := b.outsetX(s)
		t, bt := b.outsetY(s)
		w, hasW := resolveSize(b.Style.Width, s, pw, true)
		h, hasH := resolveSize(b.Style.Height, s, ph, false)

		switch el := child.(type) {
		case *WidgetImage:
			w, h, hasW, hasH = imageSize(el, s, w, h, hasW, hasH)
		case *WidgetText:
			if !hasH {
				h, hasH = el.fontSize(s)*lineHeight*float32(el.lines()), true
			}
		}
		if !hasW {
			w = nonNegative(pw - l - r)
		}
		b.vertWidth, b.vertHeight = w, h

		if o, ok := child.(owner); ok {
			layoutContainer(o.container(), s, bp, !hasH)
			h = b.vertHeight
		}

		b.vertTop = y + t
		b.vertLeft = l
		y += t + h + bt
		if outer := l + w + r; outer > right {
			right = outer
		}
	}
	c.compWidth, c.compHeight = right, y
}

// align shifts the stacked children inside the container content box.
func align(c *WidgetContainer, s Surface) {
	var dy float32
	if free := c.vertHeight - c.compHeight; free > 0 {
		switch c.Style.AlignV {
		case AlignMiddle:
			dy = free / 2
		case AlignBottom:
			dy = free
		}
	}
	for _, child := range c.children {
		b := child.Base()
		b.vertTop += dy

		l, r := b.outsetX(s)
		free := c.vertWidth - (l + b.vertWidth + r)
		switch c.Style.AlignH {
		case AlignCenter:
			b.vertLeft = l + free/2
		case AlignRight:
			b.vertLeft = l + free
		}
	}
}

// imageSize fills missing dimensions from the image's intrinsic size,
// keeping its aspect ratio when one dimension is given.
func imageSize(img *WidgetImage, s Surface, w, h float32, hasW, hasH bool) (float32, float32, bool, bool) {
	iw, ih := img.intrinsic()
	if iw <= 0 || ih <= 0 || (hasW && hasH) {
		return w, h, hasW, hasH
	}
	switch {
	case hasW:
		h = s.PixelsX(w) * ih / iw / s.Height
	case hasH:
		w = s.PixelsY(h) * iw / ih / s.Width
	default:
		w, h = iw/s.Width, ih/s.Height
	}
	return w, h, true, true
}

// resolveSize turns an explicit size into a fraction of the surface axis.
// Percentages are taken of parent, the parent content extent.
func resolveSize(l Length, s Surface, parent float32, horizontal bool) (float32, bool) {
	switch l.Kind {
	case LengthUndefined:
		return 0, false
	case LengthPercent:
		return s.Resolve(l, 1) * parent, true
	}
	if horizontal {
		return s.ResolveX(l), true
	}
	return s.ResolveY(l), true
}

// outsetX returns the space left and right of the content box.
func (w *Widget) outsetX(s Surface) (left, right float32) {
	st := &w.Style
	left = s.ResolveX(st.Margin.Left) + s.ResolveX(st.Border.Left) + s.ResolveX(st.Padding.Left)
	right = s.ResolveX(st.Margin.Right) + s.ResolveX(st.Border.Right) + s.ResolveX(st.Padding.Right)
	return left, right
}

// outsetY returns the space above and below the content box.
func (w *Widget) outsetY(s Surface) (top, bottom float32) {
	st := &w.Style
	top = s.ResolveY(st.Margin.Top) + s.ResolveY(st.Border.Top) + s.ResolveY(st.Padding.Top)
	bottom = s.ResolveY(st.Margin.Bottom) + s.ResolveY(st.Border.Bottom) + s.ResolveY(st.Padding.Bottom)
	return top, bottom
}

func nonNegative(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}
