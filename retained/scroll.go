package retained

// ScrollBy moves the scroll position by dx, dy in content units (surface
// fractions). Axes that do not scroll, or whose content fits the viewport,
// are left alone. It reports whether either offset changed.
func (c *WidgetContainer) ScrollBy(dx, dy float32) bool {
	h, v := c.scrollHOffset, c.scrollVOffset
	if c.scrollH && dx != 0 {
		if rng := c.compWidth - c.vertWidth; rng > 0 {
			h = clampUnit(h + dx/rng)
		}
	}
	if c.scrollV && dy != 0 {
		if rng := c.compHeight - c.vertHeight; rng > 0 {
			v = clampUnit(v + dy/rng)
		}
	}
	changed := h != c.scrollHOffset || v != c.scrollVOffset
	c.scrollHOffset, c.scrollVOffset = h, v
	return changed
}

// ScrollIntoView adjusts the vertical scroll position so that child's margin
// box is inside the viewport, keeping padding of free space where possible.
// It reports whether the offset changed.
func (c *WidgetContainer) ScrollIntoView(child Element, s Surface, padding float32) bool {
	b := child.Base()
	if b.parent != c || !c.scrollV {
		return false
	}
	rng := c.compHeight - c.vertHeight
	if rng <= 0 {
		return false
	}

	above, below := b.outsetY(s)
	top := b.vertTop - above
	bottom := b.vertTop + b.vertHeight + below

	current := c.scrollVOffset * rng
	visibleTop := current + padding
	visibleBottom := current + c.vertHeight - padding

	if top >= visibleTop && bottom <= visibleBottom {
		return false
	}

	var target float32
	if bottom > visibleBottom {
		target = bottom - c.vertHeight + padding
		// Never push the top out of view.
		if maxTarget := top - padding; target > maxTarget {
			target = maxTarget
		}
	} else {
		target = top - padding
	}

	next := clampUnit(target / rng)
	if next == c.scrollVOffset {
		return false
	}
	c.scrollVOffset = next
	return true
}
