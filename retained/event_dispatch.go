package retained

import "slices"

// Dispatch routes ev into the top screen and reports whether a handler ran.
//
// Mouse events go to the deepest widget under the pointer and bubble up
// through its parents until a handler takes them. A wheel event nobody
// handles scrolls the nearest scrolling ancestor of the target. Key events
// go to the focused widget, or the screen itself, and bubble the same way.
// A focused widget that left the top screen loses the focus.
func (m *Manager) Dispatch(ev Event) (bool, error) {
	top := m.Top()
	if top == nil {
		return false, ErrNoScreen
	}

	var handled bool
	switch e := ev.(type) {
	case *MouseEvent:
		handled = bubble(HitTest(top, m.surface, e.X, e.Y), ev)
	case *MouseWheelEvent:
		chain := HitTest(top, m.surface, e.X, e.Y)
		handled = bubble(chain, ev)
		if !handled {
			handled = m.defaultScroll(chain, e)
		}
	case *KeyEvent:
		target := m.focus
		if target == nil || !belongsTo(target, top) {
			m.focus = nil
			target = top
		}
		handled = bubble(ancestors(target), ev)
	}

	if !handled {
		m.debugf("unhandled %s", ev.Type())
	}
	return handled, nil
}

// SetFocus directs key events to the widget with id in the top screen.
// An empty id clears the focus. It reports whether the widget was found.
func (m *Manager) SetFocus(id string) bool {
	if id == "" {
		m.focus = nil
		return true
	}
	top := m.Top()
	if top == nil {
		return false
	}
	el := top.Find(id)
	if el == nil {
		return false
	}
	m.focus = el
	return true
}

// Focus returns the focused widget, or nil when nothing in the top screen
// has the focus.
func (m *Manager) Focus() Element {
	if m.focus == nil {
		return nil
	}
	if top := m.Top(); top == nil || !belongsTo(m.focus, top) {
		return nil
	}
	return m.focus
}

// HitTest returns the chain from root to the deepest element whose padding
// box contains the pixel (x, y). Later children are tested first since they
// paint on top. It returns nil when the point misses root.
func HitTest(root Element, s Surface, x, y float32) []Element {
	if root == nil || !s.Valid() {
		return nil
	}
	chain := make([]Element, 0, 8)
	if !hitTest(root, s, 0, 0, x, y, &chain) {
		return nil
	}
	return chain
}

func hitTest(el Element, s Surface, ox, oy, x, y float32, chain *[]Element) bool {
	b := el.Base()
	cx := ox + b.OffsetLeft()
	cy := oy + b.OffsetTop()
	if !paddingRect(b, s, cx, cy).Contains(x, y) {
		return false
	}
	*chain = append(*chain, el)

	if o, ok := el.(owner); ok {
		children := o.container().children
		for i := len(children) - 1; i >= 0; i-- {
			if hitTest(children[i], s, cx, cy, x, y, chain) {
				return true
			}
		}
	}
	return true
}

// bubble offers ev to the chain from the deepest element upward.
func bubble(chain []Element, ev Event) bool {
	for i := len(chain) - 1; i >= 0; i-- {
		if chain[i].Handle(ev) {
			return true
		}
	}
	return false
}

// ancestors returns the chain from the root down to el.
func ancestors(el Element) []Element {
	var chain []Element
	for cur := el; cur != nil; {
		chain = append(chain, cur)
		p := cur.Base().parent
		if p == nil {
			break
		}
		cur = p.element()
	}
	slices.Reverse(chain)
	return chain
}

// defaultScroll scrolls the nearest ancestor that can move. Wheel deltas
// are in pixels; positive DeltaY moves the content up.
func (m *Manager) defaultScroll(chain []Element, e *MouseWheelEvent) bool {
	dx := e.DeltaX / m.surface.Width
	dy := e.DeltaY / m.surface.Height
	for i := len(chain) - 1; i >= 0; i-- {
		o, ok := chain[i].(owner)
		if !ok {
			continue
		}
		if o.container().ScrollBy(dx, dy) {
			return true
		}
	}
	return false
}
