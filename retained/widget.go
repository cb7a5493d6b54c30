// Package retained provides the retained-mode widget tree behind the on-screen
// UI: box-model geometry resolved against a Surface, scroll-aware offsets,
// per-widget event handler tables and the Screen stack driven by a Manager.
//
// Geometry is kept in surface fractions: a Length resolves to a fraction of
// the axis it is measured along, and content boxes, offsets and box-model
// extents are stored and returned in that same space. Surface.PixelsX and
// Surface.PixelsY convert back to device pixels.
//
// The tree is single-threaded. The Manager's frame loop is the only writer.
package retained

import "github.com/agiangrant/nucleus/tw"

// Element is implemented by every node of the widget tree. Concrete widgets
// embed Widget (or WidgetContainer) and inherit these methods.
type Element interface {
	// Base returns the embedded Widget.
	Base() *Widget

	// Find returns the first element in this subtree whose id matches,
	// depth-first in insertion order, or nil.
	Find(id string) Element

	// Handle dispatches ev to the handler registered for its type.
	// It reports whether a handler ran.
	Handle(ev Event) bool
}

// Widget is the base node of the tree.
type Widget struct {
	id    string
	Style Style

	classes  string
	computed *tw.ComputedStyles

	// Content box in surface fractions, written by the layout pass.
	vertTop, vertLeft     float32
	vertWidth, vertHeight float32

	parent *WidgetContainer
	self   Element

	handlers map[EventType]func(Event)
}

// NewWidget creates a detached widget.
func NewWidget(id string) *Widget {
	w := &Widget{}
	w.init(w, id)
	return w
}

// NewWidgetIn creates a widget and attaches it to parent.
// It fails with ErrInvalidParent when parent cannot own children.
func NewWidgetIn(parent Element, id string) (*Widget, error) {
	w := NewWidget(id)
	if err := Attach(parent, w); err != nil {
		return nil, err
	}
	return w, nil
}

// init binds the widget to the outermost value embedding it so that Find
// and parent lookups hand back the concrete type.
func (w *Widget) init(self Element, id string) {
	w.id = id
	w.Style = DefaultStyle()
	w.self = self
}

func (w *Widget) element() Element {
	if w.self != nil {
		return w.self
	}
	return w
}

// Base returns w.
func (w *Widget) Base() *Widget { return w }

// ID returns the widget identity.
func (w *Widget) ID() string { return w.id }

// Parent returns the owning container, or nil.
func (w *Widget) Parent() *WidgetContainer { return w.parent }

// Find matches the widget itself only.
func (w *Widget) Find(id string) Element {
	if w.id == id {
		return w.element()
	}
	return nil
}

// ============================================================================
// Box model
// ============================================================================

// ContentWidth returns the last width written by the layout pass.
func (w *Widget) ContentWidth() float32 { return w.vertWidth }

// ContentHeight returns the last height written by the layout pass.
func (w *Widget) ContentHeight() float32 { return w.vertHeight }

// SetContentSize writes the content box size.
func (w *Widget) SetContentSize(width, height float32) {
	w.vertWidth = width
	w.vertHeight = height
}

// PaddingWidth is the content width plus left and right padding.
func (w *Widget) PaddingWidth(s Surface) float32 {
	return w.vertWidth + s.ResolveX(w.Style.Padding.Left) + s.ResolveX(w.Style.Padding.Right)
}

// PaddingHeight is the content height plus top and bottom padding.
func (w *Widget) PaddingHeight(s Surface) float32 {
	return w.vertHeight + s.ResolveY(w.Style.Padding.Top) + s.ResolveY(w.Style.Padding.Bottom)
}

// BorderWidth is the content width plus left and right border. Padding is
// not included; each extent is added to the content box independently.
func (w *Widget) BorderWidth(s Surface) float32 {
	return w.vertWidth + s.ResolveX(w.Style.Border.Left) + s.ResolveX(w.Style.Border.Right)
}

// BorderHeight is the content height plus top and bottom border.
func (w *Widget) BorderHeight(s Surface) float32 {
	return w.vertHeight + s.ResolveY(w.Style.Border.Top) + s.ResolveY(w.Style.Border.Bottom)
}

// MarginWidth is the content width plus left and right margin.
func (w *Widget) MarginWidth(s Surface) float32 {
	return w.vertWidth + s.ResolveX(w.Style.Margin.Left) + s.ResolveX(w.Style.Margin.Right)
}

// MarginHeight is the content height plus top and bottom margin.
func (w *Widget) MarginHeight(s Surface) float32 {
	return w.vertHeight + s.ResolveY(w.Style.Margin.Top) + s.ResolveY(w.Style.Margin.Bottom)
}

// ============================================================================
// Offsets
// ============================================================================

// OffsetTop returns the top of the content box in the parent's coordinate
// space, shifted by the parent's vertical scroll position.
func (w *Widget) OffsetTop() float32 {
	var bias float32
	if c := w.parent; c != nil && c.scrollV {
		// Negative when the content is shorter than the viewport.
		bias = c.scrollVOffset * (c.compHeight - c.vertHeight)
	}
	return w.vertTop - bias
}

// OffsetLeft returns the left of the content box in the parent's coordinate
// space, shifted by the parent's horizontal scroll position.
func (w *Widget) OffsetLeft() float32 {
	var bias float32
	if c := w.parent; c != nil && c.scrollH {
		bias = c.scrollHOffset * (c.compWidth - c.vertWidth)
	}
	return w.vertLeft - bias
}

// SetOffsetTop writes the raw top position.
func (w *Widget) SetOffsetTop(v float32) { w.vertTop = v }

// SetOffsetLeft writes the raw left position.
func (w *Widget) SetOffsetLeft(v float32) { w.vertLeft = v }

// ============================================================================
// Events
// ============================================================================

// Handle runs the handler registered for ev's type. Events without a
// handler are dropped; propagation is up to the caller.
func (w *Widget) Handle(ev Event) bool {
	h := w.handlers[ev.Type()]
	if h == nil {
		return false
	}
	h(ev)
	return true
}

// HasHandler reports whether a handler is registered for t.
func (w *Widget) HasHandler(t EventType) bool {
	return w.handlers[t] != nil
}

// setHandler replaces any handler registered for t.
func (w *Widget) setHandler(t EventType, h func(Event)) {
	if w.handlers == nil {
		w.handlers = make(map[EventType]func(Event), 2)
	}
	w.handlers[t] = h
}

// OnMouseMove sets the mouse move handler, replacing any previous one.
func (w *Widget) OnMouseMove(handler MouseHandler) *Widget {
	w.setHandler(EventMouseMove, mouseAdapter(handler))
	return w
}

// OnMouseClick sets the click handler, replacing any previous one.
func (w *Widget) OnMouseClick(handler MouseHandler) *Widget {
	w.setHandler(EventMouseClick, mouseAdapter(handler))
	return w
}

// OnMouseWheel sets the wheel handler, replacing any previous one.
func (w *Widget) OnMouseWheel(handler WheelHandler) *Widget {
	w.setHandler(EventMouseWheel, func(ev Event) {
		if e, ok := ev.(*MouseWheelEvent); ok {
			handler(e)
		}
	})
	return w
}

// OnKeyDown sets the key press handler, replacing any previous one.
func (w *Widget) OnKeyDown(handler KeyHandler) *Widget {
	w.setHandler(EventKeyDown, keyAdapter(handler))
	return w
}

// OnKeyUp sets the key release handler, replacing any previous one.
func (w *Widget) OnKeyUp(handler KeyHandler) *Widget {
	w.setHandler(EventKeyUp, keyAdapter(handler))
	return w
}

func mouseAdapter(handler MouseHandler) func(Event) {
	return func(ev Event) {
		if e, ok := ev.(*MouseEvent); ok {
			handler(e)
		}
	}
}

func keyAdapter(handler KeyHandler) func(Event) {
	return func(ev Event) {
		if e, ok := ev.(*KeyEvent); ok {
			handler(e)
		}
	}
}
