package retained

import "slices"

// WidgetContainer is a Widget that owns an ordered list of children and
// optional scroll state per axis.
type WidgetContainer struct {
	Widget

	children []Element

	scrollH, scrollV             bool
	scrollHOffset, scrollVOffset float32 // normalized, [0,1]

	// Extent of the laid-out children, same space as the content box.
	compWidth, compHeight float32
}

// owner is implemented by elements that can hold children.
type owner interface {
	container() *WidgetContainer
}

// NewContainer creates a detached container.
func NewContainer(id string) *WidgetContainer {
	c := &WidgetContainer{}
	c.init(c, id)
	return c
}

// NewContainerIn creates a container and attaches it to parent.
func NewContainerIn(parent Element, id string) (*WidgetContainer, error) {
	c := NewContainer(id)
	if err := Attach(parent, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *WidgetContainer) container() *WidgetContainer { return c }

// Attach appends child to parent's children. It fails with ErrInvalidParent
// when parent cannot own children and with ErrAlreadyAttached when child
// already has a parent.
func Attach(parent, child Element) error {
	o, ok := parent.(owner)
	if !ok {
		return ErrInvalidParent
	}
	return o.container().AddElement(child)
}

// AddElement appends child. Ownership moves to c.
func (c *WidgetContainer) AddElement(child Element) error {
	b := child.Base()
	if b.parent != nil {
		return ErrAlreadyAttached
	}
	if b == &c.Widget || c.hasAncestor(b) {
		return ErrInvalidParent
	}
	b.parent = c
	c.children = append(c.children, child)
	return nil
}

// hasAncestor reports whether w is c or one of c's ancestors.
func (c *WidgetContainer) hasAncestor(w *Widget) bool {
	for p := c; p != nil; p = p.parent {
		if &p.Widget == w {
			return true
		}
	}
	return false
}

// RemoveElement detaches child and reports whether it was found.
func (c *WidgetContainer) RemoveElement(child Element) bool {
	b := child.Base()
	i := slices.IndexFunc(c.children, func(e Element) bool { return e.Base() == b })
	if i < 0 {
		return false
	}
	c.children = slices.Delete(c.children, i, i+1)
	b.parent = nil
	return true
}

// Elements returns the children in insertion order. The slice is shared;
// callers must not modify it.
func (c *WidgetContainer) Elements() []Element { return c.children }

// Len returns the number of children.
func (c *WidgetContainer) Len() int { return len(c.children) }

// Find checks c first, then each child subtree in insertion order.
func (c *WidgetContainer) Find(id string) Element {
	if c.id == id {
		return c.element()
	}
	for _, child := range c.children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}

// SetScroll enables scrolling per axis. Disabling an axis keeps its offset.
func (c *WidgetContainer) SetScroll(horizontal, vertical bool) *WidgetContainer {
	c.scrollH = horizontal
	c.scrollV = vertical
	return c
}

// Scrollable reports which axes scroll.
func (c *WidgetContainer) Scrollable() (horizontal, vertical bool) {
	return c.scrollH, c.scrollV
}

// ScrollOffset returns the normalized scroll position per axis.
func (c *WidgetContainer) ScrollOffset() (h, v float32) {
	return c.scrollHOffset, c.scrollVOffset
}

// SetScrollOffset sets the normalized scroll position, clamped to [0,1].
func (c *WidgetContainer) SetScrollOffset(h, v float32) {
	c.scrollHOffset = clampUnit(h)
	c.scrollVOffset = clampUnit(v)
}

// ComputedWidth returns the horizontal extent of the children.
func (c *WidgetContainer) ComputedWidth() float32 { return c.compWidth }

// ComputedHeight returns the vertical extent of the children.
func (c *WidgetContainer) ComputedHeight() float32 { return c.compHeight }

// SetComputedSize writes the children extent. The layout pass calls it.
func (c *WidgetContainer) SetComputedSize(width, height float32) {
	c.compWidth = width
	c.compHeight = height
}

// Walk visits root and its descendants depth-first, pre-order. Returning
// false from fn skips the element's children.
func Walk(root Element, fn func(Element) bool) {
	if root == nil || !fn(root) {
		return
	}
	if o, ok := root.(owner); ok {
		for _, child := range o.container().children {
			Walk(child, fn)
		}
	}
}
