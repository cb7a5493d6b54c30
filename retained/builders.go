package retained

import "fmt"

// Builder helpers for common widget patterns.
// They return the concrete type so calls can be chained.

// Container creates a container holding children.
// It panics if a child already has a parent.
func Container(id, classes string, children ...Element) *WidgetContainer {
	c := NewContainer(id)
	if classes != "" {
		c.SetClasses(classes)
	}
	for _, child := range children {
		mustAttach(c, child)
	}
	return c
}

// ScrollView creates a vertically scrolling container.
func ScrollView(id, classes string, children ...Element) *WidgetContainer {
	return Container(id, classes, children...).SetScroll(false, true)
}

// Box creates a leaf widget styled by classes.
func Box(id, classes string) *Widget {
	return NewWidget(id).SetClasses(classes)
}

// Label creates a text widget styled by classes.
func Label(id, classes string, font FontHandle, text string) *WidgetText {
	t := NewText(id, font, text)
	t.SetClasses(classes)
	return t
}

// Picture creates an image widget styled by classes.
func Picture(id, classes string, img ImageHandle) *WidgetImage {
	p := NewImage(id, img)
	p.SetClasses(classes)
	return p
}

func mustAttach(parent, child Element) {
	if err := Attach(parent, child); err != nil {
		panic(fmt.Sprintf("retained: attach %q to %q: %v", child.Base().ID(), parent.Base().ID(), err))
	}
}
