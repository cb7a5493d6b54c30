package screens

import "github.com/agiangrant/nucleus/retained"

// Entry is one menu item.
type Entry struct {
	Label  string
	Action func(ctx *retained.Context)
}

const (
	itemClasses     = "px-4 py-2 mb-1 bg-gray-800"
	selectedClasses = "px-4 py-2 mb-1 bg-blue-600"
	pageSize        = 5
)

// Main is the navigable menu. Arrow keys and page keys move the selection,
// Enter runs the selected entry and a click selects the entry under the
// pointer. The list scrolls to keep the selection visible.
type Main struct {
	retained.ScreenBase

	ctx      *retained.Context
	entries  []Entry
	list     *retained.WidgetContainer
	items    []*retained.WidgetContainer
	selected int
}

// NewMain builds the menu screen. ctx must outlive the screen.
func NewMain(ctx *retained.Context, entries []Entry) *Main {
	s := &Main{ctx: ctx, entries: entries}
	s.Init(s, "main-screen")

	body := newBody(s)
	body.SetClasses("w-full h-full justify-center items-center bg-gray-900")

	font := regularFont(ctx)
	s.list = retained.ScrollView("menu", "w-1/2 h-3/4 p-2 overflow-y-scroll bg-gray-800")
	for i, e := range entries {
		item, _ := retained.NewContainerIn(s.list, "entry")
		item.SetClasses(itemClasses)
		retained.NewTextIn(item, "label", font, e.Label)
		item.OnMouseClick(func(*retained.MouseEvent) { s.Select(i) })
		s.items = append(s.items, item)
	}
	body.AddElement(s.list)

	s.OnKeyDown(s.handleKey)
	s.Select(0)
	return s
}

// Selected returns the index of the selected entry, -1 for an empty menu.
func (s *Main) Selected() int {
	if len(s.entries) == 0 {
		return -1
	}
	return s.selected
}

// List returns the scrolling menu container.
func (s *Main) List() *retained.WidgetContainer { return s.list }

// Select moves the selection to i, clamped to the entries, and scrolls it
// into view.
func (s *Main) Select(i int) {
	if len(s.items) == 0 {
		return
	}
	i = max(0, min(i, len(s.items)-1))
	s.items[s.selected].SetClasses(itemClasses)
	s.items[i].SetClasses(selectedClasses)
	s.selected = i
	s.list.ScrollIntoView(s.items[i], s.ctx.Surface(), 0)
}

// Activate runs the action of the selected entry.
func (s *Main) Activate() {
	if len(s.entries) == 0 {
		return
	}
	if action := s.entries[s.selected].Action; action != nil {
		action(s.ctx)
	}
}

func (s *Main) handleKey(e *retained.KeyEvent) {
	switch e.Key {
	case retained.KeyArrowUp:
		s.Select(s.selected - 1)
	case retained.KeyArrowDown:
		s.Select(s.selected + 1)
	case retained.KeyPageUp:
		s.Select(s.selected - pageSize)
	case retained.KeyPageDown:
		s.Select(s.selected + pageSize)
	case retained.KeyEnter:
		s.Activate()
	}
}

// Update has no time-based behavior.
func (s *Main) Update(*retained.Context) {}

func regularFont(ctx *retained.Context) retained.FontHandle {
	res := ctx.Resources()
	if res == nil {
		return nil
	}
	font, ok := res.Font(RegularFont)
	if !ok {
		return nil
	}
	return font
}
