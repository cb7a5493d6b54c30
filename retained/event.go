package retained

// ============================================================================
// Event Types
// ============================================================================

// EventType identifies the kind of event.
type EventType uint8

const (
	// Mouse events
	EventMouseMove EventType = iota + 1
	EventMouseClick
	EventMouseWheel

	// Keyboard events
	EventKeyDown
	EventKeyUp
)

func (t EventType) String() string {
	switch t {
	case EventMouseMove:
		return "mouse-move"
	case EventMouseClick:
		return "mouse-click"
	case EventMouseWheel:
		return "mouse-wheel"
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	default:
		return "unknown"
	}
}

// MouseButton identifies which mouse button was pressed.
type MouseButton uint8

const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
)

// Modifier keys
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper // Cmd on Mac, Win on Windows
)

func (m Modifiers) Shift() bool { return m&ModShift != 0 }
func (m Modifiers) Ctrl() bool  { return m&ModCtrl != 0 }
func (m Modifiers) Alt() bool   { return m&ModAlt != 0 }
func (m Modifiers) Super() bool { return m&ModSuper != 0 }

// Logical key names carried by KeyEvent.Key.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyPageUp     = "PageUp"
	KeyPageDown   = "PageDown"
	KeyEnter      = "Enter"
	KeyEscape     = "Escape"
)

// ============================================================================
// Event variants
// ============================================================================

// Event is one of *MouseEvent, *MouseWheelEvent or *KeyEvent. The set is
// closed: the tag returned by Type always matches the concrete payload.
type Event interface {
	Type() EventType
	event()
}

// MouseEvent carries a pointer move or click. Coordinates are surface pixels.
type MouseEvent struct {
	kind EventType

	X, Y      float32
	Button    MouseButton
	Modifiers Modifiers
}

// NewMouseMove creates a mouse move event.
func NewMouseMove(x, y float32) *MouseEvent {
	return &MouseEvent{kind: EventMouseMove, X: x, Y: y}
}

// NewMouseClick creates a mouse click event.
func NewMouseClick(x, y float32, button MouseButton, mods Modifiers) *MouseEvent {
	return &MouseEvent{kind: EventMouseClick, X: x, Y: y, Button: button, Modifiers: mods}
}

func (e *MouseEvent) Type() EventType { return e.kind }
func (e *MouseEvent) event()          {}

// MouseWheelEvent carries a scroll wheel movement at a pointer position.
type MouseWheelEvent struct {
	X, Y           float32
	DeltaX, DeltaY float32
	Modifiers      Modifiers
}

// NewMouseWheel creates a wheel event. Positive DeltaY scrolls content down.
func NewMouseWheel(x, y, dx, dy float32) *MouseWheelEvent {
	return &MouseWheelEvent{X: x, Y: y, DeltaX: dx, DeltaY: dy}
}

func (e *MouseWheelEvent) Type() EventType { return EventMouseWheel }
func (e *MouseWheelEvent) event()          {}

// KeyEvent represents keyboard events.
type KeyEvent struct {
	kind EventType

	// Physical key code (platform-specific)
	KeyCode uint32

	// Logical key (e.g., "a", "Enter", "Escape")
	Key string

	// Modifier keys held during the event
	Modifiers Modifiers

	// True if this is a repeat event (key held down)
	Repeat bool
}

// NewKeyDown creates a key press event.
func NewKeyDown(key string, code uint32, mods Modifiers, repeat bool) *KeyEvent {
	return &KeyEvent{kind: EventKeyDown, Key: key, KeyCode: code, Modifiers: mods, Repeat: repeat}
}

// NewKeyUp creates a key release event.
func NewKeyUp(key string, code uint32, mods Modifiers) *KeyEvent {
	return &KeyEvent{kind: EventKeyUp, Key: key, KeyCode: code, Modifiers: mods}
}

func (e *KeyEvent) Type() EventType { return e.kind }
func (e *KeyEvent) event()          {}

// ============================================================================
// Event Handler Types
// ============================================================================

// MouseHandler is a callback for mouse move and click events.
type MouseHandler func(*MouseEvent)

// WheelHandler is a callback for mouse wheel events.
type WheelHandler func(*MouseWheelEvent)

// KeyHandler is a callback for keyboard events.
type KeyHandler func(*KeyEvent)
