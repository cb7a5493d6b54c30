package retained

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParent is returned when a widget is attached to a parent that
	// cannot own children.
	ErrInvalidParent = errors.New("retained: parent is not a container")

	// ErrAlreadyAttached is returned when a widget that already has a parent
	// is added to another container.
	ErrAlreadyAttached = errors.New("retained: widget already has a parent")

	// ErrNoScreen is returned when events are dispatched with an empty screen stack.
	ErrNoScreen = errors.New("retained: no active screen")

	// ErrInvalidLength is returned for length literals that cannot be parsed.
	ErrInvalidLength = errors.New("retained: invalid length")
)

// UnitError is the panic value raised when a Length carries a kind the
// resolver does not implement. It indicates a style authoring defect.
type UnitError struct {
	Kind LengthKind
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("retained: unimplemented length unit %d", uint8(e.Kind))
}
