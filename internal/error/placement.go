package error

import "fmt"

type RejectionKind uint8

const (
	RejectionInvalidShipShape RejectionKind = iota + 1
	RejectionShipAlreadyExists
	RejectionShipCollision

	// Only produced when strict length checking is turned on
	RejectionShipLengthMismatch

	RejectionShipOutOfBounds
)

func (k RejectionKind) String() string {
	switch k {
	case RejectionInvalidShipShape:
		return "InvalidShipShape"
	case RejectionShipAlreadyExists:
		return "ShipAlreadyExists"
	case RejectionShipCollision:
		return "ShipCollision"
	case RejectionShipLengthMismatch:
		return "ShipLengthMismatch"
	case RejectionShipOutOfBounds:
		return "ShipOutOfBounds"
	default:
		return "Unknown"
	}
}

// PlacementError is a rejected ship placement. Field names the part of
// the request the rejection invalidates so the transport layer can
// report it without knowing anything about the rules.
type PlacementError struct {
	Kind    RejectionKind
	Field   string
	Message string
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any PlacementError of the same kind.
func (e *PlacementError) Is(target error) bool {
	t, ok := target.(*PlacementError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func ErrInvalidShipShape(field string, startX, startY, endX, endY int) error {
	return &PlacementError{
		Kind:    RejectionInvalidShipShape,
		Field:   field,
		Message: fmt.Sprintf("start and end must share a row or a column\tstart: (%d,%d)\tend: (%d,%d)", startX, startY, endX, endY),
	}
}

func ErrShipAlreadyExists(kind string, startX, startY, endX, endY int) error {
	return &PlacementError{
		Kind:    RejectionShipAlreadyExists,
		Field:   "board",
		Message: fmt.Sprintf("%s is already placed at (%d,%d)-(%d,%d)", kind, startX, startY, endX, endY),
	}
}

func ErrShipCollision(shipId int64, kind string) error {
	return &PlacementError{
		Kind:    RejectionShipCollision,
		Field:   "board",
		Message: fmt.Sprintf("ship overlaps %s with id %d", kind, shipId),
	}
}

func ErrShipLengthMismatch(kind string, want, got int) error {
	return &PlacementError{
		Kind:    RejectionShipLengthMismatch,
		Field:   "ship",
		Message: fmt.Sprintf("%s must occupy %d cells, got %d", kind, want, got),
	}
}

func ErrShipOutOfBounds(field string, startX, startY, endX, endY int) error {
	return &PlacementError{
		Kind:    RejectionShipOutOfBounds,
		Field:   field,
		Message: fmt.Sprintf("ship leaves the board\tstart: (%d,%d)\tend: (%d,%d)", startX, startY, endX, endY),
	}
}
