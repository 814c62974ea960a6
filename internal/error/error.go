package error

import "fmt"

const (
	ConstErrPlacementFailed = "ship placement failed"
)

func ErrGameNotExists(gameId string) error {
	return &NotFoundError{Resource: "game", ID: gameId}
}

func ErrBoardNotExists(boardId string) error {
	return &NotFoundError{Resource: "board", ID: boardId}
}

func ErrShipNotExists(shipId int64) error {
	return &NotFoundError{Resource: "ship", ID: fmt.Sprintf("%d", shipId)}
}

func ErrNilPayload() error {
	return fmt.Errorf("the payload is nil or could not be decoded")
}

func ErrInvalidShipKind(kind string) error {
	return fmt.Errorf("ship type is not one of the known kinds:\t%q", kind)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("incoming x or y is out of board grid bound\tx: %d\ty: %d", x, y)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("invalid type of development stage: %s", stage)
}

func ErrSessionNotFound(sessionId string) error {
	return fmt.Errorf("session with this id does not exist, id: %s", sessionId)
}

// NotFoundError is returned by board managers when a lookup misses.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with this id does not exist, id: %s", e.Resource, e.ID)
}
