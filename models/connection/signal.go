package connection

const (
	CodeSessionID uint8 = iota
	CodeCreateBoard
	CodeGetBoard
	CodePlaceShip
	CodeSinkShip
	CodeInvalidSignal

	// if the req msg does not contain "code" field
	CodeSignalAbsent

	CodeCreateGame
	CodeGetGame
)

// Signal is the part of every incoming message that picks the
// handler. Code is nil when the field was left out.
type Signal struct {
	Code *uint8 `json:"code"`
}

func NewSignal(code uint8) Signal {
	return Signal{Code: &code}
}

func (s Signal) IsAbsent() bool {
	return s.Code == nil
}
