package connection

import (
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
)

type RespShip struct {
	Id      int64       `json:"id"`
	Type    mb.ShipKind `json:"type"`
	Start   mb.Point    `json:"start"`
	End     mb.Point    `json:"end"`
	Sunk    bool        `json:"sunk"`
	BoardId string      `json:"board_id"`
}

func NewRespShip(ship mb.Ship) RespShip {
	return RespShip{
		Id:      ship.Id,
		Type:    ship.Kind,
		Start:   ship.Start,
		End:     ship.End,
		Sunk:    ship.Sunk,
		BoardId: ship.BoardId,
	}
}

type RespBoard struct {
	Id    string     `json:"id"`
	Ships []RespShip `json:"ships"`
}

func NewRespBoard(board mb.Board) RespBoard {
	ships := make([]RespShip, 0, len(board.Ships))
	for _, ship := range board.Ships {
		ships = append(ships, NewRespShip(ship))
	}
	return RespBoard{Id: board.Id, Ships: ships}
}

// RespGame lists the boards of a game in seat order.
type RespGame struct {
	Id     string      `json:"id"`
	Boards []RespBoard `json:"boards"`
}

func NewRespGame(game mb.Game, boards []mb.Board) RespGame {
	resp := RespGame{Id: game.Id, Boards: make([]RespBoard, 0, len(boards))}
	for _, board := range boards {
		resp.Boards = append(resp.Boards, NewRespBoard(board))
	}
	return resp
}

type RespSessionId struct {
	SessionID string `json:"session_id"`
}

type RespErr struct {
	Field        string `json:"field,omitempty"`
	ErrorDetails string `json:"error_details,omitempty"`
	Message      string `json:"message,omitempty"`
}

func NewRespErr(field, errorDetails, message string) *RespErr {
	return &RespErr{
		Field:        field,
		ErrorDetails: errorDetails,
		Message:      message,
	}
}

// RespErrs is the body of a failed REST request.
type RespErrs struct {
	Errors []RespErr `json:"errors"`
}
