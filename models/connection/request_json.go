package connection

import (
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
)

// ReqShip is the ship a client wants placed. Type is kept as
// a string so an unknown kind can be reported against its field.
type ReqShip struct {
	Type  string   `json:"type"`
	Start mb.Point `json:"start"`
	End   mb.Point `json:"end"`
}

type ReqCreateBoard struct{}

type ReqGetBoard struct {
	BoardId string `json:"board_id"`
}

type ReqPlaceShip struct {
	BoardId string  `json:"board_id"`
	Ship    ReqShip `json:"ship"`
}

type ReqSinkShip struct {
	BoardId string `json:"board_id"`
	ShipId  int64  `json:"ship_id"`
}

type ReqCreateGame struct{}

type ReqGetGame struct {
	GameId string `json:"game_id"`
}
