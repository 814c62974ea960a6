package battleship

import "slices"

// One board per player
const BoardsPerGame = 2

// Game groups the boards of one match. Board ids are assigned
// on their own and never encode the game a board belongs to.
type Game struct {
	Id       string
	BoardIds []string
}

func NewGame(id string, boardIds ...string) Game {
	return Game{Id: id, BoardIds: slices.Clone(boardIds)}
}

func (g Game) HasBoard(boardId string) bool {
	return slices.Contains(g.BoardIds, boardId)
}
