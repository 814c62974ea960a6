package api

import (
	"encoding/json"
	"net/http"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
	mc "github.com/saeidalz13/battleship-placement/models/connection"
)

// POST /games
func (s *Server) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	game, err := s.createGame(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, game)
}

// GET /games/{gameId}
func (s *Server) HandleGetGame(w http.ResponseWriter, r *http.Request) {
	game, err := s.getGame(r.Context(), r.PathValue("gameId"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

// PUT /games/{gameId}/boards/{boardId}
func (s *Server) HandlePlaceShipInGame(w http.ResponseWriter, r *http.Request) {
	game, err := s.games.GetGame(r.Context(), r.PathValue("gameId"))
	if err != nil {
		writeErr(w, err)
		return
	}

	boardId := r.PathValue("boardId")
	if !game.HasBoard(boardId) {
		writeErr(w, cerr.ErrBoardNotExists(boardId))
		return
	}

	var req mc.ReqShip
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, NewFieldError("ship", cerr.ErrNilPayload()))
		return
	}

	board, err := s.placeShip(r.Context(), boardId, req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mc.NewRespBoard(board))
}
