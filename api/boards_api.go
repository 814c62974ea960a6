package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
	mc "github.com/saeidalz13/battleship-placement/models/connection"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("failed to write response:", err)
	}
}

func writeErr(w http.ResponseWriter, err error) {
	status, respErr := toRespErr(err)
	writeJSON(w, status, mc.RespErrs{Errors: []mc.RespErr{respErr}})
}

// POST /boards
func (s *Server) HandleCreateBoard(w http.ResponseWriter, r *http.Request) {
	board, err := s.boards.CreateBoard(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mc.NewRespBoard(board))
}

// GET /boards/{boardId}
func (s *Server) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	board, err := s.boards.GetBoard(r.Context(), r.PathValue("boardId"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mc.NewRespBoard(board))
}

// PUT /boards/{boardId}
func (s *Server) HandlePlaceShip(w http.ResponseWriter, r *http.Request) {
	var req mc.ReqShip
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, NewFieldError("ship", cerr.ErrNilPayload()))
		return
	}

	board, err := s.placeShip(r.Context(), r.PathValue("boardId"), req)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mc.NewRespBoard(board))
}

// PUT /boards/{boardId}/ships/{shipId}/sunk
func (s *Server) HandleSinkShip(w http.ResponseWriter, r *http.Request) {
	shipId, err := strconv.ParseInt(r.PathValue("shipId"), 10, 64)
	if err != nil {
		writeErr(w, NewFieldError("shipId", err))
		return
	}

	ship, err := s.boards.SinkShip(r.Context(), r.PathValue("boardId"), shipId)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mc.NewRespShip(ship))
}
