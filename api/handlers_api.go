package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/sqlc-dev/pqtype"

	"github.com/saeidalz13/battleship-placement/db/sqlc"
	cerr "github.com/saeidalz13/battleship-placement/internal/error"
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
	mc "github.com/saeidalz13/battleship-placement/models/connection"
)

// Every incoming websocket message is wrapped in a Request and
// answered with a Message carrying either a payload or an error.
type Request struct {
	Payload []byte
}

func NewRequest(payload ...[]byte) Request {
	var req Request
	if len(payload) != 0 {
		req.Payload = payload[0]
	}
	return req
}

func addError[T any](msg *mc.Message[T], err error) {
	_, respErr := toRespErr(err)
	msg.Error = &respErr
}

func decodePayload[T any](payload []byte) (T, error) {
	var req mc.Message[T]
	if err := json.Unmarshal(payload, &req); err != nil {
		return req.Payload, NewFieldError("payload", cerr.ErrNilPayload())
	}
	return req.Payload, nil
}

func (r Request) HandleCreateBoard(ctx context.Context, s *Server) mc.Message[mc.RespBoard] {
	resp := mc.NewMessage[mc.RespBoard](mc.CodeCreateBoard)

	board, err := s.boards.CreateBoard(ctx)
	if err != nil {
		addError(&resp, err)
		return resp
	}

	resp.AddPayload(mc.NewRespBoard(board))
	return resp
}

func (r Request) HandleGetBoard(ctx context.Context, s *Server) mc.Message[mc.RespBoard] {
	resp := mc.NewMessage[mc.RespBoard](mc.CodeGetBoard)

	req, err := decodePayload[mc.ReqGetBoard](r.Payload)
	if err != nil {
		addError(&resp, err)
		return resp
	}

	board, err := s.boards.GetBoard(ctx, req.BoardId)
	if err != nil {
		addError(&resp, err)
		return resp
	}

	resp.AddPayload(mc.NewRespBoard(board))
	return resp
}

func (r Request) HandlePlaceShip(ctx context.Context, s *Server) mc.Message[mc.RespBoard] {
	resp := mc.NewMessage[mc.RespBoard](mc.CodePlaceShip)

	req, err := decodePayload[mc.ReqPlaceShip](r.Payload)
	if err != nil {
		addError(&resp, err)
		return resp
	}

	board, err := s.placeShip(ctx, req.BoardId, req.Ship)
	if err != nil {
		addError(&resp, err)
		return resp
	}

	resp.AddPayload(mc.NewRespBoard(board))
	return resp
}

func (r Request) HandleSinkShip(ctx context.Context, s *Server) mc.Message[mc.RespShip] {
	resp := mc.NewMessage[mc.RespShip](mc.CodeSinkShip)

	req, err := decodePayload[mc.ReqSinkShip](r.Payload)
	if err != nil {
		addError(&resp, err)
		return resp
	}

	ship, err := s.boards.SinkShip(ctx, req.BoardId, req.ShipId)
	if err != nil {
		addError(&resp, err)
		return resp
	}

	resp.AddPayload(mc.NewRespShip(ship))
	return resp
}

func (r Request) HandleCreateGame(ctx context.Context, s *Server) mc.Message[mc.RespGame] {
	resp := mc.NewMessage[mc.RespGame](mc.CodeCreateGame)

	game, err := s.createGame(ctx)
	if err != nil {
		addError(&resp, err)
		return resp
	}

	resp.AddPayload(game)
	return resp
}

func (r Request) HandleGetGame(ctx context.Context, s *Server) mc.Message[mc.RespGame] {
	resp := mc.NewMessage[mc.RespGame](mc.CodeGetGame)

	req, err := decodePayload[mc.ReqGetGame](r.Payload)
	if err != nil {
		addError(&resp, err)
		return resp
	}

	game, err := s.getGame(ctx, req.GameId)
	if err != nil {
		addError(&resp, err)
		return resp
	}

	resp.AddPayload(game)
	return resp
}

// toCandidate checks what the placement rules take for granted:
// a known kind and both endpoints on the board.
func toCandidate(req mc.ReqShip) (mb.Ship, error) {
	kind, err := mb.ParseShipKind(req.Type)
	if err != nil {
		return mb.Ship{}, NewFieldError("type", err)
	}
	if !req.Start.IsInBounds() {
		return mb.Ship{}, NewFieldError("start", cerr.ErrXorYOutOfGridBound(req.Start.X, req.Start.Y))
	}
	if !req.End.IsInBounds() {
		return mb.Ship{}, NewFieldError("end", cerr.ErrXorYOutOfGridBound(req.End.X, req.End.Y))
	}
	return mb.NewShip(kind, req.Start, req.End), nil
}

// placeShip is shared by the REST and websocket surfaces. It
// returns the board as stored after the ship was accepted.
func (s *Server) placeShip(ctx context.Context, boardId string, req mc.ReqShip) (mb.Board, error) {
	candidate, err := toCandidate(req)
	if err != nil {
		return mb.Board{}, err
	}

	_, board, err := s.boards.PlaceShip(ctx, boardId, candidate, s.placementOpts...)
	s.recordPlacement(err)
	if err != nil {
		return mb.Board{}, err
	}

	return board, nil
}

// gameBoards loads the boards of game in seat order.
func (s *Server) gameBoards(ctx context.Context, game mb.Game) ([]mb.Board, error) {
	boards := make([]mb.Board, 0, len(game.BoardIds))
	for _, boardId := range game.BoardIds {
		board, err := s.boards.GetBoard(ctx, boardId)
		if err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	return boards, nil
}

func (s *Server) createGame(ctx context.Context) (mc.RespGame, error) {
	game, err := s.games.CreateGame(ctx)
	if err != nil {
		return mc.RespGame{}, err
	}

	// a fresh game has only empty boards
	boards := make([]mb.Board, 0, len(game.BoardIds))
	for _, boardId := range game.BoardIds {
		boards = append(boards, mb.NewBoard(boardId))
	}
	return mc.NewRespGame(game, boards), nil
}

func (s *Server) getGame(ctx context.Context, gameId string) (mc.RespGame, error) {
	game, err := s.games.GetGame(ctx, gameId)
	if err != nil {
		return mc.RespGame{}, err
	}

	boards, err := s.gameBoards(ctx, game)
	if err != nil {
		return mc.RespGame{}, err
	}
	return mc.NewRespGame(game, boards), nil
}

func (s *Server) recordPlacement(placementErr error) {
	if s.analytics == nil {
		return
	}

	var perr *cerr.PlacementError
	if placementErr != nil && !errors.As(placementErr, &perr) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()

	serverIpNet := pqtype.Inet{IPNet: s.ipnet, Valid: true}

	var err error
	if placementErr == nil {
		err = s.analytics.IncrementShipsPlacedCount(ctx, serverIpNet)
	} else {
		err = s.analytics.IncrementPlacementsRejectedCount(ctx, serverIpNet)
	}
	if err != nil {
		// for now not failing the request for it
		log.Println(err)
	}
}
