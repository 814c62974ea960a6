package sqlc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-placement/internal/error"
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
)

// BoardStore keeps boards in postgres. Ship endpoints are
// stored as cell indices.
type BoardStore struct {
	db      *sql.DB
	queries *Queries
}

var _ mb.BoardManager = (*BoardStore)(nil)

func NewBoardStore(db *sql.DB, queries *Queries) *BoardStore {
	return &BoardStore{db: db, queries: queries}
}

func (bs *BoardStore) CreateBoard(ctx context.Context) (mb.Board, error) {
	row, err := bs.queries.CreateBoard(ctx, uuid.New())
	if err != nil {
		return mb.Board{}, err
	}
	return mb.NewBoard(row.ID.String()), nil
}

func (bs *BoardStore) GetBoard(ctx context.Context, boardId string) (mb.Board, error) {
	id, err := uuid.Parse(boardId)
	if err != nil {
		return mb.Board{}, cerr.ErrBoardNotExists(boardId)
	}

	if _, err := bs.queries.GetBoard(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mb.Board{}, cerr.ErrBoardNotExists(boardId)
		}
		return mb.Board{}, err
	}

	return bs.loadBoard(ctx, bs.queries, id)
}

// PlaceShip runs the placement rules inside a transaction that
// holds the board row lock, so concurrent placements on one
// board are validated one after another.
func (bs *BoardStore) PlaceShip(ctx context.Context, boardId string, ship mb.Ship, opts ...mb.PlacementOption) (mb.Ship, mb.Board, error) {
	id, err := uuid.Parse(boardId)
	if err != nil {
		return mb.Ship{}, mb.Board{}, cerr.ErrBoardNotExists(boardId)
	}

	tx, err := bs.db.BeginTx(ctx, nil)
	if err != nil {
		return mb.Ship{}, mb.Board{}, err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			log.Println("failed to roll back placement:", err)
		}
	}()

	q := bs.queries.WithTx(tx)

	if _, err := q.LockBoard(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mb.Ship{}, mb.Board{}, cerr.ErrBoardNotExists(boardId)
		}
		return mb.Ship{}, mb.Board{}, err
	}

	board, err := bs.loadBoard(ctx, q, id)
	if err != nil {
		return mb.Ship{}, mb.Board{}, err
	}

	accepted, err := mb.PlaceShip(board, ship, opts...)
	if err != nil {
		return mb.Ship{}, mb.Board{}, err
	}

	row, err := q.CreateShip(ctx, CreateShipParams{
		Type:      accepted.Kind.String(),
		StartCell: int32(mb.ToIndex(accepted.Start)),
		EndCell:   int32(mb.ToIndex(accepted.End)),
		BoardID:   id,
	})
	if err != nil {
		return mb.Ship{}, mb.Board{}, fmt.Errorf("%s: %w", cerr.ConstErrPlacementFailed, err)
	}

	stored, err := toShip(row)
	if err != nil {
		return mb.Ship{}, mb.Board{}, err
	}

	if err := tx.Commit(); err != nil {
		return mb.Ship{}, mb.Board{}, fmt.Errorf("%s: %w", cerr.ConstErrPlacementFailed, err)
	}

	// the row lock is held until commit, so the snapshot plus the
	// new ship is exactly what is stored now
	return stored, board.WithShip(stored), nil
}

func (bs *BoardStore) SinkShip(ctx context.Context, boardId string, shipId int64) (mb.Ship, error) {
	id, err := uuid.Parse(boardId)
	if err != nil {
		return mb.Ship{}, cerr.ErrBoardNotExists(boardId)
	}

	row, err := bs.queries.SetShipSunk(ctx, SetShipSunkParams{ID: shipId, BoardID: id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mb.Ship{}, cerr.ErrShipNotExists(shipId)
		}
		return mb.Ship{}, err
	}

	return toShip(row)
}

func (bs *BoardStore) loadBoard(ctx context.Context, q *Queries, id uuid.UUID) (mb.Board, error) {
	rows, err := q.ListShipsForBoard(ctx, id)
	if err != nil {
		return mb.Board{}, err
	}

	ships := make([]mb.Ship, 0, len(rows))
	for _, row := range rows {
		ship, err := toShip(row)
		if err != nil {
			return mb.Board{}, err
		}
		ships = append(ships, ship)
	}

	return mb.Board{Id: id.String(), Ships: ships}, nil
}

func toShip(row Ship) (mb.Ship, error) {
	kind, err := mb.ParseShipKind(row.Type)
	if err != nil {
		return mb.Ship{}, fmt.Errorf("ship %d: %w", row.ID, err)
	}

	return mb.Ship{
		Id:      row.ID,
		Kind:    kind,
		Start:   mb.ToPoint(mb.CellIndex(row.StartCell)),
		End:     mb.ToPoint(mb.CellIndex(row.EndCell)),
		Sunk:    row.Sunk,
		BoardId: row.BoardID.String(),
	}, nil
}
