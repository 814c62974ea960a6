package sqlc

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-placement/internal/error"
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
)

// GameStore keeps games in postgres. A game's boards are
// created in the same transaction as the game itself.
type GameStore struct {
	db      *sql.DB
	queries *Queries
}

var _ mb.GameManager = (*GameStore)(nil)

func NewGameStore(db *sql.DB, queries *Queries) *GameStore {
	return &GameStore{db: db, queries: queries}
}

func (gs *GameStore) CreateGame(ctx context.Context) (mb.Game, error) {
	tx, err := gs.db.BeginTx(ctx, nil)
	if err != nil {
		return mb.Game{}, err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			log.Println("failed to roll back game creation:", err)
		}
	}()

	q := gs.queries.WithTx(tx)

	row, err := q.CreateGame(ctx, uuid.New())
	if err != nil {
		return mb.Game{}, err
	}

	boardIds := make([]string, 0, mb.BoardsPerGame)
	for seat := 0; seat < mb.BoardsPerGame; seat++ {
		board, err := q.CreateBoard(ctx, uuid.New())
		if err != nil {
			return mb.Game{}, err
		}

		if err := q.AddGameBoard(ctx, AddGameBoardParams{
			GameID:  row.ID,
			BoardID: board.ID,
			Seat:    int16(seat),
		}); err != nil {
			return mb.Game{}, err
		}
		boardIds = append(boardIds, board.ID.String())
	}

	if err := tx.Commit(); err != nil {
		return mb.Game{}, err
	}

	return mb.NewGame(row.ID.String(), boardIds...), nil
}

func (gs *GameStore) GetGame(ctx context.Context, gameId string) (mb.Game, error) {
	id, err := uuid.Parse(gameId)
	if err != nil {
		return mb.Game{}, cerr.ErrGameNotExists(gameId)
	}

	if _, err := gs.queries.GetGame(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mb.Game{}, cerr.ErrGameNotExists(gameId)
		}
		return mb.Game{}, err
	}

	rows, err := gs.queries.ListGameBoards(ctx, id)
	if err != nil {
		return mb.Game{}, err
	}

	boardIds := make([]string, 0, len(rows))
	for _, boardId := range rows {
		boardIds = append(boardIds, boardId.String())
	}
	return mb.NewGame(id.String(), boardIds...), nil
}
