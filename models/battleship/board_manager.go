package battleship

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

// BoardManager stores boards and their ships. PlaceShip must
// serialize placements on the same board so two requests can
// never both pass validation against the same snapshot. It
// returns the stored ship and the board as it is right after
// the ship was added.
type BoardManager interface {
	CreateBoard(ctx context.Context) (Board, error)
	GetBoard(ctx context.Context, boardId string) (Board, error)
	PlaceShip(ctx context.Context, boardId string, ship Ship, opts ...PlacementOption) (Ship, Board, error)
	SinkShip(ctx context.Context, boardId string, shipId int64) (Ship, error)
}

type boardEntry struct {
	mu    sync.Mutex
	board Board
}

// BattleshipBoardManager keeps every board in memory. Used when
// no database is configured and in tests.
type BattleshipBoardManager struct {
	boards     map[string]*boardEntry
	mu         sync.RWMutex
	lastShipId atomic.Int64
}

var _ BoardManager = (*BattleshipBoardManager)(nil)

func NewBattleshipBoardManager() *BattleshipBoardManager {
	return &BattleshipBoardManager{
		boards: make(map[string]*boardEntry, 10),
	}
}

func (bbm *BattleshipBoardManager) CreateBoard(_ context.Context) (Board, error) {
	board := NewBoard(uuid.NewString())

	bbm.mu.Lock()
	bbm.boards[board.Id] = &boardEntry{board: board}
	bbm.mu.Unlock()

	return board, nil
}

func (bbm *BattleshipBoardManager) findEntry(boardId string) (*boardEntry, error) {
	bbm.mu.RLock()
	entry, prs := bbm.boards[boardId]
	bbm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrBoardNotExists(boardId)
	}
	return entry, nil
}

func (bbm *BattleshipBoardManager) GetBoard(_ context.Context, boardId string) (Board, error) {
	entry, err := bbm.findEntry(boardId)
	if err != nil {
		return Board{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return entry.board, nil
}

func (bbm *BattleshipBoardManager) PlaceShip(_ context.Context, boardId string, ship Ship, opts ...PlacementOption) (Ship, Board, error) {
	entry, err := bbm.findEntry(boardId)
	if err != nil {
		return Ship{}, Board{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	accepted, err := PlaceShip(entry.board, ship, opts...)
	if err != nil {
		return Ship{}, Board{}, err
	}

	accepted.Id = bbm.lastShipId.Add(1)
	accepted.Sunk = false
	entry.board = entry.board.WithShip(accepted)
	return accepted, entry.board, nil
}

func (bbm *BattleshipBoardManager) SinkShip(_ context.Context, boardId string, shipId int64) (Ship, error) {
	entry, err := bbm.findEntry(boardId)
	if err != nil {
		return Ship{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	ship, found := entry.board.FindShip(shipId)
	if !found {
		return Ship{}, cerr.ErrShipNotExists(shipId)
	}

	ship.Sunk = true
	entry.board = entry.board.WithShipReplaced(ship)
	return ship, nil
}
