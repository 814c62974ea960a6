package battleship

import (
	"context"
	"sync"

	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

// GameManager creates games together with their boards. The
// boards are regular boards, reachable by id on their own.
type GameManager interface {
	CreateGame(ctx context.Context) (Game, error)
	GetGame(ctx context.Context, gameId string) (Game, error)
}

type BattleshipGameManager struct {
	games  map[string]Game
	mu     sync.RWMutex
	boards BoardManager
}

var _ GameManager = (*BattleshipGameManager)(nil)

func NewBattleshipGameManager(boards BoardManager) *BattleshipGameManager {
	return &BattleshipGameManager{
		games:  make(map[string]Game, 10),
		boards: boards,
	}
}

func (bgm *BattleshipGameManager) CreateGame(ctx context.Context) (Game, error) {
	boardIds := make([]string, 0, BoardsPerGame)
	for range BoardsPerGame {
		board, err := bgm.boards.CreateBoard(ctx)
		if err != nil {
			return Game{}, err
		}
		boardIds = append(boardIds, board.Id)
	}

	game := NewGame(uuid.NewString(), boardIds...)

	bgm.mu.Lock()
	bgm.games[game.Id] = game
	bgm.mu.Unlock()

	return NewGame(game.Id, game.BoardIds...), nil
}

func (bgm *BattleshipGameManager) GetGame(_ context.Context, gameId string) (Game, error) {
	bgm.mu.RLock()
	game, prs := bgm.games[gameId]
	bgm.mu.RUnlock()
	if !prs {
		return Game{}, cerr.ErrGameNotExists(gameId)
	}

	return NewGame(game.Id, game.BoardIds...), nil
}
