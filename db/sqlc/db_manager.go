package sqlc

import (
	"database/sql"
	"time"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	Boards    *BoardStore
	Games     *GameStore
	Analytics *AnalyticsManager
}

func NewDbManager(db *sql.DB) DbManager {
	queries := New(db)

	return DbManager{
		Boards:    NewBoardStore(db, queries),
		Games:     NewGameStore(db, queries),
		Analytics: NewAnalyticsManager(queries),
	}
}
