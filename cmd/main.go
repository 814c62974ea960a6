package main

import (
	"context"
	"log"
	"net/http"

	"github.com/saeidalz13/battleship-placement/api"
	"github.com/saeidalz13/battleship-placement/db"
	"github.com/saeidalz13/battleship-placement/db/sqlc"
	"github.com/saeidalz13/battleship-placement/internal/config"
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
	mc "github.com/saeidalz13/battleship-placement/models/connection"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	sessionManager := mc.NewBattleshipSessionManager(cfg.SessionCleanupInterval)
	opts := []api.Option{
		api.WithPort(cfg.Port),
		api.WithStage(cfg.Stage),
		api.WithStrictShipLength(cfg.StrictShipLength),
		api.WithSessionManager(sessionManager),
	}

	var boards mb.BoardManager
	if cfg.UsesDatabase() {
		psqlDb := db.MustConnectToDb(cfg.DatabaseURL, cfg.MigrationDir)
		defer psqlDb.Close()

		dbManager := sqlc.NewDbManager(psqlDb)
		boards = dbManager.Boards
		opts = append(opts, api.WithGameManager(dbManager.Games), api.WithAnalytics(dbManager.Analytics))
	} else {
		log.Println("DATABASE_URL not set, boards are kept in memory")
		boards = mb.NewBattleshipBoardManager()
	}

	server := api.NewServer(boards, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sessionManager.CleanupPeriodically(ctx)

	log.Printf("Listening to port %d\n", cfg.Port)
	log.Fatalln(http.ListenAndServe(server.Addr(), server.Routes()))
}
