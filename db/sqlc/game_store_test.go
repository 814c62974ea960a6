package sqlc

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	cerr "github.com/saeidalz13/battleship-placement/internal/error"
	mb "github.com/saeidalz13/battleship-placement/models/battleship"
)

func newTestGameStore(t *testing.T) (*GameStore, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	return NewDbManager(db).Games, mock
}

func TestGameStoreCreateGame(t *testing.T) {
	gs, mock := newTestGameStore(t)
	gameId := uuid.New()
	boardIds := []uuid.UUID{uuid.New(), uuid.New()}

	mock.ExpectBegin()
	mock.ExpectQuery(createGame).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(gameId.String(), time.Now()))
	for seat, boardId := range boardIds {
		mock.ExpectQuery(createBoard).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(boardId.String(), time.Now()))
		mock.ExpectExec(addGameBoard).
			WithArgs(gameId.String(), boardId.String(), seat).
			WillReturnResult(sqlmock.NewResult(0, 1))
	}
	mock.ExpectCommit()

	game, err := gs.CreateGame(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	expected := mb.NewGame(gameId.String(), boardIds[0].String(), boardIds[1].String())
	if !reflect.DeepEqual(expected, game) {
		t.Fatalf("expected:\n%+v\ngot:\n%+v", expected, game)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}

func TestGameStoreCreateGameRollsBack(t *testing.T) {
	gs, mock := newTestGameStore(t)
	gameId := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(createGame).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(gameId.String(), time.Now()))
	mock.ExpectQuery(createBoard).
		WithArgs(sqlmock.AnyArg()).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	if _, err := gs.CreateGame(context.Background()); !errors.Is(err, sql.ErrConnDone) {
		t.Fatalf("expected err: %v\tgot: %v", sql.ErrConnDone, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}

func TestGameStoreGetGame(t *testing.T) {
	gs, mock := newTestGameStore(t)
	gameId := uuid.New()
	boardIds := []uuid.UUID{uuid.New(), uuid.New()}

	mock.ExpectQuery(getGame).
		WithArgs(gameId.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(gameId.String(), time.Now()))
	mock.ExpectQuery(listGameBoards).
		WithArgs(gameId.String()).
		WillReturnRows(sqlmock.NewRows([]string{"board_id"}).
			AddRow(boardIds[0].String()).
			AddRow(boardIds[1].String()))

	game, err := gs.GetGame(context.Background(), gameId.String())
	if err != nil {
		t.Fatal(err)
	}
	if !game.HasBoard(boardIds[0].String()) || !game.HasBoard(boardIds[1].String()) {
		t.Fatalf("unexpected game: %+v", game)
	}

	mock.ExpectQuery(getGame).
		WithArgs(gameId.String()).
		WillReturnError(sql.ErrNoRows)

	var nf *cerr.NotFoundError
	if _, err := gs.GetGame(context.Background(), gameId.String()); !errors.As(err, &nf) || nf.Resource != "game" {
		t.Fatalf("expected game not found, got: %v", err)
	}
	if _, err := gs.GetGame(context.Background(), "15"); !errors.As(err, &nf) {
		t.Fatalf("expected game not found, got: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations were not met: %v", err)
	}
}
