package battleship

import (
	"errors"
	"reflect"
	"testing"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

func rejection(kind cerr.RejectionKind) error {
	return &cerr.PlacementError{Kind: kind}
}

func TestPlaceShip(t *testing.T) {
	placed := Ship{Id: 1, BoardId: "board-1", Kind: ShipKindCarrier, Start: NewPoint(3, 3), End: NewPoint(7, 3)}

	tests := []struct {
		name          string
		board         Board
		candidate     Ship
		opts          []PlacementOption
		expectedErr   error
		expectedField string
	}{
		{
			name:      "empty board",
			board:     NewBoard("board-1"),
			candidate: NewShip(ShipKindBattleship, NewPoint(9, 5), NewPoint(1, 5)),
		},
		{
			name:      "no collision",
			board:     NewBoard("board-1", NewShip(ShipKindCarrier, NewPoint(0, 3), NewPoint(0, 9))),
			candidate: NewShip(ShipKindBattleship, NewPoint(4, 2), NewPoint(4, 5)),
		},
		{
			name:          "collision",
			board:         NewBoard("board-1", placed),
			candidate:     NewShip(ShipKindBattleship, NewPoint(4, 2), NewPoint(4, 5)),
			expectedErr:   rejection(cerr.RejectionShipCollision),
			expectedField: "board",
		},
		{
			name:          "duplicate",
			board:         NewBoard("board-1", NewShip(ShipKindBattleship, NewPoint(9, 5), NewPoint(1, 5))),
			candidate:     NewShip(ShipKindBattleship, NewPoint(9, 5), NewPoint(1, 5)),
			expectedErr:   rejection(cerr.RejectionShipAlreadyExists),
			expectedField: "board",
		},
		{
			name:          "same cells different kind collides",
			board:         NewBoard("board-1", NewShip(ShipKindCruiser, NewPoint(2, 2), NewPoint(2, 4))),
			candidate:     NewShip(ShipKindSubmarine, NewPoint(2, 2), NewPoint(2, 4)),
			expectedErr:   rejection(cerr.RejectionShipCollision),
			expectedField: "board",
		},
		{
			name:          "diagonal candidate",
			board:         NewBoard("board-1"),
			candidate:     NewShip(ShipKindDestroyer, NewPoint(0, 0), NewPoint(1, 1)),
			expectedErr:   rejection(cerr.RejectionInvalidShipShape),
			expectedField: "ship",
		},
		{
			name:          "corrupt stored ship",
			board:         NewBoard("board-1", NewShip(ShipKindDestroyer, NewPoint(0, 0), NewPoint(1, 1))),
			candidate:     NewShip(ShipKindDestroyer, NewPoint(5, 5), NewPoint(5, 6)),
			expectedErr:   rejection(cerr.RejectionInvalidShipShape),
			expectedField: "board",
		},
		{
			name:          "candidate off the board",
			board:         NewBoard("board-1"),
			candidate:     NewShip(ShipKindCarrier, NewPoint(8, 0), NewPoint(12, 0)),
			opts:          []PlacementOption{WithStrictLength()},
			expectedErr:   rejection(cerr.RejectionShipOutOfBounds),
			expectedField: "ship",
		},
		{
			name:          "negative start",
			board:         NewBoard("board-1"),
			candidate:     NewShip(ShipKindDestroyer, NewPoint(-1, 4), NewPoint(0, 4)),
			expectedErr:   rejection(cerr.RejectionShipOutOfBounds),
			expectedField: "ship",
		},
		{
			name:          "stored ship off the board",
			board:         NewBoard("board-1", NewShip(ShipKindDestroyer, NewPoint(9, 9), NewPoint(9, 10))),
			candidate:     NewShip(ShipKindDestroyer, NewPoint(0, 0), NewPoint(0, 1)),
			expectedErr:   rejection(cerr.RejectionShipOutOfBounds),
			expectedField: "board",
		},
		{
			name:      "adjacent ships allowed",
			board:     NewBoard("board-1", NewShip(ShipKindDestroyer, NewPoint(0, 0), NewPoint(0, 1))),
			candidate: NewShip(ShipKindDestroyer, NewPoint(1, 0), NewPoint(1, 1)),
		},
		{
			name:      "length not checked by default",
			board:     NewBoard("board-1"),
			candidate: NewShip(ShipKindCarrier, NewPoint(0, 0), NewPoint(0, 1)),
		},
		{
			name:          "strict length",
			board:         NewBoard("board-1"),
			candidate:     NewShip(ShipKindCarrier, NewPoint(0, 0), NewPoint(0, 1)),
			opts:          []PlacementOption{WithStrictLength()},
			expectedErr:   rejection(cerr.RejectionShipLengthMismatch),
			expectedField: "ship",
		},
		{
			name:      "strict length matching",
			board:     NewBoard("board-1"),
			candidate: NewShip(ShipKindCarrier, NewPoint(0, 4), NewPoint(0, 0)),
			opts:      []PlacementOption{WithStrictLength()},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			accepted, err := PlaceShip(test.board, test.candidate, test.opts...)

			if test.expectedErr == nil {
				if err != nil {
					t.Fatalf("expected placement to succeed, got: %v", err)
				}
				expected := test.candidate
				expected.BoardId = test.board.Id
				if !reflect.DeepEqual(expected, accepted) {
					t.Fatalf("expected accepted ship:\n%+v\ngot:\n%+v", expected, accepted)
				}
				return
			}

			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected err: %v\tgot: %v", test.expectedErr, err)
			}
			var perr *cerr.PlacementError
			if !errors.As(err, &perr) {
				t.Fatalf("expected a *PlacementError, got %T", err)
			}
			if perr.Field != test.expectedField {
				t.Fatalf("expected field: %s\tgot: %s", test.expectedField, perr.Field)
			}
			if !reflect.DeepEqual(Ship{}, accepted) {
				t.Fatalf("rejected placement must not return a ship, got %+v", accepted)
			}
		})
	}
}

func TestPlaceShipFirstRejectionWins(t *testing.T) {
	candidate := NewShip(ShipKindBattleship, NewPoint(4, 2), NewPoint(4, 5))
	board := NewBoard("board-1",
		Ship{Id: 1, Kind: ShipKindDestroyer, Start: NewPoint(4, 2), End: NewPoint(5, 2)},
		Ship{Id: 2, Kind: ShipKindBattleship, Start: NewPoint(4, 2), End: NewPoint(4, 5)},
	)

	_, err := PlaceShip(board, candidate)
	if !errors.Is(err, rejection(cerr.RejectionShipCollision)) {
		t.Fatalf("expected the collision with the first ship, got: %v", err)
	}

	// reversed order, the duplicate is found first
	board = NewBoard("board-1", board.Ships[1], board.Ships[0])
	_, err = PlaceShip(board, candidate)
	if !errors.Is(err, rejection(cerr.RejectionShipAlreadyExists)) {
		t.Fatalf("expected the duplicate to be reported, got: %v", err)
	}
}

func TestPlaceShipDoesNotMutateBoard(t *testing.T) {
	board := NewBoard("board-1", NewShip(ShipKindCarrier, NewPoint(0, 0), NewPoint(0, 4)))
	before := NewBoard(board.Id, board.Ships...)

	if _, err := PlaceShip(board, NewShip(ShipKindCruiser, NewPoint(2, 0), NewPoint(2, 2))); err != nil {
		t.Fatal(err)
	}
	if _, err := PlaceShip(board, NewShip(ShipKindCruiser, NewPoint(0, 0), NewPoint(2, 0))); err == nil {
		t.Fatal("expected collision")
	}

	if !reflect.DeepEqual(before, board) {
		t.Fatalf("board changed during validation:\n%+v\n%+v", before, board)
	}
}

func TestPlaceShipOrderIndependence(t *testing.T) {
	ships := []Ship{
		NewShip(ShipKindCarrier, NewPoint(0, 0), NewPoint(0, 4)),
		NewShip(ShipKindBattleship, NewPoint(2, 9), NewPoint(5, 9)),
		NewShip(ShipKindCruiser, NewPoint(9, 0), NewPoint(9, 2)),
		NewShip(ShipKindSubmarine, NewPoint(4, 4), NewPoint(6, 4)),
		NewShip(ShipKindDestroyer, NewPoint(1, 0), NewPoint(1, 1)),
	}

	place := func(order []int) map[CellIndex]ShipKind {
		board := NewBoard("board-1")
		for _, i := range order {
			accepted, err := PlaceShip(board, ships[i])
			if err != nil {
				t.Fatalf("order %v: %v", order, err)
			}
			board = board.WithShip(accepted)
		}

		occupied := make(map[CellIndex]ShipKind)
		for _, ship := range board.Ships {
			cells, _ := ship.Cells()
			for _, i := range cells.Indices() {
				occupied[i] = ship.Kind
			}
		}
		return occupied
	}

	expected := place([]int{0, 1, 2, 3, 4})
	for _, order := range [][]int{{4, 3, 2, 1, 0}, {2, 0, 4, 1, 3}, {1, 4, 0, 3, 2}} {
		if got := place(order); !reflect.DeepEqual(expected, got) {
			t.Fatalf("order %v produced a different board", order)
		}
	}
}

func TestPlaceShipRejectionIsRepeatable(t *testing.T) {
	board := NewBoard("board-1", NewShip(ShipKindCarrier, NewPoint(3, 3), NewPoint(7, 3)))
	candidate := NewShip(ShipKindBattleship, NewPoint(4, 2), NewPoint(4, 5))

	_, first := PlaceShip(board, candidate)
	_, second := PlaceShip(board, candidate)

	if first == nil || second == nil {
		t.Fatal("expected both attempts to be rejected")
	}
	if first.Error() != second.Error() {
		t.Fatalf("expected the same rejection\nfirst: %v\nsecond: %v", first, second)
	}
}

func TestBoardWithShip(t *testing.T) {
	ships := make([]Ship, 1, 4)
	ships[0] = Ship{Id: 1, Kind: ShipKindDestroyer}
	board := Board{Id: "b", Ships: ships}

	a := board.WithShip(Ship{Id: 2, Kind: ShipKindCruiser})
	b := board.WithShip(Ship{Id: 3, Kind: ShipKindCarrier})

	if len(board.Ships) != 1 {
		t.Fatalf("original board changed, ships: %d", len(board.Ships))
	}
	if a.Ships[1].Id != 2 || b.Ships[1].Id != 3 {
		t.Fatalf("boards share backing storage: %+v %+v", a.Ships, b.Ships)
	}

	sunk := a.Ships[1]
	sunk.Sunk = true
	c := a.WithShipReplaced(sunk)
	if a.Ships[1].Sunk || !c.Ships[1].Sunk {
		t.Fatal("WithShipReplaced must copy the ships")
	}

	if _, ok := c.FindShip(2); !ok {
		t.Fatal("expected to find ship 2")
	}
	if _, ok := c.FindShip(9); ok {
		t.Fatal("ship 9 does not exist")
	}
}
