package battleship

import (
	"errors"

	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

type placementRules struct {
	strictLength bool
}

type PlacementOption func(*placementRules)

// WithStrictLength also rejects ships whose cell count
// does not match the length of their kind.
func WithStrictLength() PlacementOption {
	return func(r *placementRules) {
		r.strictLength = true
	}
}

// PlaceShip decides whether candidate may be added to board.
// The board is only read. On success the returned ship is the
// candidate tied to the board, ready to be stored; otherwise
// the error is a *cerr.PlacementError. A candidate with an
// endpoint off the board is rejected as ShipOutOfBounds.
//
// Existing ships are checked in board order and the first
// rejection wins. For a single ship the duplicate check runs
// before the collision check.
func PlaceShip(board Board, candidate Ship, opts ...PlacementOption) (Ship, error) {
	var rules placementRules
	for _, opt := range opts {
		opt(&rules)
	}

	candidateCells, err := candidate.Cells()
	if err != nil {
		return Ship{}, err
	}

	if rules.strictLength && candidateCells.Len() != candidate.Kind.Length() {
		return Ship{}, cerr.ErrShipLengthMismatch(candidate.Kind.String(), candidate.Kind.Length(), candidateCells.Len())
	}

	for _, existing := range board.Ships {
		if existing.SamePlacement(candidate) {
			return Ship{}, cerr.ErrShipAlreadyExists(
				candidate.Kind.String(), candidate.Start.X, candidate.Start.Y, candidate.End.X, candidate.End.Y,
			)
		}

		existingCells, err := existing.Cells()
		if err != nil {
			// stored ship that could never have been accepted, the board is corrupt
			return Ship{}, onBoard(err)
		}

		if DetectCollision(candidateCells, existingCells) {
			return Ship{}, cerr.ErrShipCollision(existing.Id, existing.Kind.String())
		}
	}

	accepted := candidate
	accepted.BoardId = board.Id
	return accepted, nil
}

// onBoard reports a rejection caused by a stored ship
// against the board rather than the candidate.
func onBoard(err error) error {
	var perr *cerr.PlacementError
	if !errors.As(err, &perr) {
		return err
	}
	rejection := *perr
	rejection.Field = "board"
	return &rejection
}
