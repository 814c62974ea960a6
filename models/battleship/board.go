package battleship

import "slices"

// Board is a snapshot of a board and the ships placed on it,
// in the order they were placed.
type Board struct {
	Id    string
	Ships []Ship
}

func NewBoard(id string, ships ...Ship) Board {
	return Board{Id: id, Ships: slices.Clone(ships)}
}

// WithShip returns a new board with ship appended. The
// receiver's ships are left untouched.
func (b Board) WithShip(ship Ship) Board {
	ships := make([]Ship, 0, len(b.Ships)+1)
	ships = append(ships, b.Ships...)
	return Board{Id: b.Id, Ships: append(ships, ship)}
}

// WithShipReplaced swaps the ship carrying the same id.
func (b Board) WithShipReplaced(ship Ship) Board {
	ships := slices.Clone(b.Ships)
	for i := range ships {
		if ships[i].Id == ship.Id {
			ships[i] = ship
		}
	}
	return Board{Id: b.Id, Ships: ships}
}

func (b Board) FindShip(shipId int64) (Ship, bool) {
	for _, ship := range b.Ships {
		if ship.Id == shipId {
			return ship, true
		}
	}
	return Ship{}, false
}
