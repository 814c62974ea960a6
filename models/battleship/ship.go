package battleship

import (
	cerr "github.com/saeidalz13/battleship-placement/internal/error"
)

type ShipKind uint8

const (
	ShipKindUnknown ShipKind = iota
	ShipKindCarrier
	ShipKindBattleship
	ShipKindCruiser
	ShipKindSubmarine
	ShipKindDestroyer
)

var shipKindNames = map[ShipKind]string{
	ShipKindCarrier:    "CARRIER",
	ShipKindBattleship: "BATTLESHIP",
	ShipKindCruiser:    "CRUISER",
	ShipKindSubmarine:  "SUBMARINE",
	ShipKindDestroyer:  "DESTROYER",
}

var shipKindLengths = map[ShipKind]int{
	ShipKindCarrier:    5,
	ShipKindBattleship: 4,
	ShipKindCruiser:    3,
	ShipKindSubmarine:  3,
	ShipKindDestroyer:  2,
}

func ParseShipKind(name string) (ShipKind, error) {
	for kind, kindName := range shipKindNames {
		if kindName == name {
			return kind, nil
		}
	}
	return ShipKindUnknown, cerr.ErrInvalidShipKind(name)
}

func (k ShipKind) String() string {
	if name, ok := shipKindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Length is the number of cells a ship of this kind
// occupies, 0 for an unknown kind.
func (k ShipKind) Length() int {
	return shipKindLengths[k]
}

func (k ShipKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *ShipKind) UnmarshalText(text []byte) error {
	kind, err := ParseShipKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Ship is either a candidate for placement or a ship
// already placed on a board. Id and BoardId are zero
// until the ship is stored.
type Ship struct {
	Id      int64
	Kind    ShipKind
	Start   Point
	End     Point
	Sunk    bool
	BoardId string
}

func NewShip(kind ShipKind, start, end Point) Ship {
	return Ship{Kind: kind, Start: start, End: end}
}

// SamePlacement reports whether both ships are the same kind
// sitting on exactly the same endpoints.
func (sh Ship) SamePlacement(other Ship) bool {
	return sh.Kind == other.Kind && sh.Start == other.Start && sh.End == other.End
}

func (sh Ship) Cells() (CellSet, error) {
	return ShipCells(sh.Start, sh.End)
}
