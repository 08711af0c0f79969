package room

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FloorDivisor turns a room number into its floor: 512 → 5.
const FloorDivisor = 100

// Category labels used by the default inventory.
const (
	CategorySingle = "single"
	CategoryDouble = "double"
	CategorySuite  = "suite"
)

var (
	// ErrInvalidRoom indicates a Room failed field validation.
	ErrInvalidRoom = errors.New("room: invalid room")

	// ErrDuplicateRoom indicates an ID that is already present in a Catalog.
	ErrDuplicateRoom = errors.New("room: duplicate room id")

	// ErrRoomNotFound indicates an ID that is not present in a Catalog.
	ErrRoomNotFound = errors.New("room: room not found")
)

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = validator.New()

// Room is one physical room. Only ID (and the floor derived from it) matters
// to graph construction.
type Room struct {
	ID       int     `yaml:"id" validate:"gt=0"`
	Category string  `yaml:"category" validate:"required"`
	Area     float64 `yaml:"area" validate:"gt=0"`
}

// New returns a validated Room.
func New(id int, category string, area float64) (Room, error) {
	r := Room{ID: id, Category: category, Area: area}
	if err := r.Validate(); err != nil {
		return Room{}, err
	}
	return r, nil
}

// Floor returns the floor the room sits on.
func (r Room) Floor() int { return FloorOf(r.ID) }

// Validate checks field constraints and wraps failures in ErrInvalidRoom.
func (r Room) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w %d: %v", ErrInvalidRoom, r.ID, err)
	}
	return nil
}

// FloorOf derives the floor of a room number by integer division.
func FloorOf(id int) int { return id / FloorDivisor }

// IDs extracts room numbers preserving order.
func IDs(rooms []Room) []int {
	ids := make([]int, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	return ids
}

// DefaultRooms returns the stock inventory of the demo hotel: four floors
// with gaps (no 4th or 7th floor) so that floor skipping is exercised.
func DefaultRooms() []Room {
	return []Room{
		{ID: 101, Category: CategorySingle, Area: 20.0},
		{ID: 102, Category: CategorySingle, Area: 25.0},
		{ID: 103, Category: CategorySingle, Area: 22.0},
		{ID: 104, Category: CategorySingle, Area: 21.5},

		{ID: 202, Category: CategoryDouble, Area: 40.0},
		{ID: 203, Category: CategoryDouble, Area: 38.0},
		{ID: 204, Category: CategoryDouble, Area: 42.0},

		{ID: 301, Category: CategorySingle, Area: 30.0},
		{ID: 302, Category: CategoryDouble, Area: 32.0},

		{ID: 501, Category: CategoryDouble, Area: 45.0},
		{ID: 502, Category: CategoryDouble, Area: 48.0},

		{ID: 601, Category: CategorySuite, Area: 65.0},

		{ID: 801, Category: CategorySuite, Area: 85.0},
		{ID: 888, Category: CategorySuite, Area: 120.0},
	}
}
