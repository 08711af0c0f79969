package room

import (
	"fmt"
	"sync"
)

// Catalog is an insertion-ordered room inventory guarded by a RWMutex.
type Catalog struct {
	mu    sync.RWMutex
	rooms []Room
	index map[int]int // room ID → position in rooms
}

// NewCatalog returns a catalog pre-filled with rooms. The first invalid or
// duplicate record aborts construction.
func NewCatalog(rooms ...Room) (*Catalog, error) {
	c := &Catalog{index: make(map[int]int, len(rooms))}
	for _, r := range rooms {
		if err := c.Add(r); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends a room. Invalid rooms and duplicate IDs are rejected.
func (c *Catalog) Add(r Room) error {
	if err := r.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.index[r.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateRoom, r.ID)
	}
	c.index[r.ID] = len(c.rooms)
	c.rooms = append(c.rooms, r)
	return nil
}

// Remove deletes a room, keeping the relative order of the rest.
// Complexity: O(n) for the reindex.
func (c *Catalog) Remove(id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.index[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrRoomNotFound, id)
	}
	c.rooms = append(c.rooms[:pos], c.rooms[pos+1:]...)
	delete(c.index, id)
	for i := pos; i < len(c.rooms); i++ {
		c.index[c.rooms[i].ID] = i
	}
	return nil
}

// Find returns the room with the given ID.
func (c *Catalog) Find(id int) (Room, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	pos, ok := c.index[id]
	if !ok {
		return Room{}, fmt.Errorf("%w: %d", ErrRoomNotFound, id)
	}
	return c.rooms[pos], nil
}

// Rooms returns a copy of the inventory in insertion order.
func (c *Catalog) Rooms() []Room {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

// Len reports the number of rooms.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.rooms)
}
