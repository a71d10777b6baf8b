// Package state holds the interactive dungeon browser session.
package state

import (
	"github.com/zyedidia/generic/mapset"

	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/generator"
)

// Session is the state of one browsing session
type Session struct {
	Gen     *generator.Generator
	Dungeon *generator.Dungeon
	Seed    int64

	// Cursor is the inspected tile; its Y selects the displayed layer.
	Cursor world.Coordinates

	// VisitedRooms holds the indices of rooms the cursor has entered in this dungeon.
	VisitedRooms mapset.Set[int]

	Messages []string

	Quit bool
}

// NewSession generates the dungeon for seed and places the cursor on the spawn point
func NewSession(gen *generator.Generator, seed int64) *Session {
	s := &Session{Gen: gen, Messages: make([]string, 0)}
	s.Regenerate(seed)
	return s
}

// Regenerate replaces the dungeon with the one for seed
func (s *Session) Regenerate(seed int64) {
	s.Seed = seed
	s.Dungeon = s.Gen.Generate(seed)
	s.Cursor = s.Dungeon.Spawn
	s.VisitedRooms = mapset.New[int]()
	s.markVisited()
}

// MoveCursor moves the cursor by delta if the target stays inside the dungeon.
// It reports whether the cursor moved.
func (s *Session) MoveCursor(delta world.Coordinates) bool {
	next := s.Cursor.Add(delta)
	if !s.Dungeon.Dims().Contains(next) {
		return false
	}
	s.Cursor = next
	s.markVisited()
	return true
}

func (s *Session) markVisited() {
	if idx, ok := s.Dungeon.RoomAt(s.Cursor); ok {
		s.VisitedRooms.Put(idx)
	}
}

// CursorTile returns the tile under the cursor
func (s *Session) CursorTile() world.Tile {
	return s.Dungeon.Grid.GetInOrOutOfBounds(s.Cursor)
}

// CursorRoom returns the room whose bounding box holds the cursor
func (s *Session) CursorRoom() (int, bool) {
	return s.Dungeon.RoomAt(s.Cursor)
}

// AddMessage adds a message to the session log
func (s *Session) AddMessage(msg string) {
	const maxMessages = 5
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}
