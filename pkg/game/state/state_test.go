package state

import (
	"testing"

	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/generator"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	cfg := generator.DefaultConfig()
	cfg.TargetRooms = 3
	cfg.CorridorPolicy = generator.CorridorSkip
	return NewSession(generator.MustNew(cfg, nil), 21)
}

func TestNewSession_CursorOnSpawn(t *testing.T) {
	s := newTestSession(t)
	if s.Cursor != s.Dungeon.Spawn {
		t.Errorf("Cursor = %v, want spawn %v", s.Cursor, s.Dungeon.Spawn)
	}
	if s.Dungeon.SpawnRoom >= 0 && !s.VisitedRooms.Has(s.Dungeon.SpawnRoom) {
		t.Error("spawn room not marked visited")
	}
}

func TestMoveCursor_StaysInBounds(t *testing.T) {
	s := newTestSession(t)
	s.Cursor = world.Coordinates{}
	if s.MoveCursor(world.Coordinates{X: -1}) {
		t.Error("cursor left the dungeon")
	}
	if !s.MoveCursor(world.Coordinates{X: 1}) || s.Cursor.X != 1 {
		t.Errorf("Cursor = %v after moving east, want x=1", s.Cursor)
	}
}

func TestAddMessage_KeepsLastFive(t *testing.T) {
	s := &Session{}
	for _, m := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		s.AddMessage(m)
	}
	if len(s.Messages) != 5 || s.Messages[0] != "c" || s.Messages[4] != "g" {
		t.Errorf("Messages = %v, want [c d e f g]", s.Messages)
	}
	s.ClearMessages()
	if len(s.Messages) != 0 {
		t.Error("ClearMessages left messages")
	}
}
