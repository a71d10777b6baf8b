package transport

import (
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"roguelike3d/pkg/game/generator"
)

func dial(t *testing.T) *websocket.Conn {
	t.Helper()
	cfg := generator.DefaultConfig()
	cfg.TargetRooms = 3
	cfg.CorridorPolicy = generator.CorridorSkip
	s := NewServer(generator.MustNew(cfg, nil), log.New(io.Discard, "", 0))

	srv := httptest.NewServer(s.Handler())
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestServer_Generate(t *testing.T) {
	conn := dial(t)
	if err := conn.WriteJSON(Request{Type: TypeGenerate, Seed: 77}); err != nil {
		t.Fatal(err)
	}
	var got DungeonMsg
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Type != TypeDungeon || got.Seed != 77 {
		t.Fatalf("got %s for seed %d, want DUNGEON for 77", got.Type, got.Seed)
	}
	if len(got.Batches) == 0 || len(got.Batches[0].Instances) == 0 {
		t.Error("no render batches")
	}

	cfg := generator.DefaultConfig()
	cfg.TargetRooms = 3
	cfg.CorridorPolicy = generator.CorridorSkip
	want := generator.MustNew(cfg, nil).Generate(77)
	if got.Digest != want.Digest() || got.Spawn != want.Spawn {
		t.Errorf("served dungeon differs from a local generation of the same seed")
	}
}

func TestServer_RejectsUnknownMessages(t *testing.T) {
	conn := dial(t)
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"HELLO"}`)); err != nil {
		t.Fatal(err)
	}
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatal(err)
	}
	var msg ErrorMsg
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != TypeError {
		t.Errorf("got %s, want ERROR", msg.Type)
	}

	if err := conn.WriteJSON(Request{Type: TypeGenerate, Seed: 1}); err != nil {
		t.Fatal(err)
	}
	var d DungeonMsg
	if err := conn.ReadJSON(&d); err != nil || d.Type != TypeDungeon {
		t.Errorf("connection unusable after an error: %v %s", err, d.Type)
	}
}
