// Package transport serves generated dungeons to external renderers over websockets.
package transport

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"roguelike3d/pkg/engine/assert"
	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/generator"
	"roguelike3d/pkg/game/renderdata"
)

// Message types
const (
	TypeGenerate = "GENERATE"
	TypeDungeon  = "DUNGEON"
	TypeError    = "ERROR"
)

// Request asks for the dungeon of one seed
type Request struct {
	Type string `json:"type"`
	Seed int64  `json:"seed"`
}

// DungeonMsg carries everything a renderer needs to draw a dungeon
type DungeonMsg struct {
	Type      string             `json:"type"`
	Seed      int64              `json:"seed"`
	Digest    string             `json:"digest"`
	Dims      world.Dimensions   `json:"dims"`
	Spawn     world.Coordinates  `json:"spawn"`
	SpawnRoom int                `json:"spawn_room"`
	Batches   []renderdata.Batch `json:"batches"`
}

// ErrorMsg reports a rejected request or failed generation
type ErrorMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Server answers GENERATE requests. Generation is serialized because the
// generator owns a single pathfinder arena.
type Server struct {
	log *log.Logger

	mu  sync.Mutex
	gen *generator.Generator

	upgrader websocket.Upgrader
}

// NewServer creates a server that generates dungeons with gen
func NewServer(gen *generator.Generator, logger *log.Logger) *Server {
	return &Server{
		gen: gen,
		log: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

// Handler upgrades requests to websocket connections and serves GENERATE requests
func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var req Request
			if err := json.Unmarshal(msg, &req); err != nil || req.Type != TypeGenerate {
				if err := writeJSON(conn, ErrorMsg{Type: TypeError, Message: "expected GENERATE"}); err != nil {
					return
				}
				continue
			}

			resp, err := s.generate(req.Seed)
			if err != nil {
				s.log.Printf("seed %d: %v", req.Seed, err)
				if err := writeJSON(conn, ErrorMsg{Type: TypeError, Message: err.Error()}); err != nil {
					return
				}
				continue
			}
			if err := writeJSON(conn, resp); err != nil {
				return
			}
		}
	}
}

// generate runs one generation and converts invariant violations into errors
func (s *Server) generate(seed int64) (msg DungeonMsg, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if v := assert.Recover(recover()); v != nil {
			err = v
		}
	}()

	start := time.Now()
	d := s.gen.Generate(seed)
	msg = DungeonMsg{
		Type:      TypeDungeon,
		Seed:      seed,
		Digest:    d.Digest(),
		Dims:      d.Dims(),
		Spawn:     d.Spawn,
		SpawnRoom: d.SpawnRoom,
		Batches:   renderdata.Batches(renderdata.Collect(d.Grid)),
	}
	s.log.Printf("seed %d: served %d batches in %v", seed, len(msg.Batches), time.Since(start))
	return msg, nil
}

func writeJSON(conn *websocket.Conn, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
		if errors.Is(err, websocket.ErrCloseSent) {
			return nil
		}
		return err
	}
	return nil
}
