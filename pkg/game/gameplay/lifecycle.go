package gameplay

import (
	"errors"
	"io"
	"time"

	engineinput "roguelike3d/pkg/engine/input"
	"roguelike3d/pkg/game/i18n"
	"roguelike3d/pkg/game/renderer"
	"roguelike3d/pkg/game/state"
)

// KeySource delivers raw input codes
type KeySource interface {
	ReadCode() (string, error)
}

// Run renders the session and processes input until the user quits or input ends
func Run(s *state.Session, keys KeySource) error {
	for !s.Quit {
		RenderFrame(s)

		code, err := keys.ReadCode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		raw := engineinput.RawInput{Device: engineinput.DeviceTerminal, Code: code, Timestamp: time.Now()}
		ProcessIntent(s, engineinput.MapToIntent(engineinput.NewDebouncedInput(raw)))
	}
	return nil
}

// RenderFrame draws the cursor layer, the cursor status and the message log
func RenderFrame(s *state.Session) {
	renderer.Clear()
	renderer.SetCursor(s.Cursor)
	renderer.RenderFrame(s.Dungeon, []int{s.Cursor.Y})

	tile := s.CursorTile()
	where := i18n.Get("OUTSIDE_ROOMS")
	if idx, ok := s.CursorRoom(); ok {
		where = renderer.FormatText("ROOM{%d}", idx)
	}
	renderer.ShowMessage(renderer.FormatText("GT{CURSOR} %v: TILE{%s}, ", s.Cursor, tile.Type) + where)
	renderer.ShowMessage(i18n.Get("VISITED_ROOMS", s.VisitedRooms.Size(), len(s.Dungeon.Rooms)))

	for _, msg := range s.Messages {
		renderer.ShowMessage(renderer.StyleText(msg, renderer.StyleSubtle))
	}
	renderer.ShowMessage(i18n.Get("PROMPT"))
}
