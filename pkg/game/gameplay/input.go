// Package gameplay drives the interactive dungeon browser.
package gameplay

import (
	engineinput "roguelike3d/pkg/engine/input"
	"roguelike3d/pkg/engine/world"
	"roguelike3d/pkg/game/devtools"
	"roguelike3d/pkg/game/i18n"
	"roguelike3d/pkg/game/state"
)

var moves = map[engineinput.Action]world.Coordinates{
	engineinput.ActionMoveNorth: world.North.Delta(),
	engineinput.ActionMoveSouth: world.South.Delta(),
	engineinput.ActionMoveEast:  world.East.Delta(),
	engineinput.ActionMoveWest:  world.West.Delta(),
	engineinput.ActionLayerUp:   world.Up,
	engineinput.ActionLayerDown: world.Up.Scale(-1),
}

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(s *state.Session, intent engineinput.Intent) {
	if delta, ok := moves[intent.Action]; ok {
		if !s.MoveCursor(delta) {
			s.AddMessage(i18n.Get("CANNOT_MOVE"))
		}
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionJumpSpawn:
		s.Cursor = s.Dungeon.Spawn
		return

	case engineinput.ActionNextSeed:
		s.Regenerate(s.Seed + 1)
		s.AddMessage(i18n.Get("NEW_SEED", s.Seed))
		return

	case engineinput.ActionPrevSeed:
		s.Regenerate(s.Seed - 1)
		s.AddMessage(i18n.Get("NEW_SEED", s.Seed))
		return

	case engineinput.ActionHelp:
		ShowHelp(s)
		return

	case engineinput.ActionQuit:
		s.Quit = true
		return

	case engineinput.ActionScreenshot:
		filename, err := devtools.SaveScreenshotHTML(s.Dungeon, []int{s.Cursor.Y})
		if err != nil {
			s.AddMessage(i18n.Get("DUMP_FAILED", err))
			return
		}
		s.AddMessage(i18n.Get("SCREENSHOT_SAVED", filename))
		return

	case engineinput.ActionDebugMapDump:
		path, err := devtools.DumpDungeonToFile(s.Dungeon, "")
		if err != nil {
			s.AddMessage(i18n.Get("DUMP_FAILED", err))
			return
		}
		s.AddMessage(i18n.Get("MAP_DUMPED", path))
		return
	}
}
