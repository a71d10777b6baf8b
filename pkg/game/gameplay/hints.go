package gameplay

import (
	"fmt"
	"strings"

	engineinput "roguelike3d/pkg/engine/input"
	"roguelike3d/pkg/game/state"
)

// helpOrder lists the actions shown by ShowHelp
var helpOrder = []engineinput.Action{
	engineinput.ActionMoveNorth,
	engineinput.ActionLayerUp,
	engineinput.ActionNextSeed,
	engineinput.ActionScreenshot,
	engineinput.ActionQuit,
}

// ShowHelp adds the key bindings of the main actions to the message log
func ShowHelp(s *state.Session) {
	byAction := engineinput.GetBindingsByAction()
	for _, act := range helpOrder {
		s.AddMessage(fmt.Sprintf("%s: %s", engineinput.ActionName(act), strings.Join(byAction[act], ", ")))
	}
}
