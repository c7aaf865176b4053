package gameplay

import (
	"time"

	engineinput "blackout/pkg/engine/input"
	"blackout/pkg/engine/world"
	"blackout/pkg/game/devtools"
	"blackout/pkg/game/i18n"
	"blackout/pkg/game/menu"
	"blackout/pkg/game/probe"
	"blackout/pkg/game/state"
	gameworld "blackout/pkg/game/world"
)

// Loop advances a game one tick at a time. Frontends own the clock and the
// input devices; they hand Tick a frame of input edges and the elapsed time.
type Loop struct {
	Game  *state.Game
	Probe *probe.Probe

	// Target is what the probe resolved on the last tick
	Target probe.Target
}

// NewLoop creates a loop for g and applies initial exploration and lighting
func NewLoop(g *state.Game) *Loop {
	l := &Loop{Game: g, Probe: probe.New(g.Grid)}
	if g.CurrentCell != nil {
		MoveCell(g, g.CurrentCell)
	}
	UpdateLighting(g)
	return l
}

var moveActions = []struct {
	action engineinput.Action
	dir    world.Direction
}{
	{engineinput.ActionMoveNorth, world.North},
	{engineinput.ActionMoveSouth, world.South},
	{engineinput.ActionMoveWest, world.West},
	{engineinput.ActionMoveEast, world.East},
}

// Tick runs one simulation step.
func (l *Loop) Tick(frame engineinput.Frame, dt time.Duration) {
	g := l.Game

	if frame.Pressed(engineinput.ActionQuit) && !g.ModalOpen() {
		g.Quit = true
		return
	}

	consumed := g.Menus.Update(frame)
	if h, ok := g.Pause.Handler().(*menu.PauseMenuHandler); ok && h.QuitRequested() {
		g.Quit = true
		return
	}
	if consumed {
		frame = engineinput.Frame{}
	}

	if g.InputEnabled && !g.ModalOpen() {
		l.handleFrame(frame)
	}

	l.Target = l.Probe.Tick(g, frame)

	// World time stands still behind a modal
	if !g.ModalOpen() {
		for _, p := range g.AccessPoints {
			p.Tick(dt)
		}
		for _, s := range g.Swings {
			s.Tick(dt, gameworld.DoorAt(g.CurrentCell) == s.Door())
		}
		for _, s := range g.Scares {
			s.Tick(dt)
		}
		g.Flashlight.Tick(dt)
		g.Stamina.Tick(dt)
	}
	g.Prompt.Tick(dt)
	UpdateLighting(g)
}

func (l *Loop) handleFrame(frame engineinput.Frame) {
	g := l.Game
	if frame.Pressed(engineinput.ActionSprint) {
		switch {
		case g.Sprinting:
			g.Sprinting = false
			logMessage(g, i18n.T("MSG_SPRINT_OFF"))
		case g.Stamina.Exhausted():
			logMessage(g, i18n.T("MSG_OUT_OF_BREATH"))
		default:
			g.Sprinting = true
			logMessage(g, i18n.T("MSG_SPRINT_ON"))
		}
	}

	for _, m := range moveActions {
		if frame.Pressed(m.action) {
			if Move(g, m.dir) && g.Sprinting {
				Sprint(g)
			}
			break
		}
	}

	if frame.Pressed(engineinput.ActionToggleFlashlight) {
		switch {
		case !g.Flashlight.Toggle():
			logMessage(g, i18n.T("MSG_NO_FLASHLIGHT"))
		case g.Flashlight.On():
			logMessage(g, i18n.T("MSG_FLASHLIGHT_ON"))
		default:
			logMessage(g, i18n.T("MSG_FLASHLIGHT_OFF"))
		}
	}

	if frame.Pressed(engineinput.ActionDumpMap) {
		path, err := devtools.DumpMapToFile(g, devtools.DefaultDumpFile)
		if err != nil {
			logMessage(g, "Map dump failed: "+err.Error())
		} else {
			logMessage(g, "Map dumped to ITEM{"+path+"}")
		}
	}
}
