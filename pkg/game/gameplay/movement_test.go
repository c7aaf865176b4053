package gameplay

import (
	"testing"
	"time"

	engineinput "blackout/pkg/engine/input"
	"blackout/pkg/engine/world"
	"blackout/pkg/game/access"
	"blackout/pkg/game/entities"
	"blackout/pkg/game/state"
	gameworld "blackout/pkg/game/world"
)

var fuse = &world.ItemDefinition{ID: "Fuse", Name: "Fuse"}

// makeCorridor creates a Game on a 3-row grid whose middle row is a corridor
// of length walkable cells. The player starts at the west end facing east.
func makeCorridor(t *testing.T, length int) *state.Game {
	t.Helper()
	engineinput.ResetBindings()
	grid := world.NewGrid(3, length+2)
	for c := 1; c <= length; c++ {
		grid.MarkAsRoom(1, c)
	}
	if !grid.SetStartCell(grid.GetCell(1, 1), world.East) {
		t.Fatal("SetStartCell failed")
	}
	return state.NewGame(grid, world.NewCatalog())
}

func press(actions ...engineinput.Action) engineinput.Frame {
	return engineinput.NewFrame(actions...)
}

func TestCanEnter_NilCell(t *testing.T) {
	g := makeCorridor(t, 2)
	if CanEnter(g, nil, false) {
		t.Error("CanEnter(g, nil, false) = true, want false")
	}
}

func TestCanEnter_NonRoomCell(t *testing.T) {
	g := makeCorridor(t, 2)
	if CanEnter(g, g.Grid.GetCell(0, 0), false) {
		t.Error("CanEnter(g, wall, false) = true, want false")
	}
}

func TestCanEnter_EmptyRoomCell(t *testing.T) {
	g := makeCorridor(t, 2)
	if !CanEnter(g, g.Grid.GetCell(1, 2), false) {
		t.Error("CanEnter(g, empty room cell, false) = false, want true")
	}
}

func TestCanEnter_ClosedDoorBlocks(t *testing.T) {
	g := makeCorridor(t, 3)
	cell := g.Grid.GetCell(1, 2)
	door := access.NewDoor("d", "Door", "", false)
	door.SetSpeed(0)
	gameworld.GetGameData(cell).Access = door

	if CanEnter(g, cell, true) {
		t.Fatal("walked through a closed door")
	}
	if len(g.Messages) != 1 {
		t.Errorf("messages = %d, want one blocked message", len(g.Messages))
	}
	door.ToggleOpenClosed()
	if !CanEnter(g, cell, false) {
		t.Error("open door blocks movement")
	}
}

func TestCanEnter_FuseBoxBlocks(t *testing.T) {
	g := makeCorridor(t, 3)
	cell := g.Grid.GetCell(1, 2)
	gameworld.GetGameData(cell).Access = access.NewFuseBox("f", "Fusebox", "Fuse", 1)
	if CanEnter(g, cell, false) {
		t.Error("CanEnter(g, fusebox cell) = true, want false")
	}
}

func TestMove_TurnsEvenWhenBlocked(t *testing.T) {
	g := makeCorridor(t, 2)
	if Move(g, world.North) {
		t.Fatal("moved into a wall")
	}
	if g.Facing != world.North {
		t.Errorf("Facing = %v, want North", g.Facing)
	}
	if !Move(g, world.East) || g.CurrentCell != g.Grid.GetCell(1, 2) {
		t.Error("did not step east")
	}
}

func TestMoveCell_CollectsFloorItems(t *testing.T) {
	g := makeCorridor(t, 3)
	cell := g.Grid.GetCell(1, 2)
	cell.ItemsOnFloor.Put(fuse)

	Move(g, world.East)
	if !g.Inventory.Has("Fuse") {
		t.Error("floor fuse not collected")
	}
	if cell.ItemsOnFloor.Size() != 0 {
		t.Error("fuse still on the floor")
	}
}

func TestMoveCell_WalkOverPickup(t *testing.T) {
	g := makeCorridor(t, 3)
	light := &world.ItemDefinition{ID: state.FlashlightItem, Name: "Flashlight"}
	gameworld.GetGameData(g.Grid.GetCell(1, 2)).Pickup = entities.NewPickup(light)

	Move(g, world.East)
	if !g.Flashlight.Equipped() {
		t.Error("walking onto the flashlight did not equip it")
	}
}

func TestMoveCell_InfoZoneShowOnce(t *testing.T) {
	g := makeCorridor(t, 3)
	gameworld.GetGameData(g.Grid.GetCell(1, 2)).Zone = entities.NewInfoZone("z", "It is cold here", time.Second, true)

	Move(g, world.East)
	if g.Prompt.Text() != "It is cold here" {
		t.Fatalf("prompt = %q, want zone message", g.Prompt.Text())
	}
	Move(g, world.West)
	Move(g, world.East)
	count := 0
	for _, m := range g.Messages {
		if m == "It is cold here" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("zone message logged %d times, want 1", count)
	}
}

func TestLoop_ToggleFlashlightNeedsItem(t *testing.T) {
	g := makeCorridor(t, 3)
	l := NewLoop(g)
	l.Tick(press(engineinput.ActionToggleFlashlight), 10*time.Millisecond)
	if g.Flashlight.On() {
		t.Fatal("flashlight on without owning it")
	}
	g.Inventory.Add(&world.ItemDefinition{ID: state.FlashlightItem, Name: "Flashlight"})
	l.Tick(press(engineinput.ActionToggleFlashlight), 10*time.Millisecond)
	if !g.Flashlight.On() {
		t.Error("flashlight still off after toggle")
	}
}

func TestLoop_FlashlightLightsFacingCells(t *testing.T) {
	g := makeCorridor(t, 4)
	g.Flashlight.FlickerChance = 0
	g.Inventory.Add(&world.ItemDefinition{ID: state.FlashlightItem, Name: "Flashlight"})
	l := NewLoop(g)
	l.Tick(press(engineinput.ActionToggleFlashlight), 10*time.Millisecond)
	if !IsLit(g, g.Grid.GetCell(1, 3)) {
		t.Error("cell ahead not lit by flashlight")
	}
	if IsLit(g, g.Grid.GetCell(0, 1)) {
		t.Error("cell behind the beam is lit")
	}
}

func TestLoop_FuseBoxSwitchesLights(t *testing.T) {
	g := makeCorridor(t, 4)
	lamp := entities.NewLight("lamp", 1, 4, 1, false)
	g.Lights = append(g.Lights, lamp)
	box := access.NewFuseBox("box", "Fusebox", "Fuse", 2)
	box.SwitchOn(lamp)
	gameworld.GetGameData(g.Grid.GetCell(1, 2)).Access = box
	g.AccessPoints = append(g.AccessPoints, box)
	g.Inventory.Add(fuse)
	g.Inventory.Add(fuse)

	l := NewLoop(g)
	if IsLit(g, g.Grid.GetCell(1, 4)) {
		t.Fatal("cell lit before power is restored")
	}
	l.Tick(press(engineinput.ActionInteract), 10*time.Millisecond)
	if !box.IsActivated() || g.Inventory.CountOf("Fuse") != 0 {
		t.Fatal("fusebox did not activate and consume fuses")
	}
	if !IsLit(g, g.Grid.GetCell(1, 4)) {
		t.Error("lamp did not light its cell")
	}
}

func TestLoop_ModalFreezesTimers(t *testing.T) {
	g := makeCorridor(t, 3)
	door := access.NewDoor("d", "Door", "", false)
	gameworld.GetGameData(g.Grid.GetCell(1, 2)).Access = door
	g.AccessPoints = append(g.AccessPoints, door)
	l := NewLoop(g)

	l.Tick(press(engineinput.ActionPrimary), 10*time.Millisecond)
	if !door.IsSwinging() {
		t.Fatal("door not swinging after toggle")
	}
	l.Tick(press(engineinput.ActionToggleMenu), 10*time.Millisecond)
	for i := 0; i < 10; i++ {
		l.Tick(press(), time.Second)
	}
	if !door.IsSwinging() {
		t.Error("door finished swinging while paused")
	}
	l.Tick(press(engineinput.ActionToggleMenu), time.Second)
	if door.IsSwinging() {
		t.Error("door still swinging after unpausing")
	}
}

func TestLoop_QuitFromPauseMenu(t *testing.T) {
	g := makeCorridor(t, 2)
	l := NewLoop(g)
	l.Tick(press(engineinput.ActionToggleMenu), 0)
	l.Tick(press(engineinput.ActionMoveSouth), 0)
	l.Tick(press(engineinput.ActionInteract), 0)
	if !g.Quit {
		t.Error("Quit not set after choosing Quit in the pause menu")
	}
}

func TestLoop_MovementIgnoredWhileInventoryOpen(t *testing.T) {
	g := makeCorridor(t, 3)
	l := NewLoop(g)
	l.Tick(press(engineinput.ActionToggleInventory), 0)
	l.Tick(press(engineinput.ActionMoveEast), 0)
	if g.CurrentCell != g.Grid.GetCell(1, 1) {
		t.Error("player moved while the inventory was open")
	}
}

func TestLoop_ScareCutsLightsUntilBlackoutEnds(t *testing.T) {
	g := makeCorridor(t, 5)
	lamp := entities.NewLight("lamp", 1, 4, 1, true)
	g.Lights = append(g.Lights, lamp)
	scare := entities.NewScare("s", []*entities.Light{lamp}, 250*time.Millisecond)
	scare.Message = "Something moves"
	scare.MessageFor = time.Second
	gameworld.GetGameData(g.Grid.GetCell(1, 2)).Scare = scare
	gameworld.GetGameData(g.Grid.GetCell(1, 5)).Figure = scare
	g.Scares = append(g.Scares, scare)
	l := NewLoop(g)

	l.Tick(press(), 0)
	if !IsLit(g, g.Grid.GetCell(1, 4)) {
		t.Fatal("lamp cell not lit before the scare")
	}
	l.Tick(press(engineinput.ActionMoveEast), 0)
	if !scare.Triggered() || scare.FigureVisible() {
		t.Fatal("stepping on the trigger did not fire the scare")
	}
	if g.Prompt.Text() != "Something moves" {
		t.Errorf("prompt = %q, want scare message", g.Prompt.Text())
	}
	if IsLit(g, g.Grid.GetCell(1, 4)) {
		t.Error("lamp still lit during the blackout")
	}

	l.Tick(press(), 300*time.Millisecond)
	if !IsLit(g, g.Grid.GetCell(1, 4)) {
		t.Error("lamp not restored after the blackout")
	}

	// walking back over the trigger does nothing
	l.Tick(press(engineinput.ActionMoveWest), 0)
	l.Tick(press(engineinput.ActionMoveEast), 0)
	if !IsLit(g, g.Grid.GetCell(1, 4)) {
		t.Error("scare fired a second time")
	}
}

func TestLoop_SprintTakesDoubleStepsUntilOutOfBreath(t *testing.T) {
	g := makeCorridor(t, 8)
	l := NewLoop(g)

	l.Tick(press(engineinput.ActionSprint), 0)
	if !g.Sprinting {
		t.Fatal("sprint toggle did not start sprinting")
	}
	l.Tick(press(engineinput.ActionMoveEast), 0)
	if g.CurrentCell != g.Grid.GetCell(1, 3) {
		t.Fatalf("sprint step landed at %v, want two cells east", g.CurrentCell)
	}
	if g.Stamina.Ratio() >= 1 {
		t.Error("sprint step did not cost stamina")
	}

	g.Stamina.Current = g.Stamina.StepCost / 2
	l.Tick(press(engineinput.ActionMoveEast), 0)
	if g.CurrentCell != g.Grid.GetCell(1, 4) {
		t.Errorf("out of breath step landed at %v, want a single step", g.CurrentCell)
	}
	if g.Sprinting || !g.Stamina.Exhausted() {
		t.Fatal("running dry did not end the sprint")
	}

	l.Tick(press(engineinput.ActionSprint), 0)
	if g.Sprinting {
		t.Error("sprint restarted while exhausted")
	}
}

func TestLoop_RandomDoorHeldWhilePlayerInDoorway(t *testing.T) {
	g := makeCorridor(t, 3)
	cell := g.Grid.GetCell(1, 2)
	door := access.NewDoor("d", "Door", "", false)
	door.SetSpeed(0)
	door.Open()
	gameworld.GetGameData(cell).Access = door
	g.AccessPoints = append(g.AccessPoints, door)
	g.Swings = append(g.Swings, access.NewRandomSwing(door, time.Second, time.Second, 1))
	l := NewLoop(g)

	MoveCell(g, cell)
	l.Tick(press(), 2*time.Second)
	if !door.IsOpen() {
		t.Fatal("door swung shut on the player")
	}

	MoveCell(g, g.Grid.GetCell(1, 1))
	l.Tick(press(), 2*time.Second)
	if door.IsOpen() {
		t.Error("door did not swing once the doorway was clear")
	}
}
