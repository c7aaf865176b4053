package probe

import (
	"strings"
	"testing"
	"time"

	engineinput "blackout/pkg/engine/input"
	"blackout/pkg/engine/world"
	"blackout/pkg/game/access"
	"blackout/pkg/game/entities"
	"blackout/pkg/game/inventory"
	"blackout/pkg/game/state"
	gameworld "blackout/pkg/game/world"
)

var (
	idCard = &world.ItemDefinition{ID: "ID Card", Name: "ID Card"}
	fuse   = &world.ItemDefinition{ID: "Fuse", Name: "Fuse"}
)

// newCorridor builds a one-row corridor of length cells with the player at
// the west end facing east.
func newCorridor(t *testing.T, length int) (*state.Game, *Probe) {
	t.Helper()
	engineinput.ResetBindings()
	grid := world.NewGrid(3, length+2)
	for c := 1; c <= length; c++ {
		grid.MarkAsRoom(1, c)
	}
	grid.SetStartCell(grid.GetCell(1, 1), world.East)
	return state.NewGame(grid, world.NewCatalog()), New(grid)
}

func place(g *state.Game, col int, point access.AccessPoint) {
	gameworld.GetGameData(g.Grid.GetCell(1, col)).Access = point
	g.AccessPoints = append(g.AccessPoints, point)
}

func press(actions ...engineinput.Action) engineinput.Frame {
	return engineinput.NewFrame(actions...)
}

func TestTick_NoTargetHidesPrompt(t *testing.T) {
	g, p := newCorridor(t, 5)
	g.Prompt.ShowUntilChanged("stale")
	if got := p.Tick(g, press()); got.Kind != KindNone {
		t.Fatalf("target kind = %v, want none", got.Kind)
	}
	if g.Prompt.Visible() || g.Highlight != nil {
		t.Error("prompt or highlight left visible with nothing targeted")
	}
}

func TestTick_CardReaderDeniedWithoutBadge(t *testing.T) {
	g, p := newCorridor(t, 5)
	door := access.NewDoor("lab", "Lab Door", "", true)
	place(g, 4, door)
	place(g, 2, access.NewCardReader("reader", "Card Reader", "ID Card", door))

	p.Tick(g, press(engineinput.ActionInteract))
	if !door.IsLocked() {
		t.Error("door unlocked without a badge")
	}
	if g.Prompt.Text() != "You need a badge" {
		t.Errorf("prompt = %q, want badge denial", g.Prompt.Text())
	}
}

func TestTick_CardReaderOpensDoor(t *testing.T) {
	g, p := newCorridor(t, 5)
	door := access.NewDoor("lab", "Lab Door", "", true)
	place(g, 4, door)
	place(g, 2, access.NewCardReader("reader", "Card Reader", "ID Card", door))
	g.Inventory.Add(idCard)

	if got := PromptFor(Resolve(p.Caster, g.CurrentCell, g.Facing, 3), g.Inventory, g.Catalog); got != "Open the door (F)" {
		t.Errorf("prompt before use = %q", got)
	}
	p.Tick(g, press(engineinput.ActionInteract))
	if door.IsLocked() || !door.IsOpen() {
		t.Error("door not unlocked and opened by the reader")
	}
}

func TestTick_PickupTakesItem(t *testing.T) {
	g, p := newCorridor(t, 5)
	cell := g.Grid.GetCell(1, 3)
	gameworld.GetGameData(cell).Pickup = entities.NewPickup(fuse)

	if got := p.Tick(g, press()); got.Kind != KindPickup || g.Highlight != cell {
		t.Fatalf("target = %v highlight %v, want pickup at 1:3", got.Kind, g.Highlight)
	}
	if g.Prompt.Text() != "Pick up Fuse (F)" {
		t.Errorf("prompt = %q", g.Prompt.Text())
	}
	p.Tick(g, press(engineinput.ActionInteract))
	if !g.Inventory.Has("Fuse") {
		t.Fatal("fuse not added to inventory")
	}
	if gameworld.HasPickup(cell) {
		t.Error("pickup still on the cell")
	}
	if g.Highlight != nil {
		t.Error("highlight kept on a taken pickup")
	}
}

func TestTick_LockedToggleOneMessagePerEdge(t *testing.T) {
	g, p := newCorridor(t, 5)
	place(g, 2, access.NewDoor("cell", "Cell Door", "Cell Key", true))

	p.Tick(g, press(engineinput.ActionPrimary))
	if len(g.Messages) != 1 {
		t.Fatalf("messages after one press = %d, want 1", len(g.Messages))
	}
	for i := 0; i < 5; i++ {
		p.Tick(g, press())
	}
	if len(g.Messages) != 1 {
		t.Errorf("messages after idle ticks = %d, want 1", len(g.Messages))
	}
	p.Tick(g, press(engineinput.ActionPrimary))
	if len(g.Messages) != 2 {
		t.Errorf("messages after second press = %d, want 2", len(g.Messages))
	}
}

func TestTick_ModalSuppressesInteraction(t *testing.T) {
	g, p := newCorridor(t, 5)
	cell := g.Grid.GetCell(1, 2)
	gameworld.GetGameData(cell).Pickup = entities.NewPickup(fuse)
	g.Prompt.ShowUntilChanged("Pick up Fuse (F)")
	g.Pause.Open()

	p.Tick(g, press(engineinput.ActionInteract))
	if g.Inventory.Has("Fuse") {
		t.Error("pickup taken while a modal was open")
	}
	if g.Prompt.Visible() {
		t.Errorf("prompt %q visible while a modal was open", g.Prompt.Text())
	}
}

func TestTick_MissingReferenceSkipped(t *testing.T) {
	g, p := newCorridor(t, 5)
	reader := access.NewCardReader("reader", "Card Reader", "ID Card", nil)
	place(g, 2, reader)
	g.Inventory.Add(idCard)

	for i := 0; i < 3; i++ {
		p.Tick(g, press(engineinput.ActionInteract))
	}
	if reader.IsActivated() {
		t.Error("reader with no door activated")
	}
	if g.Reported() != 1 {
		t.Errorf("Reported() = %d, want 1", g.Reported())
	}
}

func TestTick_BusyIsSilent(t *testing.T) {
	g, p := newCorridor(t, 5)
	door := access.NewDoor("cell", "Cell Door", "Cell Key", true)
	place(g, 2, door)
	g.Inventory.Add(&world.ItemDefinition{ID: "Cell Key", Name: "Cell Key"})

	p.Tick(g, press(engineinput.ActionInteract))
	p.Tick(g, press(engineinput.ActionInteract))
	if len(g.Messages) != 1 || !strings.Contains(g.Messages[0], "unlock") {
		t.Errorf("messages = %q, want a single unlock message", g.Messages)
	}
}

func TestTick_PrimaryOpensThenClosesDoor(t *testing.T) {
	g, p := newCorridor(t, 5)
	door := access.NewDoor("d", "Door", "", false)
	place(g, 2, door)
	gameworld.GetGameData(g.Grid.GetCell(1, 3)).Pickup = entities.NewPickup(fuse)

	p.Tick(g, press(engineinput.ActionPrimary))
	if !door.IsOpen() {
		t.Fatal("door not opening after the first press")
	}
	door.Tick(time.Second)
	if !door.IsPassable() {
		t.Fatal("door not open after its swing")
	}

	got := p.Tick(g, press())
	if got.Access != door {
		t.Fatalf("target with the door open = %v, want the door", got.Kind)
	}
	if want := PromptFor(got, g.Inventory, g.Catalog); g.Prompt.Text() != want {
		t.Errorf("prompt = %q, want %q", g.Prompt.Text(), want)
	}

	p.Tick(g, press(engineinput.ActionPrimary))
	door.Tick(time.Second)
	if door.IsOpen() || door.IsPassable() {
		t.Error("door still open after the second press")
	}
}

func TestResolve_BeyondRange(t *testing.T) {
	g, p := newCorridor(t, 6)
	gameworld.GetGameData(g.Grid.GetCell(1, 5)).Pickup = entities.NewPickup(fuse)
	if got := Resolve(p.Caster, g.CurrentCell, g.Facing, 3); got.Kind != KindNone {
		t.Errorf("target 4 cells away = %v, want none", got.Kind)
	}
}

func TestResolve_AccessPointReach(t *testing.T) {
	g, p := newCorridor(t, 6)
	box := access.NewFuseBox("box", "Fusebox", "Fuse", 1)
	place(g, 4, box)
	data := gameworld.GetGameData(g.Grid.GetCell(1, 4))

	data.Reach = 1
	if got := Resolve(p.Caster, g.CurrentCell, g.Facing, 5); got.Kind != KindNone {
		t.Errorf("target beyond its reach = %v, want none", got.Kind)
	}
	data.Reach = 5
	if got := Resolve(p.Caster, g.CurrentCell, g.Facing, 5); got.Access != box {
		t.Error("fusebox within reach not targeted")
	}
}

func TestPromptFor_FuseBox(t *testing.T) {
	box := access.NewFuseBox("box", "Fusebox", "Fuse", 3)
	store := inventory.New()
	store.Add(fuse)
	target := Target{Kind: KindAccess, Access: box}

	if got := PromptFor(target, store, nil); got != "Need 3 fuses to activate (have 1)" {
		t.Errorf("PromptFor = %q", got)
	}
	store.Add(fuse)
	store.Add(fuse)
	if got := PromptFor(target, store, nil); got != "Activate fusebox (F)" {
		t.Errorf("PromptFor = %q", got)
	}
	box.TryActivate(store)
	if got := PromptFor(target, store, nil); got != "Fusebox is already active" {
		t.Errorf("PromptFor = %q", got)
	}
}

func TestPromptFor_Door(t *testing.T) {
	engineinput.ResetBindings()
	store := inventory.New()
	locked := Target{Kind: KindAccess, Access: access.NewDoor("d", "cell door", "Cell Key", true)}
	if got := PromptFor(locked, store, nil); got != "The cell door is locked. You need the Cell Key" {
		t.Errorf("PromptFor = %q", got)
	}
	sealed := Target{Kind: KindAccess, Access: access.NewDoor("d", "hatch", "", true)}
	if got := PromptFor(sealed, store, nil); got != "The hatch is locked" {
		t.Errorf("PromptFor = %q", got)
	}
	open := Target{Kind: KindAccess, Access: access.NewDoor("d", "hatch", "", false)}
	if got := PromptFor(open, store, nil); got != "Open the hatch (Click)" {
		t.Errorf("PromptFor = %q", got)
	}
}

func TestPromptFor_UsesItemDisplayName(t *testing.T) {
	engineinput.ResetBindings()
	items := world.NewCatalog()
	if _, err := items.Register(world.ItemDefinition{ID: "badge", Name: "ID Card"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	locked := Target{Kind: KindAccess, Access: access.NewDoor("d", "office door", "badge", true)}
	if got := PromptFor(locked, inventory.New(), items); got != "The office door is locked. You need the ID Card" {
		t.Errorf("PromptFor = %q", got)
	}
	if got := ItemName(items, "spanner"); got != "spanner" {
		t.Errorf("ItemName(unknown) = %q, want the ID", got)
	}
}

func TestTick_DenialNamesRequiredItem(t *testing.T) {
	g, p := newCorridor(t, 5)
	if _, err := g.Catalog.Register(world.ItemDefinition{ID: "badge", Name: "ID Card"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	place(g, 2, access.NewDoor("office", "Office Door", "badge", true))

	p.Tick(g, press(engineinput.ActionInteract))
	if len(g.Messages) != 1 || g.Messages[0] != "You need the ITEM{ID Card}" {
		t.Errorf("messages = %q, want the item's display name", g.Messages)
	}
}
