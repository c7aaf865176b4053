package scene

import (
	"log"
	"time"

	"github.com/samber/oops"

	"blackout/pkg/engine/world"
	"blackout/pkg/game/access"
	"blackout/pkg/game/entities"
	"blackout/pkg/game/state"
	gameworld "blackout/pkg/game/world"
)

// Default item IDs for access points that don't name one
const (
	DefaultBadge world.ItemID = "ID Card"
	DefaultFuse  world.ItemID = "Fuse"
)

// DefaultZoneDuration is used when a zone leaves its duration unset
const DefaultZoneDuration = 3 * time.Second

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Build creates a game from the scene. Item references that cannot be
// resolved are errors; dangling links between access points are logged
// and left for the access point to report at play time.
func Build(s *Scene) (*state.Game, error) {
	errs := oops.In("scene").With("scene", s.Name)

	catalog, err := buildCatalog(s)
	if err != nil {
		return nil, err
	}

	grid := world.NewGrid(len(s.Layout), len(s.Layout[0]))
	for row, line := range s.Layout {
		for col, tile := range line {
			if tile == '.' {
				grid.MarkAsRoom(row, col)
			}
		}
	}
	for _, r := range s.Rooms {
		for row := r.From.Row(); row <= r.To.Row(); row++ {
			for col := r.From.Col(); col <= r.To.Col(); col++ {
				if cell := grid.GetCell(row, col); cell != nil && cell.Room {
					grid.MarkAsRoomWithName(row, col, r.Name, r.Description)
				}
			}
		}
	}

	facing := world.North
	if s.Start.Facing != "" {
		d, ok := world.ParseDirection(s.Start.Facing)
		if !ok {
			return nil, errs.Errorf("unknown start facing %q", s.Start.Facing)
		}
		facing = d
	}
	grid.SetStartCell(grid.GetCell(s.Start.At.Row(), s.Start.At.Col()), facing)

	g := state.NewGame(grid, catalog)
	seed := s.Seed
	if seed == 0 {
		seed = 1
	}
	g.Flashlight = entities.NewFlashlight(seed)
	if s.MaxDistance > 0 {
		g.PickupRange = s.MaxDistance
	}

	place := func(at Pos, reach int, p access.AccessPoint) error {
		data := gameworld.GetGameData(grid.GetCell(at.Row(), at.Col()))
		if data.Access != nil {
			return errs.Errorf("%q and %q share cell %v", data.Access.ID(), p.ID(), at)
		}
		data.Access = p
		data.Reach = reach
		g.AccessPoints = append(g.AccessPoints, p)
		return nil
	}

	doors := make(map[string]*access.Door)
	for _, spec := range s.Doors {
		d := newDoor(spec)
		doors[spec.ID] = d
		if err := place(spec.At, spec.MaxDistance, d); err != nil {
			return nil, err
		}
		if r := spec.Random; r != nil {
			minDelay, maxDelay := access.DefaultMinSwingDelay, access.DefaultMaxSwingDelay
			if r.MaxDelay > 0 {
				minDelay, maxDelay = seconds(r.MinDelay), seconds(r.MaxDelay)
			}
			g.Swings = append(g.Swings, access.NewRandomSwing(d, minDelay, maxDelay, seed+int64(len(g.Swings))+1))
		}
	}

	for _, spec := range s.Drawers {
		var contents *world.ItemDefinition
		if spec.Contains != "" {
			contents = catalog.Lookup(spec.Contains)
			if contents == nil {
				return nil, errs.Errorf("drawer %q contains unknown item %q", spec.ID, spec.Contains)
			}
		}
		d := access.NewDrawer(spec.ID, displayName(spec.Name, "Drawer"), world.IDFor(spec.Requires.Item), spec.LockedByDefault, contents)
		configureDoor(&d.Door, spec.DoorSpec)
		if err := place(spec.At, spec.MaxDistance, d); err != nil {
			return nil, err
		}
	}

	lights := make(map[string]*entities.Light)
	for _, spec := range s.Lights {
		l := entities.NewLight(spec.ID, spec.At.Row(), spec.At.Col(), spec.Radius, spec.On)
		lights[spec.ID] = l
		g.Lights = append(g.Lights, l)
		gameworld.GetGameData(grid.GetCell(spec.At.Row(), spec.At.Col())).Light = l
	}

	for _, spec := range s.CardReaders {
		badge := DefaultBadge
		if spec.Requires.Item != "" {
			badge = world.IDFor(spec.Requires.Item)
		}
		door := doors[spec.DoorToOpen]
		if door == nil {
			log.Printf("scene: card reader %q links to unknown door %q", spec.ID, spec.DoorToOpen)
		}
		r := access.NewCardReader(spec.ID, displayName(spec.Name, "Card Reader"), badge, door)
		if spec.Feedback > 0 {
			r.SetFeedbackDuration(seconds(spec.Feedback))
		}
		if err := place(spec.At, spec.MaxDistance, r); err != nil {
			return nil, err
		}
	}

	for _, spec := range s.FuseBoxes {
		fuse := DefaultFuse
		if spec.Requires.Item != "" {
			fuse = world.IDFor(spec.Requires.Item)
		}
		count := spec.RequiredCount
		if count <= 0 {
			count = spec.Requires.Count
		}
		if count <= 0 {
			count = 1
		}
		f := access.NewFuseBox(spec.ID, displayName(spec.Name, "Fusebox"), fuse, count)
		f.SwitchOn(resolveLights(spec.ID, spec.LightsOn, lights)...)
		f.SwitchOff(resolveLights(spec.ID, spec.LightsOff, lights)...)
		if spec.Door != "" {
			if door := doors[spec.Door]; door != nil {
				f.LinkDoor(door, seconds(spec.RelockDelay))
			} else {
				log.Printf("scene: fusebox %q links to unknown door %q", spec.ID, spec.Door)
			}
		}
		if spec.Feedback > 0 {
			f.SetFeedbackDuration(seconds(spec.Feedback))
		}
		if err := place(spec.At, spec.MaxDistance, f); err != nil {
			return nil, err
		}
	}

	for _, spec := range s.Pickups {
		item := catalog.Lookup(spec.Item)
		if item == nil {
			return nil, errs.Errorf("pickup at %v names unknown item %q", spec.At, spec.Item)
		}
		data := gameworld.GetGameData(grid.GetCell(spec.At.Row(), spec.At.Col()))
		if data.Pickup != nil {
			return nil, errs.Errorf("two pickups at %v", spec.At)
		}
		data.Pickup = entities.NewPickup(item)
	}

	for _, spec := range s.FloorItems {
		item := catalog.Lookup(spec.Item)
		if item == nil {
			return nil, errs.Errorf("floor item at %v names unknown item %q", spec.At, spec.Item)
		}
		cell := grid.GetCell(spec.At.Row(), spec.At.Col())
		if cell.ItemsOnFloor.Has(item) {
			return nil, errs.Errorf("item %q placed twice at %v", item.ID, spec.At)
		}
		cell.ItemsOnFloor.Put(item)
	}

	for _, spec := range s.Zones {
		d := DefaultZoneDuration
		if spec.Duration > 0 {
			d = seconds(spec.Duration)
		}
		gameworld.GetGameData(grid.GetCell(spec.At.Row(), spec.At.Col())).Zone =
			entities.NewInfoZone(spec.ID, spec.Message, d, spec.ShowOnce)
	}

	for _, spec := range s.Scares {
		var cut []*entities.Light
		for _, id := range spec.Lights {
			l := lights[id]
			if l == nil {
				log.Printf("scene: scare %q cuts unknown light %q", spec.ID, id)
				continue
			}
			cut = append(cut, l)
		}
		blackout := entities.DefaultBlackout
		if spec.LightsOff > 0 {
			blackout = seconds(spec.LightsOff)
		}
		scare := entities.NewScare(spec.ID, cut, blackout)
		scare.Message = spec.Message
		scare.MessageFor = DefaultZoneDuration
		if spec.Duration > 0 {
			scare.MessageFor = seconds(spec.Duration)
		}
		gameworld.GetGameData(grid.GetCell(spec.At.Row(), spec.At.Col())).Scare = scare
		if f := spec.Figure; f != nil {
			gameworld.GetGameData(grid.GetCell(f.Row(), f.Col())).Figure = scare
		}
		g.Scares = append(g.Scares, scare)
	}

	for _, p := range g.AccessPoints {
		if req := p.Requirement(); !req.IsNone() && catalog.Get(req.Item) == nil {
			log.Printf("scene: %q requires %q which no item defines", p.ID(), req.Item)
		}
	}
	for _, w := range Unreachable(g) {
		log.Printf("scene: %s", w)
	}
	log.Printf("scene: loaded %q: %d items, %d access points, %d lights, %d scares", s.Name, catalog.Len(), len(g.AccessPoints), len(g.Lights), len(g.Scares))
	return g, nil
}

func buildCatalog(s *Scene) (*world.Catalog, error) {
	catalog := world.NewCatalog()
	for _, spec := range s.Items {
		_, err := catalog.Register(world.ItemDefinition{
			ID:               world.ItemID(spec.ID),
			Name:             spec.Name,
			Icon:             spec.Icon,
			IconScale:        spec.IconScale,
			HoldPosition:     vec3(spec.HoldPosition),
			HoldRotation:     vec3(spec.HoldRotation),
			ShortDescription: spec.Description,
			DocumentContent:  spec.Document,
		})
		if err != nil {
			return nil, oops.In("scene").Wrapf(err, "building item catalog")
		}
	}
	return catalog, nil
}

func vec3(v []float64) world.Vec3 {
	var out [3]float64
	copy(out[:], v)
	return world.Vec3{X: out[0], Y: out[1], Z: out[2]}
}

func newDoor(spec DoorSpec) *access.Door {
	d := access.NewDoor(spec.ID, displayName(spec.Name, "Door"), world.IDFor(spec.Requires.Item), spec.LockedByDefault)
	configureDoor(d, spec)
	return d
}

func configureDoor(d *access.Door, spec DoorSpec) {
	if spec.Speed > 0 {
		d.SetSpeed(spec.Speed)
	}
	if spec.Open && !spec.LockedByDefault {
		d.Open()
		// settle the swing so the scene starts at rest
		d.Tick(time.Hour)
	}
}

func resolveLights(owner string, ids []string, lights map[string]*entities.Light) []access.Switch {
	out := make([]access.Switch, 0, len(ids))
	for _, id := range ids {
		l := lights[id]
		if l == nil {
			log.Printf("scene: fusebox %q switches unknown light %q", owner, id)
			continue
		}
		out = append(out, l)
	}
	return out
}

func displayName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
