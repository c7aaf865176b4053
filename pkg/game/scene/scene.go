// Package scene loads level descriptions from YAML and builds a playable
// game state from them.
package scene

import (
	_ "embed"
	"os"
	"strings"

	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultScene []byte

// Scene is the on-disk level description
type Scene struct {
	Name        string       `yaml:"name"`
	Seed        int64        `yaml:"seed"`
	MaxDistance int          `yaml:"max_distance"`
	Items       []ItemSpec   `yaml:"items"`
	Layout      []string     `yaml:"layout"`
	Rooms       []RoomSpec   `yaml:"rooms"`
	Start       StartSpec    `yaml:"start"`
	Doors       []DoorSpec   `yaml:"doors"`
	Drawers     []DrawerSpec `yaml:"drawers"`
	CardReaders []ReaderSpec `yaml:"card_readers"`
	FuseBoxes   []FuseSpec   `yaml:"fuseboxes"`
	Pickups     []ItemAt     `yaml:"pickups"`
	FloorItems  []ItemAt     `yaml:"floor_items"`
	Lights      []LightSpec  `yaml:"lights"`
	Zones       []ZoneSpec   `yaml:"zones"`
	Scares      []ScareSpec  `yaml:"scares"`
}

// ItemSpec describes one catalog entry
type ItemSpec struct {
	ID           string    `yaml:"id"`
	Name         string    `yaml:"name"`
	Icon         string    `yaml:"icon"`
	IconScale    float64   `yaml:"icon_scale"`
	HoldPosition []float64 `yaml:"hold_position"`
	HoldRotation []float64 `yaml:"hold_rotation"`
	Description  string    `yaml:"description"`
	Document     string    `yaml:"document"`
}

// Pos is a [row, col] pair
type Pos [2]int

// Row returns the row
func (p Pos) Row() int { return p[0] }

// Col returns the column
func (p Pos) Col() int { return p[1] }

// RoomSpec names a rectangle of floor cells
type RoomSpec struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	From        Pos    `yaml:"from"`
	To          Pos    `yaml:"to"`
}

// StartSpec is where the player appears
type StartSpec struct {
	At     Pos    `yaml:"at"`
	Facing string `yaml:"facing"`
}

// Requires names the item and count an access point asks for
type Requires struct {
	Item  string `yaml:"item"`
	Count int    `yaml:"count"`
}

// DoorSpec configures a door
type DoorSpec struct {
	ID              string      `yaml:"id"`
	Name            string      `yaml:"name"`
	At              Pos         `yaml:"at"`
	Requires        Requires    `yaml:"requires"`
	LockedByDefault bool        `yaml:"locked_by_default"`
	Open            bool        `yaml:"open"`
	Speed           float64     `yaml:"speed"`
	MaxDistance     int         `yaml:"max_distance"`
	Random          *RandomSpec `yaml:"random"`
}

// RandomSpec makes a door swing by itself; delays are in seconds
type RandomSpec struct {
	MinDelay float64 `yaml:"min_delay"`
	MaxDelay float64 `yaml:"max_delay"`
}

// DrawerSpec configures a drawer and what is inside it
type DrawerSpec struct {
	DoorSpec `yaml:",inline"`
	Contains string `yaml:"contains"`
}

// ReaderSpec configures a card reader
type ReaderSpec struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	At          Pos      `yaml:"at"`
	Requires    Requires `yaml:"requires"`
	DoorToOpen  string   `yaml:"door_to_open"`
	Feedback    float64  `yaml:"feedback"`
	MaxDistance int      `yaml:"max_distance"`
}

// FuseSpec configures a fusebox
type FuseSpec struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	At            Pos      `yaml:"at"`
	Requires      Requires `yaml:"requires"`
	RequiredCount int      `yaml:"required_count"`
	LightsOn      []string `yaml:"lights_on"`
	LightsOff     []string `yaml:"lights_off"`
	Door          string   `yaml:"door"`
	RelockDelay   float64  `yaml:"relock_delay"`
	Feedback      float64  `yaml:"feedback"`
	MaxDistance   int      `yaml:"max_distance"`
}

// ItemAt places an item on a cell
type ItemAt struct {
	Item string `yaml:"item"`
	At   Pos    `yaml:"at"`
}

// LightSpec configures a ceiling light
type LightSpec struct {
	ID     string `yaml:"id"`
	At     Pos    `yaml:"at"`
	Radius int    `yaml:"radius"`
	On     bool   `yaml:"on"`
}

// ZoneSpec configures an info trigger zone
type ZoneSpec struct {
	ID       string  `yaml:"id"`
	At       Pos     `yaml:"at"`
	Message  string  `yaml:"message"`
	Duration float64 `yaml:"duration"`
	ShowOnce bool    `yaml:"show_once"`
}

// ScareSpec configures a one-shot scare. Figure, when set, is where the
// figure stands until the scare fires. LightsOff is in seconds.
type ScareSpec struct {
	ID        string   `yaml:"id"`
	At        Pos      `yaml:"at"`
	Figure    *Pos     `yaml:"figure"`
	Lights    []string `yaml:"lights"`
	LightsOff float64  `yaml:"lights_off"`
	Message   string   `yaml:"message"`
	Duration  float64  `yaml:"duration"`
}

// Parse decodes a scene from YAML
func Parse(b []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, oops.In("scene").Wrapf(err, "decoding scene")
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and parses a scene file
func LoadFile(path string) (*Scene, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, oops.In("scene").With("path", path).Wrapf(err, "reading scene")
	}
	s, err := Parse(b)
	if err != nil {
		return nil, oops.In("scene").With("path", path).Wrap(err)
	}
	return s, nil
}

// Default returns the scene shipped with the binary
func Default() (*Scene, error) {
	return Parse(defaultScene)
}

func (s *Scene) validate() error {
	errs := oops.In("scene")
	if len(s.Layout) == 0 {
		return errs.Errorf("scene has no layout")
	}
	width := len(s.Layout[0])
	for i, row := range s.Layout {
		if len(row) != width {
			return errs.With("row", i).Errorf("layout row %d has width %d, want %d", i, len(row), width)
		}
		if bad := strings.Trim(row, "#."); bad != "" {
			return errs.With("row", i).Errorf("layout row %d has unknown tile %q", i, bad[:1])
		}
	}
	if !s.inBounds(s.Start.At) || s.Layout[s.Start.At.Row()][s.Start.At.Col()] != '.' {
		return errs.Errorf("start %v is not a floor cell", s.Start.At)
	}

	ids := make(map[string]bool)
	claim := func(kind, id string, at Pos) error {
		if id == "" {
			return errs.Errorf("%s at %v has no id", kind, at)
		}
		if ids[id] {
			return errs.Errorf("duplicate id %q", id)
		}
		ids[id] = true
		if !s.inBounds(at) {
			return errs.Errorf("%s %q at %v is outside the layout", kind, id, at)
		}
		return nil
	}
	for _, d := range s.Doors {
		if err := claim("door", d.ID, d.At); err != nil {
			return err
		}
	}
	for _, d := range s.Drawers {
		if err := claim("drawer", d.ID, d.At); err != nil {
			return err
		}
	}
	for _, r := range s.CardReaders {
		if err := claim("card reader", r.ID, r.At); err != nil {
			return err
		}
	}
	for _, f := range s.FuseBoxes {
		if err := claim("fusebox", f.ID, f.At); err != nil {
			return err
		}
	}
	for _, l := range s.Lights {
		if err := claim("light", l.ID, l.At); err != nil {
			return err
		}
	}
	for _, z := range s.Zones {
		if err := claim("zone", z.ID, z.At); err != nil {
			return err
		}
	}
	for _, sc := range s.Scares {
		if err := claim("scare", sc.ID, sc.At); err != nil {
			return err
		}
		if sc.Figure != nil && !s.inBounds(*sc.Figure) {
			return errs.Errorf("scare %q figure at %v is outside the layout", sc.ID, *sc.Figure)
		}
	}
	for _, d := range s.Doors {
		if r := d.Random; r != nil && (r.MinDelay < 0 || r.MaxDelay < r.MinDelay) {
			return errs.Errorf("door %q random delays %v..%v are out of order", d.ID, r.MinDelay, r.MaxDelay)
		}
	}
	for _, p := range append(append([]ItemAt{}, s.Pickups...), s.FloorItems...) {
		if !s.inBounds(p.At) {
			return errs.Errorf("item %q at %v is outside the layout", p.Item, p.At)
		}
	}
	return nil
}

func (s *Scene) inBounds(p Pos) bool {
	return p.Row() >= 0 && p.Row() < len(s.Layout) && p.Col() >= 0 && p.Col() < len(s.Layout[0])
}
