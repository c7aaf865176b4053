package world

import "testing"

// corridor builds a 1x6 corridor with walls on both ends: # . . . . #
func corridor(t *testing.T) *Grid {
	t.Helper()
	g := NewGrid(1, 6)
	for col := 1; col <= 4; col++ {
		if !g.MarkAsRoom(0, col) {
			t.Fatalf("MarkAsRoom(0, %d) = false", col)
		}
	}
	return g
}

func TestCast_StopsOnWall(t *testing.T) {
	g := corridor(t)
	rc := GridRaycaster{Grid: g}
	hit, ok := rc.Cast(g.GetCell(0, 1), East, 10)
	if !ok {
		t.Fatal("Cast = no hit, want wall hit")
	}
	if !hit.Wall || hit.Cell.Col != 5 || hit.Distance != 4 {
		t.Errorf("hit = {col %d, dist %d, wall %v}, want {col 5, dist 4, wall true}", hit.Cell.Col, hit.Distance, hit.Wall)
	}
}

func TestCast_RespectsMaxDistance(t *testing.T) {
	g := corridor(t)
	rc := GridRaycaster{Grid: g}
	if _, ok := rc.Cast(g.GetCell(0, 1), East, 3); ok {
		t.Error("Cast with range 3 hit something, want nothing before the wall at distance 4")
	}
}

func TestCast_FirstSolidOnly(t *testing.T) {
	g := corridor(t)
	solid := map[*Cell]bool{g.GetCell(0, 3): true, g.GetCell(0, 4): true}
	rc := GridRaycaster{Grid: g, Solid: func(c *Cell) bool { return solid[c] }}
	hit, ok := rc.Cast(g.GetCell(0, 1), East, 5)
	if !ok {
		t.Fatal("Cast = no hit, want solid hit")
	}
	if hit.Cell.Col != 3 || hit.Distance != 2 || hit.Wall {
		t.Errorf("hit = {col %d, dist %d, wall %v}, want {col 3, dist 2, wall false}", hit.Cell.Col, hit.Distance, hit.Wall)
	}
}

func TestCast_OriginNeverHits(t *testing.T) {
	g := corridor(t)
	origin := g.GetCell(0, 2)
	rc := GridRaycaster{Grid: g, Solid: func(c *Cell) bool { return c == origin }}
	hit, ok := rc.Cast(origin, East, 10)
	if ok && hit.Cell == origin {
		t.Error("Cast hit its own origin")
	}
}

func TestCast_InvalidInputs(t *testing.T) {
	g := corridor(t)
	rc := GridRaycaster{Grid: g}
	if _, ok := rc.Cast(nil, East, 3); ok {
		t.Error("Cast(nil origin) hit, want no hit")
	}
	if _, ok := rc.Cast(g.GetCell(0, 1), Direction(9), 3); ok {
		t.Error("Cast(invalid dir) hit, want no hit")
	}
	if _, ok := rc.Cast(g.GetCell(0, 1), East, 0); ok {
		t.Error("Cast(range 0) hit, want no hit")
	}
}

func TestRevealFOV_WallBlocksSight(t *testing.T) {
	// . # .
	g := NewGrid(1, 3)
	g.MarkAsRoom(0, 0)
	g.MarkAsRoom(0, 2)
	RevealFOV(g, g.GetCell(0, 0), 2)
	if !g.GetCell(0, 1).Discovered {
		t.Error("wall next to player not discovered")
	}
	if g.GetCell(0, 2).Discovered {
		t.Error("cell behind wall discovered, want hidden")
	}
}

func TestDirection_Turns(t *testing.T) {
	if North.Right() != East || North.Left() != West || East.Opposite() != West {
		t.Error("quarter turns do not match compass order")
	}
	if d, ok := ParseDirection(" South "); !ok || d != South {
		t.Errorf("ParseDirection(South) = %v, %v; want South, true", d, ok)
	}
	if _, ok := ParseDirection("up"); ok {
		t.Error("ParseDirection(up) = ok, want false")
	}
}
