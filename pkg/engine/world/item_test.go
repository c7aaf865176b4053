package world

import "testing"

func TestCanonicalName(t *testing.T) {
	cases := map[string]string{
		"Fuse":        "Fuse",
		"Fuse (1)":    "Fuse",
		" Fuse (12) ": "Fuse",
		"Refuse":      "Refuse",
		"Fuse (a)":    "Fuse (a)",
	}
	for in, want := range cases {
		if got := CanonicalName(in); got != want {
			t.Errorf("CanonicalName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCatalog_RegisterAndLookup(t *testing.T) {
	c := NewCatalog()
	fuse, err := c.Register(ItemDefinition{Name: "Fuse"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if fuse.ID != "Fuse" || fuse.IconScale != 1 {
		t.Errorf("fuse = {ID %q, scale %v}, want {Fuse, 1}", fuse.ID, fuse.IconScale)
	}
	if c.Lookup("Fuse (3)") != fuse {
		t.Error("Lookup(Fuse (3)) did not resolve to the Fuse definition")
	}
	if c.Lookup("Refuse") != nil {
		t.Error("Lookup(Refuse) resolved, want nil")
	}
	if _, err := c.Register(ItemDefinition{Name: "Fuse (2)"}); err == nil {
		t.Error("Register duplicate = nil error, want error")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCatalog_NilSafe(t *testing.T) {
	var c *Catalog
	if c.Get("x") != nil || c.Len() != 0 || c.All() != nil {
		t.Error("nil catalog accessors returned values")
	}
}
