package inventory

import (
	"testing"

	"blackout/pkg/engine/world"
)

var (
	fuse   = &world.ItemDefinition{ID: "Fuse", Name: "Fuse"}
	refuse = &world.ItemDefinition{ID: "Refuse", Name: "Refuse"}
	idCard = &world.ItemDefinition{ID: "IDCard", Name: "ID Card"}
)

func TestAdd_SameItemStacks(t *testing.T) {
	s := New()
	s.Add(fuse)
	s.Add(fuse)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 slot", s.Len())
	}
	if slot, _ := s.SlotAt(0); slot.Count != 2 {
		t.Errorf("slot count = %d, want 2", slot.Count)
	}
}

func TestAdd_KeepsPickupOrder(t *testing.T) {
	s := New()
	s.Add(idCard)
	s.Add(fuse)
	s.Add(idCard)
	if s.ItemAt(0) != idCard || s.ItemAt(1) != fuse {
		t.Errorf("order = [%v %v], want [IDCard Fuse]", s.ItemAt(0).ID, s.ItemAt(1).ID)
	}
}

func TestAdd_NotifiesListeners(t *testing.T) {
	s := New()
	var got []world.ItemID
	s.OnItemAdded(func(item *world.ItemDefinition) { got = append(got, item.ID) })
	s.Add(fuse)
	s.Add(nil)
	s.Add(fuse)
	if len(got) != 2 {
		t.Errorf("notifications = %v, want two Fuse notifications", got)
	}
}

func TestRemoveOne_AbsentIsNoop(t *testing.T) {
	s := New()
	s.RemoveOne("Fuse")
	if s.CountOf("Fuse") != 0 || s.Len() != 0 {
		t.Errorf("after RemoveOne on empty: count %d, len %d; want 0, 0", s.CountOf("Fuse"), s.Len())
	}
}

func TestRemoveOne_DropsEmptySlot(t *testing.T) {
	s := New()
	s.Add(fuse)
	s.Add(idCard)
	s.RemoveOne("Fuse")
	s.RemoveOne("Fuse")
	if s.Len() != 1 || s.ItemAt(0) != idCard {
		t.Errorf("slots after removal = %d (first %v), want 1 (IDCard)", s.Len(), s.ItemAt(0))
	}
	if s.CountOf("Fuse") != 0 {
		t.Errorf("CountOf(Fuse) = %d, want 0", s.CountOf("Fuse"))
	}
}

func TestRemove_ClampsToHeld(t *testing.T) {
	s := New()
	s.Add(fuse)
	s.Add(fuse)
	if n := s.Remove("Fuse", 5); n != 2 {
		t.Errorf("Remove(Fuse, 5) = %d, want 2", n)
	}
	if n := s.Remove("Fuse", 1); n != 0 {
		t.Errorf("Remove on emptied item = %d, want 0", n)
	}
}

func TestHas_NoSubstringMatch(t *testing.T) {
	s := New()
	s.Add(refuse)
	if s.Has("Fuse") {
		t.Error("Has(Fuse) = true with only Refuse held")
	}
	if !s.Has("Refuse") {
		t.Error("Has(Refuse) = false")
	}
}

func TestHasAtLeast(t *testing.T) {
	s := New()
	s.Add(fuse)
	s.Add(fuse)
	if !s.HasAtLeast("Fuse", 2) || s.HasAtLeast("Fuse", 3) {
		t.Error("HasAtLeast disagrees with count 2")
	}
	if !s.HasAtLeast("Nothing", 0) {
		t.Error("HasAtLeast(_, 0) = false, want true")
	}
}

func TestSlotAt_OutOfRange(t *testing.T) {
	s := New()
	s.Add(fuse)
	for _, i := range []int{-1, 1, 100} {
		if _, ok := s.SlotAt(i); ok {
			t.Errorf("SlotAt(%d) ok = true, want false", i)
		}
		if s.ItemAt(i) != nil {
			t.Errorf("ItemAt(%d) = non-nil, want nil", i)
		}
	}
}

func TestSlots_IsCopy(t *testing.T) {
	s := New()
	s.Add(fuse)
	slots := s.Slots()
	slots[0].Count = 99
	if s.CountOf("Fuse") != 1 {
		t.Error("mutating Slots() result changed the store")
	}
}
