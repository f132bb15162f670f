package phases

import "testing"

func TestAllOrderingAndCount(t *testing.T) {
	got := All()
	if len(got) != Count {
		t.Fatalf("len(All()) = %d, want %d", len(got), Count)
	}
	if got[0].ID != "overview" || got[Count-1].ID != "summary" {
		t.Errorf("ordering = %s..%s", got[0].ID, got[Count-1].ID)
	}
	seen := map[string]bool{}
	for _, p := range got {
		if p.ID == "" || p.Title == "" || p.Focus == "" {
			t.Errorf("phase %q has empty fields", p.ID)
		}
		if seen[p.ID] {
			t.Errorf("duplicate phase id %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestByIndex(t *testing.T) {
	if p, ok := ByIndex(0); !ok || p.ID != "overview" {
		t.Errorf("ByIndex(0) = %v, %v", p, ok)
	}
	if _, ok := ByIndex(Count); ok {
		t.Error("ByIndex(Count) = ok, want out of range")
	}
	if _, ok := ByIndex(-1); ok {
		t.Error("ByIndex(-1) = ok, want out of range")
	}
}

func TestByID(t *testing.T) {
	if p, ok := ByID("deep_dive"); !ok || p.Title != "Deep Dive" {
		t.Errorf("ByID(deep_dive) = %v, %v", p, ok)
	}
	if _, ok := ByID("nope"); ok {
		t.Error("ByID(nope) = ok")
	}
}
