package catalog

import (
	"sort"
	"strings"
	"testing"
)

func mustLoad(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return c
}

func TestLoad(t *testing.T) {
	c := mustLoad(t)

	all := c.All()
	if len(all) == 0 {
		t.Fatal("Load() produced an empty catalog")
	}

	groups := c.MuscleGroups()
	if !sort.StringsAreSorted(groups) {
		t.Errorf("MuscleGroups() not sorted: %v", groups)
	}
	for _, want := range []string{"chest", "back", "legs", "arms", "shoulders", "core", "cardio"} {
		found := false
		for _, g := range groups {
			if g == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("MuscleGroups() missing %q: %v", want, groups)
		}
	}

	// Every exercise carries its group and a complete entry.
	seen := make(map[string]bool)
	for _, ex := range all {
		if ex.ID == "" || ex.Name == "" || ex.MuscleGroup == "" {
			t.Errorf("incomplete exercise: %+v", ex)
		}
		if ex.GifURL == "" || ex.Description1 == "" || ex.Description2 == "" {
			t.Errorf("exercise %s is missing media or descriptions", ex.ID)
		}
		if seen[ex.ID] {
			t.Errorf("duplicate id %s in All()", ex.ID)
		}
		seen[ex.ID] = true
	}
}

func TestListByMuscleGroup(t *testing.T) {
	c := mustLoad(t)

	tests := []struct {
		name  string
		group string
		want  int
	}{
		{"exact key", "chest", 4},
		{"case insensitive", "CHEST", 4},
		{"surrounding whitespace", "  legs ", 4},
		{"unknown group yields empty", "forearms", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.ListByMuscleGroup(tt.group)
			if len(got) != tt.want {
				t.Fatalf("ListByMuscleGroup(%q) returned %d exercises, want %d", tt.group, len(got), tt.want)
			}
			for _, ex := range got {
				if !strings.EqualFold(ex.MuscleGroup, strings.TrimSpace(tt.group)) {
					t.Errorf("exercise %s has group %q", ex.ID, ex.MuscleGroup)
				}
			}
		})
	}
}

func TestSearch(t *testing.T) {
	c := mustLoad(t)

	tests := []struct {
		name     string
		term     string
		wantID   string
		wantSome bool
	}{
		{"exact name fragment", "Bench", "chest-001", true},
		{"case insensitive", "bench", "chest-001", true},
		{"partial word", "curl", "arms-001", true},
		{"no match", "zzzz", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Search(tt.term)
			if !tt.wantSome {
				if len(got) != 0 {
					t.Fatalf("Search(%q) = %d results, want 0", tt.term, len(got))
				}
				return
			}
			if len(got) == 0 {
				t.Fatalf("Search(%q) returned nothing", tt.term)
			}
			found := false
			for _, ex := range got {
				if ex.ID == tt.wantID {
					found = true
				}
				if !strings.Contains(strings.ToLower(ex.Name), strings.ToLower(tt.term)) {
					t.Errorf("Search(%q) returned non-matching %q", tt.term, ex.Name)
				}
			}
			if !found {
				t.Errorf("Search(%q) missing %s", tt.term, tt.wantID)
			}
		})
	}
}

func TestSearch_EmptyTermMatchesEverything(t *testing.T) {
	c := mustLoad(t)
	if got, all := c.Search(""), c.All(); len(got) != len(all) {
		t.Errorf("Search(\"\") = %d results, want %d", len(got), len(all))
	}
}

func TestGetByID(t *testing.T) {
	c := mustLoad(t)

	ex, ok := c.GetByID("legs-001")
	if !ok {
		t.Fatal("GetByID(legs-001) not found")
	}
	if ex.Name != "Barbell Squat" || ex.MuscleGroup != "legs" {
		t.Errorf("GetByID(legs-001) = %+v", ex)
	}

	if _, ok := c.GetByID("nope-999"); ok {
		t.Error("GetByID(nope-999) ok = true, want false")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := mustLoad(t)

	first := c.All()
	first[0].Name = "mutated"

	again := c.All()
	if again[0].Name == "mutated" {
		t.Error("All() exposes internal state; callers can corrupt the catalog")
	}
}
