package castag

import "testing"

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	want := []string{"Creativity", "Action", "Service"}
	if len(cats) != len(want) {
		t.Fatalf("got %d categories, want %d", len(cats), len(want))
	}
	for i, c := range cats {
		if c.Name != want[i] {
			t.Errorf("category %d = %q, want %q", i, c.Name, want[i])
		}
		if c.Description == "" {
			t.Errorf("category %q has no description", c.Name)
		}
	}
}

func TestCustomCategories(t *testing.T) {
	c := mustTrain(t, WithCategories(
		Category{Name: "Art"},
		Category{Name: "Sport"},
		Category{Name: "Help", Description: "community work"},
	))

	cats := c.Categories()
	if cats[2].Name != "Help" || cats[2].Description != "community work" {
		t.Errorf("Categories()[2] = %+v", cats[2])
	}
	if got := c.Classify("play soccer").Categories; len(got) != 1 || got[0] != "Sport" {
		t.Errorf("Classify categories = %v, want [Sport]", got)
	}
}
