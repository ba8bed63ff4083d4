package corpus

import (
	"testing"

	"github.com/crimson-sun/castag/internal/model"
)

func TestLoad(t *testing.T) {
	ds, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if ds.Len() == 0 {
		t.Fatal("corpus is empty")
	}
	t.Logf("Total entries: %d", ds.Len())

	for i, name := range ds.Names {
		if name == "" {
			t.Errorf("entry[%d] has empty name", i)
		}
		if ds.Labels[i] == (model.LabelVector{}) {
			t.Errorf("entry[%d] %q has no labels", i, name)
		}
	}
}

func TestCoverage(t *testing.T) {
	ds, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	var positives [model.NumLabels]int
	multi := 0
	for _, lv := range ds.Labels {
		n := 0
		for i := 0; i < model.NumLabels; i++ {
			if lv.Has(i) {
				positives[i]++
				n++
			}
		}
		if n > 1 {
			multi++
		}
	}
	for i, p := range positives {
		if p < 5 {
			t.Errorf("label %d has %d positive examples, want at least 5", i, p)
		}
	}
	if multi == 0 {
		t.Error("corpus has no multi-label entries")
	}
}
