package render

import (
	"reflect"
	"testing"

	"github.com/wattlab/wattboard/internal/dataset"
)

func TestBuildPage(t *testing.T) {
	ds, err := dataset.Default()
	if err != nil {
		t.Fatalf("loading dataset: %v", err)
	}

	page := BuildPage(ds)

	if page.Building != ds.Building || page.Year != ds.Year {
		t.Fatalf("unexpected header fields: %+v", page)
	}
	// Reference totals: 2,237,038.45 kWh and 623,392,141 won over 12 months.
	if page.Summary.TotalUsage != "2,237,038 kWh" {
		t.Fatalf("total usage = %q", page.Summary.TotalUsage)
	}
	if page.Summary.TotalCost != "623,392,141원" {
		t.Fatalf("total cost = %q", page.Summary.TotalCost)
	}
	if page.Summary.AvgUsage != "186,420 kWh" {
		t.Fatalf("avg usage = %q", page.Summary.AvgUsage)
	}
	if page.Summary.AvgCost != "51,949,345원" {
		t.Fatalf("avg cost = %q", page.Summary.AvgCost)
	}
}

func TestBuildPageTips(t *testing.T) {
	ds, err := dataset.Default()
	if err != nil {
		t.Fatalf("loading dataset: %v", err)
	}

	page := BuildPage(ds)

	if len(page.Tips) != len(ds.Tips) {
		t.Fatalf("expected %d tips, got %d", len(ds.Tips), len(page.Tips))
	}
	for i, tip := range page.Tips {
		if tip.Title != ds.Tips[i].Title {
			t.Fatalf("tip %d out of order: %q", i, tip.Title)
		}
		if tip.DelayMS != i*tipStaggerMS {
			t.Fatalf("tip %d delay = %d", i, tip.DelayMS)
		}
	}
}

func TestBuildPageIdempotent(t *testing.T) {
	ds, err := dataset.Default()
	if err != nil {
		t.Fatalf("loading dataset: %v", err)
	}

	first := BuildPage(ds)
	second := BuildPage(ds)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated renders differ")
	}
	if len(second.Tips) != 10 {
		t.Fatalf("expected 10 tip cards after re-render, got %d", len(second.Tips))
	}
}
