package chart

import (
	"testing"

	"github.com/wattlab/wattboard/internal/dataset"
)

func TestBuildFromReferenceDataset(t *testing.T) {
	ds, err := dataset.Default()
	if err != nil {
		t.Fatalf("loading dataset: %v", err)
	}

	spec := Build(ds.Months)

	if len(spec.Labels) != 12 {
		t.Fatalf("expected 12 labels, got %d", len(spec.Labels))
	}
	if spec.Labels[0] != "1월" || spec.Labels[11] != "12월" {
		t.Fatalf("unexpected labels: %v", spec.Labels)
	}

	if len(spec.Series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(spec.Series))
	}

	bars := spec.Series[0]
	if bars.Kind != SeriesBar || bars.Axis != AxisLeft {
		t.Fatalf("unexpected bar series: %+v", bars)
	}
	// Bar values are round(usageKWh): January is 198432.15 kWh.
	if bars.Values[0] != 198432 {
		t.Fatalf("expected 198432, got %v", bars.Values[0])
	}
	if bars.Tooltips[0] != "198,432 kWh" {
		t.Fatalf("unexpected tooltip: %q", bars.Tooltips[0])
	}

	line := spec.Series[1]
	if line.Kind != SeriesLine || line.Axis != AxisRight {
		t.Fatalf("unexpected line series: %+v", line)
	}
	// Line values are round(costWon / 1,000,000): January is 55,366,318 won.
	if line.Values[0] != 55 {
		t.Fatalf("expected 55, got %v", line.Values[0])
	}
	if line.Tooltips[0] != "55,366,318원" {
		t.Fatalf("unexpected tooltip: %q", line.Tooltips[0])
	}
}

func TestBuildAxesAndTooltip(t *testing.T) {
	ds, err := dataset.Default()
	if err != nil {
		t.Fatalf("loading dataset: %v", err)
	}

	spec := Build(ds.Months)

	if len(spec.Axes) != 2 {
		t.Fatalf("expected 2 axes, got %d", len(spec.Axes))
	}
	left, right := spec.Axes[0], spec.Axes[1]
	if left.Position != AxisLeft || !left.ShowGrid {
		t.Fatalf("left axis must keep the reference grid: %+v", left)
	}
	if right.Position != AxisRight || right.ShowGrid {
		t.Fatalf("right axis grid must be suppressed: %+v", right)
	}

	if spec.Tooltip.Mode != "index" || spec.Tooltip.Intersect {
		t.Fatalf("tooltip must highlight the shared index: %+v", spec.Tooltip)
	}
}

func TestBuildSortsUnorderedMonths(t *testing.T) {
	ds, err := dataset.Default()
	if err != nil {
		t.Fatalf("loading dataset: %v", err)
	}

	months := ds.Months
	months[0], months[11] = months[11], months[0]

	spec := Build(months)
	for i, label := range spec.Labels {
		want := []string{"1월", "2월", "3월", "4월", "5월", "6월", "7월", "8월", "9월", "10월", "11월", "12월"}[i]
		if label != want {
			t.Fatalf("label %d = %q, want %q", i, label, want)
		}
	}
}
