// Package chart projects the monthly records onto a declarative combo-chart
// spec. The spec is consumed by whatever charting library the front end
// embeds; nothing here depends on a particular one.
package chart

import (
	"fmt"
	"math"

	"github.com/wattlab/wattboard/internal/dataset"
	"github.com/wattlab/wattboard/internal/format"
	"github.com/wattlab/wattboard/pkg/models"
)

// Series kinds and axis positions.
const (
	SeriesBar  = "bar"
	SeriesLine = "line"
	AxisLeft   = "left"
	AxisRight  = "right"
)

// Spec is the full chart description: categorical month labels, a usage bar
// series on the left axis and a cost line series on the right.
type Spec struct {
	Labels  []string `json:"labels"`
	Series  []Series `json:"series"`
	Axes    []Axis   `json:"axes"`
	Tooltip Tooltip  `json:"tooltip"`
}

// Series is one plotted data series. Tooltips carries the per-point display
// strings, preformatted with grouped digits and the axis unit.
type Series struct {
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	Axis     string    `json:"axis"`
	Values   []float64 `json:"values"`
	Tooltips []string  `json:"tooltips"`
}

// Axis describes one linear Y axis. The right axis suppresses its grid lines
// so the left axis stays the reference grid.
type Axis struct {
	Position string `json:"position"`
	Title    string `json:"title"`
	Unit     string `json:"unit"`
	ShowGrid bool   `json:"showGrid"`
}

// Tooltip configures hover behavior. Index mode highlights every series at
// the hovered X position, not just the nearest point.
type Tooltip struct {
	Mode      string `json:"mode"`
	Intersect bool   `json:"intersect"`
}

// Build is a pure projection from the monthly records to the chart spec.
// Usage bars carry round(usageKWh); the cost line carries round(costWon) in
// millions of won.
func Build(months []models.MonthlyRecord) Spec {
	months = dataset.Sorted(months)

	labels := make([]string, 0, len(months))
	usage := make([]float64, 0, len(months))
	cost := make([]float64, 0, len(months))
	usageTips := make([]string, 0, len(months))
	costTips := make([]string, 0, len(months))
	for _, rec := range months {
		labels = append(labels, fmt.Sprintf("%d월", rec.Month))
		usage = append(usage, math.Round(rec.UsageKWh))
		cost = append(cost, math.Round(float64(rec.CostWon)/1_000_000))
		usageTips = append(usageTips, format.RoundComma(rec.UsageKWh)+" kWh")
		costTips = append(costTips, format.Comma(rec.CostWon)+"원")
	}

	return Spec{
		Labels: labels,
		Series: []Series{
			{Name: "월별 사용량", Kind: SeriesBar, Axis: AxisLeft, Values: usage, Tooltips: usageTips},
			{Name: "월별 요금", Kind: SeriesLine, Axis: AxisRight, Values: cost, Tooltips: costTips},
		},
		Axes: []Axis{
			{Position: AxisLeft, Title: "사용량", Unit: "kWh", ShowGrid: true},
			{Position: AxisRight, Title: "요금", Unit: "백만원", ShowGrid: false},
		},
		Tooltip: Tooltip{Mode: "index", Intersect: false},
	}
}
