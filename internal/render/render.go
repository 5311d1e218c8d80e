// Package render builds the view model behind the dashboard page. Rendering
// is a pure projection from the dataset to display strings, so repeating it
// can never duplicate or mutate content.
package render

import (
	"github.com/wattlab/wattboard/internal/dataset"
	"github.com/wattlab/wattboard/internal/format"
	"github.com/wattlab/wattboard/pkg/models"
)

// Entrance delay added per tip card index. Purely cosmetic.
const tipStaggerMS = 80

// SummaryView holds the four formatted summary figures.
type SummaryView struct {
	TotalUsage string
	TotalCost  string
	AvgUsage   string
	AvgCost    string
}

// TipView is one tip card ready for display.
type TipView struct {
	Icon        string
	Title       string
	Description string
	DelayMS     int
}

// PageView is the complete view model for the dashboard page.
type PageView struct {
	Building string
	Year     int
	Summary  SummaryView
	Tips     []TipView
}

// BuildPage derives the page view from the dataset. The summary figures are
// recomputed from the monthly records on every call.
func BuildPage(ds *models.Dataset) PageView {
	sum := dataset.Summarize(ds.Months)

	tips := make([]TipView, 0, len(ds.Tips))
	for i, tip := range ds.Tips {
		tips = append(tips, TipView{
			Icon:        tip.Icon,
			Title:       tip.Title,
			Description: tip.Description,
			DelayMS:     i * tipStaggerMS,
		})
	}

	return PageView{
		Building: ds.Building,
		Year:     ds.Year,
		Summary: SummaryView{
			TotalUsage: format.RoundComma(sum.TotalUsageKWh) + " kWh",
			TotalCost:  format.Comma(sum.TotalCostWon) + "원",
			AvgUsage:   format.RoundComma(sum.AvgUsageKWh) + " kWh",
			AvgCost:    format.Comma(sum.AvgCostWon) + "원",
		},
		Tips: tips,
	}
}
