package summary

import (
	"github.com/budgetmaster/budgetmaster/pkg/budget"
)

// trailingWindow is how many of the most recent sheets feed the
// averages on the dashboard.
const trailingWindow = 6

// MonthSummary pairs a sheet's identity with its totals.
type MonthSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Summary
}

// RollupStats aggregates every sheet in storage order: averages over
// the trailing window, the remaining delta between the two newest
// sheets, and the best sheet across the whole history.
type RollupStats struct {
	Months         []MonthSummary `json:"months"`
	AvgIncome      float64        `json:"avgIncome"`
	AvgExpenses    float64        `json:"avgExpenses"`
	AvgRemaining   float64        `json:"avgRemaining"`
	RemainingDelta float64        `json:"remainingDelta"`
	BestMonth      *MonthSummary  `json:"bestMonth,omitempty"`
}

// Rollup computes multi-sheet statistics. Sheets are taken in storage
// order, not parsed-date order. An empty history yields the zero value
// with no divisions performed.
func Rollup(months []budget.BudgetMonth) RollupStats {
	stats := RollupStats{Months: make([]MonthSummary, 0, len(months))}
	for _, m := range months {
		stats.Months = append(stats.Months, MonthSummary{ID: m.ID, Name: m.Name, Summary: Summarize(m)})
	}
	if len(stats.Months) == 0 {
		return stats
	}

	window := stats.Months
	if len(window) > trailingWindow {
		window = window[len(window)-trailingWindow:]
	}
	for _, ms := range window {
		stats.AvgIncome += ms.Income
		stats.AvgExpenses += ms.Expenses
		stats.AvgRemaining += ms.Remaining
	}
	n := float64(len(window))
	stats.AvgIncome /= n
	stats.AvgExpenses /= n
	stats.AvgRemaining /= n

	if len(stats.Months) >= 2 {
		last := stats.Months[len(stats.Months)-1]
		previous := stats.Months[len(stats.Months)-2]
		stats.RemainingDelta = last.Remaining - previous.Remaining
	}

	best := stats.Months[0]
	for _, ms := range stats.Months[1:] {
		if ms.Remaining > best.Remaining {
			best = ms
		}
	}
	stats.BestMonth = &best

	return stats
}
