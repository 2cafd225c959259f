package summary

import (
	"sort"

	"github.com/budgetmaster/budgetmaster/pkg/budget"
)

// Summary holds the derived totals of a single sheet.
type Summary struct {
	Income    float64 `json:"income"`
	Expenses  float64 `json:"expenses"`
	Remaining float64 `json:"remaining"`
}

// OutgoingPercent is expenses as a share of income. Returns 0 when the
// sheet has no income, so callers never render NaN.
func (s Summary) OutgoingPercent() float64 {
	if s.Income <= 0 {
		return 0
	}
	return s.Expenses / s.Income * 100
}

// RemainingPercent is the positive part of remaining as a share of
// income, with the same zero-income guard.
func (s Summary) RemainingPercent() float64 {
	if s.Income <= 0 {
		return 0
	}
	if s.Remaining < 0 {
		return 0
	}
	return s.Remaining / s.Income * 100
}

// isIncome classifies one transaction against the sheet's section
// styles. INCOMING is income, every other system type is an expense,
// and a custom type follows its owning section's classification with
// expense as the fallback when no style exists.
func isIncome(t budget.Transaction, styles map[string]budget.SectionStyle) bool {
	if t.Type == budget.TypeIncoming {
		return true
	}
	if t.Type.IsSystem() {
		return false
	}
	style, ok := styles[string(t.Type)]
	return ok && style.Type == budget.StyleIncome
}

// Summarize computes the income/expense/remaining totals of a sheet.
// Slider values always count as expenses regardless of their section's
// classification; that is the documented behavior of the original
// dashboard, kept as-is.
func Summarize(m budget.BudgetMonth) Summary {
	var s Summary
	for _, t := range m.Transactions {
		if isIncome(t, m.SectionStyles) {
			s.Income += t.Amount
		} else {
			s.Expenses += t.Amount
		}
	}
	for _, group := range m.Sliders {
		for _, slider := range group {
			s.Expenses += slider.Value
		}
	}
	s.Remaining = s.Income - s.Expenses
	return s
}

// CategoryBreakdown totals expense amounts per transaction type.
func CategoryBreakdown(m budget.BudgetMonth) map[string]float64 {
	out := map[string]float64{}
	for _, t := range m.Transactions {
		if isIncome(t, m.SectionStyles) {
			continue
		}
		out[string(t.Type)] += t.Amount
	}
	return out
}

// TopExpenses returns the n largest expense line items, biggest first.
func TopExpenses(m budget.BudgetMonth, n int) []budget.Transaction {
	expenses := make([]budget.Transaction, 0, len(m.Transactions))
	for _, t := range m.Transactions {
		if !isIncome(t, m.SectionStyles) {
			expenses = append(expenses, t)
		}
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount > expenses[j].Amount
	})
	if len(expenses) > n {
		expenses = expenses[:n]
	}
	return expenses
}
