package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/budgetmaster/budgetmaster/pkg/budget"
)

func tx(name string, amount float64, t budget.TransactionType) budget.Transaction {
	return budget.Transaction{ID: name, Name: name, Amount: amount, Type: t}
}

func TestSummarize(t *testing.T) {
	t.Run("should total income and expenses across sections", func(t *testing.T) {
		// given
		month := budget.BudgetMonth{
			Transactions: []budget.Transaction{
				tx("Wages", 1000, budget.TypeIncoming),
				tx("Rent", 300, budget.TypeBillMain),
				tx("Groceries", 200, budget.TypePot),
			},
		}

		// when
		s := Summarize(month)

		// then
		assert.Equal(t, 1000.0, s.Income)
		assert.Equal(t, 500.0, s.Expenses)
		assert.Equal(t, 500.0, s.Remaining)
	})

	t.Run("custom types follow their section's classification", func(t *testing.T) {
		// given a custom section styled as income
		month := budget.BudgetMonth{
			Transactions: []budget.Transaction{
				tx("Side hustle", 150, budget.TransactionType("section_custom_1")),
			},
			SectionStyles: map[string]budget.SectionStyle{
				"section_custom_1": {Title: "Side Income", Type: budget.StyleIncome},
			},
		}

		// when
		s := Summarize(month)

		// then
		assert.Equal(t, 150.0, s.Income)
		assert.Equal(t, 0.0, s.Expenses)
	})

	t.Run("custom types without a style fall back to expense", func(t *testing.T) {
		month := budget.BudgetMonth{
			Transactions: []budget.Transaction{
				tx("Mystery", 75, budget.TransactionType("section_custom_9")),
			},
		}

		s := Summarize(month)

		assert.Equal(t, 0.0, s.Income)
		assert.Equal(t, 75.0, s.Expenses)
	})

	t.Run("slider values always count as expenses", func(t *testing.T) {
		// given sliders inside a section styled as income
		month := budget.BudgetMonth{
			Sliders: map[string][]budget.SliderItem{
				budget.SectionPersonalAllowance: {
					{ID: "s1", Name: "Chris", Value: 120, Max: 600},
					{ID: "s2", Name: "Dani", Value: 80, Max: 600},
				},
			},
			SectionStyles: map[string]budget.SectionStyle{
				budget.SectionPersonalAllowance: {Title: "Personal Allowance", Type: budget.StyleIncome},
			},
		}

		// when
		s := Summarize(month)

		// then
		assert.Equal(t, 0.0, s.Income)
		assert.Equal(t, 200.0, s.Expenses)
		assert.Equal(t, -200.0, s.Remaining)
	})

	t.Run("empty sheet summarizes to zero", func(t *testing.T) {
		s := Summarize(budget.BudgetMonth{})

		assert.Equal(t, Summary{}, s)
	})
}

func TestSummary_Percentages(t *testing.T) {
	t.Run("should derive percentages from income", func(t *testing.T) {
		s := Summary{Income: 1000, Expenses: 500, Remaining: 500}

		assert.InDelta(t, 50.0, s.OutgoingPercent(), 0.001)
		assert.InDelta(t, 50.0, s.RemainingPercent(), 0.001)
	})

	t.Run("zero income never divides", func(t *testing.T) {
		s := Summary{Income: 0, Expenses: 300, Remaining: -300}

		assert.Equal(t, 0.0, s.OutgoingPercent())
		assert.Equal(t, 0.0, s.RemainingPercent())
	})

	t.Run("overspent sheet reports zero remaining percent", func(t *testing.T) {
		s := Summary{Income: 100, Expenses: 150, Remaining: -50}

		assert.Equal(t, 0.0, s.RemainingPercent())
	})
}

func TestCategoryBreakdown(t *testing.T) {
	t.Run("should total expenses per type and skip income", func(t *testing.T) {
		month := budget.BudgetMonth{
			Transactions: []budget.Transaction{
				tx("Wages", 1800, budget.TypeIncoming),
				tx("Rent", 900, budget.TypeBillMain),
				tx("Electric", 100, budget.TypeBillMain),
				tx("Netflix", 15, budget.TypeBillCancellable),
			},
		}

		breakdown := CategoryBreakdown(month)

		assert.Equal(t, map[string]float64{
			string(budget.TypeBillMain):        1000.0,
			string(budget.TypeBillCancellable): 15.0,
		}, breakdown)
	})
}

func TestTopExpenses(t *testing.T) {
	t.Run("should return the n largest expenses, biggest first", func(t *testing.T) {
		month := budget.BudgetMonth{
			Transactions: []budget.Transaction{
				tx("Wages", 1800, budget.TypeIncoming),
				tx("Netflix", 15, budget.TypeBillCancellable),
				tx("Rent", 900, budget.TypeBillMain),
				tx("Groceries", 300, budget.TypePot),
			},
		}

		top := TopExpenses(month, 2)

		assert.Len(t, top, 2)
		assert.Equal(t, "Rent", top[0].Name)
		assert.Equal(t, "Groceries", top[1].Name)
	})

	t.Run("should return fewer when the sheet has fewer expenses", func(t *testing.T) {
		month := budget.BudgetMonth{
			Transactions: []budget.Transaction{tx("Rent", 900, budget.TypeBillMain)},
		}

		top := TopExpenses(month, 5)

		assert.Len(t, top, 1)
	})
}
