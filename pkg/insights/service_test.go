package insights

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetmaster/budgetmaster/pkg/budget"
	"github.com/budgetmaster/budgetmaster/pkg/sheet"
)

var clientStub = NewClientStub()

func fetcherFor(months ...budget.BudgetMonth) SheetFetcher {
	return func(ctx context.Context, id string) (budget.BudgetMonth, error) {
		for _, m := range months {
			if m.ID == id {
				return m, nil
			}
		}
		return budget.BudgetMonth{}, sheet.ErrSheetNotFound
	}
}

func sampleMonth() budget.BudgetMonth {
	return budget.BudgetMonth{
		ID:   "2026-03",
		Name: "March 2026",
		Transactions: []budget.Transaction{
			{ID: "t1", Name: "Wages", Amount: 1800, Type: budget.TypeIncoming},
			{ID: "t2", Name: "Rent", Amount: 900, Type: budget.TypeBillMain},
			{ID: "t3", Name: "Netflix", Amount: 15, Type: budget.TypeBillCancellable},
		},
	}
}

func TestServiceImpl_ForSheet(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the model's text", func(t *testing.T) {
		defer clientStub.Reset()

		// given
		clientStub.SetText("- Cancel Netflix")
		service := NewService(fetcherFor(sampleMonth()), clientStub, "key")

		// when
		text, err := service.ForSheet(ctx, "2026-03")

		// then
		require.NoError(t, err)
		assert.Equal(t, "- Cancel Netflix", text)
		assert.Equal(t, 1, clientStub.Invocations())
	})

	t.Run("prompt carries the sheet digest, not the raw document", func(t *testing.T) {
		defer clientStub.Reset()

		// given
		clientStub.SetText("ok")
		service := NewService(fetcherFor(sampleMonth()), clientStub, "key")

		// when
		_, err := service.ForSheet(ctx, "2026-03")

		// then
		require.NoError(t, err)
		prompt := clientStub.LastPrompt()
		assert.Contains(t, prompt, `"income":1800`)
		assert.Contains(t, prompt, `"expenses":915`)
		assert.Contains(t, prompt, "Rent: £900")
		assert.NotContains(t, prompt, `"transactions"`)
	})

	t.Run("missing API key short-circuits without calling the model", func(t *testing.T) {
		defer clientStub.Reset()

		service := NewService(fetcherFor(sampleMonth()), clientStub, "")

		text, err := service.ForSheet(ctx, "2026-03")

		require.NoError(t, err)
		assert.Equal(t, "API Key is missing. Please configure the environment.", text)
		assert.Zero(t, clientStub.Invocations())
	})

	t.Run("transport failure degrades to the fallback message", func(t *testing.T) {
		defer clientStub.Reset()

		clientStub.SetError(errors.New("connection refused"))
		service := NewService(fetcherFor(sampleMonth()), clientStub, "key")

		text, err := service.ForSheet(ctx, "2026-03")

		require.NoError(t, err, "model failures must never surface as errors")
		assert.Equal(t, "Sorry, I couldn't analyze your budget right now. Please try again later.", text)
	})

	t.Run("empty model response degrades to the empty message", func(t *testing.T) {
		defer clientStub.Reset()

		clientStub.SetText("")
		service := NewService(fetcherFor(sampleMonth()), clientStub, "key")

		text, err := service.ForSheet(ctx, "2026-03")

		require.NoError(t, err)
		assert.Equal(t, "Could not generate insights at this time.", text)
	})

	t.Run("unknown sheet is the one real error", func(t *testing.T) {
		defer clientStub.Reset()

		service := NewService(fetcherFor(), clientStub, "key")

		_, err := service.ForSheet(ctx, "nope")

		assert.ErrorIs(t, err, sheet.ErrSheetNotFound)
	})
}
