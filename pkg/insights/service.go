package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/budgetmaster/budgetmaster/pkg/budget"
	"github.com/budgetmaster/budgetmaster/pkg/summary"
)

const (
	missingKeyMessage = "API Key is missing. Please configure the environment."
	emptyMessage      = "Could not generate insights at this time."
	fallbackMessage   = "Sorry, I couldn't analyze your budget right now. Please try again later."

	topExpenseCount = 5
)

// SheetFetcher supplies one migrated sheet by id.
type SheetFetcher func(ctx context.Context, id string) (budget.BudgetMonth, error)

type Service interface {
	ForSheet(ctx context.Context, sheetID string) (string, error)
}

// ServiceImpl produces AI observations about a sheet. Only a missing
// sheet surfaces as an error; every model-side failure degrades to a
// canned message so the dashboard always has something to show.
type ServiceImpl struct {
	fetchSheet SheetFetcher
	client     Client
	apiKey     string
}

func NewService(fetchSheet SheetFetcher, client Client, apiKey string) *ServiceImpl {
	return &ServiceImpl{fetchSheet: fetchSheet, client: client, apiKey: apiKey}
}

func (s *ServiceImpl) ForSheet(ctx context.Context, sheetID string) (string, error) {
	month, err := s.fetchSheet(ctx, sheetID)
	if err != nil {
		return "", err
	}

	if s.apiKey == "" {
		return missingKeyMessage, nil
	}

	prompt, err := buildPrompt(month)
	if err != nil {
		log.Errorf("Failed to build insights prompt: %v", err)
		return fallbackMessage, nil
	}

	text, err := s.client.GenerateInsights(ctx, prompt)
	if err != nil {
		return fallbackMessage, nil
	}
	if text == "" {
		return emptyMessage, nil
	}
	return text, nil
}

// promptData is the compact sheet digest sent to the model instead of
// the full document.
type promptData struct {
	Totals struct {
		Income   float64 `json:"income"`
		Expenses float64 `json:"expenses"`
	} `json:"totals"`
	Categories      map[string]float64 `json:"categories"`
	LargestExpenses []string           `json:"largestExpenses"`
}

func buildPrompt(month budget.BudgetMonth) (string, error) {
	totals := summary.Summarize(month)

	var data promptData
	data.Totals.Income = totals.Income
	data.Totals.Expenses = totals.Expenses
	data.Categories = summary.CategoryBreakdown(month)
	for _, t := range summary.TopExpenses(month, topExpenseCount) {
		data.LargestExpenses = append(data.LargestExpenses, fmt.Sprintf("%s: £%g", t.Name, t.Amount))
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("You are a helpful financial assistant for Chris and Dani.\n")
	b.WriteString("Analyze their monthly budget data below in JSON format.\n\n")
	b.WriteString("Data: ")
	b.Write(encoded)
	b.WriteString("\n\n")
	b.WriteString("Please provide 3 specific, actionable, and friendly observations or tips to help them save money or manage their cash flow better.\n")
	b.WriteString("Keep it brief (max 100 words total). Format as a bulleted list.\n")
	return b.String(), nil
}
