package summary

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type CsvSummaryRendererImpl struct {
}

func NewCsvSummaryRenderer() *CsvSummaryRendererImpl {
	return &CsvSummaryRendererImpl{}
}

// RenderRollup produces a CSV export of the rollup: one row per sheet
// plus footer rows with the trailing averages and the best sheet.
func (r *CsvSummaryRendererImpl) RenderRollup(stats RollupStats) (string, error) {
	data := make([][]string, 0, len(stats.Months)+3)
	data = append(data, []string{"Sheet", "Income", "Expenses", "Remaining"})
	for _, ms := range stats.Months {
		data = append(data, []string{
			ms.Name,
			formatAmount(ms.Income),
			formatAmount(ms.Expenses),
			formatAmount(ms.Remaining),
		})
	}
	data = append(data, []string{
		"Average (last 6)",
		formatAmount(stats.AvgIncome),
		formatAmount(stats.AvgExpenses),
		formatAmount(stats.AvgRemaining),
	})
	if stats.BestMonth != nil {
		data = append(data, []string{
			"Best: " + stats.BestMonth.Name,
			formatAmount(stats.BestMonth.Income),
			formatAmount(stats.BestMonth.Expenses),
			formatAmount(stats.BestMonth.Remaining),
		})
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	if err := writer.WriteAll(data); err != nil {
		log.Errorf("could not write CSV data: %v", err)
		return "", err
	}
	writer.Flush()
	return buffer.String(), nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
