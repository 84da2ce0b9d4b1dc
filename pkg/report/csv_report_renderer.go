package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type CsvReportRendererImpl struct {
}

func NewCsvReportRenderer() *CsvReportRendererImpl {
	return &CsvReportRendererImpl{}
}

// RenderSummary renders a site summary as CSV: a header row, one row per
// category, and a SUM row.
func (t *CsvReportRendererImpl) RenderSummary(summary SiteSummary) (string, error) {
	data := make([][]string, 0, len(summary.Categories)+2)
	data = append(data, []string{"Category", "Expenses", "Total (₹)"})
	for _, ct := range summary.Categories {
		data = append(data, []string{ct.Label, strconv.Itoa(ct.Count), ct.Total.String()})
	}
	data = append(data, []string{"SUM", strconv.Itoa(summary.ExpenseCount), summary.TotalAmount.String()})

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
