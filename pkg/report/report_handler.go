package report

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type CategoryTotalDTO struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
	Total    string `json:"total"`
}

type SiteSummaryDTO struct {
	SiteID       string             `json:"siteId"`
	ExpenseCount int                `json:"expenseCount"`
	TotalAmount  string             `json:"totalAmount"`
	Categories   []CategoryTotalDTO `json:"categories"`
}

type CsvRenderer interface {
	RenderSummary(summary SiteSummary) (string, error)
}

type ReportHandler struct {
	service  ReportService
	renderer CsvRenderer
}

func NewReportHandler(service ReportService, renderer CsvRenderer) *ReportHandler {
	return &ReportHandler{service: service, renderer: renderer}
}

// GetSiteSummary serves the per-site expense summary, as JSON by default or
// CSV with ?format=csv. Optional from/to query parameters bound the period.
func (handler *ReportHandler) GetSiteSummary(w http.ResponseWriter, r *http.Request) {
	siteId := mux.Vars(r)["siteId"]

	var from, to time.Time
	var err error
	if raw := r.URL.Query().Get("from"); raw != "" {
		from, err = time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "invalid from date", http.StatusBadRequest)
			return
		}
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		to, err = time.Parse("2006-01-02", raw)
		if err != nil {
			http.Error(w, "invalid to date", http.StatusBadRequest)
			return
		}
	}

	summary, err := handler.service.SiteSummary(r.Context(), siteId, from, to)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		csvData, err := handler.renderer.RenderSummary(summary)
		if err != nil {
			log.Errorf("failed to render summary as CSV: %v", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=\"expense-summary.csv\"")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(csvData)); err != nil {
			log.Errorf("failed to write CSV response: %v", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SummaryToDTO(summary)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func SummaryToDTO(summary SiteSummary) SiteSummaryDTO {
	dto := SiteSummaryDTO{
		SiteID:       summary.SiteID,
		ExpenseCount: summary.ExpenseCount,
		TotalAmount:  summary.TotalAmount.String(),
		Categories:   make([]CategoryTotalDTO, 0, len(summary.Categories)),
	}
	for _, ct := range summary.Categories {
		dto.Categories = append(dto.Categories, CategoryTotalDTO{
			Category: string(ct.Category),
			Label:    ct.Label,
			Count:    ct.Count,
			Total:    ct.Total.String(),
		})
	}
	return dto
}
