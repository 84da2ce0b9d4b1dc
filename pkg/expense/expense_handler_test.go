package expense

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/siteledger/siteledger/internal/utils"
	"github.com/siteledger/siteledger/pkg/machinetool"
	"github.com/siteledger/siteledger/pkg/site"
)

func setupExpenseHandlerTest(t *testing.T) (*ExpenseHandler, *site.StubSiteRepo, *machinetool.StubMachineToolRepo) {
	t.Helper()
	repo := NewStubExpenseRepo()
	clock := &utils.MockClock{FixedNow: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)}
	service, sites, machinesTools, _ := newTestService(repo, clock)
	handler := NewExpenseHandler(service)
	return handler, sites, machinesTools
}

func postExpense(t *testing.T, handler *ExpenseHandler, dto ExpenseDTO) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(dto)
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/expense", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.Create(w, req)
	return w
}

func TestExpenseHandlerCreate(t *testing.T) {
	t.Run("creates an expense and returns the derived total", func(t *testing.T) {
		handler, _, _ := setupExpenseHandlerTest(t)

		w := postExpense(t, handler, ExpenseDTO{
			Date:        "2024-03-14",
			SiteID:      "site-1",
			ExpenseType: "machines-tools-rental",
			Fields: map[string]string{
				"totalRent":              "2000",
				"transportChargesRental": "300",
				"maintenanceCharges":     "150",
			},
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		var created ExpenseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "2450", created.TotalAmount)
		assert.Equal(t, "2024-03-14", created.Date)
	})

	t.Run("rejects a zero total with 400", func(t *testing.T) {
		handler, _, _ := setupExpenseHandlerTest(t)

		w := postExpense(t, handler, ExpenseDTO{
			Date:        "2024-03-14",
			SiteID:      "site-1",
			ExpenseType: "accommodation-food",
			Fields:      map[string]string{"amount": "0"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects an unknown category with 400", func(t *testing.T) {
		handler, _, _ := setupExpenseHandlerTest(t)

		w := postExpense(t, handler, ExpenseDTO{
			Date:        "2024-03-14",
			SiteID:      "site-1",
			ExpenseType: "vehicle-lease",
			Fields:      map[string]string{"amount": "100"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a malformed date with 400", func(t *testing.T) {
		handler, _, _ := setupExpenseHandlerTest(t)

		w := postExpense(t, handler, ExpenseDTO{
			Date:        "14-03-2024",
			SiteID:      "site-1",
			ExpenseType: "accommodation-food",
			Fields:      map[string]string{"amount": "1500"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExpenseHandlerListForSite(t *testing.T) {
	t.Run("requires the siteId query parameter", func(t *testing.T) {
		handler, _, _ := setupExpenseHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/api/expense", nil)
		w := httptest.NewRecorder()
		handler.ListForSite(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("lists expenses for a site", func(t *testing.T) {
		handler, _, _ := setupExpenseHandlerTest(t)
		created := postExpense(t, handler, ExpenseDTO{
			Date:        "2024-03-14",
			SiteID:      "site-1",
			ExpenseType: "accommodation-food",
			Fields:      map[string]string{"amount": "1500"},
		})
		assert.Equal(t, http.StatusCreated, created.Code)

		req := httptest.NewRequest(http.MethodGet, "/api/expense?siteId=site-1", nil)
		w := httptest.NewRecorder()
		handler.ListForSite(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var dtos []ExpenseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&dtos))
		assert.Len(t, dtos, 1)
		assert.Equal(t, "1500", dtos[0].TotalAmount)
	})
}

func TestExpenseHandlerGetForm(t *testing.T) {
	router := func(handler *ExpenseHandler) *mux.Router {
		r := mux.NewRouter()
		r.HandleFunc("/api/expense/form/{type}", handler.GetForm).Methods("GET")
		return r
	}

	t.Run("returns the materialized field list", func(t *testing.T) {
		handler, sites, machinesTools := setupExpenseHandlerTest(t)
		ctx := context.Background()
		err := sites.Store(ctx, site.Site{ID: "site-1", Name: "Riverside Apartments"})
		assert.NoError(t, err)
		err = machinesTools.Store(ctx, machinetool.MachineTool{ID: "mt-1", Name: "Drill", Type: machinetool.TypeTool, Brand: "Bosch"})
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/expense/form/tool-purchase", nil)
		w := httptest.NewRecorder()
		router(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var fields []FieldDescriptorDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&fields))
		assert.Equal(t, "date", fields[0].Key)
		assert.Equal(t, "siteId", fields[1].Key)
		assert.Equal(t, "expenseType", fields[2].Key)
		var toolField FieldDescriptorDTO
		for _, fd := range fields {
			if fd.Key == "toolName" {
				toolField = fd
			}
		}
		assert.Equal(t, []Option{{Value: "mt-1", Label: "Drill - Bosch"}}, toolField.Options)
	})

	t.Run("conditional fields follow the query values", func(t *testing.T) {
		handler, _, _ := setupExpenseHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/api/expense/form/repairs?warrantyRepair=yes", nil)
		w := httptest.NewRecorder()
		router(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var fields []FieldDescriptorDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&fields))
		keys := make([]string, 0, len(fields))
		for _, fd := range fields {
			keys = append(keys, fd.Key)
		}
		assert.Contains(t, keys, "warrantyStartDate")
		assert.Contains(t, keys, "warrantyEndDate")
	})

	t.Run("unknown category returns 400", func(t *testing.T) {
		handler, _, _ := setupExpenseHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/api/expense/form/vehicle-lease", nil)
		w := httptest.NewRecorder()
		router(handler).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
