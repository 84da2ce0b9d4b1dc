package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type ExpenseDTO struct {
	ID          string            `json:"id,omitempty"`
	Date        string            `json:"date"`
	SiteID      string            `json:"siteId"`
	ExpenseType string            `json:"expenseType"`
	Fields      map[string]string `json:"fields"`
	TotalAmount string            `json:"totalAmount,omitempty"`
	CreatedAt   *time.Time        `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time        `json:"updatedAt,omitempty"`
}

type FieldDescriptorDTO struct {
	Key      string   `json:"key"`
	Label    string   `json:"label"`
	Kind     string   `json:"kind"`
	Required bool     `json:"required"`
	Options  []Option `json:"options,omitempty"`
	Min      string   `json:"min,omitempty"`
	Step     string   `json:"step,omitempty"`
}

type ExpenseHandler struct {
	expenseService ExpenseService
}

func NewExpenseHandler(expenseService ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService}
}

func (handler *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new expense")
	w.Header().Set("Content-Type", "application/json")

	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	expense, err := DTOToExpense(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.expenseService.Create(r.Context(), expense)
	if err != nil {
		http.Error(w, err.Error(), submissionErrorStatus(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(ExpenseToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) ListForSite(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	siteId := r.URL.Query().Get("siteId")
	if siteId == "" {
		http.Error(w, "siteId query parameter is required", http.StatusBadRequest)
		return
	}
	category := ExpenseCategory(r.URL.Query().Get("expenseType"))

	expenses, err := handler.expenseService.ListForSite(r.Context(), siteId, category)
	if err != nil {
		http.Error(w, err.Error(), submissionErrorStatus(err))
		return
	}

	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, expense := range expenses {
		dtos = append(dtos, ExpenseToDTO(expense))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	expenseId := mux.Vars(r)["id"]

	expense, err := handler.expenseService.Get(r.Context(), expenseId)
	if errors.Is(err, ErrExpenseNotFound) {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ExpenseToDTO(expense)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	expenseId := mux.Vars(r)["id"]

	var dto ExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == "" || dto.ID != expenseId {
		http.Error(w, "Invalid expense id in request body", http.StatusBadRequest)
		return
	}
	expense, err := DTOToExpense(dto)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.expenseService.Update(r.Context(), expense)
	if err != nil {
		http.Error(w, err.Error(), submissionErrorStatus(err))
		return
	}
	if !ok {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	updated, err := handler.expenseService.Get(r.Context(), expenseId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ExpenseToDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	expenseId := mux.Vars(r)["id"]

	ok, err := handler.expenseService.Delete(r.Context(), expenseId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetForm returns the materialized field list for a category. The current
// value map is passed as query parameters so conditional fields reflect the
// form state (e.g. warranty dates while warrantyRepair=yes).
func (handler *ExpenseHandler) GetForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	category := ExpenseCategory(mux.Vars(r)["type"])

	values := Values{}
	for key, query := range r.URL.Query() {
		if len(query) > 0 {
			values[key] = query[0]
		}
	}

	fields, err := handler.expenseService.Form(r.Context(), category, values)
	if err != nil {
		http.Error(w, err.Error(), submissionErrorStatus(err))
		return
	}

	dtos := make([]FieldDescriptorDTO, 0, len(fields))
	for _, fd := range fields {
		dtos = append(dtos, FieldDescriptorDTO{
			Key:      fd.Key,
			Label:    fd.Label,
			Kind:     string(fd.Kind),
			Required: fd.Required,
			Options:  fd.Options,
			Min:      fd.Min,
			Step:     fd.Step,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// submissionErrorStatus maps the user-correctable submission errors to 400;
// anything else is a persistence failure.
func submissionErrorStatus(err error) int {
	var unknownCategory UnknownCategoryError
	var missingField MissingRequiredFieldError
	switch {
	case errors.As(err, &unknownCategory),
		errors.As(err, &missingField),
		errors.Is(err, ErrNonPositiveTotal):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func ExpenseToDTO(expense Expense) ExpenseDTO {
	dto := ExpenseDTO{
		ID:          expense.ID,
		Date:        expense.Date.Format("2006-01-02"),
		SiteID:      expense.SiteID,
		ExpenseType: string(expense.Type),
		Fields:      expense.Fields,
		TotalAmount: expense.TotalAmount.String(),
	}
	if !expense.CreatedAt.IsZero() {
		createdAt := expense.CreatedAt
		dto.CreatedAt = &createdAt
	}
	if !expense.UpdatedAt.IsZero() {
		updatedAt := expense.UpdatedAt
		dto.UpdatedAt = &updatedAt
	}
	return dto
}

func DTOToExpense(dto ExpenseDTO) (Expense, error) {
	expense := Expense{
		ID:     dto.ID,
		SiteID: dto.SiteID,
		Type:   ExpenseCategory(dto.ExpenseType),
		Fields: dto.Fields,
	}
	if expense.Fields == nil {
		expense.Fields = Values{}
	}
	if dto.Date != "" {
		date, err := time.Parse("2006-01-02", dto.Date)
		if err != nil {
			return Expense{}, err
		}
		expense.Date = date
	}
	return expense, nil
}
