package machinetool

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type MachineToolDTO struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Brand       string `json:"brand,omitempty"`
	Status      string `json:"status,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
	Description string `json:"description,omitempty"`
}

type MachineToolHandler struct {
	service MachineToolService
}

func NewMachineToolHandler(service MachineToolService) *MachineToolHandler {
	return &MachineToolHandler{service}
}

func (handler *MachineToolHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new machine/tool")
	w.Header().Set("Content-Type", "application/json")

	var dto MachineToolDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(r.Context(), DTOToMachineTool(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(MachineToolToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *MachineToolHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	items, err := handler.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]MachineToolDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, MachineToolToDTO(item))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *MachineToolHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	itemId := mux.Vars(r)["id"]

	var dto MachineToolDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == "" || dto.ID != itemId {
		http.Error(w, "Invalid machine/tool id in request body", http.StatusBadRequest)
		return
	}

	ok, err := handler.service.Update(r.Context(), DTOToMachineTool(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Machine/tool not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *MachineToolHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	itemId := mux.Vars(r)["id"]

	ok, err := handler.service.Delete(r.Context(), itemId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Machine/tool not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func MachineToolToDTO(item MachineTool) MachineToolDTO {
	return MachineToolDTO{
		ID:          item.ID,
		Name:        item.Name,
		Type:        string(item.Type),
		Brand:       item.Brand,
		Status:      string(item.Status),
		Quantity:    item.Quantity,
		Description: item.Description,
	}
}

func DTOToMachineTool(dto MachineToolDTO) MachineTool {
	return MachineTool{
		ID:          dto.ID,
		Name:        dto.Name,
		Type:        MachineToolType(dto.Type),
		Brand:       dto.Brand,
		Status:      MachineToolStatus(dto.Status),
		Quantity:    dto.Quantity,
		Description: dto.Description,
	}
}
