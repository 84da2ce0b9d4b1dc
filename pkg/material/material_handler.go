package material

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type MaterialDTO struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

type MaterialHandler struct {
	service MaterialService
}

func NewMaterialHandler(service MaterialService) *MaterialHandler {
	return &MaterialHandler{service}
}

func (handler *MaterialHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new material")
	w.Header().Set("Content-Type", "application/json")

	var dto MaterialDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(r.Context(), DTOToMaterial(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(MaterialToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *MaterialHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	materials, err := handler.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]MaterialDTO, 0, len(materials))
	for _, material := range materials {
		dtos = append(dtos, MaterialToDTO(material))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *MaterialHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	materialId := mux.Vars(r)["id"]

	var dto MaterialDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == "" || dto.ID != materialId {
		http.Error(w, "Invalid material id in request body", http.StatusBadRequest)
		return
	}

	ok, err := handler.service.Update(r.Context(), DTOToMaterial(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Material not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *MaterialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	materialId := mux.Vars(r)["id"]

	ok, err := handler.service.Delete(r.Context(), materialId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Material not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func MaterialToDTO(material Material) MaterialDTO {
	return MaterialDTO{
		ID:          material.ID,
		Name:        material.Name,
		Category:    material.Category,
		Description: material.Description,
	}
}

func DTOToMaterial(dto MaterialDTO) Material {
	return Material{
		ID:          dto.ID,
		Name:        dto.Name,
		Category:    dto.Category,
		Description: dto.Description,
	}
}
