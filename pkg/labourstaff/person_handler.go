package labourstaff

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type PersonDTO struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Designation string `json:"designation,omitempty"`
	Contact     string `json:"contact,omitempty"`
	Address     string `json:"address,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type PersonHandler struct {
	service PersonService
}

func NewPersonHandler(service PersonService) *PersonHandler {
	return &PersonHandler{service}
}

func (handler *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new labour/staff member")
	w.Header().Set("Content-Type", "application/json")

	var dto PersonDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(r.Context(), DTOToPerson(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(PersonToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *PersonHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	people, err := handler.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]PersonDTO, 0, len(people))
	for _, person := range people {
		dtos = append(dtos, PersonToDTO(person))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *PersonHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	personId := mux.Vars(r)["id"]

	var dto PersonDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if dto.ID == "" || dto.ID != personId {
		http.Error(w, "Invalid labour/staff id in request body", http.StatusBadRequest)
		return
	}

	ok, err := handler.service.Update(r.Context(), DTOToPerson(dto))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Labour/staff member not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	personId := mux.Vars(r)["id"]

	ok, err := handler.service.Delete(r.Context(), personId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Labour/staff member not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func PersonToDTO(person Person) PersonDTO {
	return PersonDTO{
		ID:          person.ID,
		Name:        person.Name,
		Type:        string(person.Type),
		Designation: person.Designation,
		Contact:     person.Contact,
		Address:     person.Address,
		Notes:       person.Notes,
	}
}

func DTOToPerson(dto PersonDTO) Person {
	return Person{
		ID:          dto.ID,
		Name:        dto.Name,
		Type:        PersonType(dto.Type),
		Designation: dto.Designation,
		Contact:     dto.Contact,
		Address:     dto.Address,
		Notes:       dto.Notes,
	}
}
