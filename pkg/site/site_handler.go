package site

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type SiteDTO struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Location    string `json:"location,omitempty"`
	Status      string `json:"status,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Description string `json:"description,omitempty"`
}

type SiteHandler struct {
	siteService SiteService
}

func NewSiteHandler(siteService SiteService) *SiteHandler {
	return &SiteHandler{siteService}
}

func (handler *SiteHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new site")
	w.Header().Set("Content-Type", "application/json")

	var siteDTO SiteDTO
	if err := json.NewDecoder(r.Body).Decode(&siteDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	site, err := DTOToSite(siteDTO)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	createdSite, err := handler.siteService.Create(r.Context(), site)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(SiteToDTO(createdSite)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *SiteHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sites, err := handler.siteService.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sitesDTO := make([]SiteDTO, 0, len(sites))
	for _, site := range sites {
		sitesDTO = append(sitesDTO, SiteToDTO(site))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(sitesDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *SiteHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	siteId := mux.Vars(r)["id"]

	site, err := handler.siteService.Get(r.Context(), siteId)
	if errors.Is(err, ErrSiteNotFound) {
		http.Error(w, "Site not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SiteToDTO(site)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *SiteHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	siteId := mux.Vars(r)["id"]

	var siteDTO SiteDTO
	if err := json.NewDecoder(r.Body).Decode(&siteDTO); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if siteDTO.ID == "" || siteDTO.ID != siteId {
		http.Error(w, "Invalid site id in request body", http.StatusBadRequest)
		return
	}
	site, err := DTOToSite(siteDTO)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.siteService.Update(r.Context(), site)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Site not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(siteDTO); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *SiteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	siteId := mux.Vars(r)["id"]

	ok, err := handler.siteService.Delete(r.Context(), siteId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Site not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func SiteToDTO(site Site) SiteDTO {
	dto := SiteDTO{
		ID:          site.ID,
		Name:        site.Name,
		Location:    site.Location,
		Status:      string(site.Status),
		Description: site.Description,
	}
	if !site.StartDate.IsZero() {
		dto.StartDate = site.StartDate.Format("2006-01-02")
	}
	if !site.EndDate.IsZero() {
		dto.EndDate = site.EndDate.Format("2006-01-02")
	}
	return dto
}

func DTOToSite(dto SiteDTO) (Site, error) {
	site := Site{
		ID:          dto.ID,
		Name:        dto.Name,
		Location:    dto.Location,
		Status:      SiteStatus(dto.Status),
		Description: dto.Description,
	}
	if dto.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", dto.StartDate)
		if err != nil {
			return Site{}, err
		}
		site.StartDate = startDate
	}
	if dto.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", dto.EndDate)
		if err != nil {
			return Site{}, err
		}
		site.EndDate = endDate
	}
	return site, nil
}
