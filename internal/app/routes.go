package app

import (
	"github.com/gorilla/mux"
	"github.com/siteledger/siteledger/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Sites
	r.HandleFunc("/api/site", deps.SiteHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/site", deps.SiteHandler.Create).Methods("POST")
	r.HandleFunc("/api/site/{id}", deps.SiteHandler.Get).Methods("GET")
	r.HandleFunc("/api/site/{id}", deps.SiteHandler.Update).Methods("PUT")
	r.HandleFunc("/api/site/{id}", deps.SiteHandler.Delete).Methods("DELETE")

	// Machines & tools
	r.HandleFunc("/api/machine-tool", deps.MachineToolHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/machine-tool", deps.MachineToolHandler.Create).Methods("POST")
	r.HandleFunc("/api/machine-tool/{id}", deps.MachineToolHandler.Update).Methods("PUT")
	r.HandleFunc("/api/machine-tool/{id}", deps.MachineToolHandler.Delete).Methods("DELETE")

	// Materials
	r.HandleFunc("/api/material", deps.MaterialHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/material", deps.MaterialHandler.Create).Methods("POST")
	r.HandleFunc("/api/material/{id}", deps.MaterialHandler.Update).Methods("PUT")
	r.HandleFunc("/api/material/{id}", deps.MaterialHandler.Delete).Methods("DELETE")

	// Labour & staff
	r.HandleFunc("/api/labour-staff", deps.PersonHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/labour-staff", deps.PersonHandler.Create).Methods("POST")
	r.HandleFunc("/api/labour-staff/{id}", deps.PersonHandler.Update).Methods("PUT")
	r.HandleFunc("/api/labour-staff/{id}", deps.PersonHandler.Delete).Methods("DELETE")

	// Expenses
	r.HandleFunc("/api/expense", deps.ExpenseHandler.ListForSite).Queries("siteId", "{siteId}").Methods("GET")
	r.HandleFunc("/api/expense", deps.ExpenseHandler.Create).Methods("POST")
	r.HandleFunc("/api/expense/form/{type}", deps.ExpenseHandler.GetForm).Methods("GET")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Get).Methods("GET")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Update).Methods("PUT")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Reports
	r.HandleFunc("/api/report/site/{siteId}", deps.ReportHandler.GetSiteSummary).Methods("GET")
}
