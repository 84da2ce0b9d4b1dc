package app

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/siteledger/siteledger/internal/config"
	"github.com/siteledger/siteledger/internal/utils"
	"github.com/siteledger/siteledger/pkg/expense"
	"github.com/siteledger/siteledger/pkg/labourstaff"
	"github.com/siteledger/siteledger/pkg/machinetool"
	"github.com/siteledger/siteledger/pkg/material"
	"github.com/siteledger/siteledger/pkg/report"
	"github.com/siteledger/siteledger/pkg/site"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	SiteRepo    site.SiteRepo
	SiteService *site.SiteServiceImpl
	SiteHandler *site.SiteHandler

	MachineToolRepo    machinetool.MachineToolRepo
	MachineToolService *machinetool.MachineToolServiceImpl
	MachineToolHandler *machinetool.MachineToolHandler

	MaterialRepo    material.MaterialRepo
	MaterialService *material.MaterialServiceImpl
	MaterialHandler *material.MaterialHandler

	PersonRepo    labourstaff.PersonRepo
	PersonService *labourstaff.PersonServiceImpl
	PersonHandler *labourstaff.PersonHandler

	ExpenseRepo    expense.ExpenseRepo
	ExpenseService *expense.ExpenseServiceImpl
	ExpenseHandler *expense.ExpenseHandler

	ReportService     *report.ReportServiceImpl
	CsvReportRenderer *report.CsvReportRendererImpl
	ReportHandler     *report.ReportHandler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.SiteRepo = site.NewSiteRepo(db)
	deps.SiteService = site.NewSiteService(deps.SiteRepo)
	deps.SiteHandler = site.NewSiteHandler(deps.SiteService)

	deps.MachineToolRepo = machinetool.NewMachineToolRepo(db)
	deps.MachineToolService = machinetool.NewMachineToolService(deps.MachineToolRepo)
	deps.MachineToolHandler = machinetool.NewMachineToolHandler(deps.MachineToolService)

	deps.MaterialRepo = material.NewMaterialRepo(db)
	deps.MaterialService = material.NewMaterialService(deps.MaterialRepo)
	deps.MaterialHandler = material.NewMaterialHandler(deps.MaterialService)

	deps.PersonRepo = labourstaff.NewPersonRepo(db)
	deps.PersonService = labourstaff.NewPersonService(deps.PersonRepo)
	deps.PersonHandler = labourstaff.NewPersonHandler(deps.PersonService)

	deps.Clock = &utils.SystemClock{}
	deps.ExpenseRepo = expense.NewExpenseRepo(db)
	deps.ExpenseService = expense.NewExpenseService(
		deps.ExpenseRepo,
		deps.SiteRepo,
		deps.MachineToolRepo,
		deps.MaterialRepo,
		deps.PersonRepo,
		deps.Clock,
	)
	deps.ExpenseHandler = expense.NewExpenseHandler(deps.ExpenseService)

	deps.ReportService = report.NewReportService(deps.ExpenseRepo)
	deps.CsvReportRenderer = report.NewCsvReportRenderer()
	deps.ReportHandler = report.NewReportHandler(deps.ReportService, deps.CsvReportRenderer)

	return deps
}
