package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pontolago/ponto-api/internal/audit"
	"github.com/pontolago/ponto-api/internal/clock"
	"github.com/pontolago/ponto-api/internal/config"
	domain "github.com/pontolago/ponto-api/internal/domain/timesheet"
	"github.com/pontolago/ponto-api/internal/handlers"
	"github.com/pontolago/ponto-api/internal/middleware"
	ucTimesheet "github.com/pontolago/ponto-api/internal/usecase/timesheet"
)

// Deps are the singletons wired in main: the snapshot store picked by
// config and the audit sink matching it.
type Deps struct {
	Store      domain.Store
	Dispatcher *audit.Dispatcher
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Deps) {

	// ======================================================
	// USE CASES — TIMESHEET
	// ======================================================
	shiftGen := clock.NewShiftGenerator(nil)

	registerEntryUC := ucTimesheet.NewRegisterEntry(
		deps.Store,
		shiftGen,
		deps.Dispatcher,
	)

	registerDayOffUC := ucTimesheet.NewRegisterDayOff(
		deps.Store,
		deps.Dispatcher,
	)

	addManualEntryUC := ucTimesheet.NewAddManualEntry(
		deps.Store,
		deps.Dispatcher,
	)

	updateEntryUC := ucTimesheet.NewUpdateEntry(
		deps.Store,
		deps.Dispatcher,
	)

	deleteEntryUC := ucTimesheet.NewDeleteEntry(
		deps.Store,
		deps.Dispatcher,
	)

	listEntriesUC := ucTimesheet.NewListEmployeeEntries(deps.Store)

	listRosterUC := ucTimesheet.NewListRoster(deps.Store)

	saveProfileUC := ucTimesheet.NewSaveProfile(
		deps.Store,
		deps.Dispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)
	meHandler := handlers.NewMeHandler()

	entryHandler := handlers.NewEntryHandler(
		registerEntryUC,
		registerDayOffUC,
		listEntriesUC,
		deleteEntryUC,
	)

	adminHandler := handlers.NewAdminHandler(
		listRosterUC,
		addManualEntryUC,
		updateEntryUC,
		deleteEntryUC,
		saveProfileUC,
	)

	reportHandler := handlers.NewReportHandler()

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// EMPLOYEE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/entries", entryHandler.List)
			secured.POST("/me/entries", entryHandler.Register)
			secured.POST("/me/entries/day-off", entryHandler.RegisterDayOff)
			secured.DELETE("/me/entries/:id", entryHandler.Delete)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/roster", adminHandler.Roster)

				admin.GET("/employees/:email/entries", adminHandler.ListEmployeeEntries)
				admin.POST("/employees/:email/entries", adminHandler.AddManualEntry)
				admin.PUT("/employees/:email/profile", adminHandler.SaveProfile)

				admin.PATCH("/entries/:id", adminHandler.UpdateEntry)
				admin.DELETE("/entries/:id", adminHandler.DeleteEntry)

				admin.POST("/reports", reportHandler.Generate)
			}
		}
	}
}
