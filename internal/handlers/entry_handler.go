package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/pontolago/ponto-api/internal/httperr"
	"github.com/pontolago/ponto-api/internal/httpresp"
	"github.com/pontolago/ponto-api/internal/middleware"
	ucTimesheet "github.com/pontolago/ponto-api/internal/usecase/timesheet"
)

// ======================================================
// HANDLER
// ======================================================

// EntryHandler is the employee-facing surface: register today's
// shift, register a day off, list and delete own entries.
type EntryHandler struct {
	registerEntry  *ucTimesheet.RegisterEntry
	registerDayOff *ucTimesheet.RegisterDayOff
	listEntries    *ucTimesheet.ListEmployeeEntries
	deleteEntry    *ucTimesheet.DeleteEntry
}

func NewEntryHandler(
	registerEntry *ucTimesheet.RegisterEntry,
	registerDayOff *ucTimesheet.RegisterDayOff,
	listEntries *ucTimesheet.ListEmployeeEntries,
	deleteEntry *ucTimesheet.DeleteEntry,
) *EntryHandler {
	return &EntryHandler{
		registerEntry:  registerEntry,
		registerDayOff: registerDayOff,
		listEntries:    listEntries,
		deleteEntry:    deleteEntry,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterEntryRequest struct {
	Role       string `json:"role" binding:"required"`
	Location   string `json:"location" binding:"required"`
	BreakStart string `json:"break_start" binding:"required"`
}

// ======================================================
// REGISTER
// ======================================================

func (h *EntryHandler) Register(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	var req RegisterEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_required_fields", "Preencha todos os campos obrigatórios.")
		return
	}

	entry, err := h.registerEntry.Execute(c.Request.Context(), ucTimesheet.RegisterEntryInput{
		Email:      email,
		Role:       req.Role,
		Location:   req.Location,
		BreakStart: req.BreakStart,
	})
	if err != nil {
		if httperr.IsBusiness(err, "missing_required_fields") {
			httperr.BadRequest(c, "missing_required_fields", "Preencha todos os campos obrigatórios.")
			return
		}
		httperr.Internal(c, "failed_to_register_entry", "Erro ao registrar ponto.")
		return
	}

	httpresp.Created(c, entry)
}

// ======================================================
// DAY OFF
// ======================================================

func (h *EntryHandler) RegisterDayOff(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	entry, err := h.registerDayOff.Execute(c.Request.Context(), ucTimesheet.RegisterDayOffInput{
		Email: email,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_register_day_off", "Erro ao registrar folga.")
		return
	}

	httpresp.Created(c, entry)
}

// ======================================================
// LIST
// ======================================================

func (h *EntryHandler) List(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)

	entries, err := h.listEntries.Execute(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "failed_to_list_entries", "Erro ao carregar pontos.")
		return
	}

	httpresp.List(c, entries)
}

// ======================================================
// DELETE
// ======================================================

func (h *EntryHandler) Delete(c *gin.Context) {
	email := c.MustGet(middleware.ContextUserEmail).(string)
	id := c.Param("id")

	_, err := h.deleteEntry.Execute(c.Request.Context(), ucTimesheet.DeleteEntryInput{
		ActorEmail: email,
		ID:         id,
		OwnerEmail: email,
	})
	if err != nil {
		if httperr.IsBusiness(err, "entry_not_found") {
			httperr.NotFound(c, "entry_not_found", "Registro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete_entry", "Erro ao excluir ponto.")
		return
	}

	c.JSON(200, gin.H{"deleted": id})
}
