package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/pontolago/ponto-api/internal/domain/timesheet"
	"github.com/pontolago/ponto-api/internal/dto"
	"github.com/pontolago/ponto-api/internal/httperr"
	"github.com/pontolago/ponto-api/internal/httpresp"
	"github.com/pontolago/ponto-api/internal/middleware"
	"github.com/pontolago/ponto-api/internal/models"
	ucTimesheet "github.com/pontolago/ponto-api/internal/usecase/timesheet"
)

// ======================================================
// HANDLER
// ======================================================

// AdminHandler is the back-office surface: the derived roster, any
// employee's entries, manual punches, edits, deletions and profile
// overrides.
type AdminHandler struct {
	listRoster  *ucTimesheet.ListRoster
	addManual   *ucTimesheet.AddManualEntry
	updateEntry *ucTimesheet.UpdateEntry
	deleteEntry *ucTimesheet.DeleteEntry
	saveProfile *ucTimesheet.SaveProfile
}

func NewAdminHandler(
	listRoster *ucTimesheet.ListRoster,
	addManual *ucTimesheet.AddManualEntry,
	updateEntry *ucTimesheet.UpdateEntry,
	deleteEntry *ucTimesheet.DeleteEntry,
	saveProfile *ucTimesheet.SaveProfile,
) *AdminHandler {
	return &AdminHandler{
		listRoster:  listRoster,
		addManual:   addManual,
		updateEntry: updateEntry,
		deleteEntry: deleteEntry,
		saveProfile: saveProfile,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ManualEntryRequest struct {
	Date       string `json:"date" binding:"required"`
	ClockIn    string `json:"clock_in"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
	ClockOut   string `json:"clock_out"`
}

// ======================================================
// ROSTER
// ======================================================

func (h *AdminHandler) Roster(c *gin.Context) {
	result, err := h.listRoster.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_roster", "Erro ao carregar funcionários.")
		return
	}

	items := make([]dto.RosterItemDTO, 0, len(result.Employees))
	for _, emp := range result.Employees {
		items = append(items, dto.RosterItemDTO{
			Employee:   emp,
			EntryCount: len(result.Grouped[emp.Email]),
		})
	}

	httpresp.List(c, items)
}

// ======================================================
// EMPLOYEE ENTRIES
// ======================================================

func (h *AdminHandler) ListEmployeeEntries(c *gin.Context) {
	email := c.Param("email")

	result, err := h.listRoster.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_entries", "Erro ao carregar pontos.")
		return
	}

	entries := result.Grouped[email]
	if entries == nil {
		entries = []models.Entry{}
	}

	httpresp.List(c, entries)
}

// ======================================================
// MANUAL ENTRY
// ======================================================

func (h *AdminHandler) AddManualEntry(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserEmail).(string)
	email := c.Param("email")

	var req ManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "missing_date", "Preencha pelo menos a data.")
		return
	}

	entry, err := h.addManual.Execute(c.Request.Context(), ucTimesheet.AddManualEntryInput{
		ActorEmail: actor,
		Email:      email,
		Date:       req.Date,
		Times: domain.ManualTimes{
			ClockIn:    req.ClockIn,
			BreakStart: req.BreakStart,
			BreakEnd:   req.BreakEnd,
			ClockOut:   req.ClockOut,
		},
	})
	if err != nil {
		if httperr.IsBusiness(err, "missing_date") {
			httperr.BadRequest(c, "missing_date", "Preencha pelo menos a data.")
			return
		}
		httperr.Internal(c, "failed_to_add_entry", "Erro ao adicionar ponto.")
		return
	}

	httpresp.Created(c, entry)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AdminHandler) UpdateEntry(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserEmail).(string)
	id := c.Param("id")

	var fields domain.EntryUpdate
	if err := c.ShouldBindJSON(&fields); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	entry, err := h.updateEntry.Execute(c.Request.Context(), ucTimesheet.UpdateEntryInput{
		ActorEmail: actor,
		ID:         id,
		Fields:     fields,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_entry", "Erro ao atualizar ponto.")
		return
	}

	// The core treats an unknown id as a no-op; the API still tells
	// the operator nothing matched.
	if entry == nil {
		httperr.NotFound(c, "entry_not_found", "Registro não encontrado.")
		return
	}

	httpresp.OK(c, entry)
}

// ======================================================
// DELETE
// ======================================================

func (h *AdminHandler) DeleteEntry(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserEmail).(string)
	id := c.Param("id")

	_, err := h.deleteEntry.Execute(c.Request.Context(), ucTimesheet.DeleteEntryInput{
		ActorEmail: actor,
		ID:         id,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_entry", "Erro ao excluir ponto.")
		return
	}

	c.JSON(200, gin.H{"deleted": id})
}

// ======================================================
// PROFILE
// ======================================================

func (h *AdminHandler) SaveProfile(c *gin.Context) {
	actor := c.MustGet(middleware.ContextUserEmail).(string)
	email := c.Param("email")

	var override models.ProfileOverride
	if err := c.ShouldBindJSON(&override); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.saveProfile.Execute(c.Request.Context(), ucTimesheet.SaveProfileInput{
		ActorEmail: actor,
		Email:      email,
		Override:   override,
	})
	if err != nil {
		if httperr.IsBusiness(err, "missing_required_fields") {
			httperr.BadRequest(c, "missing_required_fields", "Email do funcionário obrigatório.")
			return
		}
		httperr.Internal(c, "failed_to_save_profile", "Erro ao salvar dados do funcionário.")
		return
	}

	c.JSON(200, gin.H{"email": email})
}
