package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tadreeb/tadreeb-api/internal/cohort"
	"github.com/tadreeb/tadreeb-api/internal/types"
)

// CatalogHandler serves the program browsing pages
type CatalogHandler struct {
	common *CommonServices
}

// NewCatalogHandler creates a new CatalogHandler instance
func NewCatalogHandler(common *CommonServices) *CatalogHandler {
	return &CatalogHandler{common: common}
}

// CohortView is a cohort snapshot annotated with its resolved
// availability, so every page gates selection on the same rule.
type CohortView struct {
	types.Cohort
	Availability   cohort.Availability `json:"availability"`
	AvailableSeats int32               `json:"available_seats"`
	Selectable     bool                `json:"selectable"`
}

// ProgramDetailResponse is a program with its cohorts annotated
type ProgramDetailResponse struct {
	Program types.Program `json:"program"`
	Cohorts []CohortView  `json:"cohorts"`
}

// ListPrograms returns the published program catalog
func (h *CatalogHandler) ListPrograms(c *gin.Context) {
	programs, err := h.common.api.ListPrograms(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusBadGateway, "Failed to load programs", err)
		return
	}

	sendList(c, programs)
}

// GetProgram returns one program with its cohorts and their resolved
// availability
func (h *CatalogHandler) GetProgram(c *gin.Context) {
	slug := c.Param("slug")

	program, err := h.common.api.GetProgramBySlug(c.Request.Context(), slug)
	if err != nil {
		sendError(c, http.StatusBadGateway, "Failed to load program", err)
		return
	}

	cohorts, err := h.common.api.ListCohorts(c.Request.Context(), program.ID)
	if err != nil {
		sendError(c, http.StatusBadGateway, "Failed to load cohorts", err)
		return
	}

	now := h.common.now()
	views := make([]CohortView, 0, len(cohorts))
	for _, snapshot := range cohorts {
		resolution := cohort.Resolve(snapshot, now)
		views = append(views, CohortView{
			Cohort:         snapshot,
			Availability:   resolution.Availability,
			AvailableSeats: resolution.AvailableSeats,
			Selectable:     cohort.Selectable(resolution.Availability),
		})
	}

	sendSuccess(c, http.StatusOK, ProgramDetailResponse{
		Program: *program,
		Cohorts: views,
	})
}
