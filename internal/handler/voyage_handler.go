package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sofdesk/internal/domain"
	"sofdesk/internal/service"
)

// VoyageHandler handles voyage tracking endpoints.
type VoyageHandler struct {
	voyageService service.VoyageService
}

// NewVoyageHandler creates a new VoyageHandler.
func NewVoyageHandler(voyageService service.VoyageService) *VoyageHandler {
	return &VoyageHandler{voyageService: voyageService}
}

// UpdateVoyageStatusRequest is the request body for voyage status updates.
type UpdateVoyageStatusRequest struct {
	Status domain.VoyageStatus `json:"status" binding:"required" example:"active"`
}

// Create handles POST /api/v1/voyages
// @Summary Create a voyage
// @Description Register a voyage on the chartering desk
// @Tags voyages
// @Accept json
// @Produce json
// @Param request body service.VoyageCreateInput true "Voyage details"
// @Success 201 {object} Response{data=domain.Voyage} "Created voyage"
// @Failure 400 {object} ErrorResponseBody "Missing vessel name or voyage number"
// @Security BearerAuth
// @Router /voyages [post]
func (h *VoyageHandler) Create(c *gin.Context) {
	var input service.VoyageCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	voyage, err := h.voyageService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, voyage)
}

// List handles GET /api/v1/voyages
// @Summary List voyages
// @Tags voyages
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.Voyage,meta=PagMeta} "List of voyages"
// @Security BearerAuth
// @Router /voyages [get]
func (h *VoyageHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	voyages, total, err := h.voyageService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, voyages, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/voyages/:id
// @Summary Get a voyage
// @Tags voyages
// @Produce json
// @Param id path string true "Voyage ID (UUID)"
// @Success 200 {object} Response{data=domain.Voyage} "Voyage"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Voyage not found"
// @Security BearerAuth
// @Router /voyages/{id} [get]
func (h *VoyageHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid voyage ID")
		return
	}

	voyage, err := h.voyageService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, voyage)
}

// UpdateStatus handles PATCH /api/v1/voyages/:id/status
// @Summary Update voyage status
// @Description Move a voyage through its lifecycle (planned, active, completed)
// @Tags voyages
// @Accept json
// @Produce json
// @Param id path string true "Voyage ID (UUID)"
// @Param request body UpdateVoyageStatusRequest true "New status"
// @Success 200 {object} Response{data=MessageResponse} "Status updated"
// @Failure 400 {object} ErrorResponseBody "Invalid ID or status"
// @Failure 404 {object} ErrorResponseBody "Voyage not found"
// @Security BearerAuth
// @Router /voyages/{id}/status [patch]
func (h *VoyageHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid voyage ID")
		return
	}

	var req UpdateVoyageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.voyageService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "voyage status updated"})
}
