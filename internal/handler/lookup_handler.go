package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sofdesk/internal/carbon"
	"sofdesk/internal/checklist"
	"sofdesk/internal/navigation"
	"sofdesk/internal/ports"
	"sofdesk/internal/weather"
)

// LookupHandler handles the reference data endpoints: port directory,
// marine weather, route estimates, emissions, and stage checklists.
type LookupHandler struct {
	weather *weather.Client
}

// NewLookupHandler creates a new LookupHandler.
func NewLookupHandler(weatherClient *weather.Client) *LookupHandler {
	return &LookupHandler{weather: weatherClient}
}

// RouteRequest is the request body for route estimates.
type RouteRequest struct {
	From       string `json:"from" binding:"required" example:"Singapore"`
	To         string `json:"to" binding:"required" example:"NLRTM"`
	VesselType string `json:"vessel_type" example:"container"`
}

// CarbonRequest is the request body for voyage emission estimates.
type CarbonRequest struct {
	VesselType string  `json:"vessel_type" example:"bulk"`
	FuelType   string  `json:"fuel_type" example:"vlsfo"`
	VoyageDays float64 `json:"voyage_days" binding:"required" example:"12"`
}

// GetPort handles GET /api/v1/ports/:identifier
// @Summary Look up a port
// @Description Resolve a port by UN/LOCODE or name and return its directory entry
// @Tags lookup
// @Produce json
// @Param identifier path string true "UN/LOCODE or port name"
// @Success 200 {object} Response{data=ports.Port} "Directory entry"
// @Failure 404 {object} ErrorResponseBody "Port not found"
// @Security BearerAuth
// @Router /ports/{identifier} [get]
func (h *LookupHandler) GetPort(c *gin.Context) {
	p, err := ports.Lookup(c.Param("identifier"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, p)
}

// ListPortsByCategory handles GET /api/v1/ports?category=...
// @Summary List ports by category
// @Description List directory ports for a cargo category (container, bulk, oil, lng, chemical)
// @Tags lookup
// @Produce json
// @Param category query string true "Cargo category"
// @Success 200 {object} Response{data=[]ports.Port} "Matching ports"
// @Failure 400 {object} ErrorResponseBody "Missing category"
// @Failure 404 {object} ErrorResponseBody "Unknown category"
// @Security BearerAuth
// @Router /ports [get]
func (h *LookupHandler) ListPortsByCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "category query parameter is required")
		return
	}

	list, err := ports.ListByCategory(category)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, list)
}

// GetWeather handles GET /api/v1/weather/:port
// @Summary Marine weather for a port
// @Description Current conditions, 3-day outlook, and maritime operational insights for a directory port
// @Tags lookup
// @Produce json
// @Param port path string true "UN/LOCODE or port name"
// @Success 200 {object} Response{data=weather.Report} "Weather report"
// @Failure 404 {object} ErrorResponseBody "Port not found"
// @Failure 500 {object} ErrorResponseBody "Weather provider unreachable"
// @Security BearerAuth
// @Router /weather/{port} [get]
func (h *LookupHandler) GetWeather(c *gin.Context) {
	rep, err := h.weather.ForPort(c.Request.Context(), c.Param("port"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rep)
}

// EstimateRoute handles POST /api/v1/navigation/route
// @Summary Estimate a route
// @Description Great-circle distance and passage times between two directory ports for a vessel type
// @Tags lookup
// @Accept json
// @Produce json
// @Param request body RouteRequest true "Route endpoints and vessel type"
// @Success 200 {object} Response{data=navigation.RouteEstimate} "Route estimate"
// @Failure 400 {object} ErrorResponseBody "Missing endpoints"
// @Failure 404 {object} ErrorResponseBody "Port not found"
// @Security BearerAuth
// @Router /navigation/route [post]
func (h *LookupHandler) EstimateRoute(c *gin.Context) {
	var req RouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	est, err := navigation.EstimateRoute(req.From, req.To, req.VesselType)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, est)
}

// EstimateCarbon handles POST /api/v1/carbon/estimate
// @Summary Estimate voyage emissions
// @Description Fuel consumption and CO2 output for a vessel type, fuel type, and voyage length
// @Tags lookup
// @Accept json
// @Produce json
// @Param request body CarbonRequest true "Voyage parameters"
// @Success 200 {object} Response{data=carbon.Estimate} "Emission estimate"
// @Failure 400 {object} ErrorResponseBody "Unknown fuel or negative days"
// @Security BearerAuth
// @Router /carbon/estimate [post]
func (h *LookupHandler) EstimateCarbon(c *gin.Context) {
	var req CarbonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	est, err := carbon.EstimateVoyage(req.VesselType, req.FuelType, req.VoyageDays)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		return
	}
	RespondOK(c, est)
}

// GetChecklist handles GET /api/v1/checklists/:stage
// @Summary Checklist for a voyage stage
// @Description Operational checklist items for pre_fixture, on_voyage, or post_voyage
// @Tags lookup
// @Produce json
// @Param stage path string true "Voyage stage"
// @Success 200 {object} Response{data=[]string} "Checklist items"
// @Failure 400 {object} ErrorResponseBody "Unknown stage"
// @Security BearerAuth
// @Router /checklists/{stage} [get]
func (h *LookupHandler) GetChecklist(c *gin.Context) {
	items, err := checklist.ForStage(c.Param("stage"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"stage": checklist.NormalizeStage(c.Param("stage")),
		"items": items,
	})
}

// ListChecklistStages handles GET /api/v1/checklists
// @Summary List checklist stages
// @Tags lookup
// @Produce json
// @Success 200 {object} Response{data=[]domain.VoyageStage} "Known stages"
// @Security BearerAuth
// @Router /checklists [get]
func (h *LookupHandler) ListChecklistStages(c *gin.Context) {
	RespondOK(c, checklist.Stages())
}
