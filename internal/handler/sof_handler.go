package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sofdesk/internal/compliance"
	"sofdesk/internal/csvexport"
	"sofdesk/internal/report"
	"sofdesk/internal/service"
	"sofdesk/internal/sof"
)

// SOFHandler handles Statement of Facts parsing and record endpoints.
type SOFHandler struct {
	sofService     service.SOFService
	explainService service.ExplainService
}

// NewSOFHandler creates a new SOFHandler.
func NewSOFHandler(sofService service.SOFService, explainService service.ExplainService) *SOFHandler {
	return &SOFHandler{sofService: sofService, explainService: explainService}
}

// ParseTextRequest is the request body for text parsing.
type ParseTextRequest struct {
	FileName string `json:"file_name" example:"mv_ocean_pioneer_sof.txt"`
	Text     string `json:"text" binding:"required" example:"Vessel: Ocean Pioneer\nNOR: 01/03/2024, 08:00"`
}

// ScenarioRequest is the request body for laytime scenario projections.
type ScenarioRequest struct {
	LaytimeHours       float64 `json:"laytime_hours" binding:"required" example:"72"`
	NoticePeriodHours  float64 `json:"notice_period_hours" example:"6"`
	WorkingHoursPerDay float64 `json:"working_hours_per_day" example:"24"`
}

// Upload handles POST /api/v1/sof/upload
// @Summary Upload and parse a Statement of Facts
// @Description Upload an SOF document (PDF, DOCX, TXT), archive it, extract text, and run the full parse pipeline
// @Tags sof
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "SOF document (PDF, DOCX, or TXT)"
// @Success 201 {object} Response{data=service.SOFParseOutput} "Parsed record with full result"
// @Failure 400 {object} ErrorResponseBody "Missing file, unsupported type, or empty document"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Upload or extraction failed"
// @Security BearerAuth
// @Router /sof/upload [post]
func (h *SOFHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	out, err := h.sofService.ParseUpload(c.Request.Context(), service.SOFUploadInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, out)
}

// ParseText handles POST /api/v1/sof/parse
// @Summary Parse pasted SOF text
// @Description Run the parse pipeline on raw text without storing a file
// @Tags sof
// @Accept json
// @Produce json
// @Param request body ParseTextRequest true "SOF text to parse"
// @Success 201 {object} Response{data=service.SOFParseOutput} "Parsed record with full result"
// @Failure 400 {object} ErrorResponseBody "Missing or empty text"
// @Security BearerAuth
// @Router /sof/parse [post]
func (h *SOFHandler) ParseText(c *gin.Context) {
	var req ParseTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	out, err := h.sofService.ParseText(c.Request.Context(), req.FileName, req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, out)
}

// List handles GET /api/v1/sof
// @Summary List parsed SOF records
// @Description List stored parse records with pagination, optionally filtered by laytime status
// @Tags sof
// @Produce json
// @Param status query string false "Laytime status filter (within_limit, exceeded, indeterminate)"
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.SOFRecord,meta=PagMeta} "List of records"
// @Security BearerAuth
// @Router /sof [get]
func (h *SOFHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	if status := c.Query("status"); status != "" {
		list, total, err := h.sofService.ListByStatus(c.Request.Context(), status, offset, limit)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondPaginated(c, list, PagMeta{Total: total, Offset: offset, Limit: limit})
		return
	}

	list, total, err := h.sofService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, list, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/sof/:id
// @Summary Get a parsed SOF record
// @Description Get a stored parse record including the full structured result
// @Tags sof
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} Response{data=domain.SOFRecord} "Stored record"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Record not found"
// @Security BearerAuth
// @Router /sof/{id} [get]
func (h *SOFHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid record ID")
		return
	}

	rec, err := h.sofService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, rec)
}

// Delete handles DELETE /api/v1/sof/:id
// @Summary Delete a parsed SOF record
// @Tags sof
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Record deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Record not found"
// @Security BearerAuth
// @Router /sof/{id} [delete]
func (h *SOFHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid record ID")
		return
	}

	if err := h.sofService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "record deleted"})
}

// Scenario handles POST /api/v1/sof/scenario
// @Summary Project a laytime scenario
// @Description Project total port time and applicable rates for a laytime budget plus NOR notice period
// @Tags sof
// @Accept json
// @Produce json
// @Param request body ScenarioRequest true "Scenario parameters"
// @Success 200 {object} Response{data=sof.Scenario} "Projected scenario"
// @Failure 400 {object} ErrorResponseBody "Invalid parameters"
// @Security BearerAuth
// @Router /sof/scenario [post]
func (h *SOFHandler) Scenario(c *gin.Context) {
	var req ScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	sc := h.sofService.Scenario(req.LaytimeHours, req.NoticePeriodHours, req.WorkingHoursPerDay)
	RespondOK(c, sc)
}

// Compliance handles GET /api/v1/sof/:id/compliance
// @Summary Run compliance checks on a stored record
// @Description Check a stored parse result against charter-party compliance rules
// @Tags sof
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} Response{data=compliance.Report} "Compliance report"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Record not found"
// @Security BearerAuth
// @Router /sof/{id}/compliance [get]
func (h *SOFHandler) Compliance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid record ID")
		return
	}

	rec, err := h.sofService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	var result sof.ParseResult
	if err := json.Unmarshal(rec.Result, &result); err != nil {
		RespondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "stored result is unreadable")
		return
	}

	RespondOK(c, compliance.Check(result))
}

// Explanation handles GET /api/v1/sof/:id/explanation
// @Summary Narrative explanation of a parse outcome
// @Description Ask the configured language model to explain a stored laytime outcome in plain commercial English
// @Tags sof
// @Produce json
// @Param id path string true "Record ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Narrative"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 404 {object} ErrorResponseBody "Record not found"
// @Failure 503 {object} ErrorResponseBody "No language model provider available"
// @Security BearerAuth
// @Router /sof/{id}/explanation [get]
func (h *SOFHandler) Explanation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid record ID")
		return
	}

	rec, err := h.sofService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	var result sof.ParseResult
	if err := json.Unmarshal(rec.Result, &result); err != nil {
		RespondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "stored result is unreadable")
		return
	}

	narrative, err := h.explainService.Explain(c.Request.Context(), result)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"explanation": narrative})
}

// ExportCSV handles GET /api/v1/sof/export/csv
// @Summary Export SOF records as CSV
// @Description Download all stored parse records as a UTF-8 BOM CSV file
// @Tags sof
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Security BearerAuth
// @Router /sof/export/csv [get]
func (h *SOFHandler) ExportCSV(c *gin.Context) {
	recs, _, err := h.sofService.List(c.Request.Context(), 0, exportBatchLimit)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename("sof_records")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		HandleError(c, err)
		return
	}

	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		HandleError(c, err)
		return
	}
	if err := w.WriteRecords(recs); err != nil {
		HandleError(c, err)
		return
	}
	w.Flush()
}

// ExportXLSX handles GET /api/v1/sof/export/xlsx
// @Summary Export SOF records as a laytime workbook
// @Description Download all stored parse records as a styled XLSX laytime statement
// @Tags sof
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {string} string "XLSX file"
// @Security BearerAuth
// @Router /sof/export/xlsx [get]
func (h *SOFHandler) ExportXLSX(c *gin.Context) {
	recs, _, err := h.sofService.List(c.Request.Context(), 0, exportBatchLimit)
	if err != nil {
		HandleError(c, err)
		return
	}

	f, err := report.BuildLaytimeWorkbook(recs)
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.SanitizeFilename("laytime_statement") + ".xlsx"
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(c.Writer); err != nil {
		HandleError(c, err)
	}
}

// exportBatchLimit bounds export queries; the desk stores at most a few
// hundred SOFs per voyage season.
const exportBatchLimit = 10000
