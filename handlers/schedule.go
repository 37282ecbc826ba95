package handlers

import (
	"net/http"

	"barberpro/models"
	scheduleSvc "barberpro/services/schedule"
	"barberpro/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes provider schedule management over HTTP.
type ScheduleHandler struct {
	Service scheduleSvc.ScheduleService
}

func NewScheduleHandler(svc scheduleSvc.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// GetSchedule returns the provider's weekly hours and timezone.
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	view, err := h.Service.GetSchedule(c.Param("providerId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateSchedule replaces the provider's weekly working hours. When existing
// bookings would be stranded the change is rejected with the conflict list.
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	var req struct {
		WorkingHours models.WorkingHours `json:"workingHours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_request", "invalid schedule payload", err.Error())
		return
	}

	result, err := h.Service.UpdateWorkingHours(c.Param("providerId"), req.WorkingHours)
	if err != nil {
		respondError(c, err)
		return
	}
	if !result.CanApplyChanges {
		c.JSON(http.StatusConflict, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// BulkUpdateSchedule applies one operation to several weekdays at once.
func (h *ScheduleHandler) BulkUpdateSchedule(c *gin.Context) {
	var req models.BulkScheduleUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_request", "invalid bulk schedule payload", err.Error())
		return
	}

	result, err := h.Service.BulkUpdateHours(c.Param("providerId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if !result.CanApplyChanges {
		c.JSON(http.StatusConflict, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AddException stores a date override (closed or special hours) and reports
// how many existing bookings it affects.
func (h *ScheduleHandler) AddException(c *gin.Context) {
	var req models.ScheduleException
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_request", "invalid exception payload", err.Error())
		return
	}

	exc, affected, err := h.Service.AddException(c.Param("providerId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"exception":             exc,
		"affectedBookingsCount": affected,
	})
}

// ValidateSchedule dry-runs a proposed weekly schedule against existing
// bookings over a date range without persisting anything.
func (h *ScheduleHandler) ValidateSchedule(c *gin.Context) {
	var req struct {
		WorkingHours models.WorkingHours `json:"workingHours" binding:"required"`
		FromDate     string              `json:"fromDate" binding:"required"`
		ToDate       string              `json:"toDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_request", "invalid validation payload", err.Error())
		return
	}

	result, err := h.Service.ValidateProposed(c.Param("providerId"), req.WorkingHours, req.FromDate, req.ToDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateTemplate stores a reusable working-hours template.
func (h *ScheduleHandler) CreateTemplate(c *gin.Context) {
	var req models.ScheduleTemplate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_request", "invalid template payload", err.Error())
		return
	}

	tpl, err := h.Service.CreateTemplate(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// ApplyTemplate replaces the provider's schedule with a stored template.
func (h *ScheduleHandler) ApplyTemplate(c *gin.Context) {
	var req struct {
		TemplateID string `json:"templateId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_request", "invalid apply-template payload", err.Error())
		return
	}

	result, err := h.Service.ApplyTemplate(c.Param("providerId"), req.TemplateID)
	if err != nil {
		respondError(c, err)
		return
	}
	if !result.CanApplyChanges {
		c.JSON(http.StatusConflict, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
