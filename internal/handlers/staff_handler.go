package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/pos-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pos-booking/internal/httperr"
	"github.com/BruksfildServices01/pos-booking/internal/httpresp"
	"github.com/BruksfildServices01/pos-booking/internal/infra/repository"
	"github.com/BruksfildServices01/pos-booking/internal/middleware"
	"github.com/BruksfildServices01/pos-booking/internal/models"
	"github.com/BruksfildServices01/pos-booking/internal/validators"
)

type StaffHandler struct {
	repo *repository.StaffGormRepository
}

func NewStaffHandler(repo *repository.StaffGormRepository) *StaffHandler {
	return &StaffHandler{repo: repo}
}

// --------- Requests ---------

type CreateStaffRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
}

type WorkingDayConfig struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required,dive"`
}

// --------- Handlers ---------

func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "name is required")
		return
	}

	staff := models.Staff{
		BusinessID: middleware.BusinessID(c),
		Name:       strings.TrimSpace(req.Name),
		Active:     true,
	}
	if staff.Name == "" {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "name is required")
		return
	}
	if strings.TrimSpace(req.Phone) != "" {
		phone, ok := validators.NormalizePhone(req.Phone)
		if !ok {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid phone")
			return
		}
		staff.Phone = phone
	}

	if err := h.repo.CreateStaff(c.Request.Context(), &staff); err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Internal error.")
		return
	}

	httpresp.Created(c, staff)
}

func (h *StaffHandler) GetWorkingHours(c *gin.Context) {
	staff, ok := h.ownStaff(c)
	if !ok {
		return
	}

	hours, err := h.repo.ListWorkingHours(c.Request.Context(), staff.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_working_hours", "Internal error.")
		return
	}

	httpresp.List(c, hours)
}

func (h *StaffHandler) UpdateWorkingHours(c *gin.Context) {
	staff, ok := h.ownStaff(c)
	if !ok {
		return
	}

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid working hours")
		return
	}

	seen := make(map[int]bool, len(req.Days))
	hours := make([]models.WorkingHours, 0, len(req.Days))
	for _, d := range req.Days {
		if seen[d.Weekday] {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "weekday listed twice")
			return
		}
		seen[d.Weekday] = true

		if d.Active {
			if _, err := domain.ParseRange(d.StartTime, d.EndTime); err != nil {
				httperr.BadRequest(c, httperr.CodeInvalidInput, "start_time and end_time must be HH:MM with start before end")
				return
			}
		}

		hours = append(hours, models.WorkingHours{
			Weekday:   d.Weekday,
			Active:    d.Active,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
		})
	}

	if err := h.repo.ReplaceWorkingHours(c.Request.Context(), staff.ID, hours); err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Internal error.")
		return
	}

	httpresp.List(c, hours)
}

// ownStaff resolves :staffId inside the caller's business and writes the
// error response itself.
func (h *StaffHandler) ownStaff(c *gin.Context) (*models.Staff, bool) {
	staffID, err := uintParam(c, "staffId")
	if err != nil {
		httperr.FromError(c, err, httperr.CodeInvalidInput)
		return nil, false
	}

	staff, err := h.repo.GetStaff(c.Request.Context(), middleware.BusinessID(c), staffID)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_staff")
		return nil, false
	}
	return staff, true
}
