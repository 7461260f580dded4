package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/pos-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pos-booking/internal/dto"
	"github.com/BruksfildServices01/pos-booking/internal/httperr"
	"github.com/BruksfildServices01/pos-booking/internal/httpresp"
	"github.com/BruksfildServices01/pos-booking/internal/middleware"
	"github.com/BruksfildServices01/pos-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/pos-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
	updateStatus *ucAppointment.UpdateStatus
	list         *ucAppointment.ListAppointments
	get          *ucAppointment.GetAppointment
	tz           string
}

func NewAppointmentHandler(
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
	updateStatus *ucAppointment.UpdateStatus,
	list *ucAppointment.ListAppointments,
	get *ucAppointment.GetAppointment,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		create:       create,
		updateStatus: updateStatus,
		list:         list,
		get:          get,
		tz:           tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	StaffID       uint   `json:"staff_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	ServiceIDs    []uint `json:"service_ids"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Notes         string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	staffID, err := uintParam(c, "staffId")
	if err != nil {
		httperr.FromError(c, err, httperr.CodeInvalidInput)
		return
	}

	date, err := timezone.ParseDate(h.tz, strings.TrimSpace(c.Query("date")))
	if err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "date must be YYYY-MM-DD")
		return
	}

	serviceIDs, err := idList(c.Query("service_ids"))
	if err != nil {
		httperr.FromError(c, err, httperr.CodeInvalidInput)
		return
	}

	res, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BusinessID: middleware.BusinessID(c),
		StaffID:    staffID,
		ServiceIDs: serviceIDs,
		Date:       date,
	})
	if err != nil {
		httperr.FromError(c, err, "availability_failed")
		return
	}

	httpresp.OK(c, dto.AvailabilityDTO{
		Date:        res.Date,
		StaffID:     res.StaffID,
		DurationMin: res.DurationMin,
		Slots:       dto.NewSlotDTOs(res.Slots),
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid request body")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		BusinessID:    middleware.BusinessID(c),
		UserID:        middleware.UserID(c),
		StaffID:       req.StaffID,
		Date:          strings.TrimSpace(req.Date),
		Time:          strings.TrimSpace(req.StartTime),
		ServiceIDs:    req.ServiceIDs,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, dto.NewAppointmentDTO(ap))
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		httperr.FromError(c, err, httperr.CodeInvalidInput)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "status is required")
		return
	}

	ap, err := h.updateStatus.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		BusinessID:    middleware.BusinessID(c),
		UserID:        middleware.UserID(c),
		AppointmentID: id,
		Status:        strings.TrimSpace(req.Status),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_status")
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap))
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		httperr.FromError(c, err, httperr.CodeInvalidInput)
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), middleware.BusinessID(c), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_appointment")
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap))
}

func (h *AppointmentHandler) List(c *gin.Context) {
	staffID, err := uintQuery(c, "staff_id")
	if err != nil {
		httperr.FromError(c, err, httperr.CodeInvalidInput)
		return
	}

	page, err := h.list.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		BusinessID: middleware.BusinessID(c),
		Date:       c.Query("date"),
		Status:     c.Query("status"),
		StaffID:    staffID,
		Search:     c.Query("search"),
		Page:       intQuery(c, "page"),
		PageSize:   intQuery(c, "page_size"),
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.OK(c, dto.NewAppointmentPageDTO(page))
}
