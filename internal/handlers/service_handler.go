package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/pos-booking/internal/httperr"
	"github.com/BruksfildServices01/pos-booking/internal/httpresp"
	"github.com/BruksfildServices01/pos-booking/internal/infra/repository"
	"github.com/BruksfildServices01/pos-booking/internal/middleware"
	"github.com/BruksfildServices01/pos-booking/internal/models"
)

type ServiceHandler struct {
	repo *repository.CatalogGormRepository
}

func NewServiceHandler(repo *repository.CatalogGormRepository) *ServiceHandler {
	return &ServiceHandler{repo: repo}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	DurationMin int             `json:"duration_min" binding:"required,min=1"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.repo.ListServices(
		c.Request.Context(),
		middleware.BusinessID(c),
		c.Query("category"),
		c.Query("query"),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Internal error.")
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "name and duration_min are required")
		return
	}
	if req.Price.IsNegative() {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "price must not be negative")
		return
	}

	svc := models.Service{
		BusinessID:  middleware.BusinessID(c),
		Name:        strings.TrimSpace(req.Name),
		DurationMin: req.DurationMin,
		Price:       req.Price.Round(2),
		Category:    strings.TrimSpace(req.Category),
		Active:      true,
	}

	if err := h.repo.CreateService(c.Request.Context(), &svc); err != nil {
		httperr.Internal(c, "failed_to_create_service", "Internal error.")
		return
	}

	httpresp.Created(c, svc)
}
