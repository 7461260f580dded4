package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pos-booking/internal/httperr"
	"github.com/BruksfildServices01/pos-booking/internal/httpresp"
	"github.com/BruksfildServices01/pos-booking/internal/middleware"
	"github.com/BruksfildServices01/pos-booking/internal/models"
	"github.com/BruksfildServices01/pos-booking/internal/validators"
)

// BusinessHandler exposes the caller's own tenant record.
type BusinessHandler struct {
	db *gorm.DB
}

func NewBusinessHandler(db *gorm.DB) *BusinessHandler {
	return &BusinessHandler{db: db}
}

type UpdateBusinessRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

func (h *BusinessHandler) Get(c *gin.Context) {
	biz, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.OK(c, biz)
}

func (h *BusinessHandler) Update(c *gin.Context) {
	biz, ok := h.load(c)
	if !ok {
		return
	}

	var req UpdateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid request body")
		return
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "name must not be empty")
			return
		}
		biz.Name = name
	}
	if req.Phone != nil {
		biz.Phone = ""
		if strings.TrimSpace(*req.Phone) != "" {
			phone, ok := validators.NormalizePhone(*req.Phone)
			if !ok {
				httperr.BadRequest(c, httperr.CodeInvalidInput, "invalid phone")
				return
			}
			biz.Phone = phone
		}
	}

	if err := h.db.WithContext(c.Request.Context()).Save(biz).Error; err != nil {
		httperr.Internal(c, "failed_to_update_business", "Internal error.")
		return
	}

	httpresp.OK(c, biz)
}

func (h *BusinessHandler) load(c *gin.Context) (*models.Business, bool) {
	var biz models.Business
	if err := h.db.WithContext(c.Request.Context()).
		First(&biz, middleware.BusinessID(c)).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, httperr.CodeNotFound, "business not found")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_business", "Internal error.")
		return nil, false
	}
	return &biz, true
}
