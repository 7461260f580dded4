package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pos-booking/internal/audit"
	"github.com/BruksfildServices01/pos-booking/internal/httperr"
	"github.com/BruksfildServices01/pos-booking/internal/middleware"
	"github.com/BruksfildServices01/pos-booking/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logger *audit.Logger
	tz     string
}

func NewAuditLogsHandler(logger *audit.Logger, tz string) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger, tz: tz}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.ListFilter{
		BusinessID: middleware.BusinessID(c),
		Action:     c.Query("action"),
		Entity:     c.Query("entity"),
		Page:       intQuery(c, "page"),
		Limit:      intQuery(c, "limit"),
	}

	// --------------------------------------------------
	// Optional day range, both ends inclusive
	// --------------------------------------------------
	if v := c.Query("from"); v != "" {
		from, err := timezone.ParseDate(h.tz, v)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "from must be YYYY-MM-DD.")
			return
		}
		f.From = &from
	}
	if v := c.Query("to"); v != "" {
		to, err := timezone.ParseDate(h.tz, v)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidInput, "to must be YYYY-MM-DD.")
			return
		}
		end := to.Add(24 * time.Hour)
		f.To = &end
	}

	logs, total, err := h.logger.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Internal error.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  max(f.Page, 1),
		"total": total,
		"logs":  logs,
	})
}
