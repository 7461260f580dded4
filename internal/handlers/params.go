package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pos-booking/internal/httperr"
)

// uintParam reads a positive path parameter.
func uintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		return 0, httperr.ErrBusinessf(httperr.CodeInvalidInput, "invalid %s", name)
	}
	return uint(v), nil
}

// uintQuery reads an optional positive query value; absent means 0.
func uintQuery(c *gin.Context, name string) (uint, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return 0, httperr.ErrBusinessf(httperr.CodeInvalidInput, "invalid %s", name)
	}
	return uint(v), nil
}

func intQuery(c *gin.Context, name string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(c.Query(name)))
	return v
}

// idList parses "1,2,3". Order and duplicates are kept.
func idList(raw string) ([]uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil || v == 0 {
			return nil, httperr.ErrBusinessf(httperr.CodeInvalidInput, "invalid service id %q", p)
		}
		ids = append(ids, uint(v))
	}
	return ids, nil
}
