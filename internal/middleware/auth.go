package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/pos-booking/internal/config"
	"github.com/BruksfildServices01/pos-booking/internal/httperr"
)

const (
	ContextUserID     = "userID"
	ContextBusinessID = "businessID"
	ContextUserRole   = "userRole"
)

// AuthMiddleware accepts HS256 bearer tokens carrying sub, businessId and
// an optional role.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(cfg.JWTSecret), nil
	}

	return func(c *gin.Context) {
		raw, code := bearerToken(c.GetHeader("Authorization"))
		if code != "" {
			reject(c, code)
			return
		}

		token, err := jwt.Parse(raw, keyFunc)
		if err != nil || !token.Valid {
			reject(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			reject(c, "invalid_token_claims")
			return
		}

		userID, okUser := claims["sub"].(float64)
		businessID, okBusiness := claims["businessId"].(float64)
		if !okUser || !okBusiness || businessID <= 0 {
			reject(c, "invalid_token_payload")
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextBusinessID, uint(businessID))
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

func bearerToken(header string) (string, string) {
	if header == "" {
		return "", "missing_authorization_header"
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", "invalid_authorization_header"
	}
	return strings.TrimSpace(token), ""
}

func reject(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Authentication required.")
	c.Abort()
}

// BusinessID is the tenant of the authenticated caller.
func BusinessID(c *gin.Context) uint {
	return c.GetUint(ContextBusinessID)
}

// UserID returns nil when the caller carries no user.
func UserID(c *gin.Context) *uint {
	id := c.GetUint(ContextUserID)
	if id == 0 {
		return nil
	}
	return &id
}
