package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GraziArcH/domain-sales/internal/infrastructure/auth"
	"github.com/GraziArcH/domain-sales/internal/shared/authorization"
	"github.com/GraziArcH/domain-sales/internal/shared/constants"
	"github.com/GraziArcH/domain-sales/internal/shared/logger"
	"github.com/GraziArcH/domain-sales/internal/shared/utils"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

type ServiceKeyVerifier interface {
	Verify(key, hash string) error
}

// ServiceKeyConfig authenticates the identity system by a shared key.
// An empty Hash disables service key authentication.
type ServiceKeyConfig struct {
	Verifier ServiceKeyVerifier
	Hash     string
	ActorID  uint64
}

type AuthMiddleware struct {
	tokens     TokenVerifier
	serviceKey ServiceKeyConfig
	logger     logger.Interface
}

func NewAuthMiddleware(tokens TokenVerifier, serviceKey ServiceKeyConfig, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:     tokens,
		serviceKey: serviceKey,
		logger:     logger,
	}
}

// RequireAuth accepts a bearer token, or a service key acting as the service role.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader(constants.HeaderServiceKey); key != "" {
			m.authenticateServiceKey(c, key)
			return
		}

		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		authorization.SetPrincipal(c, userID, claims.Role)
		c.Next()
	}
}

func (m *AuthMiddleware) authenticateServiceKey(c *gin.Context, key string) {
	if m.serviceKey.Hash == "" || m.serviceKey.Verifier == nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "service key authentication is disabled")
		c.Abort()
		return
	}

	if err := m.serviceKey.Verifier.Verify(key, m.serviceKey.Hash); err != nil {
		m.logger.Warnw("rejected service key", "client_ip", c.ClientIP())
		utils.ErrorResponse(c, http.StatusUnauthorized, "invalid service key")
		c.Abort()
		return
	}

	authorization.SetPrincipal(c, m.serviceKey.ActorID, authorization.RoleService)
	c.Next()
}
