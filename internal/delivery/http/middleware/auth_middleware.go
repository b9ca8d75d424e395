package middleware

import (
	"net/http"
	"strings"

	"prolinked-backend/internal/delivery/http/response"
	"prolinked-backend/internal/domain"
	"prolinked-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const authCookie = "auth_token"

// AuthMiddleware accepts a Bearer token or the auth_token cookie. The role
// stored on the request comes from the user row, not from the token.
func AuthMiddleware(authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		user, err := authUC.Authenticate(c.Request.Context(), tokenString)
		if err != nil {
			if apperror.CodeOf(err) != http.StatusUnauthorized {
				// DB outage while loading the user; rendered by ErrorHandler
				_ = c.Error(err)
				c.Abort()
				return
			}
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return ""
		}
		return strings.TrimSpace(token)
	}
	if cookie, err := c.Cookie(authCookie); err == nil {
		return cookie
	}
	return ""
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFrom(c)
		if actor.UserID <= 0 {
			response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}
		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "You do not have permission to access this resource", nil)
		c.Abort()
	}
}

// ActorFrom returns the zero Actor for anonymous requests.
func ActorFrom(c *gin.Context) domain.Actor {
	id, _ := c.Get(string(domain.KeyUserID))
	userID, _ := id.(int64)
	return domain.Actor{
		UserID: userID,
		Role:   c.GetString(string(domain.KeyUserRole)),
	}
}
