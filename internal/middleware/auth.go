package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/juristudy/internal/dto"
	"github.com/lshigami/juristudy/internal/model"
	"github.com/lshigami/juristudy/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	// SessionName is the cookie holding the session.
	SessionName = "juristudy_session"
	// SessionUserKey is the session value holding the user id.
	SessionUserKey = "user_id"

	ctxUserID = "user_id"
	ctxUser   = "user"
)

// RequireUser resolves the caller from a bearer token or the session cookie
// and aborts with 401 when neither identifies an active user.
func RequireUser(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := identify(c, auth)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}

		user, err := auth.ResolveUser(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
				return
			}
			log.Error().Err(err).Uint("userID", userID).Msg("RequireUser: Failed to load user")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error"})
			return
		}

		c.Set(ctxUserID, user.ID)
		c.Set(ctxUser, user)
		c.Next()
	}
}

// RequireAdmin must run after RequireUser.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin access required"})
			return
		}
		c.Next()
	}
}

func identify(c *gin.Context, auth service.AuthService) (uint, bool) {
	if token := bearerToken(c.GetHeader("Authorization")); token != "" {
		id, err := auth.ParseToken(token)
		if err != nil {
			log.Debug().Err(err).Msg("RequireUser: Rejected bearer token")
			return 0, false
		}
		return id, true
	}

	session := sessions.Default(c)
	switch v := session.Get(SessionUserKey).(type) {
	case uint:
		return v, v != 0
	case int:
		return uint(v), v > 0
	case int64:
		return uint(v), v > 0
	case uint64:
		return uint(v), v != 0
	}
	return 0, false
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// UserID returns the id stored by RequireUser.
func UserID(c *gin.Context) uint {
	return c.GetUint(ctxUserID)
}

func CurrentUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(ctxUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}
