package user

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/juristudy/internal/controller"
	"github.com/lshigami/juristudy/internal/dto"
	"github.com/lshigami/juristudy/internal/middleware"
	"github.com/lshigami/juristudy/internal/service"
	"github.com/rs/zerolog/log"
)

type SessionController struct {
	authService service.AuthService
}

func NewSessionController(as service.AuthService) *SessionController {
	return &SessionController{authService: as}
}

// CreateSession godoc
// @Summary Sign in
// @Description Sets the session cookie and returns a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.SessionCreateRequest true "Credentials"
// @Success 201 {object} dto.SessionDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/session [post]
func (c *SessionController) CreateSession(ctx *gin.Context) {
	var req dto.SessionCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, err)
		return
	}
	user, token, expiresAt, err := c.authService.CreateSession(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		controller.RespondError(ctx, err, "Sign in failed")
		return
	}

	session := sessions.Default(ctx)
	session.Set(middleware.SessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		log.Error().Err(err).Uint("userID", user.ID).Msg("CreateSession: Failed to save session")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create session"})
		return
	}
	ctx.JSON(http.StatusCreated, dto.SessionDTO{UserID: user.ID, Name: user.Name, Token: token, ExpiresAt: expiresAt})
}

// DeleteSession godoc
// @Summary Sign out
// @Tags Auth
// @Success 204
// @Router /auth/session [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	session := sessions.Default(ctx)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		log.Warn().Err(err).Msg("DeleteSession: Failed to clear session")
	}
	ctx.Status(http.StatusNoContent)
}
