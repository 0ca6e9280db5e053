package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sibaq/festival-api/internal/api/handler/v1/request"
	"github.com/sibaq/festival-api/internal/api/handler/v1/response"
	"github.com/sibaq/festival-api/internal/api/middleware"
	"github.com/sibaq/festival-api/internal/config"
	"github.com/sibaq/festival-api/internal/domain"
	"github.com/sibaq/festival-api/internal/pkg/jwthelper"
	"github.com/sibaq/festival-api/internal/service"
)

var errInvalidID = errors.New("invalid id")

type AuthService interface {
	Login(ctx context.Context, username, password string) (domain.User, error)
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Login an admin user
// @Description  Verifies credentials and sets the auth cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "credentials"
// @Success      200      {object}  response.LoginResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      429      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials())
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, user.Username, user.Role)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	// HttpOnly + SameSite=Strict keeps the credential away from scripts and
	// cross-site requests. Secure is off only in local development.
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(middleware.CookieName, token,
		int(jwthelper.TokenLifetime.Seconds()), "/", "", h.conf.SecureCookies, true)

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Success: true,
		User:    user,
	})
}

// HandleLogout godoc
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /auth/logout [post]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(middleware.CookieName, "", -1, "/", "", h.conf.SecureCookies, true)

	ctx.JSON(http.StatusOK, gin.H{"success": true})
}
