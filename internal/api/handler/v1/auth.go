package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/api/handler/v1/request"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/api/handler/v1/response"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/config"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/pkg/jwthelper"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (domain.Admin, error)
	ChangePassword(ctx context.Context, adminID, currentPassword, newPassword string) error
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
// @Summary      Login an admin
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	admin, err := h.svc.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) ||
			errors.Is(err, service.ErrWrongPassword) ||
			errors.Is(err, service.ErrAdminInactive) {
			response.RenderErr(ctx, response.ErrWrongCredentials(errors.New("invalid username or password")))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	token, err := jwthelper.GenerateToken(h.conf.JWTSigningKey, admin.ID, admin.Role)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token:                 token,
		Admin:                 admin,
		RequirePasswordChange: admin.RequirePasswordChange,
	})
}

// HandleChangePassword godoc
// @Summary      Change the authenticated admin's password
// @Tags         auth
// @Produce      json
// @Param        request   body      request.ChangePasswordRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /auth/change-password [post]
func (h *AuthHandler) HandleChangePassword(ctx *gin.Context) {
	req := request.ChangePasswordRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	adminID, ok := adminIDFromContext(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrWrongCredentials(errors.New("not authenticated")))

		return
	}

	err := h.svc.ChangePassword(ctx.Request.Context(), adminID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("current password is incorrect")))

			return
		}
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(err))

			return
		}

		err = fmt.Errorf("v1.HandleChangePassword -> h.svc.ChangePassword -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "password updated"})
}
