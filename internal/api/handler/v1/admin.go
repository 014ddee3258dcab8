package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/api/handler/v1/request"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/api/handler/v1/response"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/service"
)

type AdminService interface {
	List(ctx context.Context) ([]domain.Admin, error)
	Create(ctx context.Context, admin domain.Admin, password string) (domain.Admin, error)
	Update(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	Delete(ctx context.Context, id string) error
}

type AdminHandler struct {
	svc AdminService
}

func NewAdminHandler(svc AdminService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

// Account management is restricted to the main admin; normal admins can
// score and configure the competition but not mint accounts.
func (h *AdminHandler) requireMainRole(ctx *gin.Context) bool {
	role, ok := adminRoleFromContext(ctx)
	if !ok || role != domain.AdminRoleMain {
		response.RenderErr(ctx, response.ErrPermissionDenied("main admin role required"))

		return false
	}

	return true
}

// HandleListAdmins godoc
// @Summary      List admin accounts
// @Tags         admins
// @Produce      json
// @Success      200      {array}    domain.Admin
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /admins [get]
func (h *AdminHandler) HandleListAdmins(ctx *gin.Context) {
	if !h.requireMainRole(ctx) {
		return
	}

	admins, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListAdmins -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, admins)
}

// HandleCreateAdmin godoc
// @Summary      Create an admin account
// @Tags         admins
// @Produce      json
// @Param        request   body      request.CreateAdminRequest true "request body"
// @Success      201      {object}   domain.Admin
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /admins [post]
func (h *AdminHandler) HandleCreateAdmin(ctx *gin.Context) {
	if !h.requireMainRole(ctx) {
		return
	}

	req := request.CreateAdminRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	admin, err := h.svc.Create(ctx.Request.Context(), domain.Admin{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	}, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAdminUsernameExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrAdminUsernameExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateAdmin -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusCreated, admin)
}

// HandleUpdateAdmin godoc
// @Summary      Update an admin account
// @Tags         admins
// @Produce      json
// @Param        adminID   path      string                     true "admin id"
// @Param        request   body      request.UpdateAdminRequest true "request body"
// @Success      200      {object}   domain.Admin
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /admins/{adminID} [put]
func (h *AdminHandler) HandleUpdateAdmin(ctx *gin.Context) {
	if !h.requireMainRole(ctx) {
		return
	}

	req := request.UpdateAdminRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	admin, err := h.svc.Update(ctx.Request.Context(), domain.Admin{
		ID:     ctx.Param("adminID"),
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Status: req.Status,
	})
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrAdminNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateAdmin -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, admin)
}

// HandleDeleteAdmin godoc
// @Summary      Delete an admin account
// @Tags         admins
// @Produce      json
// @Param        adminID   path      string true "admin id"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /admins/{adminID} [delete]
func (h *AdminHandler) HandleDeleteAdmin(ctx *gin.Context) {
	if !h.requireMainRole(ctx) {
		return
	}

	targetID := ctx.Param("adminID")
	if selfID, ok := adminIDFromContext(ctx); ok && selfID == targetID {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("cannot delete your own account")))

		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), targetID); err != nil {
		err = fmt.Errorf("v1.HandleDeleteAdmin -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "admin deleted"})
}
