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

type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	Update(ctx context.Context, update service.SettingsUpdate) (domain.Settings, error)
	EnableFinals(ctx context.Context) (domain.Settings, error)
	DisableFinals(ctx context.Context) (domain.Settings, error)
}

type SettingsHandler struct {
	svc SettingsService
}

func NewSettingsHandler(svc SettingsService) *SettingsHandler {
	return &SettingsHandler{
		svc: svc,
	}
}

// HandleGetSettings godoc
// @Summary      Get competition settings
// @Tags         settings
// @Produce      json
// @Success      200      {object}   domain.Settings
// @Failure      500      {object}   response.Err
// @Router       /settings [get]
func (h *SettingsHandler) HandleGetSettings(ctx *gin.Context) {
	settings, err := h.svc.Get(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetSettings -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// HandleUpdateSettings godoc
// @Summary      Update competition settings
// @Description  Partial update; omitted fields keep their value. Toggling finalsEnabled also locks or unlocks qualification.
// @Tags         settings
// @Produce      json
// @Param        request   body      request.UpdateSettingsRequest true "request body"
// @Success      200      {object}   domain.Settings
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /settings [put]
func (h *SettingsHandler) HandleUpdateSettings(ctx *gin.Context) {
	req := request.UpdateSettingsRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	update := service.SettingsUpdate{
		ResultsPublished:    req.ResultsPublished,
		FinalsEnabled:       req.FinalsEnabled,
		QualificationLocked: req.QualificationLocked,
	}
	if req.CurrentRound != nil {
		round := domain.RoundType(*req.CurrentRound)
		update.CurrentRound = &round
	}

	settings, err := h.svc.Update(ctx.Request.Context(), update)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRound) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidRound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateSettings -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// HandleEnableFinals godoc
// @Summary      Enter the finals phase
// @Tags         settings
// @Produce      json
// @Success      200      {object}   domain.Settings
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /settings/finals/enable [post]
func (h *SettingsHandler) HandleEnableFinals(ctx *gin.Context) {
	settings, err := h.svc.EnableFinals(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleEnableFinals -> h.svc.EnableFinals -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// HandleDisableFinals godoc
// @Summary      Return to the qualification phase
// @Tags         settings
// @Produce      json
// @Success      200      {object}   domain.Settings
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /settings/finals/disable [post]
func (h *SettingsHandler) HandleDisableFinals(ctx *gin.Context) {
	settings, err := h.svc.DisableFinals(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleDisableFinals -> h.svc.DisableFinals -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, settings)
}
