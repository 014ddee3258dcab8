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

type CompetitionService interface {
	Summary(ctx context.Context) (domain.CompetitionSummary, error)
	Update(ctx context.Context, info domain.CompetitionInfo) (domain.CompetitionInfo, error)
}

type CompetitionHandler struct {
	svc CompetitionService
}

func NewCompetitionHandler(svc CompetitionService) *CompetitionHandler {
	return &CompetitionHandler{
		svc: svc,
	}
}

// HandleGetCompetition godoc
// @Summary      Get the public competition summary
// @Tags         competition
// @Produce      json
// @Success      200      {object}   domain.CompetitionSummary
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /competition [get]
func (h *CompetitionHandler) HandleGetCompetition(ctx *gin.Context) {
	summary, err := h.svc.Summary(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrCompetitionInfoNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrCompetitionInfoNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetCompetition -> h.svc.Summary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// HandleUpdateCompetition godoc
// @Summary      Update the competition info record
// @Tags         competition
// @Produce      json
// @Param        request   body      request.CompetitionRequest true "request body"
// @Success      200      {object}   domain.CompetitionInfo
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /competition [put]
func (h *CompetitionHandler) HandleUpdateCompetition(ctx *gin.Context) {
	req := request.CompetitionRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	info, err := h.svc.Update(ctx.Request.Context(), domain.CompetitionInfo{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		MaxPlayers:  req.MaxPlayers,
		Status:      req.Status,
		Theme:       req.Theme,
		PrizePool:   req.PrizePool,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleUpdateCompetition -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, info)
}
