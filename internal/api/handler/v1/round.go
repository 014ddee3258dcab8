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

type RoundService interface {
	List(ctx context.Context) ([]domain.Round, error)
	Get(ctx context.Context, id string) (domain.Round, error)
	Create(ctx context.Context, round domain.Round) (domain.Round, error)
	Update(ctx context.Context, round domain.Round) (domain.Round, error)
	Delete(ctx context.Context, id string) error
}

type RoundHandler struct {
	svc RoundService
}

func NewRoundHandler(svc RoundService) *RoundHandler {
	return &RoundHandler{
		svc: svc,
	}
}

// HandleListRounds godoc
// @Summary      List display rounds
// @Tags         rounds
// @Produce      json
// @Success      200      {array}    domain.Round
// @Failure      500      {object}   response.Err
// @Router       /rounds [get]
func (h *RoundHandler) HandleListRounds(ctx *gin.Context) {
	rounds, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListRounds -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, rounds)
}

// HandleCreateRound godoc
// @Summary      Create a display round
// @Tags         rounds
// @Produce      json
// @Param        request   body      request.RoundRequest true "request body"
// @Success      201      {object}   domain.Round
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /rounds [post]
func (h *RoundHandler) HandleCreateRound(ctx *gin.Context) {
	req := request.RoundRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	round, err := h.svc.Create(ctx.Request.Context(), roundFromRequest("", req))
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateRound -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusCreated, round)
}

// HandleUpdateRound godoc
// @Summary      Update a display round
// @Tags         rounds
// @Produce      json
// @Param        roundID   path      string               true "round id"
// @Param        request   body      request.RoundRequest true "request body"
// @Success      200      {object}   domain.Round
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /rounds/{roundID} [put]
func (h *RoundHandler) HandleUpdateRound(ctx *gin.Context) {
	req := request.RoundRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	round, err := h.svc.Update(ctx.Request.Context(), roundFromRequest(ctx.Param("roundID"), req))
	if err != nil {
		if errors.Is(err, service.ErrRoundNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrRoundNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateRound -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, round)
}

// HandleDeleteRound godoc
// @Summary      Delete a display round
// @Tags         rounds
// @Produce      json
// @Param        roundID   path      string true "round id"
// @Success      200      {object}   response.MessageResponse
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /rounds/{roundID} [delete]
func (h *RoundHandler) HandleDeleteRound(ctx *gin.Context) {
	if err := h.svc.Delete(ctx.Request.Context(), ctx.Param("roundID")); err != nil {
		if errors.Is(err, service.ErrRoundNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrRoundNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteRound -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "round deleted"})
}

func roundFromRequest(id string, req request.RoundRequest) domain.Round {
	return domain.Round{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		Theme:        req.Theme,
		TimeLimit:    req.TimeLimit,
		Status:       req.Status,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		DisplayOrder: req.DisplayOrder,
	}
}
