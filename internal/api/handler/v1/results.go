package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/api/handler/v1/response"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/service"
)

type ResultsService interface {
	PublicResults(ctx context.Context) ([]domain.PlayerResult, error)
	RankRound(ctx context.Context, round domain.RoundType, topN int) ([]domain.PlayerResult, error)
}

type ResultsHandler struct {
	svc ResultsService
}

func NewResultsHandler(svc ResultsService) *ResultsHandler {
	return &ResultsHandler{
		svc: svc,
	}
}

// HandleGetResults godoc
// @Summary      Get the public finals leaderboard
// @Description  Returns 404 until an admin publishes results.
// @Tags         results
// @Produce      json
// @Success      200      {object}   response.ResultsResponse
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /results [get]
func (h *ResultsHandler) HandleGetResults(ctx *gin.Context) {
	results, err := h.svc.PublicResults(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrResultsNotPublished) {
			response.RenderErr(ctx, response.ErrNotFound(service.ErrResultsNotPublished))

			return
		}

		err = fmt.Errorf("v1.HandleGetResults -> h.svc.PublicResults -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, response.ResultsResponse{
		Published: true,
		Results:   results,
	})
}

// HandleGetRoundStandings godoc
// @Summary      Get full standings for a round
// @Description  Admin view of the complete ranking, not truncated and not gated on publication.
// @Tags         results
// @Produce      json
// @Param        round     query     string true "qualification or finals"
// @Success      200      {array}    domain.PlayerResult
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /results/standings [get]
func (h *ResultsHandler) HandleGetRoundStandings(ctx *gin.Context) {
	round := domain.RoundType(ctx.DefaultQuery("round", string(domain.RoundQualification)))

	results, err := h.svc.RankRound(ctx.Request.Context(), round, 0)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRound) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidRound))

			return
		}

		err = fmt.Errorf("v1.HandleGetRoundStandings -> h.svc.RankRound -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, results)
}
