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

type ScoringService interface {
	SubmitScores(ctx context.Context, round domain.RoundType, entries []service.ScoreEntry, enteredBy string) error
	SavePlayerSheet(ctx context.Context, round domain.RoundType, playerID string, sheet map[string]map[string]*int, enteredBy string) error
	GetRoundSheet(ctx context.Context, round domain.RoundType) (domain.ScoreSheet, error)
}

type ScoreHandler struct {
	svc ScoringService
}

func NewScoreHandler(svc ScoringService) *ScoreHandler {
	return &ScoreHandler{
		svc: svc,
	}
}

// HandleGetScores godoc
// @Summary      Get the full score sheet for a round
// @Tags         scores
// @Produce      json
// @Param        round     query     string true "qualification or finals"
// @Success      200      {object}   response.ScoreSheetResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /scores [get]
func (h *ScoreHandler) HandleGetScores(ctx *gin.Context) {
	round := domain.RoundType(ctx.DefaultQuery("round", string(domain.RoundQualification)))

	sheet, err := h.svc.GetRoundSheet(ctx.Request.Context(), round)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRound) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidRound))

			return
		}

		err = fmt.Errorf("v1.HandleGetScores -> h.svc.GetRoundSheet -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, response.ScoreSheetResponse{
		Round:  round,
		Scores: sheet,
	})
}

// HandleSubmitScores godoc
// @Summary      Submit a batch of score entries
// @Description  Validates every entry before writing any. Rejected with 409 when the round is locked.
// @Tags         scores
// @Produce      json
// @Param        request   body      request.SubmitScoresRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /scores [post]
func (h *ScoreHandler) HandleSubmitScores(ctx *gin.Context) {
	req := request.SubmitScoresRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	adminID, _ := adminIDFromContext(ctx)

	entries := make([]service.ScoreEntry, 0, len(req.Entries))
	for _, entry := range req.Entries {
		entries = append(entries, service.ScoreEntry{
			PlayerID:    entry.PlayerID,
			JudgeID:     entry.JudgeID,
			CriterionID: entry.CriterionID,
			Points:      entry.Points,
		})
	}

	err := h.svc.SubmitScores(ctx.Request.Context(), domain.RoundType(req.Round), entries, adminID)
	if err != nil {
		renderScoringErr(ctx, "v1.HandleSubmitScores", err)

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "scores saved"})
}

// HandleSavePlayerSheet godoc
// @Summary      Save one player's sheet across all judges
// @Description  Nil cells mean "not scored yet" and are skipped rather than written as zero.
// @Tags         scores
// @Produce      json
// @Param        request   body      request.SavePlayerSheetRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /scores/player [post]
func (h *ScoreHandler) HandleSavePlayerSheet(ctx *gin.Context) {
	req := request.SavePlayerSheetRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	adminID, _ := adminIDFromContext(ctx)

	err := h.svc.SavePlayerSheet(ctx.Request.Context(), domain.RoundType(req.Round), req.PlayerID, req.Scores, adminID)
	if err != nil {
		renderScoringErr(ctx, "v1.HandleSavePlayerSheet", err)

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "player sheet saved"})
}

func renderScoringErr(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrRoundLocked):
		response.RenderErr(ctx, response.ErrConflict(service.ErrRoundLocked))
	case errors.Is(err, service.ErrInvalidRound), errors.Is(err, service.ErrPointsOutOfRange):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrCriterionNotFound),
		errors.Is(err, service.ErrPlayerNotFound),
		errors.Is(err, service.ErrJudgeNotFound):
		response.RenderErr(ctx, response.ErrNotFound(err))
	default:
		err = fmt.Errorf("%s -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))
	}
}
