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
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/service"
)

type CriterionService interface {
	ListAll(ctx context.Context) ([]domain.Criterion, error)
	ListForRound(ctx context.Context, round domain.RoundType) ([]domain.Criterion, error)
	Get(ctx context.Context, id string) (domain.Criterion, error)
	Create(ctx context.Context, criterion domain.Criterion) (domain.Criterion, error)
	Update(ctx context.Context, criterion domain.Criterion) (domain.Criterion, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, orderedIDs []string) error
}

type CriterionHandler struct {
	svc CriterionService
}

func NewCriterionHandler(svc CriterionService) *CriterionHandler {
	return &CriterionHandler{
		svc: svc,
	}
}

// HandleListCriteria godoc
// @Summary      List judging criteria
// @Tags         criteria
// @Produce      json
// @Param        round     query     string false "filter to active criteria for a round (qualification or finals)"
// @Success      200      {array}    domain.Criterion
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /criteria [get]
func (h *CriterionHandler) HandleListCriteria(ctx *gin.Context) {
	var (
		criteria []domain.Criterion
		err      error
	)
	if round := ctx.Query("round"); round != "" {
		criteria, err = h.svc.ListForRound(ctx.Request.Context(), domain.RoundType(round))
	} else {
		criteria, err = h.svc.ListAll(ctx.Request.Context())
	}
	if err != nil {
		if errors.Is(err, service.ErrInvalidRound) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidRound))

			return
		}

		err = fmt.Errorf("v1.HandleListCriteria -> h.svc.ListAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, criteria)
}

// HandleCreateCriterion godoc
// @Summary      Create a judging criterion
// @Tags         criteria
// @Produce      json
// @Param        request   body      request.CriterionRequest true "request body"
// @Success      201      {object}   domain.Criterion
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /criteria [post]
func (h *CriterionHandler) HandleCreateCriterion(ctx *gin.Context) {
	req := request.CriterionRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	criterion, err := h.svc.Create(ctx.Request.Context(), domain.Criterion{
		Name:        req.Name,
		Description: req.Description,
		MaxPoints:   req.MaxPoints,
		Rounds:      roundTypes(req.Rounds),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidMaxPoints) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidMaxPoints))

			return
		}

		err = fmt.Errorf("v1.HandleCreateCriterion -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusCreated, criterion)
}

// HandleUpdateCriterion godoc
// @Summary      Update a judging criterion
// @Tags         criteria
// @Produce      json
// @Param        criterionID  path   string                   true "criterion id"
// @Param        request      body   request.CriterionRequest true "request body"
// @Success      200      {object}   domain.Criterion
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /criteria/{criterionID} [put]
func (h *CriterionHandler) HandleUpdateCriterion(ctx *gin.Context) {
	req := request.CriterionRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	existing, err := h.svc.Get(ctx.Request.Context(), ctx.Param("criterionID"))
	if err != nil {
		if errors.Is(err, repository.ErrCriterionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(repository.ErrCriterionNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateCriterion -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.MaxPoints = req.MaxPoints
	existing.Rounds = roundTypes(req.Rounds)

	criterion, err := h.svc.Update(ctx.Request.Context(), existing)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMaxPoints) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidMaxPoints))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateCriterion -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, criterion)
}

// HandleDeleteCriterion godoc
// @Summary      Retire a judging criterion
// @Tags         criteria
// @Produce      json
// @Param        criterionID  path   string true "criterion id"
// @Success      200      {object}   response.MessageResponse
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /criteria/{criterionID} [delete]
func (h *CriterionHandler) HandleDeleteCriterion(ctx *gin.Context) {
	if err := h.svc.Delete(ctx.Request.Context(), ctx.Param("criterionID")); err != nil {
		if errors.Is(err, repository.ErrCriterionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(repository.ErrCriterionNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteCriterion -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "criterion removed"})
}

// HandleReorderCriteria godoc
// @Summary      Reorder judging criteria
// @Tags         criteria
// @Produce      json
// @Param        request   body      request.ReorderCriteriaRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /criteria/reorder [post]
func (h *CriterionHandler) HandleReorderCriteria(ctx *gin.Context) {
	req := request.ReorderCriteriaRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Reorder(ctx.Request.Context(), req.OrderedIDs); err != nil {
		if errors.Is(err, repository.ErrCriterionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(repository.ErrCriterionNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleReorderCriteria -> h.svc.Reorder -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "criteria reordered"})
}

func roundTypes(rounds []string) []domain.RoundType {
	result := make([]domain.RoundType, 0, len(rounds))
	for _, r := range rounds {
		result = append(result, domain.RoundType(r))
	}

	return result
}
