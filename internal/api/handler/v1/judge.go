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
)

type JudgeService interface {
	ListAll(ctx context.Context) ([]domain.Judge, error)
	ListActive(ctx context.Context) ([]domain.Judge, error)
	Get(ctx context.Context, id string) (domain.Judge, error)
	Create(ctx context.Context, judge domain.Judge) (domain.Judge, error)
	Update(ctx context.Context, judge domain.Judge) (domain.Judge, error)
	Delete(ctx context.Context, id string) error
}

type JudgeHandler struct {
	svc JudgeService
}

func NewJudgeHandler(svc JudgeService) *JudgeHandler {
	return &JudgeHandler{
		svc: svc,
	}
}

// HandleListJudges godoc
// @Summary      List judges
// @Tags         judges
// @Produce      json
// @Param        all       query     bool false "include inactive judges"
// @Success      200      {array}    domain.Judge
// @Failure      500      {object}   response.Err
// @Router       /judges [get]
func (h *JudgeHandler) HandleListJudges(ctx *gin.Context) {
	var (
		judges []domain.Judge
		err    error
	)
	if ctx.Query("all") == "true" {
		judges, err = h.svc.ListAll(ctx.Request.Context())
	} else {
		judges, err = h.svc.ListActive(ctx.Request.Context())
	}
	if err != nil {
		err = fmt.Errorf("v1.HandleListJudges -> h.svc.ListActive -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, judges)
}

// HandleCreateJudge godoc
// @Summary      Create a judge
// @Tags         judges
// @Produce      json
// @Param        request   body      request.JudgeRequest true "request body"
// @Success      201      {object}   domain.Judge
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /judges [post]
func (h *JudgeHandler) HandleCreateJudge(ctx *gin.Context) {
	req := request.JudgeRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	judge, err := h.svc.Create(ctx.Request.Context(), domain.Judge{
		Name:      req.Name,
		Specialty: req.Specialty,
		Avatar:    req.Avatar,
		Bio:       req.Bio,
		State:     domain.ActiveState(req.State),
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateJudge -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusCreated, judge)
}

// HandleUpdateJudge godoc
// @Summary      Update a judge
// @Tags         judges
// @Produce      json
// @Param        judgeID   path      string               true "judge id"
// @Param        request   body      request.JudgeRequest true "request body"
// @Success      200      {object}   domain.Judge
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /judges/{judgeID} [put]
func (h *JudgeHandler) HandleUpdateJudge(ctx *gin.Context) {
	req := request.JudgeRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	judge, err := h.svc.Update(ctx.Request.Context(), domain.Judge{
		ID:        ctx.Param("judgeID"),
		Name:      req.Name,
		Specialty: req.Specialty,
		Avatar:    req.Avatar,
		Bio:       req.Bio,
		State:     domain.ActiveState(req.State),
	})
	if err != nil {
		if errors.Is(err, repository.ErrJudgeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(repository.ErrJudgeNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateJudge -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, judge)
}

// HandleDeleteJudge godoc
// @Summary      Deactivate a judge
// @Tags         judges
// @Produce      json
// @Param        judgeID   path      string true "judge id"
// @Success      200      {object}   response.MessageResponse
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /judges/{judgeID} [delete]
func (h *JudgeHandler) HandleDeleteJudge(ctx *gin.Context) {
	if err := h.svc.Delete(ctx.Request.Context(), ctx.Param("judgeID")); err != nil {
		if errors.Is(err, repository.ErrJudgeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(repository.ErrJudgeNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteJudge -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "judge removed"})
}
