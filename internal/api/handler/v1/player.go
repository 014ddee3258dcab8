package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/api/handler/v1/request"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/api/handler/v1/response"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/domain"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/pkg/roster"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/repository"
	"github.com/IsuruSandaruwan97/react-score-dashboard/internal/service"
)

type PlayerService interface {
	List(ctx context.Context, orderBy string, page, pageSize int) ([]domain.Player, int64, error)
	Get(ctx context.Context, id string) (domain.Player, error)
	Create(ctx context.Context, player domain.Player) (domain.Player, error)
	Update(ctx context.Context, player domain.Player) (domain.Player, error)
	Delete(ctx context.Context, id string) error
	ImportRoster(ctx context.Context, players []domain.Player) (service.RosterStats, error)
}

type PlayerHandler struct {
	svc PlayerService
}

func NewPlayerHandler(svc PlayerService) *PlayerHandler {
	return &PlayerHandler{
		svc: svc,
	}
}

// HandleListPlayers godoc
// @Summary      List active players
// @Tags         players
// @Produce      json
// @Param        page      query     int    false "page number, 1-based"
// @Param        pageSize  query     int    false "page size"
// @Param        orderBy   query     string false "set to 'score' for score-ordered listing"
// @Success      200      {object}   response.PlayerListResponse
// @Failure      500      {object}   response.Err
// @Router       /players [get]
func (h *PlayerHandler) HandleListPlayers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "10"))
	orderBy := ctx.Query("orderBy")

	players, total, err := h.svc.List(ctx.Request.Context(), orderBy, page, pageSize)
	if err != nil {
		err = fmt.Errorf("v1.HandleListPlayers -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, response.PlayerListResponse{
		Players: players,
		Total:   total,
	})
}

// HandleGetPlayer godoc
// @Summary      Get a player by id
// @Tags         players
// @Produce      json
// @Param        playerID  path      string true "player id"
// @Success      200      {object}   domain.Player
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /players/{playerID} [get]
func (h *PlayerHandler) HandleGetPlayer(ctx *gin.Context) {
	player, err := h.svc.Get(ctx.Request.Context(), ctx.Param("playerID"))
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(repository.ErrPlayerNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleGetPlayer -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, player)
}

// HandleCreatePlayer godoc
// @Summary      Create a player
// @Tags         players
// @Produce      json
// @Param        request   body      request.PlayerRequest true "request body"
// @Success      201      {object}   domain.Player
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /players [post]
func (h *PlayerHandler) HandleCreatePlayer(ctx *gin.Context) {
	req := request.PlayerRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	player, err := h.svc.Create(ctx.Request.Context(), domain.Player{
		ID:              req.ID,
		Username:        req.Username,
		IGN:             req.IGN,
		DiscordUsername: req.DiscordUsername,
		Team:            req.Team,
		Status:          req.Status,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreatePlayer -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusCreated, player)
}

// HandleUpdatePlayer godoc
// @Summary      Update a player
// @Tags         players
// @Produce      json
// @Param        playerID  path      string                true "player id"
// @Param        request   body      request.PlayerRequest true "request body"
// @Success      200      {object}   domain.Player
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /players/{playerID} [put]
func (h *PlayerHandler) HandleUpdatePlayer(ctx *gin.Context) {
	req := request.PlayerRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	player, err := h.svc.Update(ctx.Request.Context(), domain.Player{
		ID:              ctx.Param("playerID"),
		Username:        req.Username,
		IGN:             req.IGN,
		DiscordUsername: req.DiscordUsername,
		Team:            req.Team,
		Status:          req.Status,
	})
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(repository.ErrPlayerNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleUpdatePlayer -> h.svc.Update -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, player)
}

// HandleDeletePlayer godoc
// @Summary      Delete a player and their scores
// @Tags         players
// @Produce      json
// @Param        playerID  path      string true "player id"
// @Success      200      {object}   response.MessageResponse
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /players/{playerID} [delete]
func (h *PlayerHandler) HandleDeletePlayer(ctx *gin.Context) {
	if err := h.svc.Delete(ctx.Request.Context(), ctx.Param("playerID")); err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			response.RenderErr(ctx, response.ErrNotFound(repository.ErrPlayerNotFound))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePlayer -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: "player deleted"})
}

// HandleUploadRoster godoc
// @Summary      Upload a player roster as CSV or XLSX
// @Tags         players
// @Accept       multipart/form-data
// @Produce      json
// @Param        file      formData  file true "roster file"
// @Success      200      {object}   response.RosterUploadResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Security     BearerAuth
// @Router       /players/upload [post]
func (h *PlayerHandler) HandleUploadRoster(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("missing roster file")))

		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		err = fmt.Errorf("v1.HandleUploadRoster -> fileHeader.Open -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}
	defer file.Close()

	players, err := roster.Parse(fileHeader.Filename, file)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	stats, err := h.svc.ImportRoster(ctx.Request.Context(), players)
	if err != nil {
		err = fmt.Errorf("v1.HandleUploadRoster -> h.svc.ImportRoster -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(ctx, err))

		return
	}

	ctx.JSON(http.StatusOK, response.RosterUploadResponse{
		Added:   stats.Added,
		Updated: stats.Updated,
		Total:   stats.Total,
	})
}
