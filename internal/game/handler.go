package game

import (
	"errors"
	"net/http"
	"strconv"

	"libraryhub/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateGame godoc
// @Summary      Add a board game
// @Description  Admin-only: register a board game in the catalogue.
// @Tags         admin,games
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBoardGameRequest  true  "Board game payload"
// @Success      201      {object}  BoardGame
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var req CreateBoardGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	game, err := h.service.CreateGame(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create board game"})
		return
	}

	c.JSON(http.StatusCreated, game)
}

// ListGames godoc
// @Summary      List board games
// @Tags         games
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   BoardGame
// @Failure      500  {object}  api.ErrorResponse
// @Router       /games [get]
func (h *Handler) ListGames(c *gin.Context) {
	games, err := h.service.GetAllGames(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch board games"})
		return
	}

	c.JSON(http.StatusOK, games)
}

// SetAvailability godoc
// @Summary      Set board game availability
// @Description  Admin-only: mark a game as available or withdrawn (lost pieces, maintenance).
// @Tags         admin,games
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        gameID   path      int                     true  "Board game ID"
// @Param        request  body      SetAvailabilityRequest  true  "Availability flag"
// @Success      200      {object}  BoardGame
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/games/{gameID}/availability [patch]
func (h *Handler) SetAvailability(c *gin.Context) {
	gameID, err := strconv.Atoi(c.Param("gameID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid game ID"})
		return
	}

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	game, err := h.service.SetAvailability(c.Request.Context(), gameID, *req.IsAvailable)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Board game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update availability"})
		return
	}

	c.JSON(http.StatusOK, game)
}
