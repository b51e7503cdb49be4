package room

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

// CreateRoom godoc
// @Summary      Create a room
// @Description  Admin-only: register a study room.
// @Tags         admin,rooms
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateRoomRequest  true  "Room payload"
// @Success      201      {object}  Room
// @Failure      400      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /admin/rooms [post]
func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.service.CreateRoom(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create room"})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// UpdateRoom godoc
// @Summary      Update a room
// @Description  Admin-only: change a room's name, location or capacity.
// @Tags         admin,rooms
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        roomID   path      int                true  "Room ID"
// @Param        request  body      CreateRoomRequest  true  "Room payload"
// @Success      200      {object}  Room
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /admin/rooms/{roomID} [put]
func (h *Handler) UpdateRoom(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("roomID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid room ID"})
		return
	}

	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.service.UpdateRoom(c.Request.Context(), roomID, req)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update room"})
		return
	}

	c.JSON(http.StatusOK, room)
}

// ListRooms godoc
// @Summary      List rooms
// @Tags         rooms
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Room
// @Failure      500  {object}  api.ErrorResponse
// @Router       /rooms [get]
func (h *Handler) ListRooms(c *gin.Context) {
	rooms, err := h.service.GetAllRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch rooms"})
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// GetRoom godoc
// @Summary      Get a room
// @Tags         rooms
// @Security     BearerAuth
// @Produce      json
// @Param        roomID  path      int  true  "Room ID"
// @Success      200     {object}  Room
// @Failure      400     {object}  api.ErrorResponse
// @Failure      404     {object}  api.ErrorResponse
// @Router       /rooms/{roomID} [get]
func (h *Handler) GetRoom(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("roomID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid room ID"})
		return
	}

	room, err := h.service.GetRoomByID(c.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch room"})
		return
	}

	c.JSON(http.StatusOK, room)
}
