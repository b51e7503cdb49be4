package booking

import (
	"errors"
	"net/http"
	"strconv"

	"libraryhub/internal/api"
	"libraryhub/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// CreateRequest godoc
// @Summary      File a booking request
// @Description  Creates a pending booking request for a room or board game. Fails with 409 if the interval overlaps an approved booking.
// @Tags         bookings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Booking request payload"
// @Success      201      {object}  BookingRequest
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateRequest(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	created, err := h.service.CreateRequest(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "End time must be after start time (use YYYY-MM-DD and HH:MM)"})
		case errors.Is(err, ErrResourceNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Resource not found"})
		case errors.Is(err, ErrResourceUnavailable):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Resource is currently unavailable"})
		case errors.Is(err, ErrConflict):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Requested slot overlaps an approved booking"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create booking request"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Approve godoc
// @Summary      Approve a booking request
// @Description  Admin-only. Re-checks conflicts atomically; on conflict the request stays pending.
// @Tags         admin,bookings
// @Security     BearerAuth
// @Produce      json
// @Param        requestID  path      int  true  "Booking request ID"
// @Success      200        {object}  BookingRequest
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      409        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /admin/bookings/{requestID}/approve [post]
func (h *Handler) Approve(c *gin.Context) {
	approverID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	requestID, err := strconv.Atoi(c.Param("requestID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request ID"})
		return
	}

	approved, err := h.service.Approve(c.Request.Context(), requestID, approverID)
	if err != nil {
		switch {
		case errors.Is(err, ErrRequestNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking request not found"})
		case errors.Is(err, ErrNotPending):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Booking request is not pending"})
		case errors.Is(err, ErrConflict):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Conflict detected: an overlapping booking was approved in the meantime"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to approve booking request"})
		}
		return
	}

	c.JSON(http.StatusOK, approved)
}

// Reject godoc
// @Summary      Reject a booking request
// @Description  Admin-only. Rejection never needs a conflict check.
// @Tags         admin,bookings
// @Security     BearerAuth
// @Produce      json
// @Param        requestID  path      int  true  "Booking request ID"
// @Success      200        {object}  BookingRequest
// @Failure      400        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /admin/bookings/{requestID}/reject [post]
func (h *Handler) Reject(c *gin.Context) {
	approverID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	requestID, err := strconv.Atoi(c.Param("requestID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request ID"})
		return
	}

	rejected, err := h.service.Reject(c.Request.Context(), requestID, approverID)
	if err != nil {
		if errors.Is(err, ErrNotPending) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Booking request is not pending"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to reject booking request"})
		return
	}

	c.JSON(http.StatusOK, rejected)
}

// Cancel godoc
// @Summary      Cancel own booking request
// @Description  Cancels a pending request of the authenticated user.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        requestID  path      int  true  "Booking request ID"
// @Success      200        {object}  api.MessageResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      403        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /bookings/{requestID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	requestID, err := strconv.Atoi(c.Param("requestID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid request ID"})
		return
	}

	err = h.service.Cancel(c.Request.Context(), requestID, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrRequestNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking request not found"})
		case errors.Is(err, ErrNotOwner):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "You can only cancel your own requests"})
		case errors.Is(err, ErrNotPending):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Only pending requests can be cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to cancel booking request"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Booking request cancelled"})
}

// ListMyRequests godoc
// @Summary      List my booking requests
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   BookingRequest
// @Failure      500  {object}  api.ErrorResponse
// @Router       /bookings [get]
func (h *Handler) ListMyRequests(c *gin.Context) {
	userID, exists := auth.GetUserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	requests, err := h.service.ListMyRequests(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch booking requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ListPending godoc
// @Summary      List pending booking requests
// @Description  Admin-only queue of requests awaiting a decision.
// @Tags         admin,bookings
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   BookingRequestWithDetails
// @Failure      500  {object}  api.ErrorResponse
// @Router       /admin/bookings/pending [get]
func (h *Handler) ListPending(c *gin.Context) {
	requests, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch pending requests"})
		return
	}

	c.JSON(http.StatusOK, requests)
}

// ResourceSchedule godoc
// @Summary      Approved bookings for a resource on a date
// @Description  Returns the approved bookings holding a resource on the given date, for rendering free slots.
// @Tags         bookings
// @Security     BearerAuth
// @Produce      json
// @Param        resourceType  path      string  true  "Resource type (room or board_game)"
// @Param        resourceID    path      int     true  "Resource ID"
// @Param        date          query     string  true  "Date (YYYY-MM-DD)"
// @Success      200           {array}   BookingRequest
// @Failure      400           {object}  api.ErrorResponse
// @Failure      404           {object}  api.ErrorResponse
// @Failure      500           {object}  api.ErrorResponse
// @Router       /resources/{resourceType}/{resourceID}/schedule [get]
func (h *Handler) ResourceSchedule(c *gin.Context) {
	resourceType := c.Param("resourceType")
	if resourceType != ResourceTypeRoom && resourceType != ResourceTypeBoardGame {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Resource type must be room or board_game"})
		return
	}

	resourceID, err := strconv.Atoi(c.Param("resourceID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid resource ID"})
		return
	}

	date := c.Query("date")
	if !ValidDate(date) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "date query param is required (YYYY-MM-DD)"})
		return
	}

	schedule, err := h.service.ResourceSchedule(c.Request.Context(), resourceType, resourceID, date)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Resource not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch schedule"})
		return
	}

	c.JSON(http.StatusOK, schedule)
}
