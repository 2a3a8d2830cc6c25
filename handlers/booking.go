package handlers

import (
	"errors"
	"net/http"
	"time"

	hostRepo "hostly/database/repository/host"
	"hostly/services/booking"
	"hostly/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking commit endpoint.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

type createBookingRequest struct {
	HostID     string    `json:"hostId" binding:"required"`
	CustomerID string    `json:"customerId" binding:"required"`
	PackageID  string    `json:"packageId" binding:"required"`
	StartTime  time.Time `json:"startTime" binding:"required"`
	EndTime    time.Time `json:"endTime" binding:"required"`
}

// CreateBooking handles POST /api/bookings. A lost race for the slot comes
// back as 409 SLOT_TAKEN; the client should re-fetch availability and pick
// another slot.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.Service.CreateConfirmedBooking(c.Request.Context(), booking.CreateBookingInput{
		HostID:     req.HostID,
		CustomerID: req.CustomerID,
		PackageID:  req.PackageID,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		var slotErr *booking.SlotTakenError
		var vErr *booking.ValidationError
		switch {
		case errors.As(err, &slotErr):
			utils.JSONErrorCode(c, http.StatusConflict, slotErr.Code, slotErr.Message)
		case errors.As(err, &vErr):
			utils.JSONError(c, http.StatusBadRequest, "invalid booking request", vErr.Message)
		case errors.Is(err, hostRepo.ErrHostNotFound):
			utils.JSONError(c, http.StatusNotFound, "host not found", req.HostID)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}
