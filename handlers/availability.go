package handlers

import (
	"errors"
	"net/http"
	"time"

	hostRepo "hostly/database/repository/host"
	"hostly/services/availability"
	"hostly/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler exposes the availability computation engine.
type AvailabilityHandler struct {
	Engine availability.Engine
}

func NewAvailabilityHandler(engine availability.Engine) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine}
}

// GetAvailableSlots handles GET /api/hosts/:id/availability?from=...&to=...
// with RFC3339 bounds. The response is host-local: slot strings carry no
// UTC offset.
func (h *AvailabilityHandler) GetAvailableSlots(c *gin.Context) {
	hostID := c.Param("id")

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid 'from' parameter", "expected RFC3339 timestamp")
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid 'to' parameter", "expected RFC3339 timestamp")
		return
	}

	result, err := h.Engine.GetAvailableSlots(c.Request.Context(), hostID, from, to)
	if err != nil {
		var vErr *availability.ValidationError
		switch {
		case errors.Is(err, hostRepo.ErrHostNotFound):
			utils.JSONError(c, http.StatusNotFound, "host not found", hostID)
		case errors.As(err, &vErr):
			utils.JSONError(c, http.StatusBadRequest, "invalid availability request", vErr.Message)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
