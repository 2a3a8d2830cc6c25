package handlers

import (
	"errors"
	"net/http"

	hostRepo "hostly/database/repository/host"
	packageRepo "hostly/database/repository/packages"
	"hostly/models"
	"hostly/services/host"
	"hostly/utils"

	"github.com/gin-gonic/gin"
)

// HostHandler exposes host profile and availability settings endpoints.
type HostHandler struct {
	Service  host.HostService
	Packages packageRepo.PackageRepository
}

func NewHostHandler(service host.HostService, packages packageRepo.PackageRepository) *HostHandler {
	return &HostHandler{Service: service, Packages: packages}
}

// GetPublicProfile handles GET /api/hosts/slug/:slug — the public booking
// page payload: profile plus active packages, free intro first.
func (h *HostHandler) GetPublicProfile(c *gin.Context) {
	slug := c.Param("slug")

	profile, err := h.Service.GetPublicProfile(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, hostRepo.ErrHostNotFound) {
			utils.JSONError(c, http.StatusNotFound, "host not found", slug)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch host", err.Error())
		return
	}

	packages, err := h.Packages.ListActiveByHost(c.Request.Context(), profile.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch packages", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"host": profile, "packages": packages})
}

// UpdateProfile handles PATCH /api/hosts/:id/profile.
func (h *HostHandler) UpdateProfile(c *gin.Context) {
	var input host.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.UpdateProfile(c.Request.Context(), c.Param("id"), input); err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// UpdateBookableHours handles PUT /api/hosts/:id/bookable-hours.
func (h *HostHandler) UpdateBookableHours(c *gin.Context) {
	var input struct {
		BookableHours models.WeeklyTemplate `json:"bookableHours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.UpdateBookableHours(c.Request.Context(), c.Param("id"), input.BookableHours); err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// UpdateGoogleCredential handles PUT /api/hosts/:id/google-credential. The
// refresh token arrives from the out-of-scope OAuth callback flow; this
// endpoint only stores it.
func (h *HostHandler) UpdateGoogleCredential(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Service.UpdateGoogleRefreshToken(c.Request.Context(), c.Param("id"), input.RefreshToken); err != nil {
		h.writeSettingsError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *HostHandler) writeSettingsError(c *gin.Context, err error) {
	var vErr *host.ValidationError
	var slugErr *host.SlugTakenError
	switch {
	case errors.As(err, &vErr):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", vErr.Message)
	case errors.As(err, &slugErr):
		utils.JSONErrorCode(c, http.StatusConflict, slugErr.Code, slugErr.Message)
	case errors.Is(err, hostRepo.ErrHostNotFound):
		utils.JSONError(c, http.StatusNotFound, "host not found", c.Param("id"))
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to update host", err.Error())
	}
}
