package handlers

import (
	"errors"
	"net/http"
	"time"

	packageRepo "hostly/database/repository/packages"
	"hostly/models"
	"hostly/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PackageHandler exposes CRUD for a host's service packages.
type PackageHandler struct {
	Repo packageRepo.PackageRepository
}

func NewPackageHandler(repo packageRepo.PackageRepository) *PackageHandler {
	return &PackageHandler{Repo: repo}
}

type packageRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	SessionCount int    `json:"sessionCount" binding:"required,min=1"`
	PriceInCents int    `json:"priceInCents" binding:"min=0"`
}

// CreatePackage handles POST /api/hosts/:id/packages.
func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var req packageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	pkg := &models.ServicePackage{
		ID:           uuid.New().String(),
		HostID:       c.Param("id"),
		Name:         req.Name,
		SessionCount: req.SessionCount,
		PriceInCents: req.PriceInCents,
		IsFreeIntro:  req.PriceInCents == 0 && req.SessionCount == 1,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.Repo.Create(c.Request.Context(), pkg); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create package", err.Error())
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

// ListPackages handles GET /api/hosts/:id/packages.
func (h *PackageHandler) ListPackages(c *gin.Context) {
	pkgs, err := h.Repo.ListByHost(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list packages", err.Error())
		return
	}
	c.JSON(http.StatusOK, pkgs)
}

// UpdatePackage handles PATCH /api/hosts/:id/packages/:packageId.
func (h *PackageHandler) UpdatePackage(c *gin.Context) {
	var req packageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	err := h.Repo.Update(c.Request.Context(), c.Param("packageId"), c.Param("id"),
		req.Name, req.SessionCount, req.PriceInCents)
	if err != nil {
		h.writePackageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeactivatePackage handles DELETE /api/hosts/:id/packages/:packageId.
// Packages are never hard-deleted; existing bookings keep their reference.
func (h *PackageHandler) DeactivatePackage(c *gin.Context) {
	if err := h.Repo.Deactivate(c.Request.Context(), c.Param("packageId"), c.Param("id")); err != nil {
		h.writePackageError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

func (h *PackageHandler) writePackageError(c *gin.Context, err error) {
	if errors.Is(err, packageRepo.ErrPackageNotFound) {
		utils.JSONError(c, http.StatusNotFound, "package not found", c.Param("packageId"))
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "failed to update package", err.Error())
}
