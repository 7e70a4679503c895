package handlers

import (
	"net/http"
	"time"

	"fleetbook/services/storage"
	"fleetbook/services/vehicle"
	"fleetbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VehicleHandler exposes the public catalogue and the admin fleet endpoints.
type VehicleHandler struct {
	Svc     vehicle.VehicleService
	Storage storage.StorageService
}

func NewVehicleHandler(svc vehicle.VehicleService, store storage.StorageService) *VehicleHandler {
	return &VehicleHandler{Svc: svc, Storage: store}
}

// ListHandler returns the catalogue. The public site passes available=true
// to hide vehicles with an active booking.
func (h *VehicleHandler) ListHandler(c *gin.Context) {
	onlyAvailable := c.Query("available") == "true"
	vehicles, err := h.Svc.List(c.Request.Context(), onlyAvailable)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, vehicles)
}

// GetHandler returns a single vehicle.
func (h *VehicleHandler) GetHandler(c *gin.Context) {
	v, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, v)
}

// CreateHandler registers a vehicle.
func (h *VehicleHandler) CreateHandler(c *gin.Context) {
	var in vehicle.VehicleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}
	v, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusCreated, v)
}

// UpdateHandler edits a vehicle.
func (h *VehicleHandler) UpdateHandler(c *gin.Context) {
	var in vehicle.VehicleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid input: " + err.Error()})
		return
	}
	v, err := h.Svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, v)
}

// DeleteHandler removes a vehicle.
func (h *VehicleHandler) DeleteHandler(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": true})
}

// UploadImageHandler accepts a multipart image, stores it and attaches the
// resulting URL to the vehicle.
func (h *VehicleHandler) UploadImageHandler(c *gin.Context) {
	id := c.Param("id")
	if h.Storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "image storage is not configured"})
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "missing image file: " + err.Error()})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	defer file.Close()

	url, err := h.Storage.UploadImage(c.Request.Context(), file, "vehicles")
	if err != nil {
		utils.GetLogger().Error("vehicle image upload failed", zap.String("vehicleID", id), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	if err := h.Svc.AddImage(c.Request.Context(), id, url); err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusCreated, gin.H{"url": url})
}

// RecomputeAvailabilityHandler re-derives the availability flag from the
// vehicle's active bookings.
func (h *VehicleHandler) RecomputeAvailabilityHandler(c *gin.Context) {
	available, err := h.Svc.RecomputeAvailability(c.Request.Context(), c.Param("id"), time.Now())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"isAvailable": available})
}
