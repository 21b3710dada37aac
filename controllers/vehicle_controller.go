package controllers

import (
	"net/http"
	"strconv"

	"starwars/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VehicleController struct {
	db *gorm.DB
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{db: db}
}

// GET /vehicles
func (vc *VehicleController) List(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := vc.db.Find(&vehicles).Error; err != nil {
		respondInternal(c, err, "vehicle list")
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// GET /vehicles/:id
func (vc *VehicleController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return
	}
	var vehicle models.Vehicle
	if err := vc.db.First(&vehicle, id).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Vehicle not found")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// POST /vehicles
func (vc *VehicleController) Create(c *gin.Context) {
	var vehicle models.Vehicle
	if err := c.ShouldBindJSON(&vehicle); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	if vehicle.Name == "" {
		respondError(c, http.StatusBadRequest, codeValidation, "name is required")
		return
	}
	vehicle.ID = 0
	if err := vc.db.Create(&vehicle).Error; err != nil {
		respondInternal(c, err, "vehicle create")
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

type VehicleUpdateRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Model        *string `json:"model"`
	Manufacturer *string `json:"manufacturer"`
	Passengers   *int    `json:"passengers"`
	MaxSpeed     *int    `json:"max_speed"`
	VehicleClass *string `json:"vehicle_class"`
}

// PUT /vehicles/:id (partial update)
func (vc *VehicleController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return
	}
	var req VehicleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	var vehicle models.Vehicle
	if err := vc.db.First(&vehicle, id).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Vehicle not found")
		return
	}

	if req.Name != nil {
		vehicle.Name = *req.Name
	}
	if req.Description != nil {
		vehicle.Description = *req.Description
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Manufacturer != nil {
		vehicle.Manufacturer = *req.Manufacturer
	}
	if req.Passengers != nil {
		vehicle.Passengers = *req.Passengers
	}
	if req.MaxSpeed != nil {
		vehicle.MaxSpeed = *req.MaxSpeed
	}
	if req.VehicleClass != nil {
		vehicle.VehicleClass = *req.VehicleClass
	}

	if err := vc.db.Save(&vehicle).Error; err != nil {
		respondInternal(c, err, "vehicle update")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// DELETE /vehicles/:id
func (vc *VehicleController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return
	}
	var vehicle models.Vehicle
	if err := vc.db.First(&vehicle, id).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Vehicle not found")
		return
	}
	if err := vc.db.Delete(&vehicle).Error; err != nil {
		respondInternal(c, err, "vehicle delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle deleted successfully"})
}
