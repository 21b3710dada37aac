package controllers

import (
	"net/http"
	"strconv"

	"starwars/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PlanetController struct {
	db *gorm.DB
}

func NewPlanetController(db *gorm.DB) *PlanetController {
	return &PlanetController{db: db}
}

// GET /planets
func (pc *PlanetController) List(c *gin.Context) {
	var planets []models.Planet
	if err := pc.db.Find(&planets).Error; err != nil {
		respondInternal(c, err, "planet list")
		return
	}
	c.JSON(http.StatusOK, planets)
}

// GET /planets/:id
func (pc *PlanetController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return
	}
	var planet models.Planet
	if err := pc.db.First(&planet, id).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Planet not found")
		return
	}
	c.JSON(http.StatusOK, planet)
}

// POST /planets
func (pc *PlanetController) Create(c *gin.Context) {
	var planet models.Planet
	if err := c.ShouldBindJSON(&planet); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	if planet.Name == "" {
		respondError(c, http.StatusBadRequest, codeValidation, "name is required")
		return
	}
	planet.ID = 0
	if err := pc.db.Create(&planet).Error; err != nil {
		respondInternal(c, err, "planet create")
		return
	}
	c.JSON(http.StatusCreated, planet)
}

type PlanetUpdateRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Population    *int64  `json:"population"`
	Diameter      *int    `json:"diameter"`
	OrbitalPeriod *int    `json:"orbital_period"`
	Terrain       *string `json:"terrain"`
	Climate       *string `json:"climate"`
	Gravity       *string `json:"gravity"`
}

// PUT /planets/:id (partial update)
func (pc *PlanetController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return
	}
	var req PlanetUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	var planet models.Planet
	if err := pc.db.First(&planet, id).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Planet not found")
		return
	}

	if req.Name != nil {
		planet.Name = *req.Name
	}
	if req.Description != nil {
		planet.Description = *req.Description
	}
	if req.Population != nil {
		planet.Population = *req.Population
	}
	if req.Diameter != nil {
		planet.Diameter = *req.Diameter
	}
	if req.OrbitalPeriod != nil {
		planet.OrbitalPeriod = *req.OrbitalPeriod
	}
	if req.Terrain != nil {
		planet.Terrain = *req.Terrain
	}
	if req.Climate != nil {
		planet.Climate = *req.Climate
	}
	if req.Gravity != nil {
		planet.Gravity = *req.Gravity
	}

	if err := pc.db.Save(&planet).Error; err != nil {
		respondInternal(c, err, "planet update")
		return
	}
	c.JSON(http.StatusOK, planet)
}

// DELETE /planets/:id
func (pc *PlanetController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return
	}
	var planet models.Planet
	if err := pc.db.First(&planet, id).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Planet not found")
		return
	}
	if err := pc.db.Delete(&planet).Error; err != nil {
		respondInternal(c, err, "planet delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Planet deleted successfully"})
}
