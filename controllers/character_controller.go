package controllers

import (
	"net/http"
	"strconv"

	"starwars/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CharacterController struct {
	db *gorm.DB
}

func NewCharacterController(db *gorm.DB) *CharacterController {
	return &CharacterController{db: db}
}

// GET /characters
func (cc *CharacterController) List(c *gin.Context) {
	var characters []models.Character
	if err := cc.db.Find(&characters).Error; err != nil {
		respondInternal(c, err, "character list")
		return
	}
	c.JSON(http.StatusOK, characters)
}

// GET /characters/:id
func (cc *CharacterController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return
	}
	var character models.Character
	if err := cc.db.First(&character, id).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Character not found")
		return
	}
	c.JSON(http.StatusOK, character)
}

// POST /characters
func (cc *CharacterController) Create(c *gin.Context) {
	var character models.Character
	if err := c.ShouldBindJSON(&character); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	if character.Name == "" {
		respondError(c, http.StatusBadRequest, codeValidation, "name is required")
		return
	}
	character.ID = 0
	if err := cc.db.Create(&character).Error; err != nil {
		respondInternal(c, err, "character create")
		return
	}
	c.JSON(http.StatusCreated, character)
}

type CharacterUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	EyeColor    *string `json:"eye_color"`
	HairColor   *string `json:"hair_color"`
	Gender      *string `json:"gender"`
	Height      *int    `json:"height"`
	BirthDate   *int    `json:"birth_date"`
}

// PUT /characters/:id (partial update)
func (cc *CharacterController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return
	}
	var req CharacterUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	var character models.Character
	if err := cc.db.First(&character, id).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Character not found")
		return
	}

	if req.Name != nil {
		character.Name = *req.Name
	}
	if req.Description != nil {
		character.Description = *req.Description
	}
	if req.EyeColor != nil {
		character.EyeColor = *req.EyeColor
	}
	if req.HairColor != nil {
		character.HairColor = *req.HairColor
	}
	if req.Gender != nil {
		character.Gender = *req.Gender
	}
	if req.Height != nil {
		character.Height = *req.Height
	}
	if req.BirthDate != nil {
		character.BirthDate = *req.BirthDate
	}

	if err := cc.db.Save(&character).Error; err != nil {
		respondInternal(c, err, "character update")
		return
	}
	c.JSON(http.StatusOK, character)
}

// DELETE /characters/:id
func (cc *CharacterController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return
	}
	var character models.Character
	if err := cc.db.First(&character, id).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Character not found")
		return
	}
	if err := cc.db.Delete(&character).Error; err != nil {
		respondInternal(c, err, "character delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Character deleted successfully"})
}
