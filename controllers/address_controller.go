package controllers

import (
	"net/http"
	"strconv"

	"starwars/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddressController struct {
	db *gorm.DB
}

func NewAddressController(db *gorm.DB) *AddressController {
	return &AddressController{db: db}
}

// GET /addresses?user_id=N
func (ac *AddressController) List(c *gin.Context) {
	query := ac.db.Model(&models.Address{})
	if v := c.Query("user_id"); v != "" {
		userID, err := strconv.Atoi(v)
		if err != nil || userID <= 0 {
			respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid user_id")
			return
		}
		query = query.Where("user_id = ?", userID)
	}
	var addresses []models.Address
	if err := query.Find(&addresses).Error; err != nil {
		respondInternal(c, err, "address list")
		return
	}
	c.JSON(http.StatusOK, addresses)
}

// GET /addresses/:id
func (ac *AddressController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return
	}
	var address models.Address
	if err := ac.db.First(&address, id).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Address not found")
		return
	}
	c.JSON(http.StatusOK, address)
}

type AddressCreateRequest struct {
	StreetName   string `json:"street_name"`
	StreetNumber string `json:"street_number"`
	PostalCode   string `json:"postal_code"`
	UserID       *uint  `json:"user_id"`
}

// POST /addresses
func (ac *AddressController) Create(c *gin.Context) {
	var req AddressCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	if req.PostalCode == "" {
		respondError(c, http.StatusBadRequest, codeValidation, "postal_code is required")
		return
	}

	address := models.Address{
		StreetName:   req.StreetName,
		StreetNumber: req.StreetNumber,
		PostalCode:   req.PostalCode,
		UserID:       req.UserID,
	}
	if err := ac.db.Create(&address).Error; err != nil {
		respondInternal(c, err, "address create")
		return
	}
	c.JSON(http.StatusCreated, address)
}

type AddressUpdateRequest struct {
	StreetName   *string `json:"street_name"`
	StreetNumber *string `json:"street_number"`
	PostalCode   *string `json:"postal_code"`
	UserID       *uint   `json:"user_id"`
}

// PUT /addresses/:id (partial update)
func (ac *AddressController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return
	}
	var req AddressUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	var address models.Address
	if err := ac.db.First(&address, id).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Address not found")
		return
	}

	if req.StreetName != nil {
		address.StreetName = *req.StreetName
	}
	if req.StreetNumber != nil {
		address.StreetNumber = *req.StreetNumber
	}
	if req.PostalCode != nil {
		if *req.PostalCode == "" {
			respondError(c, http.StatusBadRequest, codeValidation, "postal_code is required")
			return
		}
		address.PostalCode = *req.PostalCode
	}
	if req.UserID != nil {
		address.UserID = req.UserID
	}

	if err := ac.db.Save(&address).Error; err != nil {
		respondInternal(c, err, "address update")
		return
	}
	c.JSON(http.StatusOK, address)
}

// DELETE /addresses/:id
func (ac *AddressController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return
	}
	var address models.Address
	if err := ac.db.First(&address, id).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Address not found")
		return
	}
	if err := ac.db.Delete(&address).Error; err != nil {
		respondInternal(c, err, "address delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
}
