package controllers

import (
	"net/http"
	"strconv"

	"starwars/models"
	"starwars/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	db *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// GET /users
func (uc *UserController) List(c *gin.Context) {
	var users []models.User
	if err := uc.db.Find(&users).Error; err != nil {
		respondInternal(c, err, "user list")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /users/:id
func (uc *UserController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return
	}
	var user models.User
	if err := uc.db.First(&user, id).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

type UserUpdateRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Phone    *string `json:"phone_number"`
	IsActive *bool   `json:"is_active"`
}

// PUT /users/:id (partial update, absent fields keep their value)
func (uc *UserController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return
	}
	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	var user models.User
	if err := uc.db.First(&user, id).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "User not found")
		return
	}

	if req.Email != nil && *req.Email != user.Email {
		var count int64
		uc.db.Model(&models.User{}).Where("email = ? AND id <> ?", *req.Email, user.ID).Count(&count)
		if count > 0 {
			respondError(c, http.StatusConflict, codeConflict, "Email already exists.")
			return
		}
		user.Email = *req.Email
	}
	if req.Username != nil {
		var count int64
		uc.db.Model(&models.User{}).Where("username = ? AND id <> ?", *req.Username, user.ID).Count(&count)
		if count > 0 {
			respondError(c, http.StatusConflict, codeConflict, "Username already exists.")
			return
		}
		user.Username = req.Username
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			respondInternal(c, err, "user update password hash")
			return
		}
		user.Password = hash
	}
	if req.Name != nil {
		user.Name = req.Name
	}
	if req.Surname != nil {
		user.Surname = req.Surname
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := uc.db.Save(&user).Error; err != nil {
		if isUniqueViolation(err) {
			respondError(c, http.StatusConflict, codeConflict, "Email or username already exists.")
			return
		}
		respondInternal(c, err, "user update save")
		return
	}
	c.JSON(http.StatusOK, user)
}

// DELETE /users/:id removes the user together with their addresses and
// favorite links inside one transaction.
func (uc *UserController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return
	}
	var user models.User
	if err := uc.db.First(&user, id).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "User not found")
		return
	}

	err = uc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Address{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.CharacterFavorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.PlanetFavorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.VehicleFavorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		respondInternal(c, err, "user cascade delete")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
