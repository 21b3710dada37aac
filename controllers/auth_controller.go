package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"starwars/models"
	"starwars/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type AuthController struct {
	db        *gorm.DB
	rdb       *redis.Client
	jwtSecret string
}

func NewAuthController(db *gorm.DB, rdb *redis.Client, jwtSecret string) *AuthController {
	return &AuthController{db: db, rdb: rdb, jwtSecret: jwtSecret}
}

type SignupRequest struct {
	Username *string `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Phone    *string `json:"phone_number"`
}

// POST /signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, codeValidation, "Email and password are required.")
		return
	}

	var count int64
	if err := ac.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		respondInternal(c, err, "signup email check")
		return
	}
	if count > 0 {
		respondError(c, http.StatusConflict, codeConflict, "Email already exists.")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		respondInternal(c, err, "signup password hash")
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
		Surname:  req.Surname,
		Phone:    req.Phone,
		IsActive: true,
	}
	if err := ac.db.Create(&user).Error; err != nil {
		// Concurrent signup can still race past the count check.
		if isUniqueViolation(err) {
			respondError(c, http.StatusConflict, codeConflict, "Email or username already exists.")
			return
		}
		respondInternal(c, err, "signup create")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /login
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	if req.Email == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, codeValidation, "Email and password are required.")
		return
	}

	if ok, msg := utils.CanAttemptLogin(ac.rdb, req.Email); !ok {
		respondError(c, http.StatusTooManyRequests, codeTooManyRequests, msg)
		return
	}

	var user models.User
	if err := ac.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.MarkLoginFailed(ac.rdb, req.Email)
			respondError(c, http.StatusUnauthorized, codeUnauthorized, "Invalid credentials")
			return
		}
		respondInternal(c, err, "login lookup")
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		utils.MarkLoginFailed(ac.rdb, req.Email)
		respondError(c, http.StatusUnauthorized, codeUnauthorized, "Invalid credentials")
		return
	}
	utils.ClearLoginFailures(ac.rdb, req.Email)

	token, err := utils.GenerateJWT(user.ID, ac.jwtSecret)
	if err != nil {
		respondInternal(c, err, "login token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "form_status": user.IsActive})
}

// POST /logout
func (ac *AuthController) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "No token provided")
		return
	}
	claims, err := utils.ParseJWT(token, ac.jwtSecret)
	if err != nil {
		respondError(c, http.StatusUnauthorized, codeUnauthorized, "Invalid token")
		return
	}
	if exp, ok := claims["exp"].(float64); ok && ac.rdb != nil {
		ttl := int64(exp) - time.Now().Unix()
		if ttl > 0 {
			ac.rdb.Set(context.Background(), "blacklist:"+token, "1", time.Duration(ttl)*time.Second)
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
