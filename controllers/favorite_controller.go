package controllers

import (
	"net/http"
	"strconv"

	"starwars/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteController struct {
	db *gorm.DB
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{db: db}
}

func currentUserID(c *gin.Context) (uint, bool) {
	userID := uint(c.GetInt("user_id"))
	if userID == 0 {
		respondError(c, http.StatusUnauthorized, codeUnauthorized, "Not authenticated")
		return 0, false
	}
	return userID, true
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GET /users/favorites aggregates all three kinds for the current user.
func (fc *FavoriteController) ListUserFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	favorites := []gin.H{}

	var characterFavorites []models.CharacterFavorite
	if err := fc.db.Where("user_id = ?", userID).Find(&characterFavorites).Error; err != nil {
		respondInternal(c, err, "character favorites list")
		return
	}
	for _, favorite := range characterFavorites {
		var character models.Character
		if err := fc.db.First(&character, favorite.CharacterID).Error; err == nil {
			favorites = append(favorites, gin.H{"favorite_id": favorite.ID, "name": character.Name, "type": "character"})
		}
	}

	var planetFavorites []models.PlanetFavorite
	if err := fc.db.Where("user_id = ?", userID).Find(&planetFavorites).Error; err != nil {
		respondInternal(c, err, "planet favorites list")
		return
	}
	for _, favorite := range planetFavorites {
		var planet models.Planet
		if err := fc.db.First(&planet, favorite.PlanetID).Error; err == nil {
			favorites = append(favorites, gin.H{"favorite_id": favorite.ID, "name": planet.Name, "type": "planet"})
		}
	}

	var vehicleFavorites []models.VehicleFavorite
	if err := fc.db.Where("user_id = ?", userID).Find(&vehicleFavorites).Error; err != nil {
		respondInternal(c, err, "vehicle favorites list")
		return
	}
	for _, favorite := range vehicleFavorites {
		var vehicle models.Vehicle
		if err := fc.db.First(&vehicle, favorite.VehicleID).Error; err == nil {
			favorites = append(favorites, gin.H{"favorite_id": favorite.ID, "name": vehicle.Name, "type": "vehicle"})
		}
	}

	c.JSON(http.StatusOK, favorites)
}

// ---- character favorites ----

func (fc *FavoriteController) createCharacterFavorite(c *gin.Context, userID, characterID uint) {
	var character models.Character
	if err := fc.db.First(&character, characterID).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Character not found")
		return
	}
	var existing models.CharacterFavorite
	if err := fc.db.Where("user_id = ? AND character_id = ?", userID, characterID).First(&existing).Error; err == nil {
		respondError(c, http.StatusConflict, codeConflict, "Character already a favorite")
		return
	}
	favorite := models.CharacterFavorite{CharacterID: characterID, UserID: userID}
	if err := fc.db.Create(&favorite).Error; err != nil {
		if isUniqueViolation(err) {
			respondError(c, http.StatusConflict, codeConflict, "Character already a favorite")
			return
		}
		respondInternal(c, err, "character favorite create")
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

// GET /character-favorite-lists
func (fc *FavoriteController) ListCharacterFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var favorites []models.CharacterFavorite
	if err := fc.db.Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		respondInternal(c, err, "character favorites list")
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// POST /character-favorite-lists
func (fc *FavoriteController) CreateCharacterFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		CharacterID uint `json:"character_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	if req.CharacterID == 0 {
		respondError(c, http.StatusBadRequest, codeValidation, "character_id is required")
		return
	}
	fc.createCharacterFavorite(c, userID, req.CharacterID)
}

// GET /character-favorite-lists/:id
func (fc *FavoriteController) GetCharacterFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var favorite models.CharacterFavorite
	if err := fc.db.Where("id = ? AND user_id = ?", id, userID).First(&favorite).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Character favorite not found")
		return
	}
	c.JSON(http.StatusOK, favorite)
}

// PUT /character-favorite-lists/:id repoints the link to another character.
func (fc *FavoriteController) UpdateCharacterFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		CharacterID *uint `json:"character_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	var favorite models.CharacterFavorite
	if err := fc.db.Where("id = ? AND user_id = ?", id, userID).First(&favorite).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Character favorite not found")
		return
	}
	if req.CharacterID != nil && *req.CharacterID != favorite.CharacterID {
		var character models.Character
		if err := fc.db.First(&character, *req.CharacterID).Error; err != nil {
			respondError(c, http.StatusNotFound, codeNotFound, "Character not found")
			return
		}
		var existing models.CharacterFavorite
		if err := fc.db.Where("user_id = ? AND character_id = ?", userID, *req.CharacterID).First(&existing).Error; err == nil {
			respondError(c, http.StatusConflict, codeConflict, "Character already a favorite")
			return
		}
		favorite.CharacterID = *req.CharacterID
	}
	if err := fc.db.Save(&favorite).Error; err != nil {
		if isUniqueViolation(err) {
			respondError(c, http.StatusConflict, codeConflict, "Character already a favorite")
			return
		}
		respondInternal(c, err, "character favorite update")
		return
	}
	c.JSON(http.StatusOK, favorite)
}

// DELETE /character-favorite-lists/:id
func (fc *FavoriteController) DeleteCharacterFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var favorite models.CharacterFavorite
	if err := fc.db.Where("id = ? AND user_id = ?", id, userID).First(&favorite).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Character favorite not found")
		return
	}
	if err := fc.db.Delete(&favorite).Error; err != nil {
		respondInternal(c, err, "character favorite delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Character favorite deleted successfully"})
}

// POST /favorite/character/:id
func (fc *FavoriteController) AddCharacterFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	fc.createCharacterFavorite(c, userID, id)
}

// DELETE /favorite/character/:id removes the current user's link for that character.
func (fc *FavoriteController) RemoveCharacterFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var favorite models.CharacterFavorite
	if err := fc.db.Where("user_id = ? AND character_id = ?", userID, id).First(&favorite).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Character favorite not found")
		return
	}
	if err := fc.db.Delete(&favorite).Error; err != nil {
		respondInternal(c, err, "character favorite delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Character favorite deleted successfully"})
}

// ---- planet favorites ----

func (fc *FavoriteController) createPlanetFavorite(c *gin.Context, userID, planetID uint) {
	var planet models.Planet
	if err := fc.db.First(&planet, planetID).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Planet not found")
		return
	}
	var existing models.PlanetFavorite
	if err := fc.db.Where("user_id = ? AND planet_id = ?", userID, planetID).First(&existing).Error; err == nil {
		respondError(c, http.StatusConflict, codeConflict, "Planet already a favorite")
		return
	}
	favorite := models.PlanetFavorite{PlanetID: planetID, UserID: userID}
	if err := fc.db.Create(&favorite).Error; err != nil {
		if isUniqueViolation(err) {
			respondError(c, http.StatusConflict, codeConflict, "Planet already a favorite")
			return
		}
		respondInternal(c, err, "planet favorite create")
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

// GET /planet-favorite-lists
func (fc *FavoriteController) ListPlanetFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var favorites []models.PlanetFavorite
	if err := fc.db.Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		respondInternal(c, err, "planet favorites list")
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// POST /planet-favorite-lists
func (fc *FavoriteController) CreatePlanetFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		PlanetID uint `json:"planet_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	if req.PlanetID == 0 {
		respondError(c, http.StatusBadRequest, codeValidation, "planet_id is required")
		return
	}
	fc.createPlanetFavorite(c, userID, req.PlanetID)
}

// GET /planet-favorite-lists/:id
func (fc *FavoriteController) GetPlanetFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var favorite models.PlanetFavorite
	if err := fc.db.Where("id = ? AND user_id = ?", id, userID).First(&favorite).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Planet favorite not found")
		return
	}
	c.JSON(http.StatusOK, favorite)
}

// PUT /planet-favorite-lists/:id
func (fc *FavoriteController) UpdatePlanetFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		PlanetID *uint `json:"planet_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	var favorite models.PlanetFavorite
	if err := fc.db.Where("id = ? AND user_id = ?", id, userID).First(&favorite).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Planet favorite not found")
		return
	}
	if req.PlanetID != nil && *req.PlanetID != favorite.PlanetID {
		var planet models.Planet
		if err := fc.db.First(&planet, *req.PlanetID).Error; err != nil {
			respondError(c, http.StatusNotFound, codeNotFound, "Planet not found")
			return
		}
		var existing models.PlanetFavorite
		if err := fc.db.Where("user_id = ? AND planet_id = ?", userID, *req.PlanetID).First(&existing).Error; err == nil {
			respondError(c, http.StatusConflict, codeConflict, "Planet already a favorite")
			return
		}
		favorite.PlanetID = *req.PlanetID
	}
	if err := fc.db.Save(&favorite).Error; err != nil {
		if isUniqueViolation(err) {
			respondError(c, http.StatusConflict, codeConflict, "Planet already a favorite")
			return
		}
		respondInternal(c, err, "planet favorite update")
		return
	}
	c.JSON(http.StatusOK, favorite)
}

// DELETE /planet-favorite-lists/:id
func (fc *FavoriteController) DeletePlanetFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var favorite models.PlanetFavorite
	if err := fc.db.Where("id = ? AND user_id = ?", id, userID).First(&favorite).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Planet favorite not found")
		return
	}
	if err := fc.db.Delete(&favorite).Error; err != nil {
		respondInternal(c, err, "planet favorite delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Planet favorite deleted successfully"})
}

// POST /favorite/planet/:id
func (fc *FavoriteController) AddPlanetFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	fc.createPlanetFavorite(c, userID, id)
}

// DELETE /favorite/planet/:id
func (fc *FavoriteController) RemovePlanetFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var favorite models.PlanetFavorite
	if err := fc.db.Where("user_id = ? AND planet_id = ?", userID, id).First(&favorite).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Planet favorite not found")
		return
	}
	if err := fc.db.Delete(&favorite).Error; err != nil {
		respondInternal(c, err, "planet favorite delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Planet favorite deleted successfully"})
}

// ---- vehicle favorites ----

func (fc *FavoriteController) createVehicleFavorite(c *gin.Context, userID, vehicleID uint) {
	var vehicle models.Vehicle
	if err := fc.db.First(&vehicle, vehicleID).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Vehicle not found")
		return
	}
	var existing models.VehicleFavorite
	if err := fc.db.Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).First(&existing).Error; err == nil {
		respondError(c, http.StatusConflict, codeConflict, "Vehicle already a favorite")
		return
	}
	favorite := models.VehicleFavorite{VehicleID: vehicleID, UserID: userID}
	if err := fc.db.Create(&favorite).Error; err != nil {
		if isUniqueViolation(err) {
			respondError(c, http.StatusConflict, codeConflict, "Vehicle already a favorite")
			return
		}
		respondInternal(c, err, "vehicle favorite create")
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

// GET /vehicle-favorite-lists
func (fc *FavoriteController) ListVehicleFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var favorites []models.VehicleFavorite
	if err := fc.db.Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
		respondInternal(c, err, "vehicle favorites list")
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// POST /vehicle-favorite-lists
func (fc *FavoriteController) CreateVehicleFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req struct {
		VehicleID uint `json:"vehicle_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	if req.VehicleID == 0 {
		respondError(c, http.StatusBadRequest, codeValidation, "vehicle_id is required")
		return
	}
	fc.createVehicleFavorite(c, userID, req.VehicleID)
}

// GET /vehicle-favorite-lists/:id
func (fc *FavoriteController) GetVehicleFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var favorite models.VehicleFavorite
	if err := fc.db.Where("id = ? AND user_id = ?", id, userID).First(&favorite).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Vehicle favorite not found")
		return
	}
	c.JSON(http.StatusOK, favorite)
}

// PUT /vehicle-favorite-lists/:id
func (fc *FavoriteController) UpdateVehicleFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		VehicleID *uint `json:"vehicle_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, codeInvalidRequest, "invalid request")
		return
	}
	var favorite models.VehicleFavorite
	if err := fc.db.Where("id = ? AND user_id = ?", id, userID).First(&favorite).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Vehicle favorite not found")
		return
	}
	if req.VehicleID != nil && *req.VehicleID != favorite.VehicleID {
		var vehicle models.Vehicle
		if err := fc.db.First(&vehicle, *req.VehicleID).Error; err != nil {
			respondError(c, http.StatusNotFound, codeNotFound, "Vehicle not found")
			return
		}
		var existing models.VehicleFavorite
		if err := fc.db.Where("user_id = ? AND vehicle_id = ?", userID, *req.VehicleID).First(&existing).Error; err == nil {
			respondError(c, http.StatusConflict, codeConflict, "Vehicle already a favorite")
			return
		}
		favorite.VehicleID = *req.VehicleID
	}
	if err := fc.db.Save(&favorite).Error; err != nil {
		if isUniqueViolation(err) {
			respondError(c, http.StatusConflict, codeConflict, "Vehicle already a favorite")
			return
		}
		respondInternal(c, err, "vehicle favorite update")
		return
	}
	c.JSON(http.StatusOK, favorite)
}

// DELETE /vehicle-favorite-lists/:id
func (fc *FavoriteController) DeleteVehicleFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var favorite models.VehicleFavorite
	if err := fc.db.Where("id = ? AND user_id = ?", id, userID).First(&favorite).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Vehicle favorite not found")
		return
	}
	if err := fc.db.Delete(&favorite).Error; err != nil {
		respondInternal(c, err, "vehicle favorite delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle favorite deleted successfully"})
}

// POST /favorite/vehicle/:id
func (fc *FavoriteController) AddVehicleFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	fc.createVehicleFavorite(c, userID, id)
}

// DELETE /favorite/vehicle/:id
func (fc *FavoriteController) RemoveVehicleFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var favorite models.VehicleFavorite
	if err := fc.db.Where("user_id = ? AND vehicle_id = ?", userID, id).First(&favorite).Error; err != nil {
		respondError(c, http.StatusNotFound, codeNotFound, "Vehicle favorite not found")
		return
	}
	if err := fc.db.Delete(&favorite).Error; err != nil {
		respondInternal(c, err, "vehicle favorite delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vehicle favorite deleted successfully"})
}
