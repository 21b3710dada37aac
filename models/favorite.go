package models

// Favorite link tables. Uniqueness is per (user, entity) pair so different
// users can favorite the same record.

type CharacterFavorite struct {
	ID          uint `json:"id" gorm:"primaryKey"`
	CharacterID uint `json:"character_id" gorm:"not null;index;uniqueIndex:uniq_character_favorite"`
	UserID      uint `json:"user_id" gorm:"not null;index;uniqueIndex:uniq_character_favorite"`
}

type PlanetFavorite struct {
	ID       uint `json:"id" gorm:"primaryKey"`
	PlanetID uint `json:"planet_id" gorm:"not null;index;uniqueIndex:uniq_planet_favorite"`
	UserID   uint `json:"user_id" gorm:"not null;index;uniqueIndex:uniq_planet_favorite"`
}

type VehicleFavorite struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	VehicleID uint `json:"vehicle_id" gorm:"not null;index;uniqueIndex:uniq_vehicle_favorite"`
	UserID    uint `json:"user_id" gorm:"not null;index;uniqueIndex:uniq_vehicle_favorite"`
}
