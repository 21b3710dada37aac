package database

import (
	"starwars/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Planet{},
		&models.Character{},
		&models.Vehicle{},
		&models.CharacterFavorite{},
		&models.PlanetFavorite{},
		&models.VehicleFavorite{},
	)
}
