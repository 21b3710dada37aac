package database

import (
	"starwars/models"

	"gorm.io/gorm"
)

// SeedCatalog fills the catalog tables with a starter data set when they are
// empty, so a fresh install has something to favorite.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Planet{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		planets := []models.Planet{
			{Name: "Tatooine", Description: "Desert world with twin suns", Population: 200000, Diameter: 10465, OrbitalPeriod: 304, Terrain: "desert", Climate: "arid", Gravity: "1 standard"},
			{Name: "Alderaan", Description: "Peaceful core world", Population: 2000000000, Diameter: 12500, OrbitalPeriod: 364, Terrain: "grasslands, mountains", Climate: "temperate", Gravity: "1 standard"},
			{Name: "Hoth", Description: "Frozen sixth planet of its system", Population: 0, Diameter: 7200, OrbitalPeriod: 549, Terrain: "tundra, ice caves", Climate: "frozen", Gravity: "1.1 standard"},
		}
		if err := db.Create(&planets).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&models.Character{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		characters := []models.Character{
			{Name: "Luke Skywalker", Description: "Jedi knight from Tatooine", EyeColor: "blue", HairColor: "blond", Gender: "male", Height: 172, BirthDate: -19},
			{Name: "Leia Organa", Description: "Princess of Alderaan", EyeColor: "brown", HairColor: "brown", Gender: "female", Height: 150, BirthDate: -19},
			{Name: "Darth Vader", Description: "Dark lord of the Sith", EyeColor: "yellow", HairColor: "none", Gender: "male", Height: 202, BirthDate: -41},
		}
		if err := db.Create(&characters).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&models.Vehicle{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		vehicles := []models.Vehicle{
			{Name: "X-34 landspeeder", Description: "Civilian repulsorlift vehicle", Model: "X-34", Manufacturer: "SoroSuub Corporation", Passengers: 1, MaxSpeed: 250, VehicleClass: "repulsorcraft"},
			{Name: "Snowspeeder", Description: "Modified airspeeder used on Hoth", Model: "t-47 airspeeder", Manufacturer: "Incom Corporation", Passengers: 2, MaxSpeed: 650, VehicleClass: "airspeeder"},
			{Name: "TIE fighter", Description: "Imperial short-range fighter", Model: "Twin Ion Engine/Ln", Manufacturer: "Sienar Fleet Systems", Passengers: 1, MaxSpeed: 1200, VehicleClass: "starfighter"},
		}
		if err := db.Create(&vehicles).Error; err != nil {
			return err
		}
	}

	return nil
}
