package models

type Vehicle struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Model        string `json:"model"`
	Manufacturer string `json:"manufacturer"`
	Passengers   int    `json:"passengers"`
	MaxSpeed     int    `json:"max_speed"`
	VehicleClass string `json:"vehicle_class"`
}
