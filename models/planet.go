package models

type Planet struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Population    int64  `json:"population"`
	Diameter      int    `json:"diameter"`
	OrbitalPeriod int    `json:"orbital_period"`
	Terrain       string `json:"terrain"`
	Climate       string `json:"climate"`
	Gravity       string `json:"gravity"`
}
