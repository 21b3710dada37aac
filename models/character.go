package models

type Character struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	Description string `json:"description"`
	EyeColor    string `json:"eye_color"`
	HairColor   string `json:"hair_color"`
	Gender      string `json:"gender"`
	Height      int    `json:"height"`
	BirthDate   int    `json:"birth_date"`
}
