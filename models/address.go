package models

type Address struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	StreetName   string `json:"street_name"`
	StreetNumber string `json:"street_number"`
	PostalCode   string `json:"postal_code" gorm:"not null"`
	UserID       *uint  `json:"user_id" gorm:"index"`
}
