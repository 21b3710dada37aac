package models

type User struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Username *string `json:"username" gorm:"uniqueIndex"`
	Email    string  `json:"email" gorm:"uniqueIndex;not null"`
	Password string  `json:"-" gorm:"not null"`
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Phone    *string `json:"phone_number"`
	IsActive bool    `json:"is_active" gorm:"default:true"`
}
