package models

import "time"

type User struct {
	ID             string          `gorm:"primaryKey" json:"id"`
	Email          string          `gorm:"unique;not null" json:"email"`
	FirstName      string          `json:"firstName"`
	LastName       string          `json:"lastName"`
	Address        string          `json:"address"`
	UserPreference *UserPreference `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"userPreference,omitempty"`
	SavedProducts  []Product       `gorm:"many2many:user_saved_products" json:"savedProducts,omitempty"`
	Orders         []Order         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// UserPreference is created together with its User and exists for the
// user's whole lifetime.
type UserPreference struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID       string    `gorm:"uniqueIndex;not null" json:"-"`
	ReceiveEmail bool      `json:"receiveEmail"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
