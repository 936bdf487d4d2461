package db_models

import "github.com/google/uuid"

type Theater struct {
	BaseModel
	Name      string    `gorm:"not null" json:"name"`
	Location  string    `gorm:"not null" json:"location"`
	ManagerID uuid.UUID `gorm:"type:uuid;index;not null" json:"manager_id"`

	Manager  Account   `gorm:"foreignKey:ManagerID" json:"-"`
	Bookings []Booking `gorm:"foreignKey:TheaterID" json:"-"`
}
