package db_models

import (
	"github.com/google/uuid"
)

type Feedback struct {
	BaseModel
	AccountID uuid.UUID  `gorm:"type:uuid;not null;index" json:"account_id"`
	TheaterID *uuid.UUID `gorm:"type:uuid;index" json:"theater_id,omitempty"` // nil for app-wide feedback
	Comment   string     `gorm:"type:text;not null" json:"comment"`
	Rating    int        `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5" json:"rating"`
}
