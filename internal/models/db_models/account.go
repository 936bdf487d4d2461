package db_models

const (
	RoleUser  = "user"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

type Account struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	Role         string `gorm:"size:16;index;default:'user'" json:"role"`

	// Theaters this account manages (staff only).
	Theaters []Theater `gorm:"foreignKey:ManagerID" json:"-"`
}
