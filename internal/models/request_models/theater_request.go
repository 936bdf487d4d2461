package request_models

type CreateTheaterRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=120"`
	Location  string `json:"location" binding:"required"`
	ManagerID string `json:"manager_id" binding:"required,uuid"`
}
