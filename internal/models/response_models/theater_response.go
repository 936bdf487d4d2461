package response_models

import "time"

type TheaterResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	ManagerID string    `json:"manager_id"`
	CreatedAt time.Time `json:"created_at"`
}
