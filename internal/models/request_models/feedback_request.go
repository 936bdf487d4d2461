package request_models

type AddFeedbackRequest struct {
	TheaterID string `json:"theater_id" binding:"omitempty,uuid"`
	Comment   string `json:"comment" binding:"required,max=2000"`
	Rating    int    `json:"rating" binding:"required"`
}
