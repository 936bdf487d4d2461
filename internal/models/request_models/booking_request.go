package request_models

type CreateBookingRequest struct {
	TheaterID   string   `json:"theater_id" binding:"required,uuid"`
	TotalAmount float64  `json:"total_amount" binding:"required,gt=0"`
	Seats       []string `json:"seats" binding:"required,min=1,dive,required"`
}

// UpdateBookingStatusRequest: empty fields are left untouched.
type UpdateBookingStatusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}
