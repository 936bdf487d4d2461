package response_models

import "time"

type BookingResponse struct {
	ID            string    `json:"id"`
	TheaterID     string    `json:"theater_id"`
	AccountID     string    `json:"account_id"`
	TotalAmount   float64   `json:"total_amount"`
	BookedAt      time.Time `json:"booked_at"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Seats         []string  `json:"seats"`
}

type BookingPage struct {
	Items    []BookingResponse `json:"items"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Total    int64             `json:"total"`
}
