package response_models

// BucketPeriod is the grouping key of a revenue bucket. Only the parts that
// belong to the requested granularity are set.
type BucketPeriod struct {
	Year  int `json:"year"`
	Month int `json:"month,omitempty"`
	Day   int `json:"day,omitempty"`
	Week  int `json:"week,omitempty"`
}

type RevenueBucket struct {
	Period              BucketPeriod `json:"period"`
	Date                string       `json:"date"`
	Revenue             float64      `json:"revenue"`
	BookingsCount       int64        `json:"bookings_count"`
	AverageBookingValue float64      `json:"average_booking_value"`
}

type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
	HasNext      bool  `json:"has_next"`
	HasPrev      bool  `json:"has_prev"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type RevenueSummary struct {
	TotalRevenue            float64   `json:"total_revenue"`
	TotalBookings           int64     `json:"total_bookings"`
	AverageRevenuePerPeriod float64   `json:"average_revenue_per_period"`
	PeriodType              string    `json:"period_type"`
	DateRange               DateRange `json:"date_range"`
}

type RevenueStatsPaginatedResponse struct {
	Data       []RevenueBucket `json:"data"`
	Pagination Pagination      `json:"pagination"`
	Summary    RevenueSummary  `json:"summary"`
}
