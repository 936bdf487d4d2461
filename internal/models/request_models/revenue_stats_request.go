package request_models

// RevenueStatsQuery is the raw query string of the revenue statistics endpoint.
// Every field is optional; defaults are resolved by services.ResolveRevenueStatsOptions.
type RevenueStatsQuery struct {
	Period    string `form:"period"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      string `form:"page"`
	Limit     string `form:"limit"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}
