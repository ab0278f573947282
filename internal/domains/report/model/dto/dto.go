package dto

// DashboardResponse mirrors the summary cards on the front-desk landing
// screen: room status counts and today's collected revenue.
type DashboardResponse struct {
	Date         string  `json:"date"`
	TotalUnits   int     `json:"total_units"`
	Occupied     int     `json:"occupied"`
	Ready        int     `json:"ready"`
	Cleaning     int     `json:"cleaning"`
	RevenueToday float64 `json:"revenue_today"`
}
