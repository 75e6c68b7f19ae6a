package models

// RevenueStats is a derived snapshot of a shop's revenue split by channel.
// It is recomputed from the booking collection on every request, never stored.
// The week figures are projections of today's totals, not historical sums.
type RevenueStats struct {
	TodayApp    float64 `json:"todayApp"`
	TodayWalkIn float64 `json:"todayWalkIn"`
	WeekApp     float64 `json:"weekApp"`
	WeekWalkIn  float64 `json:"weekWalkIn"`
}
