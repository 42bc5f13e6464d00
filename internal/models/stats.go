package models

// DashboardStats is the admin dashboard projection. It is recomputed
// from the stores on every read, never cached.
type DashboardStats struct {
	TotalRevenue   float64 `json:"totalRevenue"`
	TodaysOrders   int     `json:"todaysOrders"`
	PendingOrders  int     `json:"pendingOrders"`
	TotalCustomers int     `json:"totalCustomers"`
}
