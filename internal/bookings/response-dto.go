package bookings

// BookingListResponse wraps a paginated admin listing.
type BookingListResponse struct {
	Bookings   []Booking  `json:"bookings"`
	Pagination Pagination `json:"pagination"`
}

// Pagination carries listing metadata.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// DashboardStats summarizes bookings for the admin dashboard.
type DashboardStats struct {
	TotalBookings    int64   `json:"total_bookings"`
	Quoted           int64   `json:"quoted"`
	Confirmed        int64   `json:"confirmed"`
	Cancelled        int64   `json:"cancelled"`
	Upcoming         int64   `json:"upcoming"`
	ConfirmedRevenue float64 `json:"confirmed_revenue"`
	DepositsPaid     int64   `json:"deposits_paid"`
}
