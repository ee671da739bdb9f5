package models

// DashboardMetrics is the headline figures block of the admin dashboard.
// The new-investor and new-partner growth figures are static placeholders;
// the sales figures are computed per request.
type DashboardMetrics struct {
	TotalInvestors    int     `json:"total_investors"`
	TotalPackages     int     `json:"total_packages"`
	NewInvestorsToday int     `json:"new_investors_today"`
	NewInvestorsWeek  int     `json:"new_investors_week"`
	NewInvestorsMonth int     `json:"new_investors_month"`
	TotalSalesToday   float64 `json:"total_sales_today"`
	TotalSalesWeek    float64 `json:"total_sales_week"`
	TotalSalesYear    float64 `json:"total_sales_year"`
	TotalPartners     int     `json:"total_partners"`
	NewPartnersToday  int     `json:"new_partners_today"`
	NewPartnersWeek   int     `json:"new_partners_week"`
	NewPartnersMonth  int     `json:"new_partners_month"`
}

// AdminDashboard is the response of GET /api/admin/dashboard.
type AdminDashboard struct {
	Metrics     DashboardMetrics `json:"metrics"`
	RecentSales []Transaction    `json:"recent_sales"`
	TopPartners []Partner        `json:"top_partners"`
}

// ReturnsBreakdown itemizes investment returns over one period.
type ReturnsBreakdown struct {
	Dividends    float64 `json:"dividends"`
	Appreciation float64 `json:"appreciation"`
	AdvisoryFees float64 `json:"advisory_fees"`
	Total        float64 `json:"total"`
}

// ReturnsSummary pairs year-to-date and all-time returns. The figures are
// fixed constants, not computed from holdings.
type ReturnsSummary struct {
	YTD     ReturnsBreakdown `json:"ytd"`
	AllTime ReturnsBreakdown `json:"all_time"`
}

// InvestorDashboard is the response of GET /api/investor/dashboard/:user_id.
type InvestorDashboard struct {
	User              User                `json:"user"`
	Investments       []Transaction       `json:"investments"`
	Returns           ReturnsSummary      `json:"returns"`
	AvailablePackages []InvestmentPackage `json:"available_packages"`
}
