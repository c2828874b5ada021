package model

import "time"

// DashboardOverview is the fixed-shape summary behind /api/dashboard/overview.
// It doubles as the payload of the persisted dashboard snapshot, hence the
// firestore tags.
type DashboardOverview struct {
	TotalProperties  int     `json:"totalProperties" firestore:"totalProperties"`
	SoldProperties   int     `json:"soldProperties" firestore:"soldProperties"`
	UnsoldProperties int     `json:"unsoldProperties" firestore:"unsoldProperties"`
	TotalSales       float64 `json:"totalSales" firestore:"totalSales"`
	TotalLeads       int64   `json:"totalLeads" firestore:"totalLeads"`
	TotalUsers       int64   `json:"totalUsers" firestore:"totalUsers"`
	ActiveLeads      int     `json:"activeLeads" firestore:"activeLeads"`
	PendingFollowups int     `json:"pendingFollowups" firestore:"pendingFollowups"`
	AverageRating    float64 `json:"averageRating" firestore:"averageRating"`
}

// TypeSales is the per-property-type sales rollup.
type TypeSales struct {
	Type         string  `json:"type"`
	TotalSales   float64 `json:"totalSales"`
	Count        int     `json:"count"`
	AveragePrice float64 `json:"averagePrice"`
}

type PropertyAnalytics struct {
	TotalProperties    int            `json:"totalProperties"`
	SoldProperties     int            `json:"soldProperties"`
	ActiveProperties   int            `json:"activeProperties"`
	RecentProperties   int            `json:"recentProperties"`
	TotalValue         float64        `json:"totalValue"`
	StatusDistribution map[string]int `json:"statusDistribution"`
	TypeDistribution   map[string]int `json:"typeDistribution"`
	PriceRanges        map[string]int `json:"priceRanges"`
	PropertyTypeSales  []TypeSales    `json:"propertyTypeSales"`
	AveragePrice       float64        `json:"averagePrice"`
}

// RecentLead is the flattened display shape for the latest leads.
type RecentLead struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Status      string    `json:"status"`
	Designation string    `json:"designation"`
	CreatedAt   time.Time `json:"createdAt"`
}

type LeadAnalytics struct {
	TotalLeads              int            `json:"totalLeads"`
	StatusDistribution      map[string]int `json:"statusDistribution"`
	DesignationDistribution map[string]int `json:"designationDistribution"`
	FollowUpDistribution    map[string]int `json:"followUpDistribution"`
	RecentLeads             int            `json:"recentLeads"`
	RecentLeadsList         []RecentLead   `json:"recentLeadsList"`
	ConvertedLeads          int            `json:"convertedLeads"`
	ConversionRate          float64        `json:"conversionRate"`
}

// MonthlySales is one pre-seeded YYYY-MM bucket of the sales report.
type MonthlySales struct {
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type SalesAnalytics struct {
	TotalSales       int                     `json:"totalSales"`
	TotalRevenue     float64                 `json:"totalRevenue"`
	AverageSalePrice float64                 `json:"averageSalePrice"`
	MonthlySales     map[string]MonthlySales `json:"monthlySales"`
}

type UserPerformance struct {
	UserID          string `json:"userId"`
	UserName        string `json:"userName"`
	TotalLeads      int    `json:"totalLeads"`
	ActiveLeads     int    `json:"activeLeads"`
	TotalProperties int    `json:"totalProperties"`
	SoldProperties  int    `json:"soldProperties"`
}

type UserAnalytics struct {
	TotalUsers       int               `json:"totalUsers"`
	RoleDistribution map[string]int    `json:"roleDistribution"`
	UserPerformance  []UserPerformance `json:"userPerformance"`
}

// Activity is the uniform feed entry built from recent properties and leads.
type Activity struct {
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	Time        time.Time `json:"time"`
	Data        any       `json:"data"`
}

// DayPerformance is one day of the Monday-anchored weekly report.
type DayPerformance struct {
	Day        string `json:"day"`
	DayName    string `json:"dayName"`
	Properties int64  `json:"properties"`
	Leads      int64  `json:"leads"`
	Total      int64  `json:"total"`
}

// MonthTrend is one month of the trailing six-month trend, oldest first.
type MonthTrend struct {
	Month          string  `json:"month"`
	MonthName      string  `json:"monthName"`
	Properties     int64   `json:"properties"`
	Leads          int64   `json:"leads"`
	SoldProperties int     `json:"soldProperties"`
	Revenue        float64 `json:"revenue"`
}

type TopProperties struct {
	TopByPrice []Property `json:"topByPrice"`
	TopByViews []Property `json:"topByViews"`
}

type DesignationConversion struct {
	Total     int     `json:"total"`
	Converted int     `json:"converted"`
	Rate      float64 `json:"rate"`
}

type LeadConversionReport struct {
	TotalLeads            int                              `json:"totalLeads"`
	ConvertedLeads        int                              `json:"convertedLeads"`
	ConversionRate        float64                          `json:"conversionRate"`
	DesignationConversion map[string]DesignationConversion `json:"designationConversion"`
}

type FinancialSummary struct {
	TotalRevenue     float64         `json:"totalRevenue"`
	AverageSalePrice float64         `json:"averageSalePrice"`
	TotalSales       int             `json:"totalSales"`
	MonthlyRevenue   map[int]float64 `json:"monthlyRevenue"`
}

// DashboardSnapshot is the singleton pre-aggregated overview persisted under
// system/dashboard so the landing page can render without recomputing.
type DashboardSnapshot struct {
	RefreshID   string            `json:"refreshId,omitempty" firestore:"refreshId,omitempty"`
	LastUpdated time.Time         `json:"lastUpdated,omitempty" firestore:"lastUpdated,omitempty"`
	Overview    DashboardOverview `json:"overview" firestore:"overview"`
}
