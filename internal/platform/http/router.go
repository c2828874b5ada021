package http

import (
	"net/http"

	"github.com/estatedesk/crm-reports-api/internal/business/reports"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router wires HTTP handlers.
type Router struct {
	reports *reports.Service
}

func NewRouter(reportsSvc *reports.Service, allowedOrigins string) *gin.Engine {
	r := &Router{reports: reportsSvc}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), requestID(), corsMiddleware(allowedOrigins), metricsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	dashboard := api.Group("/dashboard", authContext())
	{
		dashboard.GET("/overview", r.getOverview)
		dashboard.GET("/property-analytics", r.getPropertyAnalytics)
		dashboard.GET("/lead-analytics", r.getLeadAnalytics)
		dashboard.GET("/sales-analytics", r.getSalesAnalytics)
		dashboard.GET("/user-analytics", r.getUserAnalytics)
		dashboard.GET("/recent-activities", r.getRecentActivities)
		dashboard.GET("/weekly-performance", r.getWeeklyPerformance)
		dashboard.GET("/monthly-trends", r.getMonthlyTrends)
		dashboard.GET("/top-properties", r.getTopProperties)
		dashboard.GET("/lead-conversion", r.getLeadConversionRates)
		dashboard.GET("/financial-summary", r.getFinancialSummary)
		dashboard.GET("/snapshot", r.getSnapshot)
		dashboard.POST("/refresh", r.refreshSnapshot)
	}

	return router
}

func respond(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{
		"statusCode": http.StatusOK,
		"message":    message,
		"data":       data,
	})
}

func respondError(c *gin.Context, message string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"statusCode": http.StatusInternalServerError,
		"message":    message,
		"error":      err.Error(),
	})
}

func (r *Router) getOverview(c *gin.Context) {
	// The caller's identity is available for future role-scoped views; the
	// overview is currently identical for every role.
	_ = callerID(c)

	data, err := r.reports.Overview(c.Request.Context())
	if err != nil {
		respondError(c, "Error retrieving dashboard overview", err)
		return
	}
	respond(c, "Dashboard overview retrieved successfully", data)
}

func (r *Router) getPropertyAnalytics(c *gin.Context) {
	data, err := r.reports.PropertyAnalytics(c.Request.Context())
	if err != nil {
		respondError(c, "Error retrieving property analytics", err)
		return
	}
	respond(c, "Property analytics retrieved successfully", data)
}

func (r *Router) getLeadAnalytics(c *gin.Context) {
	data, err := r.reports.LeadAnalytics(c.Request.Context())
	if err != nil {
		respondError(c, "Error retrieving lead analytics", err)
		return
	}
	respond(c, "Lead analytics retrieved successfully", data)
}

func (r *Router) getSalesAnalytics(c *gin.Context) {
	data, err := r.reports.SalesAnalytics(c.Request.Context())
	if err != nil {
		respondError(c, "Error retrieving sales analytics", err)
		return
	}
	respond(c, "Sales analytics retrieved successfully", data)
}

func (r *Router) getUserAnalytics(c *gin.Context) {
	data, err := r.reports.UserAnalytics(c.Request.Context())
	if err != nil {
		respondError(c, "Error retrieving user analytics", err)
		return
	}
	respond(c, "User analytics retrieved successfully", data)
}

func (r *Router) getRecentActivities(c *gin.Context) {
	data, err := r.reports.RecentActivities(c.Request.Context())
	if err != nil {
		respondError(c, "Error retrieving recent activities", err)
		return
	}
	respond(c, "Recent activities retrieved successfully", data)
}

func (r *Router) getWeeklyPerformance(c *gin.Context) {
	data, err := r.reports.WeeklyPerformance(c.Request.Context())
	if err != nil {
		respondError(c, "Error retrieving weekly performance data", err)
		return
	}
	respond(c, "Weekly performance data retrieved successfully", data)
}

func (r *Router) getMonthlyTrends(c *gin.Context) {
	data, err := r.reports.MonthlyTrends(c.Request.Context())
	if err != nil {
		respondError(c, "Error retrieving monthly trends", err)
		return
	}
	respond(c, "Monthly trends retrieved successfully", data)
}

func (r *Router) getTopProperties(c *gin.Context) {
	data, err := r.reports.TopProperties(c.Request.Context())
	if err != nil {
		respondError(c, "Error retrieving top properties", err)
		return
	}
	respond(c, "Top properties retrieved successfully", data)
}

func (r *Router) getLeadConversionRates(c *gin.Context) {
	data, err := r.reports.LeadConversionRates(c.Request.Context())
	if err != nil {
		respondError(c, "Error retrieving lead conversion rates", err)
		return
	}
	respond(c, "Lead conversion rates retrieved successfully", data)
}

func (r *Router) getFinancialSummary(c *gin.Context) {
	data, err := r.reports.FinancialSummary(c.Request.Context())
	if err != nil {
		respondError(c, "Error retrieving financial summary", err)
		return
	}
	respond(c, "Financial summary retrieved successfully", data)
}

func (r *Router) getSnapshot(c *gin.Context) {
	data, err := r.reports.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, "Error retrieving dashboard snapshot", err)
		return
	}
	respond(c, "Dashboard snapshot retrieved successfully", data)
}

func (r *Router) refreshSnapshot(c *gin.Context) {
	data, err := r.reports.RefreshSnapshot(c.Request.Context())
	if err != nil {
		respondError(c, "Error refreshing dashboard snapshot", err)
		return
	}
	respond(c, "Dashboard snapshot refreshed successfully", data)
}
