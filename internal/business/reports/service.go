package reports

import (
	"context"
	"time"

	"github.com/estatedesk/crm-reports-api/pkg/model"
	"github.com/google/uuid"
)

const (
	recentFetchLimit = 10
	topFetchLimit    = 10
	weekDays         = 7
	trendMonths      = 6
)

// PropertyStore is the property data access the reports need.
type PropertyStore interface {
	ListPublished(ctx context.Context) ([]model.Property, error)
	ListPublishedWithTypes(ctx context.Context) ([]model.Property, error)
	ListSold(ctx context.Context) ([]model.Property, error)
	ListSoldUpdatedBetween(ctx context.Context, start, end time.Time) ([]model.Property, error)
	ListRecent(ctx context.Context, limit int) ([]model.Property, error)
	TopByPrice(ctx context.Context, limit int) ([]model.Property, error)
	TopByViews(ctx context.Context, limit int) ([]model.Property, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}

// LeadStore is the lead data access the reports need.
type LeadStore interface {
	ListPublished(ctx context.Context) ([]model.Lead, error)
	ListRecent(ctx context.Context, limit int) ([]model.Lead, error)
	CountPublished(ctx context.Context) (int64, error)
	CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error)
}

// UserStore is the user data access the reports need.
type UserStore interface {
	ListPublished(ctx context.Context) ([]model.User, error)
	CountPublished(ctx context.Context) (int64, error)
}

// SnapshotStore persists the pre-aggregated dashboard snapshot.
type SnapshotStore interface {
	Save(ctx context.Context, snapshot model.DashboardSnapshot) error
	Get(ctx context.Context) (model.DashboardSnapshot, error)
}

// Service computes dashboard reports. Every report is one sequential unit of
// work: fetch, reduce in memory, return. Any store error aborts the whole
// report. The clock is a field so time-bucketed reports are testable.
type Service struct {
	properties PropertyStore
	leads      LeadStore
	users      UserStore
	snapshots  SnapshotStore
	now        func() time.Time
}

func NewService(properties PropertyStore, leads LeadStore, users UserStore, snapshots SnapshotStore) *Service {
	return &Service{
		properties: properties,
		leads:      leads,
		users:      users,
		snapshots:  snapshots,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Overview builds the fixed-shape dashboard summary.
func (s *Service) Overview(ctx context.Context) (model.DashboardOverview, error) {
	properties, err := s.properties.ListPublished(ctx)
	if err != nil {
		return model.DashboardOverview{}, err
	}
	totalLeads, err := s.leads.CountPublished(ctx)
	if err != nil {
		return model.DashboardOverview{}, err
	}
	totalUsers, err := s.users.CountPublished(ctx)
	if err != nil {
		return model.DashboardOverview{}, err
	}
	return AggregateOverview(properties, totalLeads, totalUsers), nil
}

// PropertyAnalytics builds status/type/price distributions over published
// properties with their type references resolved.
func (s *Service) PropertyAnalytics(ctx context.Context) (model.PropertyAnalytics, error) {
	properties, err := s.properties.ListPublishedWithTypes(ctx)
	if err != nil {
		return model.PropertyAnalytics{}, err
	}
	return AggregatePropertyAnalytics(properties, s.now()), nil
}

// LeadAnalytics builds lead distributions and conversion figures.
func (s *Service) LeadAnalytics(ctx context.Context) (model.LeadAnalytics, error) {
	leads, err := s.leads.ListPublished(ctx)
	if err != nil {
		return model.LeadAnalytics{}, err
	}
	return AggregateLeadAnalytics(leads), nil
}

// SalesAnalytics buckets sold properties into the trailing 12 months.
func (s *Service) SalesAnalytics(ctx context.Context) (model.SalesAnalytics, error) {
	sold, err := s.properties.ListSold(ctx)
	if err != nil {
		return model.SalesAnalytics{}, err
	}
	return AggregateSalesAnalytics(sold, s.now()), nil
}

// UserAnalytics builds the per-user performance report.
func (s *Service) UserAnalytics(ctx context.Context) (model.UserAnalytics, error) {
	users, err := s.users.ListPublished(ctx)
	if err != nil {
		return model.UserAnalytics{}, err
	}
	leads, err := s.leads.ListPublished(ctx)
	if err != nil {
		return model.UserAnalytics{}, err
	}
	properties, err := s.properties.ListPublished(ctx)
	if err != nil {
		return model.UserAnalytics{}, err
	}
	return AggregateUserAnalytics(users, leads, properties), nil
}

// RecentActivities merges the latest properties and leads into one feed.
func (s *Service) RecentActivities(ctx context.Context) ([]model.Activity, error) {
	properties, err := s.properties.ListRecent(ctx, recentFetchLimit)
	if err != nil {
		return nil, err
	}
	leads, err := s.leads.ListRecent(ctx, recentFetchLimit)
	if err != nil {
		return nil, err
	}
	return BuildActivities(properties, leads), nil
}

// WeeklyPerformance issues one pair of per-day count queries for the current
// Monday-anchored week. Always returns exactly 7 entries.
func (s *Service) WeeklyPerformance(ctx context.Context) ([]model.DayPerformance, error) {
	start := weekStart(s.now())
	week := make([]model.DayPerformance, 0, weekDays)

	for i := 0; i < weekDays; i++ {
		dayStart := start.AddDate(0, 0, i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		properties, err := s.properties.CountCreatedBetween(ctx, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}
		leads, err := s.leads.CountCreatedBetween(ctx, dayStart, dayEnd)
		if err != nil {
			return nil, err
		}

		week = append(week, model.DayPerformance{
			Day:        dayStart.Format("2006-01-02"),
			DayName:    dayStart.Format("Mon"),
			Properties: properties,
			Leads:      leads,
			Total:      properties + leads,
		})
	}
	return week, nil
}

// MonthlyTrends reports created counts and sold revenue for the trailing 6
// months, oldest first.
func (s *Service) MonthlyTrends(ctx context.Context) ([]model.MonthTrend, error) {
	trends := make([]model.MonthTrend, 0, trendMonths)

	for i := 0; i < trendMonths; i++ {
		start := monthStart(s.now(), i)
		end := start.AddDate(0, 1, 0)

		properties, err := s.properties.CountCreatedBetween(ctx, start, end)
		if err != nil {
			return nil, err
		}
		leads, err := s.leads.CountCreatedBetween(ctx, start, end)
		if err != nil {
			return nil, err
		}
		sold, err := s.properties.ListSoldUpdatedBetween(ctx, start, end)
		if err != nil {
			return nil, err
		}

		var revenue float64
		for _, p := range sold {
			revenue += priceOf(p.Price)
		}

		trends = append(trends, model.MonthTrend{
			Month:          start.Format(monthKeyFormat),
			MonthName:      start.Format("January 2006"),
			Properties:     properties,
			Leads:          leads,
			SoldProperties: len(sold),
			Revenue:        revenue,
		})
	}

	for i, j := 0, len(trends)-1; i < j; i, j = i+1, j-1 {
		trends[i], trends[j] = trends[j], trends[i]
	}
	return trends, nil
}

// TopProperties returns the 10 highest-priced and 10 most-viewed published
// properties, each independently fetched with types resolved.
func (s *Service) TopProperties(ctx context.Context) (model.TopProperties, error) {
	byPrice, err := s.properties.TopByPrice(ctx, topFetchLimit)
	if err != nil {
		return model.TopProperties{}, err
	}
	byViews, err := s.properties.TopByViews(ctx, topFetchLimit)
	if err != nil {
		return model.TopProperties{}, err
	}
	return model.TopProperties{TopByPrice: byPrice, TopByViews: byViews}, nil
}

// LeadConversionRates builds the global and per-designation conversion report.
func (s *Service) LeadConversionRates(ctx context.Context) (model.LeadConversionReport, error) {
	leads, err := s.leads.ListPublished(ctx)
	if err != nil {
		return model.LeadConversionReport{}, err
	}
	return AggregateLeadConversion(leads), nil
}

// FinancialSummary builds the current-year revenue breakdown over sold
// properties.
func (s *Service) FinancialSummary(ctx context.Context) (model.FinancialSummary, error) {
	sold, err := s.properties.ListSold(ctx)
	if err != nil {
		return model.FinancialSummary{}, err
	}
	return AggregateFinancialSummary(sold, s.now()), nil
}

// RefreshSnapshot recomputes the overview and persists it as the singleton
// dashboard snapshot.
func (s *Service) RefreshSnapshot(ctx context.Context) (model.DashboardSnapshot, error) {
	overview, err := s.Overview(ctx)
	if err != nil {
		return model.DashboardSnapshot{}, err
	}
	snapshot := model.DashboardSnapshot{
		RefreshID:   uuid.NewString(),
		LastUpdated: s.now(),
		Overview:    overview,
	}
	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		return model.DashboardSnapshot{}, err
	}
	return snapshot, nil
}

// Snapshot returns the stored dashboard snapshot.
func (s *Service) Snapshot(ctx context.Context) (model.DashboardSnapshot, error) {
	return s.snapshots.Get(ctx)
}
