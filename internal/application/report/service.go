package report

import (
	"context"
	"time"

	"github.com/stockroom/backend/internal/domain/report"
	"github.com/stockroom/backend/internal/domain/shared"
)

const (
	defaultRangeDays = 30
	defaultTopLimit  = 5
)

// Service assembles the reporting read models
type Service struct {
	reportRepo report.SalesReportRepository
}

// NewService creates a new reporting Service
func NewService(reportRepo report.SalesReportRepository) *Service {
	return &Service{reportRepo: reportRepo}
}

// SalesReport builds the full sales report for the query's date range
func (s *Service) SalesReport(ctx context.Context, query ReportQuery) (*report.SalesReport, error) {
	dateRange, err := resolveRange(query)
	if err != nil {
		return nil, err
	}

	limit := query.TopLimit
	if limit <= 0 {
		limit = defaultTopLimit
	}

	overview, err := s.reportRepo.Overview(ctx, dateRange)
	if err != nil {
		return nil, err
	}
	topProducts, err := s.reportRepo.TopProducts(ctx, dateRange, limit)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.reportRepo.SalesByCategory(ctx, dateRange)
	if err != nil {
		return nil, err
	}
	byPeriod, err := s.reportRepo.SalesByPeriod(ctx, dateRange)
	if err != nil {
		return nil, err
	}
	details, err := s.reportRepo.SalesDetails(ctx, dateRange)
	if err != nil {
		return nil, err
	}

	return &report.SalesReport{
		Overview:        *overview,
		TopProducts:     topProducts,
		SalesByCategory: byCategory,
		SalesByPeriod:   byPeriod,
		SalesDetails:    details,
	}, nil
}

// DashboardStats returns the dashboard header numbers
func (s *Service) DashboardStats(ctx context.Context) (*report.DashboardStats, error) {
	return s.reportRepo.DashboardStats(ctx)
}

// InventoryStats returns the current stock position summary
func (s *Service) InventoryStats(ctx context.Context) (*report.InventoryStats, error) {
	return s.reportRepo.InventoryStats(ctx)
}

// resolveRange parses the query dates. The start defaults to 30 days ago,
// the end to today; the end bound is extended to the last instant of its day.
func resolveRange(query ReportQuery) (report.DateRange, error) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, -defaultRangeDays)
	end := now

	if query.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", query.StartDate)
		if err != nil {
			return report.DateRange{}, shared.NewDomainError("VALIDATION_ERROR", "Invalid start_date, expected YYYY-MM-DD")
		}
		start = parsed
	}
	if query.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", query.EndDate)
		if err != nil {
			return report.DateRange{}, shared.NewDomainError("VALIDATION_ERROR", "Invalid end_date, expected YYYY-MM-DD")
		}
		end = parsed.Add(24*time.Hour - time.Nanosecond)
	}

	if end.Before(start) {
		return report.DateRange{}, shared.NewDomainError("VALIDATION_ERROR", "end_date must not precede start_date")
	}

	return report.DateRange{Start: start, End: end}, nil
}
