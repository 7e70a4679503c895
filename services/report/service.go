package report

import (
	"context"
	"time"

	bookingRepo "fleetbook/database/repository/booking"
	paymentRepo "fleetbook/database/repository/payment"
)

// DashboardStats is the aggregate view behind the admin dashboard.
type DashboardStats struct {
	BookingsByStatus map[string]int64            `json:"bookingsByStatus"`
	TotalRevenue     float64                     `json:"totalRevenue"`
	RevenueByDay     []paymentRepo.RevenueBucket `json:"revenueByDay"`
	RevenueByMonth   []paymentRepo.RevenueBucket `json:"revenueByMonth"`
}

// ReportService produces aggregate statistics.
type ReportService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

// DefaultReportService is the production implementation of ReportService.
type DefaultReportService struct {
	BookingRepo bookingRepo.BookingRepository
	PaymentRepo paymentRepo.PaymentRepository
}

// Dashboard aggregates booking counts and revenue. Daily revenue covers the
// last 30 days, monthly the last 12 months.
func (s *DefaultReportService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	byStatus, err := s.BookingRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.PaymentRepo.TotalRevenue(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	byDay, err := s.PaymentRepo.RevenueByDay(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	byMonth, err := s.PaymentRepo.RevenueByMonth(ctx, now.AddDate(-1, 0, 0))
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		BookingsByStatus: byStatus,
		TotalRevenue:     total,
		RevenueByDay:     byDay,
		RevenueByMonth:   byMonth,
	}, nil
}
