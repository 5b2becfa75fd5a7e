package services

import (
	"database/sql"

	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/repositories"
	"shuttlelink/internal/utils"
)

// ReportsService aggregates the admin dashboard counters.
type ReportsService struct {
	ReportsRepo repositories.ReportsRepository
	DB          *sql.DB
}

func (s ReportsService) reports() repositories.ReportsRepository {
	if s.ReportsRepo.DB != nil {
		return s.ReportsRepo
	}
	return repositories.ReportsRepository{DB: s.DB}
}

// DashboardStats covers today's bookings, shuttles currently on the road,
// today's completed revenue and the all-time average rating.
func (s ReportsService) DashboardStats() (models.DashboardStats, error) {
	var stats models.DashboardStats
	today := utils.StartOfDay(utils.NowUTC())
	repo := s.reports()

	bookings, err := repo.CountBookingsSince(today)
	if err != nil {
		return stats, domain.InternalError{Err: err}
	}
	shuttles, err := repo.CountActiveShuttles()
	if err != nil {
		return stats, domain.InternalError{Err: err}
	}
	revenue, err := repo.RevenueSince(today)
	if err != nil {
		return stats, domain.InternalError{Err: err}
	}
	rating, err := repo.AverageRating()
	if err != nil {
		return stats, domain.InternalError{Err: err}
	}

	stats.TodayBookings = bookings
	stats.ActiveShuttles = shuttles
	stats.TodayRevenue = revenue
	stats.AverageRating = rating
	return stats, nil
}
