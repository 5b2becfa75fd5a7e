package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDashboardStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(14))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM schedules").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(3))
	mock.ExpectQuery("SUM\\(total_fare\\)").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("1260.00"))
	mock.ExpectQuery("AVG\\(rating\\)").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(4.25))

	stats, err := ReportsService{DB: db}.DashboardStats()
	if err != nil {
		t.Fatalf("dashboard error: %v", err)
	}
	if stats.TodayBookings != 14 || stats.ActiveShuttles != 3 {
		t.Fatalf("counters = %+v", stats)
	}
	if stats.TodayRevenue != "1260.00" {
		t.Fatalf("revenue = %s", stats.TodayRevenue)
	}
	if stats.AverageRating != 4.25 {
		t.Fatalf("rating = %f", stats.AverageRating)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDashboardStatsNoFeedbackYet(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM schedules").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectQuery("SUM\\(total_fare\\)").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow("0.00"))
	mock.ExpectQuery("AVG\\(rating\\)").
		WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))

	stats, err := ReportsService{DB: db}.DashboardStats()
	if err != nil {
		t.Fatalf("dashboard error: %v", err)
	}
	if stats.AverageRating != 0 {
		t.Fatalf("rating = %f, want 0", stats.AverageRating)
	}
}
