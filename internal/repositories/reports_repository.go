package repositories

import (
	"database/sql"
	"time"

	intconfig "shuttlelink/internal/config"
)

// ReportsRepository runs the dashboard aggregation queries.
type ReportsRepository struct {
	DB *sql.DB
}

func (r ReportsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ReportsRepository) CountBookingsSince(since time.Time) (int, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM bookings WHERE created_at >= ?`, since).Scan(&n)
	return n, err
}

func (r ReportsRepository) CountActiveShuttles() (int, error) {
	var n int
	err := r.db().QueryRow(`
		SELECT COUNT(*) FROM schedules WHERE status = 'active'`).Scan(&n)
	return n, err
}

// RevenueSince sums completed payments since the cutoff, in paise-exact
// decimal form.
func (r ReportsRepository) RevenueSince(since time.Time) (string, error) {
	var total sql.NullString
	err := r.db().QueryRow(`
		SELECT COALESCE(SUM(total_fare), 0.00)
		FROM bookings
		WHERE created_at >= ? AND payment_status = 'completed'`, since).Scan(&total)
	if err != nil {
		return "", err
	}
	if !total.Valid || total.String == "" {
		return "0.00", nil
	}
	return total.String, nil
}

func (r ReportsRepository) AverageRating() (float64, error) {
	var avg sql.NullFloat64
	err := r.db().QueryRow(`SELECT AVG(rating) FROM feedback`).Scan(&avg)
	if err != nil {
		return 0, err
	}
	return avg.Float64, nil
}
