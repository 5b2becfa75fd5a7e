package repositories

import (
	"database/sql"
	"encoding/json"
	"time"

	intconfig "shuttlelink/internal/config"
	"shuttlelink/internal/domain/models"
)

type ScheduleRepository struct {
	DB *sql.DB
}

func (r ScheduleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const scheduleDetailsSelect = `
	SELECT s.id, s.route_id, s.vehicle_id, s.driver_id,
	       s.departure_time, s.arrival_time, s.available_seats, s.total_seats,
	       s.status, s.created_at,
	       r.id, r.from_city_id, r.to_city_id, r.name, r.code,
	       r.distance, r.estimated_duration, r.base_fare, r.distance_fare,
	       r.is_active, r.created_at,
	       fc.id, fc.name, fc.code, fc.is_active, fc.created_at,
	       tc.id, tc.name, tc.code, tc.is_active, tc.created_at,
	       v.id, v.registration_number, v.model, v.capacity, v.seat_rows, v.seat_columns,
	       v.amenities, v.is_active, v.created_at,
	       d.id, d.name, d.phone, d.license_number, d.rating, d.is_active, d.created_at
	FROM schedules s
	JOIN routes r ON r.id = s.route_id
	JOIN cities fc ON fc.id = r.from_city_id
	JOIN cities tc ON tc.id = r.to_city_id
	JOIN vehicles v ON v.id = s.vehicle_id
	JOIN drivers d ON d.id = s.driver_id`

func scanScheduleWithDetails(row interface{ Scan(...any) error }) (models.ScheduleWithDetails, error) {
	var s models.ScheduleWithDetails
	var amenities sql.NullString
	err := row.Scan(
		&s.ID, &s.RouteID, &s.VehicleID, &s.DriverID,
		&s.DepartureTime, &s.ArrivalTime, &s.AvailableSeats, &s.TotalSeats,
		&s.Status, &s.CreatedAt,
		&s.Route.ID, &s.Route.FromCityID, &s.Route.ToCityID, &s.Route.Name, &s.Route.Code,
		&s.Route.Distance, &s.Route.EstimatedDuration, &s.Route.BaseFare, &s.Route.DistanceFare,
		&s.Route.IsActive, &s.Route.CreatedAt,
		&s.Route.FromCity.ID, &s.Route.FromCity.Name, &s.Route.FromCity.Code, &s.Route.FromCity.IsActive, &s.Route.FromCity.CreatedAt,
		&s.Route.ToCity.ID, &s.Route.ToCity.Name, &s.Route.ToCity.Code, &s.Route.ToCity.IsActive, &s.Route.ToCity.CreatedAt,
		&s.Vehicle.ID, &s.Vehicle.RegistrationNumber, &s.Vehicle.Model, &s.Vehicle.Capacity,
		&s.Vehicle.SeatRows, &s.Vehicle.SeatColumns,
		&amenities, &s.Vehicle.IsActive, &s.Vehicle.CreatedAt,
		&s.Driver.ID, &s.Driver.Name, &s.Driver.Phone, &s.Driver.LicenseNumber,
		&s.Driver.Rating, &s.Driver.IsActive, &s.Driver.CreatedAt,
	)
	if err != nil {
		return s, err
	}
	s.Vehicle.Amenities = []string{}
	if amenities.Valid && amenities.String != "" {
		_ = json.Unmarshal([]byte(amenities.String), &s.Vehicle.Amenities)
	}
	return s, nil
}

func (r ScheduleRepository) GetByID(id int64) (models.ScheduleWithDetails, error) {
	return scanScheduleWithDetails(r.db().QueryRow(scheduleDetailsSelect+`
		WHERE s.id = ? LIMIT 1`, id))
}

// Get fetches the bare schedule row without joins.
func (r ScheduleRepository) Get(id int64) (models.Schedule, error) {
	var s models.Schedule
	err := r.db().QueryRow(`
		SELECT id, route_id, vehicle_id, driver_id, departure_time, arrival_time,
		       available_seats, total_seats, status, created_at
		FROM schedules WHERE id = ? LIMIT 1`, id).
		Scan(&s.ID, &s.RouteID, &s.VehicleID, &s.DriverID, &s.DepartureTime, &s.ArrivalTime,
			&s.AvailableSeats, &s.TotalSeats, &s.Status, &s.CreatedAt)
	return s, err
}

// Search filters schedules by city pair, departure date, seat headroom and
// optional time-of-day window.
func (r ScheduleRepository) Search(params models.ScheduleSearchParams, dayStart, dayEnd time.Time) ([]models.ScheduleWithDetails, error) {
	query := scheduleDetailsSelect + `
		WHERE r.from_city_id = ?
		  AND r.to_city_id = ?
		  AND s.status = 'scheduled'
		  AND s.available_seats >= ?
		  AND s.departure_time >= ?
		  AND s.departure_time < ?`
	args := []any{params.FromCityID, params.ToCityID, params.Passengers, dayStart, dayEnd}

	switch params.TimePreference {
	case "morning":
		query += ` AND HOUR(s.departure_time) >= 6 AND HOUR(s.departure_time) < 12`
	case "afternoon":
		query += ` AND HOUR(s.departure_time) >= 12 AND HOUR(s.departure_time) < 18`
	case "evening":
		query += ` AND HOUR(s.departure_time) >= 18 AND HOUR(s.departure_time) < 22`
	}
	query += ` ORDER BY s.departure_time ASC`

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ScheduleWithDetails{}
	for rows.Next() {
		s, err := scanScheduleWithDetails(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// DecrementSeats takes one seat off the schedule's counter. The
// available_seats > 0 guard makes the decrement conditional: zero rows
// affected means the schedule is full and the caller must roll back.
func (r ScheduleRepository) DecrementSeats(tx *sql.Tx, scheduleID int64) (bool, error) {
	res, err := tx.Exec(`
		UPDATE schedules
		SET available_seats = available_seats - 1
		WHERE id = ? AND available_seats > 0`, scheduleID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// IncrementSeats returns a seat to the pool, capped at total_seats.
func (r ScheduleRepository) IncrementSeats(tx *sql.Tx, scheduleID int64) error {
	_, err := tx.Exec(`
		UPDATE schedules
		SET available_seats = available_seats + 1
		WHERE id = ? AND available_seats < total_seats`, scheduleID)
	return err
}
