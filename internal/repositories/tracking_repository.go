package repositories

import (
	"database/sql"

	intconfig "shuttlelink/internal/config"
	intdb "shuttlelink/internal/db"
	"shuttlelink/internal/domain/models"
)

type TrackingRepository struct {
	DB *sql.DB
}

func (r TrackingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert appends one position ping. The log is append-only; pings are
// never updated or removed.
func (r TrackingRepository) Insert(t models.LiveTracking) (models.LiveTracking, error) {
	res, err := r.db().Exec(`
		INSERT INTO live_tracking (schedule_id, latitude, longitude, speed, heading)
		VALUES (?, ?, ?, ?, ?)`,
		t.ScheduleID, t.Latitude, t.Longitude,
		intdb.NullIfEmpty(t.Speed), intdb.NullIfEmpty(t.Heading))
	if err != nil {
		return models.LiveTracking{}, err
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r TrackingRepository) GetByID(id int64) (models.LiveTracking, error) {
	var t models.LiveTracking
	err := r.db().QueryRow(`
		SELECT id, schedule_id, latitude, longitude,
		       COALESCE(speed, ''), COALESCE(heading, ''), recorded_at
		FROM live_tracking WHERE id = ? LIMIT 1`, id).
		Scan(&t.ID, &t.ScheduleID, &t.Latitude, &t.Longitude, &t.Speed, &t.Heading, &t.Timestamp)
	return t, err
}

func (r TrackingRepository) ListBySchedule(scheduleID int64) ([]models.LiveTracking, error) {
	rows, err := r.db().Query(`
		SELECT id, schedule_id, latitude, longitude,
		       COALESCE(speed, ''), COALESCE(heading, ''), recorded_at
		FROM live_tracking
		WHERE schedule_id = ?
		ORDER BY recorded_at ASC`, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.LiveTracking{}
	for rows.Next() {
		var t models.LiveTracking
		if err := rows.Scan(&t.ID, &t.ScheduleID, &t.Latitude, &t.Longitude, &t.Speed, &t.Heading, &t.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
