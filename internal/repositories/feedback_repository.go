package repositories

import (
	"database/sql"

	intconfig "shuttlelink/internal/config"
	intdb "shuttlelink/internal/db"
	"shuttlelink/internal/domain/models"
)

type FeedbackRepository struct {
	DB *sql.DB
}

func (r FeedbackRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r FeedbackRepository) Insert(bookingID int64, rating int, comment string) (models.Feedback, error) {
	res, err := r.db().Exec(`
		INSERT INTO feedback (booking_id, rating, comment) VALUES (?, ?, ?)`,
		bookingID, rating, intdb.NullIfEmpty(comment))
	if err != nil {
		return models.Feedback{}, err
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}

func (r FeedbackRepository) GetByID(id int64) (models.Feedback, error) {
	var f models.Feedback
	err := r.db().QueryRow(`
		SELECT id, booking_id, rating, COALESCE(comment, ''), created_at
		FROM feedback WHERE id = ? LIMIT 1`, id).
		Scan(&f.ID, &f.BookingID, &f.Rating, &f.Comment, &f.CreatedAt)
	return f, err
}

func (r FeedbackRepository) ListAll() ([]models.Feedback, error) {
	rows, err := r.db().Query(`
		SELECT id, booking_id, rating, COALESCE(comment, ''), created_at
		FROM feedback ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Feedback{}
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.BookingID, &f.Rating, &f.Comment, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
