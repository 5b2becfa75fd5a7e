package repositories

import (
	"database/sql"

	intconfig "shuttlelink/internal/config"
	intdb "shuttlelink/internal/db"
	"shuttlelink/internal/domain/models"
)

type PassengerRepository struct {
	DB *sql.DB
}

func (r PassengerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const passengerSelect = `
	SELECT id, name, phone, COALESCE(email, ''), COALESCE(age, 0),
	       preferred_language, created_at
	FROM passengers`

func scanPassenger(row interface{ Scan(...any) error }) (models.Passenger, error) {
	var p models.Passenger
	err := row.Scan(&p.ID, &p.Name, &p.Phone, &p.Email, &p.Age, &p.PreferredLanguage, &p.CreatedAt)
	return p, err
}

func (r PassengerRepository) GetByID(id int64) (models.Passenger, error) {
	return scanPassenger(r.db().QueryRow(passengerSelect+` WHERE id = ? LIMIT 1`, id))
}

func (r PassengerRepository) GetByPhone(phone string) (models.Passenger, error) {
	return scanPassenger(r.db().QueryRow(passengerSelect+` WHERE phone = ? LIMIT 1`, phone))
}

// Create inserts a new passenger. The unique key on phone makes concurrent
// creates for the same number collide; callers treat a duplicate-key error
// as "row already exists, re-read it".
func (r PassengerRepository) Create(name, phone, email string, age int, lang string) (models.Passenger, error) {
	if lang == "" {
		lang = "en"
	}
	var ageVal any
	if age > 0 {
		ageVal = age
	}
	res, err := r.db().Exec(`
		INSERT INTO passengers (name, phone, email, age, preferred_language)
		VALUES (?, ?, ?, ?, ?)`, name, phone, intdb.NullIfEmpty(email), ageVal, lang)
	if err != nil {
		return models.Passenger{}, err
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}
