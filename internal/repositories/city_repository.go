package repositories

import (
	"database/sql"
	"strings"

	intconfig "shuttlelink/internal/config"
	"shuttlelink/internal/domain/models"
)

type CityRepository struct {
	DB *sql.DB
}

func (r CityRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CityRepository) List() ([]models.City, error) {
	rows, err := r.db().Query(`
		SELECT id, name, code, is_active, created_at
		FROM cities
		WHERE is_active = 1
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.City{}
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CityRepository) GetByID(id int64) (models.City, error) {
	var c models.City
	err := r.db().QueryRow(`
		SELECT id, name, code, is_active, created_at
		FROM cities WHERE id = ? LIMIT 1`, id).
		Scan(&c.ID, &c.Name, &c.Code, &c.IsActive, &c.CreatedAt)
	return c, err
}

func (r CityRepository) Create(name, code string) (models.City, error) {
	res, err := r.db().Exec(`INSERT INTO cities (name, code) VALUES (?, ?)`,
		strings.TrimSpace(name), strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return models.City{}, err
	}
	id, _ := res.LastInsertId()
	return r.GetByID(id)
}
