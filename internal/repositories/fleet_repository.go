package repositories

import (
	"database/sql"
	"encoding/json"

	intconfig "shuttlelink/internal/config"
	"shuttlelink/internal/domain/models"
)

// FleetRepository reads vehicles and drivers. Both are reference data from
// the booking path's perspective.
type FleetRepository struct {
	DB *sql.DB
}

func (r FleetRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func scanVehicle(row interface{ Scan(...any) error }) (models.Vehicle, error) {
	var v models.Vehicle
	var amenities sql.NullString
	err := row.Scan(&v.ID, &v.RegistrationNumber, &v.Model, &v.Capacity,
		&v.SeatRows, &v.SeatColumns, &amenities, &v.IsActive, &v.CreatedAt)
	if err != nil {
		return v, err
	}
	v.Amenities = []string{}
	if amenities.Valid && amenities.String != "" {
		_ = json.Unmarshal([]byte(amenities.String), &v.Amenities)
	}
	return v, nil
}

const vehicleSelect = `
	SELECT id, registration_number, model, capacity, seat_rows, seat_columns,
	       amenities, is_active, created_at
	FROM vehicles`

func (r FleetRepository) GetVehicle(id int64) (models.Vehicle, error) {
	return scanVehicle(r.db().QueryRow(vehicleSelect+` WHERE id = ? LIMIT 1`, id))
}

func (r FleetRepository) ListVehicles() ([]models.Vehicle, error) {
	rows, err := r.db().Query(vehicleSelect + ` WHERE is_active = 1 ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

const driverSelect = `
	SELECT id, name, phone, license_number, rating, is_active, created_at
	FROM drivers`

func scanDriver(row interface{ Scan(...any) error }) (models.Driver, error) {
	var d models.Driver
	err := row.Scan(&d.ID, &d.Name, &d.Phone, &d.LicenseNumber, &d.Rating, &d.IsActive, &d.CreatedAt)
	return d, err
}

func (r FleetRepository) GetDriver(id int64) (models.Driver, error) {
	return scanDriver(r.db().QueryRow(driverSelect+` WHERE id = ? LIMIT 1`, id))
}

func (r FleetRepository) ListDrivers() ([]models.Driver, error) {
	rows, err := r.db().Query(driverSelect + ` WHERE is_active = 1 ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Driver{}
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
