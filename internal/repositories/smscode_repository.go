package repositories

import (
	"database/sql"
	"strings"

	intconfig "shuttlelink/internal/config"
	"shuttlelink/internal/domain/models"
)

type SmsCodeRepository struct {
	DB *sql.DB
}

func (r SmsCodeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r SmsCodeRepository) List() ([]models.SmsBookingCode, error) {
	rows, err := r.db().Query(`
		SELECT id, route_id, code, COALESCE(description, ''), is_active
		FROM sms_booking_codes
		WHERE is_active = 1
		ORDER BY code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.SmsBookingCode{}
	for rows.Next() {
		var c models.SmsBookingCode
		if err := rows.Scan(&c.ID, &c.RouteID, &c.Code, &c.Description, &c.IsActive); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r SmsCodeRepository) GetByCode(code string) (models.SmsBookingCode, error) {
	var c models.SmsBookingCode
	err := r.db().QueryRow(`
		SELECT id, route_id, code, COALESCE(description, ''), is_active
		FROM sms_booking_codes
		WHERE code = ? LIMIT 1`, strings.ToUpper(strings.TrimSpace(code))).
		Scan(&c.ID, &c.RouteID, &c.Code, &c.Description, &c.IsActive)
	return c, err
}
