package repositories

import (
	"database/sql"

	intconfig "shuttlelink/internal/config"
	"shuttlelink/internal/domain/models"
)

type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const routeWithCitiesSelect = `
	SELECT r.id, r.from_city_id, r.to_city_id, r.name, r.code,
	       r.distance, r.estimated_duration, r.base_fare, r.distance_fare,
	       r.is_active, r.created_at,
	       fc.id, fc.name, fc.code, fc.is_active, fc.created_at,
	       tc.id, tc.name, tc.code, tc.is_active, tc.created_at
	FROM routes r
	JOIN cities fc ON fc.id = r.from_city_id
	JOIN cities tc ON tc.id = r.to_city_id`

func scanRouteWithCities(row interface{ Scan(...any) error }) (models.RouteWithCities, error) {
	var rt models.RouteWithCities
	err := row.Scan(
		&rt.ID, &rt.FromCityID, &rt.ToCityID, &rt.Name, &rt.Code,
		&rt.Distance, &rt.EstimatedDuration, &rt.BaseFare, &rt.DistanceFare,
		&rt.IsActive, &rt.CreatedAt,
		&rt.FromCity.ID, &rt.FromCity.Name, &rt.FromCity.Code, &rt.FromCity.IsActive, &rt.FromCity.CreatedAt,
		&rt.ToCity.ID, &rt.ToCity.Name, &rt.ToCity.Code, &rt.ToCity.IsActive, &rt.ToCity.CreatedAt,
	)
	return rt, err
}

func (r RouteRepository) List() ([]models.RouteWithCities, error) {
	rows, err := r.db().Query(routeWithCitiesSelect + `
		WHERE r.is_active = 1
		ORDER BY r.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.RouteWithCities{}
	for rows.Next() {
		rt, err := scanRouteWithCities(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r RouteRepository) GetByID(id int64) (models.RouteWithCities, error) {
	return scanRouteWithCities(r.db().QueryRow(routeWithCitiesSelect+`
		WHERE r.id = ? LIMIT 1`, id))
}

func (r RouteRepository) ListStops(routeID int64) ([]models.Stop, error) {
	rows, err := r.db().Query(`
		SELECT id, route_id, name, code,
		       COALESCE(latitude, ''), COALESCE(longitude, ''),
		       stop_order, estimated_arrival, fare_from_start, is_active
		FROM stops
		WHERE route_id = ? AND is_active = 1
		ORDER BY stop_order ASC`, routeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Stop{}
	for rows.Next() {
		var s models.Stop
		if err := rows.Scan(&s.ID, &s.RouteID, &s.Name, &s.Code,
			&s.Latitude, &s.Longitude,
			&s.Order, &s.EstimatedArrival, &s.FareFromStart, &s.IsActive); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r RouteRepository) GetStop(id int64) (models.Stop, error) {
	var s models.Stop
	err := r.db().QueryRow(`
		SELECT id, route_id, name, code,
		       COALESCE(latitude, ''), COALESCE(longitude, ''),
		       stop_order, estimated_arrival, fare_from_start, is_active
		FROM stops WHERE id = ? LIMIT 1`, id).
		Scan(&s.ID, &s.RouteID, &s.Name, &s.Code,
			&s.Latitude, &s.Longitude,
			&s.Order, &s.EstimatedArrival, &s.FareFromStart, &s.IsActive)
	return s, err
}
