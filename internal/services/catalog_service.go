package services

import (
	"database/sql"
	"errors"
	"strings"

	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/repositories"
	"shuttlelink/internal/utils"
)

// CatalogService serves the read-mostly reference data: cities, routes,
// stops and SMS booking codes.
type CatalogService struct {
	CityRepo    repositories.CityRepository
	RouteRepo   repositories.RouteRepository
	FleetRepo   repositories.FleetRepository
	SmsCodeRepo repositories.SmsCodeRepository
	DB          *sql.DB
}

func (s CatalogService) cities() repositories.CityRepository {
	if s.CityRepo.DB != nil {
		return s.CityRepo
	}
	return repositories.CityRepository{DB: s.DB}
}

func (s CatalogService) routes() repositories.RouteRepository {
	if s.RouteRepo.DB != nil {
		return s.RouteRepo
	}
	return repositories.RouteRepository{DB: s.DB}
}

func (s CatalogService) fleet() repositories.FleetRepository {
	if s.FleetRepo.DB != nil {
		return s.FleetRepo
	}
	return repositories.FleetRepository{DB: s.DB}
}

func (s CatalogService) smsCodes() repositories.SmsCodeRepository {
	if s.SmsCodeRepo.DB != nil {
		return s.SmsCodeRepo
	}
	return repositories.SmsCodeRepository{DB: s.DB}
}

func (s CatalogService) ListCities() ([]models.City, error) {
	out, err := s.cities().List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s CatalogService) CreateCity(name, code string) (models.City, error) {
	var none models.City
	name = utils.TrimOrEmpty(name)
	code = strings.ToUpper(utils.TrimOrEmpty(code))
	if name == "" {
		return none, domain.ValidationError{Field: "name", Msg: "required"}
	}
	if code == "" {
		return none, domain.ValidationError{Field: "code", Msg: "required"}
	}
	city, err := s.cities().Create(name, code)
	if err != nil {
		if isDuplicateKey(err) {
			return none, domain.ConflictError{Resource: "city", Msg: "code already in use", Err: err}
		}
		return none, domain.InternalError{Err: err}
	}
	return city, nil
}

func (s CatalogService) ListRoutes() ([]models.RouteWithCities, error) {
	out, err := s.routes().List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s CatalogService) GetRoute(id int64) (models.RouteWithCities, error) {
	route, err := s.routes().GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return route, domain.NotFoundError{Resource: "route", Err: err}
		}
		return route, domain.InternalError{Err: err}
	}
	return route, nil
}

// ListStops returns the route's stops in travel order.
func (s CatalogService) ListStops(routeID int64) ([]models.Stop, error) {
	if _, err := s.routes().GetByID(routeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "route", Err: err}
		}
		return nil, domain.InternalError{Err: err}
	}
	out, err := s.routes().ListStops(routeID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s CatalogService) ListVehicles() ([]models.Vehicle, error) {
	out, err := s.fleet().ListVehicles()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s CatalogService) ListDrivers() ([]models.Driver, error) {
	out, err := s.fleet().ListDrivers()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s CatalogService) ListSmsCodes() ([]models.SmsBookingCode, error) {
	out, err := s.smsCodes().List()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s CatalogService) GetSmsCode(code string) (models.SmsBookingCode, error) {
	c, err := s.smsCodes().GetByCode(code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, domain.NotFoundError{Resource: "sms code", Err: err}
		}
		return c, domain.InternalError{Err: err}
	}
	return c, nil
}
