package services

import (
	"database/sql"
	"errors"
	"time"

	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/repositories"
	"shuttlelink/internal/utils"
)

// ScheduleService answers schedule search and detail queries.
type ScheduleService struct {
	ScheduleRepo repositories.ScheduleRepository
	DB           *sql.DB
}

func (s ScheduleService) schedules() repositories.ScheduleRepository {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepository{DB: s.DB}
}

var timePreferences = map[string]bool{
	"":          true,
	"any":       true,
	"morning":   true,
	"afternoon": true,
	"evening":   true,
}

// Search lists bookable departures for a city pair on a date. Only
// status=scheduled departures with seat headroom for the whole party
// qualify.
func (s ScheduleService) Search(params models.ScheduleSearchParams) ([]models.ScheduleWithDetails, error) {
	if params.FromCityID <= 0 || params.ToCityID <= 0 {
		return nil, domain.ValidationError{Field: "cities", Msg: "fromCityId and toCityId are required"}
	}
	if params.FromCityID == params.ToCityID {
		return nil, domain.ValidationError{Field: "cities", Msg: "origin and destination must differ"}
	}
	if params.Passengers <= 0 {
		params.Passengers = 1
	}
	if !timePreferences[params.TimePreference] {
		return nil, domain.ValidationError{Field: "timePreference", Msg: "must be morning, afternoon, evening or any"}
	}
	if params.TimePreference == "any" {
		params.TimePreference = ""
	}

	day, err := utils.ParseDate(params.Date)
	if err != nil {
		return nil, domain.ValidationError{Field: "date", Msg: "expected YYYY-MM-DD", Err: err}
	}
	dayStart := utils.StartOfDay(day)
	dayEnd := dayStart.Add(24 * time.Hour)

	out, err := s.schedules().Search(params, dayStart, dayEnd)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s ScheduleService) GetSchedule(id int64) (models.ScheduleWithDetails, error) {
	sched, err := s.schedules().GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return sched, domain.NotFoundError{Resource: "schedule", Err: err}
		}
		return sched, domain.InternalError{Err: err}
	}
	return sched, nil
}
