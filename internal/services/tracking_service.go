package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/realtime"
	"shuttlelink/internal/repositories"
	"shuttlelink/internal/utils"
)

// TrackingService appends shuttle position pings and forwards them to the
// schedule's tracking subscribers.
type TrackingService struct {
	TrackingRepo repositories.TrackingRepository
	ScheduleRepo repositories.ScheduleRepository
	Notifier     Notifier
	RequestID    string
	DB           *sql.DB
}

func (s TrackingService) tracking() repositories.TrackingRepository {
	if s.TrackingRepo.DB != nil {
		return s.TrackingRepo
	}
	return repositories.TrackingRepository{DB: s.DB}
}

func (s TrackingService) schedules() repositories.ScheduleRepository {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepository{DB: s.DB}
}

// RecordPing stores one position sample. History is append-only; the
// latest row wins for display.
func (s TrackingService) RecordPing(ping models.LiveTracking) (models.LiveTracking, error) {
	var none models.LiveTracking
	if ping.ScheduleID <= 0 {
		return none, domain.ValidationError{Field: "scheduleId", Msg: "required"}
	}
	lat, err := strconv.ParseFloat(ping.Latitude, 64)
	if err != nil || lat < -90 || lat > 90 {
		return none, domain.ValidationError{Field: "latitude", Msg: "must be a decimal between -90 and 90"}
	}
	lng, err := strconv.ParseFloat(ping.Longitude, 64)
	if err != nil || lng < -180 || lng > 180 {
		return none, domain.ValidationError{Field: "longitude", Msg: "must be a decimal between -180 and 180"}
	}

	if _, err := s.schedules().Get(ping.ScheduleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return none, domain.NotFoundError{Resource: "schedule", Err: err}
		}
		return none, domain.InternalError{Err: err}
	}

	stored, err := s.tracking().Insert(ping)
	if err != nil {
		return none, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "tracking", "ping",
		fmt.Sprintf("schedule_id=%d lat=%s lng=%s", ping.ScheduleID, ping.Latitude, ping.Longitude))

	if s.Notifier != nil {
		s.Notifier.BroadcastTracking(ping.ScheduleID, realtime.TrackingUpdateEvent{
			Type:       realtime.EventTrackingUpdate,
			ScheduleID: ping.ScheduleID,
			Location:   models.Location{Latitude: lat, Longitude: lng},
		})
	}
	return stored, nil
}

// History lists a schedule's pings, newest first.
func (s TrackingService) History(scheduleID int64) ([]models.LiveTracking, error) {
	if _, err := s.schedules().Get(scheduleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "schedule", Err: err}
		}
		return nil, domain.InternalError{Err: err}
	}
	out, err := s.tracking().ListBySchedule(scheduleID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
