package services

import (
	"database/sql"
	"errors"
	"fmt"

	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/repositories"
)

// SeatService derives a schedule's seat map from the vehicle layout and
// the live bookings.
type SeatService struct {
	ScheduleRepo repositories.ScheduleRepository
	BookingRepo  repositories.BookingRepository
	DB           *sql.DB
}

func (s SeatService) schedules() repositories.ScheduleRepository {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepository{DB: s.DB}
}

func (s SeatService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.DB}
}

// SeatLabels enumerates the vehicle's seat labels in boarding order. A
// layout of rows and columns yields A1..A{cols}, B1.. and so on, capped at
// capacity; without a layout every seat sits in row A.
func SeatLabels(v models.Vehicle) []string {
	labels := make([]string, 0, v.Capacity)
	if v.SeatRows > 0 && v.SeatColumns > 0 {
		for row := 0; row < v.SeatRows && len(labels) < v.Capacity; row++ {
			for col := 1; col <= v.SeatColumns && len(labels) < v.Capacity; col++ {
				labels = append(labels, fmt.Sprintf("%c%d", 'A'+row, col))
			}
		}
		return labels
	}
	for i := 1; i <= v.Capacity; i++ {
		labels = append(labels, fmt.Sprintf("A%d", i))
	}
	return labels
}

// SeatMap returns availability for every seat of the schedule's vehicle.
// Cancelled bookings do not occupy their seat.
func (s SeatService) SeatMap(scheduleID int64) ([]models.SeatAvailability, error) {
	sched, err := s.schedules().GetByID(scheduleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "schedule", Err: err}
		}
		return nil, domain.InternalError{Err: err}
	}

	occupied, err := s.bookings().OccupiedSeats(scheduleID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}

	labels := SeatLabels(sched.Vehicle)
	out := make([]models.SeatAvailability, 0, len(labels))
	for _, label := range labels {
		taken := occupied[label]
		out = append(out, models.SeatAvailability{
			SeatNumber:  label,
			IsAvailable: !taken,
			IsOccupied:  taken,
		})
	}
	return out, nil
}

// HasSeat reports whether the label belongs to the vehicle's layout.
func HasSeat(v models.Vehicle, label string) bool {
	for _, l := range SeatLabels(v) {
		if l == label {
			return true
		}
	}
	return false
}
