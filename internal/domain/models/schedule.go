package models

import "time"

// Schedule statuses.
const (
	ScheduleStatusScheduled = "scheduled"
	ScheduleStatusActive    = "active"
	ScheduleStatusCompleted = "completed"
	ScheduleStatusCancelled = "cancelled"
)

// Schedule is one departure of a vehicle/driver along a route.
// Invariant: 0 <= AvailableSeats <= TotalSeats.
type Schedule struct {
	ID             int64     `json:"id"`
	RouteID        int64     `json:"routeId"`
	VehicleID      int64     `json:"vehicleId"`
	DriverID       int64     `json:"driverId"`
	DepartureTime  time.Time `json:"departureTime"`
	ArrivalTime    time.Time `json:"arrivalTime"`
	AvailableSeats int       `json:"availableSeats"`
	TotalSeats     int       `json:"totalSeats"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ScheduleWithDetails is the search/detail projection.
type ScheduleWithDetails struct {
	Schedule
	Route   RouteWithCities `json:"route"`
	Vehicle Vehicle         `json:"vehicle"`
	Driver  Driver          `json:"driver"`
}

// ScheduleSearchParams filters schedules for a city pair on a date.
type ScheduleSearchParams struct {
	FromCityID     int64  `json:"fromCityId"`
	ToCityID       int64  `json:"toCityId"`
	Date           string `json:"date"` // YYYY-MM-DD
	Passengers     int    `json:"passengers"`
	TimePreference string `json:"timePreference,omitempty"` // morning, afternoon, evening, any
}

// SeatAvailability is one seat of a schedule's seat map.
type SeatAvailability struct {
	SeatNumber  string `json:"seatNumber"`
	IsAvailable bool   `json:"isAvailable"`
	IsOccupied  bool   `json:"isOccupied"`
}
