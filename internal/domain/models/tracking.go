package models

import "time"

// LiveTracking is one position ping for a schedule. Append-only.
type LiveTracking struct {
	ID         int64     `json:"id"`
	ScheduleID int64     `json:"scheduleId"`
	Latitude   string    `json:"latitude"`
	Longitude  string    `json:"longitude"`
	Speed      string    `json:"speed,omitempty"`
	Heading    string    `json:"heading,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Location is the lat/lng pair carried inside realtime messages.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DashboardStats are the admin counters.
type DashboardStats struct {
	TodayBookings  int     `json:"todayBookings"`
	ActiveShuttles int     `json:"activeShuttles"`
	TodayRevenue   string  `json:"todayRevenue"`
	AverageRating  float64 `json:"averageRating"`
}
