package models

import "time"

// City is a serviced city. Code is the short unique identifier used in
// search UIs and SMS bookings.
type City struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// Route connects two cities. BaseFare and DistanceFare are decimal strings
// (DECIMAL(8,2) in storage); fare math happens in utils.AddMoney.
type Route struct {
	ID                int64     `json:"id"`
	FromCityID        int64     `json:"fromCityId"`
	ToCityID          int64     `json:"toCityId"`
	Name              string    `json:"name"`
	Code              string    `json:"code"`
	Distance          string    `json:"distance"`
	EstimatedDuration int       `json:"estimatedDuration"` // minutes
	BaseFare          string    `json:"baseFare"`
	DistanceFare      string    `json:"distanceFare"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
}

// RouteWithCities embeds the resolved endpoints for API responses.
type RouteWithCities struct {
	Route
	FromCity City `json:"fromCity"`
	ToCity   City `json:"toCity"`
}

// Stop is a named point along a route. Order is strictly increasing within
// a route; EstimatedArrival is minutes from the route start.
type Stop struct {
	ID               int64  `json:"id"`
	RouteID          int64  `json:"routeId"`
	Name             string `json:"name"`
	Code             string `json:"code"`
	Latitude         string `json:"latitude,omitempty"`
	Longitude        string `json:"longitude,omitempty"`
	Order            int    `json:"order"`
	EstimatedArrival int    `json:"estimatedArrival"`
	FareFromStart    string `json:"fareFromStart"`
	IsActive         bool   `json:"isActive"`
}

// Vehicle carries an explicit seat layout. When SeatRows/SeatColumns are
// zero the layout degenerates to a single row labelled A1..A{Capacity}.
type Vehicle struct {
	ID                 int64     `json:"id"`
	RegistrationNumber string    `json:"registrationNumber"`
	Model              string    `json:"model"`
	Capacity           int       `json:"capacity"`
	SeatRows           int       `json:"seatRows,omitempty"`
	SeatColumns        int       `json:"seatColumns,omitempty"`
	Amenities          []string  `json:"amenities"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
}

type Driver struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	LicenseNumber string    `json:"licenseNumber"`
	Rating        string    `json:"rating"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SmsBookingCode maps a short dialable code to a route for SMS bookings.
type SmsBookingCode struct {
	ID          int64  `json:"id"`
	RouteID     int64  `json:"routeId"`
	Code        string `json:"code"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
}
