package models

import "time"

// Booking type, payment and status values.
const (
	BookingTypeApp    = "app"
	BookingTypeSms    = "sms"
	BookingTypeWalkIn = "walk-in"

	PaymentMethodUpi    = "upi"
	PaymentMethodCard   = "card"
	PaymentMethodWallet = "wallet"
	PaymentMethodCash   = "cash"

	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"

	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Passenger struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email,omitempty"`
	Age               int       `json:"age,omitempty"`
	PreferredLanguage string    `json:"preferredLanguage"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Booking reserves one seat on one schedule. QRCode is an opaque random
// token shown to the scanner as proof of booking.
type Booking struct {
	ID            int64     `json:"id"`
	ScheduleID    int64     `json:"scheduleId"`
	PassengerID   int64     `json:"passengerId"`
	FromStopID    int64     `json:"fromStopId"`
	ToStopID      int64     `json:"toStopId"`
	SeatNumber    string    `json:"seatNumber"`
	TotalFare     string    `json:"totalFare"`
	BookingType   string    `json:"bookingType"`
	PaymentMethod string    `json:"paymentMethod,omitempty"`
	PaymentStatus string    `json:"paymentStatus"`
	BookingStatus string    `json:"bookingStatus"`
	QRCode        string    `json:"qrCode"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BookingWithDetails resolves the referenced rows for driver lists and
// admin views.
type BookingWithDetails struct {
	Booking
	Schedule  ScheduleWithDetails `json:"schedule"`
	Passenger Passenger           `json:"passenger"`
	FromStop  Stop                `json:"fromStop"`
	ToStop    Stop                `json:"toStop"`
}

// BookingRequest is the POST /bookings payload. Either PassengerID or the
// passenger fields must be present; the phone number is the dedup key.
type BookingRequest struct {
	ScheduleID     int64  `json:"scheduleId"`
	PassengerID    int64  `json:"passengerId,omitempty"`
	PassengerName  string `json:"passengerName,omitempty"`
	PassengerPhone string `json:"passengerPhone,omitempty"`
	PassengerAge   int    `json:"passengerAge,omitempty"`
	FromStopID     int64  `json:"fromStopId"`
	ToStopID       int64  `json:"toStopId"`
	SeatNumber     string `json:"seatNumber"`
	BookingType    string `json:"bookingType"`
	PaymentMethod  string `json:"paymentMethod,omitempty"`
}

type Feedback struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"bookingId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
