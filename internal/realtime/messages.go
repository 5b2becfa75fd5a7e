package realtime

import "shuttlelink/internal/domain/models"

// Server-pushed event types.
const (
	EventNewBooking        = "new_booking"
	EventPaymentUpdate     = "payment_update"
	EventTrackingUpdate    = "tracking_update"
	EventPassengerLocation = "passenger_location"
)

// Client-sent message types.
const (
	MsgSubscribeTracking = "subscribe_tracking"
	MsgLocationUpdate    = "location_update"
)

// ClientMessage is the envelope for inbound websocket messages.
type ClientMessage struct {
	Type       string           `json:"type"`
	ScheduleID int64            `json:"scheduleId,omitempty"`
	BookingID  int64            `json:"bookingId,omitempty"`
	Location   *models.Location `json:"location,omitempty"`
}

type NewBookingEvent struct {
	Type    string         `json:"type"`
	Booking models.Booking `json:"booking"`
}

type PaymentUpdateEvent struct {
	Type          string `json:"type"`
	BookingID     int64  `json:"bookingId"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentStatus string `json:"paymentStatus"`
}

type TrackingUpdateEvent struct {
	Type       string          `json:"type"`
	ScheduleID int64           `json:"scheduleId"`
	Location   models.Location `json:"location"`
}

type PassengerLocationEvent struct {
	Type      string          `json:"type"`
	BookingID int64           `json:"bookingId"`
	Location  models.Location `json:"location"`
}
