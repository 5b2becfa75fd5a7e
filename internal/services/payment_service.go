package services

import (
	"database/sql"
	"errors"
	"fmt"

	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/realtime"
	"shuttlelink/internal/repositories"
	"shuttlelink/internal/utils"
)

// PaymentService records payment state changes. Actual gateway calls are
// out of scope; callers report the outcome.
type PaymentService struct {
	BookingRepo repositories.BookingRepository
	Notifier    Notifier
	RequestID   string
	DB          *sql.DB
}

func (s PaymentService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.DB}
}

var paymentStatuses = map[string]bool{
	models.PaymentStatusPending:   true,
	models.PaymentStatusCompleted: true,
	models.PaymentStatusFailed:    true,
}

// UpdatePayment sets the method and status on a live booking and fans the
// change out to connected clients.
func (s PaymentService) UpdatePayment(bookingID int64, method, status string) (models.Booking, error) {
	var none models.Booking
	if bookingID <= 0 {
		return none, domain.ValidationError{Field: "id", Msg: "invalid booking id"}
	}
	if !paymentMethods[method] {
		return none, domain.ValidationError{Field: "paymentMethod", Msg: "unknown payment method"}
	}
	if !paymentStatuses[status] {
		return none, domain.ValidationError{Field: "paymentStatus", Msg: "unknown payment status"}
	}

	booking, err := s.bookings().GetByID(bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return none, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return none, domain.InternalError{Err: err}
	}
	if booking.BookingStatus == models.BookingStatusCancelled {
		return none, domain.ConflictError{Resource: "booking", Msg: "cancelled bookings cannot be paid"}
	}

	if err := s.bookings().UpdatePayment(bookingID, method, status); err != nil {
		return none, domain.InternalError{Err: err}
	}
	booking.PaymentMethod = method
	booking.PaymentStatus = status

	utils.LogEvent(s.RequestID, "payment", "update",
		fmt.Sprintf("booking_id=%d method=%s status=%s", bookingID, method, status))

	if s.Notifier != nil {
		s.Notifier.BroadcastAll(realtime.PaymentUpdateEvent{
			Type:          realtime.EventPaymentUpdate,
			BookingID:     bookingID,
			PaymentMethod: method,
			PaymentStatus: status,
		})
	}
	return booking, nil
}
