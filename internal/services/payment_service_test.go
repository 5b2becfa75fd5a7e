package services

import (
	"testing"

	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/realtime"

	"github.com/DATA-DOG/go-sqlmock"
)

// recordingNotifier captures fan-out events for assertions.
type recordingNotifier struct {
	all      []any
	tracking map[int64][]any
}

func (n *recordingNotifier) BroadcastAll(event any) {
	n.all = append(n.all, event)
}

func (n *recordingNotifier) BroadcastTracking(scheduleID int64, event any) {
	if n.tracking == nil {
		n.tracking = map[int64][]any{}
	}
	n.tracking[scheduleID] = append(n.tracking[scheduleID], event)
}

func TestUpdatePaymentBroadcasts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings").WithArgs(int64(42)).
		WillReturnRows(bookingRow(42, models.BookingStatusConfirmed))
	mock.ExpectExec("UPDATE bookings SET payment_method").
		WithArgs("upi", "completed", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	notifier := &recordingNotifier{}
	svc := PaymentService{DB: db, Notifier: notifier}

	booking, err := svc.UpdatePayment(42, models.PaymentMethodUpi, models.PaymentStatusCompleted)
	if err != nil {
		t.Fatalf("update payment error: %v", err)
	}
	if booking.PaymentStatus != models.PaymentStatusCompleted {
		t.Fatalf("status = %s", booking.PaymentStatus)
	}
	if len(notifier.all) != 1 {
		t.Fatalf("expected 1 broadcast, got %d", len(notifier.all))
	}
	event, ok := notifier.all[0].(realtime.PaymentUpdateEvent)
	if !ok || event.Type != realtime.EventPaymentUpdate || event.BookingID != 42 {
		t.Fatalf("unexpected event: %+v", notifier.all[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdatePaymentRejectsUnknownMethod(t *testing.T) {
	if _, err := (PaymentService{}).UpdatePayment(42, "barter", models.PaymentStatusCompleted); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdatePaymentOnCancelledBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings").WithArgs(int64(42)).
		WillReturnRows(bookingRow(42, models.BookingStatusCancelled))

	svc := PaymentService{DB: db}
	if _, err := svc.UpdatePayment(42, models.PaymentMethodCash, models.PaymentStatusCompleted); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
