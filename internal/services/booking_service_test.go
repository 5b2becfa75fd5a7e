package services

import (
	"testing"
	"time"

	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

var scheduleCols = []string{
	"s.id", "s.route_id", "s.vehicle_id", "s.driver_id",
	"s.departure_time", "s.arrival_time", "s.available_seats", "s.total_seats",
	"s.status", "s.created_at",
	"r.id", "r.from_city_id", "r.to_city_id", "r.name", "r.code",
	"r.distance", "r.estimated_duration", "r.base_fare", "r.distance_fare",
	"r.is_active", "r.created_at",
	"fc.id", "fc.name", "fc.code", "fc.is_active", "fc.created_at",
	"tc.id", "tc.name", "tc.code", "tc.is_active", "tc.created_at",
	"v.id", "v.registration_number", "v.model", "v.capacity", "v.seat_rows", "v.seat_columns",
	"v.amenities", "v.is_active", "v.created_at",
	"d.id", "d.name", "d.phone", "d.license_number", "d.rating", "d.is_active", "d.created_at",
}

func scheduleDetailRow(available int, status string) *sqlmock.Rows {
	now := time.Now()
	dep := now.Add(4 * time.Hour)
	return sqlmock.NewRows(scheduleCols).AddRow(
		1, 10, 20, 30,
		dep, dep.Add(2*time.Hour), available, 12,
		status, now,
		10, 100, 101, "Ranchi - Bokaro", "RAN-BOK",
		"85.00", 135, "75.00", "10.00",
		true, now,
		100, "Ranchi", "RAN", true, now,
		101, "Bokaro", "BOK", true, now,
		20, "JH01 AB 1234", "Tata Starbus", 12, 3, 4,
		`["wifi"]`, true, now,
		30, "Suresh", "9800000000", "JH-DL-42", "4.70", true, now,
	)
}

func stopRow(id, routeID int64, order int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "route_id", "name", "code", "latitude", "longitude",
		"stop_order", "estimated_arrival", "fare_from_start", "is_active",
	}).AddRow(id, routeID, "Stop", "STP", "", "", order, order*15, "0.00", true)
}

func passengerRow(id int64, phone string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "phone", "email", "age", "preferred_language", "created_at",
	}).AddRow(id, "Asha", phone, "", 0, "en", time.Now())
}

func bookingRow(id int64, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "schedule_id", "passenger_id", "from_stop_id", "to_stop_id",
		"seat_number", "total_fare", "booking_type", "payment_method",
		"payment_status", "booking_status", "qr_code", "created_at",
	}).AddRow(id, 1, 7, 2, 3, "B2", "90.00", "app", "", "pending", status, "QR-test", time.Now())
}

func fixedToken() (string, error) { return "QR-test", nil }

func TestCreateBookingAllocatesSeat(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM schedules s").WithArgs(int64(1)).
		WillReturnRows(scheduleDetailRow(5, models.ScheduleStatusScheduled))
	mock.ExpectQuery("FROM stops").WithArgs(int64(2)).
		WillReturnRows(stopRow(2, 10, 1))
	mock.ExpectQuery("FROM stops").WithArgs(int64(3)).
		WillReturnRows(stopRow(3, 10, 3))
	mock.ExpectQuery("SELECT seat_number FROM bookings").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"seat_number"}).AddRow("A1"))
	mock.ExpectQuery("FROM passengers").WithArgs(int64(7)).
		WillReturnRows(passengerRow(7, "9811111111"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("SET available_seats = available_seats - 1").WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM bookings").WithArgs(int64(42)).
		WillReturnRows(bookingRow(42, models.BookingStatusConfirmed))

	svc := BookingService{DB: db, TokenFn: fixedToken}
	booking, err := svc.CreateBooking(models.BookingRequest{
		ScheduleID:  1,
		PassengerID: 7,
		FromStopID:  2,
		ToStopID:    3,
		SeatNumber:  "b2",
	})
	if err != nil {
		t.Fatalf("create booking error: %v", err)
	}
	if booking.ID != 42 {
		t.Fatalf("expected booking id 42, got %d", booking.ID)
	}
	if booking.TotalFare != "90.00" {
		t.Fatalf("expected fare 90.00, got %s", booking.TotalFare)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingSeatTakenUnderRace(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM schedules s").WithArgs(int64(1)).
		WillReturnRows(scheduleDetailRow(5, models.ScheduleStatusScheduled))
	mock.ExpectQuery("FROM stops").WithArgs(int64(2)).
		WillReturnRows(stopRow(2, 10, 1))
	mock.ExpectQuery("FROM stops").WithArgs(int64(3)).
		WillReturnRows(stopRow(3, 10, 3))
	// Snapshot looks free; the unique key catches the losing writer.
	mock.ExpectQuery("SELECT seat_number FROM bookings").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"seat_number"}))
	mock.ExpectQuery("FROM passengers").WithArgs(int64(7)).
		WillReturnRows(passengerRow(7, "9811111111"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "duplicate entry"})
	mock.ExpectRollback()

	svc := BookingService{DB: db, TokenFn: fixedToken}
	_, err = svc.CreateBooking(models.BookingRequest{
		ScheduleID:  1,
		PassengerID: 7,
		FromStopID:  2,
		ToStopID:    3,
		SeatNumber:  "B2",
	})
	if !domain.IsSeatUnavailable(err) {
		t.Fatalf("expected SeatUnavailable, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingFullScheduleRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM schedules s").WithArgs(int64(1)).
		WillReturnRows(scheduleDetailRow(1, models.ScheduleStatusScheduled))
	mock.ExpectQuery("FROM stops").WithArgs(int64(2)).
		WillReturnRows(stopRow(2, 10, 1))
	mock.ExpectQuery("FROM stops").WithArgs(int64(3)).
		WillReturnRows(stopRow(3, 10, 3))
	mock.ExpectQuery("SELECT seat_number FROM bookings").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"seat_number"}))
	mock.ExpectQuery("FROM passengers").WithArgs(int64(7)).
		WillReturnRows(passengerRow(7, "9811111111"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectExec("SET available_seats = available_seats - 1").WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	svc := BookingService{DB: db, TokenFn: fixedToken}
	_, err = svc.CreateBooking(models.BookingRequest{
		ScheduleID:  1,
		PassengerID: 7,
		FromStopID:  2,
		ToStopID:    3,
		SeatNumber:  "B2",
	})
	if !domain.IsSeatUnavailable(err) {
		t.Fatalf("expected SeatUnavailable, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingRejectsUnknownSeat(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// Vehicle has 3 rows x 4 columns; there is no row Z.
	mock.ExpectQuery("FROM schedules s").WithArgs(int64(1)).
		WillReturnRows(scheduleDetailRow(5, models.ScheduleStatusScheduled))

	svc := BookingService{DB: db, TokenFn: fixedToken}
	_, err = svc.CreateBooking(models.BookingRequest{
		ScheduleID:  1,
		PassengerID: 7,
		FromStopID:  2,
		ToStopID:    3,
		SeatNumber:  "Z9",
	})
	if !domain.IsSeatUnavailable(err) {
		t.Fatalf("expected SeatUnavailable, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingDedupsPassengerByPhone(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM schedules s").WithArgs(int64(1)).
		WillReturnRows(scheduleDetailRow(5, models.ScheduleStatusScheduled))
	mock.ExpectQuery("FROM stops").WithArgs(int64(2)).
		WillReturnRows(stopRow(2, 10, 1))
	mock.ExpectQuery("FROM stops").WithArgs(int64(3)).
		WillReturnRows(stopRow(3, 10, 3))
	mock.ExpectQuery("SELECT seat_number FROM bookings").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"seat_number"}))

	// Lookup misses, the insert loses a concurrent race, second lookup wins.
	mock.ExpectQuery("FROM passengers").WithArgs("9811111111").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "email", "age", "preferred_language", "created_at"}))
	mock.ExpectExec("INSERT INTO passengers").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "duplicate entry"})
	mock.ExpectQuery("FROM passengers").WithArgs("9811111111").
		WillReturnRows(passengerRow(7, "9811111111"))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(43, 1))
	mock.ExpectExec("SET available_seats = available_seats - 1").WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("FROM bookings").WithArgs(int64(43)).
		WillReturnRows(bookingRow(43, models.BookingStatusConfirmed))

	svc := BookingService{DB: db, TokenFn: fixedToken}
	booking, err := svc.CreateBooking(models.BookingRequest{
		ScheduleID:     1,
		PassengerName:  "Asha",
		PassengerPhone: "98111 11111",
		FromStopID:     2,
		ToStopID:       3,
		SeatNumber:     "B2",
	})
	if err != nil {
		t.Fatalf("create booking error: %v", err)
	}
	if booking.PassengerID != 7 {
		t.Fatalf("expected deduped passenger 7, got %d", booking.PassengerID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelBookingFreesSeat(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings").WithArgs(int64(42)).
		WillReturnRows(bookingRow(42, models.BookingStatusConfirmed))
	mock.ExpectBegin()
	mock.ExpectExec("SET booking_status = 'cancelled'").WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("SET available_seats = available_seats \\+ 1").WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := BookingService{DB: db}
	booking, err := svc.CancelBooking(42)
	if err != nil {
		t.Fatalf("cancel error: %v", err)
	}
	if booking.BookingStatus != models.BookingStatusCancelled {
		t.Fatalf("expected cancelled, got %s", booking.BookingStatus)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelBookingTwiceConflicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM bookings").WithArgs(int64(42)).
		WillReturnRows(bookingRow(42, models.BookingStatusCancelled))

	svc := BookingService{DB: db}
	if _, err := svc.CancelBooking(42); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
