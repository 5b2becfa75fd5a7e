package repositories

import (
	"database/sql"

	intconfig "shuttlelink/internal/config"
	intdb "shuttlelink/internal/db"
	"shuttlelink/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingSelect = `
	SELECT id, schedule_id, passenger_id, from_stop_id, to_stop_id,
	       seat_number, total_fare, booking_type,
	       COALESCE(payment_method, ''), payment_status, booking_status,
	       qr_code, created_at
	FROM bookings`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(&b.ID, &b.ScheduleID, &b.PassengerID, &b.FromStopID, &b.ToStopID,
		&b.SeatNumber, &b.TotalFare, &b.BookingType,
		&b.PaymentMethod, &b.PaymentStatus, &b.BookingStatus,
		&b.QRCode, &b.CreatedAt)
	return b, err
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	return scanBooking(r.db().QueryRow(bookingSelect+` WHERE id = ? LIMIT 1`, id))
}

func (r BookingRepository) list(query string, args ...any) ([]models.Booking, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BookingRepository) ListBySchedule(scheduleID int64) ([]models.Booking, error) {
	return r.list(bookingSelect+` WHERE schedule_id = ? ORDER BY seat_number ASC`, scheduleID)
}

func (r BookingRepository) ListByPassenger(passengerID int64) ([]models.Booking, error) {
	return r.list(bookingSelect+` WHERE passenger_id = ? ORDER BY created_at DESC`, passengerID)
}

func (r BookingRepository) ListAll() ([]models.Booking, error) {
	return r.list(bookingSelect + ` ORDER BY created_at DESC`)
}

// OccupiedSeats returns the seat numbers of live (non-cancelled) bookings
// for a schedule. Cancelled bookings free their seat.
func (r BookingRepository) OccupiedSeats(scheduleID int64) (map[string]bool, error) {
	rows, err := r.db().Query(`
		SELECT seat_number FROM bookings
		WHERE schedule_id = ? AND booking_status <> 'cancelled'`, scheduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]bool{}
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			return nil, err
		}
		out[seat] = true
	}
	return out, rows.Err()
}

// Insert writes the booking row inside the caller's transaction. The
// unique key uniq_schedule_seat rejects a second live booking for the same
// seat; the caller maps that duplicate-key error to SeatUnavailable.
func (r BookingRepository) Insert(tx *sql.Tx, b models.Booking) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO bookings
		(schedule_id, passenger_id, from_stop_id, to_stop_id, seat_number,
		 total_fare, booking_type, payment_method, payment_status, booking_status,
		 qr_code, seat_lock)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1)`,
		b.ScheduleID, b.PassengerID, b.FromStopID, b.ToStopID, b.SeatNumber,
		b.TotalFare, b.BookingType, intdb.NullIfEmpty(b.PaymentMethod), b.PaymentStatus, b.BookingStatus,
		b.QRCode)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Cancel flips the status and clears seat_lock so the unique key no longer
// holds the seat. Only live bookings are affected.
func (r BookingRepository) Cancel(tx *sql.Tx, id int64) (bool, error) {
	res, err := tx.Exec(`
		UPDATE bookings
		SET booking_status = 'cancelled', seat_lock = NULL
		WHERE id = ? AND booking_status <> 'cancelled'`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r BookingRepository) UpdatePayment(id int64, method, status string) error {
	_, err := r.db().Exec(`
		UPDATE bookings SET payment_method = ?, payment_status = ?
		WHERE id = ?`, method, status, id)
	return err
}
