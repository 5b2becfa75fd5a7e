package services

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "shuttlelink/internal/config"
	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/realtime"
	"shuttlelink/internal/repositories"
	"shuttlelink/internal/utils"

	"github.com/go-sql-driver/mysql"
)

// BookingService runs the seat allocation workflow. Seat safety rests on
// two storage-level guards inside one transaction: the uniq_schedule_seat
// key on bookings and the conditional available_seats decrement. Either
// failing rolls the whole booking back.
type BookingService struct {
	ScheduleRepo  repositories.ScheduleRepository
	BookingRepo   repositories.BookingRepository
	PassengerRepo repositories.PassengerRepository
	RouteRepo     repositories.RouteRepository
	Fare          FareService
	Notifier      Notifier
	RequestID     string
	DB            *sql.DB
	TokenFn       func() (string, error)
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) schedules() repositories.ScheduleRepository {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepository{DB: s.db()}
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s BookingService) passengers() repositories.PassengerRepository {
	if s.PassengerRepo.DB != nil {
		return s.PassengerRepo
	}
	return repositories.PassengerRepository{DB: s.db()}
}

func (s BookingService) routes() repositories.RouteRepository {
	if s.RouteRepo.DB != nil {
		return s.RouteRepo
	}
	return repositories.RouteRepository{DB: s.db()}
}

func (s BookingService) token() (string, error) {
	if s.TokenFn != nil {
		return s.TokenFn()
	}
	return utils.NewBookingToken()
}

// isDuplicateKey detects MySQL error 1062 behind any wrapping.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}

var bookingTypes = map[string]bool{
	models.BookingTypeApp:    true,
	models.BookingTypeSms:    true,
	models.BookingTypeWalkIn: true,
}

var paymentMethods = map[string]bool{
	models.PaymentMethodUpi:    true,
	models.PaymentMethodCard:   true,
	models.PaymentMethodWallet: true,
	models.PaymentMethodCash:   true,
}

// CreateBooking allocates one seat on a schedule. Of two concurrent calls
// for the same seat exactly one returns the booking; the other gets
// SeatUnavailableError.
func (s BookingService) CreateBooking(req models.BookingRequest) (models.Booking, error) {
	var none models.Booking

	seat := utils.NormalizeSeat(req.SeatNumber)
	if req.ScheduleID <= 0 {
		return none, domain.ValidationError{Field: "scheduleId", Msg: "required"}
	}
	if seat == "" {
		return none, domain.ValidationError{Field: "seatNumber", Msg: "required"}
	}
	if req.FromStopID <= 0 || req.ToStopID <= 0 {
		return none, domain.ValidationError{Field: "stops", Msg: "fromStopId and toStopId are required"}
	}
	if req.FromStopID == req.ToStopID {
		return none, domain.ValidationError{Field: "stops", Msg: "boarding and alighting stop must differ"}
	}
	bookingType := req.BookingType
	if bookingType == "" {
		bookingType = models.BookingTypeApp
	}
	if !bookingTypes[bookingType] {
		return none, domain.ValidationError{Field: "bookingType", Msg: "unknown booking type"}
	}
	if req.PaymentMethod != "" && !paymentMethods[req.PaymentMethod] {
		return none, domain.ValidationError{Field: "paymentMethod", Msg: "unknown payment method"}
	}

	sched, err := s.schedules().GetByID(req.ScheduleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return none, domain.NotFoundError{Resource: "schedule", Err: err}
		}
		return none, domain.InternalError{Err: err}
	}
	if sched.Status != models.ScheduleStatusScheduled {
		return none, domain.ConflictError{Resource: "schedule", Msg: "not open for booking"}
	}
	if !HasSeat(sched.Vehicle, seat) {
		return none, domain.SeatUnavailableError{SeatNumber: seat, Msg: "not on this vehicle"}
	}

	if err := s.checkStops(sched, req.FromStopID, req.ToStopID); err != nil {
		return none, err
	}

	// Friendly pre-check; the transaction below is the real guard.
	occupied, err := s.bookings().OccupiedSeats(req.ScheduleID)
	if err != nil {
		return none, domain.InternalError{Err: err}
	}
	if occupied[seat] {
		return none, domain.SeatUnavailableError{SeatNumber: seat}
	}

	passenger, err := s.resolvePassenger(req)
	if err != nil {
		return none, err
	}

	fare, err := s.Fare.ComputeRouteFare(sched.Route.Route)
	if err != nil {
		return none, err
	}
	qr, err := s.token()
	if err != nil {
		return none, domain.InternalError{Err: err}
	}

	paymentStatus := models.PaymentStatusPending
	booking := models.Booking{
		ScheduleID:    req.ScheduleID,
		PassengerID:   passenger.ID,
		FromStopID:    req.FromStopID,
		ToStopID:      req.ToStopID,
		SeatNumber:    seat,
		TotalFare:     fare,
		BookingType:   bookingType,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: paymentStatus,
		BookingStatus: models.BookingStatusConfirmed,
		QRCode:        qr,
	}

	tx, err := s.db().Begin()
	if err != nil {
		return none, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	id, err := s.bookings().Insert(tx, booking)
	if err != nil {
		if isDuplicateKey(err) {
			return none, domain.SeatUnavailableError{SeatNumber: seat, Err: err}
		}
		return none, domain.InternalError{Err: err}
	}

	ok, err := s.schedules().DecrementSeats(tx, req.ScheduleID)
	if err != nil {
		return none, domain.InternalError{Err: err}
	}
	if !ok {
		return none, domain.SeatUnavailableError{SeatNumber: seat, Msg: "schedule is full"}
	}

	if err := tx.Commit(); err != nil {
		return none, domain.InternalError{Err: err}
	}

	created, err := s.bookings().GetByID(id)
	if err != nil {
		// Committed; return what we know rather than failing the booking.
		booking.ID = id
		created = booking
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d schedule_id=%d seat=%s", created.ID, created.ScheduleID, created.SeatNumber))

	if s.Notifier != nil {
		s.Notifier.BroadcastAll(realtime.NewBookingEvent{
			Type:    realtime.EventNewBooking,
			Booking: created,
		})
	}
	return created, nil
}

// checkStops verifies both stops belong to the schedule's route and sit in
// travel order.
func (s BookingService) checkStops(sched models.ScheduleWithDetails, fromID, toID int64) error {
	from, err := s.routes().GetStop(fromID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "stop", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	to, err := s.routes().GetStop(toID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NotFoundError{Resource: "stop", Err: err}
		}
		return domain.InternalError{Err: err}
	}
	if from.RouteID != sched.RouteID || to.RouteID != sched.RouteID {
		return domain.ValidationError{Field: "stops", Msg: "stop is not on this route"}
	}
	if from.Order >= to.Order {
		return domain.ValidationError{Field: "stops", Msg: "boarding stop must precede alighting stop"}
	}
	return nil
}

// resolvePassenger finds or creates the passenger. The phone number is the
// dedup key: a concurrent create for the same number trips the unique key
// and we re-read the winner's row.
func (s BookingService) resolvePassenger(req models.BookingRequest) (models.Passenger, error) {
	var none models.Passenger
	if req.PassengerID > 0 {
		p, err := s.passengers().GetByID(req.PassengerID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return none, domain.NotFoundError{Resource: "passenger", Err: err}
			}
			return none, domain.InternalError{Err: err}
		}
		return p, nil
	}

	name := utils.TrimOrEmpty(req.PassengerName)
	phone := utils.NormalizePhone(req.PassengerPhone)
	if name == "" || phone == "" {
		return none, domain.ValidationError{Field: "passenger", Msg: "passengerId or passengerName+passengerPhone required"}
	}

	p, err := s.passengers().GetByPhone(phone)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return none, domain.InternalError{Err: err}
	}

	p, err = s.passengers().Create(name, phone, "", req.PassengerAge, "")
	if err != nil {
		if isDuplicateKey(err) {
			p, err = s.passengers().GetByPhone(phone)
			if err != nil {
				return none, domain.InternalError{Err: err}
			}
			return p, nil
		}
		return none, domain.InternalError{Err: err}
	}
	return p, nil
}

// CancelBooking flips a live booking to cancelled and returns its seat to
// the schedule's pool.
func (s BookingService) CancelBooking(id int64) (models.Booking, error) {
	var none models.Booking
	if id <= 0 {
		return none, domain.ValidationError{Field: "id", Msg: "invalid booking id"}
	}

	booking, err := s.bookings().GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return none, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return none, domain.InternalError{Err: err}
	}
	if booking.BookingStatus == models.BookingStatusCancelled {
		return none, domain.ConflictError{Resource: "booking", Msg: "already cancelled"}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return none, domain.InternalError{Err: err}
	}
	defer tx.Rollback()

	ok, err := s.bookings().Cancel(tx, id)
	if err != nil {
		return none, domain.InternalError{Err: err}
	}
	if !ok {
		return none, domain.ConflictError{Resource: "booking", Msg: "already cancelled"}
	}
	if err := s.schedules().IncrementSeats(tx, booking.ScheduleID); err != nil {
		return none, domain.InternalError{Err: err}
	}
	if err := tx.Commit(); err != nil {
		return none, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "cancel",
		fmt.Sprintf("booking_id=%d schedule_id=%d seat=%s", booking.ID, booking.ScheduleID, booking.SeatNumber))

	booking.BookingStatus = models.BookingStatusCancelled
	return booking, nil
}

func (s BookingService) GetBooking(id int64) (models.Booking, error) {
	b, err := s.bookings().GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return b, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return b, domain.InternalError{Err: err}
	}
	return b, nil
}

// ListForSchedule is the driver's passenger list.
func (s BookingService) ListForSchedule(scheduleID int64) ([]models.Booking, error) {
	if _, err := s.schedules().Get(scheduleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "schedule", Err: err}
		}
		return nil, domain.InternalError{Err: err}
	}
	out, err := s.bookings().ListBySchedule(scheduleID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s BookingService) ListForPassenger(passengerID int64) ([]models.Booking, error) {
	if _, err := s.passengers().GetByID(passengerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NotFoundError{Resource: "passenger", Err: err}
		}
		return nil, domain.InternalError{Err: err}
	}
	out, err := s.bookings().ListByPassenger(passengerID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s BookingService) ListAll() ([]models.Booking, error) {
	out, err := s.bookings().ListAll()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
