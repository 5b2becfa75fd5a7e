package services

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"

	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/repositories"
	"shuttlelink/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the e-ticket PDF for a booking.
type DocsService struct {
	BookingRepo   repositories.BookingRepository
	ScheduleRepo  repositories.ScheduleRepository
	PassengerRepo repositories.PassengerRepository
	RouteRepo     repositories.RouteRepository
	RequestID     string
	DB            *sql.DB
	Loader        func(int64) (models.BookingWithDetails, error)
}

func (s DocsService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.DB}
}

func (s DocsService) schedules() repositories.ScheduleRepository {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepository{DB: s.DB}
}

func (s DocsService) passengers() repositories.PassengerRepository {
	if s.PassengerRepo.DB != nil {
		return s.PassengerRepo
	}
	return repositories.PassengerRepository{DB: s.DB}
}

func (s DocsService) routes() repositories.RouteRepository {
	if s.RouteRepo.DB != nil {
		return s.RouteRepo
	}
	return repositories.RouteRepository{DB: s.DB}
}

// GenerateETicket returns the PDF bytes and a download filename.
func (s DocsService) GenerateETicket(bookingID int64) ([]byte, string, error) {
	details, err := s.loadBookingDetails(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("booking_id=%d", bookingID))
	return buildETicketPDF(details)
}

func (s DocsService) loadBookingDetails(bookingID int64) (models.BookingWithDetails, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	var out models.BookingWithDetails

	booking, err := s.bookings().GetByID(bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return out, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return out, domain.InternalError{Err: err}
	}
	out.Booking = booking

	sched, err := s.schedules().GetByID(booking.ScheduleID)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	out.Schedule = sched

	passenger, err := s.passengers().GetByID(booking.PassengerID)
	if err != nil {
		return out, domain.InternalError{Err: err}
	}
	out.Passenger = passenger

	// Stops are best-effort on the ticket.
	if stop, err := s.routes().GetStop(booking.FromStopID); err == nil {
		out.FromStop = stop
	}
	if stop, err := s.routes().GetStop(booking.ToStopID); err == nil {
		out.ToStop = stop
	}
	return out, nil
}

func buildETicketPDF(d models.BookingWithDetails) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Passenger   : %s", safe(d.Passenger.Name, "-")),
		fmt.Sprintf("Phone       : %s", safe(d.Passenger.Phone, "-")),
		fmt.Sprintf("Seat        : %s", safe(d.SeatNumber, "-")),
		fmt.Sprintf("Route       : %s -> %s", safe(d.Schedule.Route.FromCity.Name, "-"), safe(d.Schedule.Route.ToCity.Name, "-")),
		fmt.Sprintf("Departure   : %s", d.Schedule.DepartureTime.Format("2006-01-02 15:04")),
		fmt.Sprintf("Boarding    : %s", safe(d.FromStop.Name, "-")),
		fmt.Sprintf("Alighting   : %s", safe(d.ToStop.Name, "-")),
		fmt.Sprintf("Vehicle     : %s (%s)", safe(d.Schedule.Vehicle.Model, "-"), safe(d.Schedule.Vehicle.RegistrationNumber, "-")),
		fmt.Sprintf("Driver      : %s", safe(d.Schedule.Driver.Name, "-")),
		fmt.Sprintf("Fare        : %s", safe(d.TotalFare, "-")),
		fmt.Sprintf("Payment     : %s / %s", safe(d.PaymentMethod, "-"), safe(d.PaymentStatus, "-")),
		fmt.Sprintf("Token       : %s", safe(d.QRCode, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Show this token to the boarding scanner.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "pdf render failed", Err: err}
	}
	name := fmt.Sprintf("eticket-%d.pdf", d.ID)
	return buf.Bytes(), name, nil
}

func safe(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
