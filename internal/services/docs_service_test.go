package services

import (
	"bytes"
	"testing"
	"time"

	"shuttlelink/internal/domain/models"
)

func TestGenerateETicket(t *testing.T) {
	details := models.BookingWithDetails{
		Booking: models.Booking{
			ID:            42,
			SeatNumber:    "B2",
			TotalFare:     "90.00",
			PaymentMethod: "upi",
			PaymentStatus: "completed",
			QRCode:        "QR-test",
		},
		Passenger: models.Passenger{Name: "Asha", Phone: "9811111111"},
	}
	details.Schedule.DepartureTime = time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC)
	details.Schedule.Route.FromCity.Name = "Ranchi"
	details.Schedule.Route.ToCity.Name = "Bokaro"
	details.Schedule.Vehicle.Model = "Tata Starbus"
	details.Schedule.Vehicle.RegistrationNumber = "JH01 AB 1234"
	details.Schedule.Driver.Name = "Suresh"

	svc := DocsService{
		Loader: func(id int64) (models.BookingWithDetails, error) {
			if id != 42 {
				t.Fatalf("loader got id %d", id)
			}
			return details, nil
		},
	}

	pdf, name, err := svc.GenerateETicket(42)
	if err != nil {
		t.Fatalf("generate e-ticket error: %v", err)
	}
	if name != "eticket-42.pdf" {
		t.Fatalf("filename = %s", name)
	}
	if len(pdf) == 0 || !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF (%d bytes)", len(pdf))
	}
}
