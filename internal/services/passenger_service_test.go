package services

import (
	"testing"

	"shuttlelink/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestRegisterReturnsExistingPassenger(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM passengers").WithArgs("9811111111").
		WillReturnRows(passengerRow(7, "9811111111"))

	svc := PassengerService{DB: db}
	p, err := svc.Register(PassengerInput{Name: "Asha", Phone: "98111 11111"})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if p.ID != 7 {
		t.Fatalf("expected existing passenger 7, got %d", p.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterCreatesNewPassenger(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM passengers").WithArgs("9822222222").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "email", "age", "preferred_language", "created_at"}))
	mock.ExpectExec("INSERT INTO passengers").
		WillReturnResult(sqlmock.NewResult(8, 1))
	mock.ExpectQuery("FROM passengers").WithArgs(int64(8)).
		WillReturnRows(passengerRow(8, "9822222222"))

	svc := PassengerService{DB: db}
	p, err := svc.Register(PassengerInput{Name: "Ravi", Phone: "9822222222", Age: 34})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if p.ID != 8 {
		t.Fatalf("expected passenger 8, got %d", p.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := PassengerService{}
	if _, err := svc.Register(PassengerInput{Phone: "9811111111"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}
	if _, err := svc.Register(PassengerInput{Name: "Asha"}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for missing phone, got %v", err)
	}
	if _, err := svc.Register(PassengerInput{Name: "Asha", Phone: "98", Age: 200}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for bad age, got %v", err)
	}
}
