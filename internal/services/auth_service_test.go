package services

import (
	"testing"
	"time"

	"shuttlelink/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
)

func userRow(t *testing.T, password, role string) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	return sqlmock.NewRows([]string{
		"id", "name", "username", "email", "phone", "password_hash", "role", "status", "created_at",
	}).AddRow(3, "Admin", "admin", "admin@example.com", "", string(hash), role, "active", time.Now())
}

func TestLoginRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM users").WithArgs("admin", "admin").
		WillReturnRows(userRow(t, "hunter2-hunter2", "admin"))

	svc := AuthService{DB: db, Secret: []byte("test-secret")}
	result, err := svc.Login("admin", "hunter2-hunter2")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if result.Token == "" || result.User.Role != "admin" {
		t.Fatalf("unexpected result: %+v", result)
	}

	userID, role, err := svc.ParseToken(result.Token)
	if err != nil {
		t.Fatalf("parse token error: %v", err)
	}
	if userID != 3 || role != "admin" {
		t.Fatalf("claims = %d/%s", userID, role)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM users").WithArgs("admin", "admin").
		WillReturnRows(userRow(t, "correct-password", "admin"))

	svc := AuthService{DB: db, Secret: []byte("test-secret")}
	if _, err := svc.Login("admin", "wrong-password"); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	issuer := AuthService{Secret: []byte("issuer-secret"), DB: nil}
	verifier := AuthService{Secret: []byte("other-secret")}

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	issuer.DB = db

	mock.ExpectQuery("FROM users").WithArgs("admin", "admin").
		WillReturnRows(userRow(t, "hunter2-hunter2", "admin"))

	result, err := issuer.Login("admin", "hunter2-hunter2")
	if err != nil {
		t.Fatalf("login error: %v", err)
	}
	if _, _, err := verifier.ParseToken(result.Token); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := AuthService{}
	_, err := svc.Register(RegisterInput{
		Name: "A", Username: "a", Email: "a@example.com", Password: "short",
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
