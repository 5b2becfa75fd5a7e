package services

import (
	"database/sql"
	"errors"
	"fmt"

	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/repositories"
	"shuttlelink/internal/utils"
)

// PassengerService handles self-registration. Phone numbers are the
// identity key, so registering an existing number returns the existing
// row instead of erroring.
type PassengerService struct {
	PassengerRepo repositories.PassengerRepository
	RequestID     string
	DB            *sql.DB
}

func (s PassengerService) passengers() repositories.PassengerRepository {
	if s.PassengerRepo.DB != nil {
		return s.PassengerRepo
	}
	return repositories.PassengerRepository{DB: s.DB}
}

type PassengerInput struct {
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Email             string `json:"email,omitempty"`
	Age               int    `json:"age,omitempty"`
	PreferredLanguage string `json:"preferredLanguage,omitempty"`
}

func (s PassengerService) Register(in PassengerInput) (models.Passenger, error) {
	var none models.Passenger
	name := utils.TrimOrEmpty(in.Name)
	phone := utils.NormalizePhone(in.Phone)
	if name == "" {
		return none, domain.ValidationError{Field: "name", Msg: "required"}
	}
	if phone == "" {
		return none, domain.ValidationError{Field: "phone", Msg: "required"}
	}
	if in.Age < 0 || in.Age > 120 {
		return none, domain.ValidationError{Field: "age", Msg: "out of range"}
	}

	if p, err := s.passengers().GetByPhone(phone); err == nil {
		return p, nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return none, domain.InternalError{Err: err}
	}

	p, err := s.passengers().Create(name, phone, utils.TrimOrEmpty(in.Email), in.Age, in.PreferredLanguage)
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

	utils.LogEvent(s.RequestID, "passenger", "register",
		fmt.Sprintf("passenger_id=%d", p.ID))
	return p, nil
}

func (s PassengerService) GetPassenger(id int64) (models.Passenger, error) {
	p, err := s.passengers().GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, domain.NotFoundError{Resource: "passenger", Err: err}
		}
		return p, domain.InternalError{Err: err}
	}
	return p, nil
}
