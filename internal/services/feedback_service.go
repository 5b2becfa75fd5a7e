package services

import (
	"database/sql"
	"errors"

	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/repositories"
	"shuttlelink/internal/utils"
)

type FeedbackService struct {
	FeedbackRepo repositories.FeedbackRepository
	BookingRepo  repositories.BookingRepository
	DB           *sql.DB
}

func (s FeedbackService) feedback() repositories.FeedbackRepository {
	if s.FeedbackRepo.DB != nil {
		return s.FeedbackRepo
	}
	return repositories.FeedbackRepository{DB: s.DB}
}

func (s FeedbackService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.DB}
}

// Submit stores a rating for a completed trip's booking.
func (s FeedbackService) Submit(bookingID int64, rating int, comment string) (models.Feedback, error) {
	var none models.Feedback
	if bookingID <= 0 {
		return none, domain.ValidationError{Field: "bookingId", Msg: "required"}
	}
	if rating < 1 || rating > 5 {
		return none, domain.ValidationError{Field: "rating", Msg: "must be between 1 and 5"}
	}

	if _, err := s.bookings().GetByID(bookingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return none, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return none, domain.InternalError{Err: err}
	}

	fb, err := s.feedback().Insert(bookingID, rating, utils.TrimOrEmpty(comment))
	if err != nil {
		return none, domain.InternalError{Err: err}
	}
	return fb, nil
}

func (s FeedbackService) ListAll() ([]models.Feedback, error) {
	out, err := s.feedback().ListAll()
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
