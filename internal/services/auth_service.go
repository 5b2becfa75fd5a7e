package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shuttlelink/internal/domain"
	"shuttlelink/internal/domain/models"
	"shuttlelink/internal/repositories"
	"shuttlelink/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// AuthService issues and validates HS256 session tokens.
type AuthService struct {
	UserRepo  repositories.UserRepository
	Secret    []byte
	RequestID string
	DB        *sql.DB
}

func (s AuthService) users() repositories.UserRepository {
	if s.UserRepo.DB != nil {
		return s.UserRepo
	}
	return repositories.UserRepository{DB: s.DB}
}

type LoginResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Login verifies the password and returns a signed token carrying the user
// id and role. Wrong login and wrong password are indistinguishable to the
// caller.
func (s AuthService) Login(login, password string) (LoginResult, error) {
	var none LoginResult
	login = utils.TrimOrEmpty(login)
	if login == "" || password == "" {
		return none, domain.ValidationError{Field: "credentials", Msg: "login and password are required"}
	}

	user, hash, err := s.users().GetByLogin(login)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return none, domain.NotFoundError{Resource: "user", Err: err}
		}
		return none, domain.InternalError{Err: err}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return none, domain.NotFoundError{Resource: "user", Err: err}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return none, domain.InternalError{Msg: "token signing failed", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", user.ID))
	return LoginResult{Token: signed, User: user}, nil
}

type RegisterInput struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

func (s AuthService) Register(in RegisterInput) (models.User, error) {
	var none models.User
	name := utils.TrimOrEmpty(in.Name)
	username := utils.TrimOrEmpty(in.Username)
	email := utils.TrimOrEmpty(in.Email)
	if name == "" || username == "" || email == "" {
		return none, domain.ValidationError{Field: "user", Msg: "name, username and email are required"}
	}
	if len(in.Password) < 8 {
		return none, domain.ValidationError{Field: "password", Msg: "must be at least 8 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return none, domain.InternalError{Msg: "password hashing failed", Err: err}
	}

	user, err := s.users().Create(name, username, email, utils.NormalizePhone(in.Phone), string(hash), models.RoleUser)
	if err != nil {
		if isDuplicateKey(err) {
			return none, domain.ConflictError{Resource: "user", Msg: "email or username already registered", Err: err}
		}
		return none, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("user_id=%d", user.ID))
	return user, nil
}

// ParseToken validates the signature and expiry and returns the embedded
// user id and role.
func (s AuthService) ParseToken(tokenString string) (int64, string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", domain.ValidationError{Field: "token", Msg: "invalid or expired", Err: err}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", domain.ValidationError{Field: "token", Msg: "malformed claims"}
	}
	uid, _ := claims["user_id"].(float64)
	role, _ := claims["role"].(string)
	if uid <= 0 || role == "" {
		return 0, "", domain.ValidationError{Field: "token", Msg: "malformed claims"}
	}
	return int64(uid), role, nil
}
