package repositories

import (
	"database/sql"

	intconfig "shuttlelink/internal/config"
	intdb "shuttlelink/internal/db"
	"shuttlelink/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userSelect = `
	SELECT id, name, username, email, COALESCE(phone, ''), password_hash,
	       role, status, created_at
	FROM users`

func scanUser(row interface{ Scan(...any) error }) (models.User, string, error) {
	var u models.User
	var hash string
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &hash,
		&u.Role, &u.Status, &u.CreatedAt)
	return u, hash, err
}

// GetByLogin matches email or username and returns the stored hash for the
// caller to compare.
func (r UserRepository) GetByLogin(login string) (models.User, string, error) {
	return scanUser(r.db().QueryRow(userSelect+`
		WHERE email = ? OR username = ? LIMIT 1`, login, login))
}

func (r UserRepository) GetByID(id int64) (models.User, string, error) {
	return scanUser(r.db().QueryRow(userSelect+` WHERE id = ? LIMIT 1`, id))
}

// Create inserts a user with the given bcrypt hash. Unique keys on email
// and username reject duplicates.
func (r UserRepository) Create(name, username, email, phone, passwordHash, role string) (models.User, error) {
	if role == "" {
		role = models.RoleUser
	}
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status)
		VALUES (?, ?, ?, ?, ?, ?, 'active')`,
		name, username, email, intdb.NullIfEmpty(phone), passwordHash, role)
	if err != nil {
		return models.User{}, err
	}
	id, _ := res.LastInsertId()
	u, _, err := r.GetByID(id)
	return u, err
}
