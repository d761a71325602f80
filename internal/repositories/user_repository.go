package repositories

import (
	"database/sql"
	"errors"

	intconfig "ambulance/internal/config"
	"ambulance/internal/domain"
	"ambulance/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

// MySQL error 1062: duplicate entry on a unique key.
const mysqlErrDuplicateEntry = 1062

// UserRepository wraps DB access for the users table.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts a user row. The UNIQUE key on email is the authority on
// duplicates; error 1062 is translated rather than pre-checked, so there is
// no check-then-insert race.
func (r UserRepository) Create(u models.User) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (username, email, password)
		VALUES (?, ?, ?)
	`, u.Username, u.Email, u.Password)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlErrDuplicateEntry {
			return 0, domain.ConflictError{Resource: "user", Msg: "email already registered", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

// GetByEmail loads a user including the stored password hash.
func (r UserRepository) GetByEmail(email string) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, username, email, password
		FROM users
		WHERE email = ?
		LIMIT 1
	`, email).Scan(&u.ID, &u.Username, &u.Email, &u.Password)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
		}
		return models.User{}, err
	}
	return u, nil
}
