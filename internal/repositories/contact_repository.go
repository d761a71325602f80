package repositories

import (
	"database/sql"

	intconfig "ambulance/internal/config"
	"ambulance/internal/domain/models"
)

// ContactRepository wraps DB access for contact_messages. Insert-only;
// the application never reads these back.
type ContactRepository struct {
	DB *sql.DB
}

func (r ContactRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ContactRepository) Create(m models.ContactMessage) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO contact_messages (name, email, message)
		VALUES (?, ?, ?)
	`, m.Name, m.Email, m.Message)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
