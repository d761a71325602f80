package repositories

import (
	"database/sql"

	intconfig "ambulance/internal/config"
	"ambulance/internal/domain"
	"ambulance/internal/domain/models"
)

// BookingRepository wraps DB access for the bookings table. Every mutating
// statement is scoped by (id, username); ownership lives in the WHERE
// clause, not in a separate authorization layer.
type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Create inserts a booking owned by b.Username.
func (r BookingRepository) Create(b models.Booking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings (username, patient_name, pickup_location, destination, contact_number)
		VALUES (?, ?, ?, ?, ?)
	`, b.Username, b.PatientName, b.PickupLocation, b.Destination, b.ContactNumber)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListByOwner returns every booking owned by username. Order is not part of
// the contract; newest-first matches what the UI shows.
func (r BookingRepository) ListByOwner(username string) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT id, username, patient_name, pickup_location, destination, contact_number
		FROM bookings
		WHERE username = ?
		ORDER BY id DESC
	`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.Username, &b.PatientName, &b.PickupLocation, &b.Destination, &b.ContactNumber); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// GetOwned loads one booking only when (id, username) matches.
func (r BookingRepository) GetOwned(id int64, username string) (models.Booking, error) {
	var b models.Booking
	err := r.db().QueryRow(`
		SELECT id, username, patient_name, pickup_location, destination, contact_number
		FROM bookings
		WHERE id = ? AND username = ?
		LIMIT 1
	`, id, username).Scan(&b.ID, &b.Username, &b.PatientName, &b.PickupLocation, &b.Destination, &b.ContactNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, err
	}
	return b, nil
}

// UpdateOwned rewrites the four ride fields when (id, username) matches.
// Zero rows matched is not an error: a foreign or missing id must be
// indistinguishable from a successful no-op.
func (r BookingRepository) UpdateOwned(id int64, username string, b models.Booking) error {
	_, err := r.db().Exec(`
		UPDATE bookings
		SET patient_name = ?, pickup_location = ?, destination = ?, contact_number = ?
		WHERE id = ? AND username = ?
	`, b.PatientName, b.PickupLocation, b.Destination, b.ContactNumber, id, username)
	return err
}

// DeleteOwned removes the booking when (id, username) matches. Idempotent;
// same zero-rows semantics as UpdateOwned.
func (r BookingRepository) DeleteOwned(id int64, username string) error {
	_, err := r.db().Exec(`
		DELETE FROM bookings
		WHERE id = ? AND username = ?
	`, id, username)
	return err
}
