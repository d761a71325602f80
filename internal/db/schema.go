package db

import "database/sql"

// Execer is the subset of *sql.DB the migration needs; tests pass sqlmock.
type Execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Schema statements are create-if-absent so Migrate can run on every boot.
// email is VARCHAR(191) to stay under the utf8mb4 unique-index byte limit.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(100) NOT NULL,
		email VARCHAR(191) NOT NULL UNIQUE,
		password VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id INT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(100) NOT NULL,
		patient_name VARCHAR(100),
		pickup_location VARCHAR(100),
		destination VARCHAR(100),
		contact_number VARCHAR(20)
	)`,
	`CREATE TABLE IF NOT EXISTS contact_messages (
		id INT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100),
		email VARCHAR(191),
		message TEXT
	)`,
}

// Migrate creates the three application tables when absent.
func Migrate(db Execer) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
