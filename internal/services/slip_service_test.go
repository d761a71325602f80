package services

import (
	"bytes"
	"testing"

	"ambulance/internal/domain"
	"ambulance/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGenerateSlipForOwnedBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "username", "patient_name", "pickup_location", "destination", "contact_number"}
	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs(int64(7), "alice").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(7, "alice", "Bob", "A", "B", "123"))

	svc := SlipService{Bookings: repositories.BookingRepository{DB: db}}
	pdfBytes, filename, err := svc.GenerateSlip("alice", 7)
	if err != nil {
		t.Fatalf("slip error: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "BOOKING_SLIP_7.pdf" {
		t.Fatalf("filename = %q", filename)
	}
}

func TestGenerateSlipForeignBookingIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "username", "patient_name", "pickup_location", "destination", "contact_number"}
	mock.ExpectQuery("SELECT (.+) FROM bookings").
		WithArgs(int64(7), "mallory").
		WillReturnRows(sqlmock.NewRows(cols))

	svc := SlipService{Bookings: repositories.BookingRepository{DB: db}}
	if _, _, err := svc.GenerateSlip("mallory", 7); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestGenerateSlipUnauthenticated(t *testing.T) {
	svc := SlipService{}
	if _, _, err := svc.GenerateSlip("", 7); !domain.IsUnauthorized(err) {
		t.Fatalf("expected UnauthorizedError, got %v", err)
	}
}
