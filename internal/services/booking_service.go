package services

import (
	"strconv"
	"strings"

	"ambulance/internal/domain"
	"ambulance/internal/domain/models"
	"ambulance/internal/repositories"
	"ambulance/internal/utils"
)

// BookingService enforces the session check and field validation in front of
// the ownership-scoped SQL in BookingRepository.
type BookingService struct {
	Bookings  repositories.BookingRepository
	RequestID string
}

// validateRide checks the four required ride fields.
func validateRide(b models.Booking) error {
	switch {
	case strings.TrimSpace(b.PatientName) == "":
		return domain.ValidationError{Field: "patient_name", Msg: "required"}
	case strings.TrimSpace(b.PickupLocation) == "":
		return domain.ValidationError{Field: "pickup_location", Msg: "required"}
	case strings.TrimSpace(b.Destination) == "":
		return domain.ValidationError{Field: "destination", Msg: "required"}
	case strings.TrimSpace(b.ContactNumber) == "":
		return domain.ValidationError{Field: "contact_number", Msg: "required"}
	}
	return nil
}

// Create inserts a booking owned by principal. Nothing is written when the
// principal is empty or a field is missing.
func (s BookingService) Create(principal string, b models.Booking) (models.Booking, error) {
	if strings.TrimSpace(principal) == "" {
		return models.Booking{}, domain.UnauthorizedError{Op: "create booking"}
	}
	if err := validateRide(b); err != nil {
		return models.Booking{}, err
	}

	b.Username = principal
	id, err := s.Bookings.Create(b)
	if err != nil {
		return models.Booking{}, err
	}
	b.ID = id

	utils.LogEvent(s.RequestID, "booking", "create", "id="+strconv.FormatInt(id, 10)+" owner="+principal)
	return b, nil
}

// ListOwn returns the principal's bookings. An empty principal yields an
// empty list, not an error.
func (s BookingService) ListOwn(principal string) ([]models.Booking, error) {
	if strings.TrimSpace(principal) == "" {
		return []models.Booking{}, nil
	}
	return s.Bookings.ListByOwner(principal)
}

// Update rewrites an owned booking. A foreign or missing id matches zero
// rows and still succeeds; callers cannot tell the two apart.
func (s BookingService) Update(principal string, id int64, b models.Booking) error {
	if strings.TrimSpace(principal) == "" {
		return domain.UnauthorizedError{Op: "update booking"}
	}
	if err := validateRide(b); err != nil {
		return err
	}

	if err := s.Bookings.UpdateOwned(id, principal, b); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "update", "id="+strconv.FormatInt(id, 10))
	return nil
}

// Delete removes an owned booking. Idempotent under the same zero-rows
// semantics as Update.
func (s BookingService) Delete(principal string, id int64) error {
	if strings.TrimSpace(principal) == "" {
		return domain.UnauthorizedError{Op: "delete booking"}
	}

	if err := s.Bookings.DeleteOwned(id, principal); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "booking", "delete", "id="+strconv.FormatInt(id, 10))
	return nil
}
