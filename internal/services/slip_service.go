package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"ambulance/internal/domain"
	"ambulance/internal/domain/models"
	"ambulance/internal/repositories"
	"ambulance/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// SlipService renders a printable PDF slip for an owned booking. The lookup
// is (id, principal)-scoped like every other booking read.
type SlipService struct {
	Bookings  repositories.BookingRepository
	RequestID string
}

func (s SlipService) GenerateSlip(principal string, bookingID int64) ([]byte, string, error) {
	if strings.TrimSpace(principal) == "" {
		return nil, "", domain.UnauthorizedError{Op: "booking slip"}
	}

	b, err := s.Bookings.GetOwned(bookingID, principal)
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "slip", "generate", fmt.Sprintf("booking_id=%d", bookingID))
	return buildSlipPDF(b)
}

func buildSlipPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Ambulance Booking Slip", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "AMBULANCE BOOKING SLIP")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref  : AMB-%d", b.ID),
		fmt.Sprintf("Booked By    : %s", safe(b.Username)),
		fmt.Sprintf("Patient      : %s", safe(b.PatientName)),
		fmt.Sprintf("Pickup       : %s", safe(b.PickupLocation)),
		fmt.Sprintf("Destination  : %s", safe(b.Destination)),
		fmt.Sprintf("Contact      : %s", safe(b.ContactNumber)),
		fmt.Sprintf("Issued       : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Keep this slip ready for the crew on arrival. The contact number above is called when the ambulance is dispatched.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("BOOKING_SLIP_%d.pdf", b.ID)
	return buf.Bytes(), filename, nil
}

func safe(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
