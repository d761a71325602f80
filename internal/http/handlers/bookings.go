package handlers

import (
	"net/http"
	"strconv"

	"ambulance/internal/domain/models"
	"ambulance/internal/http/middleware"
	"ambulance/internal/repositories"
	"ambulance/internal/services"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Bookings:  repositories.BookingRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// bookingPayload is the JSON body for update_booking; the same four fields
// arrive as form values on /book.
type bookingPayload struct {
	PatientName    string `json:"patient_name"`
	PickupLocation string `json:"pickup_location"`
	Destination    string `json:"destination"`
	ContactNumber  string `json:"contact_number"`
}

func (p bookingPayload) booking() models.Booking {
	return models.Booking{
		PatientName:    p.PatientName,
		PickupLocation: p.PickupLocation,
		Destination:    p.Destination,
		ContactNumber:  p.ContactNumber,
	}
}

// POST /book
func CreateBooking(c *gin.Context) {
	principal := middleware.Principal(c)
	if principal == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	b := models.Booking{
		PatientName:    c.PostForm("patient_name"),
		PickupLocation: c.PostForm("pickup_location"),
		Destination:    c.PostForm("destination"),
		ContactNumber:  c.PostForm("contact_number"),
	}

	if _, err := bookingService(c).Create(principal, b); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/?success=1")
}

// GET /get_bookings
func GetBookings(c *gin.Context) {
	bookings, err := bookingService(c).ListOwn(middleware.Principal(c))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// POST /update_booking/:id
func UpdateBooking(c *gin.Context) {
	principal := middleware.Principal(c)
	if principal == "" {
		c.Status(http.StatusForbidden)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "invalid booking id")
		return
	}

	var req bookingPayload
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := bookingService(c).Update(principal, id, req.booking()); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /delete_booking/:id
func DeleteBooking(c *gin.Context) {
	principal := middleware.Principal(c)
	if principal == "" {
		c.Status(http.StatusForbidden)
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_id", "invalid booking id")
		return
	}

	if err := bookingService(c).Delete(principal, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
