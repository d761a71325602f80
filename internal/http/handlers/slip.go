package handlers

import (
	"net/http"
	"strconv"

	"ambulance/internal/http/middleware"
	"ambulance/internal/repositories"
	"ambulance/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /bookings/:id/slip
// Printable PDF slip for an owned booking.
func BookingSlip(c *gin.Context) {
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

	svc := services.SlipService{
		Bookings:  repositories.BookingRepository{},
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateSlip(principal, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
