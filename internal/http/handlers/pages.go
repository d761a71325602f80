package handlers

import (
	"net/http"

	"ambulance/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// GET /
// Landing page: booking form plus the principal's own bookings when a
// session resolved. success/error query flags come from form redirects.
func Home(c *gin.Context) {
	principal := middleware.Principal(c)

	bookings, err := bookingService(c).ListOwn(principal)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"User":     principal,
		"Bookings": bookings,
		"Success":  c.Query("success") != "",
		"Error":    c.Query("error"),
	})
}
