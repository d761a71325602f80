package handlers

import (
	"net/http"

	"ambulance/internal/http/middleware"
	"ambulance/internal/repositories"
	"ambulance/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /contact
func SubmitContact(c *gin.Context) {
	svc := services.ContactService{
		Contacts:  repositories.ContactRepository{},
		RequestID: middleware.GetRequestID(c),
	}

	if err := svc.Submit(c.PostForm("name"), c.PostForm("email"), c.PostForm("message")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/?success=1")
}
