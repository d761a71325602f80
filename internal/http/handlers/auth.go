package handlers

import (
	"net/http"

	"ambulance/internal/domain"
	"ambulance/internal/http/middleware"
	"ambulance/internal/repositories"
	"ambulance/internal/services"
	"ambulance/internal/session"

	"github.com/gin-gonic/gin"
)

var signer session.Signer

// SetSigner installs the session signer used by Login/Logout. Called once
// during router construction, before any request is served.
func SetSigner(s session.Signer) {
	signer = s
}

func setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetCookie(session.CookieName, value, maxAge, "/", "", false, true)
}

// POST /register
func Register(c *gin.Context) {
	svc := services.AuthService{
		Users:     repositories.UserRepository{},
		RequestID: middleware.GetRequestID(c),
	}

	_, err := svc.Register(c.PostForm("username"), c.PostForm("email"), c.PostForm("password"))
	switch {
	case err == nil:
		c.Redirect(http.StatusFound, "/")
	case domain.IsConflict(err):
		// Duplicate email is a recoverable condition for the form, not a
		// server error.
		c.Redirect(http.StatusFound, "/?error=user_exists")
	default:
		RespondDomainError(c, err)
	}
}

// POST /login
func Login(c *gin.Context) {
	svc := services.AuthService{
		Users:     repositories.UserRepository{},
		RequestID: middleware.GetRequestID(c),
	}

	principal, err := svc.Login(c.PostForm("email"), c.PostForm("password"))
	switch {
	case err == nil:
		token, signErr := signer.Issue(principal)
		if signErr != nil {
			respondError(c, http.StatusInternalServerError, "token_error", "failed to create session")
			return
		}
		setSessionCookie(c, token, int(session.TTL.Seconds()))
	case domain.IsUnauthorized(err):
		// Bad credentials fall through to the same redirect as success;
		// nothing discloses whether the email exists.
	default:
		RespondDomainError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// GET /logout
func Logout(c *gin.Context) {
	setSessionCookie(c, "", -1)
	c.Redirect(http.StatusFound, "/")
}
