package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "ambulance/internal/config"
	h "ambulance/internal/http/handlers"
	"ambulance/internal/http/middleware"
	"ambulance/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	signer := session.Signer{Secret: []byte(env.SessionSecret)}
	h.SetSigner(signer)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.SessionAuth(signer),
		middleware.Logger(),
		gin.Recovery(),
		corsMiddleware(env),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.LoadHTMLGlob("web/templates/*.html")

	// Paths mirror the form actions the frontend already posts to.
	r.GET("/", h.Home)
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.POST("/contact", h.SubmitContact)
	r.POST("/book", h.CreateBooking)
	r.GET("/get_bookings", h.GetBookings)
	r.POST("/update_booking/:id", h.UpdateBooking)
	r.POST("/delete_booking/:id", h.DeleteBooking)
	r.GET("/bookings/:id/slip", h.BookingSlip)

	r.GET("/health", h.Health)
	r.GET("/db-check", h.DBCheck)

	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.Config{
		AllowOrigins:     env.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if len(cfg.AllowOrigins) == 0 {
		cfg.AllowOrigins = []string{
			"http://localhost:3000", "http://127.0.0.1:3000",
			"http://localhost:5173", "http://127.0.0.1:5173",
		}
	}
	return cors.New(cfg)
}
