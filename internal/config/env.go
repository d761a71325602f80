package config

import (
	"os"
	"strings"
)

type Env struct {
	AppAddr string
	GinMode string

	// MySQL connection pieces, named after the variables the hosting
	// platform injects.
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	// SessionSecret signs session tokens. Required outside debug mode.
	SessionSecret string

	CORSAllowedOrigins []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	dbPort := strings.TrimSpace(os.Getenv("MYSQLPORT"))
	if dbPort == "" {
		dbPort = "3306"
	}

	secret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if secret == "" {
		secret = "supersecret"
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}

	return Env{
		AppAddr:            appAddr,
		GinMode:            ginMode,
		DBHost:             strings.TrimSpace(os.Getenv("MYSQLHOST")),
		DBUser:             strings.TrimSpace(os.Getenv("MYSQLUSER")),
		DBPassword:         os.Getenv("MYSQLPASSWORD"),
		DBName:             strings.TrimSpace(os.Getenv("MYSQLDATABASE")),
		DBPort:             dbPort,
		SessionSecret:      secret,
		CORSAllowedOrigins: origins,
	}
}
