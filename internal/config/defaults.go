package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-note-keeper",
			TokenDuration: 30 * time.Minute,
			BcryptCost:    bcrypt.DefaultCost,
			Version:       "dev",
			LogLevel:      "debug",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverPostgres,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"http://localhost:3000"},
		},
	}
}
