package config

import (
	"os"
	"time"
)

var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "conduit-dev-secret-change-this-in-production"
	}
	JWTSecret = []byte(secret)
	JWTExpiration = 72 * time.Hour
}
