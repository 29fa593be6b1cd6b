package http

import (
	"time"
)

type Config struct {
	Address string `envconfig:"HTTP_ADDRESS" default:"localhost:8080"`

	// Timeout caps read and write per request; balance mutations retry
	// inside it, so keep it above the expected contention window.
	Timeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}
