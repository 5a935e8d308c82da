package contract

import (
	"time"
)

// IConfigProvider exposes the configuration values usecases depend on.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetJWTExpiry() time.Duration
	GetCORSOrigin() string
	GetGoogleClientID() string
	GetGoogleClientSecret() string
}
