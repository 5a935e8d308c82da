package mocks

import (
	"time"

	usecasecontract "github.com/wuddevdet/platform-api/internal/usecase/contract"
)

// MockConfig is a static config provider for handler tests.
type MockConfig struct {
	BaseURL      string
	JWTExpiry    time.Duration
	CORSOrigin   string
	GoogleID     string
	GoogleSecret string
}

var _ usecasecontract.IConfigProvider = (*MockConfig)(nil)

func NewMockConfig() *MockConfig {
	return &MockConfig{
		BaseURL:    "http://localhost:8080",
		JWTExpiry:  time.Hour,
		CORSOrigin: "*",
	}
}

func (m *MockConfig) GetAppBaseURL() string         { return m.BaseURL }
func (m *MockConfig) GetJWTExpiry() time.Duration   { return m.JWTExpiry }
func (m *MockConfig) GetCORSOrigin() string         { return m.CORSOrigin }
func (m *MockConfig) GetGoogleClientID() string     { return m.GoogleID }
func (m *MockConfig) GetGoogleClientSecret() string { return m.GoogleSecret }
