package google

import "os"

// Default file locations, relative to the working directory unless
// overridden through the environment.
const (
	DefaultTokenPath          = "token.json"
	DefaultCredentialsPath    = "credentials.json"
	DefaultServiceAccountPath = "service_account.json"
)

// Config holds the inputs the credential resolver consults. All fields are
// optional; empty values disable the corresponding strategy.
type Config struct {
	// CredentialsConfig is a base64-encoded service-account key JSON
	// document, typically injected via the CREDENTIALS_CONFIG env var.
	CredentialsConfig string

	// TokenPath is the file the stored-user-token strategy reads and the
	// stored-token and interactive strategies persist to.
	TokenPath string

	// CredentialsPath points at the OAuth client secrets file used by the
	// interactive authorization flow.
	CredentialsPath string

	// ServiceAccountPath points at a service-account key file.
	ServiceAccountPath string
}

// ConfigFromEnv builds a Config from the environment, applying the
// documented defaults for unset paths.
func ConfigFromEnv() Config {
	return Config{
		CredentialsConfig:  os.Getenv("CREDENTIALS_CONFIG"),
		TokenPath:          envOrDefault("TOKEN_PATH", DefaultTokenPath),
		CredentialsPath:    envOrDefault("CREDENTIALS_PATH", DefaultCredentialsPath),
		ServiceAccountPath: envOrDefault("SERVICE_ACCOUNT_PATH", DefaultServiceAccountPath),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
