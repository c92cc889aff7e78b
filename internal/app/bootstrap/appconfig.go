// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings (ports, TLS, logging level); AppConfig is
// everything specific to BarrierLog.
//
// The API credentials are expected to be present in the hosting
// environment's secret configuration at process start; absence is a
// startup-time configuration error, not a runtime fault.
type AppConfig struct {
	// JotForm API access
	JotFormAPIKey  string // API key for the submissions endpoint (secret)
	JotFormFormID  string // which form's submissions to fetch
	JotFormBaseURL string // API base URL (HIPAA endpoint by default)

	// Fetch policy
	PageSize     int           // max submissions per request page
	MaxPages     int           // bound on the paginated request sequence
	FetchTimeout time.Duration // per-request HTTP timeout
	RetryMax     int           // retries after a transient failure
	RetryBackoff time.Duration // base backoff delay, grows linearly

	// UI
	FormURL    string // public link to the live form, shown in page headers
	ChartsPath string // optional YAML overriding the embedded chart set
}
