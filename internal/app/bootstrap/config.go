// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for BarrierLog. These are
// loaded via WAFFLE's config system with support for:
//   - Config files: jotform_api_key, page_size, etc.
//   - Environment variables: BARRIERLOG_JOTFORM_API_KEY, etc.
//   - Command-line flags: --jotform_api_key, --page_size, etc.
var appConfigKeys = []config.AppKey{
	{Name: "jotform_api_key", Default: "", Desc: "JotForm API key (required)"},
	{Name: "jotform_form_id", Default: "", Desc: "JotForm form ID to fetch submissions from (required)"},
	{Name: "jotform_base_url", Default: "https://hipaa-api.jotform.com", Desc: "JotForm API base URL"},

	// Fetch policy
	{Name: "page_size", Default: 100, Desc: "Max submissions per request page"},
	{Name: "max_pages", Default: 10, Desc: "Bound on the paginated request sequence"},
	{Name: "fetch_timeout", Default: "15s", Desc: "Per-request HTTP timeout (e.g., 15s, 1m)"},
	{Name: "retry_max", Default: 2, Desc: "Retries after a transient network failure"},
	{Name: "retry_backoff", Default: "500ms", Desc: "Base retry backoff delay, grows linearly"},

	// UI
	{Name: "form_url", Default: "https://form.jotform.com/240215836883158", Desc: "Public link to the live barrier log form"},
	{Name: "charts_path", Default: "", Desc: "Path to a YAML chart config overriding the built-in set"},
}

// LoadConfig loads WAFFLE core config and app-specific config. It is
// called early in startup so that both WAFFLE and the app have access to
// configuration before the client or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "BARRIERLOG", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		JotFormAPIKey:  appValues.String("jotform_api_key"),
		JotFormFormID:  appValues.String("jotform_form_id"),
		JotFormBaseURL: appValues.String("jotform_base_url"),

		PageSize:     appValues.Int("page_size"),
		MaxPages:     appValues.Int("max_pages"),
		FetchTimeout: appValues.Duration("fetch_timeout", 15*time.Second),
		RetryMax:     appValues.Int("retry_max"),
		RetryBackoff: appValues.Duration("retry_backoff", 500*time.Millisecond),

		FormURL:    appValues.String("form_url"),
		ChartsPath: appValues.String("charts_path"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation. Credentials
// are required at startup; a missing API key or form ID aborts boot
// rather than failing on the first fetch.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.JotFormAPIKey == "" {
		return fmt.Errorf("jotform_api_key is required (set BARRIERLOG_JOTFORM_API_KEY)")
	}
	if appCfg.JotFormFormID == "" {
		return fmt.Errorf("jotform_form_id is required (set BARRIERLOG_JOTFORM_FORM_ID)")
	}
	if appCfg.PageSize <= 0 {
		return fmt.Errorf("page_size must be positive, got %d", appCfg.PageSize)
	}
	if appCfg.MaxPages <= 0 {
		return fmt.Errorf("max_pages must be positive, got %d", appCfg.MaxPages)
	}
	return nil
}
