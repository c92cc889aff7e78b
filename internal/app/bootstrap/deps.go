// internal/app/bootstrap/deps.go
package bootstrap

import (
	"context"

	"github.com/xunman0/BarrierLog/internal/jotform"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Deps holds the back-end dependencies for the app. BarrierLog has no
// database: its only backend is the JotForm API client.
type Deps struct {
	JotForm *jotform.Client
}

// ConnectDB builds the JotForm client from configuration. There is no
// connection to establish (the client is stateless HTTP), so this hook
// only wires config into the client.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	client := jotform.New(jotform.Config{
		BaseURL:      appCfg.JotFormBaseURL,
		APIKey:       appCfg.JotFormAPIKey,
		FormID:       appCfg.JotFormFormID,
		PageSize:     appCfg.PageSize,
		MaxPages:     appCfg.MaxPages,
		Timeout:      appCfg.FetchTimeout,
		RetryMax:     appCfg.RetryMax,
		RetryBackoff: appCfg.RetryBackoff,
	}, logger)

	return Deps{JotForm: client}, nil
}

// EnsureSchema is a no-op: the dataset is rebuilt from the live API on
// every fetch and nothing is persisted locally.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	return nil
}
