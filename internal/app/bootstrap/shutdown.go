// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown cleanly tears down the client. Nothing persists, so this
// only releases idle HTTP connections.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if deps.JotForm != nil {
		logger.Info("closing JotForm client")
		deps.JotForm.Close()
	}
	return nil
}
