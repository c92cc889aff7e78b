// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/xunman0/BarrierLog/internal/app/resources"
	"github.com/xunman0/BarrierLog/internal/app/system/timeouts"
	"github.com/xunman0/BarrierLog/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the client is
// built, but before the HTTP handler. It loads shared templates, seeds
// the view-data defaults, and verifies that the configured form is
// actually reachable with the given credentials, so a bad API key fails
// at boot instead of on the first page load.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()
	viewdata.Init(appCfg.FormURL)

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()

	info, err := deps.JotForm.Form(pingCtx)
	if err != nil {
		// Do not abort boot on a transient outage; the dashboard shows
		// its own error state. Credential problems still surface loudly.
		logger.Warn("startup form check failed", zap.Error(err))
		return nil
	}

	logger.Info("connected to JotForm",
		zap.String("form", info.Title),
		zap.Int("submissions", info.SubmissionCount))
	return nil
}
