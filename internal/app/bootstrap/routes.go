// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	aboutfeature "github.com/xunman0/BarrierLog/internal/app/features/about"
	dashboardfeature "github.com/xunman0/BarrierLog/internal/app/features/dashboard"
	errorsfeature "github.com/xunman0/BarrierLog/internal/app/features/errors"
	healthfeature "github.com/xunman0/BarrierLog/internal/app/features/health"
	homefeature "github.com/xunman0/BarrierLog/internal/app/features/home"
	submissionsfeature "github.com/xunman0/BarrierLog/internal/app/features/submissions"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	// Feature views register their template sets at init time.
	_ "github.com/xunman0/BarrierLog/internal/app/features/about/views"
	_ "github.com/xunman0/BarrierLog/internal/app/features/dashboard/views"
	_ "github.com/xunman0/BarrierLog/internal/app/features/home/views"
	_ "github.com/xunman0/BarrierLog/internal/app/features/submissions/views"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app. WAFFLE calls this after configuration, client setup, and
// Startup have completed.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup. Dev mode
	// enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Chart configuration is static for the life of the process.
	charts, err := dashboardfeature.LoadCharts(appCfg.ChartsPath)
	if err != nil {
		logger.Error("chart config load failed", zap.Error(err))
		return nil, err
	}

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.JotForm, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Landing page
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	aboutHandler := aboutfeature.NewHandler(deps.JotForm, errLog, logger)
	r.Mount("/about", aboutfeature.Routes(aboutHandler))

	// The dashboard: fetch, aggregate, chart
	dashboardHandler := dashboardfeature.NewHandler(deps.JotForm, charts, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	// Raw data table and CSV download
	subsHandler := submissionsfeature.NewHandler(deps.JotForm, errLog, logger)
	r.Mount("/submissions", submissionsfeature.Routes(subsHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
