package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/km-arc/go-board/framework/config"
	"github.com/km-arc/go-board/framework/container"
	gohttp "github.com/km-arc/go-board/framework/http"
	"github.com/km-arc/go-board/framework/logging"
	"github.com/km-arc/go-board/framework/metrics"
	"github.com/km-arc/go-board/framework/providers"
	"github.com/km-arc/go-board/framework/routing"
	"go.uber.org/zap"
)

// Application is the top-level application: configuration, logger, the
// component catalog and the context built from it. It plays the part of
// $app in Laravel's bootstrap/app.php.
//
//	application, err := app.New()
//	application.Register(&board.ServiceProvider{})
//	err = application.Run(ctx)
type Application struct {
	Config    *config.Config
	Logger    *zap.Logger
	Catalog   *container.Catalog
	Context   *container.Context
	Providers *container.ProviderRegistry

	routes  *routing.Table
	router  *routing.Router
	metrics *metrics.Metrics
	handler http.Handler
}

// New loads configuration from envFiles, builds the logger and registers the
// framework providers.
func New(envFiles ...string) (*Application, error) {
	cfg := config.Load(envFiles...)
	logger, err := logging.New(cfg)
	if err != nil {
		return nil, err
	}
	return NewWith(cfg, logger), nil
}

// NewWith is New with an explicit configuration and logger.
func NewWith(cfg *config.Config, logger *zap.Logger) *Application {
	if logger == nil {
		logger = zap.NewNop()
	}
	catalog := container.NewCatalog()
	a := &Application{
		Config:    cfg,
		Logger:    logger,
		Catalog:   catalog,
		Context:   container.NewContext(catalog, container.WithLogger(logger)),
		Providers: container.NewProviderRegistry(catalog),
		routes:    routing.NewTable(),
	}

	// Framework core providers, in dependency order
	_ = a.Providers.Register(&providers.ConfigServiceProvider{Config: cfg})
	_ = a.Providers.Register(&providers.LoggingServiceProvider{Logger: logger})
	_ = a.Providers.Register(&providers.WebServiceProvider{})
	_ = a.Providers.Register(&providers.ObservabilityServiceProvider{})
	return a
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Routes is the table of hand-written routes dispatched after the
// controller routes. Add to it before Boot.
func (a *Application) Routes() *routing.Table { return a.routes }

// Boot initializes the context, collects the controller routes, builds the
// router and runs every provider's Boot phase. Calling Boot again rebuilds
// everything from the catalog.
func (a *Application) Boot() error {
	a.Providers.Reset()
	if err := a.Context.Init(); err != nil {
		return err
	}

	collected, err := routing.CollectRoutes(a.Context, a.Logger)
	if err != nil {
		return err
	}
	builder, err := container.Resolve[*gohttp.ResponseBuilder](a.Context)
	if err != nil {
		return fmt.Errorf("app: response builder: %w", err)
	}
	m, err := container.Resolve[*metrics.Metrics](a.Context)
	if err != nil {
		return fmt.Errorf("app: metrics: %w", err)
	}

	table := routing.NewTable()
	table.Add(collected...)
	table.Get("/health", routing.NoArgHandler(func() (*gohttp.Response, error) {
		return builder.Success(gohttp.StatusOK, map[string]any{
			"status":     "UP",
			"singletons": a.Context.Registry().SingletonCount(),
		})
	}))
	table.Add(a.routes.Routes()...)

	a.router = routing.NewRouter(table.Routes(), builder,
		routing.WithLogger(a.Logger),
		routing.WithMaxBodyBytes(a.Config.HTTP.MaxBodyBytes),
	)
	a.metrics = m
	a.handler = a.transport()

	if err := a.Providers.Boot(a.Context); err != nil {
		return fmt.Errorf("app: boot providers: %w", err)
	}
	a.Logger.Info("application booted", zap.Int("routes", len(a.router.Routes())))
	return nil
}

// Booted reports whether Boot has completed.
func (a *Application) Booted() bool { return a.handler != nil && a.Context.Initialized() }

// Router returns the booted router, or nil before Boot.
func (a *Application) Router() *routing.Router { return a.router }

// Metrics returns the booted metrics set, or nil before Boot.
func (a *Application) Metrics() *metrics.Metrics { return a.metrics }

// Handler returns the full HTTP stack, or nil before Boot.
func (a *Application) Handler() http.Handler { return a.handler }

// transport wraps the router in the chi middleware stack and mounts the
// metrics endpoint and, in debug mode, the pprof profiler.
func (a *Application) transport() http.Handler {
	mux := chi.NewRouter()
	mux.Use(middleware.RealIP)
	mux.Use(RequestLogger(a.Logger))
	mux.Use(middleware.Recoverer)
	if a.Config.Metrics.Enabled {
		mux.Use(a.metrics.Middleware)
		mux.Handle(a.Config.Metrics.Path, a.metrics.Handler())
	}
	if a.IsDebug() {
		mux.Mount("/debug", middleware.Profiler())
	}
	mux.Handle("/*", a.router)
	return mux
}

// Run boots the application if needed and serves HTTP on APP_PORT until ctx
// is cancelled, then shuts down gracefully and closes the context.
func (a *Application) Run(ctx context.Context) error {
	if !a.Booted() {
		if err := a.Boot(); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:         a.Config.Addr(),
		Handler:      a.handler,
		ReadTimeout:  a.Config.HTTP.ReadTimeout,
		WriteTimeout: a.Config.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("http server listening",
			zap.String("addr", srv.Addr),
			zap.String("env", a.Environment()),
			zap.String("version", a.Version()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			_ = a.Close()
			return fmt.Errorf("app: serve: %w", err)
		}
	case <-ctx.Done():
	}

	a.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.HTTP.ShutdownTimeout)
	defer cancel()
	shutdownErr := srv.Shutdown(shutdownCtx)
	return errors.Join(shutdownErr, a.Close())
}

// Close releases the context's singletons.
func (a *Application) Close() error {
	a.handler = nil
	a.Providers.Reset()
	return a.Context.Close()
}

// Environment returns APP_ENV value.
func (a *Application) Environment() string { return a.Config.App.Env }

// IsDebug reports APP_DEBUG. Debug mode mounts the profiler under /debug.
func (a *Application) IsDebug() bool { return a.Config.App.Debug }

// Version is the application version reported at startup.
func (a *Application) Version() string { return "0.1.0" }

// ── Middleware ────────────────────────────────────────────────────────────────

// RequestLogger logs one line per request with status, size and latency.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	logger = logger.Named("http")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("request_id", ww.Header().Get(routing.RequestIDHeader)),
				zap.String("remote", r.RemoteAddr),
			)
		})
	}
}
