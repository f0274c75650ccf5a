package providers

import (
	"github.com/km-arc/go-board/framework/config"
	"github.com/km-arc/go-board/framework/container"
	gohttp "github.com/km-arc/go-board/framework/http"
	"github.com/km-arc/go-board/framework/metrics"
	"go.uber.org/zap"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider makes the loaded configuration injectable.
//
// Provides:
//   - *config.Config
type ConfigServiceProvider struct {
	container.BaseProvider
	Config *config.Config
}

func (p *ConfigServiceProvider) Register(catalog *container.Catalog) {
	catalog.Supply(p.Config, container.Component)
}

// ── LoggingServiceProvider ────────────────────────────────────────────────────

// LoggingServiceProvider makes the application logger injectable.
//
// Provides:
//   - *zap.Logger
type LoggingServiceProvider struct {
	container.BaseProvider
	Logger *zap.Logger
}

func (p *LoggingServiceProvider) Register(catalog *container.Catalog) {
	catalog.Supply(p.Logger, container.Component)
}

// ── WebServiceProvider ────────────────────────────────────────────────────────

// WebServiceProvider declares the WebConfiguration.
//
// Provides:
//   - gohttp.Codec               (WebConfiguration.Codec)
//   - *gohttp.ResponseBuilder    (WebConfiguration.ResponseBuilder)
type WebServiceProvider struct {
	container.BaseProvider
}

func (p *WebServiceProvider) Register(catalog *container.Catalog) {
	catalog.Declare(NewWebConfiguration, container.Configuration).
		Produces("Codec", "ResponseBuilder")
}

// WebConfiguration produces the codec and the response builder shared by
// the router and the controllers.
type WebConfiguration struct{}

func NewWebConfiguration() *WebConfiguration { return &WebConfiguration{} }

// Codec is the request/response codec.
func (w *WebConfiguration) Codec() gohttp.Codec {
	return gohttp.NewJSONCodec()
}

// ResponseBuilder builds success and error responses with codec.
func (w *WebConfiguration) ResponseBuilder(codec gohttp.Codec) *gohttp.ResponseBuilder {
	return gohttp.NewResponseBuilder(codec)
}

// ── ObservabilityServiceProvider ──────────────────────────────────────────────

// ObservabilityServiceProvider declares the ObservabilityConfiguration and
// publishes the singleton count once the context is up.
//
// Provides:
//   - *metrics.Metrics
type ObservabilityServiceProvider struct{}

func (p *ObservabilityServiceProvider) Register(catalog *container.Catalog) {
	catalog.Declare(NewObservabilityConfiguration, container.Configuration).
		Produces("Metrics")
}

func (p *ObservabilityServiceProvider) Boot(ctx *container.Context) error {
	m, err := container.Resolve[*metrics.Metrics](ctx)
	if err != nil {
		return err
	}
	m.SetSingletons(ctx.Registry().SingletonCount())
	return nil
}

// ObservabilityConfiguration produces the Prometheus metrics set.
type ObservabilityConfiguration struct{}

func NewObservabilityConfiguration() *ObservabilityConfiguration {
	return &ObservabilityConfiguration{}
}

// Metrics is namespaced by the application name.
func (o *ObservabilityConfiguration) Metrics(cfg *config.Config) *metrics.Metrics {
	return metrics.New(metrics.Namespace(cfg.App.Name))
}
