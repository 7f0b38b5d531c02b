package app

import (
	"time"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"meeting-insights/internal/api/server"
	v1routes "meeting-insights/internal/api/v1/routes"
	"meeting-insights/internal/api/v1/services"
	"meeting-insights/internal/app/flows"
	"meeting-insights/internal/app/insights"
	"meeting-insights/internal/app/llm"
	"meeting-insights/internal/app/metrics"
	"meeting-insights/internal/app/notify"
	"meeting-insights/internal/config"
)

// Pipeline bundles what the CLI needs to process and deliver results without the HTTP server
type Pipeline struct {
	Extractor *insights.Extractor
	Mailer    *notify.Mailer
	Metrics   *metrics.Metrics
}

// PipelineSet builds the extraction pipeline from configuration
var PipelineSet = wire.NewSet(
	provideRegistry,
	provideMetrics,
	provideGenerator,
	provideFlowOptions,
	flows.NewSet,
	provideExtractor,
	provideMailer,
	wire.Struct(new(Pipeline), "*"),
)

// ServerSet adds the HTTP layer on top of PipelineSet
var ServerSet = wire.NewSet(
	PipelineSet,
	provideServiceContainer,
	provideServerConfig,
	wire.Bind(new(prometheus.Gatherer), new(*prometheus.Registry)),
	server.NewServer,
)

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.New(reg)
}

// provideGenerator picks the model provider named in configuration; providers must be
// linked in with a blank import
func provideGenerator(cfg *config.Config) (llm.Generator, error) {
	return llm.New(cfg.LLM.ProviderConfig)
}

func provideFlowOptions(cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) flows.Options {
	return flows.Options{
		Timeout:  cfg.LLM.Timeout,
		Recorder: m,
		Logger:   logger,
	}
}

func provideExtractor(set *flows.Set, logger *zap.Logger, m *metrics.Metrics) *insights.Extractor {
	return insights.NewExtractor(set, logger, m)
}

func provideMailer(cfg *config.Config, logger *zap.Logger) *notify.Mailer {
	return notify.NewMailer(cfg.Mail.Notify(), nil, logger)
}

func provideServiceContainer(pipeline *Pipeline) *v1routes.ServiceContainer {
	return &v1routes.ServiceContainer{
		InsightsService:     services.NewInsightsService(pipeline.Extractor),
		ExportService:       services.NewExportService(pipeline.Metrics),
		NotificationService: services.NewNotificationService(pipeline.Mailer, pipeline.Metrics),
	}
}

func provideServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.LLM.Timeout + 30*time.Second,
		WriteTimeout:   2*cfg.LLM.Timeout + 30*time.Second,
		IdleTimeout:    120 * time.Second,
		Environment:    environment(cfg),
		MaxUploadBytes: cfg.Server.MaxUploadBytes(),
		CORSOrigins:    cfg.Server.CORSOrigins,
	}
}

func environment(cfg *config.Config) string {
	if cfg.Logging.Development {
		return "development"
	}
	return "production"
}
