// Injectors matching the provider sets in wire.go. Running `wire` in this
// directory regenerates this file.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"go.uber.org/zap"

	"meeting-insights/internal/api/server"
	"meeting-insights/internal/app/flows"
	"meeting-insights/internal/config"
)

// Injectors from wire.go:

// InitializePipeline builds the extractor and mailer used by the CLI
func InitializePipeline(cfg *config.Config, logger *zap.Logger) (*Pipeline, error) {
	generator, err := provideGenerator(cfg)
	if err != nil {
		return nil, err
	}
	registry := provideRegistry()
	metricsMetrics := provideMetrics(registry)
	options := provideFlowOptions(cfg, metricsMetrics, logger)
	set := flows.NewSet(generator, options)
	extractor := provideExtractor(set, logger, metricsMetrics)
	mailer := provideMailer(cfg, logger)
	pipeline := &Pipeline{
		Extractor: extractor,
		Mailer:    mailer,
		Metrics:   metricsMetrics,
	}
	return pipeline, nil
}

// InitializeServer builds the HTTP server with every service wired
func InitializeServer(cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	serverConfig := provideServerConfig(cfg)
	generator, err := provideGenerator(cfg)
	if err != nil {
		return nil, err
	}
	registry := provideRegistry()
	metricsMetrics := provideMetrics(registry)
	options := provideFlowOptions(cfg, metricsMetrics, logger)
	set := flows.NewSet(generator, options)
	extractor := provideExtractor(set, logger, metricsMetrics)
	mailer := provideMailer(cfg, logger)
	pipeline := &Pipeline{
		Extractor: extractor,
		Mailer:    mailer,
		Metrics:   metricsMetrics,
	}
	serviceContainer := provideServiceContainer(pipeline)
	serverServer := server.NewServer(serverConfig, serviceContainer, registry, logger)
	return serverServer, nil
}
