//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"meeting-insights/internal/api/server"
	"meeting-insights/internal/config"
)

// InitializePipeline builds the extractor and mailer used by the CLI
func InitializePipeline(cfg *config.Config, logger *zap.Logger) (*Pipeline, error) {
	wire.Build(PipelineSet)
	return &Pipeline{}, nil
}

// InitializeServer builds the HTTP server with every service wired
func InitializeServer(cfg *config.Config, logger *zap.Logger) (*server.Server, error) {
	wire.Build(ServerSet)
	return &server.Server{}, nil
}
