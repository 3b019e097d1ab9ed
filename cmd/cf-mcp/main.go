package main

import (
	"log/slog"
	"os"

	"github.com/lite-lake/cloudflare-mcp/internal/cli"
	"github.com/lite-lake/cloudflare-mcp/internal/logger"
)

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("CF_MCP_DEBUG") != "" {
		logLevel = slog.LevelDebug
	}

	logFormat := os.Getenv("CF_MCP_LOG_FORMAT")

	logger.Init(&logger.Config{
		Level:     logLevel,
		Format:    logFormat,
		AddSource: os.Getenv("CF_MCP_DEBUG") != "",
	})

	cli.Execute()
}
