package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lite-lake/cloudflare-mcp/internal/config"
	"github.com/lite-lake/cloudflare-mcp/internal/logger"
	"github.com/lite-lake/cloudflare-mcp/internal/tools"
	"github.com/lite-lake/cloudflare-mcp/internal/upstream"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over stdio",
		Long:  "Serve the Cloudflare tool surface over the MCP stdio transport.",
		Run: func(cmd *cobra.Command, args []string) {
			runServe()
		},
	}
}

func runServe() {
	cfg, err := config.Load(ConfigFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := upstream.NewClient(cfg.Credentials)
	server := tools.NewServer(client, Version)

	logger.Info("serving MCP over stdio", "version", Version)
	if err := server.Run(ctx); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
