// Command finashopping-mcp starts the FinaShopping MCP server.
//
// The root command serves the stdio transport (for MCP clients that spawn the
// server directly); `serve` starts the HTTP transport with the /mcp endpoint
// and a liveness check.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"finashopping-mcp/internal/backend"
	"finashopping-mcp/internal/config"
	"finashopping-mcp/internal/logging"
	"finashopping-mcp/internal/mcp"
)

var rootCmd = &cobra.Command{
	Use:   "finashopping-mcp",
	Short: "MCP server for the FinaShopping catalog of Uruguayan financial products",
	Long: `finashopping-mcp exposes loans, credit cards, insurance, rental guarantees,
and benefits from the FinaShopping backend as MCP tools, resources, and
prompts. Without a subcommand it speaks MCP over stdin/stdout.`,
	RunE: runStdio,
}

var stdioCmd = &cobra.Command{
	Use:   "stdio",
	Short: "Serve MCP over stdin/stdout",
	RunE:  runStdio,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP over HTTP (POST /mcp) with a /health liveness endpoint",
	RunE:  runHTTP,
}

func init() {
	rootCmd.AddCommand(stdioCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads config and builds the logger, backend client, and MCP server.
func setup() (*mcp.Server, *config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	client := backend.New(backend.Config{
		BaseURL:  cfg.APIURL,
		Username: cfg.ServiceUsername,
		Password: cfg.ServicePassword,
	}, nil, logger)

	if cfg.ServiceUsername == "" || cfg.ServicePassword == "" {
		logger.Warn("service credentials not set; authenticated backend calls will fail",
			zap.String("hint", "set FINASHOPPING_SERVICE_USERNAME and FINASHOPPING_SERVICE_PASSWORD"))
	}

	return mcp.NewServer(client, cfg.PromptLocale, logger), cfg, logger, nil
}

func runStdio(cmd *cobra.Command, args []string) error {
	srv, _, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := srv.StartStdio(context.Background()); err != nil {
		return fmt.Errorf("stdio server error: %w", err)
	}
	return nil
}

func runHTTP(cmd *cobra.Command, args []string) error {
	srv, cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := srv.StartHTTP(cfg.Port); err != nil {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
