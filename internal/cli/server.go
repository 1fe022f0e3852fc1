package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/craftping/mc-status-go/internal/app"
	"github.com/craftping/mc-status-go/internal/config"
)

// NewServerCommand creates the server subcommand with Cobra.
// Starts in-memory workers if Redis not configured.
func NewServerCommand() *cobra.Command {
	var configPath string
	var redisURL string
	var host string
	var port string
	var maxWorkers int

	// Check config flags
	var checkTimeoutMs int
	var refreshInterval int

	// Rate limiting flags
	var rateLimitRPS int
	var rateLimitBurst int

	// Server timeout flags
	var readTimeout int
	var writeTimeout int
	var idleTimeout int

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the MC Status API server",
		Long:  `Start the MC Status API server and status page. Automatically starts in-memory workers if Redis is not configured.`,
		Example: `  # Start with default config
  mcstatus server

  # Start with Redis backend
  mcstatus server --redis redis://localhost:6379/0

  # Start with custom config
  mcstatus server --config /path/to/config.yaml

  # Start on custom host/port
  mcstatus server --host 0.0.0.0 --port 8080

  # Override the check timeout
  mcstatus server --check-timeout 5000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd, configPath, redisURL, host, port, maxWorkers,
				checkTimeoutMs, refreshInterval,
				rateLimitRPS, rateLimitBurst, readTimeout, writeTimeout, idleTimeout)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_PATH"), "Path to config file")
	cmd.Flags().StringVarP(&redisURL, "redis", "r", os.Getenv("REDIS_URL"), "Redis URL (optional, enables distributed workers)")
	cmd.Flags().StringVarP(&host, "host", "H", os.Getenv("MC_STATUS_HOST"), "Server host (default: from config or 0.0.0.0)")
	cmd.Flags().StringVarP(&port, "port", "P", os.Getenv("MC_STATUS_PORT"), "Server port (default: from config or 5000)")
	cmd.Flags().IntVar(&maxWorkers, "workers", 0, "Maximum number of workers (default: from config or 4)")

	// Check configuration
	cmd.Flags().IntVar(&checkTimeoutMs, "check-timeout", 0, "Status check timeout in milliseconds (default: from config or 2500)")
	cmd.Flags().IntVar(&refreshInterval, "refresh-interval", 0, "Status page auto-refresh interval in seconds (default: from config or 30)")

	// Rate limiting
	cmd.Flags().IntVar(&rateLimitRPS, "rate-limit-rps", 0, "Rate limit requests per second (0 = disable, default: from config or 10)")
	cmd.Flags().IntVar(&rateLimitBurst, "rate-limit-burst", 0, "Rate limit burst size (default: from config or 20)")

	// HTTP server timeouts
	cmd.Flags().IntVar(&readTimeout, "read-timeout", 0, "HTTP read timeout in seconds (default: from config or 15)")
	cmd.Flags().IntVar(&writeTimeout, "write-timeout", 0, "HTTP write timeout in seconds (default: from config or 15)")
	cmd.Flags().IntVar(&idleTimeout, "idle-timeout", 0, "HTTP idle timeout in seconds (default: from config or 60)")

	return cmd
}

func runServer(cmd *cobra.Command, configPath, redisURL, host, port string, maxWorkers,
	checkTimeoutMs, refreshInterval,
	rateLimitRPS, rateLimitBurst, readTimeout, writeTimeout, idleTimeout int) error {

	// Load config
	if configPath == "" {
		configPath = "conf/config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Apply basic overrides
	if host != "" {
		cfg.Server.Host = host
	}
	if port != "" {
		cfg.Server.Port = port
	}

	// Apply CLI flag overrides with defaults
	config.ApplyIntOverride(cmd.Flags().Changed("workers"), maxWorkers, &cfg.Worker.MaxWorkers, 4)
	config.ApplyIntOverride(cmd.Flags().Changed("check-timeout"), checkTimeoutMs, &cfg.Check.TimeoutMs, 2500)
	config.ApplyIntOverride(cmd.Flags().Changed("refresh-interval"), refreshInterval, &cfg.Check.RefreshInterval, 30)
	config.ApplyIntOverride(cmd.Flags().Changed("rate-limit-rps"), rateLimitRPS, &cfg.RateLimiting.RequestsPerSecond, 10)
	config.ApplyIntOverride(cmd.Flags().Changed("rate-limit-burst"), rateLimitBurst, &cfg.RateLimiting.BurstSize, 20)
	config.ApplyIntOverride(cmd.Flags().Changed("read-timeout"), readTimeout, &cfg.Server.ReadTimeout, 15)
	config.ApplyIntOverride(cmd.Flags().Changed("write-timeout"), writeTimeout, &cfg.Server.WriteTimeout, 15)
	config.ApplyIntOverride(cmd.Flags().Changed("idle-timeout"), idleTimeout, &cfg.Server.IdleTimeout, 60)

	config.ApplyStringOverride(host, &cfg.Server.Host, "0.0.0.0")
	config.ApplyStringOverride(port, &cfg.Server.Port, "5000")

	// Log configuration status
	if def, ok := cfg.GetDefaultServer(); ok {
		slog.Info("Configuration loaded", "path", configPath, "default_server", def.Host, "edition", def.Edition)
	} else {
		slog.Info("Configuration loaded", "path", configPath, "default_server", "none")
	}

	if redisURL == "" {
		slog.Info("Redis not configured - starting in memory mode (no task persistence)")
	} else {
		slog.Info("Redis configured", "url", redisURL)
	}

	// Create and start API app
	apiApp, err := app.NewAPIApp(cfg, redisURL)
	if err != nil {
		slog.Error("Failed to create API app", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := apiApp.Shutdown(context.Background()); err != nil {
			slog.Error("API app shutdown error", "error", err)
		}
	}()

	// Resolve address and start server
	if host == "" {
		host = cfg.GetServerHost()
	}
	if port == "" {
		port = cfg.GetServerPort()
	}
	addr := host + ":" + port

	go func() {
		slog.Info("Starting MC Status API server", "address", addr)
		if err := apiApp.Run(addr); err != nil {
			slog.Error("API app run failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return apiApp.Shutdown(ctx)
}
