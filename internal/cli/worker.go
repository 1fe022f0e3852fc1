package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/craftping/mc-status-go/internal/checker"
	"github.com/craftping/mc-status-go/internal/config"
	"github.com/craftping/mc-status-go/internal/tasks"
)

// NewWorkerCommand creates the 'worker' subcommand for running standalone Redis workers
func NewWorkerCommand() *cobra.Command {
	var configPath string
	var redisURL string
	var concurrency int
	var metricsPort int
	var enableMetrics bool
	var checkTimeoutMs int
	var resultTTL time.Duration

	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Start a standalone MC Status worker",
		Long:  `Start a standalone MC Status worker that processes status check tasks from the Redis queue. Requires Redis to be configured.`,
		Example: `  # Start worker with default settings
  mcstatus worker --redis redis://localhost:6379/0

  # Start worker with custom concurrency
  mcstatus worker --redis redis://localhost:6379/0 --concurrency 8

  # Start worker with metrics enabled (useful for single worker or dev)
  mcstatus worker --config /path/to/config.yaml --redis redis://localhost:6379/0 --enable-metrics

  # Override the check timeout
  mcstatus worker --redis redis://localhost:6379/0 --check-timeout 5000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorker(cmd, configPath, redisURL, concurrency, metricsPort, enableMetrics, checkTimeoutMs, resultTTL)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", os.Getenv("CONFIG_PATH"), "Path to config file")
	cmd.Flags().StringVarP(&redisURL, "redis", "r", os.Getenv("REDIS_URL"), "Redis URL (required)")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "n", 4, "Number of concurrent workers")
	cmd.Flags().IntVarP(&metricsPort, "metrics-port", "m", 9091, "Port for Prometheus metrics endpoint (if enabled)")
	cmd.Flags().BoolVarP(&enableMetrics, "enable-metrics", "M", false, "Enable metrics HTTP endpoint (useful for single worker, avoid port conflicts with multiple workers)")
	cmd.Flags().IntVar(&checkTimeoutMs, "check-timeout", 0, "Status check timeout in milliseconds (default: from config or 2500)")
	cmd.Flags().DurationVar(&resultTTL, "result-ttl", tasks.DefaultResultTTL, "How long completed results stay cached in Redis")

	_ = cmd.MarkFlagRequired("redis")

	return cmd
}

func runWorker(cmd *cobra.Command, configPath, redisURL string, concurrency, metricsPort int, enableMetrics bool, checkTimeoutMs int, resultTTL time.Duration) error {
	// Load configuration
	if configPath == "" {
		configPath = "conf/config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	config.ApplyIntOverride(cmd.Flags().Changed("check-timeout"), checkTimeoutMs, &cfg.Check.TimeoutMs, 2500)

	if redisURL == "" {
		slog.Error("Redis URL is required for worker")
		os.Exit(1)
	}

	redisAddr := redisURL
	if u, err := url.Parse(redisURL); err == nil {
		redisAddr = u.Host
	}

	// Start metrics server (optional)
	if enableMetrics {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			addr := fmt.Sprintf(":%d", metricsPort)
			slog.Info("Worker metrics server enabled", "address", addr)

			srv := &http.Server{
				Addr:         addr,
				Handler:      mux,
				ReadTimeout:  10 * time.Second,
				WriteTimeout: 10 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("Metrics server error", "error", err)
			}
		}()
	} else {
		slog.Info("Worker metrics disabled (use --enable-metrics to enable)")
	}

	checkTimeout := time.Duration(cfg.GetCheckTimeoutMs()) * time.Millisecond
	slog.Info("Status check timeout configured", "timeout", checkTimeout)

	// Result cache shares the queue's Redis instance
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer func() { _ = rdb.Close() }()

	// Register handler with config closure
	if resultTTL <= 0 {
		resultTTL = tasks.DefaultResultTTL
	}

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TaskTypeStatusCheck, func(ctx context.Context, t *asynq.Task) error {
		return handleTask(ctx, t, rdb, checkTimeout, resultTTL)
	})

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: concurrency,
		},
	)

	// Run worker in background and wait for signal
	go func() {
		if err := srv.Run(mux); err != nil {
			slog.Error("Worker run failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	srv.Shutdown()
	return nil
}

// handleTask runs one status check and stores the result both via Asynq's
// ResultWriter and in the Redis result cache the API polls.
func handleTask(ctx context.Context, t *asynq.Task, rdb *redis.Client, checkTimeout, resultTTL time.Duration) error {
	var p tasks.StatusCheckPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return err
	}

	results := checker.Run(context.Background(), p.Target, checkTimeout)

	resultData, err := json.Marshal(results)
	if err != nil {
		slog.Error("Failed to marshal result", "task_id", p.TaskID, "error", err)
		return err
	}

	if err := rdb.Set(ctx, tasks.ResultKey(p.TaskID), resultData, resultTTL).Err(); err != nil {
		slog.Error("Failed to cache result", "task_id", p.TaskID, "error", err)
	}

	if _, err := t.ResultWriter().Write(resultData); err != nil {
		slog.Error("Failed to write result", "task_id", p.TaskID, "error", err)
		return fmt.Errorf("failed to write result: %w", err)
	}

	slog.Info("Task completed", "task_id", p.TaskID, "target", p.Target.String(), "duration_seconds", fmt.Sprintf("%.3f", results.Duration))
	return nil
}
