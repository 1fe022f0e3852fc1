// Package cli provides the command-line interface for MC Status GO.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/craftping/mc-status-go/internal/api"
	"github.com/craftping/mc-status-go/internal/models"
	"github.com/craftping/mc-status-go/internal/motd"
	"github.com/craftping/mc-status-go/internal/normalize"
)

const (
	// PackageVersion is the current version of the CLI
	PackageVersion = "1.0.0"

	// DefaultAPIURL is the default API server URL
	DefaultAPIURL = "http://localhost:5000"
	// DefaultWarnThresholdMs is the latency warning threshold in milliseconds
	DefaultWarnThresholdMs = 500.0
	// DefaultPollInterval is the default interval for polling task status
	DefaultPollInterval = 500 * time.Millisecond
)

const (
	levelInfo = "ok"
	levelWarn = "warn"
	levelErr  = "error"
)

var (
	apiURL        string
	debug         bool
	pretty        bool
	warnThreshold float64
)

// NewRootCmd creates the root CLI command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "mcstatus",
		Short:   "Minecraft server status checker for Java and Bedrock editions",
		Long:    `Check whether a Minecraft server is reachable and report latency, player counts, version, and MOTD. Supports the Java server-list-ping and Bedrock unconnected-ping protocols.`,
		Version: PackageVersion,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("at least one argument is required")
			}
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&apiURL, "api-url", "u", DefaultAPIURL, "Base URL of the API")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "Show detailed progress and error messages")
	rootCmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Enable emoji-enhanced output")
	rootCmd.Flags().Float64VarP(&warnThreshold, "warn-threshold", "w", DefaultWarnThresholdMs, "Latency threshold in milliseconds for warnings")

	rootCmd.AddCommand(NewQueryCommand())
	rootCmd.AddCommand(NewServerCommand())
	rootCmd.AddCommand(NewWorkerCommand())
	return rootCmd
}

// NewQueryCommand creates the 'query' subcommand.
func NewQueryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "query [target]",
		Aliases: []string{"q", "check"},
		Short:   "Check a Minecraft server's status",
		Long:    `Check a Minecraft server's status through the API. Targets use edition://host:port; a bare host defaults to the Java edition and its default port.`,
		Example: `  # Check a Java server
  mcstatus query java://play.example.org

  # Check a Bedrock server with an explicit port
  mcstatus query bedrock://play.example.org:19132

  # Bare host defaults to java://host:25565
  mcstatus query play.example.org`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runStatusCheck(args[0]); err != nil {
				cmd.PrintErrln(err)
			}
			return nil
		},
	}

	// Registered here as well so the standalone query binary carries them.
	cmd.Flags().StringVarP(&apiURL, "api-url", "u", DefaultAPIURL, "Base URL of the API")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Show detailed progress and error messages")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Enable emoji-enhanced output")
	cmd.Flags().Float64VarP(&warnThreshold, "warn-threshold", "w", DefaultWarnThresholdMs, "Latency threshold in milliseconds for warnings")

	return cmd
}

func runStatusCheck(rawTarget string) error {
	target, err := normalize.Target(rawTarget)
	if err != nil {
		return err
	}

	edition, host, port, err := normalize.SplitTarget(target)
	if err != nil {
		return err
	}

	fmt.Printf("Checking %s ", target)

	if debug {
		fmt.Printf("\n\tEdition: %s\n", normalize.DisplayName(edition))
		fmt.Printf("\tAPI Base URL: %s\n", apiURL)
	}

	ctx := context.Background()
	client := api.NewClient(apiURL, 30*time.Second)
	taskID, err := client.EnqueueStatusCheck(ctx, models.StatusCheckRequest{
		Edition: edition,
		Host:    host,
		Port:    port,
	})
	if err != nil {
		return fmt.Errorf("error: %w", err)
	}

	if debug {
		fmt.Printf("\tTask ID: %s\n", taskID)
	}

	// Poll for task completion
	for {
		taskStatus, err := client.GetTaskStatus(ctx, taskID)
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}

		if taskStatus.Status == "SUCCESS" {
			printResult(target, taskStatus)
			break
		} else if taskStatus.Status == "FAILURE" {
			fmt.Println("\n\tTask failed.")
			break
		}

		fmt.Print(".")
		time.Sleep(DefaultPollInterval)
	}

	return nil
}

func printResult(target string, taskStatus *models.TaskStatusResponse) {
	if taskStatus.Result == nil {
		fmt.Println("\nNo result available")
		return
	}

	result := taskStatus.Result.Result
	fmt.Printf("\nCheck finished in %.4f seconds\n", taskStatus.Result.Duration)

	if result.CommandStatus != models.CommandStatusOK {
		if debug {
			logResult(levelErr, fmt.Sprintf("%s - DOWN - %s", target, result.Error))
		} else {
			logResult(levelErr, fmt.Sprintf("%s - DOWN", target))
		}
		return
	}

	level := levelInfo
	if result.LatencyMs > warnThreshold {
		level = levelWarn
	}

	logResult(level, fmt.Sprintf("%s - UP - %.2f ms - players %d/%d - version %s",
		target, result.LatencyMs, result.PlayersOnline, result.PlayersMax, result.Version))

	// Single-line terminal output, so flatten the MOTD further than the
	// API's motd_clean does.
	if line := motd.Clean(result.MotdRaw); line != "" {
		fmt.Printf("       MOTD: %s\n", line)
	}
}

func logResult(level, message string) {
	symbols := map[string][2]string{
		"ok":    {"✅ ", "[OK] "},
		"warn":  {"⚠️ ", "[WARN] "},
		"error": {"❌ ", "[FAILED] "},
	}

	symbol := "[???] "
	if syms, ok := symbols[level]; ok {
		if pretty {
			symbol = syms[0]
		} else {
			symbol = syms[1]
		}
	}

	fmt.Printf("%s%s\n", symbol, message)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
