package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/KirkDiggler/boxbox/internal/chart"
	"github.com/KirkDiggler/boxbox/internal/common/clock"
	"github.com/KirkDiggler/boxbox/internal/config"
	standingsRepo "github.com/KirkDiggler/boxbox/internal/repositories/standings"
	"github.com/KirkDiggler/boxbox/internal/services/formatter"
	"github.com/KirkDiggler/boxbox/internal/services/standings"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	envFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd runs the bot when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "boxbox",
	Short: "boxbox - Formula 1 standings for Discord",
	Long: `boxbox is a Discord bot answering /f1_standings_drivers and
/f1_standings_teams with the championship table of any season.

Run without arguments to start the bot.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Initialize logger
		zapConfig := zap.NewProductionConfig()
		zapConfig.Level = cfg.LogLevel
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "env file to load before reading the environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd, standingsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// services is everything a standings request flows through
type services struct {
	standings standings.Service
	formatter formatter.Service
	renderer  chart.Renderer
}

// newServices wires the data source, standings service, chart renderer and formatter
func newServices(cfg *config.Config, logger *zap.Logger) (*services, error) {
	repo, err := standingsRepo.NewErgast(&standingsRepo.Config{
		BaseURL:    cfg.ErgastBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.HTTPTimeout},
		Logger:     logger.Named("ergast"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create standings repository: %w", err)
	}

	standingsSvc, err := standings.New(&standings.Config{
		Repository: repo,
		Clock:      clock.New(),
		Logger:     logger.Named("standings"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create standings service: %w", err)
	}

	var renderer chart.Renderer
	if cfg.ChartsEnabled {
		renderer = chart.New(&chart.Config{})
	}

	formatterSvc, err := formatter.New(&formatter.Config{
		Renderer: renderer,
		Logger:   logger.Named("formatter"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create formatter service: %w", err)
	}

	return &services{
		standings: standingsSvc,
		formatter: formatterSvc,
		renderer:  renderer,
	}, nil
}
