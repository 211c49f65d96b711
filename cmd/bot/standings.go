package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KirkDiggler/boxbox/internal/chart"
	"github.com/KirkDiggler/boxbox/internal/models"
	"github.com/KirkDiggler/boxbox/internal/services/formatter"
	"github.com/KirkDiggler/boxbox/internal/services/standings"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	standingsKind  string
	standingsYear  int
	standingsChart string
)

// standingsCmd prints a season's standings without connecting to Discord
var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Print the standings of a season",
	Long: `Fetches a season's standings and prints them as a table.

Example:
  boxbox standings --kind constructors --year 2023 --chart teams.png`,
	Args: cobra.NoArgs,
	RunE: runStandings,
}

func init() {
	standingsCmd.Flags().StringVarP(&standingsKind, "kind", "k", string(models.StandingsKindDrivers), "drivers or constructors")
	standingsCmd.Flags().IntVarP(&standingsYear, "year", "y", 0, "season year, e.g. 2023")
	standingsCmd.Flags().StringVar(&standingsChart, "chart", "", "write the points chart PNG to this path")
	_ = standingsCmd.MarkFlagRequired("year")
}

func runStandings(cmd *cobra.Command, args []string) error {
	kind, err := parseKind(standingsKind)
	if err != nil {
		return err
	}

	svcs, err := newServices(cfg, logger)
	if err != nil {
		return err
	}

	output, err := svcs.standings.GetStandings(cmd.Context(), &standings.GetStandingsInput{
		Kind: kind,
		Year: standingsYear,
	})
	if err != nil {
		return fmt.Errorf("failed to get standings: %w", err)
	}

	if err := printStandings(cmd.OutOrStdout(), output.List); err != nil {
		return err
	}

	if standingsChart == "" {
		return nil
	}

	// The flag asks for a chart even when the bot has charts turned off
	renderer := svcs.renderer
	if renderer == nil {
		renderer = chart.New(&chart.Config{})
	}

	data, err := renderer.Render(output.List)
	if err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}

	if err := os.WriteFile(standingsChart, data, 0o644); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	logger.Info("Wrote chart", zap.String("path", standingsChart), zap.Int("bytes", len(data)))
	return nil
}

// printStandings writes the title and the full table
func printStandings(w io.Writer, list *models.StandingsList) error {
	if _, err := fmt.Fprintf(w, "%s\n\n%s\n\n%s\n", formatter.Title(list), formatter.RenderTable(list, 0), formatter.Footer); err != nil {
		return fmt.Errorf("failed to print standings: %w", err)
	}
	return nil
}

// parseKind accepts the command's wording as well as the model's
func parseKind(value string) (models.StandingsKind, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "drivers", "driver":
		return models.StandingsKindDrivers, nil
	case "constructors", "constructor", "teams", "team":
		return models.StandingsKindConstructors, nil
	default:
		return "", fmt.Errorf("unknown kind %q, want drivers or constructors", value)
	}
}
