package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/animalloo/animalloo-backend/internal/app"
)

// queryCmd runs the API's read paths once and prints JSON, without HTTP or a database.
var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Run one graph-backed lookup and print the result",
	Long: `Run one graph-backed lookup and print the result as JSON.

Subcommands:
  search   - same as GET /api/search
  facility - same as GET /api/facility/detail
  context  - chat grounding for a keyword
  stats    - same as GET /api/stats/pet-names`,
}

var querySearchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search facilities",
	Args:  cobra.MinimumNArgs(1),
	RunE: withApp(func(ctx context.Context, a *app.App, args []string) (any, error) {
		return a.Services.Search.Search(ctx, strings.Join(args, " "))
	}),
}

var queryFacilityCmd = &cobra.Command{
	Use:   "facility <uri>",
	Short: "Show one facility with its opening hours",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *app.App, args []string) (any, error) {
		return a.Services.Facility.Detail(ctx, args[0])
	}),
}

var queryContextCmd = &cobra.Command{
	Use:   "context <keyword>",
	Short: "Show the grounding lines chat would use",
	Args:  cobra.MinimumNArgs(1),
	RunE: withApp(func(ctx context.Context, a *app.App, args []string) (any, error) {
		g, err := a.Knowledge.Grounder.Build(ctx, strings.Join(args, " "))
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"keyword": g.Keyword,
			"lines":   g.Lines,
			"buckets": g.Buckets,
		}, nil
	}),
}

var queryStatsCmd = &cobra.Command{
	Use:   "stats <gu>",
	Short: "Show the most common pet names in a district",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(ctx context.Context, a *app.App, args []string) (any, error) {
		return a.Services.Stats.PetNames(ctx, args[0])
	}),
}

func withApp(run func(ctx context.Context, a *app.App, args []string) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		a, err := app.New(ctx, app.Options{SkipDatabase: true})
		if err != nil {
			return err
		}
		defer a.Close()

		out, err := run(ctx, a, args)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
