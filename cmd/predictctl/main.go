// Command predictctl is the FIFA 4x4 predictor operator CLI.
//
// Usage:
//
//	predictctl predict "Man City" "Burnley" --odds1 1.20 --odds2 6.50
//	predictctl predict "Arsenal" "Chelsea" --odds1 1.85 --odds2 3.40 --remote http://localhost:5000
//	predictctl teams
//	predictctl seed
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fifa4x4/predictor-api/internal/config"
	"github.com/fifa4x4/predictor-api/internal/db"
	"github.com/fifa4x4/predictor-api/internal/engine"
	"github.com/fifa4x4/predictor-api/internal/remote"
	"github.com/fifa4x4/predictor-api/internal/teams"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "predictctl",
		Short: "FIFA 4x4 predictor operator CLI",
	}

	root.AddCommand(predictCmd())
	root.AddCommand(teamsCmd())
	root.AddCommand(seedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// predict command
// --------------------------------------------------------------------------

func predictCmd() *cobra.Command {
	var odds1, odds2 float64
	var remoteURL string

	cmd := &cobra.Command{
		Use:   "predict <team1> <team2>",
		Short: "Predict a match outcome",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			team1, team2 := strings.TrimSpace(args[0]), strings.TrimSpace(args[1])
			if strings.EqualFold(team1, team2) {
				return fmt.Errorf("pick two different teams")
			}
			if odds1 < 1.01 || odds2 < 1.01 {
				return fmt.Errorf("odds must be at least 1.01")
			}

			eng, err := engine.New(engine.Default(), engine.RandomRating())
			if err != nil {
				return err
			}
			resolver := teams.NewResolver(nil, teams.Builtin(), logger)
			client := remote.New(remoteURL, eng, resolver, logger)

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			res, err := client.Predict(ctx, team1, team2, odds1, odds2)
			if err != nil {
				return err
			}
			printResult(res, odds1, odds2)
			return nil
		},
	}
	cmd.Flags().Float64Var(&odds1, "odds1", 2.00, "Decimal odds for team1")
	cmd.Flags().Float64Var(&odds2, "odds2", 2.00, "Decimal odds for team2")
	cmd.Flags().StringVar(&remoteURL, "remote", "", "Upstream prediction service (falls back to local engine)")
	return cmd
}

func printResult(res engine.Result, odds1, odds2 float64) {
	fmt.Printf("PREDICTION: %s vs %s (odds %.2f / %.2f)\n\n", res.Team1, res.Team2, odds1, odds2)

	fmt.Println("Half-time scores:")
	for i, s := range res.HalfTimeScores {
		fmt.Printf("  %d. %s (%d%%)\n", i+1, s.Score, s.Confidence)
	}
	printWinner("Half-time", res.HalfTimeWinner)
	printGoals("Half-time", res.HalfTimeGoals)

	fmt.Println("\nFull-time scores:")
	for i, s := range res.FullTimeScores {
		fmt.Printf("  %d. %s (%d%%)\n", i+1, s.Score, s.Confidence)
	}
	printWinner("Full-time", res.FullTimeWinner)
	printGoals("Full-time", res.FullTimeGoals)
}

func printWinner(period string, w engine.WinnerPrediction) {
	if w.Team == engine.Draw {
		fmt.Printf("  %s verdict: draw (%d%%)\n", period, w.Probability)
		return
	}
	fmt.Printf("  %s verdict: %s wins (%d%%)\n", period, w.Team, w.Probability)
}

func printGoals(period string, g engine.GoalLinePrediction) {
	side := "under"
	if g.IsOver {
		side = "over"
	}
	fmt.Printf("  %s goals: %s %.1f (%d%%)\n", period, side, g.Line, g.Percentage)
}

// --------------------------------------------------------------------------
// teams command
// --------------------------------------------------------------------------

func teamsCmd() *cobra.Command {
	var fromDB bool

	cmd := &cobra.Command{
		Use:   "teams",
		Short: "List known teams and their ratings",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := teams.Builtin()
			if fromDB {
				err := withPool(cmd.Context(), func(ctx context.Context, pool *db.Pool) error {
					stored, err := teams.NewStore(pool.Pool).List(ctx)
					if err != nil {
						return err
					}
					list = stored
					return nil
				})
				if err != nil {
					return err
				}
			}
			for _, t := range list {
				if t.Rating != nil {
					fmt.Printf("%-20s %-5s %.1f\n", t.Name, t.Abbreviation, *t.Rating)
				} else {
					fmt.Printf("%-20s %-5s unrated\n", t.Name, t.Abbreviation)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromDB, "db", false, "Read from the database instead of the built-in list")
	return cmd
}

// --------------------------------------------------------------------------
// seed command
// --------------------------------------------------------------------------

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Upsert the built-in team list into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(cmd.Context(), func(ctx context.Context, pool *db.Pool) error {
				start := time.Now()
				written, err := teams.NewStore(pool.Pool).UpsertAll(ctx, teams.Builtin())
				if err != nil {
					return err
				}
				logger.Info("Seed finished",
					"teams", written,
					"duration", time.Since(start).Round(time.Millisecond))
				return nil
			})
		},
	}
}

// withPool connects to Postgres, runs fn, and closes the pool.
func withPool(parent context.Context, fn func(context.Context, *db.Pool) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	ctx, cancel := signal.NotifyContext(parent, os.Interrupt)
	defer cancel()

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, pool)
}
