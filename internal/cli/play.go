package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/pig-go/internal/config"
	"github.com/mcoot/pig-go/internal/factory"
	"github.com/mcoot/pig-go/internal/model"
	"github.com/mcoot/pig-go/internal/services/match"
)

// newApp builds the local application used by play. Replaced in tests.
var newApp = func(logger *slog.Logger) (*factory.App, error) {
	return factory.New(factory.Config{
		Logger:      logger,
		StorageType: config.StorageTypeMemory,
	})
}

func newPlayCmd() *cobra.Command {
	var (
		kinds      [2]string
		names      [2]string
		strategies [2]string
		target     int
		timed      bool
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game of Pig on the console",
		Long: `Play a game of Pig on the console.

Human players answer "r" to roll again or "h" to hold after each roll.
Computer players hold once their turn total reaches min(25, target - score).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := match.Request{
				TargetScore: &target,
				Timed:       timed,
			}
			for i := range kinds {
				kind, err := model.ParsePlayerKind(kinds[i])
				if err != nil {
					return fmt.Errorf("player%d: %w", i+1, err)
				}
				req.Players[i] = model.PlayerSpec{Kind: kind, Name: names[i], Strategy: strategies[i]}
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}

			app, err := newApp(logger)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return playMatch(ctx, cmd, app.MatchService, req)
		},
	}

	cmd.Flags().StringVar(&kinds[0], "player1", "", "Type of player 1 (human/computer)")
	cmd.Flags().StringVar(&kinds[1], "player2", "", "Type of player 2 (human/computer)")
	cmd.Flags().StringVar(&names[0], "player1_name", "", "Name of player 1")
	cmd.Flags().StringVar(&names[1], "player2_name", "", "Name of player 2")
	cmd.Flags().StringVar(&strategies[0], "player1_strategy", "", "Strategy for a computer player 1: threshold, random")
	cmd.Flags().StringVar(&strategies[1], "player2_strategy", "", "Strategy for a computer player 2: threshold, random")
	cmd.Flags().IntVar(&target, "target", model.DefaultTargetScore, "Target score")
	cmd.Flags().BoolVar(&timed, "timed", false, "If set, the game will be timed (1 minute limit)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible dice and computer decisions")

	for _, name := range []string{"player1", "player2", "player1_name", "player2_name"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

// playMatch wires the console into a match and plays it to completion
func playMatch(ctx context.Context, cmd *cobra.Command, svc *match.Service, req match.Request) error {
	out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())

	// Prompts would corrupt JSON lines on stdout
	promptOut := cmd.OutOrStdout()
	if out.IsJSON() {
		promptOut = cmd.ErrOrStderr()
	}

	summary, err := svc.Run(ctx, req, match.Options{
		Input:    NewConsoleInput(cmd.InOrStdin(), promptOut),
		Observer: NewConsoleObserver(cmd.OutOrStdout(), out.IsJSON()),
	})
	if err != nil {
		return err
	}

	logger.Debug("game recorded", slog.String("game_id", string(summary.ID)))
	return nil
}
