package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match",
		Short: "Automated match commands (remote)",
	}

	cmd.AddCommand(newMatchRunCmd())
	cmd.AddCommand(newMatchGetCmd())
	cmd.AddCommand(newMatchListCmd())

	return cmd
}

type matchPlayer struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Strategy string `json:"strategy,omitempty"`
}

type runMatchBody struct {
	Players     []matchPlayer `json:"players"`
	TargetScore *int          `json:"target_score,omitempty"`
	Timed       bool          `json:"timed,omitempty"`
	Seed        *uint64       `json:"seed,omitempty"`
}

func newMatchRunCmd() *cobra.Command {
	var (
		names      [2]string
		strategies [2]string
		target     int
		timed      bool
		seed       uint64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a computer vs computer match on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := runMatchBody{Timed: timed}
			for i := range names {
				body.Players = append(body.Players, matchPlayer{
					Kind:     "computer",
					Name:     names[i],
					Strategy: strategies[i],
				})
			}
			if cmd.Flags().Changed("target") {
				body.TargetScore = &target
			}
			if cmd.Flags().Changed("seed") {
				body.Seed = &seed
			}

			var result MatchSummary
			if err := client.Post(cmd.Context(), "/api/v1/matches", body, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&names[0], "player1_name", "Computer 1", "Name of player 1")
	cmd.Flags().StringVar(&names[1], "player2_name", "Computer 2", "Name of player 2")
	cmd.Flags().StringVar(&strategies[0], "player1_strategy", "", "Strategy for player 1: threshold, random")
	cmd.Flags().StringVar(&strategies[1], "player2_strategy", "", "Strategy for player 2: threshold, random")
	cmd.Flags().IntVar(&target, "target", 0, "Target score (server default 100)")
	cmd.Flags().BoolVar(&timed, "timed", false, "Stop after 60 seconds")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible match")

	return cmd
}

func newMatchGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a recorded match with its turn history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result MatchSummary

			if err := client.Get(cmd.Context(), "/api/v1/matches/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(result)
			return nil
		},
	}
}

func newMatchListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent matches, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("limit must be positive, got %d", limit)
			}

			var result MatchList
			if err := client.Get(cmd.Context(), "/api/v1/matches?limit="+strconv.Itoa(limit), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of matches to show")

	return cmd
}
