package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/willow/internal/store"
)

// replayData is the JSON payload for a replay verification.
type replayData struct {
	MatchID     string   `json:"match_id"`
	Balls       int      `json:"balls"`
	Divergences []string `json:"divergences,omitempty"`
}

// NewReplayCommand creates the replay command: rebuild an archived match
// by re-applying its ledger through the engine and verify the rebuilt
// aggregates against the archived summary. With no match ID, lists the
// archive's matches.
func NewReplayCommand(opts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "replay [match-id]",
		Short: "Verify an archived match by deterministic replay",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

			s, err := store.Open(dbPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "open archive", err)
			}
			defer s.Close()

			if len(args) == 0 {
				ids, err := s.ListMatches(cmd.Context())
				if err != nil {
					return WrapExitError(ExitCommandError, "list matches", err)
				}
				return out.Success(strings.Join(ids, "\n"))
			}

			id := args[0]
			m, err := s.ReplayMatch(cmd.Context(), id)
			if err != nil {
				return WrapExitError(ExitCommandError, "replay match", err)
			}
			divergences, err := s.VerifyReplay(cmd.Context(), id)
			if err != nil {
				return WrapExitError(ExitCommandError, "verify replay", err)
			}

			if opts.Format == "json" {
				if err := out.Success(replayData{MatchID: id, Balls: len(m.Ledger), Divergences: divergences}); err != nil {
					return err
				}
			} else if len(divergences) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "replay of %s verified: %d balls, aggregates match archive\n",
					id, len(m.Ledger))
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "replay of %s DIVERGED:\n  %s\n",
					id, strings.Join(divergences, "\n  "))
			}

			if len(divergences) > 0 {
				return NewExitError(ExitFailure, "replay diverged from archive")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "willow.db", "SQLite archive database path")
	return cmd
}
