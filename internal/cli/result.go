package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/willow/internal/store"
)

// resultData is the JSON payload for an archived match result.
type resultData struct {
	MatchID       string `json:"match_id"`
	Teams         string `json:"teams"`
	Completed     bool   `json:"completed"`
	Result        string `json:"result,omitempty"`
	ManOfTheMatch string `json:"man_of_the_match,omitempty"`
}

// NewResultCommand creates the result command: print the archived result
// and man of the match for a completed match.
func NewResultCommand(opts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "result <match-id>",
		Short: "Print the result and man of the match for an archived match",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

			s, err := store.Open(dbPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "open archive", err)
			}
			defer s.Close()

			sum, err := s.ReadSummary(cmd.Context(), args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "read match", err)
			}

			// The summary stores the MOTM player ID; resolve the display
			// name from the archived roster.
			motm := ""
			if sum.Completed && sum.ManOfTheMatch != "" {
				motm, err = s.PlayerName(cmd.Context(), sum.ID, sum.ManOfTheMatch)
				if err != nil {
					return WrapExitError(ExitCommandError, "resolve man of the match", err)
				}
			}

			data := resultData{
				MatchID:       sum.ID,
				Teams:         fmt.Sprintf("%s vs %s", sum.TeamFirst, sum.TeamSecond),
				Completed:     sum.Completed,
				Result:        sum.Result,
				ManOfTheMatch: motm,
			}
			if opts.Format == "json" {
				return out.Success(data)
			}
			if !sum.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: in progress\n", data.Teams)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\nPlayer of the match: %s\n", data.Teams, sum.Result, motm)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "willow.db", "SQLite archive database path")
	return cmd
}
