package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/willow/internal/harness"
	"github.com/roach88/willow/internal/store"
)

// scoreData is the JSON payload for a scored scenario.
type scoreData struct {
	MatchID       string   `json:"match_id"`
	Result        string   `json:"result,omitempty"`
	ManOfTheMatch string   `json:"man_of_the_match,omitempty"`
	Pass          bool     `json:"pass"`
	Errors        []string `json:"errors,omitempty"`
	Scorecard     string   `json:"scorecard"`
}

// NewScoreCommand creates the score command: run a scenario file through
// the engine and print the scorecard, optionally archiving the match.
func NewScoreCommand(opts *RootOptions) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "score <scenario.yaml>",
		Short: "Score a match scenario and print the scorecard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

			scenario, err := harness.LoadScenario(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "load scenario", err)
			}
			result, err := harness.Run(scenario)
			if err != nil {
				return WrapExitError(ExitCommandError, "score scenario", err)
			}

			if dbPath != "" {
				s, err := store.Open(dbPath)
				if err != nil {
					return WrapExitError(ExitCommandError, "open archive", err)
				}
				defer s.Close()
				if err := s.SaveMatch(cmd.Context(), result.Match); err != nil {
					return WrapExitError(ExitCommandError, "archive match", err)
				}
			}

			m := result.Match
			data := scoreData{
				MatchID:   m.ID,
				Result:    m.Result,
				Pass:      result.Pass,
				Errors:    result.Errors,
				Scorecard: result.Scorecard,
			}
			if m.Completed {
				data.ManOfTheMatch = m.Roster.Name(m.ManOfTheMatch)
			}

			if opts.Format == "json" {
				if err := out.Success(data); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), result.Scorecard)
				if !result.Pass {
					fmt.Fprintf(cmd.OutOrStdout(), "\nExpectation failures:\n  %s\n",
						strings.Join(result.Errors, "\n  "))
				}
			}

			if !result.Pass {
				return NewExitError(ExitFailure, "scenario expectations failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "archive the scored match to this SQLite database")
	return cmd
}
