package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/willow/internal/harness"
)

// NewValidateCommand creates the validate command: parse a scenario file
// and report structural problems without scoring it.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <scenario.yaml>",
		Short: "Validate a scenario file without scoring it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}

			scenario, err := harness.LoadScenario(args[0])
			if err != nil {
				_ = out.Failure(err.Error())
				return WrapExitError(ExitCommandError, "invalid scenario", err)
			}
			return out.Success(fmt.Sprintf("scenario %q: %d teams, %d innings, %d overs limit",
				scenario.Name, len(scenario.Teams), len(scenario.Innings), scenario.Overs))
		},
	}
}
