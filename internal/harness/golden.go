package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden executes a scenario and compares the rendered scorecard
// against a golden file at testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// The scorecard is deterministic for a given scenario, so the golden file
// is the source of truth for the full derived state: batting and bowling
// lines, extras, fall of wickets, result, and man of the match.
//
// Returns the execution result; test failure occurs via goldie when the
// scorecard diverges, and via the caller when result.Pass is false.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, scenario.Name, []byte(result.Scorecard))
	return result, nil
}
