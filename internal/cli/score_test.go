package cli

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCommand_PrintsScorecard(t *testing.T) {
	path := writeScenario(t, testScenario)
	out, err := execute(t, "score", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Reds vs Blues (1 overs)")
	assert.Contains(t, out, "Result: Blues won by 10 wickets")
	assert.Contains(t, out, "Player of the match:")
	assert.NotContains(t, out, "Expectation failures")
}

func TestScoreCommand_JSONOutput(t *testing.T) {
	path := writeScenario(t, testScenario)
	out, err := execute(t, "--format", "json", "score", path)
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "scenario-cli-smoke", data["match_id"])
	assert.Equal(t, "Blues won by 10 wickets", data["result"])
	assert.Equal(t, true, data["pass"])
	assert.Contains(t, data["scorecard"], "Innings 2: Blues")
}

func TestScoreCommand_FailedExpectations(t *testing.T) {
	failing := strings.Replace(testScenario, "result: Blues won by 10 wickets",
		"result: Reds won by 99 runs", 1)
	path := writeScenario(t, failing)

	out, err := execute(t, "score", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Expectation failures:")
	assert.Contains(t, out, "result: got")
}

func TestScoreCommand_ArchivesMatch(t *testing.T) {
	path := writeScenario(t, testScenario)
	dbPath := filepath.Join(t.TempDir(), "archive.db")

	_, err := execute(t, "score", path, "--db", dbPath)
	require.NoError(t, err)
	assert.FileExists(t, dbPath)

	out, err := execute(t, "replay", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "scenario-cli-smoke")
}

func TestScoreCommand_BadScenarioFile(t *testing.T) {
	_, err := execute(t, "score", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
