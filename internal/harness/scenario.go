// Package harness runs declarative conformance scenarios against the
// scoring engine. A scenario is a YAML file describing a match setup and
// every delivery bowled; the runner scores it through the engine and
// validates the resulting aggregates, result string, and standout player
// against the scenario's expectations, optionally comparing the rendered
// scorecard against a golden file.
package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a full declarative match: setup, both innings ball by
// ball, and expectations.
type Scenario struct {
	// Name uniquely identifies the scenario; golden files derive their
	// filename from it.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description"`

	// Overs is the per-innings overs limit.
	Overs int `yaml:"overs"`

	Toss TossSpec `yaml:"toss"`

	// Teams lists both sides in batting order: the first entry bats the
	// first innings. Player names must be unique within a team.
	Teams []TeamSpec `yaml:"teams"`

	// Innings holds one or two innings of deliveries.
	Innings []InningsSpec `yaml:"innings"`

	Expect ExpectSpec `yaml:"expect"`
}

// TossSpec records who won the toss and what they chose.
type TossSpec struct {
	Winner   string `yaml:"winner"`
	Decision string `yaml:"decision"` // "bat" or "bowl"
}

// TeamSpec names a side and its lineup.
type TeamSpec struct {
	Name    string   `yaml:"name"`
	Players []string `yaml:"players"`
}

// InningsSpec is one side's innings: the opening pair and every over.
type InningsSpec struct {
	Openers []string   `yaml:"openers"`
	Overs   []OverSpec `yaml:"overs"`
}

// OverSpec assigns the over's bowler and lists its deliveries. An over
// may hold more than six entries when wides or no-balls occur.
type OverSpec struct {
	Bowler string     `yaml:"bowler"`
	Balls  []BallStep `yaml:"balls"`
}

// BallStep is one delivery in scenario form. Player references are by
// display name, resolved against the scenario's lineups.
type BallStep struct {
	Runs   int  `yaml:"runs"`
	Wide   bool `yaml:"wide,omitempty"`
	NoBall bool `yaml:"no_ball,omitempty"`
	Bye    bool `yaml:"bye,omitempty"`
	LegBye bool `yaml:"leg_bye,omitempty"`

	// Wicket is the dismissal kind ("bowled", "caught", ...), empty for
	// no wicket. Fielder names the catcher/thrower/keeper where the
	// dismissal has one. NextBatter names the incoming batter.
	Wicket     string `yaml:"wicket,omitempty"`
	Fielder    string `yaml:"fielder,omitempty"`
	NextBatter string `yaml:"next_batter,omitempty"`

	Commentary string `yaml:"commentary,omitempty"`
}

// InningsExpect validates one innings' final aggregate. Zero-valued
// fields are still checked; overs is skipped when empty.
type InningsExpect struct {
	Score   int    `yaml:"score"`
	Wickets int    `yaml:"wickets"`
	Overs   string `yaml:"overs,omitempty"`
}

// ExpectSpec validates the finished match.
type ExpectSpec struct {
	FirstInnings  *InningsExpect `yaml:"first_innings,omitempty"`
	SecondInnings *InningsExpect `yaml:"second_innings,omitempty"`
	Result        string         `yaml:"result,omitempty"`
	ManOfTheMatch string         `yaml:"man_of_the_match,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file. Unknown fields are
// rejected so field typos fail loudly instead of silently skipping
// deliveries.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("parse scenario YAML: %w", err)
	}
	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks the structural requirements before any engine
// call: two teams, unique names within each, known toss winner, one or
// two innings each with two openers.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Overs <= 0 {
		return fmt.Errorf("overs must be positive, got %d", s.Overs)
	}
	if len(s.Teams) != 2 {
		return fmt.Errorf("exactly two teams are required, got %d", len(s.Teams))
	}
	for i, team := range s.Teams {
		if team.Name == "" {
			return fmt.Errorf("teams[%d]: name is required", i)
		}
		if len(team.Players) < 2 {
			return fmt.Errorf("team %s needs at least two players", team.Name)
		}
		seen := make(map[string]bool, len(team.Players))
		for _, name := range team.Players {
			if seen[name] {
				return fmt.Errorf("team %s: duplicate player name %q", team.Name, name)
			}
			seen[name] = true
		}
	}
	if s.Toss.Winner != s.Teams[0].Name && s.Toss.Winner != s.Teams[1].Name {
		return fmt.Errorf("toss winner %q is not one of the teams", s.Toss.Winner)
	}
	if s.Toss.Decision != "bat" && s.Toss.Decision != "bowl" {
		return fmt.Errorf("toss decision must be \"bat\" or \"bowl\", got %q", s.Toss.Decision)
	}
	if len(s.Innings) == 0 || len(s.Innings) > 2 {
		return fmt.Errorf("one or two innings are required, got %d", len(s.Innings))
	}
	for i, innings := range s.Innings {
		if len(innings.Openers) != 2 {
			return fmt.Errorf("innings[%d]: exactly two openers are required", i)
		}
		if len(innings.Overs) == 0 {
			return fmt.Errorf("innings[%d]: at least one over is required", i)
		}
		for j, over := range innings.Overs {
			if over.Bowler == "" {
				return fmt.Errorf("innings[%d].overs[%d]: bowler is required", i, j)
			}
			if len(over.Balls) == 0 {
				return fmt.Errorf("innings[%d].overs[%d]: at least one ball is required", i, j)
			}
		}
	}
	return nil
}
