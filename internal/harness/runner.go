package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/willow/internal/engine"
	"github.com/roach88/willow/internal/match"
	"github.com/roach88/willow/internal/scorecard"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expectation matched.
	Pass bool

	// Errors holds expectation mismatches. Empty when Pass is true.
	Errors []string

	// Match is the fully scored match, for callers that want to archive
	// or inspect it beyond the scenario's expectations.
	Match *match.Match

	// Scorecard is the rendered text scorecard, used for golden
	// comparison and CLI output.
	Scorecard string
}

// addError records an expectation mismatch and fails the result.
func (r *Result) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
	r.Pass = false
}

// Run scores a scenario through the engine and validates expectations.
//
// Execution errors (an ineligible bowler, a delivery after the innings
// closed, a name that resolves to nobody) abort the run with an error:
// they mean the scenario itself is inconsistent. Expectation mismatches
// do not abort; they accumulate on the Result.
func Run(s *Scenario) (*Result, error) {
	m, teams, err := setup(s)
	if err != nil {
		return nil, err
	}
	ctrl := engine.NewController()

	for i, innings := range s.Innings {
		if i == 1 {
			if err := engine.AdvanceInnings(m); err != nil {
				return nil, fmt.Errorf("innings transition: %w", err)
			}
		}
		if err := playInnings(m, ctrl, teams, innings, i+1); err != nil {
			return nil, err
		}
	}

	if len(s.Innings) == 2 {
		if err := engine.Finalize(m); err != nil {
			return nil, fmt.Errorf("finalize: %w", err)
		}
	}

	result := &Result{Pass: true, Match: m, Scorecard: scorecard.Render(m)}
	checkExpectations(s, m, result)
	return result, nil
}

// nameTable resolves scenario player names to IDs, per team.
type nameTable struct {
	byTeam map[string]map[string]match.PlayerID
}

func (n *nameTable) resolve(team, name string) (match.PlayerID, error) {
	id, ok := n.byTeam[team][name]
	if !ok {
		return "", fmt.Errorf("player %q is not on team %s", name, team)
	}
	return id, nil
}

// setup builds the roster, lineups, and match from the scenario header.
// Player IDs are derived deterministically from team name and lineup
// position so repeated runs produce identical ledgers.
func setup(s *Scenario) (*match.Match, *nameTable, error) {
	roster := match.NewRoster()
	table := &nameTable{byTeam: make(map[string]map[string]match.PlayerID, 2)}
	sides := make([]*match.TeamInnings, 2)

	for i, team := range s.Teams {
		side := &match.TeamInnings{Name: team.Name}
		table.byTeam[team.Name] = make(map[string]match.PlayerID, len(team.Players))
		for j, name := range team.Players {
			id := match.PlayerID(fmt.Sprintf("%s-%02d", slug(team.Name), j+1))
			roster.Add(&match.Player{ID: id, Name: name})
			side.Lineup = append(side.Lineup, id)
			table.byTeam[team.Name][name] = id
		}
		sides[i] = side
	}

	m := match.New(roster, sides[0], sides[1], s.Toss.Winner,
		match.TossDecision(s.Toss.Decision), s.Overs)
	m.ID = "scenario-" + s.Name
	return m, table, nil
}

// playInnings scores one innings' overs, stopping early the moment the
// completion predicate fires.
func playInnings(m *match.Match, ctrl *engine.Controller, teams *nameTable, innings InningsSpec, n int) error {
	batting, bowling := m.Batting().Name, m.Bowling().Name

	striker, err := teams.resolve(batting, innings.Openers[0])
	if err != nil {
		return fmt.Errorf("innings %d: %w", n, err)
	}
	nonStriker, err := teams.resolve(batting, innings.Openers[1])
	if err != nil {
		return fmt.Errorf("innings %d: %w", n, err)
	}
	if err := engine.SetBatters(m, striker, nonStriker); err != nil {
		return fmt.Errorf("innings %d: openers: %w", n, err)
	}

	for overIdx, over := range innings.Overs {
		bowler, err := teams.resolve(bowling, over.Bowler)
		if err != nil {
			return fmt.Errorf("innings %d over %d: %w", n, overIdx+1, err)
		}
		if err := engine.SetBowler(m, bowler); err != nil {
			return fmt.Errorf("innings %d over %d: %w", n, overIdx+1, err)
		}

		for ballIdx, step := range over.Balls {
			b, err := buildBall(teams, bowling, step)
			if err != nil {
				return fmt.Errorf("innings %d over %d ball %d: %w", n, overIdx+1, ballIdx+1, err)
			}
			if err := ctrl.Score(m, b); err != nil {
				return fmt.Errorf("innings %d over %d ball %d: %w", n, overIdx+1, ballIdx+1, err)
			}
			if step.NextBatter != "" {
				id, err := teams.resolve(batting, step.NextBatter)
				if err != nil {
					return fmt.Errorf("innings %d over %d ball %d: %w", n, overIdx+1, ballIdx+1, err)
				}
				if err := engine.SetNextBatter(m, id); err != nil {
					return fmt.Errorf("innings %d over %d ball %d: %w", n, overIdx+1, ballIdx+1, err)
				}
			}
			if engine.IsInningsComplete(m) {
				return nil
			}
		}
	}
	return nil
}

// buildBall converts a scenario step into a ball event. Position and
// participants are stamped by the delivery processor; only the outcome
// fields are set here.
func buildBall(teams *nameTable, bowlingTeam string, step BallStep) (match.Ball, error) {
	b := match.Ball{
		Runs:       step.Runs,
		Wide:       step.Wide,
		NoBall:     step.NoBall,
		Bye:        step.Bye,
		LegBye:     step.LegBye,
		Commentary: step.Commentary,
	}
	if step.Wicket != "" {
		b.Wicket = true
		b.Dismissal = match.Dismissal(step.Wicket)
		if !b.Dismissal.Valid() {
			return b, fmt.Errorf("unknown dismissal %q", step.Wicket)
		}
	}
	if step.Fielder != "" {
		id, err := teams.resolve(bowlingTeam, step.Fielder)
		if err != nil {
			return b, err
		}
		b.Fielder = id
	}
	return b, nil
}

// checkExpectations compares the scored match against the scenario's
// expect block.
func checkExpectations(s *Scenario, m *match.Match, r *Result) {
	checkInnings := func(label string, team *match.TeamInnings, want *InningsExpect) {
		if want == nil {
			return
		}
		if team.Score != want.Score {
			r.addError("%s score: got %d, want %d", label, team.Score, want.Score)
		}
		if team.Wickets != want.Wickets {
			r.addError("%s wickets: got %d, want %d", label, team.Wickets, want.Wickets)
		}
		if want.Overs != "" && team.OversString() != want.Overs {
			r.addError("%s overs: got %s, want %s", label, team.OversString(), want.Overs)
		}
	}
	checkInnings("first innings", m.Teams[0], s.Expect.FirstInnings)
	checkInnings("second innings", m.Teams[1], s.Expect.SecondInnings)

	if s.Expect.Result != "" && m.Result != s.Expect.Result {
		r.addError("result: got %q, want %q", m.Result, s.Expect.Result)
	}
	if s.Expect.ManOfTheMatch != "" {
		got := m.Roster.Name(m.ManOfTheMatch)
		if got != s.Expect.ManOfTheMatch {
			r.addError("man of the match: got %q, want %q", got, s.Expect.ManOfTheMatch)
		}
	}
}

// slug lowercases a team name and replaces spaces for use in player IDs.
func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
