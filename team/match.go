/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package team

import (
	"slices"

	"github.com/mikeb26/swisstd/standings"
)

// Match is one team-vs-team encounter in a round, derived from the board
// games between the two rosters.
type Match struct {
	Round      int
	TeamID     string
	OpponentID string
	Points     float64
	OppPoints  float64
}

// Won reports whether the team outscored its opponent on the boards.
func (m Match) Won() bool { return m.Points > m.OppPoints }

// Drawn reports whether the board points were split evenly.
func (m Match) Drawn() bool { return m.Points == m.OppPoints }

type matchKey struct {
	round    int
	team     int
	opponent int
}

// Matches derives team matches from individual results: a member whose
// opponent belongs to a different team puts the two teams in a match for
// that round. Games against unaffiliated players and byes are ignored.
func Matches(teams []Standing, results []standings.RoundResult) []Match {
	teamOf := memberIndex(teams)
	points := make(map[matchKey]float64)
	var keys []matchKey
	for _, r := range results {
		if !r.HasOpponent() {
			continue
		}
		t, ok := teamOf[r.EntityID]
		if !ok {
			continue
		}
		o, ok := teamOf[r.OpponentID]
		if !ok || o == t {
			continue
		}
		k := matchKey{round: r.Round, team: t, opponent: o}
		if _, seen := points[k]; !seen {
			keys = append(keys, k)
		}
		points[k] += r.Points
	}

	slices.SortFunc(keys, func(a, b matchKey) int {
		if a.round != b.round {
			return a.round - b.round
		}
		if a.team != b.team {
			return a.team - b.team
		}
		return a.opponent - b.opponent
	})

	out := make([]Match, 0, len(keys))
	for _, k := range keys {
		rev := matchKey{round: k.round, team: k.opponent, opponent: k.team}
		out = append(out, Match{
			Round:      k.round,
			TeamID:     teams[k.team].ID,
			OpponentID: teams[k.opponent].ID,
			Points:     points[k],
			OppPoints:  points[rev],
		})
	}

	return out
}

// applyMatches switches the teams over to match-based scoring: the team
// score becomes total game points and the match tiebreaks are filled in.
func applyMatches(teams []Standing, results []standings.RoundResult) {
	index := make(map[string]int, len(teams))
	for i, t := range teams {
		index[t.ID] = i
		teams[i].TotalPoints = t.Tiebreak(standings.CriterionGamePoints)
		teams[i].AvgPoints = 0
	}

	sb := make([]float64, len(teams))
	for _, m := range Matches(teams, results) {
		i := index[m.TeamID]
		opp := teams[index[m.OpponentID]].TotalPoints
		teams[i].MatchesPlayed++
		switch {
		case m.Won():
			teams[i].MatchWins++
			sb[i] += opp
		case m.Drawn():
			teams[i].MatchDraws++
			sb[i] += opp / 2
		default:
			teams[i].MatchLosses++
		}
	}

	for i := range teams {
		t := &teams[i]
		if t.MatchesPlayed > 0 {
			t.AvgPoints = t.TotalPoints / float64(t.MatchesPlayed)
		}
		t.Tiebreakers[standings.CriterionAvgGamePoints] = t.AvgPoints
		t.Tiebreakers[standings.CriterionMatchWins] = float64(t.MatchWins)
		t.Tiebreakers[standings.CriterionTeamSonnebornBerger] = sb[i]
	}
}
