/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package team rolls individual results up into team standings.
package team

import (
	"cmp"
	"math"
	"slices"

	"github.com/mikeb26/swisstd/standings"
)

// Team is a named group of players.
type Team struct {
	ID        string
	Name      string
	MemberIDs []string
}

// Standing is one team's row in the team standings. The embedded Entry
// carries the team score, cumulative series, tiebreakers and place.
type Standing struct {
	standings.Entry

	MemberIDs []string
	Policy    standings.TeamPolicy
	Format    standings.TeamFormat

	// Counted lists the members whose scores make up TotalPoints, best first.
	Counted        []string
	CountedPlayers int
	CountedGames   int
	// AvgPoints is points per active member (ALL, TOP_N) or game points
	// per match (MATCH_BASED).
	AvgPoints float64

	MatchesPlayed int
	MatchWins     int
	MatchDraws    int
	MatchLosses   int
}

// Cascade returns the canonical tiebreak order for the configured policy
// and format. Name ascending is always the final fallback.
func Cascade(settings standings.Settings) standings.Cascade {
	switch {
	case settings.TeamFormat == standings.TeamFormatMatchBased:
		return standings.Cascade{
			standings.CriterionAvgGamePoints,
			standings.CriterionTeamBuchholz,
			standings.CriterionMatchWins,
			standings.CriterionTeamPerformance,
		}
	case settings.TeamPolicy == standings.TeamPolicyTopN:
		return standings.Cascade{
			standings.CriterionTop3Sum,
			standings.CriterionTop2Sum,
			standings.CriterionTop1,
			standings.CriterionProgressiveSeries,
		}
	default:
		return standings.Cascade{
			standings.CriterionTeamBuchholz,
			standings.CriterionProgressiveSeries,
		}
	}
}

type member struct {
	id         string
	rating     int
	points     float64
	games      int
	cumulative []float64
}

// Compute derives ranked team standings from the individual players and
// their round results. Members missing from both players and results are
// treated as inactive. Nothing passed in is modified.
func Compute(teams []Team, players []standings.Entry,
	results []standings.RoundResult, settings standings.Settings) []Standing {

	if len(teams) == 0 {
		return nil
	}

	totals := standings.Aggregate(results, settings.CountByesAsGames)
	numRounds := standings.NumRounds(results)
	ratings := make(map[string]int, len(players))
	active := make(map[string]bool, len(players))
	for _, p := range players {
		ratings[p.ID] = p.Rating
		active[p.ID] = true
	}
	for id := range totals {
		active[id] = true
	}

	out := make([]Standing, 0, len(teams))
	for _, t := range teams {
		var members []member
		for _, id := range t.MemberIDs {
			if !active[id] {
				continue
			}
			tot := totals[id]
			members = append(members, member{
				id:         id,
				rating:     ratings[id],
				points:     tot.TotalPoints,
				games:      tot.GamesPlayed,
				cumulative: tot.Cumulative(numRounds),
			})
		}
		out = append(out, score(t, members, settings, numRounds))
	}

	teamBuchholz(out, results, totals)
	if settings.TeamFormat == standings.TeamFormatMatchBased {
		applyMatches(out, results)
	}
	for i := range out {
		out[i].Tiebreakers[standings.CriterionTeamPerformance] =
			PerformanceRating(out[i].Tiebreak(standings.CriterionGamePoints),
				out[i].GamesPlayed)
	}

	return rank(out, Cascade(settings))
}

// score applies the member roll-up policy to one team.
func score(t Team, members []member, settings standings.Settings,
	numRounds int) Standing {

	slices.SortFunc(members, func(a, b member) int {
		if r := cmp.Compare(b.points, a.points); r != 0 {
			return r
		}
		if r := cmp.Compare(b.rating, a.rating); r != 0 {
			return r
		}
		return cmp.Compare(a.id, b.id)
	})

	// team matches count every board
	counted := members
	if settings.TeamPolicy == standings.TeamPolicyTopN &&
		settings.TeamFormat != standings.TeamFormatMatchBased &&
		len(counted) > settings.EffectiveTopN() {
		counted = counted[:settings.EffectiveTopN()]
	}

	st := Standing{
		Entry: standings.Entry{
			ID:          t.ID,
			Name:        t.Name,
			Section:     standings.DefaultSection,
			Cumulative:  make([]float64, numRounds),
			Tiebreakers: make(map[standings.Criterion]float64),
		},
		MemberIDs: slices.Clone(t.MemberIDs),
		Policy:    settings.TeamPolicy,
		Format:    settings.TeamFormat,
	}
	if st.Name == "" {
		st.Name = t.ID
	}

	var gamePoints float64
	var ratingSum, rated int
	for _, m := range members {
		gamePoints += m.points
		st.GamesPlayed += m.games
		if m.rating > 0 {
			ratingSum += m.rating
			rated++
		}
	}
	for i, m := range counted {
		st.Counted = append(st.Counted, m.id)
		st.TotalPoints += m.points
		st.CountedGames += m.games
		for r, v := range m.cumulative {
			st.Cumulative[r] += v
		}
		if i < 1 {
			st.Tiebreakers[standings.CriterionTop1] += m.points
		}
		if i < 2 {
			st.Tiebreakers[standings.CriterionTop2Sum] += m.points
		}
		if i < 3 {
			st.Tiebreakers[standings.CriterionTop3Sum] += m.points
		}
	}
	st.CountedPlayers = len(counted)
	if len(members) > 0 {
		st.AvgPoints = gamePoints / float64(len(members))
	}
	if rated > 0 {
		st.Rating = int(math.Round(float64(ratingSum) / float64(rated)))
	}

	var progressive float64
	for _, v := range st.Cumulative {
		progressive += v
	}
	st.Tiebreakers[standings.CriterionProgressive] = progressive
	st.Tiebreakers[standings.CriterionGamePoints] = gamePoints

	return st
}

// teamBuchholz adds, for every member game against an opponent, that
// opponent's final total.
func teamBuchholz(teams []Standing, results []standings.RoundResult,
	totals map[string]standings.Totals) {

	teamOf := memberIndex(teams)
	bh := make([]float64, len(teams))
	for _, r := range results {
		idx, ok := teamOf[r.EntityID]
		if !ok || !r.HasOpponent() {
			continue
		}
		bh[idx] += totals[r.OpponentID].TotalPoints
	}
	for i := range teams {
		teams[i].Tiebreakers[standings.CriterionTeamBuchholz] = bh[i]
	}
}

// memberIndex maps a player id to the index of the first team listing it.
func memberIndex(teams []Standing) map[string]int {
	out := make(map[string]int)
	for i, t := range teams {
		for _, id := range t.MemberIDs {
			if _, dup := out[id]; !dup {
				out[id] = i
			}
		}
	}
	return out
}

// PerformanceRating is the team performance heuristic:
// 1200 + (gamePoints/games - 0.5) * 400, rounded, or 0 without games.
func PerformanceRating(gamePoints float64, games int) float64 {
	if games == 0 {
		return 0
	}
	return math.Round(1200 + (gamePoints/float64(games)-0.5)*400)
}

func rank(teams []Standing, cascade standings.Cascade) []Standing {
	byID := make(map[string]Standing, len(teams))
	entries := make([]standings.Entry, len(teams))
	for i, t := range teams {
		byID[t.ID] = t
		entries[i] = t.Entry
	}

	ranked := standings.Rank(entries, cascade, standings.KindTeam)
	out := make([]Standing, len(ranked))
	for i, e := range ranked {
		st := byID[e.ID]
		st.Entry = e
		out[i] = st
	}

	return out
}
