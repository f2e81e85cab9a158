/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package standings

import (
	"math"
	"slices"
)

// ComputeTiebreaks derives the individual tiebreak values for every entity
// that has results. Opponent scores are final totals; byes and forfeits have
// no opponent and contribute nothing to the opponent-based criteria.
func ComputeTiebreaks(results []RoundResult, totals map[string]Totals,
	ratings map[string]int, numRounds int) map[string]map[Criterion]float64 {

	byEntity := make(map[string][]RoundResult)
	for _, r := range results {
		byEntity[r.EntityID] = append(byEntity[r.EntityID], r)
	}

	out := make(map[string]map[Criterion]float64, len(byEntity))
	for id, rows := range byEntity {
		tb := make(map[Criterion]float64)

		var oppScores []float64
		var sb, wins, blacks float64
		var ratedOppSum, ratedGames, ratedWins, ratedLosses int
		for _, r := range rows {
			if r.Color == ColorBlack {
				blacks++
			}
			if !r.HasOpponent() {
				continue
			}
			opp := totals[r.OpponentID].TotalPoints
			oppScores = append(oppScores, opp)
			sb += opp * r.Points
			if r.Points == 1 {
				wins++
			}
			if oppRating := ratings[r.OpponentID]; oppRating > 0 {
				ratedOppSum += oppRating
				ratedGames++
				switch r.Points {
				case 1:
					ratedWins++
				case 0:
					ratedLosses++
				}
			}
		}

		tb[CriterionBuchholz] = sum(oppScores)
		tb[CriterionBuchholzCut1] = cutBuchholz(oppScores, 1, 0)
		tb[CriterionMedianBuchholz] = cutBuchholz(oppScores, 1, 1)
		tb[CriterionSonnebornBerger] = sb
		tb[CriterionWins] = wins
		tb[CriterionBlackGames] = blacks
		tb[CriterionProgressive] = sum(totals[id].Cumulative(numRounds))
		if ratedGames > 0 {
			perf := float64(ratedOppSum+400*(ratedWins-ratedLosses)) /
				float64(ratedGames)
			tb[CriterionPerformance] = math.Round(perf)
		}

		out[id] = tb
	}

	return out
}

// cutBuchholz drops the lowest `low` and highest `high` opponent scores. The
// cut is only applied when at least one score would remain after it.
func cutBuchholz(scores []float64, low, high int) float64 {
	if len(scores) <= low+high {
		return sum(scores)
	}
	sorted := slices.Clone(scores)
	slices.Sort(sorted)
	return sum(sorted[low : len(sorted)-high])
}

func sum(vals []float64) float64 {
	total := 0.0
	for _, v := range vals {
		total += v
	}
	return total
}
