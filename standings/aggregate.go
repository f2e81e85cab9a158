/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package standings

// Totals is the reduction of one entity's round results.
type Totals struct {
	EntityID    string
	TotalPoints float64
	GamesPlayed int
	// ByRound maps a 1-based round number to the points scored in it.
	ByRound map[int]float64
}

// Series returns per-round points for rounds 1..numRounds; absent rounds are 0.
func (t Totals) Series(numRounds int) []float64 {
	out := make([]float64, numRounds)
	for r, pts := range t.ByRound {
		if r >= 1 && r <= numRounds {
			out[r-1] += pts
		}
	}
	return out
}

// Cumulative returns the running total after each of rounds 1..numRounds.
func (t Totals) Cumulative(numRounds int) []float64 {
	out := t.Series(numRounds)
	for i := 1; i < len(out); i++ {
		out[i] += out[i-1]
	}
	return out
}

// Aggregate reduces round results into per-entity totals. Games played counts
// rows with an opponent, plus byes when countByes is set. Entities without rows
// simply do not appear; callers treat them as zero.
func Aggregate(results []RoundResult, countByes bool) map[string]Totals {
	out := make(map[string]Totals)
	for _, r := range results {
		t, ok := out[r.EntityID]
		if !ok {
			t = Totals{EntityID: r.EntityID, ByRound: make(map[int]float64)}
		}
		t.TotalPoints += r.Points
		t.ByRound[r.Round] += r.Points
		if r.HasOpponent() || countByes {
			t.GamesPlayed++
		}
		out[r.EntityID] = t
	}

	return out
}

// NumRounds is the highest round number present in results.
func NumRounds(results []RoundResult) int {
	n := 0
	for _, r := range results {
		if r.Round > n {
			n = r.Round
		}
	}
	return n
}

// FilterSection keeps the results whose entity belongs to section. Sections
// default to DefaultSection when an entry leaves it blank.
func FilterSection(results []RoundResult, entries []Entry, section string) []RoundResult {
	members := make(map[string]bool)
	for _, e := range entries {
		if sectionOf(e) == section {
			members[e.ID] = true
		}
	}
	var out []RoundResult
	for _, r := range results {
		if members[r.EntityID] {
			out = append(out, r)
		}
	}
	return out
}

func sectionOf(e Entry) string {
	if e.Section == "" {
		return DefaultSection
	}
	return e.Section
}
