/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package standings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAggregate(t *testing.T) {
	results := append(fixtureResults(),
		RoundResult{EntityID: "E", Round: 1, Points: 1},
		RoundResult{EntityID: "E", Round: 2, Points: 0.5},
	)

	totals := Aggregate(results, false)
	want := map[string]float64{"A": 1.5, "B": 1, "C": 1, "D": 0.5, "E": 1.5}
	for id, pts := range want {
		if totals[id].TotalPoints != pts {
			t.Errorf("%v: TotalPoints = %v; want %v", id, totals[id].TotalPoints, pts)
		}
	}
	if totals["E"].GamesPlayed != 0 {
		t.Errorf("byes counted as games: got %v", totals["E"].GamesPlayed)
	}
	if totals["A"].GamesPlayed != 2 {
		t.Errorf("A: GamesPlayed = %v; want 2", totals["A"].GamesPlayed)
	}

	withByes := Aggregate(results, true)
	if withByes["E"].GamesPlayed != 2 {
		t.Errorf("byes not counted as games: got %v", withByes["E"].GamesPlayed)
	}

	if _, ok := totals["nobody"]; ok {
		t.Errorf("unexpected totals for an entity without results")
	}
	if totals["nobody"].TotalPoints != 0 {
		t.Errorf("missing entity should read as zero")
	}
}

func TestTotalsSeries(t *testing.T) {
	totals := Aggregate(fixtureResults(), false)

	if diff := cmp.Diff([]float64{1, 0.5, 0}, totals["A"].Series(3)); diff != "" {
		t.Errorf("Series mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{1, 1.5, 1.5}, totals["A"].Cumulative(3)); diff != "" {
		t.Errorf("Cumulative mismatch (-want +got):\n%s", diff)
	}
	if got := NumRounds(fixtureResults()); got != 2 {
		t.Errorf("NumRounds = %v; want 2", got)
	}
}

func TestFilterSection(t *testing.T) {
	players := fixturePlayers()
	players[2].Section = "U1600"
	players[3].Section = "U1600"

	got := FilterSection(fixtureResults(), players, "U1600")
	for _, r := range got {
		if r.EntityID != "C" && r.EntityID != "D" {
			t.Errorf("unexpected result for %v in U1600", r.EntityID)
		}
	}
	if len(got) != 4 {
		t.Errorf("expected 4 U1600 rows, got %d", len(got))
	}

	open := FilterSection(fixtureResults(), players, DefaultSection)
	if len(open) != 4 {
		t.Errorf("expected 4 Open rows, got %d", len(open))
	}
}
