/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package standings

// four players, two rounds:
//
//	R1: A 1-0 B, C ½-½ D
//	R2: C ½-½ A, B 1-0 D
//
// final: A 1½, B 1, C 1, D ½
func fixturePlayers() []Entry {
	return []Entry{
		{ID: "A", Name: "Alice Adams", Rating: 1800},
		{ID: "B", Name: "Bob Brown", Rating: 1600},
		{ID: "C", Name: "Carol Chen", Rating: 1700},
		{ID: "D", Name: "Dan Diaz", Rating: 1500},
	}
}

func fixtureResults() []RoundResult {
	return []RoundResult{
		{EntityID: "A", Round: 1, Points: 1, OpponentID: "B", Color: ColorWhite},
		{EntityID: "B", Round: 1, Points: 0, OpponentID: "A", Color: ColorBlack},
		{EntityID: "C", Round: 1, Points: 0.5, OpponentID: "D", Color: ColorWhite},
		{EntityID: "D", Round: 1, Points: 0.5, OpponentID: "C", Color: ColorBlack},
		{EntityID: "C", Round: 2, Points: 0.5, OpponentID: "A", Color: ColorWhite},
		{EntityID: "A", Round: 2, Points: 0.5, OpponentID: "C", Color: ColorBlack},
		{EntityID: "B", Round: 2, Points: 1, OpponentID: "D", Color: ColorWhite},
		{EntityID: "D", Round: 2, Points: 0, OpponentID: "B", Color: ColorBlack},
	}
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
