/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package uschess

import (
	"fmt"
	"strconv"

	"github.com/mikeb26/swisstd/standings"
)

// Points is what an outcome is worth in the standings.
func (r Result) Points() float64 {
	switch r {
	case ResultWin, ResultWinByForfeit, ResultFullBye:
		return 1
	case ResultDraw, ResultHalfBye:
		return 0.5
	default:
		return 0
	}
}

// OverTheBoard reports whether the game was actually played.
func (r Result) OverTheBoard() bool {
	return r == ResultWin || r == ResultLoss || r == ResultDraw
}

// EntityID is the standings id for a crosstable row: the member id, or a
// section-scoped pairing number for players without one.
func (xt *CrossTable) EntityID(e CrossTableEntry) string {
	if e.PlayerId != 0 {
		return strconv.Itoa(int(e.PlayerId))
	}
	return fmt.Sprintf("%v#%d", xt.SectionName, e.PairNum)
}

// EngineInput converts the section into standings entries and round
// results. Forfeits and byes carry no opponent and no color. Unplayed
// rounds produce no row.
func (xt *CrossTable) EngineInput() ([]standings.Entry, []standings.RoundResult) {
	byPairNum := make(map[int]string, len(xt.PlayerEntries))
	for _, e := range xt.PlayerEntries {
		byPairNum[e.PairNum] = xt.EntityID(e)
	}

	players := make([]standings.Entry, 0, len(xt.PlayerEntries))
	var results []standings.RoundResult
	for _, e := range xt.PlayerEntries {
		id := byPairNum[e.PairNum]
		rating, _ := strconv.Atoi(e.PlayerRatingPre)
		players = append(players, standings.Entry{
			ID:      id,
			Name:    e.PlayerName,
			Rating:  rating,
			Section: xt.SectionName,
		})

		for _, res := range e.Results {
			if res.Outcome == ResultUnplayedGame || res.Outcome == ResultUnknown {
				continue
			}
			rr := standings.RoundResult{
				EntityID: id,
				Round:    res.Round,
				Points:   res.Outcome.Points(),
			}
			if res.Outcome.OverTheBoard() {
				rr.OpponentID = byPairNum[res.OpponentPairNum]
				rr.Color = engineColor(res.Color)
			}
			results = append(results, rr)
		}
	}

	return players, results
}

// EngineInput merges every section's players and results.
func (t *Tournament) EngineInput() ([]standings.Entry, []standings.RoundResult) {
	var players []standings.Entry
	var results []standings.RoundResult
	for _, xt := range t.CrossTables {
		p, r := xt.EngineInput()
		players = append(players, p...)
		results = append(results, r...)
	}
	return players, results
}

func engineColor(c string) standings.Color {
	switch c {
	case "white":
		return standings.ColorWhite
	case "black":
		return standings.ColorBlack
	default:
		return standings.ColorNone
	}
}
