/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package standings

import (
	"sort"
)

// Compute builds ranked standings for a single pool of players from the raw
// round results. Players without results still appear with zero points; ids
// seen only in results are added with the id as their name. The inputs are
// not modified.
func Compute(players []Entry, results []RoundResult, settings Settings) []Entry {
	cascade := settings.Criteria
	if len(cascade) == 0 {
		cascade = DefaultCascade
	}

	entries := withDefaults(players, results)
	totals := Aggregate(results, settings.CountByesAsGames)
	numRounds := NumRounds(results)

	ratings := make(map[string]int, len(entries))
	for _, e := range entries {
		ratings[e.ID] = e.Rating
	}
	tiebreaks := ComputeTiebreaks(results, totals, ratings, numRounds)

	for i, e := range entries {
		t := totals[e.ID]
		e.TotalPoints = t.TotalPoints
		e.GamesPlayed = t.GamesPlayed
		e.Cumulative = t.Cumulative(numRounds)
		if e.Tiebreakers == nil {
			e.Tiebreakers = make(map[Criterion]float64)
		}
		for c, v := range tiebreaks[e.ID] {
			e.Tiebreakers[c] = v
		}
		entries[i] = e
	}

	return Rank(entries, cascade, KindPlayer)
}

// Section is one section's ranked standings.
type Section struct {
	Name    string
	Entries []Entry
}

// ComputeSections ranks each section independently. Opponent-based
// tiebreaks still see every result, so cross-section games (rare, but seen
// in small events) are scored correctly. Sections come back in display order.
func ComputeSections(players []Entry, results []RoundResult,
	settings Settings) []Section {

	all := Compute(players, results, settings)
	bySection := make(map[string][]Entry)
	for _, e := range all {
		bySection[e.Section] = append(bySection[e.Section], e)
	}

	var names []string
	for name := range bySection {
		names = append(names, name)
	}
	sort.Sort(SectionSorter(names))

	cascade := settings.Criteria
	if len(cascade) == 0 {
		cascade = DefaultCascade
	}
	out := make([]Section, 0, len(names))
	for _, name := range names {
		out = append(out, Section{
			Name:    name,
			Entries: Rank(bySection[name], cascade, KindPlayer),
		})
	}

	return out
}

// withDefaults copies players, fills in a missing section, and appends any
// entity that only shows up in the results.
func withDefaults(players []Entry, results []RoundResult) []Entry {
	out := make([]Entry, 0, len(players))
	known := make(map[string]bool, len(players))
	for _, p := range players {
		if known[p.ID] {
			continue
		}
		known[p.ID] = true
		e := p.clone()
		if e.Section == "" {
			e.Section = DefaultSection
		}
		if e.Name == "" {
			e.Name = e.ID
		}
		out = append(out, e)
	}
	for _, r := range results {
		if known[r.EntityID] {
			continue
		}
		known[r.EntityID] = true
		out = append(out, Entry{
			ID:          r.EntityID,
			Name:        r.EntityID,
			Section:     DefaultSection,
			Tiebreakers: make(map[Criterion]float64),
		})
	}

	return out
}
