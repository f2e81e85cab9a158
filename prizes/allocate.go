/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package prizes

import (
	"cmp"
	"maps"
	"slices"
	"strings"

	"github.com/mikeb26/swisstd/standings"
)

// Record is one entity's award.
type Record struct {
	EntityID   string
	EntityName string
	PrizeIDs   []string
	PrizeName  string
	PrizeType  Type
	Amount     float64
	Position   int
	// TieGroup is set when the award came out of a tied score group.
	TieGroup bool
	Special  bool
}

// Distribution is the outcome of one allocation.
type Distribution struct {
	Records     []Record
	TotalCash   float64
	Distributed float64
	Leftover    float64
	// Messages holds validation problems; the offending prizes were skipped.
	Messages []string
}

// awarded is the set of entities already holding a cash/trophy/medal/plaque
// award. Passes never modify the set they are given.
type awarded map[string]bool

func (a awarded) with(ids ...string) awarded {
	out := maps.Clone(a)
	if out == nil {
		out = make(awarded)
	}
	for _, id := range ids {
		out[id] = true
	}
	return out
}

// scoreGroup is a run of entities on exactly the same score.
type scoreGroup struct {
	start   int
	members []standings.Entry
}

func (g scoreGroup) end() int { return g.start + len(g.members) - 1 }

func (g scoreGroup) covers(position int) bool {
	return position >= g.start && position <= g.end()
}

// scoreGroups partitions ranked entries into score groups, keeping order.
func scoreGroups(ranked []standings.Entry) []scoreGroup {
	var out []scoreGroup
	for i, e := range ranked {
		if i == 0 || e.TotalPoints != ranked[i-1].TotalPoints {
			out = append(out, scoreGroup{start: i + 1})
		}
		last := &out[len(out)-1]
		last.members = append(last.members, e)
	}
	return out
}

// Allocate distributes catalog over ranked standings. Invalid prizes are
// reported in Messages and skipped; prizes that cannot apply, such as a
// position beyond the field, are skipped silently. cascade orders entities
// within a tied group for trophy-class prizes, falling back the way kind
// ranks its standings.
func Allocate(ranked []standings.Entry, catalog []Definition,
	cascade standings.Cascade, kind standings.Kind) Distribution {

	dist := Distribution{Messages: Validate(catalog)}
	valid := Valid(catalog)
	for _, d := range valid {
		if d.Type == TypeCash {
			dist.TotalCash += d.Amount
		}
	}
	if len(ranked) == 0 || len(valid) == 0 {
		dist.Leftover = dist.TotalCash
		return dist
	}

	field := slices.Clone(ranked)
	var general, restricted, special []Definition
	for _, d := range valid {
		switch {
		case d.IsSpecial():
			special = append(special, d)
		case d.IsRestricted():
			restricted = append(restricted, d)
		default:
			general = append(general, d)
		}
	}

	var recs []Record
	var got awarded
	recs, got = placePrizes(field, general, cascade, kind, got)
	dist.Records = append(dist.Records, recs...)

	recs, _ = restrictedPrizes(field, restricted, cascade, kind, got)
	dist.Records = append(dist.Records, recs...)

	dist.Records = append(dist.Records, specialPrizes(field, special)...)

	for _, r := range dist.Records {
		dist.Distributed += r.Amount
	}
	dist.Leftover = dist.TotalCash - dist.Distributed

	return dist
}

// placePrizes runs the cash pass and then the trophy pass over one field.
func placePrizes(field []standings.Entry, prizes []Definition,
	cascade standings.Cascade, kind standings.Kind, got awarded) ([]Record, awarded) {

	groups := scoreGroups(field)
	cashRecs, got := cashPass(groups, prizes, got)
	trophyRecs, got := trophyPass(groups, prizes, cascade, kind, got)

	return append(cashRecs, trophyRecs...), got
}

// cashPass pools the cash prizes whose positions fall inside each score
// group and splits the pool evenly across the group. Every member of a group
// that shared a pool is then marked awarded, paid or not.
func cashPass(groups []scoreGroup, prizes []Definition,
	got awarded) ([]Record, awarded) {

	var recs []Record
	for _, g := range groups {
		var pool float64
		var ids, names []string
		for _, d := range prizes {
			if d.Type != TypeCash || !g.covers(d.Position) {
				continue
			}
			pool += d.Amount
			ids = append(ids, d.ID)
			names = append(names, d.Name)
		}
		if len(ids) == 0 {
			continue
		}

		share := pool / float64(len(g.members))
		members := make([]string, 0, len(g.members))
		for _, e := range g.members {
			members = append(members, e.ID)
			if got[e.ID] {
				continue
			}
			recs = append(recs, Record{
				EntityID:   e.ID,
				EntityName: e.Name,
				PrizeIDs:   slices.Clone(ids),
				PrizeName:  strings.Join(names, " + "),
				PrizeType:  TypeCash,
				Amount:     share,
				Position:   g.start,
				TieGroup:   len(g.members) > 1,
			})
		}
		got = got.with(members...)
	}

	return recs, got
}

// trophyPass hands each trophy-class prize to the member of its score group
// whose cascade order matches the prize position, unless that member already
// holds an award.
func trophyPass(groups []scoreGroup, prizes []Definition,
	cascade standings.Cascade, kind standings.Kind, got awarded) ([]Record, awarded) {

	var trophies []Definition
	for _, d := range prizes {
		if d.Type.IsTrophyClass() && d.Position > 0 {
			trophies = append(trophies, d)
		}
	}
	slices.SortStableFunc(trophies, func(a, b Definition) int {
		return cmp.Compare(a.Position, b.Position)
	})

	var recs []Record
	for _, g := range groups {
		ordered := standings.SortWithin(g.members, cascade, kind)
		for _, d := range trophies {
			if !g.covers(d.Position) {
				continue
			}
			e := ordered[d.Position-g.start]
			if got[e.ID] {
				continue
			}
			recs = append(recs, Record{
				EntityID:   e.ID,
				EntityName: e.Name,
				PrizeIDs:   []string{d.ID},
				PrizeName:  d.Name,
				PrizeType:  d.Type,
				Position:   d.Position,
				TieGroup:   len(g.members) > 1,
			})
			got = got.with(e.ID)
		}
	}

	return recs, got
}

type poolKey struct {
	section  string
	category string
}

// restrictedPrizes allocates section and rating-class prizes. Each pool
// competes over the eligible entities that hold no award yet, with positions
// counted within that sub-field. Pools run in catalog order.
func restrictedPrizes(field []standings.Entry, prizes []Definition,
	cascade standings.Cascade, kind standings.Kind, got awarded) ([]Record, awarded) {

	var keys []poolKey
	pools := make(map[poolKey][]Definition)
	for _, d := range prizes {
		k := poolKey{strings.ToLower(d.Section), strings.ToUpper(d.RatingCategory)}
		if _, ok := pools[k]; !ok {
			keys = append(keys, k)
		}
		if d.Position == 0 {
			d.Position = 1
		}
		pools[k] = append(pools[k], d)
	}

	var recs []Record
	for _, k := range keys {
		rule := pools[k][0]
		var sub []standings.Entry
		for _, e := range field {
			if rule.eligible(e) && !got[e.ID] {
				sub = append(sub, e)
			}
		}
		if len(sub) == 0 {
			continue
		}
		var poolRecs []Record
		poolRecs, got = placePrizes(sub, pools[k], cascade, kind, got)
		recs = append(recs, poolRecs...)
	}

	return recs, got
}

// specialPrizes evaluates conditional prizes without regard to other
// awards. The first recognized condition on a prize decides its winner.
func specialPrizes(field []standings.Entry, prizes []Definition) []Record {
	var recs []Record
	for _, d := range prizes {
		var candidates []standings.Entry
		for _, e := range field {
			if d.eligible(e) {
				candidates = append(candidates, e)
			}
		}

		var winner *standings.Entry
		switch d.Conditions[0] {
		case ConditionBiggestUpset:
			winner = biggestUpset(candidates)
		case ConditionBestUnrated:
			winner = bestUnrated(candidates)
		}
		if winner == nil {
			continue
		}

		rec := Record{
			EntityID:   winner.ID,
			EntityName: winner.Name,
			PrizeIDs:   []string{d.ID},
			PrizeName:  d.Name,
			PrizeType:  d.Type,
			Special:    true,
		}
		if d.Type == TypeCash {
			rec.Amount = d.Amount
		}
		recs = append(recs, rec)
	}

	return recs
}

// biggestUpset picks the rated entity with the highest score, preferring the
// lowest rating among equal scores. Standings order settles the rest.
func biggestUpset(field []standings.Entry) *standings.Entry {
	var best *standings.Entry
	for i := range field {
		e := &field[i]
		if !e.IsRated() {
			continue
		}
		if best == nil || e.TotalPoints > best.TotalPoints ||
			(e.TotalPoints == best.TotalPoints && e.Rating < best.Rating) {
			best = e
		}
	}
	return best
}

// bestUnrated picks the highest-scoring unrated entity.
func bestUnrated(field []standings.Entry) *standings.Entry {
	var best *standings.Entry
	for i := range field {
		e := &field[i]
		if e.IsRated() {
			continue
		}
		if best == nil || e.TotalPoints > best.TotalPoints {
			best = e
		}
	}
	return best
}
