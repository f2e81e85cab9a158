/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package standings

import (
	"cmp"
	"slices"
	"strings"
)

// Cascade is an ordered list of tiebreak criteria. The first criterion that
// differs decides.
type Cascade []Criterion

// DefaultCascade is used when a tournament configures no criteria.
var DefaultCascade = Cascade{
	CriterionBuchholzCut1,
	CriterionBuchholz,
	CriterionSonnebornBerger,
	CriterionProgressive,
}

func (c Cascade) String() string {
	names := make([]string, len(c))
	for i, crit := range c {
		names[i] = crit.String()
	}
	return strings.Join(names, ",")
}

// Compare orders a before b when it returns a negative number. Only the
// criteria and the final fallback are consulted; score is the caller's
// concern (see Rank). The result is never 0 for distinct IDs.
func (c Cascade) Compare(a, b Entry, kind Kind) int {
	for _, crit := range c {
		if r := compareCriterion(crit, a, b); r != 0 {
			return r
		}
	}
	return fallback(a, b, kind)
}

func compareCriterion(crit Criterion, a, b Entry) int {
	if !crit.IsScalar() {
		return compareSeries(a.Cumulative, b.Cumulative)
	}
	// higher wins, so reverse the natural order
	return cmp.Compare(b.Tiebreak(crit), a.Tiebreak(crit))
}

// compareSeries walks two cumulative score series from round 1 onward; the
// first larger value wins. A missing round counts as 0.
func compareSeries(a, b []float64) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		var av, bv float64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if r := cmp.Compare(bv, av); r != 0 {
			return r
		}
	}
	return 0
}

func fallback(a, b Entry, kind Kind) int {
	if kind == KindPlayer {
		if r := cmp.Compare(b.Rating, a.Rating); r != 0 {
			return r
		}
	}
	if r := cmp.Compare(a.Name, b.Name); r != 0 {
		return r
	}
	return cmp.Compare(a.ID, b.ID)
}

// Rank returns a sorted copy of entries: score descending, then the cascade.
// Place is filled in on the copy. The input slice is left untouched.
func Rank(entries []Entry, cascade Cascade, kind Kind) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = e.clone()
	}

	slices.SortStableFunc(out, func(a, b Entry) int {
		if r := cmp.Compare(b.TotalPoints, a.TotalPoints); r != 0 {
			return r
		}
		return cascade.Compare(a, b, kind)
	})
	assignPlaces(out)

	return out
}

// SortWithin re-orders entries (already known to share a score) purely by
// the cascade, returning a new slice.
func SortWithin(entries []Entry, cascade Cascade, kind Kind) []Entry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cascade.Compare(a, b, kind)
	})
	return out
}

func assignPlaces(sorted []Entry) {
	for i := range sorted {
		if i > 0 && sorted[i].TotalPoints == sorted[i-1].TotalPoints {
			sorted[i].Place = sorted[i-1].Place
		} else {
			sorted[i].Place = i + 1
		}
	}
}
