/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package standings

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Criterion names one tiebreak. Every criterion is compared higher-wins.
type Criterion int

const (
	CriterionBuchholz Criterion = iota + 1
	CriterionBuchholzCut1
	CriterionMedianBuchholz
	CriterionSonnebornBerger
	CriterionPerformance
	CriterionProgressive
	CriterionProgressiveSeries
	CriterionWins
	CriterionBlackGames

	CriterionTop1
	CriterionTop2Sum
	CriterionTop3Sum
	CriterionGamePoints
	CriterionAvgGamePoints
	CriterionTeamBuchholz
	CriterionMatchWins
	CriterionTeamSonnebornBerger
	CriterionTeamPerformance
)

var criterionNames = map[Criterion]string{
	CriterionBuchholz:            "buchholz",
	CriterionBuchholzCut1:        "buchholz_cut1",
	CriterionMedianBuchholz:      "median_buchholz",
	CriterionSonnebornBerger:     "sonneborn_berger",
	CriterionPerformance:         "performance",
	CriterionProgressive:         "progressive",
	CriterionProgressiveSeries:   "progressive_series",
	CriterionWins:                "wins",
	CriterionBlackGames:          "black_games",
	CriterionTop1:                "top_1",
	CriterionTop2Sum:             "top_2_sum",
	CriterionTop3Sum:             "top_3_sum",
	CriterionGamePoints:          "game_points",
	CriterionAvgGamePoints:       "avg_game_points",
	CriterionTeamBuchholz:        "team_buchholz",
	CriterionMatchWins:           "match_wins",
	CriterionTeamSonnebornBerger: "team_sonneborn_berger",
	CriterionTeamPerformance:     "team_performance",
}

// extra spellings seen in tournament configs, keyed by their folded form
var criterionAliases = map[string]Criterion{
	"bh":                      CriterionBuchholz,
	"solkoff":                 CriterionBuchholz,
	"cut1":                    CriterionBuchholzCut1,
	"modified_median":         CriterionMedianBuchholz,
	"median":                  CriterionMedianBuchholz,
	"sb":                      CriterionSonnebornBerger,
	"sonnebornberger":         CriterionSonnebornBerger,
	"tpr":                     CriterionPerformance,
	"performance_rating":      CriterionPerformance,
	"cumulative":              CriterionProgressive,
	"progressive_score":       CriterionProgressive,
	"most_blacks":             CriterionBlackGames,
	"top1":                    CriterionTop1,
	"top2":                    CriterionTop2Sum,
	"top3":                    CriterionTop3Sum,
	"total_game_points":       CriterionGamePoints,
	"wins_matches":            CriterionMatchWins,
	"team_sb":                 CriterionTeamSonnebornBerger,
	"team_tpr":                CriterionTeamPerformance,
	"team_performance_rating": CriterionTeamPerformance,
}

func (c Criterion) String() string {
	if n, ok := criterionNames[c]; ok {
		return n
	}
	return fmt.Sprintf("criterion(%d)", int(c))
}

// IsScalar reports whether the criterion is a single number stored in
// Entry.Tiebreakers. The progressive series is compared element-wise instead.
func (c Criterion) IsScalar() bool {
	return c != CriterionProgressiveSeries
}

// ParseCriterion maps a configured name onto a Criterion. Matching ignores
// case, and treats spaces and hyphens as underscores.
func ParseCriterion(name string) (Criterion, error) {
	// a Caser holds state, so each call gets its own
	key := cases.Fold().String(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	for c, n := range criterionNames {
		if n == key {
			return c, nil
		}
	}
	if c, ok := criterionAliases[key]; ok {
		return c, nil
	}

	return 0, fmt.Errorf("unknown tiebreak criterion %q", name)
}

// ParseCascade parses an ordered list of criterion names. Duplicates are
// dropped after their first occurrence since a repeated criterion can never
// decide anything.
func ParseCascade(names []string) (Cascade, error) {
	out := make(Cascade, 0, len(names))
	seen := make(map[Criterion]bool)
	for _, n := range names {
		c, err := ParseCriterion(n)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}

	return out, nil
}
