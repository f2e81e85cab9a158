/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package team

import (
	"fmt"
	"strconv"

	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/standings"
)

// BuildTeamOutput formats ranked team standings. Columns follow the scoring
// mode the standings were computed under.
func BuildTeamOutput(teams []Standing) string {
	if len(teams) == 0 {
		return "No team standings available\n"
	}

	var headers []string
	switch {
	case teams[0].Format == standings.TeamFormatMatchBased:
		headers = []string{"Place", "Team", "GP", "Avg", "W-D-L", "TBH", "TPR"}
	case teams[0].Policy == standings.TeamPolicyTopN:
		headers = []string{"Place", "Team", "Score", "Top3", "Top2", "Top1",
			"Counted"}
	default:
		headers = []string{"Place", "Team", "Score", "Players", "Avg", "TBH"}
	}

	var rows [][]string
	for idx, t := range teams {
		place := ""
		if idx == 0 || t.Place != teams[idx-1].Place {
			place = fmt.Sprintf("%v.", t.Place)
		}
		row := []string{place, t.Name, internal.ScoreToString(t.TotalPoints)}
		switch {
		case t.Format == standings.TeamFormatMatchBased:
			row = append(row,
				strconv.FormatFloat(t.AvgPoints, 'f', 2, 64),
				fmt.Sprintf("%v-%v-%v", t.MatchWins, t.MatchDraws, t.MatchLosses),
				tiebreak(t, standings.CriterionTeamBuchholz),
				tiebreak(t, standings.CriterionTeamPerformance))
		case t.Policy == standings.TeamPolicyTopN:
			row = append(row,
				tiebreak(t, standings.CriterionTop3Sum),
				tiebreak(t, standings.CriterionTop2Sum),
				tiebreak(t, standings.CriterionTop1),
				fmt.Sprintf("%v/%v", t.CountedPlayers, len(t.MemberIDs)))
		default:
			row = append(row,
				strconv.Itoa(t.CountedPlayers),
				strconv.FormatFloat(t.AvgPoints, 'f', 2, 64),
				tiebreak(t, standings.CriterionTeamBuchholz))
		}
		rows = append(rows, row)
	}

	return internal.FormatTable(headers, rows)
}

func tiebreak(t Standing, c standings.Criterion) string {
	return standings.FormatTiebreak(t.Entry, c)
}
