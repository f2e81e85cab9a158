/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package standings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mikeb26/swisstd/internal"
)

// maxTiebreakColumns caps how many cascade criteria are shown as columns
const maxTiebreakColumns = 3

// BuildStandingsOutput formats ranked sections into grouped, aligned string
// output. The place is only printed on the first row of each score group.
func BuildStandingsOutput(sections []Section, cascade Cascade) string {
	if len(sections) == 0 {
		return "No standings available\n"
	}
	if len(cascade) == 0 {
		cascade = DefaultCascade
	}
	shown := cascade
	if len(shown) > maxTiebreakColumns {
		shown = shown[:maxTiebreakColumns]
	}

	headers := []string{"Place", "Name", "Rating", "Score"}
	for _, c := range shown {
		headers = append(headers, c.String())
	}

	var sb strings.Builder
	for _, sec := range sections {
		var rows [][]string
		for idx, e := range sec.Entries {
			place := ""
			if idx == 0 || e.Place != sec.Entries[idx-1].Place {
				place = fmt.Sprintf("%v.", e.Place)
			}
			rating := "unr."
			if e.IsRated() {
				rating = strconv.Itoa(e.Rating)
			}
			row := []string{place, e.Name, rating,
				internal.ScoreToString(e.TotalPoints)}
			for _, c := range shown {
				row = append(row, FormatTiebreak(e, c))
			}
			rows = append(rows, row)
		}

		if len(sections) > 1 {
			sb.WriteString(fmt.Sprintf("%s Section\n", sec.Name))
		}
		sb.WriteString(internal.FormatTable(headers, rows))
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatTiebreak renders one criterion's value for display.
func FormatTiebreak(e Entry, c Criterion) string {
	if !c.IsScalar() {
		parts := make([]string, len(e.Cumulative))
		for i, v := range e.Cumulative {
			parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
		}
		return strings.Join(parts, "/")
	}
	return strconv.FormatFloat(e.Tiebreak(c), 'f', -1, 64)
}
