/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// NormalizeName turns "DOE, JOHN" or "john   doe" into "John Doe". Names
// that already carry mixed case are left alone apart from whitespace.
func NormalizeName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if idx := strings.Index(name, ","); idx != -1 {
		last := strings.TrimSpace(name[:idx])
		first := strings.TrimSpace(name[idx+1:])
		if first != "" {
			name = first + " " + last
		} else {
			name = last
		}
	}
	if name == strings.ToUpper(name) || name == strings.ToLower(name) {
		name = cases.Title(language.English).String(strings.ToLower(name))
	}

	return name
}

// ScoreToString renders a chess score using ½ for half points: 0, ½, 2, 2½.
func ScoreToString(score float64) string {
	whole, frac := math.Modf(score)
	if frac == 0 {
		return fmt.Sprintf("%d", int(whole))
	}
	if math.Abs(frac) == 0.5 {
		if whole == 0 {
			return "½"
		}
		return fmt.Sprintf("%d½", int(whole))
	}
	return fmt.Sprintf("%.2f", score)
}

// FormatTable lays out headers and rows in left-aligned columns separated by
// two spaces. Column widths are computed in runes so ½ lines up.
func FormatTable(headers []string, rows [][]string) string {
	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = len([]rune(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(colWidths) && len([]rune(cell)) > colWidths[i] {
				colWidths[i] = len([]rune(cell))
			}
		}
	}

	var sb strings.Builder
	writeRow := func(cells []string) {
		var line strings.Builder
		for i, w := range colWidths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			line.WriteString(cell)
			if i < len(colWidths)-1 {
				line.WriteString(strings.Repeat(" ", w-len([]rune(cell))+2))
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteString("\n")
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}

	return sb.String()
}
