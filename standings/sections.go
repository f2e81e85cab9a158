/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package standings

import (
	"strconv"
	"strings"
)

// SectionSorter implements sort.Interface for display ordering of sections:
// "Open" first, then "Championship", then U<Number> sections descending by
// number, then everything else lexicographically.
type SectionSorter []string

func (s SectionSorter) Len() int { return len(s) }

func (s SectionSorter) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

func (s SectionSorter) Less(i, j int) bool {
	a, b := s[i], s[j]
	if ra, rb := sectionRank(a), sectionRank(b); ra != rb {
		return ra < rb
	}
	ua, ub := underLimit(a), underLimit(b)
	if ua >= 0 && ub >= 0 && ua != ub {
		return ua > ub
	}

	return a < b
}

// sectionRank buckets a section name: 0 Open, 1 Championship, 2 U-sections,
// 3 everything else.
func sectionRank(name string) int {
	switch {
	case name == DefaultSection:
		return 0
	case name == "Championship":
		return 1
	case underLimit(name) >= 0:
		return 2
	default:
		return 3
	}
}

// underLimit returns N for a "U<N>" section name, or -1.
func underLimit(name string) int {
	if !strings.HasPrefix(name, "U") {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimPrefix(name, "U"))
	if err != nil {
		return -1
	}
	return n
}
