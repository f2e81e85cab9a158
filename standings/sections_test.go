/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package standings

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSectionSorter(t *testing.T) {
	in := []string{"U1200", "Booster", "Open", "U2000", "Championship",
		"Reserve", "U1600"}
	sort.Sort(SectionSorter(in))

	want := []string{"Open", "Championship", "U2000", "U1600", "U1200",
		"Booster", "Reserve"}
	if diff := cmp.Diff(want, in); diff != "" {
		t.Errorf("SectionSorter mismatch (-want +got):\n%s", diff)
	}
}

func TestUnderLimit(t *testing.T) {
	tests := map[string]int{
		"U1800": 1800,
		"U":     -1,
		"Ux":    -1,
		"Open":  -1,
	}
	for in, want := range tests {
		if got := underLimit(in); got != want {
			t.Errorf("underLimit(%q) = %d; want %d", in, got, want)
		}
	}
}
