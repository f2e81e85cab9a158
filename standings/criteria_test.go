/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package standings

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCriterion(t *testing.T) {
	tests := []struct {
		in   string
		want Criterion
	}{
		{"buchholz", CriterionBuchholz},
		{"Buchholz", CriterionBuchholz},
		{"solkoff", CriterionBuchholz},
		{"buchholz-cut1", CriterionBuchholzCut1},
		{"Median Buchholz", CriterionMedianBuchholz},
		{"SB", CriterionSonnebornBerger},
		{"sonneborn-berger", CriterionSonnebornBerger},
		{"  tpr ", CriterionPerformance},
		{"cumulative", CriterionProgressive},
		{"progressive_series", CriterionProgressiveSeries},
		{"TOP_3_SUM", CriterionTop3Sum},
		{"team_sb", CriterionTeamSonnebornBerger},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCriterion(tc.in)
			if err != nil {
				t.Fatalf("ParseCriterion(%q) returned error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseCriterion(%q) = %v; want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseCriterionUnknown(t *testing.T) {
	for _, in := range []string{"", "bucholz", "koya"} {
		if _, err := ParseCriterion(in); err == nil {
			t.Errorf("ParseCriterion(%q) expected error", in)
		}
	}
}

func TestCriterionNamesRoundTrip(t *testing.T) {
	for c, name := range criterionNames {
		if c.String() != name {
			t.Errorf("%d.String() = %q; want %q", int(c), c.String(), name)
		}
		got, err := ParseCriterion(name)
		if err != nil || got != c {
			t.Errorf("ParseCriterion(%q) = %v, %v; want %v", name, got, err, c)
		}
	}
}

func TestParseCascade(t *testing.T) {
	got, err := ParseCascade([]string{"sb", "buchholz", "sonneborn_berger", "cut1"})
	if err != nil {
		t.Fatalf("ParseCascade returned error: %v", err)
	}
	want := Cascade{CriterionSonnebornBerger, CriterionBuchholz, CriterionBuchholzCut1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseCascade mismatch (-want +got):\n%s", diff)
	}
	if got.String() != "sonneborn_berger,buchholz,buchholz_cut1" {
		t.Errorf("unexpected String(): %v", got.String())
	}

	if _, err := ParseCascade([]string{"buchholz", "nope"}); err == nil {
		t.Errorf("expected error for unknown criterion")
	}
}
