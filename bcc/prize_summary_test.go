/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bcc

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/mikeb26/swisstd/prizes"
)

func TestPrizeCatalogFromEvent(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(eventDetailJSON))
	}))
	detail, err := client.GetEventDetail(context.Background(), 1312)
	if err != nil {
		t.Fatalf("GetEventDetail returned error: %v", err)
	}

	got, err := PrizeCatalog(detail)
	if err != nil {
		t.Fatalf("PrizeCatalog returned error: %v", err)
	}

	want := []prizes.Definition{
		{ID: "bcc-1", Name: "Open 1st Place", Type: prizes.TypeCash, Amount: 300, Position: 1, Section: "Open"},
		{ID: "bcc-2", Name: "Open 2nd Place", Type: prizes.TypeCash, Amount: 150, Position: 2, Section: "Open"},
		{ID: "bcc-3", Name: "U1800 1st Place", Type: prizes.TypeCash, Amount: 100, Position: 1, Section: "U1800"},
		{ID: "bcc-4", Name: "U1800 2nd Place", Type: prizes.TypeCash, Amount: 50, Position: 2, Section: "U1800"},
		{ID: "bcc-5", Name: "Open 1st Place Trophy", Type: prizes.TypeTrophy, Position: 1, Section: "Open"},
		{ID: "bcc-6", Name: "Open 2nd Place Trophy", Type: prizes.TypeTrophy, Position: 2, Section: "Open"},
		{ID: "bcc-7", Name: "Open 3rd Place Trophy", Type: prizes.TypeTrophy, Position: 3, Section: "Open"},
		{ID: "bcc-8", Name: "Open Biggest Upset", Type: prizes.TypeCash, Amount: 25, Section: "Open",
			Conditions: []string{prizes.ConditionBiggestUpset}},
		{ID: "bcc-9", Name: "Open U1400", Type: prizes.TypeCash, Amount: 40, RatingCategory: "U1400", Section: "Open"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PrizeCatalog mismatch (-want +got):\n%s", diff)
	}
	if msgs := prizes.Validate(got); len(msgs) != 0 {
		t.Errorf("expected a valid catalog, got %v", msgs)
	}
}

func TestPrizeCatalogPhrases(t *testing.T) {
	tests := []struct {
		summary string
		want    []prizes.Definition
	}{
		{
			summary: "1st $1,000, 2nd: $150",
			want: []prizes.Definition{
				{Name: "1st Place", Type: prizes.TypeCash, Amount: 1000, Position: 1},
				{Name: "2nd Place", Type: prizes.TypeCash, Amount: 150, Position: 2},
			},
		},
		{
			summary: "Prizes: 1st $200 2nd $100",
			want: []prizes.Definition{
				{Name: "1st Place", Type: prizes.TypeCash, Amount: 200, Position: 1},
				{Name: "2nd Place", Type: prizes.TypeCash, Amount: 100, Position: 2},
			},
		},
		{
			summary: "1600-1799 $75",
			want: []prizes.Definition{
				{Name: "1600-1799", Type: prizes.TypeCash, Amount: 75, RatingCategory: "1600-1799"},
			},
		},
		{
			summary: "1st u1800 $100",
			want: []prizes.Definition{
				{Name: "1st U1800", Type: prizes.TypeCash, Amount: 100, Position: 1, RatingCategory: "U1800"},
			},
		},
		{
			summary: "Trophies to the top 2",
			want: []prizes.Definition{
				{Name: "1st Place Trophy", Type: prizes.TypeTrophy, Position: 1},
				{Name: "2nd Place Trophy", Type: prizes.TypeTrophy, Position: 2},
			},
		},
		{
			summary: "1st place medal",
			want: []prizes.Definition{
				{Name: "1st Place Medal", Type: prizes.TypeMedal, Position: 1},
			},
		},
		{
			summary: "Best unrated $20; biggest upset prize",
			want: []prizes.Definition{
				{Name: "Best Unrated", Type: prizes.TypeCash, Amount: 20,
					Conditions: []string{prizes.ConditionBestUnrated}},
				{Name: "Biggest Upset", Type: prizes.TypeTrophy,
					Conditions: []string{prizes.ConditionBiggestUpset}},
			},
		},
		{summary: "$500 prize fund", want: nil},
		{summary: "0th $10", want: nil},
		{summary: "", want: nil},
	}

	for _, tc := range tests {
		got, err := PrizeCatalog(EventDetail{PrizeSummary: tc.summary})
		if err != nil {
			t.Fatalf("PrizeCatalog(%q) returned error: %v", tc.summary, err)
		}
		if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty(),
			cmpopts.IgnoreFields(prizes.Definition{}, "ID")); diff != "" {
			t.Errorf("PrizeCatalog(%q) mismatch (-want +got):\n%s", tc.summary, diff)
		}
	}
}

func TestPrizeCatalogDuplicates(t *testing.T) {
	detail := EventDetail{
		PrizeSummary:    "1st $300",
		DescriptionHTML: "<p>Prizes</p><ul><li><p>1st $300</p></li></ul>",
	}
	got, err := PrizeCatalog(detail)
	if err != nil {
		t.Fatalf("PrizeCatalog returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "bcc-1" {
		t.Errorf("expected a single bcc-1 prize, got %+v", got)
	}
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th",
		12: "12th", 13: "13th", 21: "21st", 22: "22nd", 101: "101st"}
	for n, want := range tests {
		if got := ordinal(n); got != want {
			t.Errorf("ordinal(%d) = %q, want %q", n, got, want)
		}
	}
}
