/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package prizes

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		def  Definition
		want []string
	}{
		{
			name: "valid cash",
			def:  Definition{ID: "a", Name: "1st", Type: TypeCash, Amount: 100, Position: 1},
		},
		{
			name: "valid class trophy",
			def:  Definition{ID: "a", Name: "Top U1600", Type: TypeTrophy, RatingCategory: "U1600"},
		},
		{
			name: "missing name",
			def:  Definition{ID: "a", Type: TypeMedal, Position: 1},
			want: []string{"prize a: name is required"},
		},
		{
			name: "bad type",
			def:  Definition{Name: "Book", Type: "voucher", Position: 1},
			want: []string{`prize "Book": type "voucher" must be one of: cash, trophy, medal, plaque`},
		},
		{
			name: "cash without amount",
			def:  Definition{ID: "a", Name: "1st", Type: TypeCash, Position: 1},
			want: []string{"prize a: cash prizes require an amount greater than 0"},
		},
		{
			name: "no target",
			def:  Definition{ID: "a", Name: "Door prize", Type: TypeTrophy},
			want: []string{"prize a: must specify at least one of position, rating_category, section or conditions"},
		},
		{
			name: "unknown condition",
			def: Definition{ID: "a", Name: "Fighting spirit", Type: TypeTrophy,
				Conditions: []string{"most_decisive"}},
			want: []string{`prize a: conditions[0] "most_decisive" must be one of: biggest_upset, best_unrated`},
		},
		{
			name: "bad category",
			def: Definition{ID: "a", Name: "Class", Type: TypeTrophy,
				RatingCategory: "beginners"},
			want: []string{`prize a: rating_category "beginners" is not a recognized class`},
		},
		{
			name: "negative position",
			def:  Definition{ID: "a", Name: "x", Type: TypeTrophy, Position: -1},
			want: []string{"prize a: position must not be negative"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Validate([]Definition{tc.def})
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Validate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateUnnamedLabel(t *testing.T) {
	got := Validate([]Definition{
		{Name: "ok", Type: TypeTrophy, Position: 1},
		{Type: TypeTrophy, Position: 2},
	})
	if len(got) != 1 || !strings.HasPrefix(got[0], "prize #2:") {
		t.Errorf("unexpected messages: %v", got)
	}
}

func TestValid(t *testing.T) {
	catalog := []Definition{
		{ID: "1", Name: "1st", Type: TypeCash, Amount: 10, Position: 1},
		{ID: "2", Name: "2nd", Type: TypeCash, Position: 2},
		{ID: "3", Name: "3rd", Type: TypeMedal, Position: 3},
	}
	var ids []string
	for _, d := range Valid(catalog) {
		ids = append(ids, d.ID)
	}
	if diff := cmp.Diff([]string{"1", "3"}, ids); diff != "" {
		t.Errorf("Valid mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		rating  int
		want    bool
		wantErr bool
	}{
		{in: "U1800", rating: 1799, want: true},
		{in: "U1800", rating: 1800, want: false},
		{in: "U1800", rating: 0, want: false},
		{in: "1600-1799", rating: 1600, want: true},
		{in: "1600-1799", rating: 1799, want: true},
		{in: "1600-1799", rating: 1800, want: false},
		{in: "2000+", rating: 2000, want: true},
		{in: "2000+", rating: 1999, want: false},
		{in: "Unrated", rating: 0, want: true},
		{in: "unrated", rating: 1200, want: false},
		{in: "1800-1600", wantErr: true},
		{in: "Ux", wantErr: true},
		{in: "beginners", wantErr: true},
	}
	for _, tc := range tests {
		cat, err := ParseCategory(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseCategory(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCategory(%q) error: %v", tc.in, err)
			continue
		}
		if got := cat.Contains(tc.rating); got != tc.want {
			t.Errorf("%q.Contains(%d) = %v; want %v", tc.in, tc.rating, got, tc.want)
		}
	}
}

func TestForSection(t *testing.T) {
	catalog := []Definition{
		{ID: "open1", Name: "1st", Type: TypeCash, Amount: 100, Position: 1},
		{ID: "u1", Name: "U1600 1st", Type: TypeCash, Amount: 50, Position: 1,
			Section: "U1600"},
		{ID: "u2", Name: "U1200 1st", Type: TypeTrophy, Position: 1,
			Section: "U1200"},
	}

	var ids []string
	for _, d := range ForSection(catalog, "u1600", false) {
		if d.Section != "" {
			t.Errorf("section not cleared on %v", d.ID)
		}
		ids = append(ids, d.ID)
	}
	if diff := cmp.Diff([]string{"u1"}, ids); diff != "" {
		t.Errorf("ForSection mismatch (-want +got):\n%s", diff)
	}
	if catalog[1].Section != "U1600" {
		t.Errorf("ForSection modified the catalog")
	}

	if got := ForSection(catalog, "Open", true); len(got) != 1 || got[0].ID != "open1" {
		t.Errorf("primary section should get unsectioned prizes, got %+v", got)
	}
}
