/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package prizes allocates a prize catalog over ranked standings.
package prizes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mikeb26/swisstd/standings"
)

// Type is the kind of prize. Every type except special prizes shares one
// award slot per entity.
type Type string

const (
	TypeCash   Type = "cash"
	TypeTrophy Type = "trophy"
	TypeMedal  Type = "medal"
	TypePlaque Type = "plaque"
)

// IsTrophyClass reports whether the prize is an object rather than money.
func (t Type) IsTrophyClass() bool {
	return t == TypeTrophy || t == TypeMedal || t == TypePlaque
}

const (
	ConditionBiggestUpset = "biggest_upset"
	ConditionBestUnrated  = "best_unrated"
)

// Definition is one configured prize.
type Definition struct {
	ID             string   `yaml:"id,omitempty"`
	Name           string   `yaml:"name" validate:"required"`
	Type           Type     `yaml:"type" validate:"oneof=cash trophy medal plaque"`
	Amount         float64  `yaml:"amount,omitempty" validate:"gte=0"`
	Position       int      `yaml:"position,omitempty" validate:"gte=0"`
	RatingCategory string   `yaml:"rating_category,omitempty" validate:"omitempty,ratingcategory"`
	Section        string   `yaml:"section,omitempty"`
	Conditions     []string `yaml:"conditions,omitempty" validate:"dive,oneof=biggest_upset best_unrated"`
}

// IsSpecial reports whether the prize is awarded by condition rather than
// by place. Special prizes are additive.
func (d Definition) IsSpecial() bool {
	return len(d.Conditions) > 0
}

// IsRestricted reports whether only part of the field is eligible.
func (d Definition) IsRestricted() bool {
	return d.Section != "" || d.RatingCategory != ""
}

// label identifies a prize in validation messages.
func (d Definition) label(idx int) string {
	switch {
	case d.ID != "":
		return d.ID
	case d.Name != "":
		return strconv.Quote(d.Name)
	default:
		return fmt.Sprintf("#%d", idx+1)
	}
}

// eligible reports whether e may compete for the prize at all.
func (d Definition) eligible(e standings.Entry) bool {
	if d.Section != "" {
		section := e.Section
		if section == "" {
			section = standings.DefaultSection
		}
		if !strings.EqualFold(section, d.Section) {
			return false
		}
	}
	if d.RatingCategory != "" {
		cat, err := ParseCategory(d.RatingCategory)
		if err != nil || !cat.Contains(e.Rating) {
			return false
		}
	}
	return true
}

// Category is a rating class such as U1800, 1600-1799, 2000+ or Unrated.
type Category struct {
	Min     int // inclusive, 0 for none
	Max     int // inclusive, 0 for none
	Unrated bool
}

// ParseCategory understands "U1800" (below 1800), "1600-1799", "2000+" and
// "Unrated".
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	bad := fmt.Errorf("unrecognized rating category %q", s)
	switch {
	case strings.EqualFold(s, "unrated"):
		return Category{Unrated: true}, nil
	case strings.HasPrefix(s, "U") || strings.HasPrefix(s, "u"):
		n, err := strconv.Atoi(s[1:])
		if err != nil || n <= 1 {
			return Category{}, bad
		}
		return Category{Max: n - 1}, nil
	case strings.HasSuffix(s, "+"):
		n, err := strconv.Atoi(strings.TrimSuffix(s, "+"))
		if err != nil || n <= 0 {
			return Category{}, bad
		}
		return Category{Min: n}, nil
	case strings.Contains(s, "-"):
		lo, hi, _ := strings.Cut(s, "-")
		from, err1 := strconv.Atoi(strings.TrimSpace(lo))
		to, err2 := strconv.Atoi(strings.TrimSpace(hi))
		if err1 != nil || err2 != nil || from <= 0 || to < from {
			return Category{}, bad
		}
		return Category{Min: from, Max: to}, nil
	}

	return Category{}, bad
}

// Contains reports whether rating falls in the class. Unrated entries only
// belong to the Unrated class.
func (c Category) Contains(rating int) bool {
	if c.Unrated {
		return rating <= 0
	}
	if rating <= 0 {
		return false
	}
	if c.Min > 0 && rating < c.Min {
		return false
	}
	if c.Max > 0 && rating > c.Max {
		return false
	}
	return true
}

// ForSection narrows a catalog to the prizes for one section of a
// multi-section event. Matching prizes come back with their section cleared
// so they compete over that section's standings alone. The primary section
// also receives every prize that names no section.
func ForSection(catalog []Definition, section string, primary bool) []Definition {
	var out []Definition
	for _, d := range catalog {
		switch {
		case d.Section == "" && primary:
			out = append(out, d)
		case d.Section != "" && strings.EqualFold(d.Section, section):
			d.Section = ""
			out = append(out, d)
		}
	}
	return out
}
