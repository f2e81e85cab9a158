/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package bcc

import (
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikeb26/swisstd/prizes"
)

var (
	thousandsRE = regexp.MustCompile(`(\d),(\d{3})`)
	prefixRE    = regexp.MustCompile(`^([^:$]+?)\s*:\s*(.*)$`)
	upsetRE     = regexp.MustCompile(`(?i)biggest\s+upset(?:\s*prize)?\s*[:\-]?\s*(?:\$\s*(\d+(?:\.\d{1,2})?))?`)
	unratedRE   = regexp.MustCompile(`(?i)(?:best|top)\s+unrated(?:\s*prize)?\s*[:\-]?\s*(?:\$\s*(\d+(?:\.\d{1,2})?))?`)
	topNRE      = regexp.MustCompile(`(?i)top\s+(\d+)\s+(trophies|trophy|medals|medal|plaques|plaque)`)
	toTopNRE    = regexp.MustCompile(`(?i)(trophies|trophy|medals|medal|plaques|plaque)\s+(?:to|for)\s+(?:the\s+)?top\s+(\d+)`)
	placeObjRE  = regexp.MustCompile(`(?i)\b(\d+)(?:st|nd|rd|th)\s*(?:place)?\s*[:\-]?\s*(trophy|medal|plaque)`)
	cashRE      = regexp.MustCompile(`(?i)\b(?:(\d+)(?:st|nd|rd|th)\s*(?:place)?\s*)?(?:(U\d{3,4}|\d{3,4}\s*-\s*\d{3,4}|\d{3,4}\+|unrated)\s*(?:prize)?\s*)?[:\-]?\s*\$\s*(\d+(?:\.\d{1,2})?)`)
)

// PrizeCatalog derives prize definitions from an event's prize summary and
// description. It understands phrases such as "1st $300", "2nd: $150",
// "U1800 $100", "Top 3 trophies" and "Biggest upset $25", optionally scoped
// to a section with an "Open:" prefix or a heading naming the section.
// Duplicates between the summary and the description are dropped, as is
// anything the prize validator rejects.
func PrizeCatalog(detail EventDetail) ([]prizes.Definition, error) {
	p := &catalogParser{sections: detail.Sections, seen: make(map[string]bool)}

	for _, segment := range strings.FieldsFunc(detail.PrizeSummary,
		func(r rune) bool { return r == ';' || r == '\n' }) {

		p.parseFragment(segment, "")
	}

	if strings.TrimSpace(detail.DescriptionHTML) != "" {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(detail.DescriptionHTML))
		if err != nil {
			return nil, fmt.Errorf("unable to parse bcc event description: %w", err)
		}
		section := ""
		doc.Find("h1, h2, h3, h4, h5, h6, p, li").Each(func(_ int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if sec, ok := p.matchSection(strings.TrimSuffix(text, ":")); ok {
				section = sec
				return
			}
			p.parseFragment(text, section)
		})
	}

	for _, msg := range prizes.Validate(p.defs) {
		log.Printf("bcc.PrizeCatalog: event %v skipping %v", detail.EventID, msg)
	}

	return prizes.Valid(p.defs), nil
}

type catalogParser struct {
	sections []string
	defs     []prizes.Definition
	seen     map[string]bool
}

// parseFragment reads one comma separated run of prize phrases. A leading
// "<section>:" switches the section for the rest of the run.
func (p *catalogParser) parseFragment(text string, section string) {
	text = thousandsRE.ReplaceAllString(text, "$1$2")
	for _, item := range strings.Split(text, ",") {
		item = strings.TrimSpace(item)
		if m := prefixRE.FindStringSubmatch(item); m != nil {
			if sec, ok := p.matchSection(m[1]); ok {
				section = sec
				item = m[2]
			}
		}
		if item == "" {
			continue
		}
		p.parseItem(item, section)
	}
}

func (p *catalogParser) parseItem(item string, section string) {
	if m := upsetRE.FindStringSubmatch(item); m != nil {
		p.addSpecial("Biggest Upset", prizes.ConditionBiggestUpset, m[1], section)
		return
	}
	if m := unratedRE.FindStringSubmatch(item); m != nil {
		p.addSpecial("Best Unrated", prizes.ConditionBestUnrated, m[1], section)
		return
	}
	if m := topNRE.FindStringSubmatch(item); m != nil {
		p.addPlaceObjects(m[1], m[2], section)
		return
	}
	if m := toTopNRE.FindStringSubmatch(item); m != nil {
		p.addPlaceObjects(m[2], m[1], section)
		return
	}
	if m := placeObjRE.FindStringSubmatch(item); m != nil {
		pos, _ := strconv.Atoi(m[1])
		typ := objectType(m[2])
		p.add(prizes.Definition{
			Name:     withSection(section, ordinal(pos)+" Place "+typeLabel(typ)),
			Type:     typ,
			Position: pos,
			Section:  section,
		})
		return
	}
	for _, m := range cashRE.FindAllStringSubmatch(item, -1) {
		if m[1] == "" && m[2] == "" {
			continue
		}
		amount, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			continue
		}
		pos := 0
		if m[1] != "" {
			pos, _ = strconv.Atoi(m[1])
		}
		cat := normalizeCategory(m[2])

		var name string
		switch {
		case cat == "":
			name = ordinal(pos) + " Place"
		case pos == 0:
			name = cat
		default:
			name = ordinal(pos) + " " + cat
		}
		p.add(prizes.Definition{
			Name:           withSection(section, name),
			Type:           prizes.TypeCash,
			Amount:         amount,
			Position:       pos,
			RatingCategory: cat,
			Section:        section,
		})
	}
}

func (p *catalogParser) addSpecial(name, condition, amount, section string) {
	d := prizes.Definition{
		Name:       withSection(section, name),
		Type:       prizes.TypeTrophy,
		Section:    section,
		Conditions: []string{condition},
	}
	if amount != "" {
		v, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return
		}
		d.Type = prizes.TypeCash
		d.Amount = v
	}
	p.add(d)
}

func (p *catalogParser) addPlaceObjects(count, word, section string) {
	n, err := strconv.Atoi(count)
	if err != nil {
		return
	}
	typ := objectType(word)
	for pos := 1; pos <= n; pos++ {
		p.add(prizes.Definition{
			Name:     withSection(section, ordinal(pos)+" Place "+typeLabel(typ)),
			Type:     typ,
			Position: pos,
			Section:  section,
		})
	}
}

// add appends d unless an identical prize was already found.
func (p *catalogParser) add(d prizes.Definition) {
	key := fmt.Sprintf("%v|%v|%v|%v|%v|%v", strings.ToLower(d.Section),
		d.RatingCategory, d.Position, d.Type, d.Amount, d.Conditions)
	if p.seen[key] {
		return
	}
	p.seen[key] = true
	d.ID = fmt.Sprintf("bcc-%d", len(p.defs)+1)
	p.defs = append(p.defs, d)
}

// matchSection resolves "Open", "open section" or "U1800 Section" to one of
// the event's section names.
func (p *catalogParser) matchSection(text string) (string, bool) {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)
	if strings.HasSuffix(lower, " section") {
		text = strings.TrimSpace(text[:len(text)-len(" section")])
	}
	for _, sec := range p.sections {
		if strings.EqualFold(text, sec) {
			return sec, true
		}
	}
	return "", false
}

func objectType(word string) prizes.Type {
	switch w := strings.ToLower(word); {
	case strings.HasPrefix(w, "medal"):
		return prizes.TypeMedal
	case strings.HasPrefix(w, "plaque"):
		return prizes.TypePlaque
	default:
		return prizes.TypeTrophy
	}
}

func typeLabel(t prizes.Type) string {
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}

func normalizeCategory(cat string) string {
	cat = strings.ReplaceAll(cat, " ", "")
	if strings.EqualFold(cat, "unrated") {
		return "Unrated"
	}
	return strings.ToUpper(cat)
}

func withSection(section, name string) string {
	if section == "" {
		return name
	}
	return section + " " + name
}

// ordinal renders 1 as "1st", 12 as "12th" and 22 as "22nd".
func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
