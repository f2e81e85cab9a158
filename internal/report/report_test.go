/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package report

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mikeb26/swisstd/config"
	"github.com/mikeb26/swisstd/prizes"
	"github.com/mikeb26/swisstd/standings"
	"github.com/mikeb26/swisstd/uschess"
)

func testEvent() Event {
	return Event{
		Name: "Club Swiss",
		Players: []standings.Entry{
			{ID: "A", Name: "Alice Adams", Rating: 1800},
			{ID: "B", Name: "Bob Brown", Rating: 1600},
			{ID: "C", Name: "Carol Chen", Rating: 1700},
			{ID: "D", Name: "Dan Diaz", Rating: 1500},
		},
		Results: []standings.RoundResult{
			{EntityID: "A", Round: 1, Points: 1, OpponentID: "B", Color: standings.ColorWhite},
			{EntityID: "B", Round: 1, Points: 0, OpponentID: "A", Color: standings.ColorBlack},
			{EntityID: "C", Round: 1, Points: 0.5, OpponentID: "D", Color: standings.ColorWhite},
			{EntityID: "D", Round: 1, Points: 0.5, OpponentID: "C", Color: standings.ColorBlack},
			{EntityID: "C", Round: 2, Points: 0.5, OpponentID: "A", Color: standings.ColorWhite},
			{EntityID: "A", Round: 2, Points: 0.5, OpponentID: "C", Color: standings.ColorBlack},
			{EntityID: "B", Round: 2, Points: 1, OpponentID: "D", Color: standings.ColorWhite},
			{EntityID: "D", Round: 2, Points: 0, OpponentID: "B", Color: standings.ColorBlack},
		},
	}
}

const teamsYAML = `
teams:
  - id: knights
    name: Knights
    members: [A, B]
  - id: rooks
    name: Rooks
    members: [C, D]
`

func mustParse(t *testing.T, data string) *config.Tournament {
	t.Helper()
	cfg, err := config.Parse([]byte(data))
	if err != nil {
		t.Fatalf("config.Parse: %v", err)
	}
	return cfg
}

func TestStandings(t *testing.T) {
	out := Standings(testEvent(), config.Default())
	if !strings.HasPrefix(out, "Club Swiss\n\n") {
		t.Errorf("expected the event name as a title:\n%s", out)
	}
	if !strings.Contains(out, "Alice Adams") || !strings.Contains(out, "1½") {
		t.Errorf("expected the leader in the table:\n%s", out)
	}
}

func TestTeams(t *testing.T) {
	if _, err := Teams(testEvent(), config.Default()); !errors.Is(err, ErrNoTeams) {
		t.Errorf("expected ErrNoTeams, got %v", err)
	}

	out, err := Teams(testEvent(), mustParse(t, teamsYAML))
	if err != nil {
		t.Fatalf("Teams: %v", err)
	}
	knights := strings.Index(out, "Knights")
	rooks := strings.Index(out, "Rooks")
	if knights < 0 || rooks < 0 || knights > rooks {
		t.Errorf("expected Knights ahead of Rooks:\n%s", out)
	}
}

func TestPrizes(t *testing.T) {
	catalog := []prizes.Definition{
		{ID: "p1", Name: "1st Place", Type: prizes.TypeCash, Amount: 100, Position: 1},
		{ID: "p2", Name: "2nd Place", Type: prizes.TypeCash, Amount: 50, Position: 2},
	}

	out, err := Prizes(testEvent(), config.Default(), catalog, false)
	if err != nil {
		t.Fatalf("Prizes: %v", err)
	}
	// Carol and Bob tie for 2nd-3rd and split the $50
	for _, want := range []string{"$100.00", "$25.00",
		"Prize fund $150.00, distributed $150.00, leftover $0.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}

	if _, err := Prizes(testEvent(), config.Default(), nil, false); !errors.Is(err, ErrNoCatalog) {
		t.Errorf("expected ErrNoCatalog, got %v", err)
	}
}

func TestPrizesByTeam(t *testing.T) {
	catalog := []prizes.Definition{
		{ID: "p1", Name: "Top Team", Type: prizes.TypeCash, Amount: 100, Position: 1},
	}
	if _, err := Prizes(testEvent(), config.Default(), catalog, true); !errors.Is(err, ErrNoTeams) {
		t.Errorf("expected ErrNoTeams, got %v", err)
	}

	out, err := Prizes(testEvent(), mustParse(t, teamsYAML), catalog, true)
	if err != nil {
		t.Fatalf("Prizes: %v", err)
	}
	if !strings.Contains(out, "Knights") || !strings.Contains(out, "$100.00") {
		t.Errorf("expected Knights to take the team prize:\n%s", out)
	}
	if strings.Contains(out, "Rooks") {
		t.Errorf("expected no award for Rooks:\n%s", out)
	}
}

func TestPrizesByTeamTrophyFollowsTeamStandings(t *testing.T) {
	ev := Event{
		Name: "Team Swiss",
		Players: []standings.Entry{
			{ID: "E", Name: "Eve Evans", Rating: 1500},
			{ID: "F", Name: "Frank Fox", Rating: 1900},
		},
		Results: []standings.RoundResult{
			{EntityID: "E", Round: 1, Points: 0.5, OpponentID: "F", Color: standings.ColorWhite},
			{EntityID: "F", Round: 1, Points: 0.5, OpponentID: "E", Color: standings.ColorBlack},
		},
	}
	cfg := mustParse(t, `
settings:
  team_scoring_policy: TOP_N
  top_n: 1
teams:
  - id: alpha
    name: Alpha
    members: [E]
  - id: bravo
    name: Bravo
    members: [F]
`)
	catalog := []prizes.Definition{
		{ID: "t1", Name: "Team Trophy", Type: prizes.TypeTrophy, Position: 1},
	}

	teams, err := Teams(ev, cfg)
	if err != nil {
		t.Fatalf("Teams: %v", err)
	}
	if strings.Index(teams, "Alpha") > strings.Index(teams, "Bravo") {
		t.Fatalf("expected Alpha ranked first on name:\n%s", teams)
	}

	out, err := Prizes(ev, cfg, catalog, true)
	if err != nil {
		t.Fatalf("Prizes: %v", err)
	}
	if !strings.Contains(out, "Alpha") || strings.Contains(out, "Bravo") {
		t.Errorf("expected the trophy to follow the team standings:\n%s", out)
	}
}

func TestCatalogFromConfig(t *testing.T) {
	cfg := mustParse(t, `
prizes:
  - name: 1st Place
    type: cash
    amount: 100
    position: 1
`)
	got, err := Catalog(context.Background(), nil, 0, cfg)
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	if len(got) != 1 || got[0].ID != "prize-1" {
		t.Errorf("expected the configured prize, got %+v", got)
	}
}

func TestBuildEventsOutput(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }
	events := []uschess.Event{
		{ID: 1, Name: "Early Swiss", EndDate: day(1)},
		{ID: 2, Name: "Tuesday Night", EndDate: day(10)},
		{ID: 3, Name: "Thursday Night", EndDate: day(12)},
		{ID: 4, Name: "Thursday Quads", EndDate: day(12)},
	}

	out := buildEventsOutput(events, "A5000408", day(5))
	want := "2025-06-12\n" +
		"  - Thursday Night (uscftid:3)\n" +
		"  - Thursday Quads (uscftid:4)\n" +
		"2025-06-10\n" +
		"  - Tuesday Night (uscftid:2)\n"
	if out != want {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", out, want)
	}

	if got := buildEventsOutput(events, "A5000408", day(20)); got != "No recent events found for aid:A5000408\n" {
		t.Errorf("unexpected empty output: %q", got)
	}
}
