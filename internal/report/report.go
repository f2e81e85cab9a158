/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package report turns a rated event and a tournament file into the text
// reports both front ends serve.
package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/swisstd/bcc"
	"github.com/mikeb26/swisstd/config"
	"github.com/mikeb26/swisstd/internal/metrics"
	"github.com/mikeb26/swisstd/prizes"
	"github.com/mikeb26/swisstd/standings"
	"github.com/mikeb26/swisstd/team"
	"github.com/mikeb26/swisstd/uschess"
)

const (
	ReportStandings = "standings"
	ReportTeams     = "teams"
	ReportPrizes    = "prizes"
	ReportEvents    = "events"
	ReportPlayer    = "player"
)

var (
	ErrNoTeams   = errors.New("no teams configured")
	ErrNoCatalog = errors.New("no prizes configured")
)

// Event is the engine input for one rated event.
type Event struct {
	Name    string
	Players []standings.Entry
	Results []standings.RoundResult
}

// Load fetches a rated event's crosstables and converts them to engine input.
func Load(ctx context.Context, client *uschess.Client,
	id uschess.EventID) (Event, error) {

	tourney, err := client.FetchCrossTables(ctx, id)
	if err != nil {
		return Event{}, fmt.Errorf("unable to load event %v: %w", id, err)
	}
	players, results := tourney.EngineInput()

	return Event{Name: tourney.Event.Name, Players: players, Results: results}, nil
}

// Standings renders per-section individual standings.
func Standings(ev Event, cfg *config.Tournament) string {
	start := time.Now()
	sections := standings.ComputeSections(ev.Players, ev.Results, cfg.Settings)
	metrics.ObserveEngine(ReportStandings, start)

	return withTitle(ev.Name,
		standings.BuildStandingsOutput(sections, cfg.Settings.Criteria))
}

// Teams renders team standings for the configured teams.
func Teams(ev Event, cfg *config.Tournament) (string, error) {
	if len(cfg.Teams) == 0 {
		return "", ErrNoTeams
	}

	start := time.Now()
	ranked := team.Compute(cfg.Teams, ev.Players, ev.Results, cfg.Settings)
	metrics.ObserveEngine(ReportTeams, start)

	return withTitle(ev.Name, team.BuildTeamOutput(ranked)), nil
}

// Catalog picks the prize catalog: the club event's advertised prizes when
// bccEventID is set, otherwise the tournament file's.
func Catalog(ctx context.Context, client *bcc.Client, bccEventID int64,
	cfg *config.Tournament) ([]prizes.Definition, error) {

	if bccEventID <= 0 {
		return cfg.Prizes, nil
	}
	detail, err := client.GetEventDetail(ctx, bccEventID)
	if err != nil {
		return nil, err
	}
	catalog, err := bcc.PrizeCatalog(detail)
	if err != nil {
		return nil, err
	}
	if len(catalog) == 0 {
		return nil, fmt.Errorf("no prizes found in bcc event %v", bccEventID)
	}

	return catalog, nil
}

// LoadPrizeInputs fetches the rated event and the prize catalog
// concurrently.
func LoadPrizeInputs(ctx context.Context, uscfClient *uschess.Client,
	bccClient *bcc.Client, id uschess.EventID, bccEventID int64,
	cfg *config.Tournament) (Event, []prizes.Definition, error) {

	var ev Event
	var catalog []prizes.Definition
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ev, err = Load(gctx, uscfClient, id)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = Catalog(gctx, bccClient, bccEventID, cfg)
		return err
	})
	if err := g.Wait(); err != nil {
		return Event{}, nil, err
	}

	return ev, catalog, nil
}

// Prizes allocates catalog over the event. Individual prizes are allocated
// per section, with unsectioned prizes going to the first section shown.
// With byTeam set, the whole catalog is allocated over team standings.
func Prizes(ev Event, cfg *config.Tournament, catalog []prizes.Definition,
	byTeam bool) (string, error) {

	if len(catalog) == 0 {
		return "", ErrNoCatalog
	}

	if byTeam {
		if len(cfg.Teams) == 0 {
			return "", ErrNoTeams
		}
		start := time.Now()
		ranked := team.Compute(cfg.Teams, ev.Players, ev.Results, cfg.Settings)
		entries := make([]standings.Entry, len(ranked))
		for i, t := range ranked {
			entries[i] = t.Entry
		}
		dist := prizes.Allocate(entries, catalog, team.Cascade(cfg.Settings),
			standings.KindTeam)
		metrics.ObserveEngine(ReportPrizes, start)

		return withTitle(ev.Name, prizes.BuildPrizesOutput(dist)), nil
	}

	start := time.Now()
	sections := standings.ComputeSections(ev.Players, ev.Results, cfg.Settings)
	var sb strings.Builder
	for idx, sec := range sections {
		dist := prizes.Allocate(sec.Entries,
			prizes.ForSection(catalog, sec.Name, idx == 0),
			cfg.Settings.Criteria, standings.KindPlayer)
		if len(sections) > 1 {
			sb.WriteString(fmt.Sprintf("%s Section\n", sec.Name))
		}
		sb.WriteString(prizes.BuildPrizesOutput(dist))
		sb.WriteString("\n")
	}
	metrics.ObserveEngine(ReportPrizes, start)
	if len(sections) == 0 {
		sb.WriteString(prizes.BuildPrizesOutput(prizes.Allocate(nil, catalog,
			cfg.Settings.Criteria, standings.KindPlayer)))
	}

	return withTitle(ev.Name, sb.String()), nil
}

// FillRatings looks up the current rating of every unrated player that has
// a member id, so class prizes and rating fallbacks see it.
func FillRatings(ctx context.Context, client *uschess.Client, ev Event) Event {
	ev.Players = client.FillRatings(ctx, ev.Players)
	return ev
}

// Player reports a member's ratings, membership and most recent events.
func Player(ctx context.Context, client *uschess.Client, memID uschess.MemID,
	eventCount int) (string, error) {

	player, err := client.FetchPlayer(ctx, memID)
	if err != nil {
		return "", err
	}

	return uschess.BuildPlayerOutput(player, eventCount), nil
}

// Events lists an affiliate's rated events that ended within the last days
// days, grouped by end date, most recent first.
func Events(ctx context.Context, client *uschess.Client, affiliate string,
	days int, now time.Time) (string, error) {

	events, err := client.GetAffiliateEvents(ctx, affiliate, 0)
	if err != nil {
		return "", err
	}

	return buildEventsOutput(events, affiliate, now.AddDate(0, 0, -days)), nil
}

func buildEventsOutput(events []uschess.Event, affiliate string,
	since time.Time) string {

	eventsByDate := make(map[string][]uschess.Event)
	for _, ev := range events {
		if ev.EndDate.Before(since) {
			continue
		}
		key := ev.EndDate.Format("2006-01-02")
		eventsByDate[key] = append(eventsByDate[key], ev)
	}
	if len(eventsByDate) == 0 {
		return fmt.Sprintf("No recent events found for aid:%v\n", affiliate)
	}

	var dates []string
	for d := range eventsByDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i] > dates[j]
	})

	var sb strings.Builder
	for _, d := range dates {
		sb.WriteString(d + "\n")
		for _, ev := range eventsByDate[d] {
			sb.WriteString(fmt.Sprintf("  - %s (uscftid:%v)\n", ev.Name, ev.ID))
		}
	}

	return sb.String()
}

func withTitle(title, body string) string {
	if title == "" {
		return body
	}
	return title + "\n\n" + body
}
