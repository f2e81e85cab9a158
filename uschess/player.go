/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package uschess

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/standings"
)

// maxPlayerFetches bounds concurrent member lookups in FillRatings
const maxPlayerFetches = 4

// Player holds information about a USCF member. A zero rating means the
// member is unrated in that system.
type Player struct {
	MemberID    MemID
	Name        string
	RegRating   int
	QuickRating int
	BlitzRating int
	// Expiration is the membership expiry; zero when unknown.
	Expiration  time.Time
	TotalEvents int
	// most recent first
	RecentEvents []Event
}

// PrimaryRating is the regular rating, else quick, else blitz.
func (p *Player) PrimaryRating() int {
	for _, r := range []int{p.RegRating, p.QuickRating, p.BlitzRating} {
		if r > 0 {
			return r
		}
	}
	return 0
}

// apiMemberResponse represents the JSON response from the member API endpoint
type apiMemberResponse struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	ExpirationDate string `json:"expirationDate"`
	Ratings        []struct {
		Rating       int    `json:"rating"`
		RatingSystem string `json:"ratingSystem"`
	} `json:"ratings"`
}

// apiMemberEventsResponse represents the JSON response from the member
// events API endpoint
type apiMemberEventsResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		EndDate string `json:"endDate"`
	} `json:"items"`
}

// FetchPlayer retrieves the member profile and rated-event history for the
// given USCF member ID. Both are requested concurrently.
func (client *Client) FetchPlayer(ctx context.Context,
	memberID MemID) (*Player, error) {

	var player *Player
	var events []Event
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		player, err = client.fetchMember(gctx, memberID)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = client.fetchMemberEvents(gctx, memberID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	player.TotalEvents = len(events)
	player.RecentEvents = events

	return player, nil
}

func (client *Client) fetchMember(ctx context.Context,
	memberID MemID) (*Player, error) {

	var data apiMemberResponse
	profileURL := fmt.Sprintf("%v/members/%v", apiBase, memberID)
	if err := getJSON(ctx, client.httpClient1day, profileURL, &data); err != nil {
		return nil, fmt.Errorf("unable to fetch member %v: %w", memberID, err)
	}

	player := &Player{
		MemberID: memberID,
		Name:     internal.NormalizeName(data.FirstName + " " + data.LastName),
	}
	for _, r := range data.Ratings {
		switch r.RatingSystem {
		case "R":
			player.RegRating = r.Rating
		case "Q":
			player.QuickRating = r.Rating
		case "B":
			player.BlitzRating = r.Rating
		}
	}
	expiration, err := internal.ParseDateOrZero(data.ExpirationDate)
	if err != nil {
		log.Printf("uschess.FetchPlayer: warning: unable to parse expiration %v for %v: %v",
			data.ExpirationDate, memberID, err)
	}
	player.Expiration = expiration

	return player, nil
}

func (client *Client) fetchMemberEvents(ctx context.Context,
	memberID MemID) ([]Event, error) {

	var data apiMemberEventsResponse
	eventsURL := fmt.Sprintf("%v/members/%v/events", apiBase, memberID)
	if err := getJSON(ctx, client.httpClient1day, eventsURL, &data); err != nil {
		return nil, fmt.Errorf("unable to fetch events for member %v: %w",
			memberID, err)
	}

	var events []Event
	for _, item := range data.Items {
		id, err := strconv.Atoi(item.ID)
		if err != nil {
			continue
		}
		endDate, _ := internal.ParseDateOrZero(item.EndDate)
		events = append(events, Event{
			EndDate: endDate,
			Name:    item.Name,
			ID:      EventID(id),
		})
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].EndDate.After(events[j].EndDate)
	})

	return events, nil
}

// FillRatings returns a copy of players in which entries without a rating
// and with a member id carry the member's primary rating. Lookups that fail
// are logged and leave the entry unrated.
func (client *Client) FillRatings(ctx context.Context,
	players []standings.Entry) []standings.Entry {

	out := slices.Clone(players)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxPlayerFetches)
	for i := range out {
		if out[i].IsRated() {
			continue
		}
		memID, err := strconv.Atoi(out[i].ID)
		if err != nil || memID <= 0 {
			continue
		}
		g.Go(func() error {
			p, err := client.fetchMember(gctx, MemID(memID))
			if err != nil {
				log.Printf("uschess.FillRatings: warning: %v", err)
				return nil
			}
			out[i].Rating = p.PrimaryRating()
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func ratingString(r int) string {
	if r <= 0 {
		return "<unrated>"
	}
	return strconv.Itoa(r)
}

// BuildPlayerOutput renders a member's ratings, membership and up to
// eventCount of their most recent rated events.
func BuildPlayerOutput(p *Player, eventCount int) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Player ID: %v\n", p.MemberID))
	sb.WriteString(fmt.Sprintf("Name: %v\n", p.Name))
	sb.WriteString(fmt.Sprintf("Rating(reg): %v\n", ratingString(p.RegRating)))
	sb.WriteString(fmt.Sprintf("Rating(quick): %v\n", ratingString(p.QuickRating)))
	sb.WriteString(fmt.Sprintf("Rating(blitz): %v\n", ratingString(p.BlitzRating)))
	expires := "unknown"
	if !p.Expiration.IsZero() {
		expires = p.Expiration.Format("2006-01-02")
	}
	sb.WriteString(fmt.Sprintf("Membership Expires: %v\n", expires))
	sb.WriteString(fmt.Sprintf("Rated Events: %v\n", p.TotalEvents))

	events := p.RecentEvents
	if eventCount >= 0 && len(events) > eventCount {
		events = events[:eventCount]
	}
	if len(events) > 0 {
		sb.WriteString(fmt.Sprintf("Most Recent(%v) Events:\n", len(events)))
		for _, ev := range events {
			sb.WriteString(fmt.Sprintf("  %v - %v (uscftid:%v)\n",
				ev.EndDate.Format("2006-01-02"), ev.Name, ev.ID))
		}
	}

	return sb.String()
}
