/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package uschess

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/standings"
)

// maxSectionFetches bounds concurrent section requests per event.
const maxSectionFetches = 4

// Result represents the outcome of a round.
type Result int

const (
	ResultWin Result = iota
	ResultLoss
	ResultDraw
	ResultFullBye
	ResultHalfBye
	ResultLossByForfeit
	ResultWinByForfeit
	ResultUnplayedGame
	ResultUnknown
)

// RoundResult holds the result of a single round for a player.
type RoundResult struct {
	Round           int
	OpponentPairNum int
	Outcome         Result
	Color           string
}

// CrossTableEntry holds the data for one player in the cross table.
type CrossTableEntry struct {
	PairNum          int
	PlayerName       string
	PlayerId         MemID
	PlayerRatingPre  string
	PlayerRatingPost string
	TotalPoints      float64
	Results          []RoundResult
}

type RatingType int

const (
	RatingTypeRegular RatingType = iota
	RatingTypeQuick
	RatingTypeBlitz
)

// CrossTable holds the full cross table data, one per section.
type CrossTable struct {
	SectionName   string
	NumRounds     int
	NumPlayers    int
	RType         RatingType
	PlayerEntries []CrossTableEntry
}

// Tournament encapsulates the overall event and its cross tables.
type Tournament struct {
	Event       Event
	NumSections int

	CrossTables []*CrossTable
}

type apiRatedEventResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	SectionCount int    `json:"sectionCount"`
	Sections     []struct {
		ID     string `json:"id"`
		Number int    `json:"number"`
		Name   string `json:"name"`
	} `json:"sections"`
}

type apiStandingsResponse struct {
	Items []apiStandingItem `json:"items"`
}

type apiStandingItem struct {
	Ordinal       int               `json:"ordinal"`
	PairingNumber int               `json:"pairingNumber"`
	MemberID      string            `json:"memberId"`
	FirstName     string            `json:"firstName"`
	LastName      string            `json:"lastName"`
	Score         float64           `json:"score"`
	RoundOutcomes []apiRoundOutcome `json:"roundOutcomes"`
	Ratings       []apiRatingChange `json:"ratings"`
}

type apiRoundOutcome struct {
	RoundNumber           int    `json:"roundNumber"`
	Outcome               string `json:"outcome"`
	Color                 string `json:"color"`
	OpponentOrdinal       int    `json:"opponentOrdinal"`
	OpponentPairingNumber int    `json:"opponentPairingNumber"`
}

type apiRatingChange struct {
	PreRating    int    `json:"preRating"`
	PostRating   int    `json:"postRating"`
	RatingSystem string `json:"ratingSystem"`
}

// FetchCrossTables retrieves a Tournament with all sections' cross tables
// for the given event id. Sections are fetched concurrently; a section that
// fails to load is logged and left out. Cross tables come back in display
// order.
func (client *Client) FetchCrossTables(ctx context.Context,
	id EventID) (*Tournament, error) {

	eventData, err := client.fetchRatedEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	sectionData := make([]*apiStandingsResponse, len(eventData.Sections))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxSectionFetches)
	for i, section := range eventData.Sections {
		g.Go(func() error {
			data, err := client.fetchSectionStandings(gctx, id, section.Number)
			if err != nil {
				log.Printf("uschess.FetchCrossTables: warning: failed to fetch section %d of %v: %v",
					section.Number, id, err)
				return nil
			}
			sectionData[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var crossTables []*CrossTable
	for i, section := range eventData.Sections {
		if sectionData[i] == nil {
			continue
		}
		crossTables = append(crossTables,
			convertStandingsToCrossTable(sectionData[i], section.Name))
	}
	sort.SliceStable(crossTables, func(i, j int) bool {
		return standings.SectionSorter{crossTables[i].SectionName,
			crossTables[j].SectionName}.Less(0, 1)
	})

	endDate, err := internal.ParseDateOrZero(eventData.EndDate)
	if err != nil {
		log.Printf("uschess.FetchCrossTables: warning: unable to parse event end date %v: %v",
			eventData.EndDate, err)
	}

	return &Tournament{
		Event: Event{
			EndDate: endDate,
			Name:    eventData.Name,
			ID:      id,
		},
		NumSections: len(crossTables),
		CrossTables: crossTables,
	}, nil
}

func (client *Client) fetchRatedEvent(ctx context.Context,
	id EventID) (*apiRatedEventResponse, error) {

	var eventData apiRatedEventResponse
	// rated events are rarely (if ever) updated so 1 month cache is fine
	err := getJSON(ctx, client.httpClient30day,
		fmt.Sprintf("%v/rated-events/%v", apiBase, id), &eventData)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch event %v: %w", id, err)
	}

	return &eventData, nil
}

func (client *Client) fetchSectionStandings(ctx context.Context,
	eventID EventID, sectionNum int) (*apiStandingsResponse, error) {

	var standingsData apiStandingsResponse
	err := getJSON(ctx, client.httpClient30day,
		fmt.Sprintf("%v/rated-events/%v/sections/%d/standings", apiBase,
			eventID, sectionNum), &standingsData)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch standings: %w", err)
	}

	return &standingsData, nil
}

func convertStandingsToCrossTable(data *apiStandingsResponse,
	sectionName string) *CrossTable {

	var entries []CrossTableEntry
	var numRounds int
	ratingType := RatingTypeRegular

	for _, item := range data.Items {
		// dual-rated sections report Regular first; otherwise take whatever
		// system the first player carries
		if len(entries) == 0 && len(item.Ratings) > 0 {
			ratingType = sectionRatingType(item.Ratings)
		}

		var results []RoundResult
		for i, outcome := range item.RoundOutcomes {
			round := outcome.RoundNumber
			if round == 0 {
				round = i + 1
			}
			results = append(results, RoundResult{
				Round:           round,
				OpponentPairNum: outcome.OpponentOrdinal,
				Outcome:         convertOutcome(outcome.Outcome),
				Color:           convertColor(outcome.Color),
			})
			if round > numRounds {
				numRounds = round
			}
		}

		var preRating, postRating string
		for _, rating := range item.Ratings {
			if ratingTypeOf(rating.RatingSystem) != ratingType {
				continue
			}
			if rating.PreRating > 0 {
				preRating = strconv.Itoa(rating.PreRating)
			}
			if rating.PostRating > 0 {
				postRating = strconv.Itoa(rating.PostRating)
			}
			break
		}

		memberID, err := strconv.Atoi(item.MemberID)
		if err != nil && item.MemberID != "" {
			log.Printf("uschess.convert: warning: failed to convert member ID %v to int: %v",
				item.MemberID, err)
		}

		entries = append(entries, CrossTableEntry{
			PairNum:          item.Ordinal,
			PlayerName:       internal.NormalizeName(item.FirstName + " " + item.LastName),
			PlayerId:         MemID(memberID),
			PlayerRatingPre:  preRating,
			PlayerRatingPost: postRating,
			TotalPoints:      item.Score,
			Results:          results,
		})
	}

	if sectionName == "" {
		sectionName = standings.DefaultSection
	}
	return &CrossTable{
		SectionName:   sectionName,
		NumRounds:     numRounds,
		NumPlayers:    len(entries),
		RType:         ratingType,
		PlayerEntries: entries,
	}
}

func sectionRatingType(ratings []apiRatingChange) RatingType {
	for _, r := range ratings {
		if ratingTypeOf(r.RatingSystem) == RatingTypeRegular {
			return RatingTypeRegular
		}
	}
	return ratingTypeOf(ratings[0].RatingSystem)
}

func ratingTypeOf(system string) RatingType {
	switch system {
	case "B":
		return RatingTypeBlitz
	case "Q":
		return RatingTypeQuick
	default:
		return RatingTypeRegular
	}
}

func convertOutcome(outcome string) Result {
	switch outcome {
	case "Win":
		return ResultWin
	case "Loss":
		return ResultLoss
	case "Draw":
		return ResultDraw
	case "ByeFull":
		return ResultFullBye
	case "ByeHalf":
		return ResultHalfBye
	case "LossByForfeit", "LossForfeit":
		return ResultLossByForfeit
	case "WinForfeit", "WinByForfeit":
		return ResultWinByForfeit
	case "Unplayed", "Unpaired":
		return ResultUnplayedGame
	default:
		return ResultUnknown
	}
}

func convertColor(color string) string {
	switch strings.ToLower(color) {
	case "white":
		return "white"
	case "black":
		return "black"
	default:
		return ""
	}
}
