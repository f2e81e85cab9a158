/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package bcc reads event details from the Boylston Chess Club API and
// derives a prize catalog from the advertised prize fund.
package bcc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/internal/httpcache"
)

const apiBase = "https://beta.boylstonchess.org/api"

// vended by https://beta.boylstonchess.org/api/event/<eventId>
// EventDetail represents detailed information about a specific event.
type EventDetail struct {
	EventID         int       `json:"eventId"`
	Title           string    `json:"title"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	DateDisplay     string    `json:"dateDisplay"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"descriptionHtml"`
	Sections        []string  `json:"sections"`
	EntryFeeSummary string    `json:"entryFeeSummary"`
	PrizeSummary    string    `json:"prizeSummary"`
	EventFormat     string    `json:"eventFormat"`
	TimeControl     string    `json:"timeControl"`
	NumEntries      int       `json:"numEntries"`
}

type Client struct {
	httpClient *http.Client
}

// NewClient returns a client whose responses are cached for a day.
func NewClient(ctx context.Context) *Client {
	return &Client{httpClient: httpcache.NewCachedHttpClient(ctx, 24*time.Hour)}
}

// NewClientWithHTTP uses hc for every request, bypassing the web cache.
func NewClientWithHTTP(hc *http.Client) *Client {
	return &Client{httpClient: hc}
}

// GetEventDetail fetches detailed event info from the Boylston Chess API
// for a given eventID and returns an EventDetail.
func (c *Client) GetEventDetail(ctx context.Context,
	eventID int64) (EventDetail, error) {

	url := fmt.Sprintf("%v/event/%d", apiBase, eventID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return EventDetail{}, fmt.Errorf("unable to fetch bcc event detail (new): %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return EventDetail{}, fmt.Errorf("unable to fetch bcc event detail (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return EventDetail{}, fmt.Errorf("unable to fetch bcc event detail (http): %v", resp.StatusCode)
	}

	var detail EventDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return EventDetail{}, fmt.Errorf("unable to parse bcc event detail: %w", err)
	}

	return detail, nil
}

// Custom unmarshaller for EventDetail to handle flexible date parsing.
func (ed *EventDetail) UnmarshalJSON(data []byte) error {
	type Alias EventDetail
	aux := &struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
		*Alias
	}{
		Alias: (*Alias)(ed),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return fmt.Errorf("EventDetail unmarshal: %w", err)
	}
	var err error
	ed.StartDate, err = internal.ParseDateOrZero(aux.StartDate)
	if err != nil {
		return fmt.Errorf("parsing EventDetail.StartDate: %w", err)
	}
	ed.EndDate, err = internal.ParseDateOrZero(aux.EndDate)
	if err != nil {
		return fmt.Errorf("parsing EventDetail.EndDate: %w", err)
	}
	return nil
}
