/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package uschess pulls rated-event crosstables from the US Chess ratings
// API and turns them into engine input.
package uschess

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/internal/httpcache"
)

const apiBase = "https://ratings-api.uschess.org/api/v1"

// EventID is a US Chess rated-event id, e.g. 202506242722.
type EventID int

// MemID is a US Chess member id.
type MemID int

// Event summarizes a rated event.
type Event struct {
	EndDate time.Time
	Name    string
	ID      EventID
}

type Client struct {
	httpClient30day *http.Client
	httpClient1day  *http.Client
}

func NewClient(ctx context.Context) *Client {
	return &Client{
		httpClient30day: httpcache.NewCachedHttpClient(ctx, 30*24*time.Hour),
		httpClient1day:  httpcache.NewCachedHttpClient(ctx, 24*time.Hour),
	}
}

// NewClientWithHTTP uses hc for every request, bypassing the web cache.
func NewClientWithHTTP(hc *http.Client) *Client {
	return &Client{httpClient30day: hc, httpClient1day: hc}
}

// getJSON fetches url and decodes its JSON body into out.
func getJSON(ctx context.Context, hc *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("unable to create request: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("unable to fetch %v: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d from %v: %s", resp.StatusCode,
			url, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse JSON from %v: %w", url, err)
	}

	return nil
}
