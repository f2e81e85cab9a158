/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package uschess

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/mikeb26/swisstd/internal"
)

type apiAffiliateEventsResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		EndDate string `json:"endDate"`
	} `json:"items"`
	Offset      int  `json:"offset"`
	PageSize    int  `json:"pageSize"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPreviousPage"`
}

// GetAffiliateEvents lists the rated events submitted by an affiliate, most
// recent first. A limit of 0 returns every event.
func (client *Client) GetAffiliateEvents(ctx context.Context,
	affiliateCode string, limit int) ([]Event, error) {

	const pageSize = 100
	var events []Event
	for offset := 0; ; offset += pageSize {
		q := url.Values{}
		q.Set("offset", strconv.Itoa(offset))
		q.Set("pageSize", strconv.Itoa(pageSize))
		eventsURL := fmt.Sprintf("%v/affiliates/%v/events?%v", apiBase,
			url.PathEscape(affiliateCode), q.Encode())

		var page apiAffiliateEventsResponse
		if err := getJSON(ctx, client.httpClient1day, eventsURL, &page); err != nil {
			return nil, fmt.Errorf("unable to list events for %v: %w",
				affiliateCode, err)
		}
		for _, item := range page.Items {
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
		if !page.HasNextPage {
			break
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].EndDate.After(events[j].EndDate)
	})
	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}

	return events, nil
}
