/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/uschess"
)

// this program exists just to seed the http cache with an affiliate's
// recent crosstables

func main() {
	fs := flag.NewFlagSet("cacheseed", flag.ExitOnError)
	aid := fs.String("uscfaid", internal.BccUSCFAffiliateID, "USCF Affiliate ID")
	count := fs.Int("count", 20, "Number of recent events to seed")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	ctx := context.Background()
	client := uschess.NewClient(ctx)

	events, err := client.GetAffiliateEvents(ctx, *aid, *count)
	if err != nil {
		log.Fatalf("cacheseed: unable to list events for aid:%v: %v", *aid, err)
	}
	for _, event := range events {
		_, err := client.FetchCrossTables(ctx, event.ID)
		time.Sleep(2 * time.Second) // avoid pegging uschess.org
		if err != nil {
			// best effort
			continue
		}

		fmt.Printf("seeded ev:%v\n", event.Name)
	}
}
