/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mikeb26/swisstd/bcc"
	"github.com/mikeb26/swisstd/config"
	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/internal/report"
	"github.com/mikeb26/swisstd/uschess"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":      handleHelp,
	"standings": handleStandings,
	"teams":     handleTeams,
	"prizes":    handlePrizes,
	"validate":  handleValidate,
	"events":    handleEvents,
	"player":    handlePlayer,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

// eventFlags registers the flags shared by every report command.
func eventFlags(fs *flag.FlagSet) (*int, *string) {
	tid := fs.Int("uscftid", 0, "USCF Tournament ID")
	cfgPath := fs.String("config", os.Getenv(config.EnvConfigPath),
		"Tournament file (settings, prizes, teams)")
	return tid, cfgPath
}

func requireTid(fs *flag.FlagSet, tid int) {
	if tid <= 0 {
		fmt.Fprintln(os.Stderr, "Please provide a valid --uscftid ID.")
		fs.Usage()
		os.Exit(1)
	}
}

// loadConfig reads the tournament file, or returns the defaults when no
// file is given. Prize warnings are echoed to stderr.
func loadConfig(path string) *config.Tournament {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}
	for _, w := range cfg.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %v\n", w)
	}
	return cfg
}

func loadEvent(ctx context.Context, tid int) report.Event {
	ev, err := report.Load(ctx, uschess.NewClient(ctx), uschess.EventID(tid))
	if err != nil {
		log.Fatalf("Error fetching cross tables %d: %v", tid, err)
	}
	return ev
}

func handleStandings(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("standings", flag.ExitOnError)
	tid, cfgPath := eventFlags(fs)
	fill := fs.Bool("fill-ratings", false,
		"Look up current ratings for players unrated in the event")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	requireTid(fs, *tid)

	cfg := loadConfig(*cfgPath)
	ev := loadEvent(ctx, *tid)
	if *fill {
		ev = report.FillRatings(ctx, uschess.NewClient(ctx), ev)
	}
	fmt.Print(report.Standings(ev, cfg))
}

func handleTeams(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("teams", flag.ExitOnError)
	tid, cfgPath := eventFlags(fs)
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	requireTid(fs, *tid)
	if *cfgPath == "" {
		fmt.Fprintln(os.Stderr, "Please provide a --config file listing the teams.")
		fs.Usage()
		os.Exit(1)
	}

	cfg := loadConfig(*cfgPath)
	output, err := report.Teams(loadEvent(ctx, *tid), cfg)
	if err != nil {
		log.Fatalf("Error computing team standings: %v", err)
	}
	fmt.Print(output)
}

func handlePrizes(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("prizes", flag.ExitOnError)
	tid, cfgPath := eventFlags(fs)
	eventID := fs.Int("eventid", 0,
		"BCC event ID to read the advertised prize fund from")
	byTeam := fs.Bool("teams", false, "Award prizes over team standings")
	fill := fs.Bool("fill-ratings", false,
		"Look up current ratings for players unrated in the event")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	requireTid(fs, *tid)
	if *cfgPath == "" && *eventID <= 0 {
		fmt.Fprintln(os.Stderr, "Please provide a --config file or a BCC --eventid.")
		fs.Usage()
		os.Exit(1)
	}

	cfg := loadConfig(*cfgPath)
	uscfClient := uschess.NewClient(ctx)
	ev, catalog, err := report.LoadPrizeInputs(ctx, uscfClient,
		bcc.NewClient(ctx), uschess.EventID(*tid), int64(*eventID), cfg)
	if err != nil {
		log.Fatalf("Error loading event %d: %v", *tid, err)
	}
	if *fill {
		ev = report.FillRatings(ctx, uscfClient, ev)
	}
	output, err := report.Prizes(ev, cfg, catalog, *byTeam)
	if err != nil {
		log.Fatalf("Error allocating prizes: %v", err)
	}
	fmt.Print(output)
}

func handleValidate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", os.Getenv(config.EnvConfigPath),
		"Tournament file to check")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *cfgPath == "" {
		fmt.Fprintln(os.Stderr, "Please provide a --config file.")
		fs.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	for _, w := range cfg.Warnings {
		fmt.Printf("warning: %v\n", w)
	}
	fmt.Printf("%v: %d tiebreak criteria (%v), %d prizes, %d teams\n",
		*cfgPath, len(cfg.Settings.Criteria), cfg.Settings.Criteria,
		len(cfg.Prizes), len(cfg.Teams))
	if len(cfg.Warnings) > 0 {
		os.Exit(1)
	}
}

func handleEvents(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	days := fs.Int("days", 14, "Number of days to retrieve (1-60)")
	aid := fs.String("uscfaid", internal.BccUSCFAffiliateID, "USCF Affiliate ID")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *aid == "" {
		fmt.Fprintln(os.Stderr, "Please provide a valid --uscfaid ID.")
		fs.Usage()
		os.Exit(1)
	}

	// enforce bounds
	if *days <= 0 {
		*days = 14
	} else if *days > 60 {
		*days = 60
	}

	output, err := report.Events(ctx, uschess.NewClient(ctx), *aid, *days,
		time.Now())
	if err != nil {
		log.Fatalf("Error fetching events for aid:%v: %v", *aid, err)
	}
	fmt.Print(output)
	fmt.Printf("\nRun '%s standings --uscftid ID' to get standings for a specific event\n",
		os.Args[0])
}

func handlePlayer(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("player", flag.ExitOnError)
	memberID := fs.Int("memberid", 0, "USCF Member ID")
	eventCount := fs.Int("events", 3, "Number of recent events to list")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *memberID <= 0 {
		fmt.Fprintln(os.Stderr, "Please provide a valid --memberid ID.")
		fs.Usage()
		os.Exit(1)
	}

	output, err := report.Player(ctx, uschess.NewClient(ctx),
		uschess.MemID(*memberID), *eventCount)
	if err != nil {
		log.Fatalf("Error fetching member %d: %v", *memberID, err)
	}
	fmt.Print(output)
}
