/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/internal/metrics"
	"github.com/mikeb26/swisstd/internal/report"
	"github.com/mikeb26/swisstd/uschess"
)

type TdSubCommand string

const (
	TdHelpCmd      TdSubCommand = "help"
	TdStandingsCmd TdSubCommand = "standings"
	TdTeamsCmd     TdSubCommand = "teams"
	TdPrizesCmd    TdSubCommand = "prizes"
	TdEventsCmd    TdSubCommand = "events"
	TdPlayerCmd    TdSubCommand = "player"
)

var tdSubCmdHdlrs = map[TdSubCommand]CmdHandler{
	TdHelpCmd:      tdHelpCmdHandler,
	TdStandingsCmd: tdStandingsCmdHandler,
	TdTeamsCmd:     tdTeamsCmdHandler,
	TdPrizesCmd:    tdPrizesCmdHandler,
	TdEventsCmd:    tdEventsCmdHandler,
	TdPlayerCmd:    tdPlayerCmdHandler,
}

func tdCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := tdHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := tdSubCmdHdlrs[TdSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

func newResponse() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

// optionMap is a sub-command's options keyed by name.
type optionMap = map[string]*discordgo.ApplicationCommandInteractionDataOption

// subOptions returns the sub-command's options.
func subOptions(inter *discordgo.Interaction) optionMap {
	opts := make(optionMap)
	data := inter.ApplicationCommandData()
	if len(data.Options) == 0 {
		return opts
	}
	for _, opt := range data.Options[0].Options {
		opts[opt.Name] = opt
	}
	return opts
}

func boolOption(opts optionMap, name string) bool {
	opt, ok := opts[name]
	return ok && opt.BoolValue()
}

//go:embed help.md
var helpText string

func tdHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	resp.Data.Content = truncateContent(helpText)
	return resp
}

// eventReport handles the shared part of the report commands: it reads the
// uscftid option, runs build and wraps its output in a code block for
// monospace formatting.
func eventReport(ctx context.Context, inter *discordgo.Interaction,
	name string, build func(ctx context.Context, tid uschess.EventID,
		opts optionMap) (string, error)) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)
	tidOpt, ok := opts["uscftid"]
	if !ok || tidOpt.IntValue() <= 0 {
		resp.Data.Content = "Please provide a USCF tournament ID."
		log.Printf("discordbot.%v: %v", name, resp.Data.Content)
		return resp
	}
	tid := tidOpt.IntValue()

	output, err := build(ctx, uschess.EventID(tid), opts)
	metrics.ReportServed(name, err)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching %v for event %d: %v",
			name, tid, err)
		log.Printf("discordbot.%v: %v", name, resp.Data.Content)
		return resp
	}
	resp.Data.Content = fmt.Sprintf("```\n%s```", truncateContent(output))

	if boolOption(opts, "broadcast") {
		resp.Data.Flags = 0
	}

	return resp
}

// tdStandingsCmdHandler handles the /td standings command to display
// standings with tiebreaks
func tdStandingsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	return eventReport(ctx, inter, report.ReportStandings,
		func(ctx context.Context, tid uschess.EventID, _ optionMap) (string, error) {
			ev, err := report.Load(ctx, uscfClient, tid)
			if err != nil {
				return "", err
			}
			return report.Standings(ev, tourneyCfg), nil
		})
}

// tdTeamsCmdHandler handles the /td teams command to display team standings
func tdTeamsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	return eventReport(ctx, inter, report.ReportTeams,
		func(ctx context.Context, tid uschess.EventID, _ optionMap) (string, error) {
			ev, err := report.Load(ctx, uscfClient, tid)
			if err != nil {
				return "", err
			}
			return report.Teams(ev, tourneyCfg)
		})
}

// tdPrizesCmdHandler handles the /td prizes command to display the prize
// distribution
func tdPrizesCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	return eventReport(ctx, inter, report.ReportPrizes,
		func(ctx context.Context, tid uschess.EventID, opts optionMap) (string, error) {
			var bccEventID int64
			if opt, ok := opts["eventid"]; ok {
				bccEventID = opt.IntValue()
			}
			ev, catalog, err := report.LoadPrizeInputs(ctx, uscfClient,
				bccClient, tid, bccEventID, tourneyCfg)
			if err != nil {
				return "", err
			}
			return report.Prizes(ev, tourneyCfg, catalog, boolOption(opts, "teams"))
		})
}

// tdEventsCmdHandler handles the /td events command to list recently rated
// club events
func tdEventsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)
	days := int64(14) // default
	if opt, ok := opts["days"]; ok {
		days = opt.IntValue()
	}
	// enforce bounds
	if days <= 0 {
		days = 14
	} else if days > 60 {
		days = 60
	}

	output, err := report.Events(ctx, uscfClient, internal.BccUSCFAffiliateID,
		int(days), time.Now())
	metrics.ReportServed(report.ReportEvents, err)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching events: %v", err)
		log.Printf("discordbot.events: %v", resp.Data.Content)
		return resp
	}
	output += "\nRun /td standings <uscftid> to get standings for a specific event\n"
	resp.Data.Content = truncateContent(output)

	if boolOption(opts, "broadcast") {
		resp.Data.Flags = 0
	}

	return resp
}

// tdPlayerCmdHandler handles the /td player command to look up a member's
// ratings and recent events
func tdPlayerCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newResponse()
	opts := subOptions(inter)
	memOpt, ok := opts["memberid"]
	if !ok || memOpt.IntValue() <= 0 {
		resp.Data.Content = "Please provide a USCF member ID."
		log.Printf("discordbot.player: %v", resp.Data.Content)
		return resp
	}
	memID := memOpt.IntValue()

	output, err := report.Player(ctx, uscfClient, uschess.MemID(memID), 3)
	metrics.ReportServed(report.ReportPlayer, err)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching member %d: %v", memID, err)
		log.Printf("discordbot.player: %v", resp.Data.Content)
		return resp
	}
	resp.Data.Content = fmt.Sprintf("```\n%s```", truncateContent(output))

	if boolOption(opts, "broadcast") {
		resp.Data.Flags = 0
	}

	return resp
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = internal.DiscordMaxContent - 12 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
