/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mikeb26/swisstd/bcc"
	"github.com/mikeb26/swisstd/config"
	"github.com/mikeb26/swisstd/uschess"
)

const (
	EnvBotToken  = "DISCORD_BOT_TOKEN"
	EnvPublicKey = "DISCORD_PUBLIC_KEY"
	EnvAppID     = "DISCORD_APP_ID"
	// EnvTdCmdID is set once the /td command has been registered
	EnvTdCmdID = "DISCORD_TD_CMD_ID"
)

var (
	client    *discordgo.Session
	botPubKey ed25519.PublicKey

	uscfClient *uschess.Client
	bccClient  *bcc.Client
	tourneyCfg = config.Default()
)

type TopLevelCommand string

const (
	TdCmd TopLevelCommand = "td"
)

type CmdHandler func(ctx context.Context,
	i *discordgo.Interaction) *discordgo.InteractionResponse

var topLevelCmdHdlrs = map[TopLevelCommand]CmdHandler{
	TdCmd: tdCmdHandler,
}

func interactionHandler(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, botPubKey) {
		log.Printf("discordbot.int: failed to verify")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("discordbot.int: failed to read request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		log.Printf("discordbot.int: failed to unmarshal interaction: err:%v body:%v",
			err, body)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := &discordgo.InteractionResponse{}
	if inter.Type == discordgo.InteractionPing {
		resp.Type = discordgo.InteractionResponsePong
	} else if inter.Type == discordgo.InteractionApplicationCommand {
		hdlr, ok :=
			topLevelCmdHdlrs[TopLevelCommand(inter.ApplicationCommandData().Name)]
		if !ok {
			resp.Type = discordgo.InteractionResponseChannelMessageWithSource
			resp.Data = &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("unknown command '%v'",
					inter.ApplicationCommandData().Name),
				Flags: discordgo.MessageFlagsEphemeral,
			}
		} else {
			resp = hdlr(r.Context(), &inter)
		}
	} else {
		log.Printf("discordbot.int: unimplemented interation type %v: inter:%v",
			inter.Type, inter)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		log.Printf("discordbot.int: failed to marshal resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(rawResp)
	if err != nil {
		log.Printf("discordbot.int: failed to write resp: err:%v", err)
	}
}

func mustGetenv(name string) string {
	val := os.Getenv(name)
	if val == "" {
		log.Fatalf("discordbot.init: %v is not set", name)
	}
	return val
}

func setup(ctx context.Context) {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))

	pubKeyBytes, err := hex.DecodeString(mustGetenv(EnvPublicKey))
	if err != nil {
		log.Fatalf("discordbot.init: Failed to parse public key: %v", err)
	}
	botPubKey = ed25519.PublicKey(pubKeyBytes)

	client, err = discordgo.New("Bot " + mustGetenv(EnvBotToken))
	if err != nil {
		log.Fatalf("dicordbot.init: Failed to initialize discord client: %v", err)
	}

	if path := os.Getenv(config.EnvConfigPath); path != "" {
		tourneyCfg, err = config.Load(path)
		if err != nil {
			log.Fatalf("discordbot.init: %v", err)
		}
		for _, w := range tourneyCfg.Warnings {
			log.Printf("discordbot.init: warning: %v", w)
		}
	}

	uscfClient = uschess.NewClient(ctx)
	bccClient = bcc.NewClient(ctx)
}

func eventIDOption(name, desc string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: desc,
		Required:    required,
	}
}

var broadcastOption = &discordgo.ApplicationCommandOption{
	Type:        discordgo.ApplicationCommandOptionBoolean,
	Name:        "broadcast",
	Description: "Share with the rest of the channel instead of only to you (default is false)",
	Required:    false,
}

func tdCommand() *discordgo.ApplicationCommand {
	uscftid := eventIDOption("uscftid", "USCF tournament id", true)
	return &discordgo.ApplicationCommand{
		Name:        string(TdCmd),
		Description: "Tournament director commands; try /td help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(TdHelpCmd),
				Description: "Show usage for td",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(TdStandingsCmd),
				Description: "Get standings with tiebreaks for a rated event",
				Options: []*discordgo.ApplicationCommandOption{
					uscftid, broadcastOption,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(TdTeamsCmd),
				Description: "Get team standings for a rated event",
				Options: []*discordgo.ApplicationCommandOption{
					uscftid, broadcastOption,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(TdPrizesCmd),
				Description: "Get the prize distribution for a rated event",
				Options: []*discordgo.ApplicationCommandOption{
					uscftid,
					eventIDOption("eventid",
						"BCC event id whose advertised prizes to use", false),
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "teams",
						Description: "Award prizes over team standings (default is false)",
						Required:    false,
					},
					broadcastOption,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(TdEventsCmd),
				Description: "Show recently rated club events",
				Options: []*discordgo.ApplicationCommandOption{
					eventIDOption("days",
						"Number of days to look back (default is 14)", false),
					broadcastOption,
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(TdPlayerCmd),
				Description: "Get a member's ratings, membership expiry and recent events",
				Options: []*discordgo.ApplicationCommandOption{
					eventIDOption("memberid", "USCF member id", true),
					broadcastOption,
				},
			},
		},
	}
}

func registerSlashCommands() {
	tdCmd := tdCommand()
	appID := os.Getenv(EnvAppID)
	cmdID := os.Getenv(EnvTdCmdID)

	if cmdID == "" {
		cmd, err := client.ApplicationCommandCreate(appID, "", tdCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to register %v: %v", tdCmd.Name,
				err)
			return
		}

		log.Printf("discordbot.reg: registered %v(cmdID:%v); set %v", cmd.Name,
			cmd.ID, EnvTdCmdID)
	} else {
		cmd, err := client.ApplicationCommandEdit(appID, "", cmdID, tdCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to update %v: %v", tdCmd.Name,
				err)
			return
		}

		log.Printf("discordbot.reg: updated %v(cmdID:%v)", cmd.Name, cmd.ID)
	}
}

func main() {
	setup(context.Background())
	go registerSlashCommands()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	log.Printf("discordbot.main: starting server on %v:8080", hostname)

	http.HandleFunc("/DiscordBot/Interaction", interactionHandler)
	http.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(":8080", nil); err != nil {
		log.Fatalf("discordbot.main: Serve failed: %v", err)
	}

	log.Printf("discordbot.main: exiting")
}
