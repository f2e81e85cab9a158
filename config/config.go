/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package config loads a tournament file: engine settings, the prize
// catalog and team rosters.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/mikeb26/swisstd/prizes"
	"github.com/mikeb26/swisstd/standings"
	"github.com/mikeb26/swisstd/team"
)

// EnvConfigPath names the environment variable the bot reads the tournament
// file location from.
const EnvConfigPath = "SWISSTD_CONFIG"

// File mirrors the YAML layout of a tournament file.
type File struct {
	Settings SettingsFile        `yaml:"settings"`
	Prizes   []prizes.Definition `yaml:"prizes"`
	Teams    []TeamFile          `yaml:"teams" validate:"unique=ID,dive"`
}

type SettingsFile struct {
	TieBreakCriteria  []string `yaml:"tie_break_criteria"`
	TeamScoringPolicy string   `yaml:"team_scoring_policy" validate:"omitempty,oneof=ALL TOP_N"`
	TopN              int      `yaml:"top_n" validate:"gte=0"`
	TeamFormat        string   `yaml:"team_format" validate:"omitempty,oneof=INDIVIDUAL_WITH_TEAM_SCORING MATCH_BASED"`
	CountByesAsGames  bool     `yaml:"count_byes_as_games"`
}

type TeamFile struct {
	ID      string   `yaml:"id" validate:"required"`
	Name    string   `yaml:"name"`
	Members []string `yaml:"members" validate:"min=1,dive,required"`
}

// Tournament is a loaded, validated tournament file.
type Tournament struct {
	Settings standings.Settings
	Prizes   []prizes.Definition
	Teams    []team.Team
	// Warnings lists prize problems. Those prizes are skipped at allocation.
	Warnings []string
}

var validate = validator.New()

// Default is the configuration used when no file is given.
func Default() *Tournament {
	return &Tournament{
		Settings: standings.Settings{Criteria: standings.DefaultCascade},
	}
}

// Load reads and parses the tournament file at path.
func Load(path string) (*Tournament, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read config %v: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}

	return t, nil
}

// Parse decodes a tournament file. Unknown keys, unknown tiebreak criteria
// and malformed settings or teams are errors; malformed prizes only produce
// warnings.
func Parse(data []byte) (*Tournament, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	settings, err := f.Settings.toSettings()
	if err != nil {
		return nil, err
	}

	t := &Tournament{Settings: settings}
	for i, d := range f.Prizes {
		if d.ID == "" {
			d.ID = fmt.Sprintf("prize-%d", i+1)
		}
		t.Prizes = append(t.Prizes, d)
	}
	t.Warnings = prizes.Validate(t.Prizes)
	for _, tf := range f.Teams {
		t.Teams = append(t.Teams, team.Team{
			ID:        tf.ID,
			Name:      tf.Name,
			MemberIDs: tf.Members,
		})
	}

	return t, nil
}

func (s SettingsFile) toSettings() (standings.Settings, error) {
	out := standings.Settings{
		TopN:             s.TopN,
		CountByesAsGames: s.CountByesAsGames,
		Criteria:         standings.DefaultCascade,
	}
	if len(s.TieBreakCriteria) > 0 {
		cascade, err := standings.ParseCascade(s.TieBreakCriteria)
		if err != nil {
			return out, fmt.Errorf("invalid tie_break_criteria: %w", err)
		}
		out.Criteria = cascade
	}
	if s.TeamScoringPolicy == "TOP_N" {
		out.TeamPolicy = standings.TeamPolicyTopN
	}
	if s.TeamFormat == "MATCH_BASED" {
		out.TeamFormat = standings.TeamFormatMatchBased
	}

	return out, nil
}
