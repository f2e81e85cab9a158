/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package standings

// DefaultSection is assigned to any entry that arrives without a section.
const DefaultSection = "Open"

// Color is the piece color an entity played in a round.
type Color int

const (
	ColorNone Color = iota
	ColorWhite
	ColorBlack
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	default:
		return ""
	}
}

// RoundResult is one entity's outcome in one round. Byes and forfeits have no
// opponent and normally no color.
type RoundResult struct {
	EntityID   string
	Round      int
	Points     float64
	OpponentID string
	Color      Color
}

// HasOpponent reports whether the round was played against someone.
func (r RoundResult) HasOpponent() bool {
	return r.OpponentID != ""
}

// Kind selects the last-resort ordering used when every criterion ties.
type Kind int

const (
	KindPlayer Kind = iota
	KindTeam
)

// Entry is one row of the standings: a player or a team.
type Entry struct {
	ID      string
	Name    string
	Rating  int // 0 means unrated
	Section string

	TotalPoints float64
	GamesPlayed int
	// Cumulative[i] is the running score after round i+1.
	Cumulative  []float64
	Tiebreakers map[Criterion]float64

	// Place is 1 + the number of entries with a strictly higher score.
	Place int
}

// Tiebreak returns the value for c, or 0 when it was never computed.
func (e Entry) Tiebreak(c Criterion) float64 {
	if e.Tiebreakers == nil {
		return 0
	}
	return e.Tiebreakers[c]
}

// IsRated reports whether the entry carries a rating.
func (e Entry) IsRated() bool {
	return e.Rating > 0
}

func (e Entry) clone() Entry {
	out := e
	if e.Cumulative != nil {
		out.Cumulative = append([]float64(nil), e.Cumulative...)
	}
	out.Tiebreakers = make(map[Criterion]float64, len(e.Tiebreakers))
	for k, v := range e.Tiebreakers {
		out.Tiebreakers[k] = v
	}
	return out
}

// TeamPolicy selects how member scores roll up into a team score.
type TeamPolicy int

const (
	TeamPolicyAll TeamPolicy = iota
	TeamPolicyTopN
)

func (p TeamPolicy) String() string {
	if p == TeamPolicyTopN {
		return "TOP_N"
	}
	return "ALL"
}

// TeamFormat distinguishes team matches from individual pairings with a
// team score on the side.
type TeamFormat int

const (
	TeamFormatIndividual TeamFormat = iota
	TeamFormatMatchBased
)

func (f TeamFormat) String() string {
	if f == TeamFormatMatchBased {
		return "MATCH_BASED"
	}
	return "INDIVIDUAL_WITH_TEAM_SCORING"
}

// DefaultTopN follows the USCF convention of counting four boards.
const DefaultTopN = 4

// Settings is the per-tournament configuration the engine runs under. It is
// fixed for the duration of one computation.
type Settings struct {
	Criteria         Cascade
	TeamPolicy       TeamPolicy
	TopN             int
	TeamFormat       TeamFormat
	CountByesAsGames bool
}

// EffectiveTopN returns TopN, or DefaultTopN when unset.
func (s Settings) EffectiveTopN() int {
	if s.TopN <= 0 {
		return DefaultTopN
	}
	return s.TopN
}
