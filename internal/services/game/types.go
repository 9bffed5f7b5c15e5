package game

import (
	"github.com/jihoonmoon/sanyang/internal/common/clock"
	"github.com/jihoonmoon/sanyang/internal/common/uuid"
	"github.com/jihoonmoon/sanyang/internal/models"
	gameRepo "github.com/jihoonmoon/sanyang/internal/repositories/game"
	sessionRepo "github.com/jihoonmoon/sanyang/internal/repositories/session"
	"github.com/jihoonmoon/sanyang/internal/roles"
	"github.com/jihoonmoon/sanyang/internal/roster"
)

// Finalize result strings shown on the host console
const (
	// ResultOneHunterRevealed means exactly one hunter crossed the round-1 threshold
	ResultOneHunterRevealed = "oneHunterRevealed"

	// ResultBothHuntersRevealed means both hunters crossed the round-1 threshold
	ResultBothHuntersRevealed = "bothHuntersRevealed"

	// ResultNoHunterRevealed means no hunter crossed the round-1 threshold
	ResultNoHunterRevealed = "noHunterRevealed"

	// ResultHunterRevealed means the remaining hunter crossed the round-2 threshold
	ResultHunterRevealed = "hunterRevealed"

	// ResultHunterEscaped means the remaining hunter stayed under the round-2 threshold
	ResultHunterEscaped = "hunterEscaped"
)

// Vote thresholds are fixed game constants, not per-instance tunables
const (
	// DefaultVote1Threshold is the round-1 catch threshold
	DefaultVote1Threshold = 2

	// DefaultVote2Threshold is the round-2 catch threshold
	DefaultVote2Threshold = 3
)

// Config holds configuration for the game service
type Config struct {
	// Roster is the fixed player list seeded into every new lobby
	Roster []roster.Entry

	// Vote thresholds; the defaults apply when zero
	Vote1Threshold int
	Vote2Threshold int

	// Repository dependencies
	GameRepo    gameRepo.Repository
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Assigner      *roles.Assigner
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// ResetLobbyInput contains parameters for a host lobby reset
type ResetLobbyInput struct {
}

// ResetLobbyOutput contains the result of a lobby reset
type ResetLobbyOutput struct {
}

// SetStatusInput contains the phase the host wants to move to
type SetStatusInput struct {
	Status string
}

// SetStatusOutput contains the result of a phase transition
type SetStatusOutput struct {
}

// SubmitHuntInput contains a hunter's hunt submission
type SubmitHuntInput struct {
	PlayerID string
	TargetID string
}

// SubmitHuntOutput contains the result of a hunt submission
type SubmitHuntOutput struct {
}

// SubmitProtectInput contains the king's protect submission
type SubmitProtectInput struct {
	PlayerID string
	TargetID string
}

// SubmitProtectOutput contains the result of a protect submission
type SubmitProtectOutput struct {
}

// SubmitVoteInput contains one accusation vote
type SubmitVoteInput struct {
	Round    int
	VoterID  string
	TargetID string
	Reason   string
}

// SubmitVoteOutput contains the result of a vote submission
type SubmitVoteOutput struct {
}

// RevealInput triggers the hike-end hunt/protect resolution
type RevealInput struct {
}

// RevealOutput contains the resolution snapshot
type RevealOutput struct {
	Revealed *RevealView
}

// FinalizeVote1Input triggers the round-1 tally
type FinalizeVote1Input struct {
}

// FinalizeVote1Output contains the round-1 outcome
type FinalizeVote1Output struct {
	// Result is one of the round-1 Result* constants
	Result string

	// RevealedHunterNames are the hunters revealed by this tally
	RevealedHunterNames []string
}

// FinalizeVote2Input triggers the round-2 tally
type FinalizeVote2Input struct {
}

// FinalizeVote2Output contains the round-2 outcome
type FinalizeVote2Output struct {
	// Result is one of the round-2 Result* constants
	Result string

	// RevealedHunterNames are the hunters revealed by this tally
	RevealedHunterNames []string
}

// GetGameViewInput requests the public projection
type GetGameViewInput struct {
}

// GetGameViewOutput carries the public projection
type GetGameViewOutput struct {
	Game *GameView
}

// GetMeInput requests a player's private projection
type GetMeInput struct {
	PlayerID string
}

// GetMeOutput carries the private and public projections
type GetMeOutput struct {
	Me   *MeView
	Game *GameView
}

// GetActionsInput requests the host hunt/protect console rows
type GetActionsInput struct {
}

// GetActionsOutput carries the host hunt/protect console rows
type GetActionsOutput struct {
	Actions []ActionRow
}

// GetVotesInput requests the host vote console data
type GetVotesInput struct {
}

// GetVotesOutput carries rows, tallies and missing voters for both rounds
type GetVotesOutput struct {
	Vote1                 []VoteRow
	Vote2                 []VoteRow
	Vote1Counts           map[string]int
	Vote2Counts           map[string]int
	Vote1Missing          []string
	Vote2Missing          []string
	Vote1RevealedHunterID string
}

// PlayerView is the public projection of one player
type PlayerView struct {
	PlayerID     string          `json:"playerId"`
	Name         string          `json:"name"`
	Alive        models.Tristate `json:"alive"`
	RoleRevealed models.Tristate `json:"roleRevealed"`
}

// PlayerRef names a player in a private disclosure
type PlayerRef struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

// RevealView is the public projection of the hunt/protect outcome
type RevealView struct {
	KilledExists        bool                    `json:"killedExists"`
	KilledPlayerIDs     []string                `json:"killedPlayerIds"`
	ProtectionAttempted bool                    `json:"protectionAttempted"`
	ProtectionResult    models.ProtectionResult `json:"protectionResult"`
}

// GameView is the public projection returned to both surfaces
type GameView struct {
	Status                models.GamePhase `json:"status"`
	EndedWinner           string           `json:"endedWinner"`
	Vote1RevealedHunterID string           `json:"vote1RevealedHunterId"`
	RevealedHunterNames   []string         `json:"revealedHunterNames"`
	Revealed              RevealView       `json:"revealed"`
	Players               []PlayerView     `json:"players"`
}

// MeView is the per-player private projection
type MeView struct {
	PlayerID         string          `json:"playerId"`
	Name             string          `json:"name"`
	Alive            models.Tristate `json:"alive"`
	RoleRevealed     models.Tristate `json:"roleRevealed"`
	Role             models.Role     `json:"role"`
	KnownHunter      *PlayerRef      `json:"knownHunter"`
	KnownOtherHunter *PlayerRef      `json:"knownOtherHunter"`
	DidHunt          bool            `json:"didHunt"`
	DidProtect       bool            `json:"didProtect"`
	DidVote1         bool            `json:"didVote1"`
	DidVote2         bool            `json:"didVote2"`
}

// ActionRow is one line of the host hunt/protect console table
type ActionRow struct {
	PlayerID          string      `json:"playerId"`
	PlayerName        string      `json:"playerName"`
	Role              models.Role `json:"role"`
	HuntTargetName    string      `json:"huntTargetName"`
	ProtectTargetName string      `json:"protectTargetName"`
}

// VoteRow is one recorded vote with names resolved for the host console
type VoteRow struct {
	VoterID    string `json:"voterId"`
	VoterName  string `json:"voterName"`
	TargetID   string `json:"targetId"`
	TargetName string `json:"targetName"`
	Reason     string `json:"reason"`
}
