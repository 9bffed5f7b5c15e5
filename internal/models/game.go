package models

import (
	"time"
)

// GamePhase represents the current stage of the game, driven by the host
type GamePhase string

const (
	// PhaseLobby indicates the game is waiting to begin
	PhaseLobby GamePhase = "lobby"

	// PhaseHike indicates the hike is in progress; hunt and protect actions are open
	PhaseHike GamePhase = "hike"

	// PhaseHikeEnd indicates the hike is over and the host may reveal the outcome
	PhaseHikeEnd GamePhase = "hikeEnd"

	// PhaseVote1Intro indicates the host is explaining the first vote
	PhaseVote1Intro GamePhase = "vote1Intro"

	// PhaseVote1 indicates round-1 votes are being collected
	PhaseVote1 GamePhase = "vote1"

	// PhaseVote2Intro indicates the host is explaining the second vote
	PhaseVote2Intro GamePhase = "vote2Intro"

	// PhaseVote2 indicates round-2 votes are being collected
	PhaseVote2 GamePhase = "vote2"

	// PhaseEndedHunters indicates the game is over and the hunters won
	PhaseEndedHunters GamePhase = "endedHunters"

	// PhaseEndedAnimals indicates the game is over and the animals won
	PhaseEndedAnimals GamePhase = "endedAnimals"
)

// Valid reports whether p is one of the known phases.
func (p GamePhase) Valid() bool {
	switch p {
	case PhaseLobby, PhaseHike, PhaseHikeEnd,
		PhaseVote1Intro, PhaseVote1, PhaseVote2Intro, PhaseVote2,
		PhaseEndedHunters, PhaseEndedAnimals:
		return true
	}
	return false
}

// Ended reports whether p is a terminal phase.
func (p GamePhase) Ended() bool {
	return p == PhaseEndedHunters || p == PhaseEndedAnimals
}

// AliveDisclosed reports whether alive and roleRevealed facts may be shown
// to players. Death information is withheld until the host ends the hike.
func (p GamePhase) AliveDisclosed() bool {
	switch p {
	case PhaseHikeEnd, PhaseVote1Intro, PhaseVote1,
		PhaseVote2Intro, PhaseVote2, PhaseEndedHunters, PhaseEndedAnimals:
		return true
	}
	return false
}

// Winner identifies the winning faction
type Winner string

const (
	// WinnerHunters indicates the hunters survived the votes
	WinnerHunters Winner = "hunters"

	// WinnerAnimals indicates both hunters were revealed
	WinnerAnimals Winner = "animals"
)

// ProtectionResult describes the effect of the king's protection
type ProtectionResult string

const (
	// ProtectionNone indicates no protection was attempted, or it missed every hunt
	ProtectionNone ProtectionResult = "none"

	// ProtectionSuccess indicates the protection neutralized every hunt
	ProtectionSuccess ProtectionResult = "success"

	// ProtectionPartial indicates the protection saved one victim but another died
	ProtectionPartial ProtectionResult = "partial"
)

// RevealOutcome is the hike-end hunt/protect resolution snapshot.
// It is computed exactly once per game and never mutated afterwards.
type RevealOutcome struct {
	// KilledPlayerIDs are the players whose hunt was not neutralized
	KilledPlayerIDs []string

	// ProtectionAttempted indicates the king submitted a protect target
	ProtectionAttempted bool

	// ProtectionResult summarizes the protection effect
	ProtectionResult ProtectionResult

	// RevealedAt is when the host triggered the reveal
	RevealedAt time.Time
}

// Game is the single game aggregate. One instance exists at a time; every
// mutation flows through the game service under its writer lock.
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// Status is the current phase
	Status GamePhase

	// Players is the seeded roster, in roster order
	Players []*Player

	// KingID is the player holding the king role
	KingID string

	// HunterIDs are the two players holding the hunter role, in assignment order
	HunterIDs []string

	// HuntTargets maps a hunter to their submitted hunt target. Write-once per hunter.
	HuntTargets map[string]string

	// ProtectTargetID is the king's submitted protect target. Write-once; empty until submitted.
	ProtectTargetID string

	// Vote1 and Vote2 map voter to their recorded vote for each round
	Vote1 map[string]*Vote
	Vote2 map[string]*Vote

	// Vote1Finalized and Vote2Finalized guard the once-per-game tallies
	Vote1Finalized bool
	Vote2Finalized bool

	// Vote1RevealedHunterID is set when round 1 revealed a single hunter
	Vote1RevealedHunterID string

	// RevealedHunterIDs grows monotonically and stays a subset of HunterIDs
	RevealedHunterIDs []string

	// EndedWinner is set exactly once on termination
	EndedWinner Winner

	// Revealed is the hunt/protect outcome; nil until the host reveal
	Revealed *RevealOutcome

	// CreatedAt is when the lobby was seeded
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// Player returns the player with the given ID, or nil.
func (g *Game) Player(playerID string) *Player {
	for _, p := range g.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// PlayerByLogin returns the player with the given login ID, or nil.
func (g *Game) PlayerByLogin(loginID string) *Player {
	for _, p := range g.Players {
		if p.LoginID == loginID {
			return p
		}
	}
	return nil
}

// IsHunter reports whether the given player holds a hunter role.
func (g *Game) IsHunter(playerID string) bool {
	for _, id := range g.HunterIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// OtherHunter returns the hunter partnered with the given hunter, or "".
func (g *Game) OtherHunter(hunterID string) string {
	if len(g.HunterIDs) != 2 || !g.IsHunter(hunterID) {
		return ""
	}
	if g.HunterIDs[0] == hunterID {
		return g.HunterIDs[1]
	}
	return g.HunterIDs[0]
}

// HunterRevealed reports whether the given hunter has been publicly revealed.
func (g *Game) HunterRevealed(hunterID string) bool {
	for _, id := range g.RevealedHunterIDs {
		if id == hunterID {
			return true
		}
	}
	return false
}

// VotesFor returns the vote ledger for the given round (1 or 2), or nil.
func (g *Game) VotesFor(round int) map[string]*Vote {
	switch round {
	case 1:
		return g.Vote1
	case 2:
		return g.Vote2
	}
	return nil
}
