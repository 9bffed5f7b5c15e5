package models

import (
	"time"
)

// Vote records one accusation vote for a round
type Vote struct {
	// VoterID is the player who cast the vote
	VoterID string

	// TargetID is the accused player
	TargetID string

	// Reason is the voter's stated reason; never empty
	Reason string

	// SubmittedAt is when the vote was recorded
	SubmittedAt time.Time
}
