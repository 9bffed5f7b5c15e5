package game

import "context"

// Service defines the interface for the game rules engine
type Service interface {
	// ResetLobby reseeds the roster, deals new roles and revokes every session
	ResetLobby(ctx context.Context, input *ResetLobbyInput) (*ResetLobbyOutput, error)

	// SetStatus moves the game to the given phase (host command)
	SetStatus(ctx context.Context, input *SetStatusInput) (*SetStatusOutput, error)

	// SubmitHunt records a hunter's one-time secret hunt target
	SubmitHunt(ctx context.Context, input *SubmitHuntInput) (*SubmitHuntOutput, error)

	// SubmitProtect records the king's one-time secret protect target
	SubmitProtect(ctx context.Context, input *SubmitProtectInput) (*SubmitProtectOutput, error)

	// SubmitVote records one accusation vote for the given round
	SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error)

	// Reveal resolves hunts against protection and applies deaths (host trigger)
	Reveal(ctx context.Context, input *RevealInput) (*RevealOutput, error)

	// FinalizeVote1 tallies round 1 and applies the reveal thresholds (host trigger)
	FinalizeVote1(ctx context.Context, input *FinalizeVote1Input) (*FinalizeVote1Output, error)

	// FinalizeVote2 tallies round 2 against the remaining hunter (host trigger)
	FinalizeVote2(ctx context.Context, input *FinalizeVote2Input) (*FinalizeVote2Output, error)

	// GetGameView returns the public projection shown to every surface
	GetGameView(ctx context.Context, input *GetGameViewInput) (*GetGameViewOutput, error)

	// GetMe returns a player's private projection plus the public one
	GetMe(ctx context.Context, input *GetMeInput) (*GetMeOutput, error)

	// GetActions returns the hunt/protect console rows (host only)
	GetActions(ctx context.Context, input *GetActionsInput) (*GetActionsOutput, error)

	// GetVotes returns vote rows, tallies and missing voters (host only)
	GetVotes(ctx context.Context, input *GetVotesInput) (*GetVotesOutput, error)
}
