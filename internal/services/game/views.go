package game

import (
	"context"

	"github.com/jihoonmoon/sanyang/internal/models"
)

// disclosure rules: alive and roleRevealed stay "unknown" until the host
// ends the hike; a revealed hunter role stays disclosed forever after.
func aliveView(game *models.Game, p *models.Player) models.Tristate {
	if game.Status.AliveDisclosed() {
		return models.Disclosed(p.Alive)
	}
	return models.Undisclosed()
}

func roleRevealedView(game *models.Game, p *models.Player) models.Tristate {
	if game.Status.AliveDisclosed() || p.RoleRevealed {
		return models.Disclosed(p.RoleRevealed)
	}
	return models.Undisclosed()
}

func playerRef(game *models.Game, playerID string) *PlayerRef {
	p := game.Player(playerID)
	if p == nil {
		return nil
	}
	return &PlayerRef{PlayerID: p.ID, Name: p.Name}
}

func revealView(game *models.Game) *RevealView {
	view := &RevealView{
		KilledPlayerIDs:  []string{},
		ProtectionResult: models.ProtectionNone,
	}
	if game.Revealed == nil {
		return view
	}

	view.KilledExists = len(game.Revealed.KilledPlayerIDs) > 0
	view.KilledPlayerIDs = append(view.KilledPlayerIDs, game.Revealed.KilledPlayerIDs...)
	view.ProtectionAttempted = game.Revealed.ProtectionAttempted
	view.ProtectionResult = game.Revealed.ProtectionResult
	return view
}

func gameView(game *models.Game) *GameView {
	view := &GameView{
		Status:                game.Status,
		EndedWinner:           string(game.EndedWinner),
		Vote1RevealedHunterID: game.Vote1RevealedHunterID,
		RevealedHunterNames:   []string{},
		Revealed:              *revealView(game),
		Players:               make([]PlayerView, 0, len(game.Players)),
	}

	for _, hunterID := range game.RevealedHunterIDs {
		if p := game.Player(hunterID); p != nil {
			view.RevealedHunterNames = append(view.RevealedHunterNames, p.Name)
		}
	}

	for _, p := range game.Players {
		view.Players = append(view.Players, PlayerView{
			PlayerID:     p.ID,
			Name:         p.Name,
			Alive:        aliveView(game, p),
			RoleRevealed: roleRevealedView(game, p),
		})
	}

	return view
}

// GetGameView returns the public projection. Safe to poll concurrently.
func (s *service) GetGameView(ctx context.Context, input *GetGameViewInput) (*GetGameViewOutput, error) {
	game, err := s.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	return &GetGameViewOutput{Game: gameView(game)}, nil
}

// GetMe returns a player's private projection plus the public one.
func (s *service) GetMe(ctx context.Context, input *GetMeInput) (*GetMeOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrPlayerNotFound
	}

	game, err := s.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	p := game.Player(input.PlayerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}

	me := &MeView{
		PlayerID:     p.ID,
		Name:         p.Name,
		Alive:        aliveView(game, p),
		RoleRevealed: roleRevealedView(game, p),
		Role:         p.Role,
	}

	switch p.Role {
	case models.RoleKing:
		// The king is told exactly one hunter: the first in assignment order
		if len(game.HunterIDs) == 2 {
			me.KnownHunter = playerRef(game, game.HunterIDs[0])
		}
		me.DidProtect = game.ProtectTargetID != ""
	case models.RoleHunter:
		me.KnownOtherHunter = playerRef(game, game.OtherHunter(p.ID))
		_, me.DidHunt = game.HuntTargets[p.ID]
	}

	_, me.DidVote1 = game.Vote1[p.ID]
	_, me.DidVote2 = game.Vote2[p.ID]

	return &GetMeOutput{
		Me:   me,
		Game: gameView(game),
	}, nil
}

// GetActions returns the host console rows for the king and both hunters,
// with target names resolved. Never shown to players.
func (s *service) GetActions(ctx context.Context, input *GetActionsInput) (*GetActionsOutput, error) {
	game, err := s.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	nameOf := func(playerID string) string {
		if p := game.Player(playerID); p != nil {
			return p.Name
		}
		return ""
	}

	actions := make([]ActionRow, 0, 3)

	for _, hunterID := range game.HunterIDs {
		p := game.Player(hunterID)
		if p == nil {
			continue
		}
		actions = append(actions, ActionRow{
			PlayerID:       p.ID,
			PlayerName:     p.Name,
			Role:           p.Role,
			HuntTargetName: nameOf(game.HuntTargets[p.ID]),
		})
	}

	if king := game.Player(game.KingID); king != nil {
		actions = append(actions, ActionRow{
			PlayerID:          king.ID,
			PlayerName:        king.Name,
			Role:              king.Role,
			ProtectTargetName: nameOf(game.ProtectTargetID),
		})
	}

	return &GetActionsOutput{Actions: actions}, nil
}

func voteRows(game *models.Game, votes map[string]*models.Vote) []VoteRow {
	rows := make([]VoteRow, 0, len(votes))

	// Roster order keeps the console stable between polls
	for _, p := range game.Players {
		v, ok := votes[p.ID]
		if !ok {
			continue
		}
		row := VoteRow{
			VoterID:   v.VoterID,
			VoterName: p.Name,
			TargetID:  v.TargetID,
			Reason:    v.Reason,
		}
		if target := game.Player(v.TargetID); target != nil {
			row.TargetName = target.Name
		}
		rows = append(rows, row)
	}

	return rows
}

func missingVoters(game *models.Game, votes map[string]*models.Vote) []string {
	missing := []string{}
	for _, p := range game.Players {
		if !p.Alive || p.RoleRevealed {
			continue
		}
		if _, ok := votes[p.ID]; !ok {
			missing = append(missing, p.ID)
		}
	}
	return missing
}

// GetVotes returns both rounds' rows, per-target tallies and the alive,
// unrevealed players who have not voted yet. Host console only; this is
// informational and never gates a finalize.
func (s *service) GetVotes(ctx context.Context, input *GetVotesInput) (*GetVotesOutput, error) {
	game, err := s.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	return &GetVotesOutput{
		Vote1:                 voteRows(game, game.Vote1),
		Vote2:                 voteRows(game, game.Vote2),
		Vote1Counts:           tally(game.Vote1),
		Vote2Counts:           tally(game.Vote2),
		Vote1Missing:          missingVoters(game, game.Vote1),
		Vote2Missing:          missingVoters(game, game.Vote2),
		Vote1RevealedHunterID: game.Vote1RevealedHunterID,
	}, nil
}
