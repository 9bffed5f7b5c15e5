package game

import (
	"context"

	"github.com/jihoonmoon/sanyang/internal/models"
)

// Reveal resolves the submitted hunts against the king's protection and
// applies the resulting deaths. It runs exactly once per game.
func (s *service) Reveal(ctx context.Context, input *RevealInput) (*RevealOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	if game.Revealed != nil {
		return nil, ErrAlreadyRevealed
	}

	if game.Status != models.PhaseHikeEnd {
		return nil, ErrNotPermitted
	}

	// Collect hunt targets in assignment order; duplicates are meaningful
	// (both hunters picking the same victim is still one death).
	huntTargets := make([]string, 0, 2)
	for _, hunterID := range game.HunterIDs {
		if targetID, ok := game.HuntTargets[hunterID]; ok {
			huntTargets = append(huntTargets, targetID)
		}
	}

	protectedID := game.ProtectTargetID
	attempted := protectedID != ""

	protectedWasTargeted := false
	killed := make([]string, 0, 2)
	seen := make(map[string]bool, 2)
	for _, targetID := range huntTargets {
		if attempted && targetID == protectedID {
			protectedWasTargeted = true
			continue
		}
		if seen[targetID] {
			continue
		}
		seen[targetID] = true
		killed = append(killed, targetID)
	}

	result := models.ProtectionNone
	if attempted && protectedWasTargeted {
		if len(killed) == 0 {
			result = models.ProtectionSuccess
		} else {
			result = models.ProtectionPartial
		}
	}

	for _, playerID := range killed {
		if p := game.Player(playerID); p != nil {
			p.Alive = false
		}
	}

	game.Revealed = &models.RevealOutcome{
		KilledPlayerIDs:     killed,
		ProtectionAttempted: attempted,
		ProtectionResult:    result,
		RevealedAt:          s.clock.Now(),
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &RevealOutput{
		Revealed: revealView(game),
	}, nil
}

// tally counts votes per target for one round's ledger.
func tally(votes map[string]*models.Vote) map[string]int {
	counts := make(map[string]int, len(votes))
	for _, v := range votes {
		counts[v.TargetID]++
	}
	return counts
}

// revealHunter marks a hunter as publicly revealed.
func revealHunter(game *models.Game, hunterID string) {
	if p := game.Player(hunterID); p != nil {
		p.RoleRevealed = true
	}
	if !game.HunterRevealed(hunterID) {
		game.RevealedHunterIDs = append(game.RevealedHunterIDs, hunterID)
	}
}

// FinalizeVote1 tallies round 1. A hunter is caught with 2 or more votes:
// one caught continues the game into round 2, both caught ends it for the
// animals, none caught ends it for the hunters.
func (s *service) FinalizeVote1(ctx context.Context, input *FinalizeVote1Input) (*FinalizeVote1Output, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	if game.Vote1Finalized {
		return nil, ErrAlreadyFinalized
	}

	if game.Status != models.PhaseVote1 {
		return nil, ErrNotPermitted
	}

	counts := tally(game.Vote1)

	caught := make([]string, 0, 2)
	for _, hunterID := range game.HunterIDs {
		if counts[hunterID] >= s.config.Vote1Threshold {
			caught = append(caught, hunterID)
		}
	}

	output := &FinalizeVote1Output{}

	switch len(caught) {
	case 1:
		revealHunter(game, caught[0])
		game.Vote1RevealedHunterID = caught[0]
		game.Status = models.PhaseVote2Intro
		output.Result = ResultOneHunterRevealed
	case 2:
		revealHunter(game, caught[0])
		revealHunter(game, caught[1])
		game.EndedWinner = models.WinnerAnimals
		game.Status = models.PhaseEndedAnimals
		output.Result = ResultBothHuntersRevealed
	default:
		game.EndedWinner = models.WinnerHunters
		game.Status = models.PhaseEndedHunters
		output.Result = ResultNoHunterRevealed
	}

	for _, hunterID := range caught {
		if p := game.Player(hunterID); p != nil {
			output.RevealedHunterNames = append(output.RevealedHunterNames, p.Name)
		}
	}

	game.Vote1Finalized = true

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return output, nil
}

// FinalizeVote2 tallies round 2 against the hunter still hidden after
// round 1. The catch threshold is 3 votes.
func (s *service) FinalizeVote2(ctx context.Context, input *FinalizeVote2Input) (*FinalizeVote2Output, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	if game.Vote2Finalized {
		return nil, ErrAlreadyFinalized
	}

	if game.Status != models.PhaseVote2 {
		return nil, ErrNotPermitted
	}

	// Round 2 only exists when round 1 revealed exactly one hunter
	if len(game.RevealedHunterIDs) != 1 {
		return nil, ErrNotPermitted
	}

	var remaining string
	for _, hunterID := range game.HunterIDs {
		if !game.HunterRevealed(hunterID) {
			remaining = hunterID
		}
	}
	if remaining == "" {
		return nil, ErrNotPermitted
	}

	counts := tally(game.Vote2)

	output := &FinalizeVote2Output{}

	if counts[remaining] >= s.config.Vote2Threshold {
		revealHunter(game, remaining)
		game.EndedWinner = models.WinnerAnimals
		game.Status = models.PhaseEndedAnimals
		output.Result = ResultHunterRevealed
		if p := game.Player(remaining); p != nil {
			output.RevealedHunterNames = []string{p.Name}
		}
	} else {
		game.EndedWinner = models.WinnerHunters
		game.Status = models.PhaseEndedHunters
		output.Result = ResultHunterEscaped
	}

	game.Vote2Finalized = true

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return output, nil
}
