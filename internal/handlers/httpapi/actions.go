package httpapi

import (
	"context"

	gameService "github.com/jihoonmoon/sanyang/internal/services/game"
	identityService "github.com/jihoonmoon/sanyang/internal/services/identity"
)

func (h *Handler) playerLogin(ctx context.Context, envelope *request) (map[string]any, error) {
	login, err := h.identityService.Login(ctx, &identityService.LoginInput{
		LoginID:  envelope.LoginID,
		Password: envelope.Password,
	})
	if err != nil {
		return nil, err
	}

	me, err := h.gameService.GetMe(ctx, &gameService.GetMeInput{PlayerID: login.PlayerID})
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"token": login.Token,
		"me":    me.Me,
		"game":  me.Game,
	}, nil
}

func (h *Handler) playerGetMe(ctx context.Context, envelope *request) (map[string]any, error) {
	playerID, err := h.resolvePlayer(ctx, envelope)
	if err != nil {
		return nil, err
	}

	me, err := h.gameService.GetMe(ctx, &gameService.GetMeInput{PlayerID: playerID})
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"me":   me.Me,
		"game": me.Game,
	}, nil
}

func (h *Handler) playerLogout(ctx context.Context, envelope *request) (map[string]any, error) {
	_, err := h.identityService.Logout(ctx, &identityService.LogoutInput{Token: envelope.Token})
	if err != nil {
		return nil, err
	}

	return map[string]any{}, nil
}

func (h *Handler) playerSubmitHunt(ctx context.Context, envelope *request) (map[string]any, error) {
	playerID, err := h.resolvePlayer(ctx, envelope)
	if err != nil {
		return nil, err
	}

	_, err = h.gameService.SubmitHunt(ctx, &gameService.SubmitHuntInput{
		PlayerID: playerID,
		TargetID: envelope.TargetID,
	})
	if err != nil {
		return nil, err
	}

	return map[string]any{}, nil
}

func (h *Handler) playerSubmitProtect(ctx context.Context, envelope *request) (map[string]any, error) {
	playerID, err := h.resolvePlayer(ctx, envelope)
	if err != nil {
		return nil, err
	}

	_, err = h.gameService.SubmitProtect(ctx, &gameService.SubmitProtectInput{
		PlayerID: playerID,
		TargetID: envelope.TargetID,
	})
	if err != nil {
		return nil, err
	}

	return map[string]any{}, nil
}

func (h *Handler) playerSubmitVote(ctx context.Context, envelope *request, round int) (map[string]any, error) {
	playerID, err := h.resolvePlayer(ctx, envelope)
	if err != nil {
		return nil, err
	}

	_, err = h.gameService.SubmitVote(ctx, &gameService.SubmitVoteInput{
		Round:    round,
		VoterID:  playerID,
		TargetID: envelope.TargetID,
		Reason:   envelope.Reason,
	})
	if err != nil {
		return nil, err
	}

	return map[string]any{}, nil
}

func (h *Handler) resolvePlayer(ctx context.Context, envelope *request) (string, error) {
	resolved, err := h.identityService.Resolve(ctx, &identityService.ResolveInput{
		Token: envelope.Token,
	})
	if err != nil {
		return "", err
	}

	return resolved.PlayerID, nil
}

func (h *Handler) hostGetGame(ctx context.Context) (map[string]any, error) {
	view, err := h.gameService.GetGameView(ctx, &gameService.GetGameViewInput{})
	if err != nil {
		return nil, err
	}

	return map[string]any{"game": view.Game}, nil
}

func (h *Handler) hostSetStatus(ctx context.Context, envelope *request) (map[string]any, error) {
	_, err := h.gameService.SetStatus(ctx, &gameService.SetStatusInput{Status: envelope.Status})
	if err != nil {
		return nil, err
	}

	return map[string]any{}, nil
}

func (h *Handler) hostGetActions(ctx context.Context) (map[string]any, error) {
	output, err := h.gameService.GetActions(ctx, &gameService.GetActionsInput{})
	if err != nil {
		return nil, err
	}

	return map[string]any{"actions": output.Actions}, nil
}

func (h *Handler) hostGetVotes(ctx context.Context) (map[string]any, error) {
	output, err := h.gameService.GetVotes(ctx, &gameService.GetVotesInput{})
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"vote1":                 output.Vote1,
		"vote2":                 output.Vote2,
		"vote1Counts":           output.Vote1Counts,
		"vote2Counts":           output.Vote2Counts,
		"vote1Missing":          output.Vote1Missing,
		"vote2Missing":          output.Vote2Missing,
		"vote1RevealedHunterId": output.Vote1RevealedHunterID,
	}, nil
}

func (h *Handler) hostReveal(ctx context.Context) (map[string]any, error) {
	output, err := h.gameService.Reveal(ctx, &gameService.RevealInput{})
	if err != nil {
		return nil, err
	}

	return map[string]any{"revealed": output.Revealed}, nil
}

func (h *Handler) hostFinalizeVote1(ctx context.Context) (map[string]any, error) {
	output, err := h.gameService.FinalizeVote1(ctx, &gameService.FinalizeVote1Input{})
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"result":          output.Result,
		"revealedHunters": output.RevealedHunterNames,
	}, nil
}

func (h *Handler) hostFinalizeVote2(ctx context.Context) (map[string]any, error) {
	output, err := h.gameService.FinalizeVote2(ctx, &gameService.FinalizeVote2Input{})
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"result":          output.Result,
		"revealedHunters": output.RevealedHunterNames,
	}, nil
}

func (h *Handler) hostResetLobby(ctx context.Context) (map[string]any, error) {
	_, err := h.gameService.ResetLobby(ctx, &gameService.ResetLobbyInput{})
	if err != nil {
		return nil, err
	}

	return map[string]any{}, nil
}
