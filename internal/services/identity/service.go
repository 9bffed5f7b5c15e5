package identity

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/jihoonmoon/sanyang/internal/common/clock"
	"github.com/jihoonmoon/sanyang/internal/common/uuid"
	"github.com/jihoonmoon/sanyang/internal/models"
	gameRepo "github.com/jihoonmoon/sanyang/internal/repositories/game"
	sessionRepo "github.com/jihoonmoon/sanyang/internal/repositories/session"
)

// service implements the Service interface
type service struct {
	gameRepo    gameRepo.Repository
	sessionRepo sessionRepo.Repository
	clock       clock.Clock
	uuidGen     uuid.UUID
}

// New creates a new identity service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		gameRepo:    cfg.GameRepo,
		sessionRepo: cfg.SessionRepo,
		clock:       cfg.Clock,
		uuidGen:     cfg.UUIDGenerator,
	}, nil
}

// Login verifies a player's credentials against the seeded roster and
// issues an opaque session token. Unknown logins and wrong passwords are
// indistinguishable to the caller.
func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input == nil || input.LoginID == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	player := game.PlayerByLogin(input.LoginID)
	if player == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token := s.uuidGen.NewUUID()

	err = s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: &models.Session{
			Token:     token,
			PlayerID:  player.ID,
			CreatedAt: s.clock.Now(),
		},
	})
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Token:    token,
		PlayerID: player.ID,
	}, nil
}

// Resolve maps a session token to the player it authenticates.
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil || input.Token == "" {
		return nil, ErrInvalidSession
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		Token: input.Token,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	return &ResolveOutput{
		PlayerID: session.PlayerID,
	}, nil
}

// Logout invalidates a single session token. Unknown tokens are not an
// error; the outcome is the same either way.
func (s *service) Logout(ctx context.Context, input *LogoutInput) (*LogoutOutput, error) {
	if input == nil || input.Token == "" {
		return nil, ErrInvalidSession
	}

	err := s.sessionRepo.DeleteSession(ctx, &sessionRepo.DeleteSessionInput{
		Token: input.Token,
	})
	if err != nil {
		return nil, err
	}

	return &LogoutOutput{}, nil
}

// RevokeAll invalidates every outstanding session token.
func (s *service) RevokeAll(ctx context.Context, input *RevokeAllInput) (*RevokeAllOutput, error) {
	err := s.sessionRepo.DeleteAllSessions(ctx, &sessionRepo.DeleteAllSessionsInput{})
	if err != nil {
		return nil, err
	}

	return &RevokeAllOutput{}, nil
}
