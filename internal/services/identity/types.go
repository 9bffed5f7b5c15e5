package identity

import (
	"github.com/jihoonmoon/sanyang/internal/common/clock"
	"github.com/jihoonmoon/sanyang/internal/common/uuid"
	gameRepo "github.com/jihoonmoon/sanyang/internal/repositories/game"
	sessionRepo "github.com/jihoonmoon/sanyang/internal/repositories/session"
)

// Config holds configuration for the identity service
type Config struct {
	// Repository dependencies
	GameRepo    gameRepo.Repository
	SessionRepo sessionRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// LoginInput contains a player's submitted credentials
type LoginInput struct {
	LoginID  string
	Password string
}

// LoginOutput contains the issued session
type LoginOutput struct {
	Token    string
	PlayerID string
}

// ResolveInput contains the token to resolve
type ResolveInput struct {
	Token string
}

// ResolveOutput contains the authenticated player identity
type ResolveOutput struct {
	PlayerID string
}

// LogoutInput contains the token to invalidate
type LogoutInput struct {
	Token string
}

// LogoutOutput contains the result of a logout
type LogoutOutput struct {
}

// RevokeAllInput revokes every session; used by the host lobby reset
type RevokeAllInput struct {
}

// RevokeAllOutput contains the result of a mass revoke
type RevokeAllOutput struct {
}
