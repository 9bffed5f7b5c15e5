package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/jihoonmoon/sanyang/internal/repositories/session Repository

import (
	"context"

	"github.com/jihoonmoon/sanyang/internal/models"
)

// Repository defines the interface for session token persistence
type Repository interface {
	// SaveSession persists a session token
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by token
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// DeleteSession removes a single session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// DeleteAllSessions revokes every outstanding session
	DeleteAllSessions(ctx context.Context, input *DeleteAllSessionsInput) error
}
