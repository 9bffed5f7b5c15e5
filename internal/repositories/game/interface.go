package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/jihoonmoon/sanyang/internal/repositories/game Repository

import (
	"context"

	"github.com/jihoonmoon/sanyang/internal/models"
)

// Repository defines the interface for persisting the single game aggregate
type Repository interface {
	// SaveGame persists the current game
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves the current game
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// DeleteGame removes the current game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error
}
