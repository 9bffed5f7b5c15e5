package game

import "github.com/jihoonmoon/sanyang/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
}

type DeleteGameInput struct {
}
