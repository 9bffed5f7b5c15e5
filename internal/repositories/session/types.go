package session

import "github.com/jihoonmoon/sanyang/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	Token string
}

type DeleteSessionInput struct {
	Token string
}

type DeleteAllSessionsInput struct {
}
