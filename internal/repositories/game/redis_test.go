package game

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jihoonmoon/sanyang/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testGame() *models.Game {
	return &models.Game{
		ID:     "test-game-id",
		Status: models.PhaseHike,
		Players: []*models.Player{
			{ID: "p-king", Name: "King", LoginID: "king", Role: models.RoleKing, Alive: true},
			{ID: "p-h1", Name: "Hunter One", LoginID: "h1", Role: models.RoleHunter, Alive: true},
			{ID: "p-h2", Name: "Hunter Two", LoginID: "h2", Role: models.RoleHunter, Alive: true},
			{ID: "p-a1", Name: "Animal One", LoginID: "a1", Role: models.RoleAnimal, Alive: true},
		},
		KingID:    "p-king",
		HunterIDs: []string{"p-h1", "p-h2"},
		HuntTargets: map[string]string{
			"p-h1": "p-a1",
		},
		Vote1:     map[string]*models.Vote{},
		Vote2:     map[string]*models.Vote{},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetGame() {
	game := s.testGame()

	// Save the game
	err := s.repo.SaveGame(context.Background(), &SaveGameInput{
		Game: game,
	})
	s.Require().NoError(err)

	// Get the game back
	retrievedGame, err := s.repo.GetGame(context.Background(), &GetGameInput{})
	s.Require().NoError(err)
	s.Require().NotNil(retrievedGame)

	// Verify the game properties
	s.Equal("test-game-id", retrievedGame.ID)
	s.Equal(models.PhaseHike, retrievedGame.Status)
	s.Len(retrievedGame.Players, 4)
	s.Equal("p-king", retrievedGame.KingID)
	s.Equal([]string{"p-h1", "p-h2"}, retrievedGame.HunterIDs)
	s.Equal("p-a1", retrievedGame.HuntTargets["p-h1"])
	s.Equal(models.RoleHunter, retrievedGame.Players[1].Role)
	s.True(retrievedGame.Players[0].Alive)
	s.Equal(s.testNow.Unix(), retrievedGame.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetGame_NotSeeded() {
	_, err := s.repo.GetGame(context.Background(), &GetGameInput{})
	s.Require().Error(err)
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveGame_Overwrites() {
	game := s.testGame()

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game})
	s.Require().NoError(err)

	// Mutate and save again
	game.Status = models.PhaseVote1
	game.RevealedHunterIDs = []string{"p-h1"}
	game.Vote1RevealedHunterID = "p-h1"

	err = s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game})
	s.Require().NoError(err)

	retrievedGame, err := s.repo.GetGame(context.Background(), &GetGameInput{})
	s.Require().NoError(err)
	s.Equal(models.PhaseVote1, retrievedGame.Status)
	s.Equal([]string{"p-h1"}, retrievedGame.RevealedHunterIDs)
	s.Equal("p-h1", retrievedGame.Vote1RevealedHunterID)
}

func (s *RedisRepositoryTestSuite) TestDeleteGame() {
	game := s.testGame()

	err := s.repo.SaveGame(context.Background(), &SaveGameInput{Game: game})
	s.Require().NoError(err)

	// Delete the game
	err = s.repo.DeleteGame(context.Background(), &DeleteGameInput{})
	s.Require().NoError(err)

	// Verify the game no longer exists
	_, err = s.repo.GetGame(context.Background(), &GetGameInput{})
	s.Require().Error(err)
	s.ErrorIs(err, ErrGameNotFound)
}
