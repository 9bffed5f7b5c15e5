package session

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

	s.testNow = time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	session := &models.Session{
		Token:     "test-token",
		PlayerID:  "test-player-id",
		CreatedAt: s.testNow,
	}

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: session,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		Token: "test-token",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-token", retrieved.Token)
	s.Equal("test-player-id", retrieved.PlayerID)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetSession_Unknown() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		Token: "no-such-token",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	session := &models.Session{
		Token:     "test-token",
		PlayerID:  "test-player-id",
		CreatedAt: s.testNow,
	}

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: session})
	s.Require().NoError(err)

	err = s.repo.DeleteSession(context.Background(), &DeleteSessionInput{
		Token: "test-token",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetSession(context.Background(), &GetSessionInput{
		Token: "test-token",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteAllSessions() {
	// Save a handful of sessions
	for _, token := range []string{"token-a", "token-b", "token-c"} {
		err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
			Session: &models.Session{
				Token:     token,
				PlayerID:  "player-" + token,
				CreatedAt: s.testNow,
			},
		})
		s.Require().NoError(err)
	}

	err := s.repo.DeleteAllSessions(context.Background(), &DeleteAllSessionsInput{})
	s.Require().NoError(err)

	// Every token must now be unknown
	for _, token := range []string{"token-a", "token-b", "token-c"} {
		_, err := s.repo.GetSession(context.Background(), &GetSessionInput{Token: token})
		s.Require().Error(err)
		s.ErrorIs(err, ErrSessionNotFound)
	}
}

func (s *RedisRepositoryTestSuite) TestDeleteAllSessions_Empty() {
	// Revoking with no outstanding sessions is a no-op
	err := s.repo.DeleteAllSessions(context.Background(), &DeleteAllSessionsInput{})
	s.Require().NoError(err)
}
