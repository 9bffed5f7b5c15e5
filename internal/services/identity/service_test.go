package identity

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	clockMocks "github.com/jihoonmoon/sanyang/internal/common/clock/mocks"
	uuidMocks "github.com/jihoonmoon/sanyang/internal/common/uuid/mocks"
	"github.com/jihoonmoon/sanyang/internal/models"
	gameRepo "github.com/jihoonmoon/sanyang/internal/repositories/game"
	sessionRepo "github.com/jihoonmoon/sanyang/internal/repositories/session"
)

type IdentityServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mr          *miniredis.Miniredis
	client      *redis.Client
	gameRepo    gameRepo.Repository
	sessionRepo sessionRepo.Repository
	mockClock   *clockMocks.MockClock
	mockUUID    *uuidMocks.MockUUID
	service     Service
	ctx         context.Context
	testNow     time.Time
}

func (s *IdentityServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.testNow = time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC)

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	gr, err := gameRepo.NewRedis(&gameRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.gameRepo = gr

	sr, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.sessionRepo = sr

	s.mockClock = clockMocks.NewMockClock(s.ctrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.ctrl)

	svc, err := New(&Config{
		GameRepo:      s.gameRepo,
		SessionRepo:   s.sessionRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *IdentityServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestIdentityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IdentityServiceTestSuite))
}

func (s *IdentityServiceTestSuite) hash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)
	return string(hashed)
}

func (s *IdentityServiceTestSuite) seedGame() {
	game := &models.Game{
		ID:     "game-1",
		Status: models.PhaseLobby,
		Players: []*models.Player{
			{ID: "p-1", Name: "Rabbit", LoginID: "rabbit", PasswordHash: s.hash("carrot"), Role: models.RoleAnimal, Alive: true},
			{ID: "p-2", Name: "Squirrel", LoginID: "squirrel", PasswordHash: s.hash("acorn"), Role: models.RoleAnimal, Alive: true},
		},
		CreatedAt: s.testNow,
	}
	err := s.gameRepo.SaveGame(s.ctx, &gameRepo.SaveGameInput{Game: game})
	s.Require().NoError(err)
}

func (s *IdentityServiceTestSuite) TestLogin() {
	s.seedGame()
	s.mockUUID.EXPECT().NewUUID().Return("token-1")
	s.mockClock.EXPECT().Now().Return(s.testNow)

	output, err := s.service.Login(s.ctx, &LoginInput{LoginID: "rabbit", Password: "carrot"})
	s.Require().NoError(err)

	s.Equal("token-1", output.Token)
	s.Equal("p-1", output.PlayerID)

	session, err := s.sessionRepo.GetSession(s.ctx, &sessionRepo.GetSessionInput{Token: "token-1"})
	s.Require().NoError(err)
	s.Equal("p-1", session.PlayerID)
	s.Equal(s.testNow, session.CreatedAt)
}

func (s *IdentityServiceTestSuite) TestLoginWrongPassword() {
	s.seedGame()

	_, err := s.service.Login(s.ctx, &LoginInput{LoginID: "rabbit", Password: "acorn"})
	s.Equal(ErrInvalidCredentials, err)
}

func (s *IdentityServiceTestSuite) TestLoginUnknownLoginID() {
	s.seedGame()

	// Same error as a wrong password, so login IDs cannot be probed
	_, err := s.service.Login(s.ctx, &LoginInput{LoginID: "badger", Password: "carrot"})
	s.Equal(ErrInvalidCredentials, err)
}

func (s *IdentityServiceTestSuite) TestLoginBeforeGameSeeded() {
	_, err := s.service.Login(s.ctx, &LoginInput{LoginID: "rabbit", Password: "carrot"})
	s.Equal(ErrInvalidCredentials, err)
}

func (s *IdentityServiceTestSuite) TestLoginEmptyCredentials() {
	s.seedGame()

	_, err := s.service.Login(s.ctx, &LoginInput{LoginID: "", Password: "carrot"})
	s.Equal(ErrInvalidCredentials, err)

	_, err = s.service.Login(s.ctx, &LoginInput{LoginID: "rabbit", Password: ""})
	s.Equal(ErrInvalidCredentials, err)
}

func (s *IdentityServiceTestSuite) TestResolve() {
	err := s.sessionRepo.SaveSession(s.ctx, &sessionRepo.SaveSessionInput{
		Session: &models.Session{Token: "token-1", PlayerID: "p-1", CreatedAt: s.testNow},
	})
	s.Require().NoError(err)

	output, err := s.service.Resolve(s.ctx, &ResolveInput{Token: "token-1"})
	s.Require().NoError(err)
	s.Equal("p-1", output.PlayerID)
}

func (s *IdentityServiceTestSuite) TestResolveUnknownToken() {
	_, err := s.service.Resolve(s.ctx, &ResolveInput{Token: "token-nope"})
	s.Equal(ErrInvalidSession, err)
}

func (s *IdentityServiceTestSuite) TestResolveEmptyToken() {
	_, err := s.service.Resolve(s.ctx, &ResolveInput{Token: ""})
	s.Equal(ErrInvalidSession, err)
}

func (s *IdentityServiceTestSuite) TestLogout() {
	err := s.sessionRepo.SaveSession(s.ctx, &sessionRepo.SaveSessionInput{
		Session: &models.Session{Token: "token-1", PlayerID: "p-1", CreatedAt: s.testNow},
	})
	s.Require().NoError(err)

	_, err = s.service.Logout(s.ctx, &LogoutInput{Token: "token-1"})
	s.Require().NoError(err)

	_, err = s.service.Resolve(s.ctx, &ResolveInput{Token: "token-1"})
	s.Equal(ErrInvalidSession, err)
}

func (s *IdentityServiceTestSuite) TestLogoutUnknownTokenIsNoop() {
	_, err := s.service.Logout(s.ctx, &LogoutInput{Token: "token-nope"})
	s.NoError(err)
}

func (s *IdentityServiceTestSuite) TestRevokeAll() {
	for _, token := range []string{"token-1", "token-2"} {
		err := s.sessionRepo.SaveSession(s.ctx, &sessionRepo.SaveSessionInput{
			Session: &models.Session{Token: token, PlayerID: "p-1", CreatedAt: s.testNow},
		})
		s.Require().NoError(err)
	}

	_, err := s.service.RevokeAll(s.ctx, &RevokeAllInput{})
	s.Require().NoError(err)

	_, err = s.service.Resolve(s.ctx, &ResolveInput{Token: "token-1"})
	s.Equal(ErrInvalidSession, err)
	_, err = s.service.Resolve(s.ctx, &ResolveInput{Token: "token-2"})
	s.Equal(ErrInvalidSession, err)
}
