package game

import (
	"context"
	"strings"
	"sync"

	"github.com/jihoonmoon/sanyang/internal/common/clock"
	"github.com/jihoonmoon/sanyang/internal/common/uuid"
	"github.com/jihoonmoon/sanyang/internal/models"
	gameRepo "github.com/jihoonmoon/sanyang/internal/repositories/game"
	sessionRepo "github.com/jihoonmoon/sanyang/internal/repositories/session"
	"github.com/jihoonmoon/sanyang/internal/roles"
	"github.com/jihoonmoon/sanyang/internal/roster"
)

// service implements the Service interface
type service struct {
	config      *Config
	gameRepo    gameRepo.Repository
	sessionRepo sessionRepo.Repository
	assigner    *roles.Assigner
	clock       clock.Clock
	uuidGen     uuid.UUID

	// mu serializes every mutation of the single game aggregate for the
	// duration of one operation, so concurrent submissions and a finalize
	// racing a late vote resolve in a total order. Reads go through a
	// single repository GET and need no lock.
	mu sync.Mutex
}

// New creates a new game service
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

	if cfg.Assigner == nil {
		return nil, ErrNilAssigner
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if len(cfg.Roster) == 0 {
		return nil, ErrEmptyRoster
	}

	if err := roster.Validate(cfg.Roster); err != nil {
		return nil, err
	}

	if cfg.Vote1Threshold == 0 {
		cfg.Vote1Threshold = DefaultVote1Threshold
	}

	if cfg.Vote2Threshold == 0 {
		cfg.Vote2Threshold = DefaultVote2Threshold
	}

	return &service{
		config:      cfg,
		gameRepo:    cfg.GameRepo,
		sessionRepo: cfg.SessionRepo,
		assigner:    cfg.Assigner,
		clock:       cfg.Clock,
		uuidGen:     cfg.UUIDGenerator,
	}, nil
}

// loadGame fetches the current aggregate.
func (s *service) loadGame(ctx context.Context) (*models.Game, error) {
	return s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{})
}

// saveGame persists the aggregate with a fresh update timestamp.
func (s *service) saveGame(ctx context.Context, g *models.Game) error {
	g.UpdatedAt = s.clock.Now()
	return s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: g})
}

// ResetLobby seeds a fresh game from the roster: new player IDs, new random
// roles, empty ledgers, phase lobby. Every outstanding session token is
// revoked so stale clients are forced back to login.
func (s *service) ResetLobby(ctx context.Context, input *ResetLobbyInput) (*ResetLobbyOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()

	players := make([]*models.Player, 0, len(s.config.Roster))
	playerIDs := make([]string, 0, len(s.config.Roster))
	for _, entry := range s.config.Roster {
		id := s.uuidGen.NewUUID()
		players = append(players, &models.Player{
			ID:           id,
			Name:         entry.Name,
			LoginID:      entry.LoginID,
			PasswordHash: entry.PasswordHash,
			Role:         models.RoleAnimal,
			Alive:        true,
		})
		playerIDs = append(playerIDs, id)
	}

	assignment, err := s.assigner.Assign(playerIDs)
	if err != nil {
		return nil, err
	}

	game := &models.Game{
		ID:          s.uuidGen.NewUUID(),
		Status:      models.PhaseLobby,
		Players:     players,
		KingID:      assignment.KingID,
		HunterIDs:   assignment.HunterIDs,
		HuntTargets: map[string]string{},
		Vote1:       map[string]*models.Vote{},
		Vote2:       map[string]*models.Vote{},
		CreatedAt:   now,
	}

	for _, p := range players {
		if p.ID == assignment.KingID {
			p.Role = models.RoleKing
		}
	}
	for _, hunterID := range assignment.HunterIDs {
		if p := game.Player(hunterID); p != nil {
			p.Role = models.RoleHunter
		}
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	err = s.sessionRepo.DeleteAllSessions(ctx, &sessionRepo.DeleteAllSessionsInput{})
	if err != nil {
		return nil, err
	}

	return &ResetLobbyOutput{}, nil
}

// SetStatus moves the game to the given phase. The host is trusted with the
// ordering; the only hard rules are that the status must be a known phase
// and that a terminal phase can only be left through a lobby reset.
func (s *service) SetStatus(ctx context.Context, input *SetStatusInput) (*SetStatusOutput, error) {
	if input == nil {
		return nil, ErrInvalidStatus
	}

	status := models.GamePhase(input.Status)
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	if game.EndedWinner != "" {
		return nil, ErrNotPermitted
	}

	game.Status = status
	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &SetStatusOutput{}, nil
}

// SubmitHunt records a hunter's secret hunt target, exactly once per game.
func (s *service) SubmitHunt(ctx context.Context, input *SubmitHuntInput) (*SubmitHuntOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrNotPermitted
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	if game.Status != models.PhaseHike {
		return nil, ErrNotPermitted
	}

	hunter := game.Player(input.PlayerID)
	if hunter == nil {
		return nil, ErrPlayerNotFound
	}

	if hunter.Role != models.RoleHunter || !hunter.Alive || hunter.RoleRevealed {
		return nil, ErrNotPermitted
	}

	target := game.Player(input.TargetID)
	if target == nil {
		return nil, ErrInvalidTarget
	}

	// Hunters may not hunt themselves or each other
	if target.ID == hunter.ID || target.ID == game.OtherHunter(hunter.ID) {
		return nil, ErrInvalidTarget
	}

	if !target.Alive || target.RoleRevealed {
		return nil, ErrInvalidTarget
	}

	if _, ok := game.HuntTargets[hunter.ID]; ok {
		return nil, ErrAlreadySubmitted
	}

	if game.HuntTargets == nil {
		game.HuntTargets = map[string]string{}
	}
	game.HuntTargets[hunter.ID] = target.ID

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &SubmitHuntOutput{}, nil
}

// SubmitProtect records the king's secret protect target, exactly once per
// game. The king may protect themselves.
func (s *service) SubmitProtect(ctx context.Context, input *SubmitProtectInput) (*SubmitProtectOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, ErrNotPermitted
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	if game.Status != models.PhaseHike {
		return nil, ErrNotPermitted
	}

	king := game.Player(input.PlayerID)
	if king == nil {
		return nil, ErrPlayerNotFound
	}

	if king.Role != models.RoleKing || !king.Alive || king.RoleRevealed {
		return nil, ErrNotPermitted
	}

	target := game.Player(input.TargetID)
	if target == nil {
		return nil, ErrInvalidTarget
	}

	if !target.Alive || target.RoleRevealed {
		return nil, ErrInvalidTarget
	}

	if game.ProtectTargetID != "" {
		return nil, ErrAlreadySubmitted
	}

	game.ProtectTargetID = target.ID

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &SubmitProtectOutput{}, nil
}

// SubmitVote records one accusation vote for the round currently open.
func (s *service) SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error) {
	if input == nil || input.VoterID == "" {
		return nil, ErrNotPermitted
	}

	var wantPhase models.GamePhase
	switch input.Round {
	case 1:
		wantPhase = models.PhaseVote1
	case 2:
		wantPhase = models.PhaseVote2
	default:
		return nil, ErrInvalidRound
	}

	if strings.TrimSpace(input.Reason) == "" {
		return nil, ErrReasonRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	game, err := s.loadGame(ctx)
	if err != nil {
		return nil, err
	}

	if game.Status != wantPhase {
		return nil, ErrNotPermitted
	}

	voter := game.Player(input.VoterID)
	if voter == nil {
		return nil, ErrPlayerNotFound
	}

	if !voter.Alive || voter.RoleRevealed {
		return nil, ErrNotPermitted
	}

	target := game.Player(input.TargetID)
	if target == nil {
		return nil, ErrInvalidTarget
	}

	if target.ID == voter.ID || !target.Alive || target.RoleRevealed {
		return nil, ErrInvalidTarget
	}

	// A hunter never votes for their partner
	if voter.Role == models.RoleHunter && target.ID == game.OtherHunter(voter.ID) {
		return nil, ErrInvalidTarget
	}

	// Round 2 may not re-accuse the hunter already revealed in round 1
	if input.Round == 2 && game.Vote1RevealedHunterID != "" && target.ID == game.Vote1RevealedHunterID {
		return nil, ErrInvalidTarget
	}

	votes := game.VotesFor(input.Round)
	if votes == nil {
		votes = map[string]*models.Vote{}
		if input.Round == 1 {
			game.Vote1 = votes
		} else {
			game.Vote2 = votes
		}
	}

	if _, ok := votes[voter.ID]; ok {
		return nil, ErrAlreadySubmitted
	}

	votes[voter.ID] = &models.Vote{
		VoterID:     voter.ID,
		TargetID:    target.ID,
		Reason:      strings.TrimSpace(input.Reason),
		SubmittedAt: s.clock.Now(),
	}

	if err := s.saveGame(ctx, game); err != nil {
		return nil, err
	}

	return &SubmitVoteOutput{}, nil
}
