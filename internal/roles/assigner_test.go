package roles

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type AssignerTestSuite struct {
	suite.Suite
	playerIDs []string
}

func (s *AssignerTestSuite) SetupTest() {
	s.playerIDs = []string{"p1", "p2", "p3", "p4", "p5", "p6"}
}

func TestAssignerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignerTestSuite))
}

func (s *AssignerTestSuite) TestAssign_ExactlyOneKingTwoHunters() {
	assigner := New(&Config{Seed: 42})

	assignment, err := assigner.Assign(s.playerIDs)
	s.Require().NoError(err)
	s.Require().NotNil(assignment)

	s.NotEmpty(assignment.KingID)
	s.Len(assignment.HunterIDs, 2)

	// The king and both hunters must be distinct roster members
	s.NotEqual(assignment.HunterIDs[0], assignment.HunterIDs[1])
	s.NotContains(assignment.HunterIDs, assignment.KingID)
	s.Contains(s.playerIDs, assignment.KingID)
	s.Contains(s.playerIDs, assignment.HunterIDs[0])
	s.Contains(s.playerIDs, assignment.HunterIDs[1])
}

func (s *AssignerTestSuite) TestAssign_DeterministicUnderSeed() {
	first, err := New(&Config{Seed: 7}).Assign(s.playerIDs)
	s.Require().NoError(err)

	second, err := New(&Config{Seed: 7}).Assign(s.playerIDs)
	s.Require().NoError(err)

	s.Equal(first.KingID, second.KingID)
	s.Equal(first.HunterIDs, second.HunterIDs)
}

func (s *AssignerTestSuite) TestAssign_DoesNotMutateInput() {
	original := make([]string, len(s.playerIDs))
	copy(original, s.playerIDs)

	_, err := New(&Config{Seed: 3}).Assign(s.playerIDs)
	s.Require().NoError(err)

	s.Equal(original, s.playerIDs)
}

func (s *AssignerTestSuite) TestAssign_RosterTooSmall() {
	assigner := New(&Config{Seed: 1})

	_, err := assigner.Assign([]string{"p1", "p2", "p3"})
	s.Require().Error(err)
	s.ErrorIs(err, ErrNotEnoughPlayers)
}
