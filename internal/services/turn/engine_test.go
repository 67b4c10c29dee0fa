package turn_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pig-go/internal/dependencies/mocks"
	"github.com/mcoot/pig-go/internal/model"
	"github.com/mcoot/pig-go/internal/services/die"
	"github.com/mcoot/pig-go/internal/services/strategy"
	"github.com/mcoot/pig-go/internal/services/turn"
	"github.com/mcoot/pig-go/internal/testutil"
)

// scriptedInput answers from a fixed list and records every request
type scriptedInput struct {
	answers  []string
	requests []turn.DecisionRequest
}

func (s *scriptedInput) RequestDecision(_ context.Context, req turn.DecisionRequest) (string, error) {
	s.requests = append(s.requests, req)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

type EngineSuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	mockClock  *mocks.MockClock
	recorder   *turn.Recorder
	input      *scriptedInput
	die        *die.Die
	engine     *turn.Engine
	ctx        context.Context
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.mockClock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.recorder = turn.NewRecorder()
	s.input = &scriptedInput{}
	s.die = die.New(s.mockRandom)
	s.engine = turn.NewEngine(model.DefaultBustValue, s.input, s.recorder, s.mockClock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *EngineSuite) TestBustDiscardsTurnTotal() {
	player := model.NewPlayer("Alice", nil)
	s.mockRandom.QueueRolls(5, 4, 1)
	s.input.answers = []string{"r", "r"}

	result, err := s.engine.PlayTurn(s.ctx, "G1", 1, player, s.die)
	s.Require().NoError(err)

	s.Equal(model.TurnOutcomeBust, result.Outcome)
	s.Equal(0, result.Points)
	s.Equal([]int{5, 4, 1}, result.Rolls)
	s.Equal(0, player.Score())
	s.Equal(1, player.Commits())

	busts := s.recorder.OfType(model.EventBust)
	s.Require().Len(busts, 1)
	s.Equal(model.BustPayload{Roll: 1, Forfeited: 9}, busts[0].Payload)
}

func (s *EngineSuite) TestBustOnFirstRoll() {
	player := model.NewPlayer("Alice", nil)
	player.AddToScore(40)
	s.mockRandom.QueueRolls(1)

	result, err := s.engine.PlayTurn(s.ctx, "G1", 3, player, s.die)
	s.Require().NoError(err)

	s.True(result.Busted())
	s.Equal(40, player.Score())
	s.Equal(40, result.Score)
	s.Empty(s.input.requests, "no decision should be requested after a bust")
}

func (s *EngineSuite) TestHoldCommitsSumOfRolls() {
	player := model.NewPlayer("Alice", nil)
	player.AddToScore(10)
	s.mockRandom.QueueRolls(6, 3, 2, 5)
	s.input.answers = []string{"roll", "ROLL", "r", "hold"}

	result, err := s.engine.PlayTurn(s.ctx, "G1", 1, player, s.die)
	s.Require().NoError(err)

	s.Equal(model.TurnOutcomeHeld, result.Outcome)
	s.Equal(16, result.Points)
	s.Equal(26, player.Score())
	s.Equal(26, result.Score)
	s.Equal(2, player.Commits(), "one commit from setup and one from the turn")
}

func (s *EngineSuite) TestDecisionRequestCarriesTurnState() {
	player := model.NewPlayer("Alice", nil)
	player.AddToScore(7)
	s.mockRandom.QueueRolls(3, 4)
	s.input.answers = []string{"r", "h"}

	_, err := s.engine.PlayTurn(s.ctx, "G9", 1, player, s.die)
	s.Require().NoError(err)

	s.Require().Len(s.input.requests, 2)
	s.Equal(turn.DecisionRequest{GameID: "G9", Player: "Alice", TurnTotal: 3, Score: 7, Attempt: 1}, s.input.requests[0])
	s.Equal(7, s.input.requests[1].TurnTotal)
}

func (s *EngineSuite) TestInvalidInputReprompts() {
	player := model.NewPlayer("Alice", nil)
	s.mockRandom.QueueRolls(4)
	s.input.answers = []string{"maybe", "", "  H  "}

	result, err := s.engine.PlayTurn(s.ctx, "G1", 1, player, s.die)
	s.Require().NoError(err)

	s.Equal(4, result.Points)
	s.Require().Len(s.input.requests, 3)
	s.Equal(3, s.input.requests[2].Attempt)

	invalid := s.recorder.OfType(model.EventInvalidInput)
	s.Require().Len(invalid, 2)
	s.Equal(model.InvalidInputPayload{Input: "maybe"}, invalid[0].Payload)
}

func (s *EngineSuite) TestInputErrorAbortsTurnWithoutCommit() {
	player := model.NewPlayer("Alice", nil)
	s.mockRandom.QueueRolls(4)

	_, err := s.engine.PlayTurn(s.ctx, "G1", 1, player, s.die)
	s.Require().Error(err)
	s.True(errors.Is(err, io.EOF))
	s.Equal(0, player.Commits())
}

func (s *EngineSuite) TestHumanWithoutInputSource() {
	engine := turn.NewEngine(model.DefaultBustValue, nil, nil, s.mockClock, testutil.NopLogger())
	player := model.NewPlayer("Alice", nil)
	s.mockRandom.QueueRolls(4)

	_, err := engine.PlayTurn(s.ctx, "G1", 1, player, s.die)
	s.ErrorIs(err, model.ErrInvalidConfig)
	s.False(engine.HasInput())
}

func (s *EngineSuite) TestAutomatedPlayerUsesStrategy() {
	player := model.NewPlayer("Bot", strategy.NewThresholdStrategy(100))
	player.AddToScore(80)
	// Threshold is min(25, 20) = 20
	s.mockRandom.QueueRolls(6, 6, 4, 4, 6)

	result, err := s.engine.PlayTurn(s.ctx, "G1", 1, player, s.die)
	s.Require().NoError(err)

	s.Equal(model.TurnOutcomeHeld, result.Outcome)
	s.Equal(20, result.Points)
	s.Equal(100, player.Score())
	s.Equal(1, s.mockRandom.Remaining(), "the player should not roll past the threshold")
	s.Empty(s.input.requests)
}

func (s *EngineSuite) TestEventOrder() {
	player := model.NewPlayer("Alice", nil)
	s.mockRandom.QueueRolls(2, 1)
	s.input.answers = []string{"r"}

	_, err := s.engine.PlayTurn(s.ctx, "G1", 1, player, s.die)
	s.Require().NoError(err)

	var types []model.EventType
	for _, e := range s.recorder.Events() {
		types = append(types, e.Type)
		s.Equal(model.GameID("G1"), e.GameID)
		s.Equal("Alice", e.Player)
	}
	s.Equal([]model.EventType{
		model.EventTurnStarted,
		model.EventRolled,
		model.EventRolled,
		model.EventBust,
		model.EventTurnComplete,
	}, types)
}

func (s *EngineSuite) TestCustomBustValue() {
	engine := turn.NewEngine(6, s.input, nil, s.mockClock, testutil.NopLogger())
	player := model.NewPlayer("Alice", nil)
	s.mockRandom.QueueRolls(1, 6)
	s.input.answers = []string{"r"}

	result, err := engine.PlayTurn(s.ctx, "G1", 1, player, s.die)
	s.Require().NoError(err)
	s.True(result.Busted())
	s.Equal(0, player.Score())
}
