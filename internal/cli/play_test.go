package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pig-go/internal/factory"
	"github.com/mcoot/pig-go/internal/model"
)

// runCLI executes the root command with the given stdin and arguments
func runCLI(stdin string, args ...string) (string, string, error) {
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

type PlaySuite struct {
	suite.Suite
	app     *factory.TestApp
	restore func(*slog.Logger) (*factory.App, error)
	ctx     context.Context
}

func TestPlaySuite(t *testing.T) {
	suite.Run(t, new(PlaySuite))
}

func (s *PlaySuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.restore = newApp
	newApp = func(*slog.Logger) (*factory.App, error) {
		return s.app.App, nil
	}
	s.ctx = context.Background()
}

func (s *PlaySuite) TearDownTest() {
	newApp = s.restore
}

func (s *PlaySuite) TestHumanVersusComputerTranscript() {
	s.app.QueueGame("GAME0001", 5, 4, 1, 6, 6, 6, 2)

	stdout, _, err := runCLI("r\nmaybe\nr\n",
		"play",
		"--player1", "human", "--player1_name", "Ann",
		"--player2", "computer", "--player2_name", "Bot",
		"--target", "20",
	)
	s.Require().NoError(err)

	expected := "Welcome to Pig!\n" +
		"Ann rolled: 5\n" +
		"Ann's turn total: 5, Current score: 0\n" +
		"Roll again (r) or hold (h)? " +
		"Ann rolled: 4\n" +
		"Ann's turn total: 9, Current score: 0\n" +
		"Roll again (r) or hold (h)? " +
		"Please enter r to roll or h to hold.\n" +
		"Roll again (r) or hold (h)? " +
		"Ann rolled: 1\n" +
		"Ann loses this turn's points!\n" +
		"Ann's total score: 0\n\n" +
		"Bot rolled: 6\n" +
		"Bot's turn total: 6, Current score: 0\n" +
		"Bot rolled: 6\n" +
		"Bot's turn total: 12, Current score: 0\n" +
		"Bot rolled: 6\n" +
		"Bot's turn total: 18, Current score: 0\n" +
		"Bot rolled: 2\n" +
		"Bot's turn total: 20, Current score: 0\n" +
		"Bot's total score: 20\n\n" +
		"Bot wins with 20 points!\n"
	s.Equal(expected, stdout)

	summary, err := s.app.MatchService.GetSummary(s.ctx, "GAME0001")
	s.Require().NoError(err)
	s.Equal("Bot", summary.Outcome.Winner)
	s.Equal(2, summary.Outcome.Turns)
}

func (s *PlaySuite) TestComputerGameAsJSONLines() {
	s.app.MockRandom.QueueString("SEEDED01")

	stdout, _, err := runCLI("",
		"play", "-o", "json",
		"--player1", "computer", "--player1_name", "A",
		"--player2", "automated", "--player2_name", "B",
		"--seed", "42",
	)
	s.Require().NoError(err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	s.Require().Greater(len(lines), 2)

	var first, last struct {
		Type   string `json:"type"`
		GameID string `json:"game_id"`
	}
	s.Require().NoError(json.Unmarshal([]byte(lines[0]), &first))
	s.Require().NoError(json.Unmarshal([]byte(lines[len(lines)-1]), &last))
	s.Equal(string(model.EventGameStarted), first.Type)
	s.Equal(string(model.EventGameComplete), last.Type)
	s.Equal("SEEDED01", last.GameID)

	summary, err := s.app.MatchService.GetSummary(s.ctx, "SEEDED01")
	s.Require().NoError(err)
	s.Require().NotNil(summary.Seed)
	s.Equal(uint64(42), *summary.Seed)
}

func (s *PlaySuite) TestEndOfInputAbortsGame() {
	s.app.QueueGame("GAME0002", 5, 5)

	_, _, err := runCLI("r\n",
		"play",
		"--player1", "human", "--player1_name", "Ann",
		"--player2", "computer", "--player2_name", "Bot",
	)
	s.Require().Error(err)
	s.ErrorIs(err, io.EOF)

	_, err = s.app.MatchService.GetSummary(s.ctx, "GAME0002")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *PlaySuite) TestInvalidPlayerType() {
	_, _, err := runCLI("",
		"play",
		"--player1", "robot", "--player1_name", "Ann",
		"--player2", "computer", "--player2_name", "Bot",
	)
	s.ErrorIs(err, model.ErrInvalidPlayerType)
}

func (s *PlaySuite) TestZeroTargetIsRejected() {
	_, _, err := runCLI("",
		"play",
		"--player1", "computer", "--player1_name", "A",
		"--player2", "computer", "--player2_name", "B",
		"--target", "0",
	)
	s.ErrorIs(err, model.ErrInvalidConfig)
}

func (s *PlaySuite) TestSharedNameIsRejected() {
	stdout, _, err := runCLI("",
		"play",
		"--player1", "computer", "--player1_name", "Bob",
		"--player2", "computer", "--player2_name", "Bob",
	)
	s.ErrorIs(err, model.ErrInvalidConfig)
	s.NotContains(stdout, "wins")
}

func (s *PlaySuite) TestUnknownStrategy() {
	_, _, err := runCLI("",
		"play",
		"--player1", "computer", "--player1_name", "A", "--player1_strategy", "greedy",
		"--player2", "computer", "--player2_name", "B",
	)
	s.ErrorIs(err, model.ErrUnknownStrategy)
}

func (s *PlaySuite) TestRequiredFlags() {
	_, _, err := runCLI("", "play", "--player1", "human", "--player1_name", "Ann")
	s.Require().Error(err)
	s.Contains(err.Error(), "player2")
}

func (s *PlaySuite) TestInvalidOutputFormat() {
	_, _, err := runCLI("", "-o", "yaml", "health")
	s.Require().Error(err)
	s.Contains(err.Error(), "output must be text or json")
}
