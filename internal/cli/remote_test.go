package cli

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pig-go/internal/api"
	"github.com/mcoot/pig-go/internal/factory"
	"github.com/mcoot/pig-go/internal/testutil"
)

type RemoteSuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
}

func TestRemoteSuite(t *testing.T) {
	suite.Run(t, new(RemoteSuite))
}

func (s *RemoteSuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.server = httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:       testutil.NopLogger(),
		MatchService: s.app.MatchService,
	}))
}

func (s *RemoteSuite) TearDownTest() {
	s.server.Close()
}

func (s *RemoteSuite) run(args ...string) (string, error) {
	stdout, _, err := runCLI("", append([]string{"--server", s.server.URL}, args...)...)
	return stdout, err
}

func (s *RemoteSuite) runMatch(id string) MatchSummary {
	s.app.QueueGame(id, 6, 6, 6, 6, 1, 6, 6, 6, 6, 2)

	stdout, err := s.run("-o", "json", "match", "run", "--target", "24")
	s.Require().NoError(err)

	var result MatchSummary
	s.Require().NoError(json.Unmarshal([]byte(stdout), &result))
	return result
}

func (s *RemoteSuite) TestHealth() {
	stdout, err := s.run("health")
	s.Require().NoError(err)
	s.Equal("Server: "+s.server.URL+"\nStatus: ok\n", stdout)

	stdout, err = s.run("-o", "json", "health")
	s.Require().NoError(err)
	var result HealthResult
	s.Require().NoError(json.Unmarshal([]byte(stdout), &result))
	s.Equal(HealthResult{Status: "ok", Server: s.server.URL}, result)
}

func (s *RemoteSuite) TestMatchRun() {
	result := s.runMatch("REMOTE01")

	s.Equal("REMOTE01", result.ID)
	s.Equal("target_reached", result.Reason)
	s.Require().Len(result.Scores, 2)
	s.Equal("Computer 1", result.Scores[0].Name)
	s.Equal(24, result.Scores[0].Score)
	s.Require().NotNil(result.Winner)
	s.Equal("Computer 1", *result.Winner)
	s.Len(result.History, 1)
}

func (s *RemoteSuite) TestMatchRunWithSeed() {
	s.app.MockRandom.QueueString("SEEDED01")

	stdout, err := s.run("-o", "json", "match", "run", "--seed", "9", "--player1_name", "X", "--player2_name", "Y")
	s.Require().NoError(err)

	var result MatchSummary
	s.Require().NoError(json.Unmarshal([]byte(stdout), &result))
	s.Require().NotNil(result.Seed)
	s.Equal(uint64(9), *result.Seed)
	s.Equal("X", result.Scores[0].Name)
}

func (s *RemoteSuite) TestMatchRunRejectsZeroTarget() {
	_, err := s.run("match", "run", "--target", "0")
	s.Require().Error(err)

	var apiErr *APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal("INVALID_CONFIG", apiErr.Code)
}

func (s *RemoteSuite) TestMatchRunRejectsSharedName() {
	_, err := s.run("match", "run", "--player1_name", "Bob", "--player2_name", "Bob")
	s.Require().Error(err)

	var apiErr *APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal("INVALID_CONFIG", apiErr.Code)
}

func (s *RemoteSuite) TestMatchGet() {
	s.runMatch("REMOTE02")

	stdout, err := s.run("match", "get", "REMOTE02")
	s.Require().NoError(err)
	s.Contains(stdout, "Match: REMOTE02")
	s.Contains(stdout, "History:")
	s.Contains(stdout, "Result: Computer 1 wins")
}

func (s *RemoteSuite) TestMatchGetNotFound() {
	_, err := s.run("match", "get", "MISSING1")
	s.Require().Error(err)

	var apiErr *APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal("GAME_NOT_FOUND", apiErr.Code)
}

func (s *RemoteSuite) TestMatchList() {
	stdout, err := s.run("match", "list")
	s.Require().NoError(err)
	s.Equal("No matches recorded\n", stdout)

	s.runMatch("REMOTE03")

	stdout, err = s.run("match", "list", "--limit", "5")
	s.Require().NoError(err)
	s.Contains(stdout, "REMOTE03")
	s.Contains(stdout, "Computer 1 24 - Computer 2 0")
}

func (s *RemoteSuite) TestMatchListRejectsBadLimit() {
	_, err := s.run("match", "list", "--limit", "0")
	s.Require().Error(err)
}

func (s *RemoteSuite) TestStats() {
	s.runMatch("REMOTE04")

	stdout, err := s.run("stats", "Computer 2")
	s.Require().NoError(err)
	s.Equal("Player: Computer 2\nGames: 1\nWins: 0\nLosses: 1\nTies: 0\n", stdout)
}
