package api_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pig-go/internal/api/response"
)

// sseStream reads events from a live /events connection
type sseStream struct {
	resp   *http.Response
	reader *bufio.Reader
}

func openStream(t *testing.T, url string) *sseStream {
	t.Helper()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	s := &sseStream{resp: resp, reader: bufio.NewReader(resp.Body)}
	name, _ := s.next(t)
	require.Equal(t, "connected", name)
	return s
}

// next returns the name and data of the next event, skipping comments
func (s *sseStream) next(t *testing.T) (string, string) {
	t.Helper()

	var name string
	var data []string
	for {
		line, err := s.reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimSuffix(line, "\n")

		switch {
		case line == "" && name != "":
			return name, strings.Join(data, "\n")
		case strings.HasPrefix(line, "event: "):
			name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = append(data, strings.TrimPrefix(line, "data: "))
		}
	}
}

func postMatch(t *testing.T, baseURL string, body any) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(baseURL+"/api/v1/matches", "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestEventStream(t *testing.T) {
	ts := newTestServer(t)
	server := httptest.NewServer(ts.handler)
	defer func() {
		// Closing the hub ends open streams so the server can stop
		_ = ts.app.Close()
		server.Close()
	}()

	stream := openStream(t, server.URL+"/api/v1/events")

	ts.app.QueueGame("MATCH001", 6, 4)
	postMatch(t, server.URL, computerMatch(10))

	var names []string
	var last string
	for {
		name, data := stream.next(t)
		names = append(names, name)
		if name == "game_complete" {
			last = data
			break
		}
	}

	assert.Equal(t, []string{
		"game_started",
		"turn_started",
		"rolled",
		"rolled",
		"held",
		"turn_complete",
		"game_complete",
	}, names)

	var event struct {
		response.Event
		Payload response.GameComplete `json:"payload"`
	}
	require.NoError(t, json.Unmarshal([]byte(last), &event))
	assert.Equal(t, "MATCH001", event.GameID)
	assert.Equal(t, "target_reached", event.Payload.Reason)
	require.NotNil(t, event.Payload.Winner)
	assert.Equal(t, "Alpha", *event.Payload.Winner)
}

func TestEventStreamFiltersByGame(t *testing.T) {
	ts := newTestServer(t)
	server := httptest.NewServer(ts.handler)
	defer func() {
		// Closing the hub ends open streams so the server can stop
		_ = ts.app.Close()
		server.Close()
	}()

	stream := openStream(t, server.URL+"/api/v1/events?game=OTHER001")

	ts.app.QueueGame("MATCH001", 6, 4)
	postMatch(t, server.URL, computerMatch(10))
	ts.app.QueueGame("OTHER001", 5, 5)
	postMatch(t, server.URL, computerMatch(10))

	// Events are delivered in order, so the first one seen must already
	// belong to the followed game
	name, data := stream.next(t)
	assert.Equal(t, "game_started", name)

	var event response.Event
	require.NoError(t, json.Unmarshal([]byte(data), &event))
	assert.Equal(t, "OTHER001", event.GameID)
}
