package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/mcoot/pig-go/internal/api/response"
	"github.com/mcoot/pig-go/internal/model"
	"github.com/mcoot/pig-go/internal/services/turn"
)

const (
	decisionPrompt = "Roll again (r) or hold (h)? "
	invalidPrompt  = "Please enter r to roll or h to hold."
)

// ConsoleInput reads roll/hold answers for human players, one per line
type ConsoleInput struct {
	scanner *bufio.Scanner
	prompt  io.Writer
}

// NewConsoleInput reads answers from in and writes prompts to prompt
func NewConsoleInput(in io.Reader, prompt io.Writer) *ConsoleInput {
	return &ConsoleInput{
		scanner: bufio.NewScanner(in),
		prompt:  prompt,
	}
}

// RequestDecision prompts and returns the next line. io.EOF is returned once
// input is exhausted.
func (c *ConsoleInput) RequestDecision(ctx context.Context, _ turn.DecisionRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	_, _ = fmt.Fprint(c.prompt, decisionPrompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("read decision: %w", err)
		}
		return "", io.EOF
	}
	return c.scanner.Text(), nil
}

// ConsoleObserver prints a running transcript of a game. In JSON mode every
// event is written as one JSON object per line instead.
type ConsoleObserver struct {
	mu   sync.Mutex
	out  io.Writer
	json bool
}

// NewConsoleObserver creates a ConsoleObserver writing to out
func NewConsoleObserver(out io.Writer, jsonLines bool) *ConsoleObserver {
	return &ConsoleObserver{out: out, json: jsonLines}
}

// Observe implements turn.Observer
func (c *ConsoleObserver) Observe(e model.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.json {
		data, err := json.Marshal(response.EventFromModel(e))
		if err == nil {
			_, _ = fmt.Fprintln(c.out, string(data))
		}
		return
	}

	switch p := e.Payload.(type) {
	case model.GameStartedPayload:
		c.println("Welcome to Pig!")
	case model.RolledPayload:
		c.printf("%s rolled: %d\n", e.Player, p.Roll)
		if !p.Bust {
			c.printf("%s's turn total: %d, Current score: %d\n", e.Player, p.TurnTotal, p.Score)
		}
	case model.BustPayload:
		c.printf("%s loses this turn's points!\n", e.Player)
	case model.InvalidInputPayload:
		c.println(invalidPrompt)
	case model.TurnCompletePayload:
		c.printf("%s's total score: %d\n\n", e.Player, p.Result.Score)
	case model.GameCompletePayload:
		c.printOutcome(p.Outcome)
	}
}

func (c *ConsoleObserver) printOutcome(o model.GameOutcome) {
	if o.Reason == model.ReasonTimeExpired {
		c.println("Time's up! The winner is determined by the highest score.")
	}
	if winner, ok := o.WinnerScore(); ok {
		c.printf("%s wins with %d points!\n", winner.Name, winner.Score)
		return
	}
	if len(o.Scores) > 0 {
		c.printf("It's a tie at %d points!\n", o.Scores[0].Score)
	}
}

func (c *ConsoleObserver) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

func (c *ConsoleObserver) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
