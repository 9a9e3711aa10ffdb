package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUpstream is the single opaque failure callers see when the provider
// is unreachable, returns a non-success status, or produces an unusable
// reply. No retry, no partial result.
var ErrUpstream = errors.New("upstream provider failure")

// Gateway turns a Task into one provider call and back into an answer.
// It is stateless across calls.
type Gateway struct {
	provider Provider
}

func NewGateway(p Provider) *Gateway {
	return &Gateway{provider: p}
}

// Run renders the task prompt, sends it as a single user turn and returns
// the provider's first answer. A bad task surfaces as ErrBadTask; every
// provider-side failure, including an empty reply, wraps ErrUpstream.
func (g *Gateway) Run(ctx context.Context, t Task) (string, error) {
	prompt, err := t.Prompt()
	if err != nil {
		return "", err
	}

	reply, err := g.provider.Chat(ctx, []Message{{Role: "user", Content: prompt}})
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUpstream, err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", fmt.Errorf("%w: empty reply", ErrUpstream)
	}
	return reply, nil
}
