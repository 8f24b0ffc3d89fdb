package gemini

import "context"

// Generator is the generation interface used by the persona and cultural
// map services. Tests inject fake implementations.
type Generator interface {
	Chat(ctx context.Context, req Request) (string, error)
	HasCredentials() bool
}

var _ Generator = (*Client)(nil)
