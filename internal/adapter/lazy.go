package adapter

import (
	"context"
	"sync"
)

// LazyClient defers building the underlying client until the first call.
// Commands that never reach the collaborator, such as a suggestion run
// with nothing unlinked, work without any API credentials configured.
type LazyClient struct {
	build func() (LLMClient, error)

	once   sync.Once
	client LLMClient
	err    error
}

func NewLazyClient(build func() (LLMClient, error)) *LazyClient {
	return &LazyClient{build: build}
}

func (c *LazyClient) resolve() (LLMClient, error) {
	c.once.Do(func() {
		c.client, c.err = c.build()
	})

	return c.client, c.err
}

func (c *LazyClient) Suggest(ctx context.Context, prompt SuggestionPrompt) (SuggestionResponse, error) {
	client, err := c.resolve()
	if err != nil {
		return SuggestionResponse{}, err
	}

	return client.Suggest(ctx, prompt)
}

func (c *LazyClient) Amalgamate(ctx context.Context, documentText, newReasoning string) (string, error) {
	client, err := c.resolve()
	if err != nil {
		return "", err
	}

	return client.Amalgamate(ctx, documentText, newReasoning)
}
