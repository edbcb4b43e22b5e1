// Package ai runs the travel search pipeline against an OpenAI-compatible
// chat-completion endpoint: build the prompt, request a JSON completion,
// validate the response, and retry rate-limited attempts with backoff.
package ai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sethvargo/go-retry"

	"github.com/voyago/backend/internal/domain"
	"github.com/voyago/backend/internal/prompt"
)

const systemMessage = "You are a travel booking assistant. You always reply with a single valid JSON object and nothing else."

// Defaults applied by NewSearcher; override with the With* options.
const (
	defaultModel       = "gpt-4o"
	defaultMaxAttempts = 3
	defaultBaseDelay   = 2 * time.Second
)

// Completer is the narrow slice of the OpenAI SDK the searcher depends on.
// *openai.Client satisfies it; tests substitute a stub.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Searcher runs AI travel searches with a bounded retry budget.
type Searcher struct {
	client      Completer
	model       string
	maxAttempts int
	baseDelay   time.Duration
}

// Option customizes a Searcher.
type Option func(*Searcher)

// WithModel sets the completion model name.
func WithModel(model string) Option {
	return func(s *Searcher) {
		if model != "" {
			s.model = model
		}
	}
}

// WithMaxAttempts sets the total attempt budget (first try included).
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(s *Searcher) {
		if n >= 1 {
			s.maxAttempts = n
		}
	}
}

// WithBaseDelay sets the unit for the exponential backoff fallback
// (attempt n sleeps 2^n * base when the server suggests no delay).
func WithBaseDelay(d time.Duration) Option {
	return func(s *Searcher) {
		if d > 0 {
			s.baseDelay = d
		}
	}
}

// NewSearcher constructs a Searcher over the given completion client.
func NewSearcher(client Completer, opts ...Option) *Searcher {
	s := &Searcher{
		client:      client,
		model:       defaultModel,
		maxAttempts: defaultMaxAttempts,
		baseDelay:   defaultBaseDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewOpenAIClient builds the SDK client for the given credentials.
// baseURL is optional and points the client at an OpenAI-compatible gateway.
func NewOpenAIClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// Search runs one travel search for the given preferences.
//
// Each attempt sends the built prompt and validates the completion. Rate-limit
// failures are retried up to the attempt budget, sleeping the server-suggested
// delay when the error message carries one and an exponential fallback
// otherwise. Any other failure aborts immediately. The returned error always
// wraps one of the package's taxonomy sentinels (or is a generic wrapped
// error), never raw SDK text.
func (s *Searcher) Search(ctx context.Context, prefs domain.TravelPreferences) (domain.SearchResult, error) {
	instruction := prompt.Build(prefs)

	var (
		result    domain.SearchResult
		attempt   int
		suggested time.Duration
	)

	// The backoff honors a server-suggested delay captured by the attempt
	// below, falling back to 2^attempt * baseDelay.
	backoff := retry.BackoffFunc(func() (time.Duration, bool) {
		attempt++
		if suggested > 0 {
			d := suggested
			suggested = 0
			return d, false
		}
		return time.Duration(1<<uint(attempt)) * s.baseDelay, false
	})

	err := retry.Do(ctx, retry.WithMaxRetries(uint64(s.maxAttempts-1), backoff), func(ctx context.Context) error {
		raw, err := s.complete(ctx, instruction)
		if err != nil {
			if isRateLimited(err) {
				suggested = suggestedDelay(err)
				return retry.RetryableError(err)
			}
			return err
		}
		parsed, err := parseSearchResult(raw)
		if err != nil {
			return err
		}
		result = parsed
		return nil
	})
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("ai.Searcher.Search: %w", classify(err))
	}
	return result, nil
}

// complete sends one chat-completion request and returns the raw text.
// JSON mode is requested so compliant models skip the markdown fencing that
// parseSearchResult would otherwise strip.
func (s *Searcher) complete(ctx context.Context, instruction string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: instruction},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response carried no choices", ErrMalformedResponse)
	}
	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonContentFilter {
		return "", fmt.Errorf("%w: finish reason %q", ErrContentBlocked, choice.FinishReason)
	}
	return choice.Message.Content, nil
}
