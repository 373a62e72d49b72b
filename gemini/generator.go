// Package gemini implements story generation with Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/echoquill"
)

// Compile-time interface verification.
var _ echoquill.StoryGenerator = (*Generator)(nil)

// DefaultGenerateTimeout is the default timeout for a single generation call.
const DefaultGenerateTimeout = 90 * time.Second

// systemInstruction frames every request.
const systemInstruction = `You are a creative fiction writer. Write a complete, self-contained story that matches the requested length, genre and tone.

Respond with the story text only: no title block, no preamble, no commentary.`

// Generator implements echoquill.StoryGenerator using Google Gemini.
type Generator struct {
	client      GenerativeClient
	model       string
	timeout     time.Duration
	temperature *float32
	topP        *float32
	topK        *float32
	maxTokens   int32
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithTimeout sets the timeout for API calls.
func WithTimeout(d time.Duration) GeneratorOption {
	return func(g *Generator) {
		g.timeout = d
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) GeneratorOption {
	return func(g *Generator) {
		g.temperature = &t
	}
}

// WithTopP sets nucleus sampling.
func WithTopP(p float32) GeneratorOption {
	return func(g *Generator) {
		g.topP = &p
	}
}

// WithTopK sets top-k sampling.
func WithTopK(k float32) GeneratorOption {
	return func(g *Generator) {
		g.topK = &k
	}
}

// WithMaxOutputTokens caps the length of the generated story.
func WithMaxOutputTokens(n int32) GeneratorOption {
	return func(g *Generator) {
		g.maxTokens = n
	}
}

// NewGenerator creates a new Generator.
func NewGenerator(client GenerativeClient, model string, opts ...GeneratorOption) *Generator {
	g := &Generator{
		client:  client,
		model:   model,
		timeout: DefaultGenerateTimeout,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes a story for req.
func (g *Generator) Generate(ctx context.Context, req echoquill.GenerationRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	contents := []*Content{{
		Role:  "user",
		Parts: []*Part{{Text: BuildPrompt(req)}},
	}}

	config := &GenerateContentConfig{
		SystemInstruction: &Content{Parts: []*Part{{Text: systemInstruction}}},
		Temperature:       g.temperature,
		TopP:              g.topP,
		TopK:              g.topK,
		MaxOutputTokens:   g.maxTokens,
		ResponseMIMEType:  "text/plain",
	}

	resp, err := g.client.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("gemini: returned nil response")
	}
	return resp.Text, nil
}

// BuildPrompt creates the user prompt for a story request.
func BuildPrompt(req echoquill.GenerationRequest) string {
	return fmt.Sprintf("Generate a %s %s story with a %s tone based on the theme: %s",
		strings.TrimSpace(string(req.Length)),
		strings.TrimSpace(string(req.Genre)),
		strings.TrimSpace(string(req.Tone)),
		strings.TrimSpace(req.Theme),
	)
}

// GenerativeClient abstracts the Gemini API for testing.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error)
}

// Content represents a message in a Gemini conversation.
type Content struct {
	Role  string
	Parts []*Part
}

// Part represents a part of a message.
type Part struct {
	Text string
}

// GenerateContentConfig holds configuration for content generation.
type GenerateContentConfig struct {
	SystemInstruction *Content
	Temperature       *float32
	TopP              *float32
	TopK              *float32
	MaxOutputTokens   int32 // 0 = model default
	ResponseMIMEType  string
}

// GenerateContentResponse holds the response from content generation.
type GenerateContentResponse struct {
	Text string
}

// MockGenerativeClient is a mock implementation of GenerativeClient for testing.
type MockGenerativeClient struct {
	GenerateContentFn func(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error)
}

func (m *MockGenerativeClient) GenerateContent(ctx context.Context, model string, contents []*Content, config *GenerateContentConfig) (*GenerateContentResponse, error) {
	return m.GenerateContentFn(ctx, model, contents, config)
}

// APIError represents an error from the Gemini API with HTTP status code.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError with the given status code and message.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}
