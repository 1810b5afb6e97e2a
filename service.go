package recipe2doc

import (
	"context"
	"fmt"
	"strings"
)

// Service converts tagged recipe text into a rendered document.
// A Service is stateless and safe for concurrent use.
type Service struct {
	renderer Renderer
}

// Option configures a Service.
type Option func(*Service)

// WithRenderer replaces the format-selected renderer, letting callers plug in
// a custom output format.
func WithRenderer(r Renderer) Option {
	return func(s *Service) { s.renderer = r }
}

// NewService creates a Service rendering to the given output format.
// Returns ErrUnknownFormat for unrecognized formats.
func NewService(format string, opts ...Option) (*Service, error) {
	r, err := NewRenderer(format)
	if err != nil {
		return nil, err
	}

	s := &Service{renderer: r}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Convert parses input recipe text and renders it with the service's format.
// The context is observed between the parse and render phases.
func (s *Service) Convert(ctx context.Context, input Input) (*ConvertResult, error) {
	if strings.TrimSpace(input.RecipeText) == "" {
		return nil, ErrEmptyRecipe
	}

	rec, err := Parse(strings.NewReader(input.RecipeText))
	if err != nil {
		return nil, fmt.Errorf("parsing recipe: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := s.renderer.Render(rec)
	if err != nil {
		return nil, err
	}

	return &ConvertResult{
		Output:    out,
		Extension: s.renderer.Extension(),
		Recipe:    rec,
	}, nil
}

// Format returns the name of the service's output format.
func (s *Service) Format() string { return s.renderer.Name() }
