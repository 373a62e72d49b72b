// Package echoquill provides domain types for requesting and presenting AI-generated stories.
package echoquill

import "context"

// Genre is the literary genre of a requested story.
type Genre string

// Supported genres.
const (
	GenreFantasy        Genre = "Fantasy"
	GenreScienceFiction Genre = "Science Fiction"
	GenreRomance        Genre = "Romance"
	GenreMystery        Genre = "Mystery"
	GenreAdventure      Genre = "Adventure"
)

// Genres returns the supported genres in display order.
func Genres() []Genre {
	return []Genre{GenreFantasy, GenreScienceFiction, GenreRomance, GenreMystery, GenreAdventure}
}

// Tone is the mood of a requested story.
type Tone string

// Supported tones.
const (
	ToneInspirational Tone = "Inspirational"
	ToneHumorous      Tone = "Humorous"
	ToneSerious       Tone = "Serious"
	ToneDramatic      Tone = "Dramatic"
	ToneWhimsical     Tone = "Whimsical"
)

// Tones returns the supported tones in display order.
func Tones() []Tone {
	return []Tone{ToneInspirational, ToneHumorous, ToneSerious, ToneDramatic, ToneWhimsical}
}

// Length is the desired size of a requested story.
type Length string

// Supported lengths.
const (
	LengthShort  Length = "Short"
	LengthMedium Length = "Medium"
	LengthLong   Length = "Long"
)

// Lengths returns the supported lengths in display order.
func Lengths() []Length {
	return []Length{LengthShort, LengthMedium, LengthLong}
}

// GenerationRequest is the payload sent to the generation service.
type GenerationRequest struct {
	Theme  string `json:"theme"`
	Genre  Genre  `json:"genre"`
	Tone   Tone   `json:"tone"`
	Length Length `json:"length"`
}

// GenerationResult is the settled outcome of a single generate action.
// Err is nil on success, in which case Story holds the text (possibly empty).
type GenerationResult struct {
	Story string
	Err   error
}

// OK reports whether the result carries a story.
func (r GenerationResult) OK() bool {
	return r.Err == nil
}

// StoryGenerator produces a story for a request.
type StoryGenerator interface {
	// Generate issues one generation call and returns the produced story.
	// Failures are reported as *ServiceError or *TransportError.
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// Frontend presents the form and drives generate actions until the user quits.
type Frontend interface {
	Run(ctx context.Context, c *Controller, p *Presenter) error
}
