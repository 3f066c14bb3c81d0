// Package pipeline orchestrates the multi-stage post generation run:
// research, brainstorm, draft, refine, and moderate. It exposes a batch
// entry point and a streaming entry point over the same state machine.
package pipeline

import (
	"github.com/jonathan/linkedin-post-generator/internal/metrics"
)

// Request is one post generation request. PostCount must already be
// defaulted by the caller; Validate rejects out-of-range values before
// any LLM call is made.
type Request struct {
	Topic        string
	Tone         string
	Audience     string
	PostCount    int
	UseWebSearch bool
}

// MinPostCount and MaxPostCount bound how many posts one run produces.
const (
	MinPostCount     = 1
	MaxPostCount     = 10
	DefaultPostCount = 3
)

// Post is one finished LinkedIn-style post. Immutable once moderation
// has run, except that moderation may replace the whole post with the
// fixed flagged-content placeholder.
type Post struct {
	PostText string   `json:"post_text"`
	Hashtags []string `json:"hashtags"`
	CTA      string   `json:"cta"`
}

// Result is the terminal artifact of one batch run.
type Result struct {
	Posts         []Post          `json:"posts"`
	Metrics       metrics.Summary `json:"metrics"`
	UsedWebSearch bool            `json:"used_web_search"`
	ContextFound  bool            `json:"context_found"`
}

// EventKind tags the events emitted by a streaming run.
type EventKind string

// Event kinds. Exactly one terminal event (complete or error) ends
// every stream, and it is always last.
const (
	EventStatus   EventKind = "status"
	EventPost     EventKind = "post"
	EventMetrics  EventKind = "metrics"
	EventComplete EventKind = "complete"
	EventError    EventKind = "error"
)

// Event is one element of the finite event sequence a streaming run
// produces. Progress is monotonically non-decreasing across the run.
type Event struct {
	Kind          EventKind        `json:"kind"`
	RunID         string           `json:"run_id,omitempty"`
	Message       string           `json:"message,omitempty"`
	Progress      int              `json:"progress"`
	Index         *int             `json:"index,omitempty"`
	Post          *Post            `json:"post,omitempty"`
	Posts         []Post           `json:"posts,omitempty"`
	Metrics       *metrics.Summary `json:"metrics,omitempty"`
	UsedWebSearch bool             `json:"used_web_search,omitempty"`
	ContextFound  bool             `json:"context_found,omitempty"`
}

// EventFunc consumes events during a streaming run.
type EventFunc func(Event)

// Validate checks the request before the pipeline starts.
func (r *Request) Validate() error {
	if trimmed(r.Topic) == "" {
		return &InvalidInputError{Field: "topic", Message: "topic is required and cannot be empty"}
	}
	if r.PostCount < MinPostCount || r.PostCount > MaxPostCount {
		return &InvalidInputError{Field: "post_count", Message: "post count must be between 1 and 10"}
	}
	return nil
}
