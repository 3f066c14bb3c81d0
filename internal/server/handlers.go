package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/linkedin-post-generator/internal/feedback"
	"github.com/jonathan/linkedin-post-generator/internal/pipeline"
)

// GenerateRequest represents the request body for /generate_posts
type GenerateRequest struct {
	Topic        string `json:"topic" validate:"required,min=1"`
	Tone         string `json:"tone,omitempty"`
	Audience     string `json:"audience,omitempty"`
	PostCount    int    `json:"post_count,omitempty" validate:"gte=0,lte=10"`
	UseWebSearch bool   `json:"use_web_search,omitempty"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// pipelineRequest converts the API request into pipeline input,
// applying the default post count.
func (r *GenerateRequest) pipelineRequest() pipeline.Request {
	count := r.PostCount
	if count == 0 {
		count = pipeline.DefaultPostCount
	}
	return pipeline.Request{
		Topic:        r.Topic,
		Tone:         r.Tone,
		Audience:     r.Audience,
		PostCount:    count,
		UseWebSearch: r.UseWebSearch,
	}
}

// FeedbackRequest represents the request body for /feedback. A
// client-supplied timestamp is honored when present; otherwise the
// entry is stamped with server time.
type FeedbackRequest struct {
	PostIndex   int        `json:"post_index" validate:"gte=0"`
	Rating      string     `json:"rating" validate:"required"`
	PostPreview string     `json:"post_preview,omitempty"`
	SessionID   string     `json:"session_id,omitempty"`
	Timestamp   *time.Time `json:"timestamp,omitempty"`
}

// handleGeneratePosts runs the pipeline in batch mode and returns the
// full result once every post is ready.
func (s *Server) handleGeneratePosts(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.generator.Generate(r.Context(), req.pipelineRequest())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGeneratePostsStream runs the pipeline and streams progress via
// SSE. Validation happens before the stream starts so bad input still
// gets a plain JSON error with a 4xx status.
func (s *Server) handleGeneratePostsStream(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	preq := req.pipelineRequest()
	if err := preq.Validate(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.generator.GenerateStream(r.Context(), preq, func(ev pipeline.Event) {
		if err := sse.WritePipelineEvent(ev); err != nil {
			log.Printf("Error writing SSE event: %v", err)
		}
	})
}

// handleFeedback records a user's reaction to a generated post.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !feedback.ValidRating(req.Rating) {
		s.errorResponse(w, http.StatusBadRequest, "rating must be 'positive' or 'negative'")
		return
	}
	if req.PostIndex < 0 {
		s.errorResponse(w, http.StatusBadRequest, "post_index must be non-negative")
		return
	}

	entry := feedback.NewEntry(req.SessionID, req.PostIndex, req.Rating, req.PostPreview)
	if req.Timestamp != nil {
		entry.Timestamp = req.Timestamp.UTC()
	}
	if err := s.feedback.Record(entry); err != nil {
		log.Printf("Error recording feedback: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to record feedback")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "received"})
}
