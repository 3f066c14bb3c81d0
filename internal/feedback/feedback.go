// Package feedback records user reactions to generated posts so prompt
// quality can be reviewed offline.
package feedback

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Rating values accepted from clients.
const (
	RatingPositive = "positive"
	RatingNegative = "negative"
)

// previewLimit caps how much post text is stored with an entry.
const previewLimit = 100

// Entry is one recorded reaction to a generated post.
type Entry struct {
	Timestamp   time.Time `json:"timestamp"`
	SessionID   string    `json:"session_id,omitempty"`
	PostIndex   int       `json:"post_index"`
	Rating      string    `json:"rating"`
	PostPreview string    `json:"post_preview,omitempty"`
}

// Sink persists feedback entries.
type Sink interface {
	Record(entry Entry) error
}

// ValidRating reports whether r is an accepted rating value.
func ValidRating(r string) bool {
	return r == RatingPositive || r == RatingNegative
}

// NewEntry builds an Entry with the current time and a clamped preview.
// The preview is cut on a rune boundary so the log never holds invalid
// UTF-8.
func NewEntry(sessionID string, postIndex int, rating, postText string) Entry {
	preview := strings.TrimSpace(postText)
	if runes := []rune(preview); len(runes) > previewLimit {
		preview = string(runes[:previewLimit])
	}
	return Entry{
		Timestamp:   time.Now().UTC(),
		SessionID:   sessionID,
		PostIndex:   postIndex,
		Rating:      rating,
		PostPreview: preview,
	}
}

// FileLog appends entries to a JSON-lines file, one object per line.
type FileLog struct {
	mu   sync.Mutex
	path string
}

// NewFileLog creates a FileLog writing to path, creating parent
// directories as needed.
func NewFileLog(path string) (*FileLog, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating feedback directory: %w", err)
		}
	}
	return &FileLog{path: path}, nil
}

// Record appends one entry. Writes are serialized so concurrent
// handlers never interleave lines.
func (l *FileLog) Record(entry Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding feedback entry: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening feedback log: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing feedback entry: %w", err)
	}
	return nil
}

// Discard is a Sink that drops every entry. Used when no feedback path
// is configured.
type Discard struct{}

func (Discard) Record(Entry) error { return nil }
