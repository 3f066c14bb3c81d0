package pipeline

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/linkedin-post-generator/internal/llm"
)

//go:embed refinement.schema.json
var refinementSchema []byte

// refinement is the structured output of the refine stage.
type refinement struct {
	Hashtags []string `json:"hashtags"`
	CTA      string   `json:"cta"`
}

// Hashtag bounds for a finished post.
const (
	minHashtags = 3
	maxHashtags = 5
)

const fallbackCTA = "What are your thoughts? Share in the comments!"

// parseRefinement extracts hashtags and a CTA from a raw refinement
// response. The JSON object is located inside the response, validated
// against the embedded schema, then normalized. Any failure falls back
// to deterministic topic-derived hashtags and a stock CTA, so the
// refine stage never fails a run.
func parseRefinement(raw, topic string) (hashtags []string, cta string) {
	r, err := decodeRefinement(raw)
	if err != nil {
		return fallbackHashtags(topic), fallbackCTA
	}

	hashtags = normalizeHashtags(r.Hashtags, topic)
	cta = strings.TrimSpace(r.CTA)
	if cta == "" {
		cta = fallbackCTA
	}
	return hashtags, cta
}

// decodeRefinement locates and validates the JSON object in a response.
func decodeRefinement(raw string) (*refinement, error) {
	cleaned := llm.CleanJSONBlock(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in refinement response")
	}
	payload := cleaned[start : end+1]

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(refinementSchema),
		gojsonschema.NewStringLoader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("refinement schema validation: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("refinement response does not match schema: %v", result.Errors())
	}

	var r refinement
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return nil, fmt.Errorf("refinement unmarshal: %w", err)
	}
	return &r, nil
}

// normalizeHashtags prefixes tags with '#', strips inner spaces, drops
// empties, and clamps the list to [minHashtags, maxHashtags] by padding
// from the fallback set or truncating.
func normalizeHashtags(tags []string, topic string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool)
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + strings.ReplaceAll(tag, " ", "")
		}
		if !seen[tag] {
			out = append(out, tag)
			seen[tag] = true
		}
	}

	for _, tag := range fallbackHashtags(topic) {
		if len(out) >= minHashtags {
			break
		}
		if !seen[tag] {
			out = append(out, tag)
			seen[tag] = true
		}
	}
	if len(out) > maxHashtags {
		out = out[:maxHashtags]
	}
	return out
}

// fallbackHashtags derives a deterministic hashtag set from the topic.
func fallbackHashtags(topic string) []string {
	return []string{
		"#" + strings.ReplaceAll(strings.TrimSpace(topic), " ", ""),
		"#LinkedIn",
		"#Professional",
		"#Growth",
		"#Insights",
	}
}
