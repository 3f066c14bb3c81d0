package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRefinement_ValidJSON(t *testing.T) {
	raw := `{"hashtags": ["#AI", "#ML", "#Tech"], "cta": "Join the conversation!"}`

	hashtags, cta := parseRefinement(raw, "ai")
	assert.Equal(t, []string{"#AI", "#ML", "#Tech"}, hashtags)
	assert.Equal(t, "Join the conversation!", cta)
}

func TestParseRefinement_MarkdownWrapped(t *testing.T) {
	raw := "```json\n{\"hashtags\": [\"#AI\", \"#ML\", \"#Tech\"], \"cta\": \"Tell me below.\"}\n```"

	hashtags, cta := parseRefinement(raw, "ai")
	assert.Equal(t, []string{"#AI", "#ML", "#Tech"}, hashtags)
	assert.Equal(t, "Tell me below.", cta)
}

func TestParseRefinement_JSONInsideProse(t *testing.T) {
	raw := `Here you go: {"hashtags": ["#AI", "#ML", "#Tech"], "cta": "Thoughts?"} Hope that helps!`

	hashtags, cta := parseRefinement(raw, "ai")
	assert.Equal(t, []string{"#AI", "#ML", "#Tech"}, hashtags)
	assert.Equal(t, "Thoughts?", cta)
}

func TestParseRefinement_InvalidFallsBack(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"No JSON at all", "I could not produce hashtags."},
		{"Malformed JSON", `{"hashtags": [`},
		{"Schema mismatch", `{"hashtags": "not-a-list", "cta": "x"}`},
		{"Missing required keys", `{"cta": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashtags, cta := parseRefinement(tt.raw, "remote work")
			assert.Equal(t, fallbackHashtags("remote work"), hashtags)
			assert.Equal(t, fallbackCTA, cta)
		})
	}
}

func TestParseRefinement_EmptyCTAFallsBack(t *testing.T) {
	raw := `{"hashtags": ["#A", "#B", "#C"], "cta": "  "}`
	_, cta := parseRefinement(raw, "ai")
	assert.Equal(t, fallbackCTA, cta)
}

func TestNormalizeHashtags(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		expected []string
	}{
		{
			"Adds hash prefix and strips spaces",
			[]string{"remote work", "#Growth", "career tips"},
			[]string{"#remotework", "#Growth", "#careertips"},
		},
		{
			"Truncates to five",
			[]string{"#a", "#b", "#c", "#d", "#e", "#f", "#g"},
			[]string{"#a", "#b", "#c", "#d", "#e"},
		},
		{
			"Pads to three from fallback",
			[]string{"#Solo"},
			[]string{"#Solo", "#topic", "#LinkedIn"},
		},
		{
			"Drops empties and duplicates",
			[]string{"", "#A", "#A", "#B", "#C"},
			[]string{"#A", "#B", "#C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeHashtags(tt.tags, "topic")
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, len(got), minHashtags)
			assert.LessOrEqual(t, len(got), maxHashtags)
		})
	}
}

func TestFallbackHashtags_TopicDerived(t *testing.T) {
	tags := fallbackHashtags("remote work productivity")
	assert.Equal(t, "#remoteworkproductivity", tags[0])
	assert.Len(t, tags, 5)
}
