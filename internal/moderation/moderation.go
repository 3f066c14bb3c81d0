// Package moderation applies heuristic safety checks to generated post
// text before delivery. Three independent checks each suffice to flag
// content: banned terms, excessive capitalization, and repeated
// punctuation. Flagged text is replaced wholesale with a fixed message,
// which is itself safe, so moderation is idempotent.
package moderation

import (
	"regexp"
	"strings"
	"unicode"
)

// Replacement content substituted for a flagged post.
const (
	ReplacementText = "[This post was moderated for containing potentially inappropriate content. Please try generating again with a different topic.]"
	ReplacementCTA  = "Please try again with a different topic."
)

// ReplacementHashtags returns the hashtags used for a flagged post.
func ReplacementHashtags() []string {
	return []string{"#ContentModerated"}
}

// bannedTerms are matched case-insensitively as substrings, so partial
// stems like "discriminat" cover several word forms.
var bannedTerms = []string{
	"spam", "scam", "hate", "violence", "discriminat", "harass",
	"illegal", "fraud", "misleading", "fake news", "misinformation",
}

const (
	// minCapsCheckLength avoids false positives on short strings and
	// acronym-heavy headlines.
	minCapsCheckLength = 50
	maxCapsRatio       = 0.7
)

// repeatedPunct matches 3+ consecutive spam punctuation characters.
var repeatedPunct = regexp.MustCompile(`[!]{3,}|[?]{3,}|[$]{3,}`)

// Check classifies text and returns the reason when it is unsafe.
func Check(text string) (safe bool, reason string) {
	lower := strings.ToLower(text)
	for _, term := range bannedTerms {
		if strings.Contains(lower, term) {
			return false, "contains potentially inappropriate content: '" + term + "'"
		}
	}

	if len(text) > minCapsCheckLength {
		letters, upper := 0, 0
		for _, r := range text {
			if unicode.IsLetter(r) {
				letters++
				if unicode.IsUpper(r) {
					upper++
				}
			}
		}
		if letters > 0 && float64(upper)/float64(letters) > maxCapsRatio {
			return false, "excessive capitalization detected"
		}
	}

	if repeatedPunct.MatchString(text) {
		return false, "excessive punctuation detected"
	}

	return true, ""
}

// Moderate returns the text unchanged when it is safe, or the fixed
// replacement message when any heuristic fires.
func Moderate(text string) (safe bool, sanitized string) {
	safe, _ = Check(text)
	if safe {
		return true, text
	}
	return false, ReplacementText
}
