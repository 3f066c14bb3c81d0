package pipeline

import (
	"fmt"
	"strings"
)

// angleTemplates seed fallback angles when the brainstorm response
// yields fewer usable lines than requested.
var angleTemplates = []string{
	"Personal experience with %s",
	"Industry trends related to %s",
	"Best practices for %s",
	"Future of %s",
	"Common mistakes in %s",
}

// ParseAngles extracts exactly count angle strings from a raw
// brainstorm response. It tolerates numbered lists, bullet lists, and
// plain newline-delimited lines. When any line carries a list marker,
// only marker lines count, so a prose preamble like "Here are 3
// angles:" never displaces a real angle; plain-line mode applies only
// to fully unmarked responses. Too few recoverable angles are padded
// with deterministic topic-derived ones. The result always has length
// count, preserving response order.
func ParseAngles(raw string, count int, topic string) []string {
	var marked, plain []string
	for _, line := range strings.Split(raw, "\n") {
		angle, hasMarker := cleanAngleLine(line)
		if angle == "" {
			continue
		}
		if hasMarker {
			marked = append(marked, angle)
		}
		plain = append(plain, angle)
	}

	angles := plain
	if len(marked) > 0 {
		angles = marked
	}

	for i := 0; len(angles) < count; i++ {
		angles = append(angles, fallbackAngle(i, topic))
	}
	return angles[:count]
}

// cleanAngleLine strips list markers from one response line and reports
// whether the line carried one. Blank lines are dropped.
func cleanAngleLine(line string) (angle string, hasMarker bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}

	for _, prefix := range []string{"-", "•", "*"} {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}

	// Numbered formats: "1. angle", "2) angle", "3: angle".
	if line[0] >= '0' && line[0] <= '9' {
		rest := strings.TrimLeft(line, "0123456789")
		rest = strings.TrimLeft(rest, ".):")
		return strings.TrimSpace(rest), true
	}

	return line, false
}

// fallbackAngle returns the i-th deterministic angle for a topic,
// suffixing a variation number once the seed templates are exhausted.
func fallbackAngle(i int, topic string) string {
	if i < len(angleTemplates) {
		return fmt.Sprintf(angleTemplates[i], topic)
	}
	round := i/len(angleTemplates) + 1
	base := fmt.Sprintf(angleTemplates[i%len(angleTemplates)], topic)
	return fmt.Sprintf("%s (take %d)", base, round)
}
