// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/linkedin-post-generator/internal/metrics"
	"github.com/jonathan/linkedin-post-generator/internal/pipeline"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for generated posts and run metrics
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPosts outputs each generated post with its hashtags and CTA.
func (p *Printer) PrintPosts(posts []pipeline.Post) {
	for i, post := range posts {
		var sb strings.Builder
		sb.WriteString(post.PostText)
		sb.WriteString("\n\n")
		sb.WriteString(strings.Join(post.Hashtags, " "))
		sb.WriteString("\n")
		sb.WriteString(post.CTA)
		sb.WriteString("\n")

		p.printBox(fmt.Sprintf("POST %d of %d", i+1, len(posts)), sb.String())
	}
}

// PrintResult outputs the posts followed by the run summary.
func (p *Printer) PrintResult(res *pipeline.Result) {
	if res == nil {
		return
	}
	p.PrintPosts(res.Posts)
	p.PrintMetrics(res.Metrics, res.UsedWebSearch, res.ContextFound)
}

// PrintMetrics outputs a human-readable summary of the run's LLM usage.
func (p *Printer) PrintMetrics(summary metrics.Summary, usedWebSearch, contextFound bool) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("LLM calls:      %d\n", summary.CallCount))
	sb.WriteString(fmt.Sprintf("Total tokens:   %d\n", summary.TotalTokens))
	sb.WriteString(fmt.Sprintf("Total latency:  %.3fs\n", summary.TotalLatency))
	sb.WriteString(fmt.Sprintf("Avg latency:    %.3fs\n", summary.AvgLatency))

	if usedWebSearch {
		status := "no results"
		if contextFound {
			status = "context found"
		}
		sb.WriteString(fmt.Sprintf("Web search:     %s\n", status))
	}

	p.printBox("RUN METRICS", sb.String())
}
