package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/linkedin-post-generator/internal/llm"
	"github.com/jonathan/linkedin-post-generator/internal/metrics"
	"github.com/jonathan/linkedin-post-generator/internal/moderation"
	"github.com/jonathan/linkedin-post-generator/internal/prompts"
	"github.com/jonathan/linkedin-post-generator/internal/search"
)

const promptFile = "generation.json"

// Per-stage token budgets, carried over from the original service.
const (
	brainstormMaxTokens = 500
	draftMaxTokens      = 800
	refineMaxTokens     = 300
)

// Generator runs the post generation pipeline. Collaborators are
// injected so runs are independently testable with fakes.
type Generator struct {
	llm    llm.Client
	search search.Provider
}

// New creates a Generator. A nil search provider disables research.
func New(client llm.Client, provider search.Provider) *Generator {
	if provider == nil {
		provider = search.Disabled{}
	}
	return &Generator{llm: client, search: provider}
}

// Generate runs the pipeline in batch mode and returns the full result.
func (g *Generator) Generate(ctx context.Context, req Request) (*Result, error) {
	return g.run(ctx, uuid.New().String(), req, func(Event) {})
}

// GenerateStream runs the pipeline in streaming mode. Events are
// delivered to emit in order; exactly one terminal event (complete or
// error) ends the sequence, and it is always last.
func (g *Generator) GenerateStream(ctx context.Context, req Request, emit EventFunc) {
	if emit == nil {
		emit = func(Event) {}
	}
	runID := uuid.New().String()
	if _, err := g.run(ctx, runID, req, emit); err != nil {
		log.Printf("[pipeline] run %s failed: %v", runID, err)
		emit(Event{Kind: EventError, RunID: runID, Message: err.Error()})
	}
}

// run executes the stage sequence once:
// research (optional) -> brainstorm -> draft -> refine -> moderate.
// Batch mode passes a no-op emitter; streaming mode receives every
// event including the terminal complete event.
func (g *Generator) run(ctx context.Context, runID string, req Request, emit EventFunc) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	topic := trimmed(req.Topic)
	collector := metrics.NewCollector()

	log.Printf("[pipeline] run %s: generating %d posts for topic %q", runID, req.PostCount, topic)
	emit(Event{Kind: EventStatus, RunID: runID, Message: "Initializing post generation...", Progress: 5})

	var searchCtx search.Context
	if req.UseWebSearch {
		emit(Event{Kind: EventStatus, RunID: runID, Message: "Searching for latest information...", Progress: 15})
		searchCtx = g.search.Search(ctx, topic+" latest news trends")
		if !searchCtx.Found {
			log.Printf("[pipeline] run %s: web search found nothing, proceeding without context", runID)
		}
	}

	emit(Event{Kind: EventStatus, RunID: runID, Message: "Brainstorming content angles...", Progress: 25})
	angles, err := g.brainstorm(ctx, topic, req.PostCount, searchCtx, collector)
	if err != nil {
		return nil, err
	}

	emit(Event{Kind: EventStatus, RunID: runID, Message: fmt.Sprintf("Creating %d post drafts...", len(angles)), Progress: 40})
	drafts := g.draftAll(ctx, req, topic, angles, searchCtx, collector)

	emit(Event{Kind: EventStatus, RunID: runID, Message: "Adding hashtags and call-to-actions...", Progress: 65})
	refinements := g.refineAll(ctx, topic, drafts, collector)

	posts := make([]Post, len(drafts))
	for i := range drafts {
		post := Post{
			PostText: strings.TrimSpace(drafts[i]),
			Hashtags: refinements[i].hashtags,
			CTA:      refinements[i].cta,
		}
		if safe, sanitized := moderation.Moderate(post.PostText); !safe {
			log.Printf("[pipeline] run %s: post %d flagged by moderation", runID, i)
			post = Post{
				PostText: sanitized,
				Hashtags: moderation.ReplacementHashtags(),
				CTA:      moderation.ReplacementCTA,
			}
		}
		posts[i] = post

		idx := i
		emit(Event{
			Kind:     EventPost,
			RunID:    runID,
			Index:    &idx,
			Post:     &posts[i],
			Progress: 65 + 25*(i+1)/len(posts),
		})
	}

	summary := collector.Summary()
	emit(Event{Kind: EventMetrics, RunID: runID, Metrics: &summary, Progress: 95})

	result := &Result{
		Posts:         posts,
		Metrics:       summary,
		UsedWebSearch: req.UseWebSearch,
		ContextFound:  searchCtx.Found,
	}
	emit(Event{
		Kind:          EventComplete,
		RunID:         runID,
		Message:       fmt.Sprintf("Successfully generated %d LinkedIn posts", len(posts)),
		Progress:      100,
		Posts:         posts,
		Metrics:       &summary,
		UsedWebSearch: result.UsedWebSearch,
		ContextFound:  result.ContextFound,
	})
	log.Printf("[pipeline] run %s: complete (%d calls, %d tokens)", runID, summary.CallCount, summary.TotalTokens)
	return result, nil
}

// brainstorm issues the single angle-generation call. Provider failure
// here is fatal: without angles there is nothing to draft.
func (g *Generator) brainstorm(ctx context.Context, topic string, count int, searchCtx search.Context, collector *metrics.Collector) ([]string, error) {
	data := map[string]string{
		"Topic": topic,
		"Count": fmt.Sprintf("%d", count),
	}
	key := "brainstorm"
	if searchCtx.Found {
		key = "brainstorm_with_context"
		data["Context"] = searchCtx.Text
	}

	prompt := prompts.Format(prompts.MustGet(promptFile, key), data)
	out, err := g.llm.Complete(ctx, llm.CompletionRequest{Prompt: prompt, MaxTokens: brainstormMaxTokens})
	if err != nil {
		return nil, fmt.Errorf("brainstorming angles failed: %w", err)
	}
	collector.Record(out.Metric)

	return ParseAngles(out.Text, count, topic), nil
}

// draftAll fans one draft call out per angle and joins on all of them.
// A failing angle is replaced with a templated fallback post; only
// successful calls are recorded in metrics. Index order is preserved
// regardless of completion order.
func (g *Generator) draftAll(ctx context.Context, req Request, topic string, angles []string, searchCtx search.Context, collector *metrics.Collector) []string {
	drafts := make([]string, len(angles))

	grp, grpCtx := errgroup.WithContext(ctx)
	for i, angle := range angles {
		grp.Go(func() error {
			out, err := g.llm.Complete(grpCtx, llm.CompletionRequest{
				Prompt:    draftPrompt(req, angle, searchCtx),
				MaxTokens: draftMaxTokens,
			})
			if err != nil {
				log.Printf("[pipeline] draft %d failed, substituting fallback: %v", i, err)
				drafts[i] = fallbackPost(topic, angle)
				return nil
			}
			collector.Record(out.Metric)
			drafts[i] = out.Text
			return nil
		})
	}
	_ = grp.Wait()

	return drafts
}

// refined holds one post's refine-stage output.
type refined struct {
	hashtags []string
	cta      string
}

// refineAll derives hashtags and a CTA for each draft concurrently.
// Failures fall back to deterministic construction and never fail the
// run.
func (g *Generator) refineAll(ctx context.Context, topic string, drafts []string, collector *metrics.Collector) []refined {
	out := make([]refined, len(drafts))

	grp, grpCtx := errgroup.WithContext(ctx)
	for i, draft := range drafts {
		grp.Go(func() error {
			prompt := prompts.Format(prompts.MustGet(promptFile, "refine"), map[string]string{"Post": draft})
			resp, err := g.llm.Complete(grpCtx, llm.CompletionRequest{Prompt: prompt, MaxTokens: refineMaxTokens})
			if err != nil {
				log.Printf("[pipeline] refinement %d failed, using fallback: %v", i, err)
				out[i] = refined{hashtags: fallbackHashtags(topic), cta: fallbackCTA}
				return nil
			}
			collector.Record(resp.Metric)
			hashtags, cta := parseRefinement(resp.Text, topic)
			out[i] = refined{hashtags: hashtags, cta: cta}
			return nil
		})
	}
	_ = grp.Wait()

	return out
}

// draftPrompt builds the per-angle drafting prompt from the request's
// optional tone and audience and the search context when present.
func draftPrompt(req Request, angle string, searchCtx search.Context) string {
	toneText := ""
	if req.Tone != "" {
		toneText = fmt.Sprintf("The tone should be %s. ", req.Tone)
	}
	audienceText := ""
	if req.Audience != "" {
		audienceText = fmt.Sprintf("The target audience is %s. ", req.Audience)
	}
	contextText := ""
	if searchCtx.Found {
		contextText = fmt.Sprintf("Use this context for factual accuracy: %s\n\n", searchCtx.Text)
	}

	return prompts.Format(prompts.MustGet(promptFile, "draft"), map[string]string{
		"ContextText":  contextText,
		"Angle":        angle,
		"AudienceText": audienceText,
		"ToneText":     toneText,
	})
}

// fallbackPost substitutes for a draft whose completion call failed,
// keeping the requested post count intact.
func fallbackPost(topic, angle string) string {
	return fmt.Sprintf(
		"Thinking about %s today, specifically: %s. Every field rewards the people who keep learning, and %s is no exception. I'd love to hear how others are approaching this.",
		topic, angle, topic)
}
