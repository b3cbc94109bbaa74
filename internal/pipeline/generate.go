package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/proplens/proplens/internal/genai"
	"github.com/proplens/proplens/internal/report"
)

// Generator issues one grounded generation call. Satisfied by *genai.Client.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, []report.GroundingSource, error)
}

// GenerateResult is the aggregated output of the five section generations:
// one concatenated report text plus a source list deduplicated by URI.
type GenerateResult struct {
	Text    string
	Sources []report.GroundingSource
	Failed  []string // labels of sections that fell back to stub text
}

// GenerateReport dispatches the five section prompts concurrently (bounded
// by maxConcurrent), retrying each on transient provider errors with
// jittered exponential backoff. A prompt that still fails after MaxRetries
// is substituted with stub text rather than aborting the batch, so a report
// is produced whenever at least one section succeeds.
func GenerateReport(ctx context.Context, gen Generator, address string, maxConcurrent int, log *slog.Logger) GenerateResult {
	if maxConcurrent <= 0 {
		maxConcurrent = len(genai.SectionPrompts)
	}

	type sectionResult struct {
		idx     int
		text    string
		sources []report.GroundingSource
		err     error
	}
	results := make(chan sectionResult, len(genai.SectionPrompts))
	sem := make(chan struct{}, maxConcurrent)

	for i, sp := range genai.SectionPrompts {
		sem <- struct{}{}
		go func(i int, sp genai.SectionPrompt) {
			defer func() { <-sem }()
			prompt := sp.BuildPrompt(address)
			var text string
			var sources []report.GroundingSource
			var lastErr error
			for attempt := range MaxRetries {
				text, sources, lastErr = gen.Generate(ctx, prompt)
				if lastErr == nil || !IsRetryable(lastErr) {
					break
				}
				log.Warn("retryable generation error",
					"section", sp.Label, "attempt", attempt, "error", lastErr)
				select {
				case <-time.After(Backoff(attempt)):
				case <-ctx.Done():
					results <- sectionResult{idx: i, err: ctx.Err()}
					return
				}
			}
			results <- sectionResult{idx: i, text: text, sources: sources, err: lastErr}
		}(i, sp)
	}

	texts := make([]string, len(genai.SectionPrompts))
	sourcesByIdx := make([][]report.GroundingSource, len(genai.SectionPrompts))
	var failed []string
	for range genai.SectionPrompts {
		r := <-results
		label := genai.SectionPrompts[r.idx].Label
		if r.err != nil {
			log.Error("section generation failed", "section", label, "error", r.err)
			texts[r.idx] = genai.StubSection(label)
			failed = append(failed, label)
			continue
		}
		texts[r.idx] = r.text
		sourcesByIdx[r.idx] = r.sources
	}

	var all []report.GroundingSource
	for _, s := range sourcesByIdx {
		all = append(all, s...)
	}

	return GenerateResult{
		Text:    strings.Join(texts, "\n\n"),
		Sources: dedupeSources(all),
		Failed:  failed,
	}
}

// dedupeSources removes duplicate citations by URI, preserving first-seen
// order.
func dedupeSources(sources []report.GroundingSource) []report.GroundingSource {
	seen := make(map[string]struct{}, len(sources))
	var out []report.GroundingSource
	for _, s := range sources {
		if _, ok := seen[s.URI]; ok {
			continue
		}
		seen[s.URI] = struct{}{}
		out = append(out, s)
	}
	return out
}
