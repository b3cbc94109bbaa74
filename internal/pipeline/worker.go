package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/proplens/proplens/internal/genai"
	"github.com/proplens/proplens/internal/parse"
)

// Worker runs a single analysis job: generate the five report sections,
// then run the parsing core over the aggregated text.
type Worker struct {
	gen           Generator
	log           *slog.Logger
	maxConcurrent int
}

func NewWorker(gen Generator, log *slog.Logger, maxConcurrent int) *Worker {
	return &Worker{
		gen:           gen,
		log:           log,
		maxConcurrent: maxConcurrent,
	}
}

// Process runs the full analysis for one job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "address", job.Address)

	job.SetStatus(StatusGenerating)
	res := GenerateReport(ctx, w.gen, job.Address, w.maxConcurrent, log)
	for _, label := range res.Failed {
		job.AddError(fmt.Sprintf("section %q unavailable", label))
	}
	if len(res.Failed) == len(genai.SectionPrompts) {
		log.Error("all sections failed to generate")
		job.SetResult(nil, res.Failed)
		job.SetStatus(StatusFailed)
		return
	}

	// The parsing core is pure and never fails: malformed output degrades
	// to raw-text sections instead of erroring.
	job.SetStatus(StatusParsing)
	doc := parse.Parse(res.Text)
	doc.Sources = res.Sources
	job.SetResult(&doc, res.Failed)

	log.Info("analysis complete",
		"sections", len(doc.Sections),
		"sources", len(doc.Sources),
		"stubbed", len(res.Failed))

	if len(res.Failed) > 0 {
		job.SetStatus(StatusPartial)
		return
	}
	job.SetStatus(StatusCompleted)
}
