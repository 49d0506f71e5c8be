package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/yfiles2mermaid/pkg/diagram"
	"github.com/matzehuels/yfiles2mermaid/pkg/errors"
	"github.com/matzehuels/yfiles2mermaid/pkg/graphml"
	"github.com/matzehuels/yfiles2mermaid/pkg/observability"
	"github.com/matzehuels/yfiles2mermaid/pkg/render/mermaid"
	"github.com/matzehuels/yfiles2mermaid/pkg/translate"
)

// Runner executes pipeline stages with logging.
//
// A Runner holds no per-run state, so one Runner may serve any number of
// sequential or concurrent runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger is replaced by log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs parse → translate → render for opts.Input.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.SetDefaults()

	result := &Result{}

	parseStart := time.Now()
	doc, err := r.Parse(ctx, opts.Input)
	if err != nil {
		return nil, err
	}
	result.Stats.ParseTime = time.Since(parseStart)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	translateStart := time.Now()
	tr, err := r.Translate(ctx, doc)
	if err != nil {
		return nil, err
	}
	result.Diagram = tr.Diagram
	result.Stats.TranslateTime = time.Since(translateStart)
	result.Stats.NodeCount = tr.Diagram.NodeCount()
	result.Stats.EdgeCount = tr.Diagram.EdgeCount()
	result.Stats.SkippedNodes = tr.SkippedNodes
	result.Stats.DroppedEdges = tr.DroppedEdges
	result.Stats.Colors = tr.Colors
	result.Stats.Strokes = tr.Strokes

	r.Logger.Debug("translated diagram",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"direction", tr.Diagram.Direction,
		"duration", result.Stats.TranslateTime)

	renderStart := time.Now()
	out, err := r.Render(ctx, tr.Diagram, opts.Theme)
	if err != nil {
		return nil, err
	}
	result.Output = out
	result.Stats.RenderTime = time.Since(renderStart)

	return result, nil
}

// Parse reads and parses the GraphML file at path.
func (r *Runner) Parse(ctx context.Context, path string) (doc *graphml.Document, err error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, path)
	start := time.Now()
	defer func() {
		hooks.OnParseComplete(ctx, path, time.Since(start), err)
	}()
	defer recoverInternal("parse", &err)

	r.Logger.Debug("reading input", "path", path)
	return graphml.ReadFile(path)
}

// Translate resolves the document's shared styles and builds the diagram.
func (r *Runner) Translate(ctx context.Context, doc *graphml.Document) (res *translate.Result, err error) {
	start := time.Now()
	defer func() {
		var nodes, edges int
		if res != nil {
			nodes, edges = res.Diagram.NodeCount(), res.Diagram.EdgeCount()
		}
		observability.Pipeline().OnTranslateComplete(ctx, nodes, edges, time.Since(start), err)
	}()
	defer recoverInternal("translate", &err)

	res, err = translate.Translate(doc)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("resolved shared styles", "colors", res.Colors, "strokes", res.Strokes)
	if res.SkippedNodes > 0 {
		r.Logger.Debug("skipped nodes without a label", "count", res.SkippedNodes)
	}
	if res.DroppedEdges > 0 {
		r.Logger.Debug("dropped edges with unknown endpoints", "count", res.DroppedEdges)
	}
	return res, nil
}

// Render writes d as Mermaid markup into memory.
func (r *Runner) Render(ctx context.Context, d *diagram.Diagram, theme mermaid.Theme) (out []byte, err error) {
	start := time.Now()
	defer recoverInternal("render", &err)

	out = mermaid.Render(d, theme)
	observability.Pipeline().OnRenderComplete(ctx, len(out), time.Since(start))
	return out, nil
}

// recoverInternal turns a panic in a stage into an ErrCodeInternal error.
func recoverInternal(stage string, err *error) {
	if p := recover(); p != nil {
		*err = errors.Wrap(errors.ErrCodeInternal, fmt.Errorf("%v", p), "%s", stage)
	}
}
