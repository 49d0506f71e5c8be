// Package pipeline runs the complete read → translate → render conversion.
//
// The CLI goes through a [Runner] so every entry point gets the same stage
// ordering, logging, timing, and error classification.
//
// # Stages
//
//  1. Parse: read the GraphML file into an element tree
//  2. Translate: resolve shared styles and build the diagram
//  3. Render: write the diagram as Mermaid markup into memory
//
// Nothing is written to the caller's output until all three stages succeed, so
// a failed conversion never leaves partial markup behind.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{Input: "flow.graphml"})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.Output)
//
// # Errors
//
// Every error returned by the runner carries a code from pkg/errors. A panic
// inside a stage is recovered and returned as [errors.ErrCodeInternal].
package pipeline

import (
	"time"

	"github.com/matzehuels/yfiles2mermaid/pkg/diagram"
	"github.com/matzehuels/yfiles2mermaid/pkg/errors"
	"github.com/matzehuels/yfiles2mermaid/pkg/render/mermaid"
)

// Options configures a pipeline run.
type Options struct {
	// Input is the path of the GraphML file.
	Input string

	// Theme controls fill and indentation of the output.
	// The zero value is replaced by [mermaid.DefaultTheme].
	Theme mermaid.Theme
}

// Validate checks that the options can be executed.
func (o *Options) Validate() error {
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidUsage, "no input file")
	}
	return nil
}

// SetDefaults fills unset fields with their default values.
func (o *Options) SetDefaults() {
	if o.Theme == (mermaid.Theme{}) {
		o.Theme = mermaid.DefaultTheme()
	}
}

// Stats records sizes and stage timings of a run.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	SkippedNodes int
	DroppedEdges int
	Colors       int
	Strokes      int

	ParseTime     time.Duration
	TranslateTime time.Duration
	RenderTime    time.Duration
}

// Result is the outcome of a successful run.
type Result struct {
	Diagram *diagram.Diagram
	Output  []byte
	Stats   Stats
}
