package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/yfiles2mermaid/internal/config"
	"github.com/matzehuels/yfiles2mermaid/pkg/pipeline"
)

// convertOpts holds the command-line flags for a conversion.
type convertOpts struct {
	config string // path of an optional TOML theme file
}

// runConvert translates input and writes the Mermaid program to stdout.
// The output is written only after the whole conversion succeeded.
func (c *CLI) runConvert(ctx context.Context, input string, opts *convertOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var cfg *config.Config
	if opts.config != "" {
		var err error
		if cfg, err = config.Load(opts.config); err != nil {
			return err
		}
		logger.Debugf("Loaded config %s", opts.config)
	}

	runner := pipeline.NewRunner(logger)
	res, err := runner.Execute(ctx, pipeline.Options{Input: input, Theme: cfg.MermaidTheme()})
	if err != nil {
		return err
	}

	if _, err := c.stdout.Write(res.Output); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	prog.done(fmt.Sprintf("Converted %s: %d nodes, %d edges", input, res.Stats.NodeCount, res.Stats.EdgeCount))
	return nil
}
