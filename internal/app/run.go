package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/specialistvlad/jobseq/internal/ctxlog"
	"github.com/specialistvlad/jobseq/internal/sequencer"
)

// Run loads the job declarations, sequences them and writes the result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loadModel(ctx)
	if err != nil {
		return fmt.Errorf("failed to load jobs: %w", err)
	}
	a.logger.Debug("Jobs loaded.", "declarations", len(model.Jobs))

	deps := model.DependencyMap()
	seq, err := sequencer.Sequence(deps)
	if err != nil {
		a.logger.Warn("Sequencing rejected the jobs.", "error", err)
		return fmt.Errorf("failed to sequence jobs: %w", err)
	}
	a.logger.Info("Jobs sequenced.", "jobs", len(seq))

	if err := a.render(seq); err != nil {
		return fmt.Errorf("failed to write sequence: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// render writes the sequence in the configured output format.
func (a *App) render(seq []string) error {
	if a.config.OutputFormat == "json" {
		return json.NewEncoder(a.outW).Encode(seq)
	}
	_, err := fmt.Fprintln(a.outW, strings.Join(seq, a.config.Separator))
	return err
}
