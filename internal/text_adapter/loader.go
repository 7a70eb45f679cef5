package text_adapter

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/jobseq/internal/config"
	"github.com/specialistvlad/jobseq/internal/ctxlog"
)

// Loader is the text-grammar implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new text job loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".jobs", ".txt"}
}

// Load reads and parses every path in order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Text loader started.", "path_count", len(paths))

	model := config.NewModel()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read jobs file %s: %w", path, err)
		}

		fileModel, err := Parse(path, string(data))
		if err != nil {
			return nil, err
		}
		logger.Debug("Parsed jobs file.", "path", path, "jobs", len(fileModel.Jobs))
		model.Merge(fileModel)
	}

	logger.Debug("Text loading complete.", "jobs", len(model.Jobs))
	return model, nil
}
