package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/specialistvlad/jobseq/internal/config"
	"github.com/specialistvlad/jobseq/internal/ctxlog"
	"github.com/specialistvlad/jobseq/internal/fsutil"
	"github.com/specialistvlad/jobseq/internal/text_adapter"
)

// loadModel reads the job declarations from whichever input the config names.
func (a *App) loadModel(ctx context.Context) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	switch a.config.InputPath {
	case "":
		logger.Debug("Loading inline jobs.")
		return text_adapter.Parse("inline", a.config.InlineJobs)
	case StdinPath:
		logger.Debug("Loading jobs from stdin.")
		data, err := io.ReadAll(a.inR)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return text_adapter.Parse("stdin", string(data))
	}

	info, err := os.Stat(a.config.InputPath)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", a.config.InputPath, err)
	}
	if !info.IsDir() {
		return a.loadFile(ctx, a.config.InputPath)
	}

	files, err := fsutil.FindFilesByExtension(a.config.InputPath, a.extensions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", a.config.InputPath, err)
	}
	logger.Debug("Discovered job files.", "path", a.config.InputPath, "count", len(files))

	model := config.NewModel()
	for _, file := range files {
		fileModel, err := a.loadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		model.Merge(fileModel)
	}
	return model, nil
}

// loadFile picks a loader by extension. Files with an unknown extension are
// read with the text grammar.
func (a *App) loadFile(ctx context.Context, path string) (*config.Model, error) {
	loader, ok := a.loaders[filepath.Ext(path)]
	if !ok {
		ctxlog.FromContext(ctx).Debug("No loader for extension, using text grammar.", "path", path)
		loader = text_adapter.NewLoader()
	}
	return loader.Load(ctx, path)
}

// extensions returns every registered extension in a stable order.
func (a *App) extensions() []string {
	exts := make([]string, 0, len(a.loaders))
	for ext := range a.loaders {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
