// Package yaml_adapter provides the YAML implementation of the config.Loader
// interface. A jobs file is a single mapping from job to dependency, read in
// document order:
//
//	a:
//	b: c
//	c: f
//	f: ~
package yaml_adapter

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/jobseq/internal/config"
	"github.com/specialistvlad/jobseq/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// nullTag is the resolved tag of an empty or `~` YAML value.
const nullTag = "!!null"

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML job loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extensions implements config.Loader.
func (l *Loader) Extensions() []string {
	return []string{".yaml", ".yml"}
}

// Load decodes every path in order. Files are decoded into a yaml.Node
// rather than a Go map so that declaration order survives.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	model := config.NewModel()
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
		}

		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML file %s: %w", path, err)
		}

		fileModel, err := translateDocument(path, &doc)
		if err != nil {
			return nil, err
		}
		logger.Debug("Decoded YAML file.", "path", path, "jobs", len(fileModel.Jobs))
		model.Merge(fileModel)
	}

	logger.Debug("YAML loading complete.", "jobs", len(model.Jobs))
	return model, nil
}

// translateDocument converts a decoded YAML document into the agnostic model.
func translateDocument(path string, doc *yaml.Node) (*config.Model, error) {
	model := config.NewModel()

	// An empty file decodes into a zero node.
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return model, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == nullTag {
		return model, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s:%d: jobs must be a mapping of job to dependency", path, root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, fmt.Errorf("%s:%d: job name must be a non-empty scalar", path, key.Line)
		}

		switch {
		case value.Kind == yaml.ScalarNode && value.Tag == nullTag:
			model.Add(key.Value, "", path)
		case value.Kind == yaml.ScalarNode:
			model.Add(key.Value, value.Value, path)
		default:
			return nil, fmt.Errorf("%s:%d: dependency of job %q must be a single job name", path, value.Line, key.Value)
		}
	}
	return model, nil
}
