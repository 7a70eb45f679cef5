package config

import "github.com/specialistvlad/jobseq/internal/sequencer"

// Model is the unified, format-agnostic representation of every job
// declaration read from the input, in declaration order.
type Model struct {
	Jobs []*Job
}

// Job is the format-agnostic representation of a single declaration.
type Job struct {
	Name        string
	DependsOn   string // empty when the job has no dependency
	Description string // optional, only some formats carry one
	Source      string // file or origin the declaration was read from
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{}
}

// Add appends a declaration to the model.
func (m *Model) Add(name, dependsOn, source string) {
	m.Jobs = append(m.Jobs, &Job{Name: name, DependsOn: dependsOn, Source: source})
}

// Merge appends all declarations of other, in order.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	m.Jobs = append(m.Jobs, other.Jobs...)
}

// DependencyMap builds the sequencer input. A job declared more than once
// keeps its first position and takes the dependency of its last declaration.
func (m *Model) DependencyMap() *sequencer.DependencyMap[string] {
	deps := sequencer.NewDependencyMap[string]()
	for _, job := range m.Jobs {
		if job.DependsOn == "" {
			deps.Add(job.Name)
		} else {
			deps.AddWithDependency(job.Name, job.DependsOn)
		}
	}
	return deps
}
