// Package sequencer orders jobs so that every job runs after the job it
// depends on.
//
// Each job depends on at most one other job, so the dependency structure is
// a forest of simple chains. Sequence walks the declarations in insertion
// order, rejects self-dependencies and circular references, and splices
// each dependency in front of its already-placed dependent. Independent jobs
// keep the order in which they were declared.
package sequencer
