package sequencer

import (
	"fmt"
	"slices"
)

// Sequence orders the jobs of m so that every job comes after the job it
// depends on. Jobs without a relationship keep their declaration order.
//
// Processing stops at the first self-dependency or circular reference, and
// no partial result is returned. Both failures are *Error values; use
// errors.Is with ErrSelfDependency or ErrCircularReference to tell them apart.
func Sequence[K comparable](m *DependencyMap[K]) ([]K, error) {
	if m == nil || m.Len() == 0 {
		return []K{}, nil
	}

	list := make([]K, 0, m.Len()*2)
	for _, p := range m.Pairs() {
		if !p.HasDependency {
			if !slices.Contains(list, p.Job) {
				list = append(list, p.Job)
			}
			continue
		}

		chain, err := resolve(m, p.Job, p.Dependency)
		if err != nil {
			return nil, err
		}

		if idx := slices.Index(list, p.Job); idx >= 0 {
			list = slices.Insert(list, idx, chain...)
		} else {
			list = append(list, chain...)
			list = append(list, p.Job)
		}
	}

	return dedupe(list), nil
}

// resolve validates the declaration "job depends on dep" and returns the
// chain of dep's ancestors ending with dep itself, outermost ancestor first.
//
// The walk follows dependencies upwards from dep. Reaching job or dep again
// means the edge being placed closes a cycle. Because every job has at most
// one dependency, a walk longer than the number of declared jobs can only be
// circling a loop further up the chain, which is reported the same way.
func resolve[K comparable](m *DependencyMap[K], job, dep K) ([]K, error) {
	if dep == job {
		return nil, newError(ErrSelfDependency, job, dep)
	}
	if !m.Contains(dep) {
		return nil, fmt.Errorf("job %v: %w: %v", job, ErrUnknownDependency, dep)
	}

	chain := []K{dep}
	current := dep
	for steps := 0; ; steps++ {
		parent, ok := m.Dependency(current)
		if !ok {
			break
		}
		if parent == job || parent == dep || steps >= m.Len() {
			return nil, newError(ErrCircularReference, job, dep)
		}
		chain = append(chain, parent)
		current = parent
	}

	slices.Reverse(chain)
	return chain, nil
}

// dedupe drops every repeated job, keeping the first occurrence.
func dedupe[K comparable](list []K) []K {
	seen := make(map[K]struct{}, len(list))
	out := make([]K, 0, len(list))
	for _, id := range list {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
