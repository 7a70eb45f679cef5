package sequencer

// DependencyMap is an insertion-ordered mapping from a job to the single job
// it depends on, if any. The zero value is not usable; create one with
// NewDependencyMap.
type DependencyMap[K comparable] struct {
	order []K
	deps  map[K]dependency[K]
}

// dependency is the optional value stored for a job.
type dependency[K comparable] struct {
	id  K
	set bool
}

// Pair is a single job declaration as yielded by DependencyMap.Pairs.
type Pair[K comparable] struct {
	Job           K
	Dependency    K
	HasDependency bool
}

// NewDependencyMap creates an empty DependencyMap.
func NewDependencyMap[K comparable]() *DependencyMap[K] {
	return &DependencyMap[K]{
		deps: make(map[K]dependency[K]),
	}
}

// Add declares a job without a dependency. Re-declaring a job clears its
// dependency but keeps its original position.
func (m *DependencyMap[K]) Add(job K) {
	m.put(job, dependency[K]{})
}

// AddWithDependency declares that job depends on dep. Re-declaring a job
// replaces its dependency but keeps its original position.
func (m *DependencyMap[K]) AddWithDependency(job, dep K) {
	m.put(job, dependency[K]{id: dep, set: true})
}

func (m *DependencyMap[K]) put(job K, d dependency[K]) {
	if _, ok := m.deps[job]; !ok {
		m.order = append(m.order, job)
	}
	m.deps[job] = d
}

// Dependency returns the job that job depends on. The boolean is false when
// job has no dependency or is not declared at all.
func (m *DependencyMap[K]) Dependency(job K) (K, bool) {
	d := m.deps[job]
	return d.id, d.set
}

// Contains reports whether job is declared.
func (m *DependencyMap[K]) Contains(job K) bool {
	_, ok := m.deps[job]
	return ok
}

// Len returns the number of declared jobs.
func (m *DependencyMap[K]) Len() int {
	return len(m.order)
}

// Jobs returns the declared jobs in insertion order.
func (m *DependencyMap[K]) Jobs() []K {
	jobs := make([]K, len(m.order))
	copy(jobs, m.order)
	return jobs
}

// Pairs returns every declaration in insertion order.
func (m *DependencyMap[K]) Pairs() []Pair[K] {
	pairs := make([]Pair[K], 0, len(m.order))
	for _, job := range m.order {
		d := m.deps[job]
		pairs = append(pairs, Pair[K]{Job: job, Dependency: d.id, HasDependency: d.set})
	}
	return pairs
}
