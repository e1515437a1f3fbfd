package uf

// QuickFind keeps, for every point, the identifier of its group.
// Points in the same group always share the same id, so Find is a single
// array read while Union must rewrite every matching entry.
//
// Complexity:
//   - NewQuickFind: O(N)
//   - Find:         O(1)
//   - Union:        O(N), even when p and q are already connected
//   - Processing N unions costs O(N²).
type QuickFind struct {
	// id is indexed by point and stores the group identifier.
	id []int
	// count is the number of groups.
	count int
}

// NewQuickFind returns a QuickFind over n singleton groups (id[i] = i).
// It panics when n <= 0.
func NewQuickFind(n int) *QuickFind {
	mustPositive("QuickFind", n)

	id := make([]int, n)
	for i := range id {
		id[i] = i // every point starts as its own group
	}

	return &QuickFind{id: id, count: n}
}

// Union moves every member of p's group into q's group: q's id wins.
// The full id array is scanned on every call. Count only drops when the
// two groups were distinct.
//
// Complexity: O(N).
func (qf *QuickFind) Union(p, q int) error {
	pid, err := qf.Find(p)
	if err != nil {
		return err
	}
	qid, err := qf.Find(q)
	if err != nil {
		return err
	}

	// Rewrite p's group id to q's; a no-op pass when pid == qid.
	for i := range qf.id {
		if qf.id[i] == pid {
			qf.id[i] = qid
		}
	}
	if pid != qid {
		qf.count--
	}

	return nil
}

// Connected reports whether p and q share a group id.
// Complexity: O(1).
func (qf *QuickFind) Connected(p, q int) (bool, error) {
	if err := checkPair(p, q, len(qf.id)); err != nil {
		return false, err
	}

	return qf.id[p] == qf.id[q], nil
}

// Find returns p's group id.
// Complexity: O(1).
func (qf *QuickFind) Find(p int) (int, error) {
	if err := checkIndex(p, len(qf.id)); err != nil {
		return 0, err
	}

	return qf.id[p], nil
}

// Count returns the number of groups.
func (qf *QuickFind) Count() int { return qf.count }

// Len returns the universe size N.
func (qf *QuickFind) Len() int { return len(qf.id) }
