package policy

// Evaluator answers access-control queries against a fixed role table.
// Implementations must be pure reads, safe for concurrent use.
type Evaluator interface {
	// Allowed reports whether the named role grants the content identifier.
	Allowed(role, content string) bool
}

// evaluator indexes a table snapshot as role name -> content set.
// The index is immutable after construction for lock-free reads.
type evaluator struct {
	grants map[string]map[string]struct{}
}

// NewEvaluator builds an Evaluator over a snapshot of the given table.
// Later changes to the table are not visible to the evaluator; the manager
// constructs a fresh one on every committed mutation.
func NewEvaluator(table Table) Evaluator {
	grants := make(map[string]map[string]struct{}, len(table))
	for name, role := range table {
		set := make(map[string]struct{}, len(role.AllowedContent))
		for _, content := range role.AllowedContent {
			set[content] = struct{}{}
		}
		grants[name] = set
	}
	return &evaluator{grants: grants}
}

// Allowed returns true iff the role exists under the queried name and its
// allowed-content set contains the identifier. Empty role or content strings,
// unknown roles, and missing identifiers all evaluate to false. Matching is
// exact and case-sensitive.
func (e *evaluator) Allowed(role, content string) bool {
	if role == "" || content == "" {
		return false
	}
	set, ok := e.grants[role]
	if !ok {
		return false
	}
	_, ok = set[content]
	return ok
}
