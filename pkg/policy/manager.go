package policy

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger injects the structured logger used for diagnostics. Without it
// the manager logs nowhere.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// Manager owns the authoritative role table. It drives initialization from
// raw input, exposes CRUD over roles, keeps the table, the bound Evaluator,
// and the Store consistent, and notifies observers after each committed
// mutation.
//
// Mutating operations are serialized; HasAccess and the read-only views may
// run concurrently with each other and with mutations, observing either the
// pre- or post-mutation snapshot, never a mix.
type Manager struct {
	store Store
	log   *slog.Logger

	// writeMu serializes mutating operations end to end, including
	// notification, so observers see changes in commit order.
	writeMu sync.Mutex

	// mu guards the committed state swap.
	mu          sync.RWMutex
	table       Table
	eval        Evaluator
	initialized bool
	observers   []func()
}

// NewManager creates a Manager persisting through the given store.
// The manager starts uninitialized: access checks return false until
// Initialize has completed once.
func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		log:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize decodes the raw attribute map with partial success, commits the
// resulting table, persists it, and marks the manager initialized. Invalid
// entries are skipped and logged as a summary; only a total decode failure
// (non-empty input, zero valid entries) aborts. An empty input is a valid,
// empty initialization.
//
// On decode or persistence failure the manager keeps its previous state and
// does not report itself initialized.
func (m *Manager) Initialize(ctx context.Context, raw map[string]any) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	table, issues, err := Decode(raw)
	if err != nil {
		m.log.ErrorContext(ctx, "policy decode failed",
			slog.Int("entries", len(raw)),
			slog.Any("error", err))
		return err
	}
	if len(issues) > 0 {
		m.log.WarnContext(ctx, "skipped invalid policy entries",
			slog.Int("skipped", len(issues)),
			slog.Any("sample", sampleKeys(issues)))
	}

	if err := m.commit(ctx, table, true); err != nil {
		return err
	}
	m.log.InfoContext(ctx, "policy initialized", slog.Int("roles", len(table)))
	return nil
}

// AddRole inserts or overwrites the entry keyed by the role's name.
// Last write wins on name collision. A role with an empty name is rejected
// before any state change.
func (m *Manager) AddRole(ctx context.Context, role Role) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	if role.Name == "" {
		return ErrEmptyRoleName
	}

	next := m.snapshot().Clone()
	next[role.Name] = role.Clone()
	return m.commit(ctx, next, false)
}

// RemoveRole deletes the entry keyed by name. Removing an absent name is a
// successful no-op that still persists and notifies. An empty name is
// rejected before any state change.
func (m *Manager) RemoveRole(ctx context.Context, name string) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	if name == "" {
		return ErrEmptyRoleName
	}

	next := m.snapshot().Clone()
	if _, ok := next[name]; !ok {
		m.log.DebugContext(ctx, "removing absent role", slog.String("role", name))
	}
	delete(next, name)
	return m.commit(ctx, next, false)
}

// UpdateRole writes the role under the lookup key name, creating the entry if
// absent. The table key is the name parameter, independent of role.Name; the
// stored role keeps its declared name even when the two differ. When name is
// empty the key falls back to role.Name. The call is rejected only when both
// are empty.
func (m *Manager) UpdateRole(ctx context.Context, name string, role Role) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	if name == "" && role.Name == "" {
		return ErrEmptyRoleName
	}
	key := name
	if key == "" {
		key = role.Name
	}

	next := m.snapshot().Clone()
	next[key] = role.Clone()
	return m.commit(ctx, next, false)
}

// HasAccess reports whether the named role grants the content identifier.
// Before initialization, or with no evaluator bound, it reports the misuse
// and degrades to false; pre-init queries are a safe, falsy condition, not an
// error.
func (m *Manager) HasAccess(role, content string) bool {
	m.mu.RLock()
	initialized, eval := m.initialized, m.eval
	m.mu.RUnlock()

	if !initialized || eval == nil {
		m.log.Warn("access check before initialization",
			slog.String("role", role),
			slog.String("content", content))
		return false
	}
	return eval.Allowed(role, content)
}

// Initialized reports whether Initialize has completed at least once. An
// empty valid role set counts as a successful initialization.
func (m *Manager) Initialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// Roles returns a read-only deep copy of the current role table.
func (m *Manager) Roles() Table {
	return m.snapshot().Clone()
}

// Role returns a deep copy of the role stored under name.
func (m *Manager) Role(name string) (Role, bool) {
	m.mu.RLock()
	role, ok := m.table[name]
	m.mu.RUnlock()
	if !ok {
		return Role{}, false
	}
	return role.Clone(), true
}

// OnChange registers an observer invoked synchronously, in registration
// order, exactly once per successful mutating operation, after the new table,
// evaluator, and persisted copy are fully committed. Nil observers are
// ignored.
func (m *Manager) OnChange(fn func()) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

// commit runs the write protocol for a candidate table: build the evaluator,
// persist, swap committed state, notify. Persistence failures leave all prior
// state untouched and skip notification. Callers hold writeMu.
func (m *Manager) commit(ctx context.Context, table Table, markInitialized bool) error {
	eval := NewEvaluator(table)

	if err := m.store.Save(ctx, table); err != nil {
		m.log.ErrorContext(ctx, "policy persistence failed",
			slog.Int("roles", len(table)),
			slog.Any("error", err))
		return errors.Join(ErrSaveFailed, err)
	}

	m.mu.Lock()
	m.table = table
	m.eval = eval
	if markInitialized {
		m.initialized = true
	}
	observers := slices.Clone(m.observers)
	m.mu.Unlock()

	for _, notify := range observers {
		notify()
	}
	return nil
}

// snapshot returns the committed table for copy-on-write mutation.
// Callers must Clone before modifying.
func (m *Manager) snapshot() Table {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.table
}

func sampleKeys(issues []Issue) []string {
	n := min(len(issues), issueSampleSize)
	keys := make([]string, n)
	for i := range n {
		keys[i] = issues[i].Key
	}
	return keys
}
