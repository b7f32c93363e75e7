package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rolegate/rolegate/pkg/policy"
)

func TestEvaluator_Allowed(t *testing.T) {
	t.Parallel()

	eval := policy.NewEvaluator(policy.Table{
		"admin": policy.NewRole("admin", "read", "write"),
		"guest": policy.NewRole("guest"),
	})

	tests := []struct {
		name    string
		role    string
		content string
		want    bool
	}{
		{name: "granted", role: "admin", content: "read", want: true},
		{name: "not granted", role: "admin", content: "execute", want: false},
		{name: "empty allow list", role: "guest", content: "read", want: false},
		{name: "unknown role", role: "missing", content: "read", want: false},
		{name: "empty role", role: "", content: "read", want: false},
		{name: "empty content", role: "admin", content: "", want: false},
		{name: "case sensitive", role: "admin", content: "Read", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, eval.Allowed(tt.role, tt.content))
		})
	}
}

func TestEvaluator_SnapshotSemantics(t *testing.T) {
	t.Parallel()

	table := policy.Table{"admin": policy.NewRole("admin", "read")}
	eval := policy.NewEvaluator(table)

	// Mutating the source table after construction must not leak through.
	table["admin"] = policy.NewRole("admin", "write")
	delete(table, "admin")

	assert.True(t, eval.Allowed("admin", "read"))
	assert.False(t, eval.Allowed("admin", "write"))
}

func TestEvaluator_KeyedByTableKey(t *testing.T) {
	t.Parallel()

	// A role stored under a key that differs from its declared name is
	// evaluated by key, matching the manager's update semantics.
	eval := policy.NewEvaluator(policy.Table{
		"alias": policy.NewRole("original", "read"),
	})

	assert.True(t, eval.Allowed("alias", "read"))
	assert.False(t, eval.Allowed("original", "read"))
}
