package policy_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rolegate/rolegate/pkg/policy"
)

func TestRole_Equal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a    policy.Role
		b    policy.Role
		want bool
	}{
		{
			name: "order independent",
			a:    policy.NewRole("admin", "a", "b"),
			b:    policy.NewRole("admin", "b", "a"),
			want: true,
		},
		{
			name: "duplicates collapse",
			a:    policy.NewRole("admin", "a", "a", "b"),
			b:    policy.NewRole("admin", "b", "a"),
			want: true,
		},
		{
			name: "metadata excluded",
			a:    policy.NewRole("admin", "a").WithMetadata(map[string]any{"tier": "gold"}),
			b:    policy.NewRole("admin", "a"),
			want: true,
		},
		{
			name: "different names",
			a:    policy.NewRole("admin", "a"),
			b:    policy.NewRole("user", "a"),
			want: false,
		},
		{
			name: "different content",
			a:    policy.NewRole("admin", "a", "b"),
			b:    policy.NewRole("admin", "a"),
			want: false,
		},
		{
			name: "case sensitive content",
			a:    policy.NewRole("admin", "Read"),
			b:    policy.NewRole("admin", "read"),
			want: false,
		},
		{
			name: "empty sets equal",
			a:    policy.NewRole("guest"),
			b:    policy.NewRole("guest"),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestNewRole_Dedup(t *testing.T) {
	t.Parallel()

	role := policy.NewRole("editor", "read", "write", "read", "publish", "write")
	assert.Equal(t, []string{"read", "write", "publish"}, role.AllowedContent)
}

func TestRole_Allows(t *testing.T) {
	t.Parallel()

	role := policy.NewRole("editor", "read", "write")
	assert.True(t, role.Allows("read"))
	assert.False(t, role.Allows("delete"))
	assert.False(t, role.Allows(""))
}

func TestRole_Clone(t *testing.T) {
	t.Parallel()

	original := policy.NewRole("admin", "read").WithMetadata(map[string]any{"tier": "gold"})
	clone := original.Clone()

	clone.AllowedContent[0] = "write"
	clone.Metadata["tier"] = "silver"

	assert.Equal(t, []string{"read"}, original.AllowedContent)
	assert.Equal(t, "gold", original.Metadata["tier"])
}

func TestTable_Clone(t *testing.T) {
	t.Parallel()

	table := policy.Table{"admin": policy.NewRole("admin", "read")}
	clone := table.Clone()

	clone["admin"].AllowedContent[0] = "write"
	clone["extra"] = policy.NewRole("extra")

	assert.Equal(t, []string{"read"}, table["admin"].AllowedContent)
	assert.Len(t, table, 1)

	var nilTable policy.Table
	assert.NotNil(t, nilTable.Clone())
}

func TestTable_Equal(t *testing.T) {
	t.Parallel()

	a := policy.Table{
		"admin": policy.NewRole("admin", "read", "write"),
		"user":  policy.NewRole("user", "read"),
	}
	b := policy.Table{
		"admin": policy.NewRole("admin", "write", "read"),
		"user":  policy.NewRole("user", "read"),
	}
	assert.True(t, a.Equal(b))

	delete(b, "user")
	assert.False(t, a.Equal(b))
}

func TestTable_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	table := policy.Table{
		"admin": policy.NewRole("admin", "read", "write").WithMetadata(map[string]any{"tier": "gold"}),
		"guest": policy.NewRole("guest"),
	}

	data, err := json.Marshal(table)
	require.NoError(t, err)

	var restored policy.Table
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.True(t, table.Equal(restored))
	assert.Equal(t, "admin", restored["admin"].Name)
	assert.Equal(t, "gold", restored["admin"].Metadata["tier"])
}
