package policypg

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rolegate/rolegate/pkg/policy"
)

// Store persists the role table in the policy_roles table, one row per role.
// The manager persists whole tables, so Save replaces the full set inside a
// transaction; readers on other connections see either the old or the new
// set, never a mix.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a Postgres-backed store over an established pool. Run
// Migrate before first use; the caller owns the pool's lifecycle.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Load reads all persisted roles. An empty table is a valid result.
func (s *Store) Load(ctx context.Context) (policy.Table, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT name, role_name, allowed_content, metadata FROM policy_roles`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	table := policy.Table{}
	for rows.Next() {
		var (
			key      string
			roleName string
			content  []byte
			metadata []byte
		)
		if err := rows.Scan(&key, &roleName, &content, &metadata); err != nil {
			return nil, err
		}

		var allowed []string
		if err := json.Unmarshal(content, &allowed); err != nil {
			return nil, errors.Join(ErrCorruptRow, err)
		}
		role := policy.NewRole(roleName, allowed...)
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &role.Metadata); err != nil {
				return nil, errors.Join(ErrCorruptRow, err)
			}
		}
		table[key] = role
	}
	return table, rows.Err()
}

// Save replaces the persisted role set with the given table transactionally.
func (s *Store) Save(ctx context.Context, table policy.Table) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM policy_roles`); err != nil {
			return err
		}

		for key, role := range table {
			content, err := json.Marshal(role.AllowedContent)
			if err != nil {
				return err
			}
			var metadata []byte
			if len(role.Metadata) > 0 {
				if metadata, err = json.Marshal(role.Metadata); err != nil {
					return err
				}
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO policy_roles (name, role_name, allowed_content, metadata, updated_at)
				 VALUES ($1, $2, $3, $4, now())`,
				key, role.Name, content, metadata,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// Clear removes all persisted roles immediately.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM policy_roles`)
	return err
}
