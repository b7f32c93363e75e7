// Package policypg implements policy.Store on top of PostgreSQL using the
// pgx/v5 driver.
//
// Roles live one per row in the policy_roles table with jsonb columns for the
// allow-list and metadata. Save replaces the full set inside a transaction,
// matching the manager's whole-table persistence model. The schema is owned
// by an embedded goose migration applied via Migrate.
//
//	var cfg policypg.Config
//	if err := config.Load(&cfg); err != nil { ... }
//
//	pool, err := policypg.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer pool.Close()
//
//	if err := policypg.Migrate(ctx, pool, log); err != nil { ... }
//
//	mgr := policy.NewManager(policypg.NewStore(pool))
package policypg
