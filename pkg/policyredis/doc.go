// Package policyredis implements policy.Store on top of Redis.
//
// The whole role table lives as one JSON document under a single key, so a
// Save is a single SET and readers never observe a partially written table.
// This matches the manager's whole-table persistence model; the package does
// not attempt per-role keys or policy distribution.
//
// Configuration is described by Config, populated from environment variables
// via github.com/caarlos0/env, and Connect retries until the server is
// reachable:
//
//	var cfg policyredis.Config
//	if err := config.Load(&cfg); err != nil { ... }
//
//	client, err := policyredis.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer client.Close()
//
//	store := policyredis.NewStore(client, policyredis.WithKey(cfg.Key))
//	mgr := policy.NewManager(store)
package policyredis
