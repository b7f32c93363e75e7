// Package policyfile loads policy documents from disk and persists role
// tables as files.
//
// The loader side turns a JSON or YAML document into the raw input shape
// consumed by policy.Manager.Initialize. Two layouts are understood: the
// plain mapping from role name to a list of content identifiers, and the
// extended per-role object whose allowedContent field carries the list.
// Malformed entries are passed through untouched so the policy decoder can
// skip and report them with its partial-success semantics.
//
// The store side implements policy.Store over a single JSON document with
// atomic writes; it suits single-node deployments that want policy to survive
// restarts without a database.
//
//	raw, err := policyfile.LoadRaw("roles.yaml")
//	if err != nil {
//	    // unreadable or structurally invalid document
//	}
//
//	store, err := policyfile.NewStore("/var/lib/rolegated/policy.json")
//	mgr := policy.NewManager(store)
//	err = mgr.Initialize(ctx, raw)
package policyfile
