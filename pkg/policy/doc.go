// Package policy implements role-based access-control decisions: given a role
// name and a content identifier, it decides whether access is permitted.
//
// Access is exact-match membership of a content identifier in a role's
// allow-list. There is no inheritance, no wildcard or pattern matching, and
// no attribute conditions; identifiers are opaque, case-sensitive strings.
//
// Key pieces:
//
//   - Role: a named bundle of permitted content identifiers plus opaque metadata
//   - Decode: batch conversion of raw JSON-shaped input into a validated Table,
//     skipping and reporting malformed entries instead of failing the batch
//   - Evaluator: an immutable snapshot answering Allowed(role, content)
//   - Store: a pluggable persistence backend (MemoryStore is the reference)
//   - Manager: the orchestrator keeping table, evaluator, and store consistent
//
// Basic usage:
//
//	mgr := policy.NewManager(policy.NewMemoryStore(), policy.WithLogger(log))
//
//	err := mgr.Initialize(ctx, map[string]any{
//	    "admin": []string{"read", "write", "delete"},
//	    "user":  []string{"read"},
//	})
//	if err != nil {
//	    // no valid roles decoded, or the store rejected the table
//	}
//
//	if mgr.HasAccess("admin", "delete") {
//	    // render the admin-only content
//	}
//
//	mgr.OnChange(func() {
//	    // re-read the table or re-run visibility checks
//	})
//
// Mutations (Initialize, AddRole, RemoveRole, UpdateRole) are serialized and
// commit atomically: observers and readers never see a half-applied change.
// Access checks before initialization are safe and evaluate to false.
package policy
