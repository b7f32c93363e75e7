package policy

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for policy operations.
var (
	// ErrEmptyRoleName is returned when a mutating call carries an empty role key.
	ErrEmptyRoleName = errors.New("policy.empty_role_name")

	// ErrDecodeFailed is returned when batch decoding aborts.
	ErrDecodeFailed = errors.New("policy.decode_failed")

	// ErrNoValidRoles is returned when a non-empty input decodes to zero roles.
	ErrNoValidRoles = errors.New("policy.no_valid_roles")

	// ErrSaveFailed is returned when the store rejects a table during a
	// mutating operation. The manager keeps its prior committed state.
	ErrSaveFailed = errors.New("policy.save_failed")
)

// issueSampleSize caps how many failing keys a DecodeError message names.
const issueSampleSize = 3

// Issue describes a single raw-input entry that failed validation and was
// skipped during decoding.
type Issue struct {
	Key    string
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("%q: %s", i.Key, i.Reason)
}

// DecodeError aggregates per-entry validation failures when decoding aborts:
// either partial success was disallowed and at least one entry was invalid,
// or no entry decoded successfully at all.
type DecodeError struct {
	Issues []Issue

	noValidRoles bool
}

func (e *DecodeError) Error() string {
	sample := e.Issues
	if len(sample) > issueSampleSize {
		sample = sample[:issueSampleSize]
	}
	parts := make([]string, len(sample))
	for i, issue := range sample {
		parts[i] = issue.String()
	}
	suffix := ""
	if len(e.Issues) > len(sample) {
		suffix = ", ..."
	}
	return fmt.Sprintf("policy: decode failed, %d invalid entries (%s%s)",
		len(e.Issues), strings.Join(parts, ", "), suffix)
}

// Unwrap exposes the matching sentinels for errors.Is checks.
func (e *DecodeError) Unwrap() []error {
	if e.noValidRoles {
		return []error{ErrDecodeFailed, ErrNoValidRoles}
	}
	return []error{ErrDecodeFailed}
}
