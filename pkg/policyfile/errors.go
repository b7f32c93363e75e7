package policyfile

import "errors"

var (
	// ErrEmptyPath is returned when a store or loader is given no path.
	ErrEmptyPath = errors.New("policyfile: empty path")

	// ErrUnsupportedFormat is returned for file extensions other than JSON/YAML.
	ErrUnsupportedFormat = errors.New("policyfile: unsupported document format")

	// ErrInvalidDocument is returned when a policy document cannot be parsed
	// as a mapping from role name to policy value.
	ErrInvalidDocument = errors.New("policyfile: invalid policy document")

	// ErrReadFailed wraps filesystem read errors.
	ErrReadFailed = errors.New("policyfile: read failed")

	// ErrWriteFailed wraps filesystem write errors.
	ErrWriteFailed = errors.New("policyfile: write failed")
)
