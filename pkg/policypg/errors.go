package policypg

import "errors"

var (
	// ErrInvalidConnectionString is returned when the connection URL cannot be parsed.
	ErrInvalidConnectionString = errors.New("policypg: invalid connection string")

	// ErrNotReady is returned when the database stays unreachable through all
	// retry attempts.
	ErrNotReady = errors.New("policypg: database not ready")

	// ErrMigrationFailed wraps schema migration errors.
	ErrMigrationFailed = errors.New("policypg: migration failed")

	// ErrCorruptRow is returned when a stored role row cannot be decoded.
	ErrCorruptRow = errors.New("policypg: corrupt role row")
)
