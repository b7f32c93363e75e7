package policyredis

import "errors"

var (
	// ErrInvalidConnectionURL is returned when the Redis URL cannot be parsed.
	ErrInvalidConnectionURL = errors.New("policyredis: invalid connection url")

	// ErrNotReady is returned when the server stays unreachable through all
	// retry attempts.
	ErrNotReady = errors.New("policyredis: redis not ready")

	// ErrCorruptDocument is returned when the stored table cannot be decoded.
	ErrCorruptDocument = errors.New("policyredis: corrupt policy document")
)
