// Package requestid provides HTTP request-ID propagation: middleware that
// trusts a well-formed incoming X-Request-ID or mints a UUID, plus context
// accessors for handlers and loggers.
package requestid
