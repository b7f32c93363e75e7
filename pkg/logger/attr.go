package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RoleName records a role name under the key "role".
func RoleName(name string) slog.Attr {
	return slog.String("role", name)
}

// ContentID records a content identifier under the key "content".
func ContentID(id string) slog.Attr {
	return slog.String("content", id)
}

// Component records the emitting component under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
