package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rolegate/rolegate/pkg/logger"
	"github.com/rolegate/rolegate/pkg/policy"
	"github.com/rolegate/rolegate/pkg/requestid"
)

type handlers struct {
	mgr *policy.Manager
	log *slog.Logger
}

type accessResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	Allowed bool   `json:"allowed"`
}

type healthResponse struct {
	Status      string `json:"status"`
	Initialized bool   `json:"initialized"`
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:      "ok",
		Initialized: h.mgr.Initialized(),
	})
}

func (h *handlers) checkAccess(w http.ResponseWriter, r *http.Request) {
	role := r.URL.Query().Get("role")
	content := r.URL.Query().Get("content")
	if role == "" || content == "" {
		writeError(w, http.StatusBadRequest, "missing_parameter", "role and content query parameters are required")
		return
	}

	allowed := h.mgr.HasAccess(role, content)
	if !allowed {
		h.log.DebugContext(r.Context(), "access denied",
			logger.RoleName(role), logger.ContentID(content))
	}
	writeJSON(w, http.StatusOK, accessResponse{
		Role:    role,
		Content: content,
		Allowed: allowed,
	})
}

func (h *handlers) initializePolicy(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be a JSON object")
		return
	}

	if err := h.mgr.Initialize(r.Context(), raw); err != nil {
		h.writeManagerError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"roles": len(h.mgr.Roles())})
}

func (h *handlers) listRoles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.mgr.Roles())
}

func (h *handlers) getRole(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	role, ok := h.mgr.Role(name)
	if !ok {
		writeError(w, http.StatusNotFound, "role_not_found", "no role stored under this name")
		return
	}
	writeJSON(w, http.StatusOK, role)
}

func (h *handlers) addRole(w http.ResponseWriter, r *http.Request) {
	var role policy.Role
	if err := json.NewDecoder(r.Body).Decode(&role); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be a JSON role object")
		return
	}

	if err := h.mgr.AddRole(r.Context(), policy.NewRole(role.Name, role.AllowedContent...).WithMetadata(role.Metadata)); err != nil {
		h.writeManagerError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, role.Name)
}

func (h *handlers) updateRole(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var role policy.Role
	if err := json.NewDecoder(r.Body).Decode(&role); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "request body must be a JSON role object")
		return
	}
	if role.Name == "" {
		role.Name = name
	}

	if err := h.mgr.UpdateRole(r.Context(), name, policy.NewRole(role.Name, role.AllowedContent...).WithMetadata(role.Metadata)); err != nil {
		h.writeManagerError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, name)
}

func (h *handlers) removeRole(w http.ResponseWriter, r *http.Request) {
	if err := h.mgr.RemoveRole(r.Context(), chi.URLParam(r, "name")); err != nil {
		h.writeManagerError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeManagerError maps policy errors onto HTTP statuses: structural
// rejections are the client's fault, decode failures carry the issue summary,
// and persistence failures point at the backing store.
func (h *handlers) writeManagerError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, policy.ErrEmptyRoleName):
		writeError(w, http.StatusBadRequest, "empty_role_name", "role name must not be empty")
	case errors.Is(err, policy.ErrDecodeFailed):
		writeError(w, http.StatusUnprocessableEntity, "decode_failed", err.Error())
	case errors.Is(err, policy.ErrSaveFailed):
		writeError(w, http.StatusBadGateway, "persistence_failed", "policy store rejected the change")
	default:
		h.log.ErrorContext(ctx, "unhandled policy error", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "unexpected error")
	}
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *handlers) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		h.log.InfoContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.String("request_id", requestid.FromContext(r.Context())),
		)
	})
}
