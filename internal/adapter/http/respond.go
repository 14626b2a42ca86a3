package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"campus-ads/internal/core/domain"
)

const (
	headerActorID   = "X-Actor-ID"
	headerActorRole = "X-Actor-Role"
)

type errorBody struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// actorFrom reads the identity forwarded by the gateway. Roles are a comma
// separated list; unknown roles carry no permissions.
func actorFrom(r *http.Request) domain.Actor {
	actor := domain.Actor{ID: strings.TrimSpace(r.Header.Get(headerActorID))}
	for _, role := range strings.Split(r.Header.Get(headerActorRole), ",") {
		if role = strings.ToLower(strings.TrimSpace(role)); role != "" {
			actor.Roles = append(actor.Roles, domain.Role(role))
		}
	}
	return actor
}

func statusOf(kind domain.Kind) int {
	switch kind {
	case domain.KindUnauthenticated:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps err onto a status code. Internal failures are logged and
// reported without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	body := errorBody{Error: kind.String(), Message: "internal error"}
	var derr *domain.Error
	if kind != domain.KindInternal && errors.As(err, &derr) {
		body.Message = derr.Message
		body.Fields = derr.Fields
	}
	if kind == domain.KindInternal {
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method), slog.String("path", r.URL.Path), slog.Any("error", err))
	}
	h.writeJSON(w, statusOf(kind), body)
}

func (h *Handler) badRequest(w http.ResponseWriter, message string) {
	h.writeJSON(w, http.StatusBadRequest, errorBody{Error: domain.KindValidation.String(), Message: message})
}

// decode reads a JSON body, rejecting unknown fields.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func splitList(raw string) []string {
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
