package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"campus-ads/internal/core/domain"
)

type feedRequest struct {
	Posts    []json.RawMessage `json:"posts"`
	Context  string            `json:"context"`
	Page     int               `json:"page"`
	PerPage  int               `json:"perPage"`
	Limit    int               `json:"limit"`
	Keywords []string          `json:"keywords"`
}

func (h *Handler) handlePlacements(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := domain.PlacementRequest{
		Context:  domain.DisplayContext(strings.ToLower(strings.TrimSpace(q.Get("context")))),
		Keywords: splitList(q.Get("keywords")),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			h.badRequest(w, "invalid limit")
			return
		}
		req.Limit = limit
	}
	placements, err := h.svc.Placements(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"context":    cmpContext(req.Context),
		"placements": placements,
	})
}

// handleFeed interleaves the posts of one page with placements. Posts are
// opaque JSON values and come back unchanged.
func (h *Handler) handleFeed(w http.ResponseWriter, r *http.Request) {
	var body feedRequest
	if err := decode(r, &body); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	page, err := h.svc.Feed(r.Context(), domain.FeedRequest[json.RawMessage]{
		Posts:    body.Posts,
		Context:  domain.DisplayContext(strings.ToLower(strings.TrimSpace(body.Context))),
		Page:     body.Page,
		PerPage:  body.PerPage,
		Limit:    body.Limit,
		Keywords: body.Keywords,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, page)
}

func cmpContext(c domain.DisplayContext) domain.DisplayContext {
	if c == "" {
		return domain.ContextGlobalFeed
	}
	return c
}
