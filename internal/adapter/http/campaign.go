package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"campus-ads/internal/core/domain"
)

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateCampaignInput
	if err := decode(r, &in); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	view, err := h.svc.CreateCampaign(r.Context(), actorFrom(r), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, view)
}

// handleListCampaigns accepts optional status (comma separated), owner,
// search and limit query parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.CampaignFilter{
		OwnerID: q.Get("owner"),
		Search:  q.Get("search"),
	}
	for _, s := range splitList(q.Get("status")) {
		filter.Statuses = append(filter.Statuses, domain.CampaignStatus(s))
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			h.badRequest(w, "invalid limit")
			return
		}
		filter.Limit = limit
	}

	views, err := h.svc.ListCampaigns(r.Context(), actorFrom(r), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if views == nil {
		views = []domain.CampaignView{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"campaigns": views})
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.GetCampaign(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	var in domain.UpdateCampaignInput
	if err := decode(r, &in); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	view, err := h.svc.UpdateCampaign(r.Context(), actorFrom(r), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// handleRecordMetrics upserts the counters of the YYYY-MM-DD day in the
// path.
func (h *Handler) handleRecordMetrics(w http.ResponseWriter, r *http.Request) {
	date, err := time.Parse(time.DateOnly, chi.URLParam(r, "date"))
	if err != nil {
		h.badRequest(w, "date must be formatted as YYYY-MM-DD")
		return
	}
	var values domain.MetricValues
	if err = decode(r, &values); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	row, err := h.svc.RecordDailyMetrics(r.Context(), actorFrom(r), chi.URLParam(r, "id"), date, values)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, metricResponse{
		Date:         row.Date.Format(time.DateOnly),
		MetricValues: row.MetricValues,
		UpdatedAt:    row.UpdatedAt,
	})
}

type metricResponse struct {
	Date string `json:"date"`
	domain.MetricValues
	UpdatedAt time.Time `json:"updatedAt"`
}

func (h *Handler) handleInsights(w http.ResponseWriter, r *http.Request) {
	var window int
	if raw := r.URL.Query().Get("windowDays"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.badRequest(w, "windowDays must be an integer")
			return
		}
		window = n
	}
	insights, err := h.svc.Insights(r.Context(), actorFrom(r), chi.URLParam(r, "id"), window)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, insights)
}
