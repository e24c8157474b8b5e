package handler

import (
	"net/http"
)

func (h *Handler) GenerateBracket(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.GenerateBracket(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, domainMatchesToHTTP(matches))
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.ListMatches(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMatchesToHTTP(matches))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "match")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	match, err := h.matchService.GetMatch(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMatchToHTTP(match))
}

func (h *Handler) ApplyMatchAction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "match")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	var req MatchActionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, r, err)
		return
	}

	match, err := h.matchService.ApplyMatchAction(r.Context(), id, req.Action)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMatchToHTTP(match))
}

func (h *Handler) CloseMatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "match")
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	match, err := h.matchService.CloseMatch(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, domainMatchToHTTP(match))
}
