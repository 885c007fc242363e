package v1handler

import (
	"govconnect/pkg/domain"
	"net/http"
)

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.deps.Profile.Get(r.Context())
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, p)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req domain.BusinessProfile
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)

		return
	}

	p, err := h.deps.Profile.Update(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, p)
}
