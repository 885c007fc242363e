package v1handler

import (
	"bytes"
	"govconnect/pkg/domain"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) ListTenders(w http.ResponseWriter, r *http.Request) {
	category := domain.ParseTenderCategory(r.URL.Query().Get("category"))

	list, err := h.deps.Tenders.List(r.Context(), category)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, list)
}

func (h *Handler) GetTender(w http.ResponseWriter, r *http.Request) {
	t, err := h.deps.Tenders.Get(r.Context(), domain.TenderID(chi.URLParam(r, "id")))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, t)
}

func (h *Handler) SaveTender(w http.ResponseWriter, r *http.Request) {
	h.markTender(w, r, domain.TenderMarkSaved)
}

func (h *Handler) IgnoreTender(w http.ResponseWriter, r *http.Request) {
	h.markTender(w, r, domain.TenderMarkIgnored)
}

func (h *Handler) ClearTenderMark(w http.ResponseWriter, r *http.Request) {
	h.markTender(w, r, domain.TenderMarkNone)
}

func (h *Handler) markTender(w http.ResponseWriter, r *http.Request, mark domain.TenderMark) {
	t, err := h.deps.Tenders.Mark(r.Context(), domain.TenderID(chi.URLParam(r, "id")), mark)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(r.Context(), w, http.StatusOK, t)
}

// ExportTenders buffers the workbook so a failure can still be reported as JSON.
func (h *Handler) ExportTenders(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.deps.Tenders.ExportSaved(r.Context(), &buf); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="saved-tenders.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
