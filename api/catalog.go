package api

import "net/http"

func (h *Handler) listCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.herald.Catalog().Entries())
}

func (h *Handler) getCatalogEntry(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.herald.Catalog().Lookup(r.PathValue("name"))
	if !ok {
		writeError(w, http.StatusNotFound, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
