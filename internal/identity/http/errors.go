package http

import (
	"encoding/json"
	"net/http"

	"github.com/mbraun/identity/internal/identity/service"
	"github.com/mbraun/identity/pkg/httpx"
	"github.com/mbraun/identity/pkg/slogx"
)

// writeServiceError translates a service failure into a transport response.
// Typed service errors carry their reason text verbatim to the client;
// anything else is a 500 with the detail kept server-side.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch service.KindOf(err) {
	case service.KindNotFound:
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case service.KindConflict:
		httpx.WriteError(w, http.StatusConflict, err.Error())
	case service.KindInvalidCredential:
		httpx.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("request failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads the request body into v, reporting a 400 on malformed
// input. Returns false when the response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
