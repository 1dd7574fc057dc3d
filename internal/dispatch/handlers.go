package dispatch

import (
	"net/http"

	"github.com/go-chi/render"
)

// Process handles POST /api/process - dispatches a tool request.
func (d *Dispatcher) Process(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		d.logger.Debug().
			Err(err).
			Str("remote_addr", r.RemoteAddr).
			Msg("Failed to decode request body")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, Response{Error: "invalid JSON request body"})
		return
	}

	resp, status := d.Dispatch(r.Context(), req)
	render.Status(r, status)
	render.JSON(w, r, resp)
}

// Health handles GET /api/health - the readiness probe. It reports process
// liveness and enumerates the registered tool names, independent of request
// history.
func (d *Dispatcher) Health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, HealthResponse{
		Status:         "ok",
		AvailableTools: d.registry.Names(),
	})
}
