package core

import (
	"net/http"

	"github.com/francoispqt/gojay"
	"github.com/go-chi/chi/v5"
)

// DebugServer is a local, opt-in HTTP introspection endpoint for operators
// to inspect connection-pool occupancy without a full metrics scrape. It is
// never part of the wire protocol and binds only when a caller explicitly
// starts it.
type DebugServer struct {
	pool   *ConnPool
	router chi.Router
}

// NewDebugServer wires /healthz and /poolz against pool.
func NewDebugServer(pool *ConnPool) *DebugServer {
	d := &DebugServer{pool: pool, router: chi.NewRouter()}
	d.router.Get("/healthz", d.handleHealthz)
	d.router.Get("/poolz", d.handlePoolz)
	return d
}

func (d *DebugServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	d.router.ServeHTTP(w, r)
}

func (d *DebugServer) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// poolStats is marshaled through gojay rather than encoding/json since this
// endpoint may be polled at high frequency by a local sidecar.
type poolStats struct {
	Idle  int `json:"idle"`
	Total int `json:"total"`
}

// MarshalJSONObject implements gojay.MarshalerJSONObject.
func (p poolStats) MarshalJSONObject(enc *gojay.Encoder) {
	enc.IntKey("idle", p.Idle)
	enc.IntKey("total", p.Total)
}

// IsNil implements gojay.MarshalerJSONObject.
func (p poolStats) IsNil() bool { return false }

func (d *DebugServer) handlePoolz(w http.ResponseWriter, r *http.Request) {
	idle, total := d.pool.Stats()
	body, err := gojay.MarshalJSONObject(poolStats{Idle: idle, Total: total})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}
