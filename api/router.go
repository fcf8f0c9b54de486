package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maxpoletaev/kvdns/api/handler"
)

// CreateRouter binds the records and nodes handlers. The metrics handler is
// mounted at /metrics when provided.
func CreateRouter(records handler.RecordService, cluster handler.Cluster, metrics http.Handler) *chi.Mux {
	r := chi.NewRouter()

	handler.NewRecordsHandler(records).Register(r)
	handler.NewNodesHandler(cluster).Register(r)

	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	return r
}
