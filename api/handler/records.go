package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/maxpoletaev/kvdns/api/model"
	"github.com/maxpoletaev/kvdns/records"
)

type RecordsHandler struct {
	records RecordService
}

func NewRecordsHandler(records RecordService) *RecordsHandler {
	return &RecordsHandler{
		records: records,
	}
}

func (api *RecordsHandler) Register(r chi.Router) {
	r.Get("/records/{name}", api.getRecord)
	r.Put("/records/{name}", api.putRecord)
	r.Delete("/records/{name}", api.deleteRecord)
}

func (api *RecordsHandler) getRecord(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	rec, err := api.records.Lookup(r.Context(), name)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, model.Record{
		Name: rec.Name,
		IP:   rec.Addr.String(),
	})
}

func (api *RecordsHandler) putRecord(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var params model.PutRecordParams
	if err := render.DecodeJSON(r.Body, &params); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, model.ErrorResponse{Error: err.Error()})

		return
	}

	rec, err := api.records.Publish(r.Context(), name, params.IP)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.JSON(w, r, model.Record{
		Name: rec.Name,
		IP:   rec.Addr.String(),
	})
}

func (api *RecordsHandler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := api.records.Unpublish(r.Context(), name); err != nil {
		renderError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusServiceUnavailable

	switch {
	case errors.Is(err, records.ErrInvalidRecord):
		status = http.StatusBadRequest
	case errors.Is(err, records.ErrNotFound):
		status = http.StatusNotFound
	}

	render.Status(r, status)
	render.JSON(w, r, model.ErrorResponse{Error: err.Error()})
}
