package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.withLogging, withGZip)

			r.Post("/zones/changes", h.zoneChanges)
			r.Post("/zones", h.saveZone)
			r.Delete("/zones/{zoneID}", h.deleteZone)

			r.Post("/records/changes", h.recordChanges)
			r.Post("/records/modify", h.modifyRecords)

			r.Get("/accounts", h.listAccounts)
			r.Post("/accounts", h.saveAccount)

			r.Get("/version", h.getServerVersion)
		})

		// the websocket stream hijacks the connection: no compression or
		// response wrapping
		r.Get("/signals", h.signals)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
