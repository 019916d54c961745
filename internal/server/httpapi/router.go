package httpapi

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/dmitrijs2005/userdesk/internal/server/web"
)

// NewRouter wires the REST routes and the static client assets.
func NewRouter(h *UserHandler, logger logging.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(requestLogger(logger))

	r.Route("/api", func(r chi.Router) {
		r.Get("/usuarios", h.HandleList)
		r.Get("/usuarios/{id}", h.HandleGet)
		r.Post("/usuarios", h.HandleCreate)
		r.Put("/usuarios/{id}", h.HandleUpdate)
		r.Delete("/usuarios/{id}", h.HandleDelete)
	})

	// Static client assets and the entry page.
	static, err := fs.Sub(web.Assets, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/*", http.FileServer(http.FS(static)))

	return r
}
