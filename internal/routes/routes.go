package routes

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"bookmarkpage/internal/app"
)

func SetupRoutes(app *app.Application) *chi.Mux {
	r := chi.NewRouter()

	r.Use(httprate.LimitAll(200, time.Minute))
	r.Use(app.MiddlewareHandler.RequestLogger)
	r.Use(app.MiddlewareHandler.Security)
	r.Use(app.MiddlewareHandler.Cors)

	r.Route("/api/bookmarks", func(r chi.Router) {
		r.Get("/", app.BookmarkHandler.HandlerListBookmarks)
		r.Post("/", app.BookmarkHandler.HandlerCreateBookmark)
		r.Patch("/{id}", app.BookmarkHandler.HandlerUpdateBookmark)
		r.Delete("/{id}", app.BookmarkHandler.HandlerDeleteBookmark)
	})

	return r
}
