package app

import (
	"github.com/rs/zerolog"

	"bookmarkpage/internal/config"
	"bookmarkpage/internal/handlers"
	"bookmarkpage/internal/middlewares"
	"bookmarkpage/internal/store"
)

type Application struct {
	Logger            zerolog.Logger
	Config            *config.Config
	DB                *store.Database
	MiddlewareHandler *middlewares.MiddlewareHandler
	BookmarkHandler   *handlers.BookmarkHandler
}

func NewApplication(cfg *config.Config, logger zerolog.Logger) (*Application, error) {
	db, err := store.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	bookmarkStore := store.NewSQLiteBookmarkStore(db)

	bookmarkHandler := handlers.NewBookmarkHandler(bookmarkStore, logger)
	middlewareHandler := middlewares.NewMiddlewareHandler(logger, cfg.FrontendURL)

	app := &Application{
		Logger:            logger,
		Config:            cfg,
		DB:                db,
		MiddlewareHandler: middlewareHandler,
		BookmarkHandler:   bookmarkHandler,
	}

	return app, nil
}

func (a *Application) Close() error {
	return a.DB.Close()
}
