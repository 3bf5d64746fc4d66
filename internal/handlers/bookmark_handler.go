package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"bookmarkpage/internal/models"
	"bookmarkpage/internal/store"
	"bookmarkpage/internal/utils"
	"bookmarkpage/internal/validation"
)

type BookmarkHandler struct {
	BookmarkStore store.BookmarkStore
	Logger        zerolog.Logger
}

func NewBookmarkHandler(bookmarkStore store.BookmarkStore, logger zerolog.Logger) *BookmarkHandler {
	return &BookmarkHandler{
		BookmarkStore: bookmarkStore,
		Logger:        logger,
	}
}

func (bh *BookmarkHandler) HandlerListBookmarks(w http.ResponseWriter, r *http.Request) {
	rows, err := bh.BookmarkStore.ListBookmarks()
	if err != nil {
		bh.Logger.Error().Err(err).Msg(models.LogFetchBookmarksFailed)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.Envelope{"message": models.MsgInternalServerError})
		return
	}

	bookmarks := make([]models.Bookmark, 0, len(rows))
	for _, row := range rows {
		bookmarks = append(bookmarks, row.ToAPI())
	}

	utils.WriteJSON(w, http.StatusOK, utils.Envelope{"bookmarks": bookmarks})
}

func (bh *BookmarkHandler) HandlerCreateBookmark(w http.ResponseWriter, r *http.Request) {
	var req validation.CreateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		bh.Logger.Error().Err(err).Msg("Error decoding request body in handler")
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"message": models.MsgBadRequest})
		return
	}

	if verr := req.Validate(); verr != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"message": verr.Message})
		return
	}

	row, err := bh.BookmarkStore.CreateBookmark(req.Title, req.URL)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateURL) {
			utils.WriteJSON(w, http.StatusConflict, utils.Envelope{"message": models.MsgDuplicateURL})
			return
		}
		bh.Logger.Error().Err(err).Msg(models.LogCreateBookmarkFailed)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.Envelope{"message": models.MsgInternalServerError})
		return
	}

	utils.WriteJSON(w, http.StatusCreated, row.ToAPI())
}

func (bh *BookmarkHandler) HandlerUpdateBookmark(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseBookmarkID(chi.URLParam(r, "id"))
	if err != nil {
		bh.Logger.Error().Err(err).Msg("Invalid bookmark id in url")
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"message": models.MsgBadRequest})
		return
	}

	var req validation.UpdateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		bh.Logger.Error().Err(err).Msg("Error decoding request body in handler")
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"message": models.MsgBadRequest})
		return
	}

	if verr := req.Validate(); verr != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"message": verr.Message})
		return
	}

	row, err := bh.BookmarkStore.UpdateBookmark(id.Int64(), req.Title, req.URL)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			utils.WriteJSON(w, http.StatusNotFound, utils.Envelope{"message": models.MsgBookmarkNotFound})
		case errors.Is(err, store.ErrDuplicateURL):
			utils.WriteJSON(w, http.StatusConflict, utils.Envelope{"message": models.MsgDuplicateURL})
		default:
			bh.Logger.Error().Err(err).Msg(models.LogUpdateBookmarkFailed)
			utils.WriteJSON(w, http.StatusInternalServerError, utils.Envelope{"message": models.MsgInternalServerError})
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, row.ToAPI())
}

func (bh *BookmarkHandler) HandlerDeleteBookmark(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParseBookmarkID(chi.URLParam(r, "id"))
	if err != nil {
		bh.Logger.Error().Err(err).Msg("Invalid bookmark id in url")
		utils.WriteJSON(w, http.StatusBadRequest, utils.Envelope{"message": models.MsgBadRequest})
		return
	}

	err = bh.BookmarkStore.DeleteBookmark(id.Int64())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteJSON(w, http.StatusNotFound, utils.Envelope{"message": models.MsgBookmarkNotFound})
			return
		}
		bh.Logger.Error().Err(err).Msg(models.LogDeleteBookmarkFailed)
		utils.WriteJSON(w, http.StatusInternalServerError, utils.Envelope{"message": models.MsgInternalServerError})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
