package models

import (
	"fmt"
	"strconv"
)

// BookmarkID is the API-side identifier for a bookmark. It is only ever
// produced by NewBookmarkID or ParseBookmarkID, so an arbitrary string
// cannot be used as an id without passing validation first.
type BookmarkID string

func NewBookmarkID(id int64) BookmarkID {
	return BookmarkID(strconv.FormatInt(id, 10))
}

// ParseBookmarkID validates a route path segment as a bookmark id. The
// segment must be a strictly positive decimal integer: no sign, no
// leading zero, no decimal point.
func ParseBookmarkID(s string) (BookmarkID, error) {
	if s == "" {
		return "", fmt.Errorf("bookmark id is empty")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("bookmark id must be a positive integer, got %q", s)
		}
	}
	if s[0] == '0' {
		return "", fmt.Errorf("bookmark id must be a positive integer, got %q", s)
	}
	if _, err := strconv.ParseInt(s, 10, 64); err != nil {
		return "", fmt.Errorf("bookmark id out of range: %q", s)
	}
	return BookmarkID(s), nil
}

func (id BookmarkID) Int64() int64 {
	n, _ := strconv.ParseInt(string(id), 10, 64)
	return n
}

// BookmarkRow is the storage shape of a bookmark; Bookmark is the API
// shape. ToAPI is the single place the numeric id becomes a string.
type BookmarkRow struct {
	ID    int64  `db:"bookmark_id"`
	Title string `db:"title"`
	URL   string `db:"url"`
}

type Bookmark struct {
	ID    BookmarkID `json:"id"`
	Title string     `json:"title"`
	URL   string     `json:"url"`
}

func (r BookmarkRow) ToAPI() Bookmark {
	return Bookmark{
		ID:    NewBookmarkID(r.ID),
		Title: r.Title,
		URL:   r.URL,
	}
}
