package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"bookmarkpage/internal/models"
)

type SQLiteBookmarkStore struct {
	db *Database
}

func NewSQLiteBookmarkStore(db *Database) *SQLiteBookmarkStore {
	return &SQLiteBookmarkStore{db: db}
}

type BookmarkStore interface {
	ListBookmarks() ([]models.BookmarkRow, error)
	CreateBookmark(title, url string) (models.BookmarkRow, error)
	UpdateBookmark(id int64, title, url *string) (models.BookmarkRow, error)
	DeleteBookmark(id int64) error
}

func (s *SQLiteBookmarkStore) ListBookmarks() ([]models.BookmarkRow, error) {
	rows := []models.BookmarkRow{}

	query := `
	SELECT bookmark_id, title, url FROM bookmarks
	ORDER BY bookmark_id
	`

	if err := s.db.db.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("failed to select bookmarks: %w", err)
	}
	return rows, nil
}

func (s *SQLiteBookmarkStore) CreateBookmark(title, url string) (models.BookmarkRow, error) {
	query := `
	INSERT INTO bookmarks (title, url)
	VALUES (?, ?)
	`

	res, err := s.db.db.Exec(query, title, url)
	if err != nil {
		if isUniqueViolation(err) {
			return models.BookmarkRow{}, ErrDuplicateURL
		}
		return models.BookmarkRow{}, fmt.Errorf("failed to insert bookmark: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return models.BookmarkRow{}, fmt.Errorf("failed to get last insert ID: %w", err)
	}

	return models.BookmarkRow{ID: id, Title: title, URL: url}, nil
}

// UpdateBookmark applies only the supplied fields, then re-reads the
// row so the caller sees exactly what was persisted.
func (s *SQLiteBookmarkStore) UpdateBookmark(id int64, title, url *string) (models.BookmarkRow, error) {
	sets := []string{}
	args := []interface{}{}
	if title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *title)
	}
	if url != nil {
		sets = append(sets, "url = ?")
		args = append(args, *url)
	}
	if len(sets) == 0 {
		return models.BookmarkRow{}, fmt.Errorf("no fields to update")
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE bookmarks SET %s WHERE bookmark_id = ?`, strings.Join(sets, ", "))
	res, err := s.db.db.Exec(query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return models.BookmarkRow{}, ErrDuplicateURL
		}
		return models.BookmarkRow{}, fmt.Errorf("failed to update bookmark: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.BookmarkRow{}, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return models.BookmarkRow{}, ErrNotFound
	}

	var row models.BookmarkRow
	err = s.db.db.Get(&row, `SELECT bookmark_id, title, url FROM bookmarks WHERE bookmark_id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookmarkRow{}, ErrNotFound
		}
		return models.BookmarkRow{}, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return row, nil
}

func (s *SQLiteBookmarkStore) DeleteBookmark(id int64) error {
	query := `
	DELETE FROM bookmarks
	WHERE bookmark_id = ?
	`

	res, err := s.db.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
