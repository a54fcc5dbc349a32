package sqlite

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"placedir/internal/domain"
)

// Store persists locally-submitted reviews in an embedded sqlite file.
// Access is synchronous and single-actor; entries are merged after the
// remote review dataset on every rebuild.
type Store struct{ db *sql.DB }

func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) EnsureSchema() error {
	if _, err := s.db.Exec(createReviewsSQL); err != nil {
		return err
	}
	_, err := s.db.Exec(createPlaceIdxSQL)
	return err
}

// Add appends a review. Ratings are stored as given, without validation.
func (s *Store) Add(ctx context.Context, r domain.Review) error {
	_, err := s.db.ExecContext(ctx, insertReviewSQL, r.PlaceID, r.Rating, r.Author, r.Title, r.Text)
	return err
}

// ListAll returns every local review in insertion order, tagged with
// source "local".
func (s *Store) ListAll(ctx context.Context) ([]domain.Review, error) {
	rows, err := s.db.QueryContext(ctx, listReviewsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Review
	for rows.Next() {
		var r domain.Review
		if err := rows.Scan(&r.PlaceID, &r.Rating, &r.Author, &r.Title, &r.Text, &r.Date); err != nil {
			return nil, err
		}
		r.Source = "local"
		out = append(out, r)
	}
	return out, rows.Err()
}
