package sqlite

const createReviewsSQL = `
CREATE TABLE IF NOT EXISTS local_reviews (
  id         INTEGER PRIMARY KEY AUTOINCREMENT,
  place_id   INTEGER NOT NULL,
  rating     REAL    NOT NULL,
  author     TEXT    NOT NULL DEFAULT '',
  title      TEXT    NOT NULL DEFAULT '',
  body       TEXT    NOT NULL DEFAULT '',
  created_at TEXT    NOT NULL DEFAULT (strftime('%Y-%m-%d', 'now'))
)
`

const createPlaceIdxSQL = `
CREATE INDEX IF NOT EXISTS idx_local_reviews_place ON local_reviews(place_id)
`

const insertReviewSQL = `
INSERT INTO local_reviews (place_id, rating, author, title, body)
VALUES (?, ?, ?, ?, ?)
`

// rowid order = insertion order; the merge step relies on it.
const listReviewsSQL = `
SELECT place_id, rating, author, title, body, created_at
FROM local_reviews
ORDER BY id
`
