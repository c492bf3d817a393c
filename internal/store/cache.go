package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func Migrate(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS registry_cache (
  term TEXT NOT NULL,
  page_size INTEGER NOT NULL,
  body BLOB NOT NULL,
  fetched_at TEXT NOT NULL,
  PRIMARY KEY (term, page_size)
);
`)
	return err
}

// ResponseCache is a TTL'd cache of raw registry response bodies. Only
// upstream bodies are stored; scored leads are always rebuilt per request.
type ResponseCache struct {
	DB  *sql.DB
	TTL time.Duration
	Now func() time.Time // nil means time.Now
}

func (c *ResponseCache) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *ResponseCache) Get(ctx context.Context, term string, pageSize int) ([]byte, bool, error) {
	var body []byte
	var fetchedAt string
	err := c.DB.QueryRowContext(ctx,
		`SELECT body, fetched_at FROM registry_cache WHERE term = ? AND page_size = ?;`,
		term, pageSize,
	).Scan(&body, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	at, err := time.Parse(time.RFC3339, fetchedAt)
	if err != nil || c.now().Sub(at) > c.TTL {
		return nil, false, nil
	}
	return body, true, nil
}

func (c *ResponseCache) Put(ctx context.Context, term string, pageSize int, body []byte) error {
	_, err := c.DB.ExecContext(ctx,
		`INSERT OR REPLACE INTO registry_cache (term, page_size, body, fetched_at) VALUES (?, ?, ?, ?);`,
		term, pageSize, body, c.now().UTC().Format(time.RFC3339),
	)
	return err
}

// Purge drops entries older than the TTL and reports how many went.
func (c *ResponseCache) Purge(ctx context.Context) (int64, error) {
	cutoff := c.now().Add(-c.TTL).UTC().Format(time.RFC3339)
	res, err := c.DB.ExecContext(ctx,
		`DELETE FROM registry_cache WHERE fetched_at < ?;`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
