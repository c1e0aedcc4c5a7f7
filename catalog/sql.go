package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"github.com/mmuldo/threadmatch/palette"
	_ "modernc.org/sqlite"
)

// DefaultQuery selects threads from the conventional table layout.
const DefaultQuery = "SELECT id, name, r, g, b FROM threads ORDER BY position"

// Open connects to a catalog database. postgres:// and postgresql:// DSNs use
// PostgreSQL; anything else is treated as a SQLite path, with an optional
// sqlite: prefix.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	driver := "sqlite"
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		driver = "postgres"
	case strings.HasPrefix(dsn, "sqlite://"):
		dsn = strings.TrimPrefix(dsn, "sqlite://")
	case strings.HasPrefix(dsn, "sqlite:"):
		dsn = strings.TrimPrefix(dsn, "sqlite:")
	}

	db, e := sql.Open(driver, dsn)
	if e != nil {
		return nil, fmt.Errorf("open %s: %w", driver, e)
	}
	if e := db.PingContext(ctx); e != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, e)
	}
	return db, nil
}

// LoadSQL reads (id, name, r, g, b) rows returned by query, in row order.
func LoadSQL(ctx context.Context, db *sql.DB, query string) (palette.Palette, error) {
	if query == "" {
		query = DefaultQuery
	}
	rows, e := db.QueryContext(ctx, query)
	if e != nil {
		return nil, fmt.Errorf("query threads: %w", e)
	}
	defer rows.Close()

	var threads []palette.Thread
	for rows.Next() {
		var id, name string
		var r, g, b int
		if e := rows.Scan(&id, &name, &r, &g, &b); e != nil {
			return nil, fmt.Errorf("scan thread: %w", e)
		}
		if !isByte(r) || !isByte(g) || !isByte(b) {
			return nil, fmt.Errorf("thread %s: channel out of range (%d, %d, %d)", id, r, g, b)
		}
		rgb := palette.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
		threads = append(threads, palette.NewThread(id, name, rgb))
	}
	if e := rows.Err(); e != nil {
		return nil, fmt.Errorf("read threads: %w", e)
	}
	return palette.New(threads...)
}

func isByte(v int) bool {
	return v >= 0 && v <= 255
}
