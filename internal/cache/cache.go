// Package cache keeps the last task list received from the backend in a
// local SQLite database, for offline listing.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"taskctl/internal/service"
	"taskctl/internal/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
    position INTEGER PRIMARY KEY,
    id INTEGER,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    priority TEXT NOT NULL DEFAULT '',
    due_date TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL DEFAULT '',
    assigned_user INTEGER
);

CREATE TABLE IF NOT EXISTS snapshot (
    singleton INTEGER PRIMARY KEY CHECK (singleton = 1),
    saved_at DATETIME NOT NULL
);
`

// Cache is a task snapshot backed by SQLite.
type Cache struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens or creates the snapshot database at path.
func Open(path string, logger *zap.Logger) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create cache schema: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{db: db, logger: logger}, nil
}

// Close closes the database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Save replaces the snapshot with tasks, keeping their order.
func (c *Cache) Save(ctx context.Context, tasks []service.Task) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return fmt.Errorf("failed to clear snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (position, id, title, description, priority, due_date, status, assigned_user)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, t := range tasks {
		_, err := stmt.ExecContext(ctx, i,
			nullInt(t.ID), t.Title, t.Description,
			string(t.Priority), t.DueDate, string(t.Status),
			nullInt(t.AssignedUser),
		)
		if err != nil {
			return fmt.Errorf("failed to save task: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshot (singleton, saved_at) VALUES (1, ?)
		ON CONFLICT(singleton) DO UPDATE SET saved_at = excluded.saved_at
	`, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to stamp snapshot: %w", err)
	}

	return tx.Commit()
}

// Load returns the snapshot in stored order and when it was saved.
// A zero time means nothing has been saved.
func (c *Cache) Load(ctx context.Context) ([]service.Task, time.Time, error) {
	var savedAt time.Time
	err := c.db.QueryRowContext(ctx, `SELECT saved_at FROM snapshot WHERE singleton = 1`).Scan(&savedAt)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, `
		SELECT id, title, description, priority, due_date, status, assigned_user
		FROM tasks ORDER BY position
	`)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to read snapshot: %w", err)
	}
	defer rows.Close()

	var tasks []service.Task
	for rows.Next() {
		var (
			t          service.Task
			id, userID sql.NullInt64
			priority   string
			status     string
		)
		if err := rows.Scan(&id, &t.Title, &t.Description, &priority, &t.DueDate, &status, &userID); err != nil {
			return nil, time.Time{}, err
		}
		t.Priority = service.Priority(priority)
		t.Status = service.Status(status)
		if id.Valid {
			t.ID = service.Int64(id.Int64)
		}
		if userID.Valid {
			t.AssignedUser = service.Int64(userID.Int64)
		}
		tasks = append(tasks, t)
	}
	return tasks, savedAt, rows.Err()
}

// Clear removes the snapshot.
func (c *Cache) Clear(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM tasks; DELETE FROM snapshot;`)
	return err
}

// Track keeps the snapshot in step with the store. A fetch saves the
// collection. A fulfilled mutation saves it only once the collection holds a
// full list, from a fetch or from an existing snapshot; otherwise a partial
// list would pass for the server's. The snapshot is dropped when the session
// ends. Returns the unsubscribe function.
func (c *Cache) Track(ctx context.Context, s *store.Store) func() {
	var seeded atomic.Bool
	if ok, err := c.exists(ctx); err != nil {
		c.logger.Warn("failed to read task snapshot", zap.Error(err))
	} else {
		seeded.Store(ok)
	}

	return s.Subscribe(func(st store.State, a store.Action) {
		var err error
		switch a.(type) {
		case store.TasksFetched, store.TasksHydrated:
			seeded.Store(true)
			err = c.Save(ctx, st.Tasks.Tasks)
		case store.TaskCreated, store.TaskUpdated, store.TaskStatusUpdated, store.TaskDeleted:
			if seeded.Load() {
				err = c.Save(ctx, st.Tasks.Tasks)
			}
		case store.LoggedOut, store.SessionExpired:
			seeded.Store(false)
			err = c.Clear(ctx)
		}
		if err != nil {
			c.logger.Warn("failed to update task snapshot", zap.String("action", a.Type()), zap.Error(err))
		}
	})
}

// exists reports whether a snapshot has been saved.
func (c *Cache) exists(ctx context.Context) (bool, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM snapshot`).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func nullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
