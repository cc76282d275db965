package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"vending-machine/internal/config"
)

type postgresJournal struct {
	db *sql.DB
}

// NewPostgres wraps an open connection in a Journal writing to the
// vend_events table.
func NewPostgres(db *sql.DB) Journal {
	return &postgresJournal{db: db}
}

func (j *postgresJournal) Record(event Event) error {
	_, err := j.db.Exec(
		"INSERT INTO vend_events (id, kind, selector, amount, ejected, occurred_at) VALUES ($1, $2, $3, $4, $5, $6)",
		event.ID, event.Kind, event.Selector, event.Amount, event.Ejected, event.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert vend event: %w", err)
	}
	return nil
}

// Connect opens the journal database described by cfg.
func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseUser,
		cfg.DatabasePassword,
		cfg.DatabaseName,
	)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
