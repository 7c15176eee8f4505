package clinic

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Message is a contact form submission.
type Message struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Subject   string
	Body      string
	CreatedAt time.Time
}

// Name returns the sender's full name.
func (m Message) Name() string {
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}

// Inbox stores contact messages in SQLite.
type Inbox struct {
	db *sql.DB
}

// OpenInbox opens (or creates) the SQLite database at path, ensures the
// data directory exists, and creates the schema.
func OpenInbox(path string) (*Inbox, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("clinic: create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("clinic: open inbox: %w", err)
	}
	// WAL lets the admin page read while a submission is written;
	// busy_timeout makes writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("clinic: configure inbox: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	in := &Inbox{db: db}
	if err := in.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return in, nil
}

// Close closes the underlying database connection.
func (in *Inbox) Close() error {
	return in.db.Close()
}

func (in *Inbox) ensureSchema() error {
	_, err := in.db.Exec(`
CREATE TABLE IF NOT EXISTS messages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL DEFAULT '',
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    subject TEXT NOT NULL DEFAULT '',
    body TEXT NOT NULL,
    created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS messages_created ON messages (created_at DESC);
`)
	if err != nil {
		return fmt.Errorf("clinic: inbox schema: %w", err)
	}
	return nil
}

// Save validates and stores m, returning its id. CreatedAt defaults to now.
func (in *Inbox) Save(m Message) (int64, error) {
	if err := m.Validate(); err != nil {
		return 0, err
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	res, err := in.db.Exec(`INSERT INTO messages (first_name, last_name, email, phone, subject, body, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.FirstName, m.LastName, m.Email, m.Phone, m.Subject, m.Body, m.CreatedAt.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("clinic: save message: %w", err)
	}
	return res.LastInsertId()
}

// List returns every message, newest first.
func (in *Inbox) List() ([]Message, error) {
	rows, err := in.db.Query(`SELECT id, first_name, last_name, email, phone, subject, body, created_at FROM messages ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("clinic: list messages: %w", err)
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		var created int64
		if err := rows.Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.Subject, &m.Body, &created); err != nil {
			return nil, err
		}
		m.CreatedAt = time.UnixMilli(created)
		out = append(out, m)
	}
	return out, rows.Err()
}

// Get returns the message with id, or ErrNotFound.
func (in *Inbox) Get(id int64) (Message, error) {
	var m Message
	var created int64
	err := in.db.QueryRow(`SELECT id, first_name, last_name, email, phone, subject, body, created_at FROM messages WHERE id = ?`, id).
		Scan(&m.ID, &m.FirstName, &m.LastName, &m.Email, &m.Phone, &m.Subject, &m.Body, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return Message{}, ErrNotFound
	}
	if err != nil {
		return Message{}, fmt.Errorf("clinic: get message: %w", err)
	}
	m.CreatedAt = time.UnixMilli(created)
	return m, nil
}

// Delete removes the message with id. Deleting a missing id returns
// ErrNotFound.
func (in *Inbox) Delete(id int64) error {
	res, err := in.db.Exec(`DELETE FROM messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("clinic: delete message: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored messages.
func (in *Inbox) Count() (int, error) {
	var n int
	if err := in.db.QueryRow(`SELECT COUNT(*) FROM messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("clinic: count messages: %w", err)
	}
	return n, nil
}
