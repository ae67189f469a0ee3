package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/rcliao/addressbook/internal/book"
	"github.com/rcliao/addressbook/internal/model"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	path    string
	existed bool
	entropy *rand.Rand
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	_, statErr := os.Stat(dbPath)
	existed := statErr == nil

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		path:    dbPath,
		existed: existed,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS contacts (
		id         TEXT PRIMARY KEY,
		seq        INTEGER NOT NULL,
		name       TEXT NOT NULL UNIQUE,
		birthday   TEXT,
		saved_at   TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_contacts_seq ON contacts(seq);

	CREATE TABLE IF NOT EXISTS phones (
		contact_id TEXT NOT NULL REFERENCES contacts(id) ON DELETE CASCADE,
		seq        INTEGER NOT NULL,
		number     TEXT NOT NULL,
		PRIMARY KEY (contact_id, seq)
	);
	CREATE INDEX IF NOT EXISTS idx_phones_number ON phones(number);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Path() string { return s.path }

// Save replaces every stored contact with the contents of b in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, b *book.Book) error {
	if err := s.save(ctx, b); err != nil {
		return model.NewError("store.sqlite.save", model.KindIOFailure, s.path, err)
	}
	s.existed = true
	return nil
}

func (s *SQLiteStore) save(ctx context.Context, b *book.Book) error {
	now := time.Now().UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM phones`); err != nil {
		return fmt.Errorf("clear phones: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM contacts`); err != nil {
		return fmt.Errorf("clear contacts: %w", err)
	}

	for i, r := range b.Records() {
		id := s.newID()
		var birthday *string
		if bd, ok := r.Birthday(); ok {
			birthday = &bd
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO contacts (id, seq, name, birthday, saved_at) VALUES (?, ?, ?, ?, ?)`,
			id, i, r.Name(), birthday, now)
		if err != nil {
			return fmt.Errorf("insert contact: %w", err)
		}
		for j, p := range r.Phones() {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO phones (contact_id, seq, number) VALUES (?, ?, ?)`,
				id, j, p)
			if err != nil {
				return fmt.Errorf("insert phone: %w", err)
			}
		}
	}

	return tx.Commit()
}

// Load rebuilds the book from the database. Every value passes through the
// record validators, so a tampered row fails the whole load.
func (s *SQLiteStore) Load(ctx context.Context, b *book.Book) (bool, error) {
	if !s.existed {
		return false, nil
	}

	dtos, err := s.loadDTOs(ctx)
	if err != nil {
		return true, model.NewError("store.sqlite.load", model.KindIOFailure, s.path, err)
	}

	rs := make([]*model.Record, 0, len(dtos))
	for _, d := range dtos {
		r, err := book.FromDTO(d)
		if err != nil {
			return true, fmt.Errorf("contact %q: %w", d.Name, err)
		}
		rs = append(rs, r)
	}
	return true, b.Replace(rs)
}

func (s *SQLiteStore) loadDTOs(ctx context.Context) ([]book.RecordDTO, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.id, c.name, c.birthday, p.number
		 FROM contacts c
		 LEFT JOIN phones p ON p.contact_id = c.id
		 ORDER BY c.seq, p.seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dtos []book.RecordDTO
	lastID := ""
	for rows.Next() {
		var id, name string
		var birthday, number sql.NullString
		if err := rows.Scan(&id, &name, &birthday, &number); err != nil {
			return nil, err
		}
		if id != lastID {
			dtos = append(dtos, book.RecordDTO{Name: name, Phones: []string{}, Birthday: birthday.String})
			lastID = id
		}
		if number.Valid {
			cur := &dtos[len(dtos)-1]
			cur.Phones = append(cur.Phones, number.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dtos, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Count returns the number of stored contacts and phone numbers.
func (s *SQLiteStore) Count(ctx context.Context) (contacts, phones int, err error) {
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&contacts); err != nil {
		return 0, 0, err
	}
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM phones`).Scan(&phones); err != nil {
		return 0, 0, err
	}
	return contacts, phones, nil
}
