package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/readmegen-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/readmegen-cli/internal/core/domain"
	"github.com/custodia-labs/readmegen-cli/internal/core/ports/driven"
)

var _ driven.RecordCache = (*Store)(nil)

// Store is a SQLite-backed implementation of driven.RecordCache.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.readmegen/data/metadata.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".readmegen", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "metadata.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// Get returns the cached record for ref if present and younger than maxAge.
func (s *Store) Get(ctx context.Context, ref domain.RepoRef, maxAge time.Duration) (*domain.RepositoryRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT record, fetched_at FROM repository_records WHERE repo_ref = ?
	`, ref.String())

	var (
		recordJSON string
		fetchedAt  time.Time
	)
	if err := row.Scan(&recordJSON, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("querying record: %w", err)
	}

	if maxAge > 0 && time.Since(fetchedAt) > maxAge {
		return nil, domain.ErrNotFound
	}

	var record domain.RepositoryRecord
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, fmt.Errorf("unmarshalling record: %w", err)
	}
	record.FetchedAt = fetchedAt.UTC()

	return &record, nil
}

// Put stores or replaces the cached record for ref.
func (s *Store) Put(ctx context.Context, ref domain.RepoRef, record *domain.RepositoryRecord) error {
	if record == nil {
		return domain.ErrInvalidInput
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshalling record: %w", err)
	}

	fetchedAt := record.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO repository_records (id, repo_ref, record, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(repo_ref) DO UPDATE SET
			record = excluded.record,
			fetched_at = excluded.fetched_at
	`, uuid.NewString(), ref.String(), string(recordJSON), fetchedAt)
	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}

	return nil
}

// Purge removes the cached record for ref if present.
func (s *Store) Purge(ctx context.Context, ref domain.RepoRef) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM repository_records WHERE repo_ref = ?
	`, ref.String())
	if err != nil {
		return fmt.Errorf("purging record: %w", err)
	}
	return nil
}
