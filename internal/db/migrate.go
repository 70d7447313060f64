package db

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// MigrationsDir is the default migrations location inside an application.
const MigrationsDir = "db/migrations"

// Migration is one pending or applied migration file pair.
type Migration struct {
	Version string // timestamp prefix, e.g. "20250824121715"
	Name    string // e.g. "create_posts"
	UpPath  string
}

// MigrationStatus pairs a migration with its applied state.
type MigrationStatus struct {
	Migration
	Applied   bool
	AppliedAt time.Time
}

var migrationFilePattern = regexp.MustCompile(`^(\d{14})_([a-z0-9_]+)\.up\.sql$`)

// ParseMigrationFilename splits a migration filename into version and name.
func ParseMigrationFilename(filename string) (version, name string, ok bool) {
	m := migrationFilePattern.FindStringSubmatch(filename)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// LoadMigrations scans dir for .up.sql files and returns them in version order.
func LoadMigrations(fsys afero.Fs, dir string) ([]Migration, error) {
	infos, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory %s: %w", dir, err)
	}

	var migrations []Migration
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		version, name, ok := ParseMigrationFilename(info.Name())
		if !ok {
			continue
		}
		migrations = append(migrations, Migration{
			Version: version,
			Name:    name,
			UpPath:  filepath.Join(dir, info.Name()),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

// ReadRevision extracts the ULID revision from a migration file header,
// or "" when the header is missing.
func ReadRevision(content []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		if rev, ok := strings.CutPrefix(line, "-- revision: "); ok {
			return strings.TrimSpace(rev)
		}
		if !strings.HasPrefix(line, "--") {
			break
		}
	}
	return ""
}

// Migrate applies every pending migration in version order. The database is
// created first when missing. Each migration runs inside its own transaction.
func (m *Manager) Migrate(ctx context.Context, fsys afero.Fs, dir string) error {
	exists, err := m.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintf(m.out, "database %q does not exist, creating it first\n", m.dbName)
		if err := m.Create(ctx); err != nil {
			return err
		}
	}

	migrations, err := LoadMigrations(fsys, dir)
	if err != nil {
		return err
	}

	conn, err := sql.Open("postgres", m.databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close()

	if err := ensureSchemaMigrations(ctx, conn); err != nil {
		return err
	}

	applied, err := appliedVersions(ctx, conn)
	if err != nil {
		return err
	}

	pending := 0
	for _, migration := range migrations {
		if _, ok := applied[migration.Version]; ok {
			continue
		}
		if err := m.apply(ctx, conn, fsys, migration); err != nil {
			return err
		}
		pending++
	}

	if pending == 0 {
		fmt.Fprintln(m.out, "database is up to date")
	} else {
		fmt.Fprintf(m.out, "applied %d migration(s)\n", pending)
	}
	return nil
}

func (m *Manager) apply(ctx context.Context, conn *sql.DB, fsys afero.Fs, migration Migration) error {
	content, err := afero.ReadFile(fsys, migration.UpPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", migration.UpPath, err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		tx.Rollback()
		return fmt.Errorf("migration %s_%s failed: %w", migration.Version, migration.Name, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, revision, applied_at) VALUES ($1, $2, now())",
		migration.Version, ReadRevision(content),
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %s: %w", migration.Version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %s: %w", migration.Version, err)
	}

	fmt.Fprintf(m.out, "APPLIED: %s_%s\n", migration.Version, migration.Name)
	return nil
}

// Status returns every migration with its applied state. When the database
// does not exist yet, all migrations are reported as pending.
func (m *Manager) Status(ctx context.Context, fsys afero.Fs, dir string) ([]MigrationStatus, error) {
	migrations, err := LoadMigrations(fsys, dir)
	if err != nil {
		return nil, err
	}

	exists, err := m.Exists(ctx)
	if err != nil {
		return nil, err
	}

	applied := map[string]time.Time{}
	if exists {
		conn, err := sql.Open("postgres", m.databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		defer conn.Close()

		if err := ensureSchemaMigrations(ctx, conn); err != nil {
			return nil, err
		}
		if applied, err = appliedAt(ctx, conn); err != nil {
			return nil, err
		}
	}

	statuses := make([]MigrationStatus, 0, len(migrations))
	for _, migration := range migrations {
		at, ok := applied[migration.Version]
		statuses = append(statuses, MigrationStatus{
			Migration: migration,
			Applied:   ok,
			AppliedAt: at,
		})
	}
	return statuses, nil
}

func ensureSchemaMigrations(ctx context.Context, conn *sql.DB) error {
	_, err := conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    text PRIMARY KEY,
			revision   text NOT NULL DEFAULT '',
			applied_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}
	return nil
}

func appliedVersions(ctx context.Context, conn *sql.DB) (map[string]struct{}, error) {
	rows, err := conn.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to query schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := map[string]struct{}{}
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, err
		}
		applied[version] = struct{}{}
	}
	return applied, rows.Err()
}

func appliedAt(ctx context.Context, conn *sql.DB) (map[string]time.Time, error) {
	rows, err := conn.QueryContext(ctx, "SELECT version, applied_at FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to query schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := map[string]time.Time{}
	for rows.Next() {
		var version string
		var at time.Time
		if err := rows.Scan(&version, &at); err != nil {
			return nil, err
		}
		applied[version] = at
	}
	return applied, rows.Err()
}
