// Package db manages the PostgreSQL database of an orbin application:
// creation, teardown and SQL migrations.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/lib/pq" // also registers the postgres driver
)

// Manager performs administrative operations against a PostgreSQL server.
type Manager struct {
	databaseURL string
	adminURL    string
	dbName      string
	out         io.Writer
}

// NewManager parses databaseURL and prepares a manager. The admin URL is
// derived by swapping the database name for "postgres", which is needed for
// CREATE/DROP DATABASE statements that cannot run inside the target database.
func NewManager(databaseURL string, out io.Writer) (*Manager, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is empty (set DATABASE_URL or config/database.yml)")
	}

	parsed, err := url.Parse(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid database URL: %w", err)
	}
	if parsed.Scheme != "postgres" && parsed.Scheme != "postgresql" {
		return nil, fmt.Errorf("unsupported database scheme %q (only postgres is supported)", parsed.Scheme)
	}

	dbName := strings.TrimPrefix(parsed.Path, "/")
	if dbName == "" || strings.Contains(dbName, "/") {
		return nil, fmt.Errorf("database URL %q has no database name", databaseURL)
	}

	admin := *parsed
	admin.Path = "/postgres"

	return &Manager{
		databaseURL: databaseURL,
		adminURL:    admin.String(),
		dbName:      dbName,
		out:         out,
	}, nil
}

// Name returns the database name from the connection URL.
func (m *Manager) Name() string {
	return m.dbName
}

// AdminURL returns the derived administrative connection URL.
func (m *Manager) AdminURL() string {
	return m.adminURL
}

// Exists reports whether the database exists on the server.
func (m *Manager) Exists(ctx context.Context) (bool, error) {
	conn, err := sql.Open("postgres", m.adminURL)
	if err != nil {
		return false, fmt.Errorf("failed to connect to server: %w", err)
	}
	defer conn.Close()

	var one int
	err = conn.QueryRowContext(ctx, "SELECT 1 FROM pg_database WHERE datname = $1", m.dbName).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check database existence: %w", err)
	}
	return true, nil
}

// Create creates the database unless it already exists.
func (m *Manager) Create(ctx context.Context) error {
	exists, err := m.Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		fmt.Fprintf(m.out, "database %q already exists\n", m.dbName)
		return nil
	}

	conn, err := sql.Open("postgres", m.adminURL)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer conn.Close()

	// CREATE DATABASE does not accept bind parameters; quote the identifier.
	stmt := fmt.Sprintf("CREATE DATABASE %s", pq.QuoteIdentifier(m.dbName))
	if _, err := conn.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("failed to create database %q: %w", m.dbName, err)
	}

	fmt.Fprintf(m.out, "created database %q\n", m.dbName)
	return nil
}

// Drop removes the database if it exists.
func (m *Manager) Drop(ctx context.Context) error {
	conn, err := sql.Open("postgres", m.adminURL)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer conn.Close()

	stmt := fmt.Sprintf("DROP DATABASE IF EXISTS %s", pq.QuoteIdentifier(m.dbName))
	if _, err := conn.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("failed to drop database %q: %w", m.dbName, err)
	}

	fmt.Fprintf(m.out, "dropped database %q\n", m.dbName)
	return nil
}
