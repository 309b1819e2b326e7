package test

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	database "taskapp/internal/adapter/database/sqlite"
)

type TestSetup[T any] struct {
	DB   *database.DB
	Repo *T
}

// findProjectRoot walks up from this file until it sees go.mod, so tests
// can locate db/migrations regardless of which package runs them.
func findProjectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)

		if parent == dir {
			break
		}

		dir = parent
	}

	if wd, err := os.Getwd(); err == nil {
		return wd
	}

	log.Fatal("could not find project root directory")
	return ""
}

// InitTestDB opens an in-memory sqlite database and migrates it. The pool
// is pinned to a single connection because each :memory: connection is its
// own database.
func InitTestDB() *database.DB {
	db, err := sql.Open("sqlite3", ":memory:")

	if err != nil {
		log.Fatal(err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		log.Fatal(err)
	}

	projectRoot := findProjectRoot()
	migrationsPath := filepath.Join(projectRoot, "db", "migrations")

	if err := database.RunMigrations(db, migrationsPath); err != nil {
		log.Fatal(err)
	}

	return database.Wrap(db)
}

func SetupTest[T any](t *testing.T, repo *T) *TestSetup[T] {
	db := InitTestDB()

	return &TestSetup[T]{
		DB:   db,
		Repo: repo,
	}
}

func TeardownTest[T any](t *testing.T, setup *TestSetup[T]) {
	if setup.DB != nil {
		CleanDB(t, setup)
		setup.DB.Close()
	}
}

func CleanDB[T any](t *testing.T, setup *TestSetup[T]) {
	rows, err := setup.DB.Query("SELECT name FROM sqlite_master WHERE type = 'table' and name not in ('sqlite_sequence', 'schema_migrations')")

	if err != nil {
		t.Fatalf("failed to query tables: %v", err)
	}

	defer rows.Close()

	var tables []string

	for rows.Next() {
		var table string

		if err := rows.Scan(&table); err != nil {
			t.Fatalf("failed to scan table name: %v", err)
		}

		tables = append(tables, strings.TrimSpace(table))
	}

	if err := rows.Err(); err != nil {
		t.Fatalf("error iterating over rows: %v", err)
	}

	for _, table := range tables {
		if _, err := setup.DB.Exec("DELETE FROM " + table); err != nil {
			t.Fatalf("failed to clean table %s: %v", table, err)
		}
	}
}
