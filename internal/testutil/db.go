package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/db"
	"github.com/fhuszti/videotube-ms-go/internal/migration"
	"github.com/go-sql-driver/mysql"
)

// NewTestDB creates a migrated database of its own on the server behind rootDSN and drops it
// when the test ends.
func NewTestDB(t *testing.T, rootDSN string) *sql.DB {
	t.Helper()

	cfg, err := mysql.ParseDSN(rootDSN)
	if err != nil {
		t.Fatalf("parse DSN %q: %v", rootDSN, err)
	}
	rootDB, err := sql.Open("mysql", rootDSN)
	if err != nil {
		t.Fatalf("open root DB: %v", err)
	}

	name := fmt.Sprintf("%s_%d", cfg.DBName, time.Now().UnixNano())
	if _, err := rootDB.Exec("CREATE DATABASE " + name); err != nil {
		_ = rootDB.Close()
		t.Fatalf("create database %q: %v", name, err)
	}

	cfg.DBName = name
	dsn, err := db.NormaliseDSN(cfg.FormatDSN(), true)
	if err != nil {
		t.Fatalf("normalise DSN: %v", err)
	}
	testDB, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("open test DB: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
		if _, err := rootDB.Exec("DROP DATABASE " + name); err != nil {
			t.Logf("drop database %q: %v", name, err)
		}
		_ = rootDB.Close()
	})

	if err := migration.MigrateUp(context.Background(), testDB); err != nil {
		t.Fatalf("could not run migrations: %v", err)
	}
	return testDB
}
