package shared

import (
	"path/filepath"
	"testing"
)

func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "finance.db")
}

func TestMigrations(t *testing.T) {
	t.Run("RunMigrations creates the schema", func(t *testing.T) {
		db, err := NewDatabase(testDB(t))
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}

		tables := []string{
			"recurring_payments", "recurring_income", "one_time_payments",
			"payment_history", "recent_transactions", "monthly_summary",
			"app_settings", "notification_runs",
		}
		for _, table := range tables {
			var name string
			err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
			if err != nil {
				t.Errorf("table %s should exist: %v", table, err)
			}
		}
	})

	t.Run("RunMigrations is idempotent", func(t *testing.T) {
		db, err := NewDatabase(testDB(t))
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("first run failed: %v", err)
		}
		if err := RunMigrations(db); err != nil {
			t.Fatalf("second run failed: %v", err)
		}

		var count int
		if err := db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count); err != nil {
			t.Fatalf("failed to count migrations: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 applied migration, got %d", count)
		}
	})

	t.Run("RollbackMigration drops the schema", func(t *testing.T) {
		db, err := NewDatabase(testDB(t))
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		if err := RunMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
		if err := RollbackMigration(db); err != nil {
			t.Fatalf("failed to rollback: %v", err)
		}

		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'recurring_payments'").Scan(&name)
		if err == nil {
			t.Error("recurring_payments should be dropped after rollback")
		}

		if err := RollbackMigration(db); err == nil {
			t.Error("rollback with nothing applied should fail")
		}
	})
}

func TestNewDatabase(t *testing.T) {
	t.Run("opens and pings", func(t *testing.T) {
		db, err := NewDatabase(testDB(t))
		if err != nil {
			t.Fatalf("failed to open database: %v", err)
		}
		defer db.Close()

		var mode string
		if err := db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
			t.Fatalf("failed to read journal mode: %v", err)
		}
		if mode != "wal" {
			t.Errorf("expected WAL journal mode, got %s", mode)
		}
	})
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	if a == b {
		t.Error("ids should be unique")
	}
	if len(a) != 36 {
		t.Errorf("expected uuid string, got %s", a)
	}
}
