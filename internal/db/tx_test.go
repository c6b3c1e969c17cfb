package db

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(`CREATE TABLE kv (k TEXT PRIMARY KEY, v TEXT)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func count(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestWithTx(t *testing.T) {
	db := openTestDB(t)

	err := WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO kv VALUES ('a', '1')`)
		return err
	})
	if err != nil {
		t.Fatalf("WithTx() error = %v", err)
	}
	if n := count(t, db); n != 1 {
		t.Errorf("rows after commit = %d, want 1", n)
	}

	boom := errors.New("boom")
	err = WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO kv VALUES ('b', '2')`); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTx() error = %v, want %v", err, boom)
	}
	if n := count(t, db); n != 1 {
		t.Errorf("rows after rollback = %d, want 1", n)
	}
}

func TestOptional(t *testing.T) {
	if n := Optional(""); n.Valid {
		t.Errorf("Optional(\"\") is valid")
	}
	if n := Optional("fr"); !n.Valid || n.V != "fr" {
		t.Errorf("Optional(fr) = %+v", n)
	}
	if n := Optional(0.0); n.Valid {
		t.Errorf("Optional(0) is valid")
	}
}

func TestValueOr(t *testing.T) {
	if got := ValueOr(sql.Null[float64]{}, 1); got != 1 {
		t.Errorf("ValueOr(NULL) = %v, want 1", got)
	}
	if got := ValueOr(sql.Null[float64]{V: 0.5, Valid: true}, 1); got != 0.5 {
		t.Errorf("ValueOr() = %v, want 0.5", got)
	}
}

func TestOptional_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.Exec(`INSERT INTO kv VALUES ('a', ?), ('b', ?)`, Optional(""), Optional("x")); err != nil {
		t.Fatalf("insert: %v", err)
	}
	var a, b sql.Null[string]
	if err := db.QueryRow(`SELECT v FROM kv WHERE k = 'a'`).Scan(&a); err != nil {
		t.Fatalf("scan a: %v", err)
	}
	if err := db.QueryRow(`SELECT v FROM kv WHERE k = 'b'`).Scan(&b); err != nil {
		t.Fatalf("scan b: %v", err)
	}
	if a.Valid || ValueOr(b, "") != "x" {
		t.Errorf("round trip = %+v, %+v", a, b)
	}
}
