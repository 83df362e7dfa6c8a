package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)

// newMockDB wires a sqlmock connection behind a goqu handle.
func newMockDB(t *testing.T) (*goqu.Database, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	return goqu.New("postgres", db), mock, func() { db.Close() }
}

// fixedID pins the random id part so inserts are deterministic.
func fixedID() string {
	return "123"
}
