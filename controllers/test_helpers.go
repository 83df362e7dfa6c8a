package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/gin-gonic/gin"

	"github.com/ForumLoop/models"
)

// SetupTestDB creates a mock database wrapped in a goqu handle for testing
func SetupTestDB(t *testing.T) (*goqu.Database, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}

	return goqu.New("postgres", db), mock, func() { db.Close() }
}

// SetupTestContext creates a test Gin context with a response recorder
func SetupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

// SetAuthenticatedUser sets the currentUser value in the Gin context.
// This simulates what the CheckAuth middleware does.
func SetAuthenticatedUser(c *gin.Context, user models.User) {
	c.Set("currentUser", user)
}
