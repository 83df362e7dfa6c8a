package controllers

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ForumLoop/models"
)

// Test fixture data for use in tests

// MockUser creates a sample user for testing
func MockUser() models.User {
	return models.User{
		ID:         "user-123",
		Username:   "dicoding",
		Fullname:   "Dicoding Indonesia",
		Created_At: "2023-01-01T00:00:00Z",
		Updated_At: "2023-01-01T00:00:00Z",
	}
}

// MockUserWithPassword creates a sample user with a bcrypt hashed password.
// Password is "secret" - use this in tests.
func MockUserWithPassword() models.User {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	user := MockUser()
	user.Password = string(hashedPassword)
	return user
}
