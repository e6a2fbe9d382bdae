package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/models"
)

func TestRegister_MintsSequentialIDs(t *testing.T) {
	setupTestDB(t)

	first := registerUser(t, "Ada", "ada@teamtrack.io")
	second := registerUser(t, "Bob", "bob@teamtrack.io")

	assert.Equal(t, "User-00001", first.UserID)
	assert.Equal(t, "User-00002", second.UserID)
	assert.Equal(t, models.UserTypeUser, first.UserType)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	setupTestDB(t)
	registerUser(t, "Ada", "ada@teamtrack.io")

	_, err := Register(dto.RegisterRequest{Name: "Imposter", Email: "ada@teamtrack.io", Password: "hunter22"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestLogin_IssuesValidToken(t *testing.T) {
	setupTestDB(t)
	user := registerUser(t, "Ada", "ada@teamtrack.io")

	resp, err := Login(dto.LoginRequest{Email: "ada@teamtrack.io", Password: "hunter22"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, claims.UserID)
	assert.Equal(t, "ada@teamtrack.io", claims.Email)
	assert.Equal(t, string(models.UserTypeUser), claims.UserType)
}

func TestLogin_WrongPassword(t *testing.T) {
	setupTestDB(t)
	registerUser(t, "Ada", "ada@teamtrack.io")

	_, err := Login(dto.LoginRequest{Email: "ada@teamtrack.io", Password: "wrong"})
	require.Error(t, err)
}
