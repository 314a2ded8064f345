package helper

import (
	"testing"

	"backend-faq/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestHasRole(t *testing.T) {
	assert.True(t, HasRole("admin", "admin"))
	assert.True(t, HasRole("editor", "admin", "editor"))
	assert.False(t, HasRole("customer", "admin"))
	assert.False(t, HasRole("", "admin"))
	assert.False(t, HasRole("admin"))
}

func TestCheckActive(t *testing.T) {
	assert.NoError(t, CheckActive(models.User{IsBanned: "n"}))
	assert.ErrorIs(t, CheckActive(models.User{IsBanned: "y"}), ErrUserBanned)
}
