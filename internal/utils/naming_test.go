package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSuppressedName(t *testing.T) {
	assert.True(t, IsSuppressedName("_private"))
	assert.False(t, IsSuppressedName("public"))
}

func TestIsPascalCase(t *testing.T) {
	assert.True(t, IsPascalCase("Shape"))
	assert.False(t, IsPascalCase("shape"))
	assert.False(t, IsPascalCase(""))
}

func TestIsSnakeOrUpperSnakeCase(t *testing.T) {
	assert.True(t, IsSnakeOrUpperSnakeCase("user_name"))
	assert.True(t, IsSnakeOrUpperSnakeCase("MAX_SIZE"))
	assert.True(t, IsSnakeOrUpperSnakeCase("_hidden"))
	assert.False(t, IsSnakeOrUpperSnakeCase("UserName"))
	assert.False(t, IsSnakeOrUpperSnakeCase("mixedCase"))
}

func TestNamingViolation(t *testing.T) {
	assert.Equal(t, "", NamingViolation("_anything", true), "suppressed names never violate")
	assert.Equal(t, "PascalCase", NamingViolation("shape", true))
	assert.Equal(t, "", NamingViolation("Shape", true))
	assert.Equal(t, "snake_case or UPPER_SNAKE_CASE", NamingViolation("userName", false))
	assert.Equal(t, "", NamingViolation("user_name", false))
}
