package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 24))
	assert.Equal(t, 1, CalculateTotalPages(1, 24))
	assert.Equal(t, 1, CalculateTotalPages(24, 24))
	assert.Equal(t, 2, CalculateTotalPages(25, 24))
	assert.Equal(t, 3, CalculateTotalPages(49, 24))
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 24))
	assert.Equal(t, 24, CalculateOffset(2, 24))
	assert.Equal(t, 0, CalculateOffset(0, 24))
	assert.Equal(t, 0, CalculateOffset(-5, 24))
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0))
	assert.Equal(t, 1, ClampPage(-1))
	assert.Equal(t, 1, ClampPage(1))
	assert.Equal(t, 7, ClampPage(7))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-3", 1))
	assert.Equal(t, 5, ParseInt("5", 1))
}

func TestParseInt64(t *testing.T) {
	id, ok := ParseInt64("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = ParseInt64("abc")
	assert.False(t, ok)

	_, ok = ParseInt64("")
	assert.False(t, ok)
}
