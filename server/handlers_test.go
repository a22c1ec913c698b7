package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateBound(t *testing.T) {
	from, err := parseDateBound("2024-03-01", false)
	require.Nil(t, err)
	assert.Equal(t, 2024, from.Year())
	assert.Equal(t, time.March, from.Month())
	assert.Equal(t, 1, from.Day())
	assert.Equal(t, 0, from.Hour())
}

func TestParseDateBoundEndOfDay(t *testing.T) {
	to, err := parseDateBound("2024-03-01", true)
	require.Nil(t, err)
	assert.Equal(t, 23, to.Hour())
	assert.Equal(t, 59, to.Minute())
	assert.Equal(t, 59, to.Second())
}

func TestParseDateBoundInvalid(t *testing.T) {
	_, err := parseDateBound("sometime soon", false)
	assert.NotNil(t, err)
}

func TestClampCount(t *testing.T) {
	assert.Equal(t, 0, clampCount(-7))
	assert.Equal(t, 0, clampCount(0))
	assert.Equal(t, 12, clampCount(12))
}
