package envutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("ENVUTIL_INT", "abc")
	assert.Equal(t, 7, Int("ENVUTIL_INT", 7))
	t.Setenv("ENVUTIL_INT", " 12 ")
	assert.Equal(t, 12, Int("ENVUTIL_INT", 7))
}

func TestSecondsRejectsNonPositive(t *testing.T) {
	t.Setenv("ENVUTIL_SECS", "0")
	assert.Equal(t, 3*time.Second, Seconds("ENVUTIL_SECS", 3*time.Second))
	t.Setenv("ENVUTIL_SECS", "5")
	assert.Equal(t, 5*time.Second, Seconds("ENVUTIL_SECS", 3*time.Second))
}

func TestBoolAndCSV(t *testing.T) {
	t.Setenv("ENVUTIL_BOOL", "on")
	assert.True(t, Bool("ENVUTIL_BOOL", false))
	t.Setenv("ENVUTIL_BOOL", "maybe")
	assert.False(t, Bool("ENVUTIL_BOOL", false))

	t.Setenv("ENVUTIL_CSV", " a, ,b ")
	assert.Equal(t, []string{"a", "b"}, CSV("ENVUTIL_CSV", nil))
	t.Setenv("ENVUTIL_CSV", "")
	assert.Equal(t, []string{"x"}, CSV("ENVUTIL_CSV", []string{"x"}))
}
