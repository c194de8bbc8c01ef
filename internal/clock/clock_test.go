package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixed(t *testing.T) {
	at := time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)
	c := Fixed(at)
	assert.Equal(t, at, c.Now())
	assert.Equal(t, at, c.Now(), "fixed clock never advances")
}

func TestFunc(t *testing.T) {
	calls := 0
	c := Func(func() time.Time {
		calls++
		return time.Date(2024, 1, calls, 0, 0, 0, 0, time.UTC)
	})
	assert.Equal(t, 1, c.Now().Day())
	assert.Equal(t, 2, c.Now().Day())
}

func TestSystem(t *testing.T) {
	before := time.Now()
	got := System{}.Now()
	assert.False(t, got.Before(before))
}
