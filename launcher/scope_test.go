package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	var released []int
	s := NewScope()
	s.Defer(func() { released = append(released, 1) })
	s.Defer(func() { released = append(released, 2) })

	s.Close()
	assert.Equal(t, []int{2, 1}, released)

	s.Close()
	assert.Equal(t, []int{2, 1}, released)

	s.Defer(func() { released = append(released, 3) })
	assert.Equal(t, []int{2, 1, 3}, released)
}
