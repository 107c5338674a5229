package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsDiff(t *testing.T) {
	assert.Equal(t, 3, absDiff(1, 4))
	assert.Equal(t, 3, absDiff(4, 1))
	assert.Equal(t, 0, absDiff(-2, -2))
}

func TestCelltodo(t *testing.T) {
	std := newCelltodo(5)
	_, ok := std.pop()
	assert.False(t, ok)

	for _, i := range []int{3, 0, 4} {
		std.add(i)
	}
	var got []int
	for {
		i, ok := std.pop()
		if !ok {
			break
		}
		got = append(got, i)
	}
	assert.Equal(t, []int{3, 0, 4}, got)

	std.add(2)
	i, ok := std.pop()
	assert.True(t, ok)
	assert.Equal(t, 2, i)
}
