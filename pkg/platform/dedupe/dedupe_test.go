package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValues(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []int{},
			expected: []int{},
		},
		{
			name:     "no duplicates",
			input:    []int{3, 1, 2},
			expected: []int{3, 1, 2},
		},
		{
			name:     "keeps first occurrence order",
			input:    []int{8, 1, 8, 32, 1},
			expected: []int{8, 1, 32},
		},
		{
			name:     "all duplicates",
			input:    []int{5, 5, 5},
			expected: []int{5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Values(tt.input))
		})
	}
}

func TestValues_DoesNotModifyInput(t *testing.T) {
	input := []string{"a", "b", "a"}
	_ = Values(input)
	assert.Equal(t, []string{"a", "b", "a"}, input)
}
