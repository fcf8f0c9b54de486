package generic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	tests := map[string]struct {
		input []int
		want  []int
	}{
		"Empty": {
			input: nil,
			want:  nil,
		},
		"KeepsOrder": {
			input: []int{5, 2, 8, 4, 1},
			want:  []int{2, 8, 4},
		},
		"NoneMatch": {
			input: []int{1, 3},
			want:  nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Filter(tt.input, func(v int) bool { return v%2 == 0 })
			assert.Equal(t, tt.want, got)
		})
	}
}
