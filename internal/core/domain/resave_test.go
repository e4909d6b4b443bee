package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstDifference(t *testing.T) {
	tests := []struct {
		name string
		a, b []byte
		want int
	}{
		{"equal", []byte("abc"), []byte("abc"), -1},
		{"both empty", nil, []byte{}, -1},
		{"first byte", []byte("abc"), []byte("xbc"), 0},
		{"middle", []byte("abc"), []byte("abd"), 2},
		{"longer output", []byte("abc"), []byte("abcd"), 3},
		{"shorter output", []byte("abcd"), []byte("ab"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FirstDifference(tt.a, tt.b))
		})
	}
}
