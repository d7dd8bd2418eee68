package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffIDs(t *testing.T) {
	tests := []struct {
		name       string
		current    []string
		desired    []string
		wantRemove []string
		wantAdd    []string
	}{
		{"empty to some", nil, []string{"a", "b"}, nil, []string{"a", "b"}},
		{"some to empty", []string{"a", "b"}, nil, []string{"a", "b"}, nil},
		{"unchanged", []string{"a", "b"}, []string{"b", "a"}, nil, nil},
		{"partial overlap", []string{"a", "b", "c"}, []string{"b", "d"}, []string{"a", "c"}, []string{"d"}},
		{"duplicates in desired", nil, []string{"a", "a", "b"}, nil, []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			remove, add := diffIDs(tt.current, tt.desired)
			assert.Equal(t, tt.wantRemove, remove)
			assert.Equal(t, tt.wantAdd, add)
		})
	}
}
