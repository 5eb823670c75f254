package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, DefaultLimit},
		{-3, 5, 1, 5},
		{2, 500, 2, MaxLimit},
		{4, 100, 4, 100},
	}

	for _, tt := range tests {
		p, l := Normalize(tt.page, tt.limit)
		assert.Equal(t, tt.wantPage, p)
		assert.Equal(t, tt.wantLimit, l)
	}
}

func TestNewPagination_Pages(t *testing.T) {
	assert.Equal(t, 3, NewPagination(1, 10, 25).Pages)
	assert.Equal(t, 2, NewPagination(1, 10, 20).Pages)
	assert.Equal(t, 0, NewPagination(1, 10, 0).Pages)
	assert.Equal(t, 10, Offset(2, 10))
}
