package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 20, 45)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, int64(45), p.Total)

	p = NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)
}
