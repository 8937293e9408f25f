package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockify/stockify-api/internal/application/dto"
)

func TestNormalize_ValeursParDefaut(t *testing.T) {
	q := dto.PageQuery{}
	q.Normalize()

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.Limit)
	assert.Equal(t, "desc", q.SortOrder)
}

func TestNormalize_BornesAppliquees(t *testing.T) {
	q := dto.PageQuery{Page: -3, Limit: 500, SortOrder: "n'importe quoi"}
	q.Normalize()

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 100, q.Limit)
	assert.Equal(t, "desc", q.SortOrder)
}

func TestOffset(t *testing.T) {
	q := dto.PageQuery{Page: 3, Limit: 20}
	assert.Equal(t, 40, q.Offset())
}

func TestPages_ArrondiSuperieur(t *testing.T) {
	assert.Equal(t, 0, dto.Pages(0, 20))
	assert.Equal(t, 1, dto.Pages(1, 20))
	assert.Equal(t, 1, dto.Pages(20, 20))
	assert.Equal(t, 2, dto.Pages(21, 20))
	assert.Equal(t, 0, dto.Pages(10, 0))
}
