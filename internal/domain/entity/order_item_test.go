package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderItem_Merge(t *testing.T) {
	item := &OrderItem{Qty: 2, Note: "no chili"}

	item.Merge(3, "extra chili")

	assert.Equal(t, 5, item.Qty)
	assert.Equal(t, "extra chili", item.Note)
}

func TestOrderItem_Merge_EmptyNoteKeepsOld(t *testing.T) {
	item := &OrderItem{Qty: 1, Note: "no chili"}

	item.Merge(1, "")

	assert.Equal(t, 2, item.Qty)
	assert.Equal(t, "no chili", item.Note)
}
