package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParticipantTotal(t *testing.T) {
	menuA := uuid.New()
	menuB := uuid.New()
	deleted := uuid.New()

	items := []*OrderItem{
		{MenuID: menuA, Qty: 2},
		{MenuID: menuB, Qty: 1},
		{MenuID: deleted, Qty: 3}, // menu entry gone, contributes zero
	}
	prices := map[uuid.UUID]decimal.Decimal{
		menuA: decimal.NewFromInt(25),
		menuB: decimal.NewFromInt(5),
	}

	total := ParticipantTotal(items, prices)

	assert.True(t, decimal.NewFromInt(55).Equal(total))
}

func TestParticipantTotal_NoItems(t *testing.T) {
	total := ParticipantTotal(nil, nil)

	assert.True(t, total.IsZero())
}

func TestParticipantBalance_Covers_NoPayment(t *testing.T) {
	balance := ParticipantBalance{Total: decimal.NewFromInt(100)}

	assert.True(t, balance.Covers(decimal.NewFromInt(1000)),
		"without a recorded payment any add is allowed")
}

func TestParticipantBalance_Covers_WithPayment(t *testing.T) {
	balance := ParticipantBalance{
		Total:   decimal.NewFromInt(30),
		Payment: &Payment{Amount: decimal.NewFromInt(50)},
	}

	assert.True(t, balance.Covers(decimal.NewFromInt(20)), "exactly at the limit is covered")
	assert.False(t, balance.Covers(decimal.NewFromInt(21)))
}

func TestParticipantBalance_Remaining(t *testing.T) {
	balance := ParticipantBalance{
		Total:   decimal.NewFromInt(30),
		Payment: &Payment{Amount: decimal.NewFromInt(50)},
	}

	assert.True(t, decimal.NewFromInt(20).Equal(balance.Remaining()))
}

func TestParticipantBalance_Remaining_NoPayment(t *testing.T) {
	balance := ParticipantBalance{Total: decimal.NewFromInt(30)}

	assert.True(t, balance.Remaining().IsZero())
}
